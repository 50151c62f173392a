package ui

import (
	"log/slog"
	"net/http"
	"strings"

	"codemap-portal/internal/catalog"
	"codemap-portal/internal/nav"

	gomponents "maragu.dev/gomponents"
)

// sidebarCookieName remembers the desktop sidebar expansion ("1" or "0").
const sidebarCookieName = "portal_sidebar"

type Handler struct {
	Catalog    *catalog.Catalog
	Logger     *slog.Logger
	Production bool
}

func NewHandler(cat *catalog.Catalog, logger *slog.Logger, production bool) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		Catalog:    cat,
		Logger:     logger,
		Production: production,
	}
}

func renderHTML(w http.ResponseWriter, status int, node gomponents.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = node.Render(w)
}

// navModel builds the navigation state for a request: sidebar expansion
// from the cookie, drawer from ?menu=open, and the selected page. Unknown
// pages select the dashboard.
func (h *Handler) navModel(w http.ResponseWriter, r *http.Request, page string) *nav.Model {
	m := nav.New(nav.PageHome)
	m.Expanded = sidebarExpanded(r)
	m.OnToggle = func(expanded bool) { writeSidebarCookie(w, expanded, h.Production) }
	m.OnPageChange = func(id string) {
		h.Logger.DebugContext(r.Context(), "page selected", "page", id)
	}
	if err := m.Select(page); err != nil {
		h.Logger.DebugContext(r.Context(), "unknown page, showing dashboard", "page", page)
		_ = m.Select(nav.PageHome)
	}
	// Select closes the drawer, so the query flag applies after it.
	if r.URL.Query().Get("menu") == "open" {
		m.OpenDrawer()
	}
	return m
}

func sidebarExpanded(r *http.Request) bool {
	c, err := r.Cookie(sidebarCookieName)
	if err != nil {
		return true
	}
	return strings.TrimSpace(c.Value) != "0"
}

func writeSidebarCookie(w http.ResponseWriter, expanded bool, secure bool) {
	value := "0"
	if expanded {
		value = "1"
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sidebarCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   365 * 24 * 60 * 60,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// safeReturnPath accepts only local portal paths so the sidebar toggle
// cannot be used as an open redirect.
func safeReturnPath(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.ContainsAny(raw, "\\\r\n") {
		return nav.Href(nav.PageHome)
	}
	return raw
}
