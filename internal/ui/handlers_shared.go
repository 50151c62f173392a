package ui

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"codemap-portal/internal/domain"
	"codemap-portal/internal/nav"
)

func (h *Handler) Landing(w http.ResponseWriter, r *http.Request) {
	renderHTML(w, http.StatusOK, landingPage())
}

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	h.renderHome(w, r, nav.PageHome)
}

// UnknownPage serves /ui/{page} for ids the sidebar does not know; the
// dashboard is shown in their place.
func (h *Handler) UnknownPage(w http.ResponseWriter, r *http.Request) {
	h.renderHome(w, r, chi.URLParam(r, "page"))
}

func (h *Handler) renderHome(w http.ResponseWriter, r *http.Request, page string) {
	s := h.shell(w, r, page, "Dashboard", "Overview of codes, mappings and patient records")
	renderHTML(w, http.StatusOK, homePage(s, h.Catalog.Dashboard()))
}

// SidebarToggle flips the remembered sidebar expansion and returns to the
// page the form was posted from.
func (h *Handler) SidebarToggle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderServiceError(w, r, domain.ErrValidation("invalid form: %v", err))
		return
	}
	m := nav.New(nav.PageHome)
	m.Expanded = sidebarExpanded(r)
	m.OnToggle = func(expanded bool) { writeSidebarCookie(w, expanded, h.Production) }
	m.ToggleExpanded()
	http.Redirect(w, r, safeReturnPath(formString(r.PostForm, "return_to")), http.StatusSeeOther)
}

func (h *Handler) renderServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	title := "Unexpected Error"
	message := "An unexpected error occurred while loading this page."

	var notFound *domain.NotFoundError
	var validation *domain.ValidationError
	if errors.As(err, &notFound) {
		status = http.StatusNotFound
		title = "Not Found"
		message = notFound.Error()
	} else if errors.As(err, &validation) {
		status = http.StatusBadRequest
		title = "Invalid Request"
		message = validation.Error()
	} else {
		h.Logger.ErrorContext(r.Context(), "page failed", "path", r.URL.Path, "error", err)
	}

	renderHTML(w, status, errorPage(title, message))
}
