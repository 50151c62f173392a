package ui

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	"codemap-portal/internal/ui/assets"
)

// MountRoutes registers the portal pages on a router mounted at /ui.
func MountRoutes(r chi.Router, h *Handler) {
	staticFS, err := fs.Sub(assets.StaticFS(), "static")
	if err == nil {
		r.Handle("/static/*", http.StripPrefix("/ui/static/", http.FileServer(http.FS(staticFS))))
	}

	r.Group(func(r chi.Router) {
		r.Use(h.EnsureCSRFToken)
		r.Use(h.RequireCSRF)

		r.Get("/", h.Home)
		r.Get("/home", h.Home)
		r.Get("/namaste-codes", h.NamasteCodes)
		r.Get("/tm2-codes", h.TM2Codes)
		r.Get("/mappings", h.Mappings)
		r.Get("/profiles", h.Profiles)
		r.Post("/profiles/{patientID}/notes", h.ProfileNoteSubmit)
		r.Get("/downloads", h.Downloads)
		r.Get("/admin", h.Admin)
		r.Get("/help", h.Help)
		r.Get("/settings", h.Settings)
		r.Post("/settings", h.SettingsSubmit)
		r.Post("/sidebar", h.SidebarToggle)
		r.Get("/{page}", h.UnknownPage)
	})
}

// MountLanding registers the landing page at the site root.
func MountLanding(r chi.Router, h *Handler) {
	r.Get("/", h.Landing)
}
