package ui

import (
	"net/http"
	"net/url"

	"codemap-portal/internal/domain"
	"codemap-portal/internal/nav"
	"codemap-portal/internal/settings"
)

const settingsNotSaved = "Settings are valid but were not saved: this portal keeps no data."

func (h *Handler) Settings(w http.ResponseWriter, r *http.Request) {
	values := h.Catalog.Settings()
	values.Appearance.SidebarCollapsed = !sidebarExpanded(r)
	s := h.settingsShell(w, r)
	renderHTML(w, http.StatusOK, settingsPage(s, settingsData{
		Tab:    settings.ResolveTab(r.URL.Query().Get("tab")),
		Values: values,
	}))
}

// SettingsSubmit validates the posted tab on top of the stored defaults.
// Valid input is acknowledged but nothing is kept, except the sidebar
// preference, which lives in a cookie like the toolbar toggle.
func (h *Handler) SettingsSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderServiceError(w, r, domain.ErrValidation("invalid form: %v", err))
		return
	}
	tab := settings.ResolveTab(formString(r.PostForm, "tab"))
	base := h.Catalog.Settings()
	base.Appearance.SidebarCollapsed = !sidebarExpanded(r)
	values := applySettingsForm(base, tab, r.PostForm)
	s := h.settingsShell(w, r)

	errs := settings.Validate(settings.Form{Profile: values.Profile, Privacy: values.Privacy, Appearance: values.Appearance})
	if len(errs) > 0 {
		h.Logger.InfoContext(r.Context(), "settings rejected", "tab", tab, "fields", errs.Fields())
		renderHTML(w, http.StatusBadRequest, settingsPage(s, settingsData{Tab: tab, Values: values, Errors: errs}))
		return
	}

	if tab == settings.TabAppearance && s.Nav.Expanded == values.Appearance.SidebarCollapsed {
		s.Nav.SetExpanded(!values.Appearance.SidebarCollapsed)
	}
	h.Logger.InfoContext(r.Context(), "settings accepted", "tab", tab)
	renderHTML(w, http.StatusOK, settingsPage(s, settingsData{Tab: tab, Values: values, Notice: settingsNotSaved}))
}

func (h *Handler) settingsShell(w http.ResponseWriter, r *http.Request) shell {
	return h.shell(w, r, nav.PageSettings, "Settings", "Manage your account preferences and system settings")
}

// applySettingsForm overlays the fields of one tab. Checkboxes outside the
// posted tab keep their defaults because an unchecked box is not sent.
func applySettingsForm(v domain.UserSettings, tab string, form url.Values) domain.UserSettings {
	switch tab {
	case settings.TabProfile:
		p := &v.Profile
		p.Name = formString(form, "name")
		p.Email = formString(form, "email")
		p.Title = formString(form, "title")
		p.Department = formString(form, "department")
		p.Phone = formString(form, "phone")
		p.Bio = formString(form, "bio")
		p.Timezone = formString(form, "timezone")
		p.Language = formString(form, "language")
	case settings.TabNotifications:
		for i := range v.Notifications {
			v.Notifications[i].Enabled = formBool(form, v.Notifications[i].Key)
		}
	case settings.TabPrivacy:
		p := &v.Privacy
		p.ProfileVisibility = formString(form, "profile_visibility")
		p.SessionTimeout = formString(form, "session_timeout")
		p.ActivityTracking = formBool(form, "activity_tracking")
		p.AnalyticsOptIn = formBool(form, "analytics_opt_in")
		p.DataSharing = formBool(form, "data_sharing")
	case settings.TabAppearance:
		a := &v.Appearance
		a.Theme = formString(form, "theme")
		a.FontSize = formString(form, "font_size")
		a.SidebarCollapsed = formBool(form, "sidebar_collapsed")
		a.HighContrast = formBool(form, "high_contrast")
		a.ReducedMotion = formBool(form, "reduced_motion")
	}
	return v
}
