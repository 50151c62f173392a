package ui

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"codemap-portal/internal/domain"
	"codemap-portal/internal/filter"
	"codemap-portal/internal/nav"
)

const maxNoteLength = 4000

func (h *Handler) Profiles(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	d := profilesData{
		Query:    listQuery(r, "status"),
		Stats:    h.Catalog.PageStats(nav.PageProfiles),
		Statuses: filter.Options("All Statuses", h.Catalog.PatientStatuses(), nil),
		Activity: h.Catalog.PatientActivity(),
		Notice:   strings.TrimSpace(query.Get("notice")),
	}
	d.Patients = h.Catalog.Patients(d.Query)

	if id := strings.TrimSpace(query.Get("note")); id != "" {
		p, err := h.Catalog.Patient(id)
		if err != nil {
			h.renderServiceError(w, r, err)
			return
		}
		d.NoteFor = &p
	}

	s := h.shell(w, r, nav.PageProfiles, "Patient Records", "Manage patient profiles and clinical notes for code mapping cases")
	d.ClosePath = withoutParam(r.URL, "note")
	renderHTML(w, http.StatusOK, profilesPage(s, d))
}

// ProfileNoteSubmit accepts the clinical note dialog. Notes are not stored;
// the patient must exist and the note must be non-empty.
func (h *Handler) ProfileNoteSubmit(w http.ResponseWriter, r *http.Request) {
	p, err := h.Catalog.Patient(chi.URLParam(r, "patientID"))
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.renderServiceError(w, r, domain.ErrValidation("invalid form: %v", err))
		return
	}
	note := formString(r.PostForm, "note")
	switch {
	case note == "":
		h.renderServiceError(w, r, domain.ErrValidation("clinical note is required"))
		return
	case len(note) > maxNoteLength:
		h.renderServiceError(w, r, domain.ErrValidation("clinical note exceeds %d characters", maxNoteLength))
		return
	}
	h.Logger.InfoContext(r.Context(), "clinical note submitted", "patient_id", p.PatientID, "length", len(note))
	http.Redirect(w, r, withParam(nav.Href(nav.PageProfiles), "notice", "Note for "+p.Name+" was not saved: this portal keeps no data."), http.StatusSeeOther)
}
