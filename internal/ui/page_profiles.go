package ui

import (
	"net/url"
	"strconv"

	"codemap-portal/internal/catalog"
	"codemap-portal/internal/domain"
	"codemap-portal/internal/filter"
	"codemap-portal/internal/nav"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type profilesData struct {
	Query     filter.Query
	Stats     []domain.Stat
	Statuses  []filter.Option
	Patients  []domain.Patient
	Activity  []domain.Stat
	Notice    string
	NoteFor   *domain.Patient
	ClosePath string
}

func profilesPage(s shell, d profilesData) Node {
	rows := make([]Node, 0, len(d.Patients))
	for _, p := range d.Patients {
		diagnoses := make([]Node, 0, len(p.Diagnoses))
		for _, code := range p.Diagnoses {
			diagnoses = append(diagnoses, statusLabel(code, ""))
		}
		rows = append(rows, Tr(
			rowFilter(catalog.PatientSearchFields(p)...),
			Td(Div(Class("text-bold"), Text(p.Name)), Div(Class(mutedClass()+" mono"), Text(p.PatientID))),
			Td(Textf("%d / %s", p.Age, p.Gender)),
			Td(Div(Class("d-flex flex-wrap gap-1"), Group(diagnoses))),
			Td(statusLabel(p.Status, domain.StatusTone(p.Status))),
			Td(Text(p.LastVisit)),
			Td(Div(Text(strconv.Itoa(p.TotalNotes)+" notes")), Div(Class(mutedClass()), Text(p.Notes))),
			Td(A(
				Class(secondaryButtonClass()+" btn-sm"),
				Href(withParam(s.Path, "note", p.PatientID)),
				icon("file-plus"),
				Text(" Add Note"),
			)),
		))
	}

	activity := make([]Node, 0, len(d.Activity))
	for _, a := range d.Activity {
		activity = append(activity, Li(
			Class("d-flex flex-items-center gap-2 py-2"),
			icon("clock", "color-fg-muted"),
			Div(Div(Text(a.Label)), Div(Class(mutedClass()), Text(a.Value))),
		))
	}

	var dialog Node
	if d.NoteFor != nil {
		dialog = noteDialog(s, *d.NoteFor, d.ClosePath)
	}

	return appPage(s,
		If(d.Notice != "", noticeFlash(d.Notice)),
		statCards(d.Stats),
		quickFilterCard(nav.Href(nav.PageProfiles), "Search patients, IDs, diagnoses...", d.Query.Text,
			&selectControl{Name: "status", Label: "Status", Options: d.Statuses, Selected: d.Query.Selector}),
		resultsTitle("Patient Records", len(d.Patients)),
		listOrEmpty(rows, []string{"Patient", "Age / Gender", "Diagnoses", "Status", "Last Visit", "Notes", ""}, "No patients match the current filters."),
		Div(Class(cardClass()), H2(Class("h4 mb-2"), Text("Recent Activity")), Ul(Class("list-style-none"), Group(activity))),
		dialog,
	)
}

// noteDialog is rendered open; closing it links back to the list without
// the note parameter.
func noteDialog(s shell, p domain.Patient, closePath string) Node {
	return Div(
		Class("modal-backdrop"),
		Div(
			Class("modal Box p-3"),
			Role("dialog"),
			Aria("modal", "true"),
			Aria("labelledby", "note-title"),
			Div(Class("d-flex flex-items-center flex-justify-between mb-2"),
				H2(ID("note-title"), Class("h4"), Text("Add Note for "+p.Name)),
				A(Class("btn-octicon"), Href(closePath), Aria("label", "Close"), icon("x")),
			),
			Form(
				Method("post"),
				Action("/ui/profiles/"+url.PathEscape(p.PatientID)+"/notes"),
				s.CSRF,
				Label(For("note"), Class("d-block mb-1 text-bold"), Text("Clinical Note")),
				Textarea(ID("note"), Name("note"), Class("form-control width-full"), Rows("6"), Required(), Placeholder("Enter clinical note...")),
				Div(Class("d-flex flex-justify-end gap-2 mt-3"),
					A(Class(secondaryButtonClass()), Href(closePath), Text("Cancel")),
					Button(Type("submit"), Class(primaryButtonClass()), Text("Save Note")),
				),
			),
		),
	)
}
