package ui

import (
	"strconv"
	"strings"

	"codemap-portal/internal/catalog"
	"codemap-portal/internal/domain"
	"codemap-portal/internal/filter"
	"codemap-portal/internal/nav"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type namasteCodesData struct {
	Query      filter.Query
	Stats      []domain.Stat
	Categories []filter.Option
	Codes      []domain.NamasteCode
}

func namasteCodesPage(s shell, d namasteCodesData) Node {
	rows := make([]Node, 0, len(d.Codes))
	for _, c := range d.Codes {
		rows = append(rows, Tr(
			rowFilter(catalog.NamasteSearchFields(c)...),
			Td(Class("mono text-bold"), Text(c.Code)),
			Td(Text(c.Description)),
			Td(statusLabel(c.Category, "")),
			Td(statusLabel(c.Status, domain.StatusTone(c.Status))),
			Td(Text(c.LastModified)),
			Td(Text(strconv.Itoa(c.Mappings))),
		))
	}
	return appPage(s,
		statCards(d.Stats),
		quickFilterCard(nav.Href(nav.PageNamaste), "Search codes, descriptions...", d.Query.Text,
			&selectControl{Name: "category", Label: "Category", Options: d.Categories, Selected: d.Query.Selector}),
		resultsTitle("Namaste Codes", len(d.Codes)),
		listOrEmpty(rows, []string{"Code", "Description", "Category", "Status", "Last Modified", "Mappings"}, "No codes match the current filters."),
	)
}

type tm2CodesData struct {
	Query    filter.Query
	Stats    []domain.Stat
	Chapters []filter.Option
	Codes    []domain.TM2Code
}

func tm2CodesPage(s shell, d tm2CodesData) Node {
	rows := make([]Node, 0, len(d.Codes))
	for _, c := range d.Codes {
		rows = append(rows, Tr(
			rowFilter(catalog.TM2SearchFields(c)...),
			Td(Class("mono text-bold"), Text(c.Code)),
			Td(Text(c.Title)),
			Td(Class(mutedClass()), Text(c.Chapter)),
			Td(Class("mono"), Text(c.Parent)),
			Td(statusLabel(c.Status, domain.StatusTone(c.Status))),
			Td(Text(c.Version)),
			Td(Text(strconv.Itoa(c.Mappings))),
		))
	}
	return appPage(s,
		statCards(d.Stats),
		quickFilterCard(nav.Href(nav.PageTM2), "Search ICD-11 codes, titles...", d.Query.Text,
			&selectControl{Name: "chapter", Label: "Chapter", Options: d.Chapters, Selected: d.Query.Selector}),
		resultsTitle("ICD-11 Codes", len(d.Codes)),
		listOrEmpty(rows, []string{"Code", "Title", "Chapter", "Parent", "Status", "Version", "Mappings"}, "No ICD-11 codes match the current filters."),
	)
}

type mappingsData struct {
	Query    filter.Query
	Stats    []domain.Stat
	Statuses []filter.Option
	Quality  []domain.Stat
	Mappings []domain.Mapping
}

// confidenceIcon marks strong and weak mappings.
func confidenceIcon(confidence int) Node {
	switch {
	case confidence >= 90:
		return icon("circle-check", "color-fg-success")
	case confidence < 75:
		return icon("triangle-alert", "color-fg-danger")
	default:
		return nil
	}
}

func reviewerName(reviewer *string) string {
	if reviewer == nil || strings.TrimSpace(*reviewer) == "" {
		return "Unassigned"
	}
	return *reviewer
}

func mappingsPage(s shell, d mappingsData) Node {
	quality := make([]Node, 0, len(d.Quality))
	for _, q := range d.Quality {
		quality = append(quality, Div(
			Class("quality-row"),
			Div(Class("d-flex flex-justify-between text-small mb-1"), Span(Text(q.Label)), Span(Class("color-fg-muted"), Text(q.Value))),
			progressBar(q.Percent, domain.MappingTypeTone(q.Label)),
		))
	}

	rows := make([]Node, 0, len(d.Mappings))
	for _, m := range d.Mappings {
		rows = append(rows, Tr(
			rowFilter(catalog.MappingSearchFields(m)...),
			Td(Div(Class("mono text-bold"), Text(m.NamasteCode)), Div(Class(mutedClass()), Text(m.NamasteDescription))),
			Td(icon("arrow-right", "color-fg-muted")),
			Td(Div(Class("mono text-bold"), Text(m.ICD11Code)), Div(Class(mutedClass()), Text(m.ICD11Description))),
			Td(statusLabel(m.MappingType, domain.MappingTypeTone(m.MappingType))),
			Td(Span(Class("d-inline-flex flex-items-center gap-2 color-fg-"+domain.ConfidenceTone(m.Confidence)), Textf("%d%%", m.Confidence), confidenceIcon(m.Confidence))),
			Td(statusLabel(m.Status, domain.StatusTone(m.Status))),
			Td(Text(reviewerName(m.Reviewer))),
			Td(Div(Text(m.DateCreated)), Div(Class(mutedClass()), Text("Reviewed "+orDash(m.LastReviewed)))),
		))
	}

	return appPage(s,
		statCards(d.Stats),
		quickFilterCard(nav.Href(nav.PageMappings), "Search mappings, codes, descriptions...", d.Query.Text,
			&selectControl{Name: "status", Label: "Status", Options: d.Statuses, Selected: d.Query.Selector}),
		Div(Class(cardClass()), H2(Class("h4 mb-3"), Text("Mapping Quality Overview")), Group(quality)),
		resultsTitle("Code Mappings", len(d.Mappings)),
		listOrEmpty(rows, []string{"Namaste Code", "", "ICD-11 Code", "Type", "Confidence", "Status", "Reviewer", "Created"}, "No mappings match the current filters."),
	)
}

func listOrEmpty(rows []Node, head []string, empty string) Node {
	if len(rows) == 0 {
		return emptyStateCard(empty)
	}
	return tableCard(head, rows)
}
