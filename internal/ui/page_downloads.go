package ui

import (
	"slices"
	"strconv"
	"strings"

	"codemap-portal/internal/catalog"
	"codemap-portal/internal/domain"
	"codemap-portal/internal/nav"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type downloadsData struct {
	Request  catalog.ExportRequest
	Estimate catalog.Estimate
	Datasets []domain.Dataset
	History  []domain.ExportRecord
}

var rangeLabels = map[string]string{
	"last-7-days":  "Last 7 days",
	"last-30-days": "Last 30 days",
	"last-90-days": "Last 90 days",
	"all-time":     "All time",
}

func downloadsPage(s shell, d downloadsData) Node {
	datasets := make([]Node, 0, len(d.Datasets))
	for _, ds := range d.Datasets {
		id := "include-" + ds.Key
		datasets = append(datasets, Div(
			Class("form-checkbox toggle-row"),
			Label(For(id),
				Input(ID(id), Type("checkbox"), Name("include"), Value(ds.Key), If(slices.Contains(d.Request.Include, ds.Key), Checked())),
				Text(" "+ds.Label),
			),
			P(Class("note"), Textf("%d records • %.1f MB", ds.Records, ds.SizeMB)),
		))
	}

	formats := make([]Node, 0, len(catalog.ExportFormats))
	for _, f := range catalog.ExportFormats {
		id := "format-" + f
		formats = append(formats, Div(
			Class("form-checkbox"),
			Label(For(id),
				Input(ID(id), Type("radio"), Name("format"), Value(f), If(f == d.Request.Format, Checked())),
				Text(" "+strings.ToUpper(f)),
			),
		))
	}

	ranges := make([]Node, 0, len(catalog.ExportRanges))
	for _, rg := range catalog.ExportRanges {
		ranges = append(ranges, Option(Value(rg), If(rg == d.Request.Range, Selected()), Text(rangeLabels[rg])))
	}

	history := make([]Node, 0, len(d.History))
	for _, e := range d.History {
		history = append(history, Tr(
			Td(Div(Class("mono text-bold"), Text(e.Filename)), Div(Class(mutedClass()), Text(strings.Join(e.Includes, ", ")))),
			Td(statusLabel(e.Format, "")),
			Td(Text(e.Size)),
			Td(Text(strconv.Itoa(e.RecordCount))),
			Td(statusLabel(e.Status, domain.StatusTone(e.Status))),
			Td(Text(e.CreatedAt)),
			Td(Text(orDash(e.DownloadedAt))),
			Td(Text(e.ExpiresAt)),
		))
	}

	return appPage(s,
		Form(
			Method("get"),
			Action(nav.Href(nav.PageDownloads)),
			hiddenInput("configured", "true"),
			Div(Class("downloads-grid"),
				Div(Class(cardClass()), H2(Class("h4 mb-2"), Text("Select Data to Include")), Group(datasets)),
				Div(
					Div(Class(cardClass()), H2(Class("h4 mb-2"), Text("Export Format")), Group(formats)),
					Div(Class(cardClass()),
						H2(Class("h4 mb-2"), Label(For("export-range"), Text("Date Range"))),
						Select(ID("export-range"), Name("range"), Class("form-select"), Group(ranges)),
					),
					Div(Class(cardClass("estimate")),
						H2(Class("h4 mb-2"), Text("Export Estimate")),
						P(Textf("Records: %d", d.Estimate.Records)),
						P(Text("Size: "+d.Estimate.Size())),
						Div(Class("d-flex gap-2"),
							Button(Type("submit"), Class(secondaryButtonClass()), Text("Update Estimate")),
							Button(Type("button"), Class(primaryButtonClass()), Disabled(), Title("Exports are not generated by this portal"), icon("download"), Text(" Generate Export")),
						),
					),
				),
			),
		),
		H2(Class("h4 mb-2"), Text("Download History")),
		listOrEmpty(history, []string{"File", "Format", "Size", "Records", "Status", "Created", "Downloaded", "Expires"}, "No exports yet."),
	)
}
