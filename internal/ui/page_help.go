package ui

import (
	"strings"

	"codemap-portal/internal/domain"
	"codemap-portal/internal/filter"
	"codemap-portal/internal/nav"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const (
	apiBaseURL   = "https://api.codemapping.hospital.com"
	supportEmail = "support@codemapping.hospital.com"
	supportPhone = "+1 (555) 123-4567"
)

type helpData struct {
	Tab       string
	Guides    []domain.Guide
	Query     string
	FAQs      []filter.Group[domain.FAQ]
	Endpoints []domain.APIEndpoint
	Tutorials []domain.Tutorial
}

func helpPage(s shell, d helpData) Node {
	var body Node
	switch d.Tab {
	case helpTabAPI:
		body = apiTab(d.Endpoints)
	case helpTabTutorials:
		body = tutorialsTab(d.Tutorials)
	case helpTabSupport:
		body = supportTab()
	default:
		body = faqTab(d.Query, d.FAQs)
	}
	return appPage(s,
		guideGrid(d.Guides),
		tabNav(nav.Href(nav.PageHelp), helpTabs, d.Tab),
		body,
	)
}

func guideGrid(guides []domain.Guide) Node {
	cards := make([]Node, 0, len(guides))
	for _, g := range guides {
		tags := make([]Node, 0, len(g.Tags))
		for _, t := range g.Tags {
			tags = append(tags, statusLabel(t, ""))
		}
		cards = append(cards, Div(
			Class(cardClass()),
			Div(Class("d-flex flex-items-center gap-2 mb-2"), icon(g.Icon, "color-fg-accent"), Strong(Text(g.Title))),
			P(Class(mutedClass()), Text(g.Description)),
			Div(Class("d-flex flex-wrap flex-items-center gap-1"), Span(Class(mutedClass()), Text(g.ReadTime)), Group(tags)),
		))
	}
	return Div(Class("guide-grid mb-3"), Group(cards))
}

func faqTab(q string, groups []filter.Group[domain.FAQ]) Node {
	sections := make([]Node, 0, len(groups))
	for _, g := range groups {
		items := make([]Node, 0, len(g.Items))
		for _, f := range g.Items {
			items = append(items, Details(
				Class("faq-item py-2"),
				Summary(Class("text-bold"), Text(f.Question)),
				P(Class("mt-2 color-fg-muted"), Text(f.Answer)),
			))
		}
		sections = append(sections, Div(Class(cardClass()), H2(Class("h4 mb-2"), Text(g.Name)), Group(items)))
	}
	var results Node = Group(sections)
	if len(groups) == 0 {
		results = emptyStateCard("No questions match your search.")
	}
	return Group{
		quickFilterCard(nav.Href(nav.PageHelp), "Search FAQs...", q, nil, hiddenInput("tab", helpTabFAQ)),
		results,
	}
}

func apiTab(endpoints []domain.APIEndpoint) Node {
	rows := make([]Node, 0, len(endpoints))
	for _, e := range endpoints {
		rows = append(rows, Div(
			Class("endpoint-row"),
			Div(Class("d-flex flex-items-center gap-2"), statusLabel(e.Method, domain.HTTPMethodTone(e.Method)), Code(Text(e.Path))),
			P(Class("mt-1 mb-1"), Text(e.Description)),
			If(len(e.Parameters) > 0, P(Class(mutedClass()), Text("Parameters: "+strings.Join(e.Parameters, ", ")))),
		))
	}
	return Div(Class(cardClass()),
		Div(Class("d-flex flex-items-center gap-2 mb-2"),
			H2(Class("h4"), Text("Base URL")), statusLabel("v1", domain.ToneAccent),
		),
		Pre(Class("mb-3"), Code(Text(apiBaseURL))),
		Group(rows),
	)
}

func tutorialsTab(tutorials []domain.Tutorial) Node {
	cards := make([]Node, 0, len(tutorials))
	for _, t := range tutorials {
		cards = append(cards, Div(
			Class(cardClass()),
			Div(Class("d-flex flex-items-center gap-2 mb-2"), icon("circle-play", "color-fg-accent"), Strong(Text(t.Title))),
			Div(Class("d-flex gap-2"), Span(Class(mutedClass()), Text(t.Duration)), statusLabel(t.Level, "")),
		))
	}
	return Div(Class("guide-grid"), Group(cards))
}

func supportTab() Node {
	contact := []struct{ icon, label, value string }{
		{"mail", "Email Support", supportEmail},
		{"phone", "Phone Support", supportPhone},
		{"message-circle", "Live Chat", "Available Mon-Fri 9AM-5PM EST"},
	}
	contactRows := make([]Node, 0, len(contact))
	for _, c := range contact {
		contactRows = append(contactRows, Li(Class("d-flex flex-items-center gap-2 py-2"),
			icon(c.icon, "color-fg-muted"),
			Div(Div(Class("text-bold"), Text(c.label)), Div(Class(mutedClass()), Text(c.value))),
		))
	}

	status := []string{"Portal", "API", "Database"}
	statusRows := make([]Node, 0, len(status)+1)
	for _, name := range status {
		statusRows = append(statusRows, Li(Class("d-flex flex-justify-between py-1"), Span(Text(name)), statusLabel("Operational", domain.ToneSuccess)))
	}
	statusRows = append(statusRows, Li(Class("d-flex flex-justify-between py-1"), Span(Text("Last Updated")), Span(Class(mutedClass()), Text("2 min ago"))))

	return Div(Class("health-grid"),
		Div(Class(cardClass()), H2(Class("h4 mb-2"), Text("Contact Information")), Ul(Class("list-style-none"), Group(contactRows))),
		Div(Class(cardClass()), H2(Class("h4 mb-2"), Text("System Status")), Ul(Class("list-style-none"), Group(statusRows))),
	)
}
