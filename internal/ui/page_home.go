package ui

import (
	"codemap-portal/internal/catalog"
	"codemap-portal/internal/nav"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func landingPage() Node {
	return htmlRoot(
		headNodes("Welcome"),
		Body(
			Main(
				Class("landing"),
				H1(Class("mb-2"), Text("Welcome to Ayush Vardhan")),
				P(Class("f3 color-fg-muted mb-4"), Text("Explore ICD-11, TM2, and NAMASTE codes")),
				A(
					Href(nav.Href(nav.PageHome)),
					Class(primaryButtonClass()+" btn-large d-inline-flex flex-items-center gap-2"),
					Attr("aria-label", "Enter the portal"),
					Span(Text("Get started")),
					icon("arrow-right"),
				),
			),
			Script(Raw("if (window.lucide) { window.lucide.createIcons(); }")),
		),
	)
}

func homePage(s shell, dash catalog.Dashboard) Node {
	actions := make([]Node, 0, len(dash.QuickActions))
	for _, qa := range dash.QuickActions {
		actions = append(actions, A(
			Href(nav.Href(qa.Page)),
			Class(cardClass("action-card Link--primary d-block")),
			Div(Class("d-flex flex-items-center gap-2 mb-2"), icon(qa.Icon, "color-fg-accent"), Strong(Text(qa.Title))),
			P(Class(mutedClass()+" mb-0"), Text(qa.Description)),
		))
	}
	return appPage(s,
		statCards(dash.Stats),
		H2(Class("h4 mb-2"), Text("Quick Actions")),
		Div(Class("action-grid"), Group(actions)),
	)
}
