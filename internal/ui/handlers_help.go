package ui

import (
	"net/http"

	"codemap-portal/internal/nav"
)

const (
	helpTabFAQ       = "faq"
	helpTabAPI       = "api"
	helpTabTutorials = "tutorials"
	helpTabSupport   = "support"
)

var helpTabs = []tab{
	{ID: helpTabFAQ, Label: "FAQ"},
	{ID: helpTabAPI, Label: "API Reference"},
	{ID: helpTabTutorials, Label: "Tutorials"},
	{ID: helpTabSupport, Label: "Support"},
}

func (h *Handler) Help(w http.ResponseWriter, r *http.Request) {
	d := helpData{
		Tab:    resolveTab(helpTabs, r.URL.Query().Get("tab")),
		Guides: h.Catalog.Guides(),
	}
	switch d.Tab {
	case helpTabFAQ:
		d.Query = r.URL.Query().Get("q")
		d.FAQs = h.Catalog.FAQs(d.Query)
	case helpTabAPI:
		d.Endpoints = h.Catalog.APIEndpoints()
	case helpTabTutorials:
		d.Tutorials = h.Catalog.Tutorials()
	}
	s := h.shell(w, r, nav.PageHelp, "Help & Documentation", "Everything you need to know about using the Code Mapping Portal")
	renderHTML(w, http.StatusOK, helpPage(s, d))
}
