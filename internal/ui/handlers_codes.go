package ui

import (
	"net/http"

	"codemap-portal/internal/filter"
	"codemap-portal/internal/nav"
)

func listQuery(r *http.Request, selectorKey string) filter.Query {
	q := r.URL.Query()
	return filter.Query{Text: q.Get("q"), Selector: filter.Normalize(q.Get(selectorKey))}
}

func (h *Handler) NamasteCodes(w http.ResponseWriter, r *http.Request) {
	q := listQuery(r, "category")
	s := h.shell(w, r, nav.PageNamaste, "Namaste Codes", "Manage and browse Namaste medical classification codes")
	renderHTML(w, http.StatusOK, namasteCodesPage(s, namasteCodesData{
		Query:      q,
		Stats:      h.Catalog.PageStats(nav.PageNamaste),
		Categories: filter.Options("All Categories", h.Catalog.NamasteCategories(), nil),
		Codes:      h.Catalog.NamasteCodes(q),
	}))
}

func (h *Handler) TM2Codes(w http.ResponseWriter, r *http.Request) {
	q := listQuery(r, "chapter")
	s := h.shell(w, r, nav.PageTM2, "TM2/ICD-11 Codes", "Browse WHO ICD-11 classification codes and TM2 traditional medicine classifications")
	renderHTML(w, http.StatusOK, tm2CodesPage(s, tm2CodesData{
		Query:    q,
		Stats:    h.Catalog.PageStats(nav.PageTM2),
		Chapters: filter.Options("All Chapters", h.Catalog.TM2Chapters(), nil),
		Codes:    h.Catalog.TM2Codes(q),
	}))
}

func (h *Handler) Mappings(w http.ResponseWriter, r *http.Request) {
	q := listQuery(r, "status")
	s := h.shell(w, r, nav.PageMappings, "Code Mappings", "Manage mappings between Namaste codes and ICD-11/TM2 classifications")
	renderHTML(w, http.StatusOK, mappingsPage(s, mappingsData{
		Query:    q,
		Stats:    h.Catalog.PageStats(nav.PageMappings),
		Statuses: filter.Options("All Statuses", h.Catalog.MappingStatuses(), nil),
		Quality:  h.Catalog.MappingQuality(),
		Mappings: h.Catalog.Mappings(q),
	}))
}
