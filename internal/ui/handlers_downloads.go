package ui

import (
	"net/http"

	"codemap-portal/internal/catalog"
	"codemap-portal/internal/nav"
)

// Downloads renders the FHIR export builder. The form is a GET so a
// configuration can be bookmarked; an untouched page uses the defaults.
func (h *Handler) Downloads(w http.ResponseWriter, r *http.Request) {
	req := exportRequestFromQuery(h.Catalog, r)
	if err := h.Catalog.Validate(req); err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	est, err := h.Catalog.EstimateExport(req.Include)
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	s := h.shell(w, r, nav.PageDownloads, "FHIR Downloads", "Export medical codes, mappings, and patient data in FHIR-compliant formats")
	renderHTML(w, http.StatusOK, downloadsPage(s, downloadsData{
		Request:  req,
		Estimate: est,
		Datasets: h.Catalog.Datasets(),
		History:  h.Catalog.Exports(),
	}))
}

func exportRequestFromQuery(c *catalog.Catalog, r *http.Request) catalog.ExportRequest {
	req := c.DefaultExportRequest()
	q := r.URL.Query()
	if v := formString(q, "format"); v != "" {
		req.Format = v
	}
	if v := formString(q, "range"); v != "" {
		req.Range = v
	}
	// configured marks a submitted form, where no checked box means no data.
	if formBool(q, "configured") {
		req.Include = formList(q, "include")
	}
	return req
}
