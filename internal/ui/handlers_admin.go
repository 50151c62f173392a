package ui

import (
	"net/http"

	"codemap-portal/internal/filter"
	"codemap-portal/internal/nav"
)

const (
	adminTabAudit  = "audit-logs"
	adminTabUsers  = "user-management"
	adminTabHealth = "system-health"
)

var adminTabs = []tab{
	{ID: adminTabAudit, Label: "Audit Logs"},
	{ID: adminTabUsers, Label: "User Management"},
	{ID: adminTabHealth, Label: "System Health"},
}

func resolveTab(tabs []tab, id string) string {
	for _, t := range tabs {
		if t.ID == id {
			return id
		}
	}
	return tabs[0].ID
}

func (h *Handler) Admin(w http.ResponseWriter, r *http.Request) {
	d := adminData{
		Tab:   resolveTab(adminTabs, r.URL.Query().Get("tab")),
		Stats: h.Catalog.SystemStats(),
	}
	switch d.Tab {
	case adminTabAudit:
		d.Query = listQuery(r, "action")
		d.Actions = filter.Options("All Actions", h.Catalog.AuditActions(), filter.ActionLabel)
		d.Logs = h.Catalog.AuditLogs(d.Query)
	case adminTabUsers:
		d.Users = h.Catalog.Users()
	case adminTabHealth:
		d.Services = h.Catalog.SystemServices()
	}
	s := h.shell(w, r, nav.PageAdmin, "Admin Dashboard", "System administration, user management, and audit logs")
	renderHTML(w, http.StatusOK, adminPage(s, d))
}
