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

type adminData struct {
	Tab      string
	Stats    domain.SystemStats
	Query    filter.Query
	Actions  []filter.Option
	Logs     []domain.AuditLogEntry
	Users    []domain.PortalUser
	Services []domain.Stat
}

func adminStats(st domain.SystemStats) []domain.Stat {
	return []domain.Stat{
		{Label: "Active Users", Value: strconv.Itoa(st.ActiveUsers), Tone: domain.ToneAccent},
		{Label: "Total Sessions", Value: strconv.Itoa(st.TotalSessions), Tone: domain.ToneSuccess},
		{Label: "Failed Logins", Value: strconv.Itoa(st.FailedLogins), Tone: domain.ToneDanger},
		{Label: "System Uptime", Value: st.SystemUptime, Tone: domain.ToneSuccess},
	}
}

func adminPage(s shell, d adminData) Node {
	var body Node
	switch d.Tab {
	case adminTabUsers:
		body = usersTab(d.Users)
	case adminTabHealth:
		body = healthTab(d.Stats, d.Services)
	default:
		body = auditTab(d)
	}
	return appPage(s,
		statCards(adminStats(d.Stats)),
		tabNav(nav.Href(nav.PageAdmin), adminTabs, d.Tab),
		body,
	)
}

func auditTab(d adminData) Node {
	rows := make([]Node, 0, len(d.Logs))
	for _, e := range d.Logs {
		rows = append(rows, Tr(
			rowFilter(catalog.AuditSearchFields(e)...),
			Td(Class("mono text-small"), Text(e.Timestamp)),
			Td(Div(Class("text-bold"), Text(e.User)), Div(Class(mutedClass()), Text(e.UserRole))),
			Td(statusLabel(filter.ActionLabel(e.Action), "")),
			Td(Div(Text(e.Resource)), Div(Class(mutedClass()), Text(e.Details))),
			Td(Div(Class("mono"), Text(e.IPAddress)), Div(Class(mutedClass()), Text(e.UserAgent))),
			Td(statusLabel(e.Status, domain.StatusTone(e.Status))),
		))
	}
	return Group{
		quickFilterCard(nav.Href(nav.PageAdmin), "Search audit logs...", d.Query.Text,
			&selectControl{Name: "action", Label: "Action", Options: d.Actions, Selected: d.Query.Selector},
			hiddenInput("tab", adminTabAudit)),
		resultsTitle("Audit Logs", len(d.Logs)),
		listOrEmpty(rows, []string{"Timestamp", "User", "Action", "Resource", "Source", "Status"}, "No audit entries match the current filters."),
	}
}

func usersTab(users []domain.PortalUser) Node {
	rows := make([]Node, 0, len(users))
	for _, u := range users {
		rows = append(rows, Tr(
			Td(Div(Class("text-bold"), Text(u.Name)), Div(Class(mutedClass()), Text(u.Email))),
			Td(Text(u.Role)),
			Td(statusLabel(u.Status, domain.StatusTone(u.Status))),
			Td(Text(u.LastLogin)),
			Td(Class(mutedClass()), Text(strings.Join(u.Permissions, ", "))),
		))
	}
	return Group{
		H2(Class("h4 mb-2"), Textf("Users (%d)", len(users))),
		listOrEmpty(rows, []string{"User", "Role", "Status", "Last Login", "Permissions"}, "No users."),
	}
}

func usageTone(percent int) string {
	switch {
	case percent >= 85:
		return domain.ToneDanger
	case percent >= 65:
		return domain.ToneAttention
	default:
		return domain.ToneSuccess
	}
}

func healthTab(st domain.SystemStats, services []domain.Stat) Node {
	usage := []struct {
		label   string
		percent int
	}{
		{"CPU Usage", st.CPUUsage},
		{"Memory Usage", st.MemoryUsage},
		{"Disk Usage", st.DiskUsage},
	}
	bars := make([]Node, 0, len(usage))
	for _, u := range usage {
		bars = append(bars, Div(
			Class("quality-row"),
			Div(Class("d-flex flex-justify-between text-small mb-1"), Span(Text(u.label)), Span(Class("color-fg-muted"), Textf("%d%%", u.percent))),
			progressBar(u.percent, usageTone(u.percent)),
		))
	}

	info := make([]Node, 0, len(services)+1)
	info = append(info, Li(Class("d-flex flex-justify-between py-1"), Span(Text("Average Response Time")), Strong(Text(st.AvgResponseTime))))
	for _, svc := range services {
		info = append(info, Li(Class("d-flex flex-justify-between py-1"), Span(Text(svc.Label)), statusLabel(svc.Value, svc.Tone)))
	}

	return Div(Class("health-grid"),
		Div(Class(cardClass()), H2(Class("h4 mb-3"), Text("System Performance")), Group(bars)),
		Div(Class(cardClass()), H2(Class("h4 mb-3"), Text("System Information")), Ul(Class("list-style-none"), Group(info))),
	)
}
