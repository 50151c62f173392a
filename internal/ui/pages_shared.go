package ui

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"codemap-portal/internal/domain"
	"codemap-portal/internal/filter"
	"codemap-portal/internal/nav"

	. "maragu.dev/gomponents"
	data "maragu.dev/gomponents-datastar"
	. "maragu.dev/gomponents/html"
)

const (
	brandName   = "AyushVardhan"
	drawerTitle = "Code Mapping Portal"
	appVersion  = "v1.0"
)

// shell is everything the page chrome needs from the request.
type shell struct {
	Title    string
	Subtitle string
	Nav      *nav.Model
	CSRF     Node
	// Path is the request URI without ?menu, used to return after a
	// sidebar toggle and to close the drawer without JavaScript.
	Path string
}

func (h *Handler) shell(w http.ResponseWriter, r *http.Request, page, title, subtitle string) shell {
	return shell{
		Title:    title,
		Subtitle: subtitle,
		Nav:      h.navModel(w, r, page),
		CSRF:     csrfField(r),
		Path:     withoutParam(r.URL, "menu"),
	}
}

func withoutParam(u *url.URL, key string) string {
	q := u.Query()
	q.Del(key)
	out := u.Path
	if enc := q.Encode(); enc != "" {
		out += "?" + enc
	}
	return out
}

func withParam(path, key, value string) string {
	u, err := url.Parse(path)
	if err != nil {
		return path
	}
	q := u.Query()
	q.Set(key, value)
	u.RawQuery = q.Encode()
	return u.String()
}

func headNodes(title string) Node {
	return Head(
		Meta(Charset("utf-8")),
		Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
		TitleEl(Text(title+" | "+drawerTitle)),
		Link(Rel("icon"), Href("data:,")),
		Link(Rel("preconnect"), Href("https://fonts.googleapis.com")),
		Link(Rel("preconnect"), Href("https://fonts.gstatic.com"), Attr("crossorigin", "")),
		Link(Rel("stylesheet"), Href("https://fonts.googleapis.com/css2?family=Inter:wght@400;500;600;700&display=swap")),
		Link(Rel("stylesheet"), Href("https://unpkg.com/@primer/css@21.5.1/dist/primer.css")),
		Link(Rel("stylesheet"), Href(uiStylesheetHref())),
		Script(Raw(themeInitScript)),
		Script(Src("https://unpkg.com/lucide@latest/dist/umd/lucide.min.js")),
		Script(
			Type("module"),
			Src("https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.7/bundles/datastar.js"),
		),
	)
}

func htmlRoot(children ...Node) Node {
	return HTML(
		Lang("en"),
		Attr("data-color-mode", "auto"),
		Attr("data-light-theme", "light"),
		Attr("data-dark-theme", "dark"),
		Group(children),
	)
}

func icon(name string, extra ...string) Node {
	className := strings.TrimSpace("icon " + strings.Join(extra, " "))
	return I(Class(className), Attr("data-lucide", name), Attr("aria-hidden", "true"))
}

func appPage(s shell, body ...Node) Node {
	m := s.Nav
	links := make([]Node, 0, len(nav.Items()))
	for _, item := range nav.Items() {
		className := "app-nav-link Link--secondary d-flex flex-items-center"
		var current Node
		if m.Active(item.ID) {
			className += " active"
			current = Attr("aria-current", "page")
		}
		links = append(links, A(
			Href(item.Href),
			Class(className),
			Title(item.Label),
			current,
			I(Class("nav-icon"), Attr("data-lucide", item.Icon), Attr("aria-hidden", "true")),
			Span(Class("nav-label"), Text(item.Label)),
		))
	}

	shellClass := "app-shell " + m.WidthClass()
	if m.DrawerOpen {
		shellClass += " nav-open"
	}
	toggleLabel := "Collapse sidebar"
	if !m.Expanded {
		toggleLabel = "Expand sidebar"
	}
	drawerHidden := "true"
	if m.DrawerOpen {
		drawerHidden = "false"
	}

	return htmlRoot(
		headNodes(s.Title),
		Body(
			Div(
				ID("app-shell"),
				Class(shellClass),
				Style("--sidebar-width: "+strconv.Itoa(m.Width())+"px"),
				Attr("data-expanded-width", strconv.Itoa(nav.ExpandedWidth)),
				Attr("data-collapsed-width", strconv.Itoa(nav.CollapsedWidth)),
				A(
					ID("app-overlay"),
					Class("app-overlay"),
					Href(s.Path),
					Attr("aria-hidden", drawerHidden),
					Attr("tabindex", "-1"),
					Span(Class("sr-only"), Text("Close menu")),
				),
				Aside(
					ID("app-sidebar"),
					Class("app-sidebar"),
					Attr("aria-label", "Primary"),
					Div(
						Class("brand d-flex flex-items-center flex-justify-between"),
						A(Href(nav.Href(nav.PageLanding)), Class("brand-link Link--primary"),
							I(Class("nav-icon"), Attr("data-lucide", "activity"), Attr("aria-hidden", "true")),
							Strong(Class("nav-label"), Text(brandName)),
						),
						Span(Class("drawer-title text-bold"), Text(drawerTitle)),
						A(ID("nav-close"), Class("btn-octicon drawer-close"), Href(s.Path), Attr("aria-label", "Close menu"), icon("x")),
					),
					Nav(Class("app-nav"), Group(links)),
					Div(Class("sidebar-footer color-fg-muted text-small"), Span(Class("nav-label"), Text(appVersion+" • Signed in"))),
				),
				Section(
					Class("app-main"),
					Div(
						Class("topbar d-flex flex-items-center flex-justify-between"),
						Div(
							Class("d-flex flex-items-center gap-2"),
							A(
								ID("nav-toggle"),
								Class("btn btn-sm btn-octicon nav-toggle"),
								Href(withParam(s.Path, "menu", "open")),
								Attr("aria-controls", "app-sidebar"),
								Attr("aria-expanded", strconv.FormatBool(m.DrawerOpen)),
								Attr("aria-label", "Open menu"),
								icon("menu"),
							),
							Form(
								Class("sidebar-toggle-form"),
								Method("post"),
								Action("/ui/sidebar"),
								s.CSRF,
								Input(Type("hidden"), Name("return_to"), Value(s.Path)),
								Button(
									ID("sidebar-toggle"),
									Type("submit"),
									Class("btn btn-sm btn-octicon"),
									Attr("aria-label", toggleLabel),
									Title(toggleLabel),
									Attr("aria-pressed", strconv.FormatBool(!m.Expanded)),
									icon("panel-left"),
								),
							),
							H1(Class("page-title"), Text(s.Title)),
						),
						Button(
							ID("theme-toggle"),
							Type("button"),
							Class("btn btn-sm btn-octicon"),
							Attr("aria-label", "Switch theme"),
							I(ID("theme-icon-sun"), Class("icon"), Attr("data-lucide", "sun"), Attr("aria-hidden", "true")),
							I(ID("theme-icon-moon"), Class("icon is-hidden"), Attr("data-lucide", "moon"), Attr("aria-hidden", "true")),
						),
					),
					Div(
						Class("content"),
						If(s.Subtitle != "", P(Class("page-subtitle color-fg-muted mb-3"), Text(s.Subtitle))),
						Group(body),
					),
				),
			),
			Script(Raw("if (window.lucide) { window.lucide.createIcons(); }")),
			Script(Raw(themeBehaviorScript)),
			Script(Raw(shellBehaviorScript)),
		),
	)
}

func errorPage(title, message string) Node {
	return htmlRoot(
		headNodes(title),
		Body(
			Main(
				Class("layout"),
				H1(Class("page-title"), Text(title)),
				P(Text(message)),
				P(A(Href(nav.Href(nav.PageHome)), Text("Back to dashboard"))),
			),
			Script(Raw("if (window.lucide) { window.lucide.createIcons(); }")),
		),
	)
}

// containsExpr is the datastar expression that hides a row while the quick
// filter text is not part of any of fields. It matches like filter.Match.
func containsExpr(fields ...string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = strconv.Quote(strings.ToLower(f))
	}
	return "$q === '' || [" + strings.Join(quoted, ",") + "].some(f => f.includes($q.toLowerCase()))"
}

func rowFilter(fields ...string) Node {
	return data.Show(containsExpr(fields...))
}

func cardClass(extra ...string) string {
	parts := []string{"Box", "p-3", "mb-3", "card"}
	parts = append(parts, extra...)
	return strings.Join(parts, " ")
}

func mutedClass() string {
	return "color-fg-muted text-small"
}

func primaryButtonClass() string {
	return "btn btn-primary"
}

func secondaryButtonClass() string {
	return "btn"
}

// selectControl is a dropdown rendered next to the quick filter.
type selectControl struct {
	Name     string
	Label    string
	Options  []filter.Option
	Selected string
}

func (s selectControl) node() Node {
	selected := filter.Normalize(s.Selected)
	opts := make([]Node, 0, len(s.Options))
	for _, o := range s.Options {
		opts = append(opts, Option(Value(o.Value), If(o.Value == selected, Selected()), Text(o.Label)))
	}
	return Div(
		Class("d-flex flex-items-center gap-2"),
		Label(Class("sr-only"), For("filter-"+s.Name), Text(s.Label)),
		Select(ID("filter-"+s.Name), Name(s.Name), Class("form-select"), Group(opts)),
	)
}

// quickFilterCard renders the list toolbar: a GET form the server filters
// on, plus a datastar q signal so rows hide while typing.
func quickFilterCard(action, placeholder, q string, sel *selectControl, hidden ...Node) Node {
	q = strings.TrimSpace(q)
	controls := []Node{
		Div(
			Class("d-flex flex-items-center gap-2 flex-1"),
			Label(Class("sr-only"), For("filter-q"), Text("Search")),
			icon("search", "color-fg-muted"),
			Input(ID("filter-q"), Type("search"), Name("q"), Value(q), Class("form-control flex-1"), Placeholder(placeholder), data.Bind("q"), AutoComplete("off")),
		),
	}
	if sel != nil {
		controls = append(controls, sel.node())
	}
	controls = append(controls, Button(Type("submit"), Class(secondaryButtonClass()), Text("Apply")))
	return Form(
		Class(cardClass("toolbar")),
		Method("get"),
		Action(action),
		data.Signals(map[string]any{"q": q}),
		Group(hidden),
		Div(Class("d-flex flex-wrap flex-items-center gap-2"), Group(controls)),
	)
}

func hiddenInput(name, value string) Node {
	return Input(Type("hidden"), Name(name), Value(value))
}

func emptyStateCard(message string) Node {
	return Div(
		Class(cardClass("blankslate")),
		P(Class("color-fg-muted mb-0"), Text(message)),
	)
}

func statusLabel(text, tone string) Node {
	className := "Label"
	if tone != "" {
		className += " Label--" + tone
	}
	return Span(Class(className), Text(text))
}

func resultsTitle(title string, n int) Node {
	return H2(Class("h4 mb-2"), Textf("%s (%d results)", title, n))
}

func statCards(stats []domain.Stat) Node {
	if len(stats) == 0 {
		return nil
	}
	cards := make([]Node, 0, len(stats))
	for _, s := range stats {
		valueClass := "stat-value"
		if s.Tone != "" {
			valueClass += " color-fg-" + s.Tone
		}
		cards = append(cards, Div(
			Class(cardClass("stat-card")),
			P(Class(mutedClass()+" mb-1"), Text(s.Label)),
			P(Class(valueClass), Text(s.Value)),
			If(s.Change != "", P(Class("color-fg-success text-small mb-0"), Text(s.Change))),
		))
	}
	return Div(Class("stat-grid"), Group(cards))
}

func progressBar(percent int, tone string) Node {
	percent = max(0, min(percent, 100))
	return Span(
		Class("Progress"),
		Span(Class("Progress-item color-bg-"+tone+"-emphasis"), Style("width: "+strconv.Itoa(percent)+"%")),
	)
}

type tab struct {
	ID    string
	Label string
}

// tabNav renders tabs as links so each tab has its own URL.
func tabNav(base string, tabs []tab, active string) Node {
	items := make([]Node, 0, len(tabs))
	for _, t := range tabs {
		var current Node
		if t.ID == active {
			current = Attr("aria-current", "page")
		}
		items = append(items, A(Href(withParam(base, "tab", t.ID)), Class("UnderlineNav-item"), current, Text(t.Label)))
	}
	return Nav(Class("UnderlineNav mb-3"), Attr("aria-label", "Tabs"), Div(Class("UnderlineNav-body"), Group(items)))
}

func tableCard(head []string, rows []Node) Node {
	ths := make([]Node, 0, len(head))
	for _, h := range head {
		ths = append(ths, Th(Text(h)))
	}
	return Div(Class(cardClass("table-wrap")), Table(Class("data-table"), THead(Tr(Group(ths))), TBody(Group(rows))))
}

func noticeFlash(message string) Node {
	return Div(Class("flash mb-3"), Attr("role", "status"), Text(message))
}

func orDash(v *string) string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return "-"
	}
	return *v
}
