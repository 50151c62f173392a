// Package nav models the portal sidebar: a desktop sidebar that expands and
// collapses, and a mobile drawer that opens over the page.
package nav

import (
	"codemap-portal/internal/domain"
)

// Page identifiers.
const (
	PageLanding   = "landing"
	PageHome      = "home"
	PageNamaste   = "namaste-codes"
	PageTM2       = "tm2-codes"
	PageMappings  = "mappings"
	PageProfiles  = "profiles"
	PageDownloads = "downloads"
	PageAdmin     = "admin"
	PageHelp      = "help"
	PageSettings  = "settings"
)

// Sidebar widths in pixels.
const (
	ExpandedWidth  = 261
	CollapsedWidth = 64
)

// KeyEscape is the key name that dismisses the drawer.
const KeyEscape = "Escape"

// Item is a sidebar entry.
type Item struct {
	ID    string
	Label string
	Icon  string
	Href  string
}

var items = []Item{
	{ID: PageHome, Label: "Home", Icon: "house"},
	{ID: PageNamaste, Label: "Namaste Codes", Icon: "heart-handshake"},
	{ID: PageTM2, Label: "TM2 / ICD-11", Icon: "code"},
	{ID: PageMappings, Label: "Mappings", Icon: "map"},
	{ID: PageProfiles, Label: "Patient Records", Icon: "users"},
	{ID: PageDownloads, Label: "FHIR Downloads", Icon: "download"},
	{ID: PageAdmin, Label: "Admin", Icon: "shield"},
	{ID: PageHelp, Label: "Help", Icon: "circle-help"},
	{ID: PageSettings, Label: "Settings", Icon: "settings"},
}

// Items returns the sidebar entries in display order.
func Items() []Item {
	out := make([]Item, len(items))
	for i, it := range items {
		it.Href = Href(it.ID)
		out[i] = it
	}
	return out
}

// Known reports whether id names a sidebar page.
func Known(id string) bool {
	for _, it := range items {
		if it.ID == id {
			return true
		}
	}
	return false
}

// Resolve maps a page id to one the sidebar can show. Unknown ids fall back
// to the dashboard.
func Resolve(id string) string {
	if Known(id) {
		return id
	}
	return PageHome
}

// Href returns the URL of a page.
func Href(id string) string {
	switch id {
	case PageLanding:
		return "/"
	case PageHome:
		return "/ui"
	default:
		return "/ui/" + id
	}
}

// Model is the navigation state of one rendered shell.
type Model struct {
	Expanded   bool
	DrawerOpen bool
	Current    string

	// OnToggle is called with the new expansion after every change to
	// Expanded.
	OnToggle func(expanded bool)
	// OnPageChange is called when a nav item is selected.
	OnPageChange func(id string)
}

// New returns an expanded model on the given page with the drawer closed.
func New(current string) *Model {
	return &Model{Expanded: true, Current: Resolve(current)}
}

// Width returns the sidebar width in pixels.
func (m *Model) Width() int {
	if m.Expanded {
		return ExpandedWidth
	}
	return CollapsedWidth
}

// WidthClass returns the CSS class carrying the sidebar width.
func (m *Model) WidthClass() string {
	if m.Expanded {
		return "sidebar-expanded"
	}
	return "sidebar-collapsed"
}

// ToggleExpanded flips the desktop sidebar.
func (m *Model) ToggleExpanded() {
	m.SetExpanded(!m.Expanded)
}

// SetExpanded sets the desktop sidebar state and notifies OnToggle.
func (m *Model) SetExpanded(expanded bool) {
	m.Expanded = expanded
	if m.OnToggle != nil {
		m.OnToggle(expanded)
	}
}

// ToggleDrawer opens a closed drawer and closes an open one.
func (m *Model) ToggleDrawer() {
	m.DrawerOpen = !m.DrawerOpen
}

func (m *Model) OpenDrawer()  { m.DrawerOpen = true }
func (m *Model) CloseDrawer() { m.DrawerOpen = false }

// HandleKey closes the drawer on Escape. Other keys are ignored.
func (m *Model) HandleKey(key string) {
	if key == KeyEscape {
		m.CloseDrawer()
	}
}

// HandlePointerDown closes an open drawer when the press landed outside it.
func (m *Model) HandlePointerDown(insideDrawer bool) {
	if m.DrawerOpen && !insideDrawer {
		m.CloseDrawer()
	}
}

// Select activates a nav item: the drawer closes and OnPageChange fires.
func (m *Model) Select(id string) error {
	if !Known(id) {
		return domain.ErrValidation("unknown page %q", id)
	}
	m.CloseDrawer()
	m.Current = id
	if m.OnPageChange != nil {
		m.OnPageChange(id)
	}
	return nil
}

// Active reports whether id is the current page.
func (m *Model) Active(id string) bool {
	return m.Current == id
}
