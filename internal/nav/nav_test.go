package nav

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codemap-portal/internal/domain"
)

func TestNew_Defaults(t *testing.T) {
	m := New(PageMappings)
	assert.True(t, m.Expanded)
	assert.False(t, m.DrawerOpen)
	assert.Equal(t, PageMappings, m.Current)
	assert.Equal(t, ExpandedWidth, m.Width())
}

func TestNew_UnknownPageFallsBackToHome(t *testing.T) {
	assert.Equal(t, PageHome, New("nope").Current)
	assert.Equal(t, PageHome, New(PageLanding).Current)
}

func TestToggleExpanded_ChangesWidthAndNotifies(t *testing.T) {
	var notified []bool
	m := New(PageHome)
	m.OnToggle = func(expanded bool) { notified = append(notified, expanded) }

	m.ToggleExpanded()
	assert.False(t, m.Expanded)
	assert.Equal(t, CollapsedWidth, m.Width())
	assert.Equal(t, "sidebar-collapsed", m.WidthClass())

	m.ToggleExpanded()
	assert.True(t, m.Expanded)
	assert.Equal(t, ExpandedWidth, m.Width())
	assert.Equal(t, "sidebar-expanded", m.WidthClass())

	assert.Equal(t, []bool{false, true}, notified)
}

func TestSetExpanded_NilCallback(t *testing.T) {
	m := New(PageHome)
	assert.NotPanics(t, func() { m.SetExpanded(false) })
	assert.False(t, m.Expanded)
}

func TestHandleKey_EscapeClosesDrawer(t *testing.T) {
	m := New(PageHome)
	m.OpenDrawer()

	m.HandleKey("Enter")
	assert.True(t, m.DrawerOpen)

	m.HandleKey(KeyEscape)
	assert.False(t, m.DrawerOpen)
}

func TestHandlePointerDown(t *testing.T) {
	m := New(PageHome)
	m.OpenDrawer()

	m.HandlePointerDown(true)
	assert.True(t, m.DrawerOpen, "press inside the drawer keeps it open")

	m.HandlePointerDown(false)
	assert.False(t, m.DrawerOpen)

	m.HandlePointerDown(false)
	assert.False(t, m.DrawerOpen)
}

func TestToggleDrawer(t *testing.T) {
	m := New(PageHome)
	m.ToggleDrawer()
	assert.True(t, m.DrawerOpen)
	m.ToggleDrawer()
	assert.False(t, m.DrawerOpen)
}

func TestSelect_ClosesDrawerAndNotifies(t *testing.T) {
	var changed string
	m := New(PageHome)
	m.OnPageChange = func(id string) { changed = id }
	m.OpenDrawer()

	require.NoError(t, m.Select(PageAdmin))
	assert.False(t, m.DrawerOpen)
	assert.Equal(t, PageAdmin, m.Current)
	assert.Equal(t, PageAdmin, changed)
	assert.True(t, m.Active(PageAdmin))
	assert.False(t, m.Active(PageHome))
}

func TestSelect_UnknownPage(t *testing.T) {
	called := false
	m := New(PageHome)
	m.OnPageChange = func(string) { called = true }
	m.OpenDrawer()

	err := m.Select("reports")
	require.Error(t, err)
	var validation *domain.ValidationError
	assert.True(t, errors.As(err, &validation))
	assert.False(t, called)
	assert.True(t, m.DrawerOpen)
	assert.Equal(t, PageHome, m.Current)
}

func TestItems(t *testing.T) {
	got := Items()
	require.Len(t, got, 9)
	assert.Equal(t, PageHome, got[0].ID)
	assert.Equal(t, PageSettings, got[len(got)-1].ID)

	got[0].Label = "changed"
	assert.Equal(t, "Home", Items()[0].Label)
}

func TestItems_CarryHref(t *testing.T) {
	for _, it := range Items() {
		assert.Equal(t, Href(it.ID), it.Href, it.ID)
	}
	assert.Equal(t, "/ui", Items()[0].Href)
	assert.Equal(t, "/ui/settings", Items()[8].Href)
}

func TestHref(t *testing.T) {
	assert.Equal(t, "/", Href(PageLanding))
	assert.Equal(t, "/ui", Href(PageHome))
	assert.Equal(t, "/ui/tm2-codes", Href(PageTM2))
}
