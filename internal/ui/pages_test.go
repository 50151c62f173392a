package ui

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codemap-portal/internal/catalog"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	h := NewHandler(catalog.MustLoad(), nil, false)
	r := chi.NewRouter()
	MountLanding(r, h)
	r.Route("/ui", func(r chi.Router) { MountRoutes(r, h) })
	return r
}

func get(t *testing.T, router http.Handler, target string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func postForm(t *testing.T, router http.Handler, target string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	form.Set(csrfFormField, testCSRFToken)
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: csrfCookieName, Value: testCSRFToken})
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestPages_Render(t *testing.T) {
	router := newTestRouter(t)
	tests := []struct {
		path string
		want []string
	}{
		{"/", []string{"Welcome to Ayush Vardhan", "Explore ICD-11, TM2, and NAMASTE codes", `href="/ui"`}},
		{"/ui", []string{"Dashboard", "Quick Actions", "12,847"}},
		{"/ui/namaste-codes", []string{"Manage and browse Namaste medical classification codes", "Namaste Codes (5 results)", "All Categories"}},
		{"/ui/tm2-codes", []string{"ICD-11 Codes (5 results)", "All Chapters"}},
		{"/ui/mappings", []string{"Mapping Quality Overview", "Code Mappings (5 results)", "Unassigned"}},
		{"/ui/profiles", []string{"Patient Records (4 results)", "Recent Activity", "Add Note"}},
		{"/ui/downloads", []string{"Select Data to Include", "Export Format", "Date Range", "Records: 27733", "Size: 36.9 MB"}},
		{"/ui/admin", []string{"Audit Logs (6 results)", "All Actions", "CREATE MAPPING"}},
		{"/ui/help", []string{"Search FAQs...", "What FHIR version is supported?"}},
		{"/ui/settings", []string{"Profile Information", "Dr. John Smith", "Save Changes"}},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rr := get(t, router, tt.path)
			require.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
			body := rr.Body.String()
			for _, want := range tt.want {
				assert.Contains(t, body, want)
			}
		})
	}
}

func TestPages_MarkActiveNavItem(t *testing.T) {
	rr := get(t, newTestRouter(t), "/ui/mappings")
	body := rr.Body.String()
	assert.Contains(t, body, `href="/ui/mappings" class="app-nav-link Link--secondary d-flex flex-items-center active"`)
	assert.Equal(t, 1, strings.Count(body, `aria-current="page"`))
}

func TestUnknownPage_FallsBackToDashboard(t *testing.T) {
	rr := get(t, newTestRouter(t), "/ui/billing")
	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "Quick Actions")
	assert.Contains(t, body, `href="/ui" class="app-nav-link Link--secondary d-flex flex-items-center active"`)
}

func TestListPages_ServerSideFilter(t *testing.T) {
	router := newTestRouter(t)
	tests := []struct {
		target string
		want   string
	}{
		{"/ui/namaste-codes?q=NAM001", "Namaste Codes (1 results)"},
		{"/ui/namaste-codes?category=Cardiovascular", "Namaste Codes (1 results)"},
		{"/ui/namaste-codes?category=all&q=+", "Namaste Codes (5 results)"},
		{"/ui/tm2-codes?chapter=Diseases+of+the+respiratory+system", "ICD-11 Codes (1 results)"},
		{"/ui/mappings?status=Approved", "Code Mappings (3 results)"},
		{"/ui/profiles?q=nam001&status=Discharged", "Patient Records (1 results)"},
		{"/ui/admin?tab=audit-logs&action=LOGIN_FAILED", "Audit Logs (1 results)"},
		{"/ui/namaste-codes?q=zzz", "Namaste Codes (0 results)"},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rr := get(t, router, tt.target)
			require.Equal(t, http.StatusOK, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.want)
		})
	}
}

func TestListPages_EmptyState(t *testing.T) {
	rr := get(t, newTestRouter(t), "/ui/mappings?q=nothing-matches")
	assert.Contains(t, rr.Body.String(), "No mappings match the current filters.")
}

func TestDrawer_OpenWithoutScript(t *testing.T) {
	router := newTestRouter(t)

	rr := get(t, router, "/ui/tm2-codes?menu=open&q=anxiety")
	body := rr.Body.String()
	assert.Contains(t, body, `class="app-shell sidebar-expanded nav-open"`)
	assert.Contains(t, body, `aria-expanded="true"`)
	// overlay closes the drawer and keeps the filter
	assert.Contains(t, body, `id="app-overlay" class="app-overlay" href="/ui/tm2-codes?q=anxiety"`)

	rr = get(t, router, "/ui/tm2-codes")
	assert.Contains(t, rr.Body.String(), `class="app-shell sidebar-expanded"`)
}

func TestDrawer_OpenOnFallbackPage(t *testing.T) {
	rr := get(t, newTestRouter(t), "/ui/billing?menu=open")
	body := rr.Body.String()
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, body, `class="app-shell sidebar-expanded nav-open"`)
	assert.Contains(t, body, `aria-expanded="true"`)
}

func TestListPages_RowFilterMatchesPerField(t *testing.T) {
	rr := get(t, newTestRouter(t), "/ui/tm2-codes")
	assert.Contains(t, rr.Body.String(), `data-show="$q === &#39;&#39; || [&#34;mg30.0&#34;,&#34;`)
}

func TestSidebarToggle(t *testing.T) {
	router := newTestRouter(t)

	rr := postForm(t, router, "/ui/sidebar", url.Values{"return_to": {"/ui/mappings?status=Approved"}})
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/ui/mappings?status=Approved", rr.Header().Get("Location"))
	assert.Contains(t, rr.Header().Values("Set-Cookie"), "portal_sidebar=0; Path=/; Max-Age=31536000; SameSite=Lax")

	collapsed := &http.Cookie{Name: sidebarCookieName, Value: "0"}
	rr = get(t, router, "/ui/mappings", collapsed)
	body := rr.Body.String()
	assert.Contains(t, body, `class="app-shell sidebar-collapsed"`)
	assert.Contains(t, body, "--sidebar-width: 64px")

	rr = postForm(t, router, "/ui/sidebar", url.Values{"return_to": {"https://evil.example"}}, collapsed)
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/ui", rr.Header().Get("Location"))
	assert.Contains(t, rr.Header().Values("Set-Cookie")[0], "portal_sidebar=1")
}

func TestSidebarToggle_RequiresCSRF(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/ui/sidebar", strings.NewReader("return_to=/ui"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(rr, req)
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestProfiles_NoteDialog(t *testing.T) {
	router := newTestRouter(t)

	rr := get(t, router, "/ui/profiles?note=P001234")
	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "Add Note for John Doe")
	assert.Contains(t, body, `action="/ui/profiles/P001234/notes"`)
	assert.Contains(t, body, "Enter clinical note...")

	rr = get(t, router, "/ui/profiles?note=P999999")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestProfileNoteSubmit(t *testing.T) {
	router := newTestRouter(t)

	rr := postForm(t, router, "/ui/profiles/P001234/notes", url.Values{"note": {"Follow-up in two weeks"}})
	require.Equal(t, http.StatusSeeOther, rr.Code)
	loc, err := url.Parse(rr.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "/ui/profiles", loc.Path)
	assert.Contains(t, loc.Query().Get("notice"), "John Doe")

	rr = postForm(t, router, "/ui/profiles/P001234/notes", url.Values{"note": {"   "}})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = postForm(t, router, "/ui/profiles/P999999/notes", url.Values{"note": {"x"}})
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDownloads_Estimate(t *testing.T) {
	router := newTestRouter(t)
	tests := []struct {
		target  string
		records string
		size    string
	}{
		{"/ui/downloads?configured=true&format=xml&range=all-time&include=patients", "Records: 1456", "Size: 18.5 MB"},
		{"/ui/downloads?configured=true&include=namaste,icd11,mappings,patients", "Records: 29189", "Size: 55.4 MB"},
		{"/ui/downloads?configured=true", "Records: 0", "Size: 0.0 MB"},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rr := get(t, router, tt.target)
			require.Equal(t, http.StatusOK, rr.Code)
			body := rr.Body.String()
			assert.Contains(t, body, tt.records)
			assert.Contains(t, body, tt.size)
		})
	}
}

func TestDownloads_RejectsInvalidRequest(t *testing.T) {
	router := newTestRouter(t)
	for _, target := range []string{
		"/ui/downloads?format=pdf",
		"/ui/downloads?range=yesterday",
		"/ui/downloads?configured=true&include=billing",
	} {
		rr := get(t, router, target)
		assert.Equal(t, http.StatusBadRequest, rr.Code, target)
	}
}

func TestAdmin_Tabs(t *testing.T) {
	router := newTestRouter(t)

	rr := get(t, router, "/ui/admin?tab=user-management")
	body := rr.Body.String()
	assert.Contains(t, body, "Users (4)")
	assert.Contains(t, body, "smith@hospital.com")

	rr = get(t, router, "/ui/admin?tab=system-health")
	body = rr.Body.String()
	assert.Contains(t, body, "System Performance")
	assert.Contains(t, body, "System Information")
	assert.Contains(t, body, "width: 68%")

	rr = get(t, router, "/ui/admin?tab=unknown")
	assert.Contains(t, rr.Body.String(), "Audit Logs (6 results)")
}

func TestHelp_Tabs(t *testing.T) {
	router := newTestRouter(t)

	rr := get(t, router, "/ui/help?tab=faq&q=no+question+mentions+this")
	assert.Contains(t, rr.Body.String(), "No questions match your search.")

	rr = get(t, router, "/ui/help?tab=api")
	body := rr.Body.String()
	assert.Contains(t, body, "https://api.codemapping.hospital.com")
	assert.Contains(t, body, "Label Label--success")

	rr = get(t, router, "/ui/help?tab=support")
	body = rr.Body.String()
	assert.Contains(t, body, "support@codemapping.hospital.com")
	assert.Contains(t, body, "Operational")
}

func TestSettingsSubmit(t *testing.T) {
	router := newTestRouter(t)

	rr := postForm(t, router, "/ui/settings", url.Values{
		"tab":      {"profile"},
		"name":     {"Dr. Jane Roe"},
		"email":    {"jane.roe@hospital.com"},
		"timezone": {"Europe/London"},
	})
	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "were not saved")
	assert.Contains(t, body, `value="Dr. Jane Roe"`)

	rr = postForm(t, router, "/ui/settings", url.Values{
		"tab":   {"profile"},
		"name":  {""},
		"email": {"not-an-email"},
	})
	require.Equal(t, http.StatusBadRequest, rr.Code)
	body = rr.Body.String()
	assert.Contains(t, body, "Full name is required")
	assert.Contains(t, body, "Enter a valid email address")
	assert.Contains(t, body, `aria-invalid="true"`)

	rr = postForm(t, router, "/ui/settings", url.Values{"tab": {"privacy"}, "session_timeout": {"5"}})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSettingsSubmit_AppearanceWritesSidebarCookie(t *testing.T) {
	router := newTestRouter(t)

	rr := postForm(t, router, "/ui/settings", url.Values{
		"tab":               {"appearance"},
		"theme":             {"dark"},
		"font_size":         {"large"},
		"sidebar_collapsed": {"on"},
	})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, strings.Join(rr.Header().Values("Set-Cookie"), "\n"), "portal_sidebar=0")
	assert.Contains(t, rr.Body.String(), `class="app-shell sidebar-collapsed"`)
}

func TestSettings_SecurityTabIsInformational(t *testing.T) {
	rr := get(t, newTestRouter(t), "/ui/settings?tab=security")
	body := rr.Body.String()
	assert.Contains(t, body, "Two-Factor Authentication")
	assert.Contains(t, body, "Danger Zone")
	assert.NotContains(t, body, "Save Changes")
}

func TestStaticAssets(t *testing.T) {
	rr := get(t, newTestRouter(t), "/ui/static/css/app.css")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), ".app-shell")
}
