// Package settings validates the settings page forms. Nothing is persisted.
package settings

import (
	"net/mail"
	"slices"
	"sort"
	"strings"

	"codemap-portal/internal/domain"
)

// Option is a select entry.
type Option struct {
	Value string
	Label string
}

// Timezones offered on the profile tab.
var Timezones = []Option{
	{"America/New_York", "Eastern Time (ET)"},
	{"America/Chicago", "Central Time (CT)"},
	{"America/Denver", "Mountain Time (MT)"},
	{"America/Los_Angeles", "Pacific Time (PT)"},
	{"Europe/London", "Greenwich Mean Time (GMT)"},
	{"Europe/Paris", "Central European Time (CET)"},
}

// SessionTimeouts offered on the privacy tab, in minutes.
var SessionTimeouts = []Option{
	{"15", "15 minutes"},
	{"30", "30 minutes"},
	{"60", "1 hour"},
	{"120", "2 hours"},
	{"480", "8 hours"},
}

var (
	Visibilities = []Option{{"public", "Public"}, {"team", "Team only"}, {"private", "Private"}}
	Themes       = []Option{{"light", "Light"}, {"dark", "Dark"}, {"system", "System"}}
	FontSizes    = []Option{{"small", "Small"}, {"medium", "Medium"}, {"large", "Large"}}
)

// Tab identifiers.
const (
	TabProfile       = "profile"
	TabNotifications = "notifications"
	TabPrivacy       = "privacy"
	TabAppearance    = "appearance"
	TabSecurity      = "security"
)

// Tabs lists the settings tabs in display order.
var Tabs = []Option{
	{TabProfile, "Profile"},
	{TabNotifications, "Notifications"},
	{TabPrivacy, "Privacy"},
	{TabAppearance, "Appearance"},
	{TabSecurity, "Security"},
}

// ResolveTab returns tab if it exists, else the profile tab.
func ResolveTab(tab string) string {
	if hasValue(Tabs, tab) {
		return tab
	}
	return TabProfile
}

// Form is a submitted settings form.
type Form struct {
	Profile    domain.UserProfile
	Privacy    domain.PrivacySettings
	Appearance domain.AppearanceSettings
}

// FieldErrors maps a form field name to its message.
type FieldErrors map[string]string

// Fields returns the failing field names in sorted order.
func (fe FieldErrors) Fields() []string {
	out := make([]string, 0, len(fe))
	for k := range fe {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Err converts field errors into a ValidationError, or nil when empty.
func (fe FieldErrors) Err() error {
	if len(fe) == 0 {
		return nil
	}
	msgs := make([]string, 0, len(fe))
	for _, f := range fe.Fields() {
		msgs = append(msgs, f+": "+fe[f])
	}
	return domain.ErrValidation("invalid settings: %s", strings.Join(msgs, "; "))
}

// Validate checks a submitted form. Empty enum fields are left alone so a
// tab that does not post them still validates.
func Validate(f Form) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(f.Profile.Name) == "" {
		errs["name"] = "Full name is required"
	}
	if !validEmail(f.Profile.Email) {
		errs["email"] = "Enter a valid email address"
	}
	if f.Profile.Timezone != "" && !hasValue(Timezones, f.Profile.Timezone) {
		errs["timezone"] = "Choose one of the listed timezones"
	}
	if f.Privacy.SessionTimeout != "" && !hasValue(SessionTimeouts, f.Privacy.SessionTimeout) {
		errs["session_timeout"] = "Choose one of the listed session timeouts"
	}
	if f.Privacy.ProfileVisibility != "" && !hasValue(Visibilities, f.Privacy.ProfileVisibility) {
		errs["profile_visibility"] = "Unknown visibility"
	}
	if f.Appearance.Theme != "" && !hasValue(Themes, f.Appearance.Theme) {
		errs["theme"] = "Unknown theme"
	}
	if f.Appearance.FontSize != "" && !hasValue(FontSizes, f.Appearance.FontSize) {
		errs["font_size"] = "Unknown font size"
	}
	return errs
}

func validEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	_, domainPart, ok := strings.Cut(s, "@")
	return ok && strings.Contains(domainPart, ".")
}

func hasValue(opts []Option, v string) bool {
	return slices.ContainsFunc(opts, func(o Option) bool { return o.Value == v })
}
