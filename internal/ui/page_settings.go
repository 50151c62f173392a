package ui

import (
	"codemap-portal/internal/domain"
	"codemap-portal/internal/nav"
	"codemap-portal/internal/settings"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type settingsData struct {
	Tab    string
	Values domain.UserSettings
	Errors settings.FieldErrors
	Notice string
}

var languages = []settings.Option{
	{Value: "en", Label: "English"},
	{Value: "hi", Label: "Hindi"},
	{Value: "es", Label: "Spanish"},
	{Value: "fr", Label: "French"},
}

func settingsTabs() []tab {
	out := make([]tab, 0, len(settings.Tabs))
	for _, t := range settings.Tabs {
		out = append(out, tab{ID: t.Value, Label: t.Label})
	}
	return out
}

func settingsPage(s shell, d settingsData) Node {
	var body Node
	switch d.Tab {
	case settings.TabNotifications:
		body = notificationsTab(d)
	case settings.TabPrivacy:
		body = privacyTab(d)
	case settings.TabAppearance:
		body = appearanceTab(d)
	case settings.TabSecurity:
		body = securityTab()
	default:
		body = profileTab(d)
	}
	if d.Tab != settings.TabSecurity {
		body = Form(
			Method("post"),
			Action(nav.Href(nav.PageSettings)),
			s.CSRF,
			hiddenInput("tab", d.Tab),
			body,
			Div(Class("d-flex flex-justify-end"), Button(Type("submit"), Class(primaryButtonClass()), icon("save"), Text(" Save Changes"))),
		)
	}
	return appPage(s,
		If(d.Notice != "", noticeFlash(d.Notice)),
		If(len(d.Errors) > 0, Div(Class("flash flash-error mb-3"), Attr("role", "alert"), Text("Please correct the highlighted fields."))),
		tabNav(nav.Href(nav.PageSettings), settingsTabs(), d.Tab),
		body,
	)
}

func fieldError(errs settings.FieldErrors, name string) Node {
	msg, ok := errs[name]
	if !ok {
		return nil
	}
	return P(ID(name+"-error"), Class("field-error"), Text(msg))
}

func textField(errs settings.FieldErrors, name, label, value, inputType string) Node {
	_, invalid := errs[name]
	return Div(Class("form-group"),
		Div(Class("form-group-header"), Label(For(name), Text(label))),
		Div(Class("form-group-body"),
			Input(ID(name), Name(name), Type(inputType), Value(value), Class("form-control width-full"),
				If(invalid, Aria("invalid", "true")), If(invalid, Aria("describedby", name+"-error"))),
			fieldError(errs, name),
		),
	)
}

func selectField(errs settings.FieldErrors, name, label, value string, opts []settings.Option) Node {
	options := make([]Node, 0, len(opts))
	for _, o := range opts {
		options = append(options, Option(Value(o.Value), If(o.Value == value, Selected()), Text(o.Label)))
	}
	return Div(Class("form-group"),
		Div(Class("form-group-header"), Label(For(name), Text(label))),
		Div(Class("form-group-body"),
			Select(ID(name), Name(name), Class("form-select"), Group(options)),
			fieldError(errs, name),
		),
	)
}

func toggleRow(name, label, description string, checked bool) Node {
	return Div(Class("toggle-row"),
		Div(Label(For(name), Class("text-bold"), Text(label)), P(Class(mutedClass()+" mb-0"), Text(description))),
		Input(ID(name), Type("checkbox"), Name(name), Value("true"), Class("toggle-switch"), If(checked, Checked())),
	)
}

func profileTab(d settingsData) Node {
	p := d.Values.Profile
	return Div(Class(cardClass()),
		H2(Class("h4 mb-3"), Text("Profile Information")),
		textField(d.Errors, "name", "Full Name", p.Name, "text"),
		textField(d.Errors, "email", "Email Address", p.Email, "email"),
		textField(d.Errors, "title", "Job Title", p.Title, "text"),
		textField(d.Errors, "department", "Department", p.Department, "text"),
		textField(d.Errors, "phone", "Phone Number", p.Phone, "tel"),
		Div(Class("form-group"),
			Div(Class("form-group-header"), Label(For("bio"), Text("Bio"))),
			Div(Class("form-group-body"), Textarea(ID("bio"), Name("bio"), Rows("3"), Class("form-control width-full"), Text(p.Bio))),
		),
		selectField(d.Errors, "timezone", "Timezone", p.Timezone, settings.Timezones),
		selectField(d.Errors, "language", "Language", p.Language, languages),
	)
}

func notificationsTab(d settingsData) Node {
	rows := make([]Node, 0, len(d.Values.Notifications))
	for _, n := range d.Values.Notifications {
		rows = append(rows, toggleRow(n.Key, n.Label, n.Description, n.Enabled))
	}
	return Div(Class(cardClass()), H2(Class("h4 mb-3"), Text("Notification Preferences")), Group(rows))
}

func privacyTab(d settingsData) Node {
	p := d.Values.Privacy
	return Div(Class(cardClass()),
		H2(Class("h4 mb-3"), Text("Privacy Settings")),
		selectField(d.Errors, "profile_visibility", "Profile Visibility", p.ProfileVisibility, settings.Visibilities),
		toggleRow("activity_tracking", "Activity Tracking", "Allow the portal to record your activity for audit purposes", p.ActivityTracking),
		toggleRow("analytics_opt_in", "Analytics", "Share anonymous usage data to improve the portal", p.AnalyticsOptIn),
		toggleRow("data_sharing", "Data Sharing", "Share anonymized mapping data with research partners", p.DataSharing),
		selectField(d.Errors, "session_timeout", "Session Timeout", p.SessionTimeout, settings.SessionTimeouts),
	)
}

func appearanceTab(d settingsData) Node {
	a := d.Values.Appearance
	return Div(Class(cardClass()),
		H2(Class("h4 mb-3"), Text("Appearance")),
		Div(Class("form-group"),
			Div(Class("form-group-header"), Label(For("theme-mode"), Text("Theme"))),
			Div(Class("form-group-body"),
				Select(ID("theme-mode"), Name("theme"), Class("form-select"), Group(themeOptions(a.Theme))),
				fieldError(d.Errors, "theme"),
			),
		),
		selectField(d.Errors, "font_size", "Font Size", a.FontSize, settings.FontSizes),
		toggleRow("sidebar_collapsed", "Collapsed Sidebar", "Start with the navigation sidebar collapsed", a.SidebarCollapsed),
		toggleRow("high_contrast", "High Contrast", "Increase contrast for better readability", a.HighContrast),
		toggleRow("reduced_motion", "Reduced Motion", "Minimize animations and transitions", a.ReducedMotion),
	)
}

func themeOptions(selected string) []Node {
	out := make([]Node, 0, len(settings.Themes))
	for _, o := range settings.Themes {
		out = append(out, Option(Value(o.Value), If(o.Value == selected, Selected()), Text(o.Label)))
	}
	return out
}

// securityTab is informational; password and 2FA changes are not offered.
func securityTab() Node {
	return Group{
		Div(Class(cardClass()),
			H2(Class("h4 mb-3"), Text("Change Password")),
			FieldSet(Disabled(),
				passwordField("current_password", "Current Password"),
				passwordField("new_password", "New Password"),
				passwordField("confirm_password", "Confirm New Password"),
				Button(Type("button"), Class(primaryButtonClass()), Disabled(), Text("Update Password")),
			),
		),
		Div(Class(cardClass()),
			H2(Class("h4 mb-1"), Text("Two-Factor Authentication")),
			P(Class(mutedClass()), Text("Add an extra layer of security to your account")),
			toggleInfo("Authenticator App", "Use an authenticator app for 2FA"),
			toggleInfo("SMS Authentication", "Receive codes via text message"),
		),
		Div(Class(cardClass("danger-zone")),
			H2(Class("h4 mb-1 color-fg-danger"), Text("Danger Zone")),
			P(Class(mutedClass()), Text("Permanently delete your account and all associated data")),
			Button(Type("button"), Class("btn btn-danger"), Disabled(), Text("Delete Account")),
		),
	}
}

func passwordField(name, label string) Node {
	return Div(Class("form-group"),
		Div(Class("form-group-header"), Label(For(name), Text(label))),
		Div(Class("form-group-body"), Input(ID(name), Name(name), Type("password"), Class("form-control width-full"), AutoComplete("off"))),
	)
}

func toggleInfo(label, description string) Node {
	return Div(Class("toggle-row"),
		Div(Strong(Text(label)), P(Class(mutedClass()+" mb-0"), Text(description))),
		Button(Type("button"), Class(secondaryButtonClass()+" btn-sm"), Disabled(), Text("Enable")),
	)
}
