package domain

// NamasteCode is a NAMASTE traditional-medicine code.
type NamasteCode struct {
	ID           string `yaml:"id" json:"id"`
	Code         string `yaml:"code" json:"code"`
	Description  string `yaml:"description" json:"description"`
	Category     string `yaml:"category" json:"category"`
	Status       string `yaml:"status" json:"status"`
	LastModified string `yaml:"last_modified" json:"last_modified"`
	Mappings     int    `yaml:"mappings" json:"mappings"`
}

// TM2Code is an ICD-11 / TM2 classification entry.
type TM2Code struct {
	ID       string `yaml:"id" json:"id"`
	Code     string `yaml:"code" json:"code"`
	Title    string `yaml:"title" json:"title"`
	Chapter  string `yaml:"chapter" json:"chapter"`
	Parent   string `yaml:"parent" json:"parent"`
	Status   string `yaml:"status" json:"status"`
	Version  string `yaml:"version" json:"version"`
	Mappings int    `yaml:"mappings" json:"mappings"`
}

// Mapping links a NAMASTE code to an ICD-11 code.
type Mapping struct {
	ID                 string  `yaml:"id" json:"id"`
	NamasteCode        string  `yaml:"namaste_code" json:"namaste_code"`
	NamasteDescription string  `yaml:"namaste_description" json:"namaste_description"`
	ICD11Code          string  `yaml:"icd11_code" json:"icd11_code"`
	ICD11Description   string  `yaml:"icd11_description" json:"icd11_description"`
	MappingType        string  `yaml:"mapping_type" json:"mapping_type"`
	Confidence         int     `yaml:"confidence" json:"confidence"`
	Status             string  `yaml:"status" json:"status"`
	Reviewer           *string `yaml:"reviewer" json:"reviewer,omitempty"`
	DateCreated        string  `yaml:"date_created" json:"date_created"`
	LastReviewed       *string `yaml:"last_reviewed" json:"last_reviewed,omitempty"`
}

// Patient is a sample patient profile.
type Patient struct {
	ID         string   `yaml:"id" json:"id"`
	PatientID  string   `yaml:"patient_id" json:"patient_id"`
	Name       string   `yaml:"name" json:"name"`
	Age        int      `yaml:"age" json:"age"`
	Gender     string   `yaml:"gender" json:"gender"`
	LastVisit  string   `yaml:"last_visit" json:"last_visit"`
	Status     string   `yaml:"status" json:"status"`
	Diagnoses  []string `yaml:"diagnoses" json:"diagnoses"`
	Notes      string   `yaml:"notes" json:"notes"`
	TotalNotes int      `yaml:"total_notes" json:"total_notes"`
	CreatedBy  string   `yaml:"created_by" json:"created_by"`
}

// AuditLogEntry is a single audit trail record.
type AuditLogEntry struct {
	ID        string `yaml:"id" json:"id"`
	Timestamp string `yaml:"timestamp" json:"timestamp"`
	User      string `yaml:"user" json:"user"`
	UserRole  string `yaml:"user_role" json:"user_role"`
	Action    string `yaml:"action" json:"action"`
	Resource  string `yaml:"resource" json:"resource"`
	Details   string `yaml:"details" json:"details"`
	IPAddress string `yaml:"ip_address" json:"ip_address"`
	UserAgent string `yaml:"user_agent" json:"user_agent"`
	Status    string `yaml:"status" json:"status"`
}

// PortalUser is an account shown on the admin user management tab.
type PortalUser struct {
	ID          string   `yaml:"id" json:"id"`
	Name        string   `yaml:"name" json:"name"`
	Email       string   `yaml:"email" json:"email"`
	Role        string   `yaml:"role" json:"role"`
	Status      string   `yaml:"status" json:"status"`
	LastLogin   string   `yaml:"last_login" json:"last_login"`
	Permissions []string `yaml:"permissions" json:"permissions"`
}

// SystemStats backs the admin system health tab.
type SystemStats struct {
	ActiveUsers     int    `yaml:"active_users" json:"active_users"`
	TotalSessions   int    `yaml:"total_sessions" json:"total_sessions"`
	FailedLogins    int    `yaml:"failed_logins" json:"failed_logins"`
	SystemUptime    string `yaml:"system_uptime" json:"system_uptime"`
	AvgResponseTime string `yaml:"avg_response_time" json:"avg_response_time"`
	DiskUsage       int    `yaml:"disk_usage" json:"disk_usage"`
	MemoryUsage     int    `yaml:"memory_usage" json:"memory_usage"`
	CPUUsage        int    `yaml:"cpu_usage" json:"cpu_usage"`
}

// ExportRecord is an entry in the FHIR download history.
type ExportRecord struct {
	ID           string   `yaml:"id" json:"id"`
	Filename     string   `yaml:"filename" json:"filename"`
	Format       string   `yaml:"format" json:"format"`
	Size         string   `yaml:"size" json:"size"`
	RecordCount  int      `yaml:"record_count" json:"record_count"`
	Status       string   `yaml:"status" json:"status"`
	CreatedAt    string   `yaml:"created_at" json:"created_at"`
	DownloadedAt *string  `yaml:"downloaded_at" json:"downloaded_at,omitempty"`
	ExpiresAt    string   `yaml:"expires_at" json:"expires_at"`
	Includes     []string `yaml:"includes" json:"includes"`
}

// Dataset describes an exportable dataset and its approximate size.
type Dataset struct {
	Key     string  `yaml:"key" json:"key"`
	Label   string  `yaml:"label" json:"label"`
	Records int     `yaml:"records" json:"records"`
	SizeMB  float64 `yaml:"size_mb" json:"size_mb"`
	Default bool    `yaml:"default" json:"default"`
}

// FAQ is a single help question.
type FAQ struct {
	Question string `yaml:"question" json:"question"`
	Answer   string `yaml:"answer" json:"answer"`
}

// FAQCategory groups help questions.
type FAQCategory struct {
	Category  string `yaml:"category" json:"category"`
	Questions []FAQ  `yaml:"questions" json:"questions"`
}

// Guide is a quick guide card on the help page.
type Guide struct {
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Icon        string   `yaml:"icon" json:"icon"`
	ReadTime    string   `yaml:"read_time" json:"read_time"`
	Tags        []string `yaml:"tags" json:"tags"`
}

// Tutorial is a video tutorial listed on the help page.
type Tutorial struct {
	Title    string `yaml:"title" json:"title"`
	Duration string `yaml:"duration" json:"duration"`
	Level    string `yaml:"level" json:"level"`
}

// APIEndpoint documents an endpoint in the help page API reference.
type APIEndpoint struct {
	Method      string   `yaml:"method" json:"method"`
	Path        string   `yaml:"path" json:"path"`
	Description string   `yaml:"description" json:"description"`
	Parameters  []string `yaml:"parameters" json:"parameters"`
}

// Stat is a headline number on a dashboard card.
type Stat struct {
	Label  string `yaml:"label" json:"label"`
	Value  string `yaml:"value" json:"value"`
	Change string `yaml:"change,omitempty" json:"change,omitempty"`
	Tone   string `yaml:"tone,omitempty" json:"tone,omitempty"`
	// Percent fills progress bars such as the mapping quality overview.
	Percent int `yaml:"percent,omitempty" json:"percent,omitempty"`
}

// QuickAction is a dashboard shortcut to another page.
type QuickAction struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Icon        string `yaml:"icon" json:"icon"`
	Page        string `yaml:"page" json:"page"`
}

// UserProfile holds the settings page profile fields.
type UserProfile struct {
	Name       string `yaml:"name" json:"name"`
	Email      string `yaml:"email" json:"email"`
	Title      string `yaml:"title" json:"title"`
	Department string `yaml:"department" json:"department"`
	Phone      string `yaml:"phone" json:"phone"`
	Bio        string `yaml:"bio" json:"bio"`
	Timezone   string `yaml:"timezone" json:"timezone"`
	Language   string `yaml:"language" json:"language"`
}

// Toggle is a named boolean preference.
type Toggle struct {
	Key         string `yaml:"key" json:"key"`
	Label       string `yaml:"label" json:"label"`
	Description string `yaml:"description" json:"description"`
	Enabled     bool   `yaml:"enabled" json:"enabled"`
}

// PrivacySettings holds the privacy tab values.
type PrivacySettings struct {
	ProfileVisibility string `yaml:"profile_visibility" json:"profile_visibility"`
	ActivityTracking  bool   `yaml:"activity_tracking" json:"activity_tracking"`
	AnalyticsOptIn    bool   `yaml:"analytics_opt_in" json:"analytics_opt_in"`
	DataSharing       bool   `yaml:"data_sharing" json:"data_sharing"`
	SessionTimeout    string `yaml:"session_timeout" json:"session_timeout"`
}

// AppearanceSettings holds the appearance tab values.
type AppearanceSettings struct {
	Theme            string `yaml:"theme" json:"theme"`
	FontSize         string `yaml:"font_size" json:"font_size"`
	SidebarCollapsed bool   `yaml:"sidebar_collapsed" json:"sidebar_collapsed"`
	HighContrast     bool   `yaml:"high_contrast" json:"high_contrast"`
	ReducedMotion    bool   `yaml:"reduced_motion" json:"reduced_motion"`
}

// UserSettings groups the settings page defaults.
type UserSettings struct {
	Profile       UserProfile        `yaml:"profile" json:"profile"`
	Notifications []Toggle           `yaml:"notifications" json:"notifications"`
	Privacy       PrivacySettings    `yaml:"privacy" json:"privacy"`
	Appearance    AppearanceSettings `yaml:"appearance" json:"appearance"`
}
