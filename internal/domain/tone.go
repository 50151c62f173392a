package domain

// Badge tones understood by the UI stylesheet.
const (
	ToneSuccess   = "success"
	ToneAttention = "attention"
	ToneDanger    = "danger"
	ToneAccent    = "accent"
	ToneSevere    = "severe"
	ToneSecondary = "secondary"
	ToneDone      = "done"
)

var statusTones = map[string]string{
	// codes
	"Active":       ToneSuccess,
	"Current":      ToneSuccess,
	"Under Review": ToneAttention,
	"Inactive":     ToneDanger,
	// mappings
	"Approved":       ToneSuccess,
	"Pending Review": ToneAccent,
	"Rejected":       ToneDanger,
	// patients
	"Under Care": ToneAccent,
	"Discharged": ToneSecondary,
	// audit, users
	"Success":   ToneSuccess,
	"Warning":   ToneAttention,
	"Error":     ToneDanger,
	"Suspended": ToneAttention,
	// exports
	"Completed":  ToneSuccess,
	"Processing": ToneAttention,
	"Failed":     ToneDanger,
}

// StatusTone returns the badge tone for a status value. Unknown statuses
// are secondary.
func StatusTone(status string) string {
	if tone, ok := statusTones[status]; ok {
		return tone
	}
	return ToneSecondary
}

// MappingTypeTone returns the badge tone for a mapping type.
func MappingTypeTone(mappingType string) string {
	switch mappingType {
	case MappingExact:
		return ToneSuccess
	case MappingClose:
		return ToneAttention
	case MappingPartial:
		return ToneSevere
	default:
		return ToneSecondary
	}
}

// ConfidenceTone grades a mapping confidence score.
func ConfidenceTone(confidence int) string {
	switch {
	case confidence >= 90:
		return ToneSuccess
	case confidence >= 75:
		return ToneAttention
	default:
		return ToneDanger
	}
}

// HTTPMethodTone colours API reference badges.
func HTTPMethodTone(method string) string {
	switch method {
	case "GET":
		return ToneSuccess
	case "POST":
		return ToneAccent
	case "PUT":
		return ToneAttention
	default:
		return ToneDanger
	}
}

// Mapping types.
const (
	MappingExact   = "Exact Match"
	MappingClose   = "Close Match"
	MappingPartial = "Partial Match"
)
