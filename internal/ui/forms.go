package ui

import (
	"strings"
)

func formString(values map[string][]string, key string) string {
	if values == nil {
		return ""
	}
	return strings.TrimSpace(first(values[key]))
}

func formBool(values map[string][]string, key string) bool {
	v := strings.ToLower(formString(values, key))
	return v == "true" || v == "1" || v == "on" || v == "yes"
}

// formList collects every non-empty value of a repeated field; a single
// comma-separated value is split as well, so ?include=a,b and
// ?include=a&include=b are equivalent.
func formList(values map[string][]string, key string) []string {
	if values == nil {
		return nil
	}
	var out []string
	for _, raw := range values[key] {
		for _, p := range strings.Split(raw, ",") {
			p = strings.TrimSpace(p)
			if p == "" {
				continue
			}
			out = append(out, p)
		}
	}
	return out
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
