// Package filter implements the list filter used by every list page: a
// case-insensitive substring search across a record's text fields combined
// with an equality match on one selector field (category, status, action).
package filter

import (
	"strings"
)

// All is the selector sentinel that disables the equality match.
const All = "all"

// Query is the state a list page holds: free text plus a selector value.
type Query struct {
	Text     string
	Selector string
}

// Spec describes how a record type is searched.
type Spec[T any] struct {
	// Fields returns the searchable text of a record.
	Fields func(T) []string
	// Selector returns the value compared against Query.Selector. A nil
	// Selector ignores Query.Selector.
	Selector func(T) string
}

// sentinelLabels are labelled sentinel forms older links may still carry.
var sentinelLabels = map[string]struct{}{
	"all categories": {},
	"all chapters":   {},
	"all statuses":   {},
	"all actions":    {},
}

// IsAll reports whether selector is the "all" sentinel. Empty values and
// the labelled forms ("All Categories", "All Statuses") count as well.
func IsAll(selector string) bool {
	s := strings.ToLower(strings.TrimSpace(selector))
	if s == "" || s == All {
		return true
	}
	_, ok := sentinelLabels[s]
	return ok
}

// ContainsFold reports whether needle is a case-insensitive substring of
// haystack. An empty needle matches everything.
func ContainsFold(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// Match reports whether a record passes q.
func Match[T any](item T, q Query, spec Spec[T]) bool {
	if sel := Normalize(q.Selector); spec.Selector != nil && sel != All && spec.Selector(item) != sel {
		return false
	}
	text := q.Text
	if text == "" {
		return true
	}
	if spec.Fields == nil {
		return false
	}
	for _, field := range spec.Fields(item) {
		if ContainsFold(field, text) {
			return true
		}
	}
	return false
}

// Apply returns the records of items that pass q, in their original order.
// The result never aliases items.
func Apply[T any](items []T, q Query, spec Spec[T]) []T {
	out := make([]T, 0, len(items))
	for i := range items {
		if Match(items[i], q, spec) {
			out = append(out, items[i])
		}
	}
	return out
}

// Group is a named set of records, such as a FAQ category.
type Group[T any] struct {
	Name  string
	Items []T
}

// Groups filters the items of each group by text and drops groups left
// without any item.
func Groups[T any](groups []Group[T], text string, fields func(T) []string) []Group[T] {
	spec := Spec[T]{Fields: fields}
	out := make([]Group[T], 0, len(groups))
	for _, g := range groups {
		items := Apply(g.Items, Query{Text: text}, spec)
		if len(items) == 0 {
			continue
		}
		out = append(out, Group[T]{Name: g.Name, Items: items})
	}
	return out
}

// Option is an entry in a selector dropdown.
type Option struct {
	Value string
	Label string
}

// Options builds a selector option list with the sentinel first. label may
// be nil to show values verbatim.
func Options(allLabel string, values []string, label func(string) string) []Option {
	out := make([]Option, 0, len(values)+1)
	out = append(out, Option{Value: All, Label: allLabel})
	for _, v := range values {
		l := v
		if label != nil {
			l = label(v)
		}
		out = append(out, Option{Value: v, Label: l})
	}
	return out
}

// ActionLabel renders an audit action for display, replacing the first
// underscore with a space ("CREATE_MAPPING" -> "CREATE MAPPING").
func ActionLabel(action string) string {
	return strings.Replace(action, "_", " ", 1)
}

// Distinct returns the distinct non-empty keys of items in first-seen order.
func Distinct[T any](items []T, key func(T) string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for i := range items {
		k := key(items[i])
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

// Normalize returns the canonical selector value: All for any sentinel
// form, otherwise the trimmed selector.
func Normalize(selector string) string {
	if IsAll(selector) {
		return All
	}
	return strings.TrimSpace(selector)
}
