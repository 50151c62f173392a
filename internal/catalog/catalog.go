// Package catalog holds the read-only sample datasets behind every portal
// page and applies the list filter to them.
package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"codemap-portal/internal/domain"
	"codemap-portal/internal/filter"
)

//go:embed data/portal.yaml
var embedded []byte

// Dashboard is the home page content.
type Dashboard struct {
	Stats        []domain.Stat        `yaml:"stats"`
	QuickActions []domain.QuickAction `yaml:"quick_actions"`
}

// data is the on-disk schema of a dataset file.
type data struct {
	NamasteCategories []string                 `yaml:"namaste_categories"`
	NamasteCodes      []domain.NamasteCode     `yaml:"namaste_codes"`
	TM2Chapters       []string                 `yaml:"tm2_chapters"`
	TM2Codes          []domain.TM2Code         `yaml:"tm2_codes"`
	MappingStatuses   []string                 `yaml:"mapping_statuses"`
	Mappings          []domain.Mapping         `yaml:"mappings"`
	MappingQuality    []domain.Stat            `yaml:"mapping_quality"`
	PatientStatuses   []string                 `yaml:"patient_statuses"`
	Patients          []domain.Patient         `yaml:"patients"`
	PatientActivity   []domain.Stat            `yaml:"patient_activity"`
	AuditActions      []string                 `yaml:"audit_actions"`
	AuditLogs         []domain.AuditLogEntry   `yaml:"audit_logs"`
	Users             []domain.PortalUser      `yaml:"users"`
	SystemStats       domain.SystemStats       `yaml:"system_stats"`
	SystemServices    []domain.Stat            `yaml:"system_services"`
	Datasets          []domain.Dataset         `yaml:"datasets"`
	Exports           []domain.ExportRecord    `yaml:"exports"`
	Dashboard         Dashboard                `yaml:"dashboard"`
	PageStats         map[string][]domain.Stat `yaml:"page_stats"`
	Guides            []domain.Guide           `yaml:"guides"`
	FAQs              []domain.FAQCategory     `yaml:"faqs"`
	APIEndpoints      []domain.APIEndpoint     `yaml:"api_endpoints"`
	Tutorials         []domain.Tutorial        `yaml:"tutorials"`
	Settings          domain.UserSettings      `yaml:"settings"`
}

// Catalog is an immutable set of sample datasets. It is safe for
// concurrent use; every accessor returns a copy.
type Catalog struct {
	d data
}

// Load decodes the dataset compiled into the binary.
func Load() (*Catalog, error) {
	return decode(embedded, "embedded dataset")
}

// LoadFile decodes a dataset file with the same schema as the embedded one.
func LoadFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	return decode(raw, path)
}

// MustLoad is Load for tests and tools that cannot proceed without data.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

func decode(raw []byte, source string) (*Catalog, error) {
	var d data
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("decode %s: %w", source, err)
	}
	if err := validate(&d); err != nil {
		return nil, fmt.Errorf("validate %s: %w", source, err)
	}
	return &Catalog{d: d}, nil
}

func validate(d *data) error {
	if err := uniqueIDs("namaste code", d.NamasteCodes, func(c domain.NamasteCode) string { return c.ID }); err != nil {
		return err
	}
	if err := uniqueIDs("tm2 code", d.TM2Codes, func(c domain.TM2Code) string { return c.ID }); err != nil {
		return err
	}
	if err := uniqueIDs("mapping", d.Mappings, func(m domain.Mapping) string { return m.ID }); err != nil {
		return err
	}
	if err := uniqueIDs("patient", d.Patients, func(p domain.Patient) string { return p.PatientID }); err != nil {
		return err
	}
	if err := uniqueIDs("audit log", d.AuditLogs, func(e domain.AuditLogEntry) string { return e.ID }); err != nil {
		return err
	}
	if err := uniqueIDs("dataset", d.Datasets, func(ds domain.Dataset) string { return ds.Key }); err != nil {
		return err
	}
	for _, m := range d.Mappings {
		if m.Confidence < 0 || m.Confidence > 100 {
			return domain.ErrValidation("mapping %s: confidence %d outside 0..100", m.ID, m.Confidence)
		}
	}
	return nil
}

func uniqueIDs[T any](kind string, items []T, id func(T) string) error {
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		key := id(it)
		if key == "" {
			return domain.ErrValidation("%s without id", kind)
		}
		if _, dup := seen[key]; dup {
			return domain.ErrValidation("duplicate %s id %q", kind, key)
		}
		seen[key] = struct{}{}
	}
	return nil
}

// Searchable fields per record type.
var (
	namasteSpec = filter.Spec[domain.NamasteCode]{
		Fields:   func(c domain.NamasteCode) []string { return []string{c.Code, c.Description} },
		Selector: func(c domain.NamasteCode) string { return c.Category },
	}
	tm2Spec = filter.Spec[domain.TM2Code]{
		Fields:   func(c domain.TM2Code) []string { return []string{c.Code, c.Title} },
		Selector: func(c domain.TM2Code) string { return c.Chapter },
	}
	mappingSpec = filter.Spec[domain.Mapping]{
		Fields: func(m domain.Mapping) []string {
			return []string{m.NamasteCode, m.ICD11Code, m.NamasteDescription, m.ICD11Description}
		},
		Selector: func(m domain.Mapping) string { return m.Status },
	}
	patientSpec = filter.Spec[domain.Patient]{
		Fields: func(p domain.Patient) []string {
			return append([]string{p.Name, p.PatientID}, p.Diagnoses...)
		},
		Selector: func(p domain.Patient) string { return p.Status },
	}
	auditSpec = filter.Spec[domain.AuditLogEntry]{
		Fields:   func(e domain.AuditLogEntry) []string { return []string{e.User, e.Action, e.Resource} },
		Selector: func(e domain.AuditLogEntry) string { return e.Action },
	}
)

// NamasteSearchFields returns the searchable text of a NAMASTE code.
func NamasteSearchFields(c domain.NamasteCode) []string { return namasteSpec.Fields(c) }

// TM2SearchFields returns the searchable text of a TM2 code.
func TM2SearchFields(c domain.TM2Code) []string { return tm2Spec.Fields(c) }

// MappingSearchFields returns the searchable text of a mapping.
func MappingSearchFields(m domain.Mapping) []string { return mappingSpec.Fields(m) }

// PatientSearchFields returns the searchable text of a patient.
func PatientSearchFields(p domain.Patient) []string { return patientSpec.Fields(p) }

// AuditSearchFields returns the searchable text of an audit entry.
func AuditSearchFields(e domain.AuditLogEntry) []string { return auditSpec.Fields(e) }

func (c *Catalog) NamasteCodes(q filter.Query) []domain.NamasteCode {
	return filter.Apply(c.d.NamasteCodes, q, namasteSpec)
}

func (c *Catalog) TM2Codes(q filter.Query) []domain.TM2Code {
	return filter.Apply(c.d.TM2Codes, q, tm2Spec)
}

func (c *Catalog) Mappings(q filter.Query) []domain.Mapping {
	return filter.Apply(c.d.Mappings, q, mappingSpec)
}

// Patients filters patient records. Diagnosis entries are copied so the
// caller cannot reach the catalog's slices.
func (c *Catalog) Patients(q filter.Query) []domain.Patient {
	out := filter.Apply(c.d.Patients, q, patientSpec)
	for i := range out {
		out[i].Diagnoses = slices.Clone(out[i].Diagnoses)
	}
	return out
}

func (c *Catalog) AuditLogs(q filter.Query) []domain.AuditLogEntry {
	return filter.Apply(c.d.AuditLogs, q, auditSpec)
}

// Patient looks a patient up by patient id (P001234) or record id (PAT-001).
func (c *Catalog) Patient(id string) (domain.Patient, error) {
	for _, p := range c.d.Patients {
		if p.PatientID == id || p.ID == id {
			p.Diagnoses = slices.Clone(p.Diagnoses)
			return p, nil
		}
	}
	return domain.Patient{}, domain.ErrNotFound("patient %q not found", id)
}

// FAQs filters the help questions by text across question and answer.
// Categories left without a question are dropped.
func (c *Catalog) FAQs(text string) []filter.Group[domain.FAQ] {
	groups := make([]filter.Group[domain.FAQ], 0, len(c.d.FAQs))
	for _, cat := range c.d.FAQs {
		groups = append(groups, filter.Group[domain.FAQ]{Name: cat.Category, Items: cat.Questions})
	}
	return filter.Groups(groups, text, func(f domain.FAQ) []string { return []string{f.Question, f.Answer} })
}

func (c *Catalog) NamasteCategories() []string { return slices.Clone(c.d.NamasteCategories) }
func (c *Catalog) TM2Chapters() []string       { return slices.Clone(c.d.TM2Chapters) }
func (c *Catalog) MappingStatuses() []string   { return slices.Clone(c.d.MappingStatuses) }
func (c *Catalog) PatientStatuses() []string   { return slices.Clone(c.d.PatientStatuses) }
func (c *Catalog) AuditActions() []string      { return slices.Clone(c.d.AuditActions) }

// Dashboard returns the home page stats and shortcuts.
func (c *Catalog) Dashboard() Dashboard {
	return Dashboard{
		Stats:        slices.Clone(c.d.Dashboard.Stats),
		QuickActions: slices.Clone(c.d.Dashboard.QuickActions),
	}
}

// PageStats returns the headline numbers shown above a list page.
func (c *Catalog) PageStats(page string) []domain.Stat {
	return slices.Clone(c.d.PageStats[page])
}

func (c *Catalog) MappingQuality() []domain.Stat  { return slices.Clone(c.d.MappingQuality) }
func (c *Catalog) PatientActivity() []domain.Stat { return slices.Clone(c.d.PatientActivity) }
func (c *Catalog) SystemServices() []domain.Stat  { return slices.Clone(c.d.SystemServices) }
func (c *Catalog) SystemStats() domain.SystemStats {
	return c.d.SystemStats
}

// Users returns the admin accounts.
func (c *Catalog) Users() []domain.PortalUser {
	out := slices.Clone(c.d.Users)
	for i := range out {
		out[i].Permissions = slices.Clone(out[i].Permissions)
	}
	return out
}

// Exports returns the FHIR download history, newest first as stored.
func (c *Catalog) Exports() []domain.ExportRecord {
	out := slices.Clone(c.d.Exports)
	for i := range out {
		out[i].Includes = slices.Clone(out[i].Includes)
	}
	return out
}

func (c *Catalog) Datasets() []domain.Dataset { return slices.Clone(c.d.Datasets) }

func (c *Catalog) Guides() []domain.Guide {
	out := slices.Clone(c.d.Guides)
	for i := range out {
		out[i].Tags = slices.Clone(out[i].Tags)
	}
	return out
}

func (c *Catalog) Tutorials() []domain.Tutorial { return slices.Clone(c.d.Tutorials) }

func (c *Catalog) APIEndpoints() []domain.APIEndpoint {
	out := slices.Clone(c.d.APIEndpoints)
	for i := range out {
		out[i].Parameters = slices.Clone(out[i].Parameters)
	}
	return out
}

// Settings returns the settings page defaults.
func (c *Catalog) Settings() domain.UserSettings {
	s := c.d.Settings
	s.Notifications = slices.Clone(s.Notifications)
	return s
}
