package catalog

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"codemap-portal/internal/domain"
)

// Export formats and date ranges offered on the downloads page.
var (
	ExportFormats = []string{"json", "xml", "csv"}
	ExportRanges  = []string{"last-7-days", "last-30-days", "last-90-days", "all-time"}
)

// Defaults for a new export request.
const (
	DefaultExportFormat = "json"
	DefaultExportRange  = "last-30-days"
)

// ExportRequest is the downloads page configuration.
type ExportRequest struct {
	Format  string
	Range   string
	Include []string
}

// Estimate is the approximate size of an export.
type Estimate struct {
	Records int
	SizeMB  float64
}

// Size formats the estimate in megabytes with one decimal.
func (e Estimate) Size() string {
	return fmt.Sprintf("%.1f MB", e.SizeMB)
}

// DefaultExportRequest returns the request the downloads page starts with.
func (c *Catalog) DefaultExportRequest() ExportRequest {
	req := ExportRequest{Format: DefaultExportFormat, Range: DefaultExportRange}
	for _, ds := range c.d.Datasets {
		if ds.Default {
			req.Include = append(req.Include, ds.Key)
		}
	}
	return req
}

// Validate checks format, range and dataset keys.
func (c *Catalog) Validate(req ExportRequest) error {
	if !slices.Contains(ExportFormats, req.Format) {
		return domain.ErrValidation("unsupported export format %q", req.Format)
	}
	if !slices.Contains(ExportRanges, req.Range) {
		return domain.ErrValidation("unsupported date range %q", req.Range)
	}
	for _, key := range req.Include {
		if _, ok := c.dataset(key); !ok {
			return domain.ErrValidation("unknown dataset %q", key)
		}
	}
	return nil
}

// EstimateExport sums record counts and sizes of the included datasets.
// Unknown keys are rejected; a key listed twice counts once.
func (c *Catalog) EstimateExport(include []string) (Estimate, error) {
	var est Estimate
	seen := make(map[string]struct{}, len(include))
	for _, raw := range include {
		key := strings.TrimSpace(raw)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		ds, ok := c.dataset(key)
		if !ok {
			return Estimate{}, domain.ErrValidation("unknown dataset %q", key)
		}
		est.Records += ds.Records
		est.SizeMB += ds.SizeMB
	}
	est.SizeMB = math.Round(est.SizeMB*10) / 10
	return est, nil
}

func (c *Catalog) dataset(key string) (domain.Dataset, bool) {
	for _, ds := range c.d.Datasets {
		if ds.Key == key {
			return ds, true
		}
	}
	return domain.Dataset{}, false
}
