package cli

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"codemap-portal/internal/catalog"
	"codemap-portal/internal/filter"
)

// listing is one dataset the list command can print.
type listing struct {
	headers []string
	// rows returns the filtered records for json/yaml and their table rows.
	rows func(c *catalog.Catalog, q filter.Query) (interface{}, [][]string)
}

var listings = map[string]listing{
	"namaste": {
		headers: []string{"id", "code", "description", "category", "status", "mappings"},
		rows: func(c *catalog.Catalog, q filter.Query) (interface{}, [][]string) {
			items := c.NamasteCodes(q)
			out := make([][]string, 0, len(items))
			for _, it := range items {
				out = append(out, []string{it.ID, it.Code, it.Description, it.Category, it.Status, strconv.Itoa(it.Mappings)})
			}
			return items, out
		},
	},
	"tm2": {
		headers: []string{"id", "code", "title", "chapter", "status", "version"},
		rows: func(c *catalog.Catalog, q filter.Query) (interface{}, [][]string) {
			items := c.TM2Codes(q)
			out := make([][]string, 0, len(items))
			for _, it := range items {
				out = append(out, []string{it.ID, it.Code, it.Title, it.Chapter, it.Status, it.Version})
			}
			return items, out
		},
	},
	"mappings": {
		headers: []string{"id", "namaste", "icd11", "type", "confidence", "status", "reviewer"},
		rows: func(c *catalog.Catalog, q filter.Query) (interface{}, [][]string) {
			items := c.Mappings(q)
			out := make([][]string, 0, len(items))
			for _, it := range items {
				reviewer := "Unassigned"
				if it.Reviewer != nil {
					reviewer = *it.Reviewer
				}
				out = append(out, []string{it.ID, it.NamasteCode, it.ICD11Code, it.MappingType, strconv.Itoa(it.Confidence) + "%", it.Status, reviewer})
			}
			return items, out
		},
	},
	"patients": {
		headers: []string{"patient_id", "name", "age", "status", "diagnoses", "last_visit"},
		rows: func(c *catalog.Catalog, q filter.Query) (interface{}, [][]string) {
			items := c.Patients(q)
			out := make([][]string, 0, len(items))
			for _, it := range items {
				out = append(out, []string{it.PatientID, it.Name, strconv.Itoa(it.Age), it.Status, strings.Join(it.Diagnoses, ","), it.LastVisit})
			}
			return items, out
		},
	},
	"audit": {
		headers: []string{"id", "timestamp", "user", "action", "resource", "status"},
		rows: func(c *catalog.Catalog, q filter.Query) (interface{}, [][]string) {
			items := c.AuditLogs(q)
			out := make([][]string, 0, len(items))
			for _, it := range items {
				out = append(out, []string{it.ID, it.Timestamp, it.User, it.Action, it.Resource, it.Status})
			}
			return items, out
		},
	},
}

func listingNames() []string {
	names := make([]string, 0, len(listings))
	for name := range listings {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func newListCmd(opts *options) *cobra.Command {
	var (
		text     string
		selector string
	)

	cmd := &cobra.Command{
		Use:       "list <dataset>",
		Short:     "List records of a dataset",
		Long:      "List records of a dataset (" + strings.Join(listingNames(), ", ") + "). --q searches the same fields as the portal; --filter matches the category, chapter, status or action.",
		Args:      cobra.ExactArgs(1),
		ValidArgs: listingNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, ok := listings[args[0]]
			if !ok {
				return fmt.Errorf("unknown dataset %q: use one of %s", args[0], strings.Join(listingNames(), ", "))
			}
			c, err := opts.loadCatalog()
			if err != nil {
				return err
			}
			v, rows := l.rows(c, filter.Query{Text: text, Selector: filter.Normalize(selector)})
			return render(cmd, opts, v, l.headers, rows)
		},
	}

	cmd.Flags().StringVar(&text, "q", "", "Case-insensitive text search")
	cmd.Flags().StringVar(&selector, "filter", filter.All, "Category, chapter, status or action to match")

	return cmd
}
