package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

type estimateResult struct {
	Include []string `json:"include" yaml:"include"`
	Records int      `json:"records" yaml:"records"`
	SizeMB  float64  `json:"size_mb" yaml:"size_mb"`
	Size    string   `json:"size" yaml:"size"`
}

func newEstimateCmd(opts *options) *cobra.Command {
	var include []string

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate the size of a FHIR export",
		Long:  "Estimate the record count and size of an export. Without --include the portal defaults are used.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := opts.loadCatalog()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("include") {
				include = c.DefaultExportRequest().Include
			}
			est, err := c.EstimateExport(include)
			if err != nil {
				return err
			}
			res := estimateResult{Include: include, Records: est.Records, SizeMB: est.SizeMB, Size: est.Size()}
			return render(cmd, opts, res,
				[]string{"include", "records", "size"},
				[][]string{{strings.Join(include, ","), strconv.Itoa(est.Records), est.Size()}},
			)
		},
	}

	cmd.Flags().StringSliceVar(&include, "include", nil, "Datasets to include (namaste, icd11, mappings, patients)")

	return cmd
}
