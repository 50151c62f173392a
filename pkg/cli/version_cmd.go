package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the CLI version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := map[string]string{"version": version, "commit": commit}
			switch opts.output {
			case "json":
				return printJSON(cmd.OutOrStdout(), info)
			case "yaml":
				return printYAML(cmd.OutOrStdout(), info)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "portal version %s (commit: %s)\n", version, commit)
			return nil
		},
	}
}
