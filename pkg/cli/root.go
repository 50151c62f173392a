// Package cli implements the portal command-line tool, which reads the same
// datasets as the web portal.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"codemap-portal/internal/catalog"
	"codemap-portal/internal/domain"
)

var (
	version = "dev"
	commit  = "none"
)

// Execute runs the CLI.
func Execute() int {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		output, _ := rootCmd.PersistentFlags().GetString("output")
		if output == "json" {
			errObj := map[string]interface{}{
				"error": err.Error(),
			}
			var validation *domain.ValidationError
			if errors.As(err, &validation) {
				errObj["code"] = "VALIDATION_ERROR"
			}
			_ = printJSON(os.Stdout, errObj)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

// options are the persistent flags after profile and env resolution.
type options struct {
	output   string
	dataFile string
	profile  string
}

// loadCatalog opens the dataset file when one is configured, else the
// embedded sample data.
func (o *options) loadCatalog() (*catalog.Catalog, error) {
	if o.dataFile == "" {
		return catalog.Load()
	}
	return catalog.LoadFile(o.dataFile)
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "portal",
		Short:         "Code mapping portal CLI",
		Long:          "Browse NAMASTE codes, ICD-11/TM2 codes, mappings and patient records from the command line.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadUserConfig()
			if err != nil {
				return err
			}
			p := cfg.ActiveProfile(opts.profile)

			// Apply precedence: flag > env > profile > default
			if !cmd.Flags().Changed("output") {
				if v := os.Getenv("PORTAL_OUTPUT"); v != "" {
					opts.output = v
				} else if p.Output != "" {
					opts.output = p.Output
				}
			}
			if !cmd.Flags().Changed("data-file") {
				if v := os.Getenv("PORTAL_DATA_FILE"); v != "" {
					opts.dataFile = v
				} else if p.DataFile != "" {
					opts.dataFile = p.DataFile
				}
			}
			return validateOutputFormat(opts.output)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.output, "output", "o", "", "Output format (table, json, yaml); table on a terminal, json otherwise")
	rootCmd.PersistentFlags().StringVar(&opts.dataFile, "data-file", "", "Dataset file to read instead of the embedded sample data")
	rootCmd.PersistentFlags().StringVarP(&opts.profile, "profile", "p", "", "Config profile to use")

	rootCmd.AddCommand(newListCmd(opts))
	rootCmd.AddCommand(newEstimateCmd(opts))
	rootCmd.AddCommand(newVersionCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

func newCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "completion [bash|zsh|fish|powershell]",
		Short:     "Generate shell completion scripts",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			default:
				return fmt.Errorf("unsupported shell: %s", args[0])
			}
		},
	}
	return cmd
}
