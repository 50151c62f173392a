package cli

import (
	"fmt"
	"slices"
	"sort"

	"github.com/spf13/cobra"
)

func newConfigCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration profiles",
	}

	cmd.AddCommand(newConfigShowCmd(opts))
	cmd.AddCommand(newConfigSetProfileCmd(opts))
	cmd.AddCommand(newConfigUseProfileCmd(opts))

	return cmd
}

func newConfigShowCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadUserConfig()
			if err != nil {
				return err
			}
			if len(cfg.Profiles) == 0 {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "No profiles configured in %s\n", ConfigPath())
			}
			names := make([]string, 0, len(cfg.Profiles))
			for name := range cfg.Profiles {
				names = append(names, name)
			}
			sort.Strings(names)
			rows := make([][]string, 0, len(names))
			for _, name := range names {
				active := ""
				if name == cfg.CurrentProfile {
					active = "*"
				}
				p := cfg.Profiles[name]
				rows = append(rows, []string{active, name, p.Output, p.DataFile})
			}
			return render(cmd, opts, cfg, []string{"active", "profile", "output", "data-file"}, rows)
		},
	}
}

func newConfigSetProfileCmd(opts *options) *cobra.Command {
	var (
		name     string
		dataFile string
		output   string
	)

	cmd := &cobra.Command{
		Use:   "set-profile",
		Short: "Create or update a configuration profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadUserConfig()
			if err != nil {
				return err
			}

			p := cfg.Profiles[name]
			if cmd.Flags().Changed("default-data-file") {
				p.DataFile = dataFile
			}
			if cmd.Flags().Changed("default-output") {
				p.Output = output
			}
			if err := cfg.SetProfile(name, p); err != nil {
				return err
			}
			if err := SaveUserConfig(cfg); err != nil {
				return err
			}
			if slices.Contains([]string{"json", "yaml"}, opts.output) {
				return render(cmd, opts, map[string]string{"status": "ok", "profile": name, "path": ConfigPath()}, nil, nil)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Profile %q saved to %s\n", name, ConfigPath())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Profile name (required)")
	cmd.Flags().StringVar(&dataFile, "default-data-file", "", "Dataset file used by this profile")
	cmd.Flags().StringVar(&output, "default-output", "", "Default output format for this profile")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newConfigUseProfileCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "use-profile <name>",
		Short: "Set the active configuration profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadUserConfig()
			if err != nil {
				return err
			}
			name := args[0]
			if _, ok := cfg.Profiles[name]; !ok {
				return fmt.Errorf("profile %q not found", name)
			}
			cfg.CurrentProfile = name
			if err := SaveUserConfig(cfg); err != nil {
				return err
			}
			if slices.Contains([]string{"json", "yaml"}, opts.output) {
				return render(cmd, opts, map[string]string{"status": "ok", "active_profile": name}, nil, nil)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Active profile set to %q\n", name)
			return nil
		},
	}
}
