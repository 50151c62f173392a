package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

var outputFormats = []string{"table", "json", "yaml"}

func validateOutputFormat(output string) error {
	switch output {
	case "", "table", "json", "yaml":
		return nil
	}
	return fmt.Errorf("unsupported output format %q: use %s", output, strings.Join(outputFormats, ", "))
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // fd fits in int
}

// resolveOutput picks the effective format: an explicit choice wins, else
// table on a terminal and json for pipes.
func resolveOutput(output string, tty bool) string {
	if output != "" {
		return output
	}
	if tty {
		return "table"
	}
	return "json"
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// printTable writes an aligned table with upper-case headers.
func printTable(w io.Writer, headers []string, rows [][]string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	upper := make([]string, len(headers))
	for i, h := range headers {
		upper[i] = strings.ToUpper(h)
	}
	if _, err := fmt.Fprintln(tw, strings.Join(upper, "\t")); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintln(tw, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// render prints v in the resolved format; table output uses headers and rows.
func render(cmd *cobra.Command, opts *options, v interface{}, headers []string, rows [][]string) error {
	out := cmd.OutOrStdout()
	switch resolveOutput(opts.output, isTerminal(out)) {
	case "yaml":
		return printYAML(out, v)
	case "table":
		return printTable(out, headers, rows)
	default:
		return printJSON(out, v)
	}
}
