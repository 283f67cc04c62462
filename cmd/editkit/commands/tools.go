package commands

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/editkit/editkit/internal/output"
	"github.com/editkit/editkit/pkg/sanitize"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the registered editing tools",
	Long: `Tools prints the tool registry: every tool identifier usable with
--tools, the tags it permits, and the attributes and styles those tags
may carry. Pure editing commands (undo, indent) permit no tags.`,
	RunE: runTools,
}

func init() {
	rootCmd.AddCommand(toolsCmd)
	toolsCmd.Flags().String("format", "", "output format: json, jsonl, yaml (default: table)")
}

func runTools(cmd *cobra.Command, _ []string) error {
	tools := sanitize.Tools()

	if format, _ := cmd.Flags().GetString("format"); format != "" {
		f, err := output.ParseFormat(format)
		if err != nil {
			return err
		}
		enc, err := output.New(os.Stdout, f, true)
		if err != nil {
			return err
		}
		for _, t := range tools {
			if err := enc.Encode(t); err != nil {
				return fmt.Errorf("failed to encode tool: %w", err)
			}
		}
		return enc.Close()
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TOOL\tTAGS\tALIASES\tATTRIBUTES\tSTYLES")
	for _, t := range tools {
		tags := append(append([]string(nil), t.Tags...), t.Extra...)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			t.Name,
			dashIfEmpty(strings.Join(tags, ",")),
			dashIfEmpty(strings.Join(t.Aliases, ",")),
			dashIfEmpty(strings.Join(t.Attributes, ",")),
			dashIfEmpty(strings.Join(t.Styles, ",")))
	}
	return w.Flush()
}

func dashIfEmpty(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
