package commands

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/editkit/editkit/internal/output"
	"github.com/editkit/editkit/pkg/editor"
	"github.com/editkit/editkit/pkg/sanitize"
)

var cleanCmd = &cobra.Command{
	Use:   "clean [url-or-file]",
	Short: "Sanitize an HTML document or fragment",
	Long: `Clean sanitizes HTML read from a file, a URL, or stdin.

The allow-list is derived from the selected tools (default: all).
Full documents are reduced to their body content first.

Examples:
  editkit clean page.html
  editkit clean https://example.com/article -o cleaned.html
  cat fragment.html | editkit clean --tools bold,italic --filter-only
  editkit clean page.html --custom-tags tags.yaml --stats
  editkit clean page.html --results-format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)

	flags := cleanCmd.Flags()
	flags.StringSliceP("tools", "t", nil, "tools to enable (default: all registered tools)")
	flags.String("custom-tags", "", "path to a JSON or YAML custom tag declaration file")
	flags.Bool("filter-only", false, "skip paragraph normalization and empty-node pruning")
	flags.StringP("output", "o", "", "write sanitized content to file instead of stdout")
	flags.Bool("stats", false, "print a sanitization summary to stderr")
	flags.String("results-format", "", "emit the full result in this format: json, jsonl, yaml")
}

func runClean(cmd *cobra.Command, args []string) error {
	source := "-"
	if len(args) > 0 {
		source = args[0]
	}

	raw, err := readSource(source)
	if err != nil {
		logError("%v", err)
		return err
	}

	tools, _ := cmd.Flags().GetStringSlice("tools")
	if len(tools) == 0 {
		tools = sanitize.DefaultTools()
	}

	var custom []sanitize.CustomTag
	if path, _ := cmd.Flags().GetString("custom-tags"); path != "" {
		custom, err = sanitize.CustomTagsFromFile(path)
		if err != nil {
			logError("%v", err)
			return err
		}
	}

	filterOnly, _ := cmd.Flags().GetBool("filter-only")

	s := sanitize.NewFromTools(tools, custom...)
	result := s.PrepareWithStats(editor.ExtractSurface(raw), filterOnly)

	if format, _ := cmd.Flags().GetString("results-format"); format != "" {
		return writeResult(cmd, result, format)
	}

	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}
	if showStats, _ := cmd.Flags().GetBool("stats"); showStats {
		fmt.Fprint(os.Stderr, result.Stats.String())
	}

	return writeContent(cmd, result.Content)
}

func writeResult(cmd *cobra.Command, result *sanitize.Result, format string) error {
	f, err := output.ParseFormat(format)
	if err != nil {
		return err
	}

	dest := os.Stdout
	if path, _ := cmd.Flags().GetString("output"); path != "" {
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()
		dest = file
	}

	enc, err := output.New(dest, f, true)
	if err != nil {
		return err
	}
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return enc.Close()
}

func writeContent(cmd *cobra.Command, content string) error {
	if path, _ := cmd.Flags().GetString("output"); path != "" {
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		return nil
	}
	fmt.Println(content)
	return nil
}

// readSource loads HTML from a URL, a file path, or stdin ("-").
func readSource(source string) (string, error) {
	if source == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return fetchURL(source)
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return string(data), nil
}

func fetchURL(url string) (string, error) {
	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return "", fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status fetching %s: %s", url, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}
	return string(data), nil
}
