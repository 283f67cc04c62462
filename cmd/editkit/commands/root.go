// Package commands implements the CLI commands for editkit.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/editkit/editkit/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "editkit",
	Short: "Allow-list HTML sanitizer for rich-text content",
	Long: `Editkit prepares rich-text HTML against a tool-derived allow-list:
disallowed tags are unwrapped, dangerous ones deleted, legacy markup
(b, i, align attributes) rewritten to its modern form, loose text
wrapped in paragraphs, and empty leftovers pruned.

Examples:
  # Sanitize a file with the full toolbar
  editkit clean page.html

  # Restrict to a few tools, read from stdin
  cat page.html | editkit clean --tools bold,italic,link

  # Sanitize a fetched page and emit the result as JSON with stats
  editkit clean https://example.com/article --results-format json

  # List the tool registry
  editkit tools`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default $HOME/.editkit.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "only log errors")
	rootCmd.PersistentFlags().Bool("log-json", false, "log in JSON format")

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag("log_json", rootCmd.PersistentFlags().Lookup("log-json"))
}

func initConfig() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".editkit")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("EDITKIT")
	viper.AutomaticEnv()

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()

	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
		JSON:  viper.GetBool("log_json"),
	})
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// logError prints an error message to stderr.
func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}
