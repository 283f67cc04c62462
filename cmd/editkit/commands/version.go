package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/editkit/editkit/internal/output"
	"github.com/editkit/editkit/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if format, _ := cmd.Flags().GetString("format"); format != "" {
			f, err := output.ParseFormat(format)
			if err != nil {
				return err
			}
			enc, err := output.New(os.Stdout, f, true)
			if err != nil {
				return err
			}
			if err := enc.Encode(version.Get()); err != nil {
				return err
			}
			return enc.Close()
		}
		fmt.Println(version.Full())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().String("format", "", "output format: json, jsonl, yaml (default: text)")
}
