// Package main is the entry point for the editkit CLI.
package main

import (
	"os"

	"github.com/editkit/editkit/cmd/editkit/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
