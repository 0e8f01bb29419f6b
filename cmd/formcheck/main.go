// Package main is the entry point for the formcheck CLI.
package main

import (
	"os"

	"github.com/thaipbs-mis/context-engineering-intro/cmd/formcheck/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
