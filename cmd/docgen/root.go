// Package main provides the entry point for the docgen CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for docgen.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docgen",
		Short: "Markdown documentation site generator",
		Long: `Docgen converts a directory of Markdown documentation into a static
HTML site. Each source file is rendered to HTML, bound into a page
template, and cross-references between documents are rewritten so the
generated pages link to each other.

Generated pages land flat in one output directory, keyed by source base
name, so links work regardless of how deeply sources are nested.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewBuildCmd())
	cmd.AddCommand(NewCheckCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
