package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/leantos/docgen/internal/config"
)

//go:embed templates/docgen.yaml templates/template.html
var starterTemplates embed.FS

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new docgen project file",
		Long: `Init creates a new .docgen project file in the current directory.

The generated file includes commented examples for every option: site
title, stylesheet, template path, reference root marker, and exclude
patterns.

Examples:
  # Create .docgen in the current directory
  docgen init

  # Create the project file at a specific path
  docgen init -o docs/.docgen

  # Also write a starter page template next to the project file
  docgen init --with-template

  # Force overwrite an existing file
  docgen init -f`,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", config.DefaultConfigFile,
		"Output file path for the project file")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing files")
	cmd.Flags().Bool("with-template", false,
		"Also write a starter "+config.DefaultTemplateName+" next to the project file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	withTemplate, err := cmd.Flags().GetBool("with-template")
	if err != nil {
		return err
	}

	if err := writeStarterFile("templates/docgen.yaml", outputPath, force); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created project file: %s\n", outputPath)

	if withTemplate {
		templatePath := filepath.Join(filepath.Dir(outputPath), config.DefaultTemplateName)
		if err := writeStarterFile("templates/template.html", templatePath, force); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created page template: %s\n", templatePath)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "\nEdit the project file to configure settings such as:")
	fmt.Fprintln(cmd.OutOrStdout(), "  - Site title and stylesheet")
	fmt.Fprintln(cmd.OutOrStdout(), "  - A custom page template")
	fmt.Fprintln(cmd.OutOrStdout(), "  - Glob patterns for sources to exclude")

	return nil
}

// writeStarterFile copies one embedded starter file to the target path,
// refusing to overwrite unless force is set.
func writeStarterFile(embedded, target string, force bool) error {
	if !force {
		if _, err := os.Stat(target); err == nil {
			return fmt.Errorf("file already exists: %s (use -f to overwrite)", target)
		}
	}

	content, err := starterTemplates.ReadFile(embedded)
	if err != nil {
		return fmt.Errorf("failed to read starter template: %w", err)
	}

	dir := filepath.Dir(target)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(target, content, 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
