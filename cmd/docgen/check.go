package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/leantos/docgen/internal/config"
	"github.com/leantos/docgen/internal/log"
	"github.com/leantos/docgen/internal/model"
	"github.com/leantos/docgen/internal/pipeline"
)

// NewCheckCmd creates the check command.
func NewCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [docs-root]",
		Short: "Diagnose an existing output directory without writing",
		Long: `Check runs the read-only diagnostics of the pipeline over a previously
generated site: it reports output files with no matching source (orphans)
and links in generated pages whose target page is missing.

Nothing is rendered or rewritten; the source and output trees are left
untouched.

Examples:
  # Check the conventional docs/ directory
  docgen check

  # Check a specific directory with a custom output location
  docgen check ./manual -o ./public`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCheckCmd,
	}

	cmd.Flags().StringP("source", "s", config.DefaultSourceDir,
		"Documentation root to scan for Markdown files")
	cmd.Flags().StringP("output", "o", "",
		"Generated output directory (default <source>/"+config.DefaultOutputDirName+")")
	cmd.Flags().StringP("config", "c", "",
		"Project file path (default: .docgen in the source or current directory)")
	cmd.Flags().Bool("json", false,
		"Output JSON run report (mutually exclusive with --markdown)")
	cmd.Flags().Bool("markdown", false,
		"Output Markdown run report (mutually exclusive with --json)")
	cmd.Flags().StringP("report-file", "r", "",
		"Write the run report to a file instead of stdout")
	cmd.Flags().Bool("fail-on-error", false,
		"Exit non-zero when orphans or dangling links are found")

	return cmd
}

// runCheckCmd executes the check command.
func runCheckCmd(cmd *cobra.Command, args []string) error {
	cfg, err := checkConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.NewLogger(cmd.ErrOrStderr(), cfg.SourceDir, cfg.Verbose)
	slog.SetDefault(logger)

	// The output directory must already exist; check never creates it.
	if _, err := os.Stat(cfg.EffectiveOutputDir()); err != nil {
		return fmt.Errorf("output directory not accessible (run build first): %w", err)
	}

	p := pipeline.New(pipeline.WithLogger(logger))
	p.AddSteps(
		pipeline.NewDiscoverStep(cfg, pipeline.WithStepLogger(logger)),
		pipeline.NewOrphanScanStep(cfg, pipeline.WithStepLogger(logger)),
		pipeline.NewLinkCheckStep(cfg, pipeline.WithStepLogger(logger)),
	)

	runReport := model.NewRunReport(cfg.SourceDir, cfg.EffectiveOutputDir())
	if err := p.Execute(cmd.Context(), runReport); err != nil {
		return err
	}

	if err := outputReport(cmd, cfg, runReport); err != nil {
		return err
	}

	if cfg.FailOnError && (runReport.HasOrphans() || len(runReport.DanglingLinks) > 0) {
		return fmt.Errorf("check found %d orphan(s) and %d dangling link(s)",
			len(runReport.Orphans), len(runReport.DanglingLinks))
	}
	return nil
}

// checkConfig creates a Config for the check command from flags plus the
// optional project file.
func checkConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.SourceDir, err = cmd.Flags().GetString("source")
	if err != nil {
		return nil, err
	}
	if len(args) > 0 {
		cfg.SourceDir = args[0]
	}

	cfg.OutputDir, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("report-file")
	if err != nil {
		return nil, err
	}

	cfg.FailOnError, err = cmd.Flags().GetBool("fail-on-error")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	cfg.Verbose = getVerboseFlag(cmd)

	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath, cfg.SourceDir)

	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load project file %s: %w", configPath, err)
		}
		cfg.Apply(file)
	} else if explicitConfigPath {
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	return cfg, nil
}
