package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/leantos/docgen/internal/config"
	"github.com/leantos/docgen/internal/log"
	"github.com/leantos/docgen/internal/model"
	"github.com/leantos/docgen/internal/pipeline"
	"github.com/leantos/docgen/internal/report"
)

// errBuildFailed is returned when --fail-on-error is set and files failed.
var errBuildFailed = errors.New("build completed with failures")

// NewBuildCmd creates the build command.
func NewBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [docs-root]",
		Short: "Generate the HTML site from Markdown sources",
		Long: `Build runs the full generation pipeline over a documentation root:

- Discovers Markdown sources, skipping the output directory
- Renders each source to HTML and binds it into the page template
- Rewrites cross-references so .md links point at generated pages
- Reports orphaned output files and dangling links

A failure on one file never aborts the run; the file is recorded in the
run report and the rest of the site still builds.

Examples:
  # Build the conventional docs/ directory
  docgen build

  # Build a specific directory with a custom output location
  docgen build ./manual -o ./public

  # Render four pages at a time and treat name collisions as errors
  docgen build --jobs 4 --strict-collisions

  # Emit a JSON run report for tooling
  docgen build --json --report-file build-report.json

Project file (.docgen) example:
  title: My Project
  stylesheet: style.css
  template: template.html
  exclude:
    - drafts/*`,
		Args: cobra.MaximumNArgs(1),
		RunE: runBuildCmd,
	}

	// Source and output layout
	cmd.Flags().StringP("source", "s", config.DefaultSourceDir,
		"Documentation root to scan for Markdown files")
	cmd.Flags().StringP("output", "o", "",
		"Output directory for generated HTML (default <source>/"+config.DefaultOutputDirName+")")
	cmd.Flags().StringP("template", "t", "",
		"Page template file (default <source>/"+config.DefaultTemplateName+")")

	// Backup flags
	cmd.Flags().BoolP("backup", "b", false,
		"Snapshot the output directory before the run")
	cmd.Flags().String("backup-dir", "",
		"Snapshot destination (default under the XDG cache directory)")

	// Behavior flags
	cmd.Flags().IntP("jobs", "j", config.DefaultJobs,
		"Number of concurrent page renders (1 = sequential)")
	cmd.Flags().Bool("strict-collisions", false,
		"Treat source base-name collisions as errors instead of overwriting")
	cmd.Flags().Bool("fail-on-error", false,
		"Exit non-zero when any file failed to process")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Project file path (default: .docgen in the source or current directory)")

	// Report flags
	cmd.Flags().Bool("json", false,
		"Output JSON run report (mutually exclusive with --markdown)")
	cmd.Flags().Bool("markdown", false,
		"Output Markdown run report (mutually exclusive with --json)")
	cmd.Flags().StringP("report-file", "r", "",
		"Write the run report to a file instead of stdout")

	return cmd
}

// runBuildCmd executes the build command.
func runBuildCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.NewLogger(cmd.ErrOrStderr(), cfg.SourceDir, cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runBuild(ctx, cmd, cfg, logger)
}

// runBuild executes the pipeline and outputs the run report.
func runBuild(ctx context.Context, cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting build",
		"source", cfg.SourceDir,
		"output", cfg.EffectiveOutputDir(),
		"jobs", cfg.Jobs,
	)

	runReport := model.NewRunReport(cfg.SourceDir, cfg.EffectiveOutputDir())
	pipelineErr := pipeline.Default(cfg, pipeline.WithLogger(logger)).Execute(ctx, runReport)

	// The report is written even for aborted runs; partial results are
	// still worth seeing.
	if err := outputReport(cmd, cfg, runReport); err != nil {
		logger.Error("failed to write run report", "error", err)
	}

	if pipelineErr != nil {
		return pipelineErr
	}
	if cfg.FailOnError && runReport.HasFailures() {
		return fmt.Errorf("%w: %d file(s)", errBuildFailed, len(runReport.Failures))
	}
	return nil
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags plus the optional
// project file. Flags win over file values.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.SourceDir, err = cmd.Flags().GetString("source")
	if err != nil {
		return nil, err
	}
	// The positional argument wins over the --source flag.
	if len(args) > 0 {
		cfg.SourceDir = args[0]
	}

	cfg.OutputDir, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.TemplatePath, err = cmd.Flags().GetString("template")
	if err != nil {
		return nil, err
	}

	cfg.BackupEnabled, err = cmd.Flags().GetBool("backup")
	if err != nil {
		return nil, err
	}

	cfg.BackupDir, err = cmd.Flags().GetString("backup-dir")
	if err != nil {
		return nil, err
	}

	cfg.Jobs, err = cmd.Flags().GetInt("jobs")
	if err != nil {
		return nil, err
	}

	cfg.StrictCollisions, err = cmd.Flags().GetBool("strict-collisions")
	if err != nil {
		return nil, err
	}

	cfg.FailOnError, err = cmd.Flags().GetBool("fail-on-error")
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

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	cfg.Verbose = getVerboseFlag(cmd)

	// Load the project file. An explicitly specified file must exist; the
	// conventional search locations are all optional.
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

// outputReport writes the run report in the requested format.
func outputReport(cmd *cobra.Command, cfg *config.Config, runReport *model.RunReport) error {
	var output io.Writer = cmd.OutOrStdout()
	if cfg.ReportFile != "" {
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create report directory: %w", err)
			}
		}

		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // User-provided report path is intentional
		if err != nil {
			return fmt.Errorf("failed to create report file: %w", err)
		}
		defer f.Close() //nolint:errcheck // Best effort close on write path
		output = f
	}

	writer := selectWriter(output, cfg)
	_, err := writer.Write(runReport)
	return err
}

// selectWriter picks the report writer matching the configured format.
func selectWriter(output io.Writer, cfg *config.Config) report.Writer {
	switch {
	case cfg.JSONReport:
		return report.NewFullJSONWriter(output, getVersion(), report.WithPrettyPrint())
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(output,
			report.WithMarkdownSiteTitle(cfg.SiteTitle()))
	default:
		return report.NewSimpleWriter(output,
			report.WithSiteTitle(cfg.SiteTitle()),
			report.WithVerbose(cfg.Verbose))
	}
}
