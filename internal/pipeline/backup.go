package pipeline

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/leantos/docgen/internal/config"
	"github.com/leantos/docgen/internal/model"
)

// BackupStep snapshots the output directory before the run replaces its
// contents. The snapshot is a plain directory copy with an independent
// lifecycle: nothing later in the pipeline reads it.
type BackupStep struct {
	stepBase
}

// NewBackupStep creates the backup step.
func NewBackupStep(cfg *config.Config, opts ...StepOption) *BackupStep {
	return &BackupStep{stepBase: newStepBase(cfg, opts)}
}

// Name returns the step name.
func (s *BackupStep) Name() string {
	return "backup"
}

// Do copies the existing output directory to the backup location,
// replacing any prior snapshot. Skipped when backups are disabled or when
// there is no output directory yet.
func (s *BackupStep) Do(_ context.Context, report *model.RunReport) error {
	if !s.cfg.BackupEnabled {
		s.logger.Debug("backup disabled, skipping")
		return nil
	}

	outDir := s.cfg.EffectiveOutputDir()
	if _, err := os.Stat(outDir); os.IsNotExist(err) {
		s.logger.Debug("no output directory yet, nothing to back up")
		return nil
	}

	backupDir := s.cfg.EffectiveBackupDir()
	if err := os.RemoveAll(backupDir); err != nil {
		return fmt.Errorf("failed to remove prior backup: %w", err)
	}
	if err := copyDir(outDir, backupDir); err != nil {
		return fmt.Errorf("failed to back up output directory: %w", err)
	}

	report.BackupDir = backupDir
	s.logger.Info("output directory backed up", "backup", backupDir)
	return nil
}

// copyDir recursively copies src into dst, preserving file permissions.
func copyDir(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if d.IsDir() {
			return os.MkdirAll(target, 0750)
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		data, err := os.ReadFile(path) //nolint:gosec // Paths come from output dir enumeration
		if err != nil {
			return err
		}
		return os.WriteFile(target, data, info.Mode().Perm())
	})
}
