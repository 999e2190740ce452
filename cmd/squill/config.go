package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"squill/internal/project"
)

// loadRunConfig resolves the project configuration for a lint target: the
// nearest squill.toml above the target wins, and config warnings go to
// stderr unless --quiet is set.
func loadRunConfig(cmd *cobra.Command, targetPath string) (project.Config, error) {
	startDir := targetPath
	if info, err := os.Stat(targetPath); err == nil && !info.IsDir() {
		startDir = filepath.Dir(targetPath)
	}

	cfg, _, warnings, err := project.LoadProjectConfig(startDir)
	if err != nil {
		return project.Config{}, err
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if !quiet {
		for _, warning := range warnings {
			fmt.Fprintf(os.Stderr, "warning: %s\n", warning)
		}
	}
	return cfg, nil
}

// effectiveMaxDiagnostics prefers an explicit --max-diagnostics over the
// configured value.
func effectiveMaxDiagnostics(cmd *cobra.Command, targetPath string) (int, error) {
	flagValue, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return 0, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if flagValue > 0 {
		return flagValue, nil
	}
	cfg, err := loadRunConfig(cmd, targetPath)
	if err != nil {
		return 0, err
	}
	return cfg.Lint.MaxDiagnostics, nil
}
