package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"squill/internal/diag"
	"squill/internal/diagfmt"
	"squill/internal/driver"
	"squill/internal/source"
	"squill/internal/ui"
)

var lintCmd = &cobra.Command{
	Use:   "lint [flags] <file.sql|directory>",
	Short: "Lint SQL files for layout issues",
	Long:  `Lint checks a SQL file, or every *.sql file within a directory, against squill's layout rules`,
	Args:  cobra.ExactArgs(1),
	RunE:  runLint,
}

func init() {
	lintCmd.Flags().String("format", "pretty", "output format (pretty|json|sarif|short)")
	lintCmd.Flags().StringSlice("disable", nil, "rule names or codes to disable (repeatable)")
	lintCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	lintCmd.Flags().Bool("no-cache", false, "bypass the verdict cache")
	lintCmd.Flags().Bool("with-notes", false, "include diagnostic notes in output")
	lintCmd.Flags().Bool("suggest", false, "include fix suggestions in output")
	lintCmd.Flags().Bool("preview", false, "show fix previews without modifying files")
	lintCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
	lintCmd.Flags().Bool("progress", false, "show a live progress view for directory runs")
}

func runLint(cmd *cobra.Command, args []string) error {
	targetPath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	disableFlag, err := cmd.Flags().GetStringSlice("disable")
	if err != nil {
		return fmt.Errorf("failed to get disable flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	withNotes, err := cmd.Flags().GetBool("with-notes")
	if err != nil {
		return fmt.Errorf("failed to get with-notes flag: %w", err)
	}
	suggest, err := cmd.Flags().GetBool("suggest")
	if err != nil {
		return fmt.Errorf("failed to get suggest flag: %w", err)
	}
	preview, err := cmd.Flags().GetBool("preview")
	if err != nil {
		return fmt.Errorf("failed to get preview flag: %w", err)
	}
	fullPath, err := cmd.Flags().GetBool("fullpath")
	if err != nil {
		return fmt.Errorf("failed to get fullpath flag: %w", err)
	}
	showProgress, err := cmd.Flags().GetBool("progress")
	if err != nil {
		return fmt.Errorf("failed to get progress flag: %w", err)
	}

	cfg, err := loadRunConfig(cmd, targetPath)
	if err != nil {
		return err
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if maxDiagnostics <= 0 {
		maxDiagnostics = cfg.Lint.MaxDiagnostics
	}

	opts := driver.Options{
		MaxDiagnostics: maxDiagnostics,
		DisabledRules:  append(append([]string(nil), cfg.Rules.Disabled...), disableFlag...),
		NoCache:        noCache || cfg.Cache.Disabled,
		CacheDir:       cfg.Cache.Dir,
		Jobs:           jobs,
	}

	st, err := os.Stat(targetPath)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	pathMode := diagfmt.PathModeAuto
	if fullPath {
		pathMode = diagfmt.PathModeAbsolute
	}
	showFixes := suggest || preview
	prettyOpts := diagfmt.PrettyOpts{
		Color:       useColor(cmd, os.Stdout),
		Context:     2,
		PathMode:    pathMode,
		ShowNotes:   withNotes,
		ShowFixes:   showFixes,
		ShowPreview: preview,
	}
	jsonOpts := diagfmt.JSONOpts{
		IncludePositions: true,
		PathMode:         pathMode,
		IncludeNotes:     withNotes,
		IncludeFixes:     showFixes,
		IncludePreviews:  preview,
	}
	meta := diagfmt.SarifRunMeta{
		ToolName:       "squill",
		ToolVersion:    "0.1.0",
		InvocationArgs: os.Args,
	}

	var exitCode int
	if !st.IsDir() {
		result, lintErr := driver.Lint(cmd.Context(), targetPath, opts)
		if lintErr != nil {
			return fmt.Errorf("lint failed: %w", lintErr)
		}
		if result.Bag.Len() > 0 {
			exitCode = 1
		}
		if err := renderBag(format, result.Bag, result.FileSet, prettyOpts, jsonOpts, meta, withNotes); err != nil {
			return err
		}
	} else {
		fs, results, lintErr := lintDirectory(cmd, targetPath, opts, showProgress)
		if lintErr != nil {
			return fmt.Errorf("lint failed: %w", lintErr)
		}
		merged := diag.NewBag(maxDiagnostics)
		for _, r := range results {
			merged.Merge(r.Bag)
			if r.Bag.Len() > 0 {
				exitCode = 1
			}
		}
		merged.Sort()
		if err := renderBag(format, merged, fs, prettyOpts, jsonOpts, meta, withNotes); err != nil {
			return err
		}
	}

	if exitCode != 0 {
		// diagnostics are already printed, keep cobra quiet
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("")
	}
	return nil
}

func renderBag(format string, bag *diag.Bag, fs *source.FileSet, prettyOpts diagfmt.PrettyOpts, jsonOpts diagfmt.JSONOpts, meta diagfmt.SarifRunMeta, withNotes bool) error {
	switch format {
	case "pretty":
		diagfmt.Pretty(os.Stdout, bag, fs, prettyOpts)
		return nil
	case "short":
		output := diag.FormatShortDiagnostics(bag.Items(), fs, withNotes)
		if output != "" {
			fmt.Fprintln(os.Stdout, output)
		}
		return nil
	case "json":
		return diagfmt.JSON(os.Stdout, bag, fs, jsonOpts)
	case "sarif":
		return diagfmt.Sarif(os.Stdout, bag, fs, meta)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// lintDirectory runs LintDir, optionally behind a live progress view.
func lintDirectory(cmd *cobra.Command, dir string, opts driver.Options, showProgress bool) (*source.FileSet, []driver.DirResult, error) {
	if !showProgress || !isTerminal(os.Stdout) {
		return driver.LintDir(cmd.Context(), dir, opts)
	}

	files, err := driver.ListSQLFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	display := make([]string, len(files))
	for i, f := range files {
		if rel, relErr := filepath.Rel(dir, f); relErr == nil {
			display[i] = rel
		} else {
			display[i] = f
		}
	}

	events := make(chan ui.Event, len(files))
	opts.OnFile = func(res driver.DirResult) {
		name := res.Path
		if rel, relErr := filepath.Rel(dir, res.Path); relErr == nil {
			name = rel
		}
		status := ui.StatusClean
		switch {
		case res.Bag.HasErrors():
			status = ui.StatusError
		case res.Bag.Len() > 0:
			status = ui.StatusIssues
		}
		events <- ui.Event{File: name, Status: status, Findings: res.Bag.Len()}
	}

	type dirOutcome struct {
		fs      *source.FileSet
		results []driver.DirResult
		err     error
	}
	done := make(chan dirOutcome, 1)
	go func() {
		fs, results, err := driver.LintDir(cmd.Context(), dir, opts)
		close(events)
		done <- dirOutcome{fs: fs, results: results, err: err}
	}()

	model := ui.NewProgressModel(fmt.Sprintf("linting %s", dir), display, events)
	if _, err := tea.NewProgram(model).Run(); err != nil {
		return nil, nil, err
	}

	outcome := <-done
	return outcome.fs, outcome.results, outcome.err
}
