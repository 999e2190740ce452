package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"squill/internal/diag"
	"squill/internal/driver"
	"squill/internal/fix"
)

var fixCmd = &cobra.Command{
	Use:   "fix [flags] <file.sql|directory>",
	Short: "Apply available fixes to a SQL file or directory",
	Long:  "Run the lint rules, surface available fixes, and apply them according to the chosen strategy.",
	Args:  cobra.ExactArgs(1),
	RunE:  runFix,
}

func init() {
	fixCmd.Flags().Bool("all", false, "apply all safe fixes")
	fixCmd.Flags().Bool("once", false, "apply the first available fix (default)")
	fixCmd.Flags().String("id", "", "apply fix with a specific identifier")
	fixCmd.Flags().StringSlice("disable", nil, "rule names or codes to disable (repeatable)")
}

func runFix(cmd *cobra.Command, args []string) error {
	targetPath := args[0]

	applyAll, err := cmd.Flags().GetBool("all")
	if err != nil {
		return err
	}
	applyOnceFlag, err := cmd.Flags().GetBool("once")
	if err != nil {
		return err
	}
	targetID, err := cmd.Flags().GetString("id")
	if err != nil {
		return err
	}
	disableFlag, err := cmd.Flags().GetStringSlice("disable")
	if err != nil {
		return err
	}

	if targetID != "" && (applyAll || applyOnceFlag) {
		return fmt.Errorf("--id cannot be combined with --all or --once")
	}
	if applyAll && applyOnceFlag {
		return fmt.Errorf("--all and --once are mutually exclusive")
	}

	mode := fix.ApplyModeOnce
	if targetID != "" {
		mode = fix.ApplyModeID
	} else if applyAll {
		mode = fix.ApplyModeAll
	}
	applyOpts := fix.ApplyOptions{
		Mode:     mode,
		TargetID: targetID,
	}

	cfg, err := loadRunConfig(cmd, targetPath)
	if err != nil {
		return err
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}
	if maxDiagnostics <= 0 {
		maxDiagnostics = cfg.Lint.MaxDiagnostics
	}

	// The cache is bypassed on fix runs: files are about to change anyway,
	// and the tree must be rebuilt from the text being rewritten.
	driverOpts := driver.Options{
		MaxDiagnostics: maxDiagnostics,
		DisabledRules:  append(append([]string(nil), cfg.Rules.Disabled...), disableFlag...),
		NoCache:        true,
	}

	info, err := os.Stat(targetPath)
	if err != nil {
		return fmt.Errorf("fix: %w", err)
	}

	// a fix id is only unique within one file's lint run
	if info.IsDir() && targetID != "" {
		return fmt.Errorf("fix: id can only be used with a single file")
	}

	if !info.IsDir() {
		return runFixFile(cmd.Context(), targetPath, driverOpts, applyOpts)
	}
	return runFixDir(cmd.Context(), targetPath, driverOpts, applyOpts)
}

func runFixFile(ctx context.Context, path string, driverOpts driver.Options, opts fix.ApplyOptions) error {
	result, err := driver.Lint(ctx, path, driverOpts)
	if err != nil {
		return fmt.Errorf("fix: lint failed: %w", err)
	}
	result.Bag.Sort()
	res, applyErr := fix.Apply(result.FileSet, result.Bag.Items(), opts)
	return handleApplyResult(res, applyErr)
}

func runFixDir(ctx context.Context, path string, driverOpts driver.Options, opts fix.ApplyOptions) error {
	fs, results, err := driver.LintDir(ctx, path, driverOpts)
	if err != nil {
		return fmt.Errorf("fix: lint dir failed: %w", err)
	}

	var allDiagnostics []diag.Diagnostic
	for _, r := range results {
		if r.Bag == nil {
			continue
		}
		r.Bag.Sort()
		allDiagnostics = append(allDiagnostics, r.Bag.Items()...)
	}

	res, applyErr := fix.Apply(fs, allDiagnostics, opts)
	return handleApplyResult(res, applyErr)
}

func handleApplyResult(res *fix.ApplyResult, applyErr error) error {
	if res == nil {
		return applyErr
	}

	if len(res.Applied) > 0 {
		fmt.Fprintf(os.Stdout, "Applied %d fix(es):\n", len(res.Applied))
		for _, item := range res.Applied {
			location := item.PrimaryPath
			if location == "" {
				location = "(unknown location)"
			}
			fmt.Fprintf(os.Stdout, "  %s [%s] at %s (%d edits)\n",
				item.Title, item.ID, location, item.EditCount)
		}
	}

	if len(res.Skipped) > 0 {
		fmt.Fprintf(os.Stdout, "Skipped %d fix(es):\n", len(res.Skipped))
		for _, item := range res.Skipped {
			name := item.Title
			if name == "" {
				name = item.ID
			}
			fmt.Fprintf(os.Stdout, "  %s: %s\n", name, item.Reason)
		}
	}

	for _, change := range res.FileChanges {
		fmt.Fprintf(os.Stdout, "Rewrote %s (%d edits)\n", change.Path, change.EditCount)
	}

	if applyErr != nil {
		if errors.Is(applyErr, fix.ErrNoFixes) {
			fmt.Fprintln(os.Stdout, "No fixes available.")
			return nil
		}
		return applyErr
	}
	return nil
}
