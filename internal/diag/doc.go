// Package diag defines the diagnostic model shared by every squill phase:
// severities, stable code ranges (LEX/SYN/SQL/IO), diagnostics with notes
// and attached fixes, and the Bag accumulator.
//
// A Fix carries TextEdits in source byte coordinates. OldText on an edit is
// a guard — the fix engine re-reads the target range before applying and
// skips the fix when the text has drifted. Applicability gates bulk
// application: only AlwaysSafe fixes are applied by `squill fix --all`.
//
// Diagnostics are plain values. Phases report them through the Reporter
// interface (usually a BagReporter) and never hold references to them
// afterwards, so bags can be merged and sorted freely.
package diag
