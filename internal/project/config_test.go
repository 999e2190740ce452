package project

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigFull(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
[lint]
max_diagnostics = 25
dialect = "postgres"

[rules]
disabled = ["select-targets"]

[cache]
disabled = true
`)
	cfg, warnings, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if cfg.Lint.MaxDiagnostics != 25 || cfg.Lint.Dialect != "postgres" {
		t.Errorf("lint section: %+v", cfg.Lint)
	}
	if len(cfg.Rules.Disabled) != 1 || cfg.Rules.Disabled[0] != "select-targets" {
		t.Errorf("rules section: %+v", cfg.Rules)
	}
	if !cfg.Cache.Disabled {
		t.Errorf("cache section: %+v", cfg.Cache)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "")
	cfg, warnings, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if cfg.Lint.MaxDiagnostics != DefaultMaxDiagnostics {
		t.Errorf("max diagnostics default: %d", cfg.Lint.MaxDiagnostics)
	}
	if cfg.Lint.Dialect != DefaultDialect {
		t.Errorf("dialect default: %q", cfg.Lint.Dialect)
	}
}

func TestLoadConfigUnknownRuleWarns(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
[rules]
disabled = ["no-such-rule"]
`)
	_, warnings, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "no-such-rule") {
		t.Errorf("warnings: %v", warnings)
	}
}

func TestLoadConfigDisableByCode(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
[rules]
disabled = ["SQL3001"]
`)
	_, warnings, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 0 {
		t.Errorf("rule code should be recognized: %v", warnings)
	}
}

func TestLoadConfigUnknownKeyWarns(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
[lint]
max_diagnostix = 5
`)
	_, warnings, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "max_diagnostix") {
		t.Errorf("warnings: %v", warnings)
	}
}

func TestLoadConfigBadToml(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "[lint\n")
	if _, _, err := LoadConfig(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestFindSquillToml(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	path, ok, err := FindSquillToml(nested)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("manifest not found from nested dir")
	}
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatal(err)
	}
	wantDir, err := filepath.EvalSymlinks(root)
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Dir(resolved) != wantDir {
		t.Errorf("found %q, want it under %q", resolved, wantDir)
	}
}

func TestFindSquillTomlMissing(t *testing.T) {
	_, ok, err := FindSquillToml(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("found a manifest in an empty tree")
	}
}

func TestLoadProjectConfigNoManifest(t *testing.T) {
	cfg, ok, warnings, err := LoadProjectConfig(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if ok || len(warnings) != 0 {
		t.Errorf("ok=%v warnings=%v", ok, warnings)
	}
	if cfg.Lint.MaxDiagnostics != DefaultMaxDiagnostics {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestWriteDefaultManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ManifestName)
	if err := WriteDefaultManifest(path); err != nil {
		t.Fatal(err)
	}
	cfg, warnings, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 0 {
		t.Errorf("default manifest must load clean: %v", warnings)
	}
	if cfg.Lint.MaxDiagnostics != DefaultMaxDiagnostics {
		t.Errorf("default manifest: %+v", cfg)
	}
	if err := WriteDefaultManifest(path); err == nil {
		t.Error("must refuse to overwrite")
	}
}
