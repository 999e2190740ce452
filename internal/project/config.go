package project

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"squill/internal/rules"
)

// Config is the parsed squill.toml. Every section is optional; missing
// values fall back to defaults.
type Config struct {
	Lint  lintConfig  `toml:"lint"`
	Rules rulesConfig `toml:"rules"`
	Cache cacheConfig `toml:"cache"`
}

type lintConfig struct {
	MaxDiagnostics int    `toml:"max_diagnostics"`
	Dialect        string `toml:"dialect"`
}

type rulesConfig struct {
	Disabled []string `toml:"disabled"`
}

type cacheConfig struct {
	Disabled bool   `toml:"disabled"`
	Dir      string `toml:"dir"`
}

const (
	DefaultMaxDiagnostics = 100
	DefaultDialect        = "ansi"
)

// DefaultConfig returns the configuration used when no squill.toml exists.
func DefaultConfig() Config {
	return Config{
		Lint: lintConfig{
			MaxDiagnostics: DefaultMaxDiagnostics,
			Dialect:        DefaultDialect,
		},
	}
}

// LoadConfig parses a squill.toml. Unknown rule names in [rules].disabled
// are reported as warnings, not errors, so a config written for a newer
// squill still loads.
func LoadConfig(path string) (Config, []string, error) {
	cfg := DefaultConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	var warnings []string
	for _, key := range meta.Undecoded() {
		warnings = append(warnings, fmt.Sprintf("%s: unknown key %q", path, key.String()))
	}
	for _, name := range cfg.Rules.Disabled {
		if !rules.Known(name) {
			warnings = append(warnings, fmt.Sprintf("%s: unknown rule %q in [rules].disabled", path, name))
		}
	}

	if cfg.Lint.MaxDiagnostics <= 0 {
		cfg.Lint.MaxDiagnostics = DefaultMaxDiagnostics
	}
	if strings.TrimSpace(cfg.Lint.Dialect) == "" {
		cfg.Lint.Dialect = DefaultDialect
	}

	return cfg, warnings, nil
}

// LoadProjectConfig locates squill.toml from startDir upward and loads it.
// When no manifest exists the defaults are returned with ok=false.
func LoadProjectConfig(startDir string) (cfg Config, ok bool, warnings []string, err error) {
	path, ok, err := FindSquillToml(startDir)
	if err != nil || !ok {
		return DefaultConfig(), ok, nil, err
	}
	cfg, warnings, err = LoadConfig(path)
	if err != nil {
		return DefaultConfig(), true, nil, err
	}
	return cfg, true, warnings, nil
}

// DefaultManifest is the squill.toml written by `squill init`.
const DefaultManifest = `[lint]
max_diagnostics = 100
dialect = "ansi"

[rules]
disabled = []

[cache]
disabled = false
`

// WriteDefaultManifest creates squill.toml at path. Refuses to overwrite.
func WriteDefaultManifest(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	return os.WriteFile(path, []byte(DefaultManifest), 0o644)
}
