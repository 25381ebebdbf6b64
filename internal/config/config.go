// Package config loads the optional YAML settings file shared by the lab
// tools. Precedence is: explicit flag > config file > built-in default.
package config

import (
	"context"

	"biolab-core/align"
	"cloudeng.io/cmdutil/cmdyaml"
)

// Scoring is the YAML form of an alignment scoring scheme. Nil fields fall
// back to the built-in default for the mode.
type Scoring struct {
	Match    *int `yaml:"match"`
	Mismatch *int `yaml:"mismatch"`
	Gap      *int `yaml:"gap"`
}

// Apply overlays the configured fields on base.
func (s Scoring) Apply(base align.Scoring) align.Scoring {
	if s.Match != nil {
		base.Match = *s.Match
	}
	if s.Mismatch != nil {
		base.Mismatch = *s.Mismatch
	}
	if s.Gap != nil {
		base.Gap = *s.Gap
	}
	return base
}

// NCBI holds E-utilities identity and endpoint settings.
type NCBI struct {
	Email   string `yaml:"email"`
	APIKey  string `yaml:"api_key"`
	Tool    string `yaml:"tool"`
	BaseURL string `yaml:"base_url"`
}

// Logging mirrors the --log-* flags.
type Logging struct {
	Level  *int   `yaml:"level"`
	File   string `yaml:"file"`
	Format string `yaml:"format"`
}

// Config is the root of the settings file.
type Config struct {
	Alignment struct {
		Global Scoring `yaml:"global"`
		Local  Scoring `yaml:"local"`
	} `yaml:"alignment"`
	NCBI    NCBI    `yaml:"ncbi"`
	Logging Logging `yaml:"logging"`
}

// ScoringFor returns the effective scheme for mode before flag overrides.
func (c Config) ScoringFor(mode align.Mode) align.Scoring {
	if mode == align.Local {
		return c.Alignment.Local.Apply(align.DefaultLocal)
	}
	return c.Alignment.Global.Apply(align.DefaultGlobal)
}

// Load parses path strictly; unknown keys are errors. An empty path yields
// the zero Config.
func Load(ctx context.Context, path string) (Config, error) {
	var c Config
	if path == "" {
		return c, nil
	}
	if err := cmdyaml.ParseConfigFileStrict(ctx, path, &c); err != nil {
		return Config{}, err
	}
	return c, nil
}
