package pnplog

import (
	"fmt"
	"io"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Config controls which sinks a Logger assembles. The zero value is the
// default: JSON files, timestamps and the startup line on, milliseconds off,
// console at info.
type Config struct {
	// LogDir enables the per-severity file sinks when non-empty.
	LogDir string
	// DisableJSON drops the JSON file kept next to every plain-text file.
	DisableJSON bool
	// HideTimestamp removes the prefix on the level label of human-readable sinks.
	HideTimestamp bool
	// ShowMilliseconds appends .mmm to the timestamp prefix.
	ShowMilliseconds bool
	// SkipAnnounce suppresses the AnnounceMessage line logged after construction.
	SkipAnnounce bool

	// Level is the console minimum severity. Empty means info.
	Level string `validate:"omitempty,oneof=silly trace debug info warn error fatal panic"`
	// Silent keeps only error-level console output and disables files.
	// Level is ignored when set.
	Silent bool

	ConsoleNoColor bool
	// Console receives console output. Nil means os.Stdout.
	Console io.Writer `validate:"-"`

	LogFileMaxSizeMB  int `validate:"gte=0"`
	LogFileMaxBackups int `validate:"gte=0"`
	LogFileMaxAgeDays int `validate:"gte=0"`
	LogFileCompress   bool
}

// DefaultConfig returns the defaults with the console level spelled out.
func DefaultConfig() Config {
	return Config{Level: defaultLevel}
}

type envOverrides struct {
	Level  string `envconfig:"LEVEL"`
	Silent string `envconfig:"SILENT"`
}

// ConfigFromEnv returns DefaultConfig with LEVEL and SILENT applied.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()
	if err := ApplyEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyEnv resolves LEVEL and SILENT into cfg. An unset or empty LEVEL leaves
// cfg.Level alone; Silent is true only for the literal string "true".
func ApplyEnv(cfg *Config) error {
	var env envOverrides
	if err := envconfig.Process(emptyString, &env); err != nil {
		return fmt.Errorf("reading logging environment: %w", err)
	}
	if env.Level != emptyString {
		cfg.Level = env.Level
	}
	cfg.Silent = env.Silent == "true"
	return nil
}

// normalized returns a copy with the level lowercased and defaulted. Silent
// mode pins the level to error so a stray LEVEL cannot fail validation.
func (c Config) normalized() Config {
	c.Level = strings.ToLower(strings.TrimSpace(c.Level))
	if c.Silent {
		c.Level = silentLevel
	}
	if c.Level == emptyString {
		c.Level = defaultLevel
	}
	return c
}
