package pnplog

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Medium is where a sink writes.
type Medium int

const (
	MediumConsole Medium = iota
	MediumFile
)

func (m Medium) String() string {
	switch m {
	case MediumConsole:
		return "console"
	case MediumFile:
		return "file"
	default:
		return "unknown"
	}
}

// Format is how a sink renders events.
type Format int

const (
	// FormatColorized is the human-readable console layout with ANSI colors.
	FormatColorized Format = iota
	// FormatPlain is the human-readable layout without colors.
	FormatPlain
	// FormatJSON is zerolog's native JSON with its own time field.
	FormatJSON
)

func (f Format) String() string {
	switch f {
	case FormatColorized:
		return "colorized"
	case FormatPlain:
		return "plain"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// Sink describes one output assembled by New.
type Sink struct {
	Medium Medium
	Level  zerolog.Level
	Format Format
	// Path is the file template with %DATE% in place of YYYY-MM-DD.
	Path string
	// Rotation is "daily" for file sinks.
	Rotation string
}

// fileSeverities lists the severities that get their own directory.
var fileSeverities = []zerolog.Level{
	zerolog.DebugLevel,
	zerolog.InfoLevel,
	zerolog.WarnLevel,
	zerolog.ErrorLevel,
}

// planSinks decides the sink list for cfg. cfg must be normalized.
func planSinks(cfg Config) ([]Sink, error) {
	if cfg.Silent {
		return []Sink{{Medium: MediumConsole, Level: zerolog.ErrorLevel, Format: FormatColorized}}, nil
	}

	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	sinks := []Sink{{Medium: MediumConsole, Level: level, Format: FormatColorized}}

	if cfg.LogDir == emptyString {
		return sinks, nil
	}

	for _, lvl := range fileSeverities {
		sinks = append(sinks, fileSink(cfg.LogDir, lvl, FormatPlain, plainFileName))
	}
	if !cfg.DisableJSON {
		for _, lvl := range fileSeverities {
			sinks = append(sinks, fileSink(cfg.LogDir, lvl, FormatJSON, jsonFileName))
		}
	}
	return sinks, nil
}

func fileSink(dir string, level zerolog.Level, format Format, name string) Sink {
	return Sink{
		Medium:   MediumFile,
		Level:    level,
		Format:   format,
		Path:     filepath.Join(dir, level.String(), name),
		Rotation: rotationDaily,
	}
}

// ensureLogDirs creates <dir>/<severity> for every file severity.
func ensureLogDirs(dir string) error {
	for _, lvl := range fileSeverities {
		path := filepath.Join(dir, lvl.String())
		if err := os.MkdirAll(path, os.ModePerm); err != nil {
			return fmt.Errorf("failed to create %s log directory: %w", lvl, err)
		}
	}
	return nil
}

// minLevel returns the most verbose level among sinks.
func minLevel(sinks []Sink) zerolog.Level {
	lowest := zerolog.Disabled
	for _, s := range sinks {
		if s.Level < lowest {
			lowest = s.Level
		}
	}
	return lowest
}
