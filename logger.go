package pnplog

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/atomic"
)

// Fields is optional structured metadata attached to a log line.
type Fields map[string]interface{}

// Logger is the process-wide logging facade. Create it once with New.
type Logger struct {
	cfg    Config
	logger zerolog.Logger
	sinks  []Sink
	files  []*dailyFile
	now    func() time.Time
	closed atomic.Bool
}

var instance atomic.Pointer[Logger]

// Instance returns the Logger created by New, or nil before that.
func Instance() *Logger {
	return instance.Load()
}

// New assembles the sinks described by cfg, builds the underlying zerolog
// logger and publishes the result as the process-wide instance. A nil cfg
// means DefaultConfig(). New never reads the environment; resolve LEVEL and
// SILENT with ConfigFromEnv or ApplyEnv first.
func New(cfg *Config) (*Logger, error) {
	if cfg == nil {
		def := DefaultConfig()
		cfg = &def
	}
	if instance.Load() != nil {
		return nil, &DuplicateInstanceError{}
	}

	c := cfg.normalized()
	if err := validateConfig(&c); err != nil {
		return nil, err
	}

	sinks, err := planSinks(c)
	if err != nil {
		return nil, err
	}

	l := &Logger{cfg: c, sinks: sinks, now: time.Now}

	if !c.Silent && c.LogDir != emptyString {
		if err := ensureLogDirs(c.LogDir); err != nil {
			return nil, err
		}
	}

	writers := make([]io.Writer, 0, len(sinks))
	for _, s := range sinks {
		writers = append(writers, levelWriter{out: l.sinkWriter(s), min: s.Level})
	}

	l.logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(minLevel(sinks)).
		With().Timestamp().Logger()

	if !instance.CompareAndSwap(nil, l) {
		_ = l.Close()
		return nil, &DuplicateInstanceError{}
	}

	if !c.SkipAnnounce {
		l.Info(AnnounceMessage)
	}
	return l, nil
}

// sinkWriter opens the destination for s.
func (l *Logger) sinkWriter(s Sink) io.Writer {
	if s.Medium == MediumConsole {
		out := l.cfg.Console
		if out == nil {
			out = os.Stdout
		}
		return newTextWriter(out, l.LogTimeStamp, !l.cfg.ConsoleNoColor)
	}

	file := l.newDailyFile(s.Path)
	l.files = append(l.files, file)
	if s.Format == FormatJSON {
		return file
	}
	return newTextWriter(file, l.LogTimeStamp, false)
}

// Zerolog returns the underlying logger for direct use. Events written with
// its Log() method carry no level and are dropped by every sink.
func (l *Logger) Zerolog() *zerolog.Logger {
	return &l.logger
}

// Sinks returns the sinks assembled at construction.
func (l *Logger) Sinks() []Sink {
	out := make([]Sink, len(l.sinks))
	copy(out, l.sinks)
	return out
}

// Close closes the log files. It's safe to call Close multiple times. The
// Logger stays the process-wide instance; console logging keeps working and
// file output is discarded.
func (l *Logger) Close() error {
	if l == nil || !l.closed.CompareAndSwap(false, true) {
		return nil
	}
	var first error
	for _, f := range l.files {
		if err := f.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (l *Logger) Error(msg string, meta ...Fields) {
	send(l.logger.Error(), msg, meta)
}

func (l *Logger) Warn(msg string, meta ...Fields) {
	send(l.logger.Warn(), msg, meta)
}

func (l *Logger) Info(msg string, meta ...Fields) {
	send(l.logger.Info(), msg, meta)
}

func (l *Logger) Debug(msg string, meta ...Fields) {
	send(l.logger.Debug(), msg, meta)
}

// Silly logs below debug; it maps to zerolog's trace level.
func (l *Logger) Silly(msg string, meta ...Fields) {
	send(l.logger.Trace(), msg, meta)
}

func send(e *zerolog.Event, msg string, meta []Fields) {
	if e == nil {
		return
	}
	for _, m := range meta {
		e = e.Fields(map[string]interface{}(m))
	}
	e.Msg(msg)
}

// InfoWith returns a LogEvent for structured Info-level logging.
// Example: log.InfoWith().Str("user_id", id).Int("count", 5).Msg("User processed")
func (l *Logger) InfoWith() LogEvent {
	return newLogEvent(l.logger.Info())
}

func (l *Logger) WarnWith() LogEvent {
	return newLogEvent(l.logger.Warn())
}

// ErrorWith returns a LogEvent for structured Error-level logging.
// Example: log.ErrorWith().Err(err).Str("operation", "database").Msg("Query failed")
func (l *Logger) ErrorWith() LogEvent {
	return newLogEvent(l.logger.Error())
}

func (l *Logger) DebugWith() LogEvent {
	return newLogEvent(l.logger.Debug())
}

func (l *Logger) SillyWith() LogEvent {
	return newLogEvent(l.logger.Trace())
}
