package pnplog

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// levelWriter passes on events at or above min and drops the rest. Events
// without a level (zerolog's Log()) are dropped too.
type levelWriter struct {
	out io.Writer
	min zerolog.Level
}

func (w levelWriter) Write(p []byte) (int, error) {
	return w.out.Write(p)
}

func (w levelWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if level < w.min || level == zerolog.NoLevel {
		return len(p), nil
	}
	return w.out.Write(p)
}

// dailyFile writes to the file named by pattern with %DATE% replaced by the
// current local date, switching to a new file when the date changes. One
// lumberjack.Logger serves every day so its background mill goroutine is
// started once per sink.
type dailyFile struct {
	pattern    string
	maxSizeMB  int
	maxBackups int
	maxAgeDays int
	compress   bool
	now        func() time.Time

	mu     sync.Mutex
	day    string
	out    *lumberjack.Logger
	closed bool
}

func (l *Logger) newDailyFile(pattern string) *dailyFile {
	return &dailyFile{
		pattern:    pattern,
		maxSizeMB:  l.cfg.LogFileMaxSizeMB,
		maxBackups: l.cfg.LogFileMaxBackups,
		maxAgeDays: l.cfg.LogFileMaxAgeDays,
		compress:   l.cfg.LogFileCompress,
		now:        l.now,
	}
}

// filename returns the path for the given date.
func (d *dailyFile) filename(day string) string {
	return strings.ReplaceAll(d.pattern, datePlaceholder, day)
}

func (d *dailyFile) Write(p []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return len(p), nil
	}

	var closeErr error
	day := d.now().Local().Format(dateLayout)
	switch {
	case d.out == nil:
		d.out = &lumberjack.Logger{
			Filename:   d.filename(day),
			MaxSize:    d.maxSizeMB,
			MaxBackups: d.maxBackups,
			MaxAge:     d.maxAgeDays,
			Compress:   d.compress,
			LocalTime:  true,
		}
		d.day = day
	case day != d.day:
		// the next Write reopens under the new name
		if err := d.out.Close(); err != nil {
			closeErr = fmt.Errorf("closing %s log file: %w", d.day, err)
		}
		d.out.Filename = d.filename(day)
		d.day = day
	}

	n, err := d.out.Write(p)
	if err != nil {
		return n, err
	}
	return n, closeErr
}

// Close closes the current file. Later writes are discarded.
func (d *dailyFile) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed || d.out == nil {
		d.closed = true
		return nil
	}
	d.closed = true
	return d.out.Close()
}

var levelColors = map[string]color.Attribute{
	zerolog.LevelTraceValue: color.FgMagenta,
	zerolog.LevelDebugValue: color.FgBlue,
	zerolog.LevelInfoValue:  color.FgGreen,
	zerolog.LevelWarnValue:  color.FgYellow,
	zerolog.LevelErrorValue: color.FgRed,
	zerolog.LevelFatalValue: color.FgRed,
	zerolog.LevelPanicValue: color.FgRed,
}

// newTextWriter renders events as "<timestamp> - <level>: message key=value".
// The timestamp comes from stamp at write time; the JSON time field is not
// shown.
func newTextWriter(out io.Writer, stamp func() string, colorize bool) zerolog.ConsoleWriter {
	paint := make(map[string]*color.Color, len(levelColors))
	if colorize {
		for name, attr := range levelColors {
			c := color.New(attr)
			c.EnableColor()
			paint[name] = c
		}
	}

	return zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    !colorize,
		PartsOrder: []string{zerolog.LevelFieldName, zerolog.MessageFieldName},
		FormatLevel: func(i interface{}) string {
			name, _ := i.(string)
			label := displayLevel(name)
			if c, ok := paint[name]; ok {
				label = c.Sprint(label)
			}
			return levelLabel(stamp(), label) + ":"
		},
	}
}
