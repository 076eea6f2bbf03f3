package pnplog

// Leveled is the pass-through surface: one method per severity, taking a
// message and optional metadata. Depend on this rather than *Logger when a
// component only needs to write lines.
type Leveled interface {
	Error(msg string, meta ...Fields)
	Warn(msg string, meta ...Fields)
	Info(msg string, meta ...Fields)
	Debug(msg string, meta ...Fields)
	Silly(msg string, meta ...Fields)
}

// Structured provides fluent, typed-field logging.
// Example: log.WarnWith().Str("path", p).Dur("took", d).Msg("slow request")
type Structured interface {
	ErrorWith() LogEvent
	WarnWith() LogEvent
	InfoWith() LogEvent
	DebugWith() LogEvent
	SillyWith() LogEvent
}

var (
	_ Leveled    = (*Logger)(nil)
	_ Structured = (*Logger)(nil)
)
