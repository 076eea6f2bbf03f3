package pnplog

import "time"

// LogTimeStamp returns the prefix used on human-readable level labels, or an
// empty string when timestamps are disabled.
func (l *Logger) LogTimeStamp() string {
	return formatLogTimeStamp(l.now(), !l.cfg.HideTimestamp, l.cfg.ShowMilliseconds)
}

// formatLogTimeStamp renders t in local time as "YYYY-MM-DD HH:MM:SS", with
// ".mmm" appended when millis is set.
func formatLogTimeStamp(t time.Time, show, millis bool) string {
	if !show {
		return emptyString
	}
	layout := dateLayout + " " + timeLayout
	if millis {
		layout += ".000"
	}
	return t.Local().Format(layout)
}

// levelLabel joins the timestamp prefix and the level name.
func levelLabel(stamp, level string) string {
	if stamp == emptyString {
		return level
	}
	return stamp + " - " + level
}
