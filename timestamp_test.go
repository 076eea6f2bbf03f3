package pnplog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatLogTimeStamp(t *testing.T) {
	at := time.Date(2024, time.March, 7, 9, 5, 3, 42*int(time.Millisecond), time.Local)

	tests := []struct {
		name   string
		show   bool
		millis bool
		want   string
	}{
		{name: "disabled", show: false, millis: false, want: ""},
		{name: "disabled ignores millis", show: false, millis: true, want: ""},
		{name: "seconds", show: true, millis: false, want: "2024-03-07 09:05:03"},
		{name: "milliseconds", show: true, millis: true, want: "2024-03-07 09:05:03.042"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatLogTimeStamp(at, tt.show, tt.millis))
		})
	}
}

func TestLogTimeStamp_Shape(t *testing.T) {
	t.Run("hidden", func(t *testing.T) {
		l := &Logger{cfg: Config{HideTimestamp: true, ShowMilliseconds: true}, now: time.Now}
		assert.Empty(t, l.LogTimeStamp())
	})

	t.Run("seconds", func(t *testing.T) {
		l := &Logger{cfg: Config{}, now: time.Now}
		assert.Regexp(t, `^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`, l.LogTimeStamp())
	})

	t.Run("milliseconds", func(t *testing.T) {
		l := &Logger{cfg: Config{ShowMilliseconds: true}, now: time.Now}
		assert.Regexp(t, `^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\.\d{3}$`, l.LogTimeStamp())
	})

	t.Run("midnight", func(t *testing.T) {
		midnight := time.Date(2023, time.December, 31, 0, 0, 0, 0, time.Local)
		l := &Logger{cfg: Config{ShowMilliseconds: true}, now: func() time.Time { return midnight }}
		assert.Equal(t, "2023-12-31 00:00:00.000", l.LogTimeStamp())
	})
}

func TestLevelLabel(t *testing.T) {
	assert.Equal(t, "info", levelLabel("", "info"))
	assert.Equal(t, "2024-03-07 09:05:03 - warn", levelLabel("2024-03-07 09:05:03", "warn"))
}
