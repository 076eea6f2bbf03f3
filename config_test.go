package pnplog

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Empty(t, cfg.LogDir)
	assert.False(t, cfg.DisableJSON)
	assert.False(t, cfg.HideTimestamp)
	assert.False(t, cfg.ShowMilliseconds)
	assert.False(t, cfg.SkipAnnounce)
	assert.Equal(t, "info", cfg.Level)
	assert.False(t, cfg.Silent)
}

func TestApplyEnv(t *testing.T) {
	tests := []struct {
		name       string
		level      string
		silent     string
		wantLevel  string
		wantSilent bool
	}{
		{name: "unset", wantLevel: "info"},
		{name: "level", level: "debug", wantLevel: "debug"},
		{name: "silent", silent: "true", wantLevel: "info", wantSilent: true},
		{name: "silent is case sensitive", silent: "TRUE", wantLevel: "info"},
		{name: "silent needs literal true", silent: "1", wantLevel: "info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvLevel, tt.level)
			t.Setenv(EnvSilent, tt.silent)

			cfg, err := ConfigFromEnv()
			require.NoError(t, err)
			assert.Equal(t, tt.wantLevel, cfg.Level)
			assert.Equal(t, tt.wantSilent, cfg.Silent)
		})
	}
}

func TestApplyEnv_Unset(t *testing.T) {
	t.Setenv(EnvLevel, "warn")
	t.Setenv(EnvSilent, "true")
	require.NoError(t, os.Unsetenv(EnvLevel))
	require.NoError(t, os.Unsetenv(EnvSilent))

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Level)
	assert.False(t, cfg.Silent)

	explicit := Config{Level: "debug", Silent: true}
	require.NoError(t, ApplyEnv(&explicit))
	assert.Equal(t, "debug", explicit.Level)
	assert.False(t, explicit.Silent)
}

func TestValidateConfig_SilentSkipsLevel(t *testing.T) {
	cfg := Config{Silent: true, Level: "verbose"}.normalized()
	require.NoError(t, validateConfig(&cfg))
	assert.Equal(t, "error", cfg.Level)
}

func TestApplyEnv_KeepsExplicitLevel(t *testing.T) {
	t.Setenv(EnvLevel, "")
	t.Setenv(EnvSilent, "")

	cfg := Config{Level: "warn", Silent: true}
	require.NoError(t, ApplyEnv(&cfg))
	assert.Equal(t, "warn", cfg.Level)
	assert.False(t, cfg.Silent)
}

func TestNormalized(t *testing.T) {
	assert.Equal(t, "info", Config{}.normalized().Level)
	assert.Equal(t, "error", Config{Level: " Error "}.normalized().Level)
}

func TestValidateConfig(t *testing.T) {
	ok := DefaultConfig()
	require.NoError(t, validateConfig(&ok))

	for _, lvl := range []string{"silly", "trace", "debug", "info", "warn", "error"} {
		cfg := Config{Level: lvl}
		assert.NoError(t, validateConfig(&cfg), lvl)
	}

	bad := Config{Level: "verbose"}
	assert.Error(t, validateConfig(&bad))

	neg := Config{LogFileMaxSizeMB: -5}
	assert.Error(t, validateConfig(&neg))
}
