package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	opts, err := Load(NewViper())
	require.NoError(t, err)

	require.Equal(t, DefaultServerName, opts.Name)
	require.Equal(t, DefaultServerVersion, opts.Version)
	require.Equal(t, slog.LevelInfo, opts.LogLevel)
	require.Equal(t, LogFormatText, opts.LogFormat)
	require.False(t, opts.LenientArguments)
}

func TestLoadPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "proofessor.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: debug\n  format: json\nserver:\n  name: from-file\n"), 0o600))

	t.Setenv("PROOFESSOR_SERVER_NAME", "from-env")
	t.Setenv("PROOFESSOR_ARGUMENTS_LENIENT", "true")

	v := NewViper()
	require.NoError(t, ReadFile(v, path))
	v.Set(KeyLogLevel, "warn")

	opts, err := Load(v)
	require.NoError(t, err)

	require.Equal(t, "from-env", opts.Name, "env overrides file")
	require.Equal(t, slog.LevelWarn, opts.LogLevel, "explicit set overrides file")
	require.Equal(t, LogFormatJSON, opts.LogFormat)
	require.True(t, opts.LenientArguments)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  any
	}{
		{name: "empty name", key: KeyServerName, val: "  "},
		{name: "empty version", key: KeyServerVersion, val: ""},
		{name: "bad level", key: KeyLogLevel, val: "loud"},
		{name: "bad format", key: KeyLogFormat, val: "xml"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := NewViper()
			v.Set(tc.key, tc.val)

			_, err := Load(v)
			require.Error(t, err)
		})
	}
}

func TestReadFileMissing(t *testing.T) {
	require.NoError(t, ReadFile(NewViper(), ""))
	require.Error(t, ReadFile(NewViper(), filepath.Join(t.TempDir(), "absent.yaml")))
}

func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want slog.Level
	}{
		{in: "", want: slog.LevelInfo},
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: " error ", want: slog.LevelError},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()

			got, err := ParseLogLevel(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	opts := Defaults()
	opts.LogFormat = LogFormatJSON
	opts.LogLevel = slog.LevelWarn

	logger := opts.NewLogger(&buf)
	logger.Info("hidden")
	logger.Warn("shown", "tool", "debug_help")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "shown", line["msg"])
	require.Equal(t, "debug_help", line["tool"])
}
