package main

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/critcalc/internal/model"
)

func setupConfig(t *testing.T, body string) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	path := filepath.Join(t.TempDir(), "critcalc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	t.Setenv("CRITCALC_CONFIG", path)
}

func TestRun_Arguments(t *testing.T) {
	setupConfig(t, "log_level: error\n")

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"0", "null", "2"}, &out))
	assert.Equal(t, "0\t1.5\nnone\t1\n2\t1.5392156862745099\n", out.String())
}

func TestRun_OutOfRangeArgument(t *testing.T) {
	setupConfig(t, "log_level: error\n")

	var out bytes.Buffer
	err := run(context.Background(), []string{"100"}, &out)

	var rangeErr *model.OutOfRangeError
	require.True(t, errors.As(err, &rangeErr), "got %v", err)
	assert.Equal(t, int32(100), rangeErr.Value)
}

func TestRun_LogsWeapons(t *testing.T) {
	setupConfig(t, "log_level: info\nweapons:\n  - name: Fatebringer\n    crit_multiplier: 2\n  - name: Gjallarhorn\n")

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), nil, &out))
	assert.Contains(t, out.String(), "name=Fatebringer crit=2")
	assert.Contains(t, out.String(), "name=Gjallarhorn crit=none multiplier=1")
}

func TestRun_BadConfig(t *testing.T) {
	setupConfig(t, "weapons:\n  - name: a\n    crit_multiplier: -26\n")

	err := run(context.Background(), nil, &bytes.Buffer{})
	assert.ErrorIs(t, err, model.ErrCritMultiplierOutOfRange)
}

func TestRun_Cancelled(t *testing.T) {
	setupConfig(t, "log_level: error\nweapons:\n  - name: a\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, run(ctx, nil, &bytes.Buffer{}), context.Canceled)
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLogLevel(tt.in), "parseLogLevel(%q)", tt.in)
	}
}
