package internal

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		" warn ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for raw, want := range tests {
		assert.Equal(t, want, ParseLevel(raw), raw)
	}
}

func TestLogLevelsAreIndependent(t *testing.T) {
	ctx := context.Background()
	t.Cleanup(func() {
		SetLogLevel(slog.LevelInfo)
		SetInternalLogLevel(slog.LevelInfo)
	})

	SetRawLogLevel("debug")
	SetInternalLogLevel(slog.LevelError)

	assert.True(t, GetLogger().Enabled(ctx, slog.LevelDebug))
	assert.False(t, GetInternalLogger().Enabled(ctx, slog.LevelWarn))
	assert.True(t, GetInternalLogger().Enabled(ctx, slog.LevelError))

	CloseLogger()
	CloseLogger()
}
