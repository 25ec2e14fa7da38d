package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name  string
		level string
	}{
		{name: "debug", level: "debug"},
		{name: "case-insensitive", level: "WARN"},
		{name: "invalid level falls back to info", level: "chatty"},
		{name: "empty level falls back to info", level: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			log, err := Setup(Config{Level: tc.level})
			require.NoError(t, err)
			assert.NotNil(t, log)
			assert.Same(t, log, slog.Default())
		})
	}
}

func TestContextLogger(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		log := slog.Default().With("trace_id", "abc123")
		ctx := WithLogger(context.Background(), log)
		assert.Same(t, log, FromContext(ctx))
	})

	t.Run("falls back to the default logger", func(t *testing.T) {
		t.Parallel()
		assert.Same(t, slog.Default(), FromContext(context.Background()))
	})
}
