package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgard/cthulhubot/internal/config"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}

func TestNewLogger_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := newLogger(&buf, "warn", true)

	log.Info("dropped")
	log.Warn("kept", "k", "v")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "v", entry["k"])
}

func TestNewLogger_WithFile(t *testing.T) {
	t.Parallel()

	log := NewLogger(config.LoggerConfig{
		Level: "info",
		File: config.LogFileConfig{
			Path:      filepath.Join(t.TempDir(), "bot.log"),
			MaxSizeMB: 1,
		},
	})
	require.NotNil(t, log)
	log.Info("written to stdout and file")
}

func TestMiddleware_AddsRequestLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	base := newLogger(&buf, "debug", true)

	var got *slog.Logger
	handler := Middleware(base)(func(ctx context.Context, _ *bot.Bot, _ *models.Update) {
		got = FromContext(ctx, nil)
		got.Info("inside handler")
	})

	handler(context.Background(), nil, &models.Update{
		ID: 7,
		Message: &models.Message{
			ID:   11,
			Chat: models.Chat{ID: 42},
			From: &models.User{ID: 99},
			Text: "/roll 50",
		},
	})

	require.NotNil(t, got)
	assert.Contains(t, buf.String(), `"request_id"`)
	assert.Contains(t, buf.String(), `"chat_id":42`)
	assert.Contains(t, buf.String(), `"msg":"inside handler"`)
}

func TestFromContext_Fallback(t *testing.T) {
	t.Parallel()

	fallback := slog.Default()
	assert.Same(t, fallback, FromContext(context.Background(), fallback))
}

func TestTruncateString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short", truncateString("short", 10))
	assert.Equal(t, "abcd...", truncateString("abcdefghij", 7))
	assert.Equal(t, "...", truncateString("abcdef", 2))
}
