package logger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// captureLogs подменяет глобальный логгер на текстовый в буфер
func captureLogs(t *testing.T, level slog.Level) *bytes.Buffer {
	t.Helper()
	prev := log
	buf := &bytes.Buffer{}
	log = slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: level}))
	t.Cleanup(func() { log = prev })
	return buf
}

func TestFromContext(t *testing.T) {
	buf := captureLogs(t, slog.LevelDebug)

	ctx := WithUserID(WithRequestID(context.Background(), "req-1"), "user-1")
	CtxInfo(ctx, "hello")

	out := buf.String()
	assert.Contains(t, out, "request_id=req-1")
	assert.Contains(t, out, "user_id=user-1")
	assert.Equal(t, "req-1", GetRequestID(ctx))
	assert.Equal(t, "user-1", GetUserID(ctx))
}

func TestCtxWithError(t *testing.T) {
	buf := captureLogs(t, slog.LevelDebug)

	CtxWithError(context.Background(), "failed", errors.New("boom"), "path", "/x")
	assert.Contains(t, buf.String(), "error=boom")
	assert.Contains(t, buf.String(), "path=/x")
}

func TestInit_Production(t *testing.T) {
	prev := log
	prevDefault := slog.Default()
	t.Cleanup(func() {
		log = prev
		slog.SetDefault(prevDefault)
	})

	Init("production")
	require.NotNil(t, log)
	assert.True(t, log.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, log.Enabled(context.Background(), slog.LevelDebug))
}

func TestGormLogger_Trace(t *testing.T) {
	buf := captureLogs(t, slog.LevelDebug)
	l := NewGormLogger(50 * time.Millisecond)
	sql := func() (string, int64) { return "SELECT 1", 1 }

	t.Run("record not found is silent", func(t *testing.T) {
		buf.Reset()
		l.Trace(context.Background(), time.Now(), sql, gorm.ErrRecordNotFound)
		assert.Empty(t, buf.String())
	})

	t.Run("error", func(t *testing.T) {
		buf.Reset()
		l.Trace(context.Background(), time.Now(), sql, errors.New("syntax error"))
		assert.Contains(t, buf.String(), "syntax error")
	})

	t.Run("slow query", func(t *testing.T) {
		buf.Reset()
		l.Trace(context.Background(), time.Now().Add(-time.Second), sql, nil)
		assert.Contains(t, buf.String(), "level=WARN")
	})

	t.Run("silent mode", func(t *testing.T) {
		buf.Reset()
		l.LogMode(gormlogger.Silent).Trace(context.Background(), time.Now(), sql, errors.New("boom"))
		assert.Empty(t, buf.String())
	})
}
