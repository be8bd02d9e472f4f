package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(format string) (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return NewLogger(&LogConfig{Level: "debug", Format: format, Writer: buf, ServiceName: "canteen-api"}), buf
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	return entry
}

func TestLogger_ContextValues(t *testing.T) {
	log, buf := newBufferLogger("json")
	canteenID := uuid.New()

	ctx := context.WithValue(context.Background(), ContextKeyRequestID, "req-1")
	ctx = context.WithValue(ctx, ContextKeyCanteenID, canteenID)
	ctx = context.WithValue(ctx, ContextKeyStatusCode, 201)

	log.InfoContext(ctx, "inventory item created")

	entry := decodeLine(t, buf)
	assert.Equal(t, "inventory item created", entry["msg"])
	assert.Equal(t, "INFO", entry["severity"])
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, canteenID.String(), entry["canteen_id"])
	assert.EqualValues(t, 201, entry["status_code"])
	assert.Equal(t, "canteen-api", entry["service"])
}

func TestLogger_Sanitization(t *testing.T) {
	tests := []struct {
		name   string
		log    func(l *slog.Logger)
		key    string
		leaked string
	}{
		{
			name:   "secret_key_redacted",
			log:    func(l *slog.Logger) { l.Info("connect", slog.String("db_password", "hunter2")) },
			key:    "db_password",
			leaked: "hunter2",
		},
		{
			name:   "customer_phone_redacted",
			log:    func(l *slog.Logger) { l.Info("order created", slog.String("customer_phone", "9876543210")) },
			key:    "customer_phone",
			leaked: "9876543210",
		},
		{
			name:   "inline_secret_redacted",
			log:    func(l *slog.Logger) { l.Info("dsn", slog.String("dsn", "host=db password=hunter2 user=x")) },
			key:    "dsn",
			leaked: "hunter2",
		},
		{
			name:   "email_in_message_redacted",
			log:    func(l *slog.Logger) { l.Info("feedback from a@b.com", slog.String("note", "ok")) },
			key:    "msg",
			leaked: "a@b.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, buf := newBufferLogger("json")
			tt.log(log.Logger)

			entry := decodeLine(t, buf)
			value, ok := entry[tt.key].(string)
			require.True(t, ok)
			assert.NotContains(t, value, tt.leaked)
			assert.Contains(t, value, redacted)
		})
	}
}

func TestLogger_UUIDsSurviveSanitization(t *testing.T) {
	log, buf := newBufferLogger("json")
	id := "11111111-2222-3333-4444-555555555555"

	log.Info("restocked", slog.String("item_id", id))

	assert.Equal(t, id, decodeLine(t, buf)["item_id"])
}

func TestPrettyTextHandler(t *testing.T) {
	log, buf := newBufferLogger("text")

	log.With(slog.String("component", "database")).Warn("slow query", slog.Duration("duration_ms", 1500*time.Millisecond))

	line := buf.String()
	assert.True(t, strings.HasSuffix(line, "\n"))
	assert.Contains(t, line, "WARN")
	assert.Contains(t, line, "slow query")
	assert.Contains(t, line, "component")
	assert.Contains(t, line, "database")
}

func TestSamplingHandler_KeepsWarnings(t *testing.T) {
	buf := &bytes.Buffer{}
	h := NewSamplingHandler(slog.NewJSONHandler(buf, nil), 0.0001)
	l := slog.New(h)

	for i := 0; i < 20; i++ {
		l.Warn("low stock")
	}
	assert.Equal(t, 20, strings.Count(buf.String(), "low stock"))
}

func TestMultiHandler(t *testing.T) {
	a, b := &bytes.Buffer{}, &bytes.Buffer{}
	l := slog.New(NewMultiHandler(
		slog.NewJSONHandler(a, nil),
		slog.NewJSONHandler(b, &slog.HandlerOptions{Level: slog.LevelError}),
	))

	l.Info("dashboard refreshed")
	l.Error("export failed")

	assert.Contains(t, a.String(), "dashboard refreshed")
	assert.Contains(t, a.String(), "export failed")
	assert.NotContains(t, b.String(), "dashboard refreshed")
	assert.Contains(t, b.String(), "export failed")
}

func TestFromContext(t *testing.T) {
	log, buf := newBufferLogger("json")
	ctx := WithLogger(context.Background(), log)
	ctx = context.WithValue(ctx, ContextKeyTaskType, "inventory:scan_alerts")

	FromContext(ctx).Info("task started")

	assert.Equal(t, "inventory:scan_alerts", decodeLine(t, buf)["task_type"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warning"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("nonsense"))
}
