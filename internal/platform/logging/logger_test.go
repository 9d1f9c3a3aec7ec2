package logging

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_RedactsCredentialKeys(t *testing.T) {
	core, logs := observer.New(LevelDebug)
	logger := FromZap(zap.New(core))

	logger.Info("anubis request", "admin_key", "k-123", "access_token", "abc", "user_id", "u-1")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("unexpected entry count: got=%d want=1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["admin_key"] != redactedValue || fields["access_token"] != redactedValue {
		t.Fatalf("expected credentials to be redacted: %+v", fields)
	}
	if fields["user_id"] != "u-1" {
		t.Fatalf("unexpected user_id: %v", fields["user_id"])
	}
}

func TestLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := New(LevelWarn, &buf)

	logger.Info("skipped")
	logger.Warn("kept", "competition_id", int64(4))

	out := buf.String()
	if strings.Contains(out, "skipped") {
		t.Fatalf("info record should be filtered: %s", out)
	}
	if !strings.Contains(out, `"competition_id":4`) || !strings.Contains(out, `"level":"WARN"`) {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestLogger_MirrorReceivesEnabledRecords(t *testing.T) {
	var (
		mu   sync.Mutex
		msgs []string
	)
	SetMirror(func(_ context.Context, _ Level, msg string, args ...any) {
		mu.Lock()
		defer mu.Unlock()
		msgs = append(msgs, msg)
		if len(args) == 2 && args[1] != redactedValue {
			t.Errorf("mirror received unredacted value: %v", args[1])
		}
	})
	t.Cleanup(func() { SetMirror(nil) })

	var buf bytes.Buffer
	logger := New(LevelInfo, &buf)
	logger.Debug("below level")
	logger.InfoContext(context.Background(), "published", "token", "secret")

	mu.Lock()
	defer mu.Unlock()
	if len(msgs) != 1 || msgs[0] != "published" {
		t.Fatalf("unexpected mirrored messages: %v", msgs)
	}
}

func TestLogger_NilFallsBackToDefault(t *testing.T) {
	var logger *Logger
	logger.Info("no panic")
	if logger.With("k", "v") == nil {
		t.Fatalf("expected non-nil logger from nil receiver")
	}
}
