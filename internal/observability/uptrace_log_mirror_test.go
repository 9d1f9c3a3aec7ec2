package observability

import (
	"testing"

	"github.com/riskibarqy/fantasy-fitness/internal/platform/logging"
	otellog "go.opentelemetry.io/otel/log"
)

func TestShouldSkipUptraceLog(t *testing.T) {
	tests := []struct {
		name  string
		level logging.Level
		msg   string
		args  []any
		want  bool
	}{
		{name: "health check", level: logging.LevelInfo, msg: "http request", args: []any{"method", "GET", "path", "/healthz"}, want: true},
		{name: "preflight", level: logging.LevelInfo, msg: "http request", args: []any{"method", "OPTIONS", "path", "/v1/entries/1/picks"}, want: true},
		{name: "leaderboard request", level: logging.LevelInfo, msg: "http request", args: []any{"method", "GET", "path", "/v1/tournaments/1/leaderboard"}},
		{name: "failing health check", level: logging.LevelError, msg: "http request", args: []any{"path", "/healthz"}},
		{name: "other event", level: logging.LevelInfo, msg: "analytics pass finished", args: []any{"path", "/healthz"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shouldSkipUptraceLog(tt.level, tt.msg, tt.args); got != tt.want {
				t.Fatalf("unexpected skip: got=%v want=%v", got, tt.want)
			}
		})
	}
}

func TestBuildOTelLogAttributes(t *testing.T) {
	attrs := buildOTelLogAttributes([]any{"competition_id", int64(7), "gender", "men", "payload"})
	if len(attrs) != 3 {
		t.Fatalf("expected 3 attributes, got %d", len(attrs))
	}
	if attrs[0].Key != "competition_id" || attrs[0].Value.AsInt64() != 7 {
		t.Fatalf("unexpected competition_id attribute")
	}
	if attrs[1].Key != "gender" || attrs[1].Value.AsString() != "men" {
		t.Fatalf("unexpected gender attribute")
	}
	if attrs[2].Key != "payload" || attrs[2].Value.Kind() != otellog.KindEmpty {
		t.Fatalf("unexpected payload attribute")
	}
}

func TestToOTelLogValue(t *testing.T) {
	if v := toOTelLogValue(uint16(3), 0); v.Kind() != otellog.KindInt64 || v.AsInt64() != 3 {
		t.Fatalf("unexpected uint value: %v", v)
	}
	if v := toOTelLogValue(float32(1.5), 0); v.Kind() != otellog.KindFloat64 {
		t.Fatalf("unexpected float kind: %s", v.Kind())
	}

	v := toOTelLogValue(map[string]any{
		"success": 3,
		"failed":  []int64{9},
	}, 0)
	if v.Kind() != otellog.KindMap {
		t.Fatalf("expected map value, got %s", v.Kind())
	}
	items := v.AsMap()
	if len(items) != 2 || items[0].Key != "failed" {
		t.Fatalf("unexpected map items: %+v", items)
	}
	if items[0].Value.Kind() != otellog.KindSlice {
		t.Fatalf("expected nested slice, got %s", items[0].Value.Kind())
	}
}
