package jobqueue

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/fantasy-fitness/internal/platform/logging"
	"github.com/riskibarqy/fantasy-fitness/internal/platform/resilience"
	"github.com/riskibarqy/fantasy-fitness/internal/usecase"
)

type capturedRequest struct {
	path    string
	headers http.Header
	body    []byte
}

func newCapturingServer(t *testing.T, status int) (*httptest.Server, func() []capturedRequest) {
	t.Helper()

	var (
		mu       sync.Mutex
		captured []capturedRequest
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		captured = append(captured, capturedRequest{path: r.URL.Path, headers: r.Header.Clone(), body: body})
		mu.Unlock()
		w.WriteHeader(status)
	}))
	t.Cleanup(server.Close)

	return server, func() []capturedRequest {
		mu.Lock()
		defer mu.Unlock()
		return append([]capturedRequest(nil), captured...)
	}
}

func newTestPublisher(baseURL string, breaker resilience.CircuitBreakerConfig) *QStashPublisher {
	return NewQStashPublisher(QStashPublisherConfig{
		BaseURL:          baseURL,
		Token:            "secret",
		TargetBaseURL:    "https://api.example.com",
		Retries:          3,
		InternalJobToken: "job-token",
		AnalyticsDelay:   5 * time.Second,
		CircuitBreaker:   breaker,
	}, logging.NewNop())
}

func TestQStashPublisher_NotifyPublishesToNotifyEndpoint(t *testing.T) {
	t.Parallel()

	server, requests := newCapturingServer(t, http.StatusCreated)
	publisher := newTestPublisher(server.URL, resilience.CircuitBreakerConfig{})

	err := publisher.Notify(context.Background(), usecase.Notification{Topic: "scores", Message: "Event 2 is final"})
	if err != nil {
		t.Fatalf("Notify error: %v", err)
	}

	got := requests()
	if len(got) != 1 {
		t.Fatalf("unexpected request count: got=%d want=1", len(got))
	}
	wantPath := "/v2/publish/https://api.example.com" + NotifyJobPath
	if got[0].path != wantPath {
		t.Fatalf("unexpected publish path: got=%s want=%s", got[0].path, wantPath)
	}
	if got[0].headers.Get("Authorization") != "Bearer secret" {
		t.Fatalf("unexpected authorization header: %q", got[0].headers.Get("Authorization"))
	}
	if got[0].headers.Get("Upstash-Retries") != "3" {
		t.Fatalf("unexpected retries header: %q", got[0].headers.Get("Upstash-Retries"))
	}
	if got[0].headers.Get("Upstash-Forward-X-Internal-Job-Token") != "job-token" {
		t.Fatalf("internal job token was not forwarded")
	}
	if got[0].headers.Get("Upstash-Delay") != "" {
		t.Fatalf("notify should not be delayed, got %q", got[0].headers.Get("Upstash-Delay"))
	}

	var payload usecase.Notification
	if err := sonic.Unmarshal(got[0].body, &payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if payload.Topic != "scores" || payload.Message != "Event 2 is final" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestQStashPublisher_ScheduleAnalyticsDeduplicatesWithinWindow(t *testing.T) {
	t.Parallel()

	server, requests := newCapturingServer(t, http.StatusOK)
	publisher := newTestPublisher(server.URL, resilience.CircuitBreakerConfig{})
	publisher.now = func() time.Time { return time.Unix(1_700_000_010, 0) }

	if err := publisher.ScheduleAnalytics(context.Background(), usecase.AnalyticsRunInput{CompetitionIDs: []int64{9, 3}}); err != nil {
		t.Fatalf("first ScheduleAnalytics error: %v", err)
	}
	publisher.now = func() time.Time { return time.Unix(1_700_000_015, 0) }
	if err := publisher.ScheduleAnalytics(context.Background(), usecase.AnalyticsRunInput{CompetitionIDs: []int64{3, 9}}); err != nil {
		t.Fatalf("second ScheduleAnalytics error: %v", err)
	}

	got := requests()
	if len(got) != 2 {
		t.Fatalf("unexpected request count: got=%d want=2", len(got))
	}
	first := got[0].headers.Get("Upstash-Deduplication-Id")
	second := got[1].headers.Get("Upstash-Deduplication-Id")
	if first == "" || first != second {
		t.Fatalf("expected identical dedup ids, got=%q and %q", first, second)
	}
	if !strings.HasPrefix(first, "analytics-3-9-") {
		t.Fatalf("unexpected dedup id: %q", first)
	}
	if got[0].headers.Get("Upstash-Delay") != "5s" {
		t.Fatalf("unexpected delay header: %q", got[0].headers.Get("Upstash-Delay"))
	}
	if !strings.HasSuffix(got[0].path, AnalyticsJobPath) {
		t.Fatalf("unexpected publish path: %s", got[0].path)
	}
}

func TestQStashPublisher_BreakerOpensOnTransientFailures(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(server.Close)

	publisher := newTestPublisher(server.URL, resilience.CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 2,
		OpenTimeout:      time.Minute,
		HalfOpenMaxReq:   1,
	})

	for i := 0; i < 2; i++ {
		err := publisher.Notify(context.Background(), usecase.Notification{Topic: "t", Message: "m"})
		if !crerr.Is(err, ErrTransient) {
			t.Fatalf("attempt %d: expected transient error, got %v", i, err)
		}
	}

	err := publisher.Notify(context.Background(), usecase.Notification{Topic: "t", Message: "m"})
	if !errors.Is(err, resilience.ErrCircuitOpen) {
		t.Fatalf("expected open circuit, got %v", err)
	}
	if calls.Load() != 2 {
		t.Fatalf("unexpected upstream calls: got=%d want=2", calls.Load())
	}
}

func TestQStashPublisher_ClientErrorsDoNotTripBreaker(t *testing.T) {
	t.Parallel()

	server, _ := newCapturingServer(t, http.StatusBadRequest)
	publisher := newTestPublisher(server.URL, resilience.CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 1,
		OpenTimeout:      time.Minute,
		HalfOpenMaxReq:   1,
	})

	for i := 0; i < 3; i++ {
		err := publisher.Notify(context.Background(), usecase.Notification{Topic: "t", Message: "m"})
		if err == nil || crerr.Is(err, ErrTransient) || errors.Is(err, resilience.ErrCircuitOpen) {
			t.Fatalf("attempt %d: expected permanent error, got %v", i, err)
		}
	}
}

func TestQStashPublisher_Validation(t *testing.T) {
	t.Parallel()

	disabled := NewQStashPublisher(QStashPublisherConfig{BaseURL: "https://qstash.example.com"}, nil)
	if err := disabled.Notify(context.Background(), usecase.Notification{}); !errors.Is(err, ErrNotEnabled) {
		t.Fatalf("expected ErrNotEnabled, got %v", err)
	}

	badTarget := NewQStashPublisher(QStashPublisherConfig{
		BaseURL:       "https://qstash.example.com",
		Token:         "secret",
		TargetBaseURL: "ftp://api.example.com",
	}, nil)
	if err := badTarget.Enqueue(context.Background(), NotifyJobPath, nil, 0, ""); err == nil {
		t.Fatalf("expected invalid target error")
	}

	if err := badTarget.Enqueue(context.Background(), "  ", nil, 0, ""); err == nil {
		t.Fatalf("expected empty path error")
	}
}

func TestNormalizeDelay(t *testing.T) {
	t.Parallel()

	tests := map[time.Duration]string{
		0:                       "0s",
		-time.Second:            "0s",
		1400 * time.Millisecond: "1s",
		90 * time.Second:        "90s",
	}
	for in, want := range tests {
		if got := normalizeDelay(in); got != want {
			t.Fatalf("normalizeDelay(%s): got=%s want=%s", in, got, want)
		}
	}
}
