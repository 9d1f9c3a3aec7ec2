package notify

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/fantasy-fitness/internal/platform/logging"
	"github.com/riskibarqy/fantasy-fitness/internal/platform/resilience"
	"github.com/riskibarqy/fantasy-fitness/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNtfySender_SendPostsJSONMessage(t *testing.T) {
	t.Parallel()

	var (
		gotAuth string
		gotBody ntfyMessage
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		raw, _ := io.ReadAll(r.Body)
		_ = sonic.Unmarshal(raw, &gotBody)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)

	sender := NewNtfySender(NtfyConfig{BaseURL: server.URL, Token: "tk"}, logging.NewNop())
	err := sender.Send(context.Background(), usecase.Notification{
		Topic:    "leaderboard",
		Title:    "Standings updated",
		Message:  "Event 3 results are in",
		Tags:     []string{"trophy"},
		Priority: 9,
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer tk", gotAuth)
	assert.Equal(t, "leaderboard", gotBody.Topic)
	assert.Equal(t, "Event 3 results are in", gotBody.Message)
	assert.Equal(t, []string{"trophy"}, gotBody.Tags)
	assert.Equal(t, 5, gotBody.Priority)
}

func TestNtfySender_ServerErrorsTripBreaker(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)

	sender := NewNtfySender(NtfyConfig{
		BaseURL: server.URL,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 1,
			OpenTimeout:      time.Minute,
			HalfOpenMaxReq:   1,
		},
	}, logging.NewNop())

	err := sender.Send(context.Background(), usecase.Notification{Topic: "t", Message: "m"})
	require.Error(t, err)
	assert.True(t, crerr.Is(err, ErrTransient))

	err = sender.Send(context.Background(), usecase.Notification{Topic: "t", Message: "m"})
	assert.True(t, errors.Is(err, resilience.ErrCircuitOpen))
	assert.Equal(t, int32(1), calls.Load())
}

func TestNtfySender_ClientErrorIsPermanent(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "topic not allowed", http.StatusForbidden)
	}))
	t.Cleanup(server.Close)

	sender := NewNtfySender(NtfyConfig{BaseURL: server.URL}, logging.NewNop())
	err := sender.Send(context.Background(), usecase.Notification{Topic: "t", Message: "m"})
	require.Error(t, err)
	assert.False(t, crerr.Is(err, ErrTransient))
	assert.Contains(t, err.Error(), "status=403")
}

func TestNtfySender_NotConfigured(t *testing.T) {
	t.Parallel()

	sender := NewNtfySender(NtfyConfig{}, nil)
	err := sender.Send(context.Background(), usecase.Notification{Topic: "t", Message: "m"})
	assert.ErrorIs(t, err, ErrNotEnabled)
}
