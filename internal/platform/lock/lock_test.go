package lock

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
)

func TestLocal_SerializesSameKey(t *testing.T) {
	t.Parallel()

	l := NewLocal()
	var active atomic.Int32
	var maxActive atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := l.Lock(context.Background(), "k")
			if err != nil {
				t.Errorf("unexpected lock error: %v", err)
				return
			}
			n := active.Add(1)
			if n > maxActive.Load() {
				maxActive.Store(n)
			}
			time.Sleep(time.Millisecond)
			active.Add(-1)
			release()
		}()
	}
	wg.Wait()

	if got := maxActive.Load(); got != 1 {
		t.Fatalf("unexpected concurrent holders: got=%d want=1", got)
	}
	if got := l.size(); got != 0 {
		t.Fatalf("expected idle keys to be dropped, got %d", got)
	}
}

func TestLocal_ContextCancelWhileWaiting(t *testing.T) {
	t.Parallel()

	l := NewLocal()
	release, err := l.Lock(context.Background(), "k")
	if err != nil {
		t.Fatalf("unexpected lock error: %v", err)
	}
	defer release()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if _, err := l.Lock(ctx, "k"); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("unexpected error: got=%v want=%v", err, context.DeadlineExceeded)
	}

	other, err := l.Lock(context.Background(), "other")
	if err != nil {
		t.Fatalf("independent key must not block: %v", err)
	}
	other()
	other()
}

type fakeRedis struct {
	mu       sync.Mutex
	values   map[string]string
	setErr   error
	released []string
}

func (f *fakeRedis) SetNX(_ context.Context, key string, value interface{}, _ time.Duration) *redis.BoolCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setErr != nil {
		return redis.NewBoolResult(false, f.setErr)
	}
	if _, ok := f.values[key]; ok {
		return redis.NewBoolResult(false, nil)
	}
	f.values[key] = value.(string)
	return redis.NewBoolResult(true, nil)
}

func (f *fakeRedis) Eval(_ context.Context, _ string, keys []string, args ...interface{}) *redis.Cmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.values[keys[0]] == args[0].(string) {
		delete(f.values, keys[0])
		f.released = append(f.released, keys[0])
		return redis.NewCmdResult(int64(1), nil)
	}
	return redis.NewCmdResult(int64(0), nil)
}

type fixedIDs struct{ n atomic.Int32 }

func (g *fixedIDs) NewID() (string, error) {
	return "token-" + string(rune('a'+g.n.Add(1))), nil
}

func TestRedis_LockAndRelease(t *testing.T) {
	t.Parallel()

	client := &fakeRedis{values: map[string]string{}}
	l := NewRedis(client, &fixedIDs{}, RedisConfig{Prefix: "ff:", RetryDelay: time.Millisecond})

	release, err := l.Lock(context.Background(), "adp:1:2")
	if err != nil {
		t.Fatalf("unexpected lock error: %v", err)
	}
	if _, ok := client.values["ff:adp:1:2"]; !ok {
		t.Fatalf("expected prefixed key to be set: %+v", client.values)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := l.Lock(ctx, "adp:1:2"); !errors.Is(err, ErrNotAcquired) {
		t.Fatalf("unexpected error for held key: got=%v want=%v", err, ErrNotAcquired)
	}

	release()
	release()
	if len(client.released) != 1 {
		t.Fatalf("unexpected release count: got=%d want=1", len(client.released))
	}

	again, err := l.Lock(context.Background(), "adp:1:2")
	if err != nil {
		t.Fatalf("expected key to be free after release: %v", err)
	}
	again()
}

func TestRedis_SetNXError(t *testing.T) {
	t.Parallel()

	client := &fakeRedis{values: map[string]string{}, setErr: errors.New("connection refused")}
	l := NewRedis(client, &fixedIDs{}, RedisConfig{})
	if _, err := l.Lock(context.Background(), "k"); err == nil {
		t.Fatal("expected setnx error")
	}
}
