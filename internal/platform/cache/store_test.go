package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

var errUnexpectedValue = errors.New("unexpected cached value")

func TestStore_GetOrLoad_SharesConcurrentLoads(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "standings", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "standings:42:1", loader)
			if err != nil {
				errCh <- err
				return
			}
			if got, _ := v.(string); got != "standings" {
				errCh <- errUnexpectedValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_DoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	boom := errors.New("boom")
	var calls atomic.Int32

	_, err := store.GetOrLoad(context.Background(), "k", func(context.Context) (any, error) {
		calls.Add(1)
		return nil, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("unexpected error: got=%v want=%v", err, boom)
	}

	v, err := store.GetOrLoad(context.Background(), "k", func(context.Context) (any, error) {
		calls.Add(1)
		return 7, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.(int) != 7 || calls.Load() != 2 {
		t.Fatalf("unexpected reload: value=%v calls=%d", v, calls.Load())
	}
}

func TestStore_ExpiresEntries(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store := NewStore(time.Minute)
	store.now = func() time.Time { return now }

	store.Set(context.Background(), "k", "v")
	if _, ok := store.Get(context.Background(), "k"); !ok {
		t.Fatalf("expected fresh entry")
	}

	now = now.Add(2 * time.Minute)
	if _, ok := store.Get(context.Background(), "k"); ok {
		t.Fatalf("expected expired entry to be dropped")
	}
	if store.Len() != 0 {
		t.Fatalf("unexpected size after expiry: %d", store.Len())
	}
}

func TestStore_DeletePrefix(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(0)
	store.Set(ctx, "standings:42:1", 1)
	store.Set(ctx, "standings:42:2", 2)
	store.Set(ctx, "standings:43:1", 3)

	if removed := store.DeletePrefix(ctx, "standings:42:"); removed != 2 {
		t.Fatalf("unexpected removed count: got=%d want=2", removed)
	}
	if _, ok := store.Get(ctx, "standings:43:1"); !ok {
		t.Fatalf("expected other competition to survive")
	}
	if removed := store.DeletePrefix(ctx, ""); removed != 0 {
		t.Fatalf("empty prefix must not delete: %d", removed)
	}
}

func TestStore_GetOrLoad_CallerCancellation(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	release := make(chan struct{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.GetOrLoad(ctx, "slow", func(context.Context) (any, error) {
		<-release
		return "late", nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("unexpected error: got=%v want=%v", err, context.Canceled)
	}
	close(release)
}

func TestStore_GetOrLoad_NilLoader(t *testing.T) {
	t.Parallel()

	if _, err := NewStore(0).GetOrLoad(context.Background(), "k", nil); !errors.Is(err, ErrNilLoader) {
		t.Fatalf("unexpected error: got=%v want=%v", err, ErrNilLoader)
	}
}
