package lock

import (
	"context"
	"sync"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/go-redis/redis/v8"
	"github.com/riskibarqy/fantasy-fitness/internal/platform/id"
)

var ErrNotAcquired = crerr.New("lock not acquired")

// releaseScript deletes the key only while it still holds our token.
const releaseScript = `if redis.call("get", KEYS[1]) == ARGV[1] then return redis.call("del", KEYS[1]) else return 0 end`

// Client is the subset of go-redis used by Redis.
type Client interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

type RedisConfig struct {
	Prefix     string
	TTL        time.Duration
	RetryDelay time.Duration
}

// Redis is a single-instance SET NX lock. Holders that outlive TTL lose the
// key, so TTL must exceed the slowest guarded write.
type Redis struct {
	client     Client
	ids        id.Generator
	prefix     string
	ttl        time.Duration
	retryDelay time.Duration
}

func NewRedis(client Client, ids id.Generator, cfg RedisConfig) *Redis {
	if ids == nil {
		ids = id.NewRandomGenerator()
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 30 * time.Second
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = 50 * time.Millisecond
	}
	return &Redis{
		client:     client,
		ids:        ids,
		prefix:     cfg.Prefix,
		ttl:        cfg.TTL,
		retryDelay: cfg.RetryDelay,
	}
}

// Lock polls SET NX until it wins the key or ctx is done.
func (r *Redis) Lock(ctx context.Context, key string) (func(), error) {
	if r == nil || r.client == nil {
		return nil, crerr.New("redis lock is not configured")
	}

	token, err := r.ids.NewID()
	if err != nil {
		return nil, crerr.Wrap(err, "generate lock token")
	}
	fullKey := r.prefix + key

	timer := time.NewTimer(0)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil, crerr.Wrapf(ErrNotAcquired, "key=%s: %v", fullKey, ctx.Err())
		case <-timer.C:
		}

		ok, err := r.client.SetNX(ctx, fullKey, token, r.ttl).Result()
		if err != nil {
			return nil, crerr.Wrapf(err, "redis setnx key=%s", fullKey)
		}
		if ok {
			return r.releaser(fullKey, token), nil
		}
		timer.Reset(r.retryDelay)
	}
}

func (r *Redis) releaser(key, token string) func() {
	var once sync.Once
	return func() {
		once.Do(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			// A failed release expires with the TTL.
			_ = r.client.Eval(ctx, releaseScript, []string{key}, token).Err()
		})
	}
}
