package lock

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	defaultLockTTL   = 30 * time.Second
	defaultRetryWait = 50 * time.Millisecond
	keyNamespace     = "inventory:lock:"
)

// Locker grants exclusive ownership of a key until the returned release func is called.
type Locker interface {
	Lock(ctx context.Context, key string) (release func(), err error)
}

// LocalLocker serializes holders of the same key inside one process.
type LocalLocker struct {
	mu    sync.Mutex
	slots map[string]chan struct{}
}

// NewLocalLocker returns an empty in-process locker.
func NewLocalLocker() *LocalLocker {
	return &LocalLocker{slots: make(map[string]chan struct{})}
}

func (l *LocalLocker) slot(key string) chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()
	ch, ok := l.slots[key]
	if !ok {
		ch = make(chan struct{}, 1)
		l.slots[key] = ch
	}
	return ch
}

// Lock blocks until key is free or ctx is done.
func (l *LocalLocker) Lock(ctx context.Context, key string) (func(), error) {
	ch := l.slot(key)
	select {
	case ch <- struct{}{}:
		var once sync.Once
		return func() { once.Do(func() { <-ch }) }, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("acquire lock %s: %w", key, ctx.Err())
	}
}

// redisStore defines the operations used by RedisLocker.
type redisStore interface {
	SetNX(ctx context.Context, key string, value any, ttl time.Duration) (bool, error)
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
}

// RedisLocker implements Locker using Redis SETNX + TTL, so BOM runs for one team
// are serialized across every instance of the service.
type RedisLocker struct {
	client    redisStore
	ttl       time.Duration
	retryWait time.Duration
}

// NewRedisLocker constructs a Redis-backed locker.
func NewRedisLocker(client redisStore, ttl time.Duration) (*RedisLocker, error) {
	if client == nil {
		return nil, errors.New("redis client required for lock")
	}
	if ttl <= 0 {
		ttl = defaultLockTTL
	}
	return &RedisLocker{client: client, ttl: ttl, retryWait: defaultRetryWait}, nil
}

// Lock polls SETNX until the key is owned or ctx is done.
func (l *RedisLocker) Lock(ctx context.Context, key string) (func(), error) {
	fullKey := keyNamespace + key
	owner := uuid.NewString()

	for {
		ok, err := l.client.SetNX(ctx, fullKey, owner, l.ttl)
		if err != nil {
			return nil, fmt.Errorf("setnx %s: %w", fullKey, err)
		}
		if ok {
			return func() { l.release(fullKey, owner) }, nil
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("acquire lock %s: %w", key, ctx.Err())
		case <-time.After(l.retryWait):
		}
	}
}

// release frees the key only if the owner value still matches. Errors are dropped:
// the TTL reclaims a lock that could not be deleted.
func (l *RedisLocker) release(key, owner string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	value, err := l.client.Get(ctx, key)
	if err != nil || value != owner {
		return
	}
	_ = l.client.Del(ctx, key)
}

// clientStore adapts *redis.Client to redisStore.
type clientStore struct {
	raw *redis.Client
}

func (s clientStore) SetNX(ctx context.Context, key string, value any, ttl time.Duration) (bool, error) {
	return s.raw.SetNX(ctx, key, value, ttl).Result()
}

func (s clientStore) Get(ctx context.Context, key string) (string, error) {
	return s.raw.Get(ctx, key).Result()
}

func (s clientStore) Del(ctx context.Context, keys ...string) error {
	return s.raw.Del(ctx, keys...).Err()
}

// New returns a Redis locker when an address is configured and a LocalLocker otherwise.
// The returned close func releases the Redis connection pool.
func New(ctx context.Context, cfg Config) (Locker, func() error, error) {
	if cfg.Address == "" {
		return NewLocalLocker(), func() error { return nil }, nil
	}

	raw := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := raw.Ping(ctx).Err(); err != nil {
		_ = raw.Close()
		return nil, nil, fmt.Errorf("ping redis: %w", err)
	}

	locker, err := NewRedisLocker(clientStore{raw: raw}, time.Duration(cfg.LockTTLSeconds)*time.Second)
	if err != nil {
		_ = raw.Close()
		return nil, nil, err
	}
	return locker, raw.Close, nil
}
