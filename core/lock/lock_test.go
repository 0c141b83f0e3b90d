package lock

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	mu     sync.Mutex
	values map[string]string
	setErr error
	sets   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{values: map[string]string{}}
}

func (f *fakeStore) SetNX(ctx context.Context, key string, value any, ttl time.Duration) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sets++
	if f.setErr != nil {
		return false, f.setErr
	}
	if _, exists := f.values[key]; exists {
		return false, nil
	}
	f.values[key] = value.(string)
	return true, nil
}

func (f *fakeStore) Get(ctx context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.values[key]
	if !ok {
		return "", errors.New("redis: nil")
	}
	return v, nil
}

func (f *fakeStore) Del(ctx context.Context, keys ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, k := range keys {
		delete(f.values, k)
	}
	return nil
}

func TestLocalLocker(t *testing.T) {
	locker := NewLocalLocker()

	release, err := locker.Lock(context.Background(), "bom:team:1")
	require.NoError(t, err)

	t.Run("Same Key Blocks Until Context Done", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		_, err := locker.Lock(ctx, "bom:team:1")
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("Other Key Is Independent", func(t *testing.T) {
		other, err := locker.Lock(context.Background(), "bom:team:2")
		require.NoError(t, err)
		other()
	})

	release()
	release() // second call is a no-op

	again, err := locker.Lock(context.Background(), "bom:team:1")
	require.NoError(t, err)
	again()
}

func TestLocalLocker_Serializes(t *testing.T) {
	locker := NewLocalLocker()
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		active  int
		maxSeen int
	)

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := locker.Lock(context.Background(), "bom:team:7")
			if err != nil {
				return
			}
			mu.Lock()
			active++
			if active > maxSeen {
				maxSeen = active
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			active--
			mu.Unlock()
			release()
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, maxSeen)
}

func TestNewRedisLocker_NilClient(t *testing.T) {
	_, err := NewRedisLocker(nil, time.Second)
	assert.Error(t, err)
}

func TestRedisLocker(t *testing.T) {
	store := newFakeStore()
	locker, err := NewRedisLocker(store, time.Minute)
	require.NoError(t, err)
	locker.retryWait = time.Millisecond

	release, err := locker.Lock(context.Background(), "bom:team:1")
	require.NoError(t, err)
	_, held := store.values[keyNamespace+"bom:team:1"]
	assert.True(t, held)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = locker.Lock(ctx, "bom:team:1")
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	release()
	_, held = store.values[keyNamespace+"bom:team:1"]
	assert.False(t, held)
}

func TestRedisLocker_ReleaseKeepsForeignOwner(t *testing.T) {
	store := newFakeStore()
	locker, err := NewRedisLocker(store, time.Minute)
	require.NoError(t, err)

	release, err := locker.Lock(context.Background(), "bom:team:3")
	require.NoError(t, err)

	// TTL expired and another instance took over.
	store.values[keyNamespace+"bom:team:3"] = "someone-else"
	release()

	assert.Equal(t, "someone-else", store.values[keyNamespace+"bom:team:3"])
}

func TestRedisLocker_SetNXError(t *testing.T) {
	store := newFakeStore()
	store.setErr = errors.New("connection refused")
	locker, err := NewRedisLocker(store, 0)
	require.NoError(t, err)
	assert.Equal(t, defaultLockTTL, locker.ttl)

	_, err = locker.Lock(context.Background(), "bom:team:1")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestNew_WithoutAddressIsLocal(t *testing.T) {
	locker, closeFn, err := New(context.Background(), Config{})
	require.NoError(t, err)
	assert.IsType(t, &LocalLocker{}, locker)
	assert.NoError(t, closeFn())
}
