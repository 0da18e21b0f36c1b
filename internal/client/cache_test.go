package client_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/limbo/tenminute/internal/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	assert.Equal(t, `["/api/daily","2024-05-01"]`, client.Key("/api/daily", "2024-05-01"))
	assert.Equal(t, `[]`, client.Key())
	assert.NotEqual(t, client.Key("/api/daily", "a"), client.Key("/api/daily,a"))
}

func TestCacheInvalidatePrefix(t *testing.T) {
	cache := client.NewCache()
	cache.Set(1, "/api/daily", "2024-05-01")
	cache.Set(2, "/api/daily", "2024-05-02")
	cache.Set(3, "/api/daily-all")
	cache.Set(4, "/api/daily-week", "2024-05-06", "2024-05-12")
	cache.Set(5, "/api/tasks")

	assert.Equal(t, 1, cache.Invalidate("/api/daily", "2024-05-01"))
	_, _, ok := cache.Get("/api/daily", "2024-05-02")
	assert.True(t, ok)

	assert.Equal(t, 1, cache.Invalidate("/api/daily"))
	_, _, ok = cache.Get("/api/daily-all")
	assert.True(t, ok, "sibling key with a longer first part survives")

	assert.Equal(t, 1, cache.Invalidate("/api/daily-week"))
	assert.Equal(t, 0, cache.Invalidate("/api/nothing"))
	assert.Equal(t, 2, cache.Invalidate())
	assert.Equal(t, 0, cache.Len())
}

func TestCacheFetchDeduplicates(t *testing.T) {
	cache := client.NewCache()
	var calls atomic.Int32
	release := make(chan struct{})
	fetch := func(context.Context) (any, error) {
		calls.Add(1)
		<-release
		return "value", nil
	}

	var wg sync.WaitGroup
	results := make([]any, 5)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := cache.Fetch(context.Background(), []string{"/api/tasks-all"}, fetch)
			assert.NoError(t, err)
			results[i] = v
		}()
	}
	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, v := range results {
		assert.Equal(t, "value", v)
	}
	v, fetchedAt, ok := cache.Get("/api/tasks-all")
	assert.True(t, ok)
	assert.Equal(t, "value", v)
	assert.False(t, fetchedAt.IsZero())

	_, err := cache.Fetch(context.Background(), []string{"/api/tasks-all"}, func(context.Context) (any, error) {
		t.Fatal("cached key fetched again")
		return nil, nil
	})
	assert.NoError(t, err)
}

func TestCacheFetchErrorNotCached(t *testing.T) {
	cache := client.NewCache()
	_, err := cache.Fetch(context.Background(), []string{"k"}, func(context.Context) (any, error) {
		return nil, errors.New("down")
	})
	assert.Error(t, err)
	assert.Equal(t, 0, cache.Len())
}

func TestCacheInvalidateDuringFetch(t *testing.T) {
	cache := client.NewCache()
	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		v, err := cache.Fetch(context.Background(), []string{"/api/daily-all"}, func(context.Context) (any, error) {
			close(started)
			<-release
			return "stale", nil
		})
		assert.NoError(t, err)
		assert.Equal(t, "stale", v)
	}()
	<-started
	cache.Invalidate("/api/daily-all")
	close(release)
	<-done

	_, _, ok := cache.Get("/api/daily-all")
	assert.False(t, ok, "result of a fetch that raced an invalidation is not stored")
}

func TestCacheFetchContextCancelled(t *testing.T) {
	cache := client.NewCache()
	ctx, cancel := context.WithCancel(context.Background())
	release := make(chan struct{})
	defer close(release)
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	_, err := cache.Fetch(ctx, []string{"slow"}, func(context.Context) (any, error) {
		<-release
		return "late", nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}
