package rolecache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/ticketgate/internal/gate/app/rolecache"
	pkgtime "github.com/klwxsrx/ticketgate/pkg/time"
)

func TestEntry_IsFresh(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)

	tests := []struct {
		name  string
		age   time.Duration
		fresh bool
	}{
		{name: "just written", age: 0, fresh: true},
		{name: "one second before expiry", age: rolecache.TTL - time.Second, fresh: true},
		{name: "exactly at ttl", age: rolecache.TTL, fresh: false},
		{name: "older than ttl", age: rolecache.TTL + time.Hour, fresh: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := rolecache.NewEntry([]string{"ADMIN"}, now.Add(-tt.age))
			assert.Equal(t, tt.fresh, entry.IsFresh(now))
		})
	}
}

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	clock := pkgtime.NewAdjustableClock(time.Unix(1_700_000_000, 0))
	cache := rolecache.NewMemoryCache(clock)

	_, ok, err := cache.Get(ctx, rolecache.Key)
	require.NoError(t, err)
	assert.False(t, ok)

	entry := rolecache.NewEntry([]string{"EVENT_TEAM"}, clock.Now())
	require.NoError(t, cache.Set(ctx, rolecache.Key, entry, rolecache.TTL))

	got, ok, err := cache.Get(ctx, rolecache.Key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, entry, got)

	clock.Add(rolecache.TTL)
	_, ok, err = cache.Get(ctx, rolecache.Key)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, rolecache.Key, entry, rolecache.TTL))
	require.NoError(t, cache.Delete(ctx, rolecache.Key))
	_, ok, err = cache.Get(ctx, rolecache.Key)
	require.NoError(t, err)
	assert.False(t, ok)
}
