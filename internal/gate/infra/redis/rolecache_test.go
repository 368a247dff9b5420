package redis_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/ticketgate/internal/gate/app/rolecache"
	"github.com/klwxsrx/ticketgate/internal/gate/infra/redis"
)

func newProvider(t *testing.T) (*miniredis.Miniredis, redis.RoleCacheProvider) {
	server := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return server, redis.NewRoleCacheProvider(client, "test")
}

func TestRoleCache_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	server, provider := newProvider(t)
	cache := provider.ForToken("token-a")

	_, ok, err := cache.Get(ctx, rolecache.Key)
	require.NoError(t, err)
	assert.False(t, ok)

	entry := rolecache.Entry{Roles: []string{"ADMIN"}, Timestamp: 1_700_000_000}
	require.NoError(t, cache.Set(ctx, rolecache.Key, entry, rolecache.TTL))

	got, ok, err := cache.Get(ctx, rolecache.Key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, entry, got)

	_, ok, err = provider.ForToken("token-b").Get(ctx, rolecache.Key)
	require.NoError(t, err)
	assert.False(t, ok, "entries are isolated per token")

	server.FastForward(rolecache.TTL + time.Second)
	_, ok, err = cache.Get(ctx, rolecache.Key)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, rolecache.Key, entry, rolecache.TTL))
	require.NoError(t, cache.Delete(ctx, rolecache.Key))
	_, ok, err = cache.Get(ctx, rolecache.Key)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRoleCache_MalformedEntry(t *testing.T) {
	ctx := context.Background()
	server, provider := newProvider(t)
	cache := provider.ForToken("token-a")

	require.NoError(t, cache.Set(ctx, rolecache.Key, rolecache.Entry{}, time.Minute))
	for _, key := range server.Keys() {
		require.NoError(t, server.Set(key, "{not json"))
	}

	_, ok, err := cache.Get(ctx, rolecache.Key)
	assert.False(t, ok)
	assert.ErrorIs(t, err, rolecache.ErrMalformedEntry)
}

func TestRoleCache_UnavailableServer(t *testing.T) {
	server, provider := newProvider(t)
	server.Close()

	_, _, err := provider.ForToken("token-a").Get(context.Background(), rolecache.Key)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, rolecache.ErrMalformedEntry)
}

func TestRoleCacheProvider_ForRequest(t *testing.T) {
	ctx := context.Background()
	_, provider := newProvider(t)

	entry := rolecache.Entry{Roles: []string{"EVENT_TEAM"}, Timestamp: 1}
	require.NoError(t, provider.ForToken("token-a").Set(ctx, rolecache.Key, entry, time.Minute))

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: "token-a"})
	got, ok, err := provider.ForRequest(httptest.NewRecorder(), req).Get(ctx, rolecache.Key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, entry, got)

	anonymous := provider.ForRequest(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	_, ok, err = anonymous.Get(ctx, rolecache.Key)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, anonymous.Delete(ctx, rolecache.Key))
}
