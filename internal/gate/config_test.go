package gate_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/ticketgate/internal/gate"
)

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name   string
		env    map[string]string
		expect func(t *testing.T, config gate.Config, err error)
	}{
		{
			name: "defaults",
			env:  map[string]string{"UPSTREAM_URL": "http://app:3000"},
			expect: func(t *testing.T, config gate.Config, err error) {
				require.NoError(t, err)
				assert.Equal(t, "app:3000", config.UpstreamURL.Host)
				assert.Equal(t, gate.RoleCacheBackendCookie, config.RoleCacheBackend)
				assert.False(t, config.SecureCookies)
				assert.Equal(t, 5*time.Second, config.Resolver.Timeout)
				assert.Equal(t, uint64(2), config.Resolver.MaxRetries)
				assert.Equal(t, time.Second, config.Resolver.RetryDelay)
			},
		},
		{
			name: "production with overrides",
			env: map[string]string{
				"UPSTREAM_URL":              "http://app:3000",
				"ENVIRONMENT":               "production",
				"ROLE_CACHE_BACKEND":        "redis",
				"ROLE_RESOLVER_MAX_RETRIES": "4",
				"ROLE_RESOLVER_TIMEOUT":     "2s",
			},
			expect: func(t *testing.T, config gate.Config, err error) {
				require.NoError(t, err)
				assert.True(t, config.SecureCookies)
				assert.Equal(t, gate.RoleCacheBackendRedis, config.RoleCacheBackend)
				assert.Equal(t, uint64(4), config.Resolver.MaxRetries)
				assert.Equal(t, 2*time.Second, config.Resolver.Timeout)
			},
		},
		{
			name: "missing upstream",
			env:  map[string]string{},
			expect: func(t *testing.T, _ gate.Config, err error) {
				assert.Error(t, err)
			},
		},
		{
			name: "unknown backend",
			env: map[string]string{
				"UPSTREAM_URL":       "http://app:3000",
				"ROLE_CACHE_BACKEND": "memcached",
			},
			expect: func(t *testing.T, _ gate.Config, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{
				"UPSTREAM_URL", "ENVIRONMENT", "ROLE_CACHE_BACKEND", "ROLE_CACHE_SECRET", "REDIS_KEY_PREFIX",
				"ROLE_RESOLVER_TIMEOUT", "ROLE_RESOLVER_RETRY_DELAY", "ROLE_RESOLVER_MAX_RETRIES",
			} {
				t.Setenv(key, tt.env[key])
			}

			config, err := gate.ParseConfig()
			tt.expect(t, config, err)
		})
	}
}
