package gate

import (
	"fmt"
	"net/url"

	"github.com/klwxsrx/ticketgate/internal/gate/infra/identity"
	"github.com/klwxsrx/ticketgate/pkg/env"
)

const (
	RoleCacheBackendCookie = "cookie"
	RoleCacheBackendRedis  = "redis"

	environmentProduction = "production"
)

type Config struct {
	UpstreamURL      *url.URL
	RoleCacheBackend string
	RoleCacheSecret  []byte
	RedisKeyPrefix   string
	SecureCookies    bool
	Resolver         identity.Config
}

func ParseConfig() (Config, error) {
	upstream, err := env.Parse[string]("UPSTREAM_URL")
	if err != nil {
		return Config{}, err
	}
	upstreamURL, err := url.Parse(upstream)
	if err == nil && upstreamURL.Host == "" {
		err = fmt.Errorf("host is empty")
	}
	if err != nil {
		return Config{}, fmt.Errorf("parse UPSTREAM_URL: %w", err)
	}

	environment, err := env.ParseWithDefault[string]("ENVIRONMENT", "development")
	if err != nil {
		return Config{}, err
	}

	backend, err := env.ParseWithDefault[string]("ROLE_CACHE_BACKEND", RoleCacheBackendCookie)
	if err != nil {
		return Config{}, err
	}
	if backend != RoleCacheBackendCookie && backend != RoleCacheBackendRedis {
		return Config{}, fmt.Errorf("unknown ROLE_CACHE_BACKEND %q", backend)
	}

	secret, err := env.ParseWithDefault[string]("ROLE_CACHE_SECRET", "")
	if err != nil {
		return Config{}, err
	}
	redisKeyPrefix, err := env.ParseWithDefault[string]("REDIS_KEY_PREFIX", "")
	if err != nil {
		return Config{}, err
	}

	resolver := identity.DefaultConfig()
	if resolver.Timeout, err = env.ParseWithDefault("ROLE_RESOLVER_TIMEOUT", resolver.Timeout); err != nil {
		return Config{}, err
	}
	if resolver.RetryDelay, err = env.ParseWithDefault("ROLE_RESOLVER_RETRY_DELAY", resolver.RetryDelay); err != nil {
		return Config{}, err
	}
	maxRetries, err := env.ParseWithDefault("ROLE_RESOLVER_MAX_RETRIES", uint(resolver.MaxRetries))
	if err != nil {
		return Config{}, err
	}
	resolver.MaxRetries = uint64(maxRetries)

	return Config{
		UpstreamURL:      upstreamURL,
		RoleCacheBackend: backend,
		RoleCacheSecret:  []byte(secret),
		RedisKeyPrefix:   redisKeyPrefix,
		SecureCookies:    environment == environmentProduction,
		Resolver:         resolver,
	}, nil
}
