package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/klwxsrx/ticketgate/internal/gate/app/rolecache"
	commonhttp "github.com/klwxsrx/ticketgate/internal/pkg/http"
	pkghttp "github.com/klwxsrx/ticketgate/pkg/http"
)

const DefaultKeyPrefix = "ticketgate"

// RoleCacheProvider shares role caches between gatekeeper replicas. Entries are keyed by the access token hash.
type RoleCacheProvider struct {
	client redis.UniversalClient
	prefix string
}

func NewRoleCacheProvider(client redis.UniversalClient, prefix string) RoleCacheProvider {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}

	return RoleCacheProvider{
		client: client,
		prefix: prefix,
	}
}

func (p RoleCacheProvider) ForRequest(_ http.ResponseWriter, r *http.Request) rolecache.Cache {
	token, err := pkghttp.ParseRequest(r, pkghttp.CookieValue[string](commonhttp.AccessTokenCookieName), nil)
	if err != nil {
		token = ""
	}

	return p.ForToken(token)
}

func (p RoleCacheProvider) ForToken(accessToken string) rolecache.Cache {
	return roleCache{
		client:    p.client,
		namespace: p.namespace(accessToken),
	}
}

func (p RoleCacheProvider) namespace(accessToken string) string {
	if accessToken == "" {
		return ""
	}

	sum := sha256.Sum256([]byte(accessToken))
	return fmt.Sprintf("%s:%s", p.prefix, hex.EncodeToString(sum[:]))
}

type roleCache struct {
	client    redis.UniversalClient
	namespace string
}

func (c roleCache) Get(ctx context.Context, key string) (rolecache.Entry, bool, error) {
	if c.namespace == "" {
		return rolecache.Entry{}, false, nil
	}

	data, err := c.client.Get(ctx, c.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return rolecache.Entry{}, false, nil
	}
	if err != nil {
		return rolecache.Entry{}, false, fmt.Errorf("get %s: %w", key, err)
	}

	var entry rolecache.Entry
	if err = json.Unmarshal(data, &entry); err != nil {
		return rolecache.Entry{}, false, fmt.Errorf("%w: %w", rolecache.ErrMalformedEntry, err)
	}

	return entry, true, nil
}

func (c roleCache) Set(ctx context.Context, key string, entry rolecache.Entry, ttl time.Duration) error {
	if c.namespace == "" {
		return nil
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	err = c.client.Set(ctx, c.key(key), data, ttl).Err()
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}

	return nil
}

func (c roleCache) Delete(ctx context.Context, key string) error {
	if c.namespace == "" {
		return nil
	}

	err := c.client.Del(ctx, c.key(key)).Err()
	if err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}

	return nil
}

func (c roleCache) key(key string) string {
	return c.namespace + ":" + key
}
