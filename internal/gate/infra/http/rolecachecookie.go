package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/klwxsrx/ticketgate/internal/gate/app/rolecache"
	pkghttp "github.com/klwxsrx/ticketgate/pkg/http"
)

var errUnsupportedKey = errors.New("unsupported role cache key")

type RoleCacheProvider interface {
	ForRequest(w http.ResponseWriter, r *http.Request) rolecache.Cache
}

type roleCacheClaims struct {
	Roles     []string `json:"roles"`
	Timestamp int64    `json:"timestamp"`
	jwt.RegisteredClaims
}

// CookieRoleCacheProvider keeps the role cache in the client cookie, HS256-signed so clients cannot grant themselves roles.
type CookieRoleCacheProvider struct {
	secret []byte
	secure bool
}

func NewCookieRoleCacheProvider(secret []byte, secure bool) CookieRoleCacheProvider {
	return CookieRoleCacheProvider{
		secret: secret,
		secure: secure,
	}
}

func (p CookieRoleCacheProvider) ForRequest(w http.ResponseWriter, r *http.Request) rolecache.Cache {
	return cookieRoleCache{
		w:        w,
		r:        r,
		provider: p,
	}
}

func (p CookieRoleCacheProvider) encode(entry rolecache.Entry) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, roleCacheClaims{
		Roles:     entry.Roles,
		Timestamp: entry.Timestamp,
	})

	return token.SignedString(p.secret)
}

func (p CookieRoleCacheProvider) decode(value string) (rolecache.Entry, error) {
	var claims roleCacheClaims
	_, err := jwt.ParseWithClaims(value, &claims, func(*jwt.Token) (any, error) {
		return p.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return rolecache.Entry{}, fmt.Errorf("%w: %w", rolecache.ErrMalformedEntry, err)
	}

	return rolecache.Entry{
		Roles:     claims.Roles,
		Timestamp: claims.Timestamp,
	}, nil
}

type cookieRoleCache struct {
	w        http.ResponseWriter
	r        *http.Request
	provider CookieRoleCacheProvider
}

func (c cookieRoleCache) Get(_ context.Context, key string) (rolecache.Entry, bool, error) {
	value, err := pkghttp.ParseRequest(c.r, pkghttp.CookieValue[string](key), nil)
	if err != nil {
		return rolecache.Entry{}, false, nil
	}

	entry, err := c.provider.decode(value)
	if err != nil {
		return rolecache.Entry{}, false, err
	}

	return entry, true, nil
}

func (c cookieRoleCache) Set(_ context.Context, key string, entry rolecache.Entry, ttl time.Duration) error {
	if key != rolecache.Key {
		return fmt.Errorf("%w: %s", errUnsupportedKey, key)
	}

	value, err := c.provider.encode(entry)
	if err != nil {
		return fmt.Errorf("sign role cache: %w", err)
	}

	http.SetCookie(c.w, c.cookie(key, value, int(ttl/time.Second)))
	return nil
}

func (c cookieRoleCache) Delete(_ context.Context, key string) error {
	if _, err := c.r.Cookie(key); err != nil {
		return nil
	}

	http.SetCookie(c.w, c.cookie(key, "", -1))
	return nil
}

func (c cookieRoleCache) cookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   c.provider.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
