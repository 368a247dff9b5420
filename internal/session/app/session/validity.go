package session

import (
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	pkgtime "github.com/klwxsrx/ticketgate/pkg/time"
)

const (
	DefaultValidityTTL  = 60 * time.Second
	DefaultValiditySize = 128
)

type validityResult struct {
	err       error
	checkedAt time.Time
}

// ValidityCache memoizes token expiry checks. It is advisory: a cached result may lag the real expiry by up to ttl.
type ValidityCache struct {
	decoder ExpiryDecoder
	clock   pkgtime.Clock
	ttl     time.Duration
	results *lru.Cache[string, validityResult]
}

func NewValidityCache(decoder ExpiryDecoder, clock pkgtime.Clock, ttl time.Duration, size int) (*ValidityCache, error) {
	results, err := lru.New[string, validityResult](size)
	if err != nil {
		return nil, fmt.Errorf("create validity cache: %w", err)
	}

	return &ValidityCache{
		decoder: decoder,
		clock:   clock,
		ttl:     ttl,
		results: results,
	}, nil
}

func (c *ValidityCache) IsValid(token string) bool {
	return c.Validate(token) == nil
}

// Validate returns ErrTokenDecode or ErrTokenExpired for unusable tokens.
func (c *ValidityCache) Validate(token string) error {
	now := c.clock.Now()
	if result, ok := c.results.Get(token); ok && now.Sub(result.checkedAt) < c.ttl {
		return result.err
	}

	err := c.check(token, now)
	c.results.Add(token, validityResult{
		err:       err,
		checkedAt: now,
	})

	return err
}

// Purge forgets every checked token.
func (c *ValidityCache) Purge() {
	c.results.Purge()
}

func (c *ValidityCache) check(token string, now time.Time) error {
	if token == "" {
		return ErrTokenDecode
	}

	expiry, err := c.decoder.Expiry(token)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTokenDecode, err)
	}
	if !now.Before(expiry) {
		return ErrTokenExpired
	}

	return nil
}
