package rolecache

import (
	"context"
	"errors"
	"time"
)

const (
	Key = "user_roles_cache"
	TTL = 1800 * time.Second
)

var ErrMalformedEntry = errors.New("malformed role cache entry")

type (
	Entry struct {
		Roles     []string `json:"roles"`
		Timestamp int64    `json:"timestamp"`
	}

	// Cache stores resolved roles for a single client. A missing entry is reported with ok=false.
	// Implementations return ErrMalformedEntry for entries that cannot be decoded.
	Cache interface {
		Get(ctx context.Context, key string) (entry Entry, ok bool, err error)
		Set(ctx context.Context, key string, entry Entry, ttl time.Duration) error
		Delete(ctx context.Context, key string) error
	}
)

func NewEntry(roles []string, now time.Time) Entry {
	return Entry{
		Roles:     roles,
		Timestamp: now.Unix(),
	}
}

// IsFresh reports whether the entry is younger than TTL at now.
func (e Entry) IsFresh(now time.Time) bool {
	return now.Unix()-e.Timestamp < int64(TTL/time.Second)
}
