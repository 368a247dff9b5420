package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/klwxsrx/ticketgate/internal/session/app/session"
)

var errNoExpiry = errors.New("exp claim is missing")

type expiryDecoder struct {
	parser *jwt.Parser
}

// NewExpiryDecoder reads exp without verifying the signature, the identity backend verifies tokens.
func NewExpiryDecoder() session.ExpiryDecoder {
	return expiryDecoder{parser: jwt.NewParser()}
}

func (d expiryDecoder) Expiry(token string) (time.Time, error) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := d.parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, fmt.Errorf("parse token: %w", err)
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, errNoExpiry
	}

	return claims.ExpiresAt.Time, nil
}
