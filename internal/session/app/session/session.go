//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Storage=Storage,TokenRefresher=TokenRefresher,Navigator=Navigator,ExpiryDecoder=ExpiryDecoder"
package session

import (
	"context"
	"errors"
	"time"
)

const (
	StorageKeyUser   = "user"
	StorageKeyTokens = "tokens"

	LandingRoute = "/"
)

const (
	AuthTypeEmail  AuthType = "email"
	AuthTypeWallet AuthType = "wallet"
)

const (
	StateLoggedOut State = iota
	StateAuthenticated
)

var (
	ErrTokenExpired  = errors.New("token expired")
	ErrTokenDecode   = errors.New("failed to decode token")
	ErrRefreshFailed = errors.New("failed to refresh access token")
)

type (
	AuthType string

	State int

	User struct {
		ID            string   `json:"id"`
		Email         string   `json:"email,omitempty"`
		WalletAddress string   `json:"walletAddress,omitempty"`
		Name          string   `json:"name,omitempty"`
		AuthType      AuthType `json:"authType"`
	}

	Tokens struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	}

	Session struct {
		User   User
		Tokens Tokens
	}
)

type (
	// Storage is durable client storage surviving restarts of the client.
	Storage interface {
		Get(key string) (value []byte, ok bool, err error)
		Set(key string, value []byte) error
		Remove(key string) error
	}

	TokenRefresher interface {
		Refresh(ctx context.Context, refreshToken string) (accessToken string, err error)
	}

	Navigator interface {
		Navigate(url string)
	}

	ExpiryDecoder interface {
		Expiry(token string) (time.Time, error)
	}
)

func (s State) String() string {
	switch s {
	case StateLoggedOut:
		return "logged_out"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}
