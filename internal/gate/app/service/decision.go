package service

import (
	"errors"

	"github.com/klwxsrx/ticketgate/internal/gate/app/rolecache"
	pkgauth "github.com/klwxsrx/ticketgate/pkg/auth"
)

var (
	ErrMissingToken     = errors.New("access token is missing")
	ErrInsufficientRole = errors.New("insufficient role")
	ErrRoleCacheRead    = errors.New("failed to read role cache")
)

const (
	DecisionAllow DecisionKind = iota
	DecisionRedirectLogin
	DecisionRedirectUnauthorized
)

type (
	DecisionKind int

	Decision struct {
		Kind     DecisionKind
		Location string
		// Roles are set only when they were resolved for the request.
		Roles  pkgauth.Roles
		Reason error
	}

	Request struct {
		Path        string
		AccessToken string
		RoleCache   rolecache.Cache
	}
)

func (k DecisionKind) String() string {
	switch k {
	case DecisionAllow:
		return "allow"
	case DecisionRedirectLogin:
		return "redirect_login"
	case DecisionRedirectUnauthorized:
		return "redirect_unauthorized"
	default:
		return "unknown"
	}
}

func (d Decision) IsAllowed() bool {
	return d.Kind == DecisionAllow
}
