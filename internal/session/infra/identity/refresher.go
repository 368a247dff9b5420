package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/klwxsrx/ticketgate/internal/session/app/session"
	pkghttp "github.com/klwxsrx/ticketgate/pkg/http"
)

const refreshTokenPath = "/api/v1/accounts/refresh-token"

var errNoAccessToken = errors.New("identity.refreshToken response: access token is missing")

type tokenRefresher struct {
	client pkghttp.Client
}

func NewTokenRefresher(client pkghttp.Client) session.TokenRefresher {
	return tokenRefresher{client: client}
}

func (r tokenRefresher) Refresh(ctx context.Context, refreshToken string) (string, error) {
	resp, err := r.client.NewRequest(ctx).
		SetBody(refreshTokenIn{Refresh: refreshToken}).
		SetResult(&refreshTokenOut{}).
		Post(refreshTokenPath)
	if err != nil {
		return "", fmt.Errorf("request identity.refreshToken: %w", err)
	}
	if !resp.IsSuccess() {
		return "", fmt.Errorf("request identity.refreshToken: invalid status code %d", resp.StatusCode())
	}

	body, ok := resp.Result().(*refreshTokenOut)
	if !ok || body == nil || body.Access == "" {
		return "", errNoAccessToken
	}

	return body.Access, nil
}

type refreshTokenIn struct {
	Refresh string `json:"refresh"`
}

type refreshTokenOut struct {
	Access string `json:"access"`
}
