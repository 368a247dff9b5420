package http_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkghttp "github.com/klwxsrx/ticketgate/pkg/http"
)

func TestParseRequest_CookieValue(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: "token"})

	value, err := pkghttp.ParseRequest(req, pkghttp.CookieValue[string]("accessToken"), nil)
	require.NoError(t, err)
	assert.Equal(t, "token", value)

	_, err = pkghttp.ParseRequest(req, pkghttp.CookieValue[string]("refreshToken"), nil)
	assert.ErrorIs(t, err, pkghttp.ErrParsingError)
}

func TestParseRequest_ReturnsLastError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	lastErr := errors.New("previous")

	_, err := pkghttp.ParseRequest(req, pkghttp.CookieValue[string]("accessToken"), lastErr)
	assert.ErrorIs(t, err, lastErr)
}
