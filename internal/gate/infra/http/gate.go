package http

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/klwxsrx/ticketgate/internal/gate/app/service"
	commonhttp "github.com/klwxsrx/ticketgate/internal/pkg/http"
	pkgauth "github.com/klwxsrx/ticketgate/pkg/auth"
	pkghttp "github.com/klwxsrx/ticketgate/pkg/http"
	"github.com/klwxsrx/ticketgate/pkg/log"
)

var (
	excludedPrefixes = []string{
		"/api/",
		"/_next/static/",
		"/_next/image/",
	}
	excludedPaths = map[string]struct{}{
		"/api":         {},
		"/favicon.ico": {},
	}

	securityHeaders = [][2]string{
		{"X-Content-Type-Options", "nosniff"},
		{"X-Frame-Options", "DENY"},
		{"X-XSS-Protection", "1; mode=block"},
		{"Referrer-Policy", "strict-origin-when-cross-origin"},
		{"Permissions-Policy", "camera=(), microphone=(), geolocation=()"},
	}
)

// InScope reports whether the gate handles the path, static assets and api calls bypass it.
func InScope(path string) bool {
	if _, ok := excludedPaths[path]; ok {
		return false
	}
	for _, prefix := range excludedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}

	return true
}

func NewGateMiddleware(
	gatekeeper service.Gatekeeper,
	caches RoleCacheProvider,
	logger log.Logger,
) pkghttp.ServerMiddleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !InScope(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			started := time.Now()
			token, err := pkghttp.ParseRequest(r, pkghttp.CookieValue[string](commonhttp.AccessTokenCookieName), nil)
			if err != nil {
				token = ""
			}

			decision := gatekeeper.Authorize(r.Context(), service.Request{
				Path:        r.URL.Path,
				AccessToken: token,
				RoleCache:   caches.ForRequest(w, r),
			})

			header := w.Header()
			for _, h := range securityHeaders {
				header.Set(h[0], h[1])
			}
			header.Set("Server-Timing", fmt.Sprintf("total;dur=%d", time.Since(started).Milliseconds()))

			if !decision.IsAllowed() {
				logger.With(log.Fields{
					"path":     r.URL.Path,
					"decision": decision.Kind.String(),
				}).WithError(decision.Reason).Debug(r.Context(), "request redirected by gate")
				http.Redirect(w, r, decision.Location, http.StatusTemporaryRedirect)
				return
			}

			ctx := r.Context()
			if decision.Roles != nil {
				ctx = pkgauth.WithRoles(ctx, decision.Roles)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
