package http

import pkghttp "github.com/klwxsrx/ticketgate/pkg/http"

const (
	DestinationIdentity pkghttp.Destination = "identity"
)

const (
	AccessTokenCookieName = "accessToken"
	RoleCacheCookieName   = "user_roles_cache"

	RequestIDHeader = pkghttp.DefaultRequestIDHeader
	RolesHeader     = "X-Auth-Roles"
)

const (
	LoginPath        = "/login"
	UnauthorizedPath = "/unauthorized"
	DashboardPath    = "/dashboard"
	LandingPath      = "/"

	RedirectQueryParam = "redirect"
)
