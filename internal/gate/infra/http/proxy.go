package http

import (
	"net/http"
	"net/http/httputil"
	"net/url"
	"sort"
	"strings"

	commonhttp "github.com/klwxsrx/ticketgate/internal/pkg/http"
	pkgauth "github.com/klwxsrx/ticketgate/pkg/auth"
	"github.com/klwxsrx/ticketgate/pkg/log"
)

// NewUpstreamProxy forwards gated requests to the application. Roles resolved by the gate are passed in RolesHeader,
// client supplied values of that header are always dropped.
func NewUpstreamProxy(upstream *url.URL, logger log.Logger) http.Handler {
	return &httputil.ReverseProxy{
		Rewrite: func(req *httputil.ProxyRequest) {
			req.SetURL(upstream)
			req.SetXForwarded()
			req.Out.Host = req.In.Host

			req.Out.Header.Del(commonhttp.RolesHeader)
			if roles, ok := pkgauth.RolesFromContext(req.In.Context()); ok {
				names := roles.Strings()
				sort.Strings(names)
				req.Out.Header.Set(commonhttp.RolesHeader, strings.Join(names, ","))
			}
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			logger.WithError(err).WithField("path", r.URL.Path).Error(r.Context(), "upstream request failed")
			w.WriteHeader(http.StatusBadGateway)
		},
	}
}
