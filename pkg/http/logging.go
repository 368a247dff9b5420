package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/klwxsrx/ticketgate/pkg/log"
)

func WithLogging(logger log.Logger, infoLevel, errorLevel log.Level, excludedPaths ...string) ServerOption {
	excluded := make(map[string]struct{}, len(excludedPaths)+1)
	excluded[HealthPath] = struct{}{}
	for _, path := range excludedPaths {
		excluded[path] = struct{}{}
	}

	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handler.ServeHTTP(w, r)
			if _, ok := excluded[r.URL.Path]; ok {
				return
			}

			meta := getHandlerMetadata(r.Context())
			requestLogger := getRequestFieldsLogger(r, logger).With(log.Fields{
				"routeName":    getCurrentRouteName(r),
				"responseCode": meta.Code,
			})

			if meta.Panic != nil || meta.Code >= http.StatusInternalServerError {
				requestLogger.Log(r.Context(), errorLevel, "request handled with internal error")
				return
			}

			requestLogger.Log(r.Context(), infoLevel, "request handled")
		})
	})
}

func getRequestFieldsLogger(r *http.Request, logger log.Logger) log.Logger {
	return logger.With(log.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
		"uri":    r.RequestURI,
	})
}

func getCurrentRouteName(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil || route.GetName() == "" {
		return "-"
	}

	return route.GetName()
}
