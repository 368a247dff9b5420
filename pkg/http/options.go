package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gorilla/mux"

	"github.com/klwxsrx/ticketgate/pkg/log"
)

const HealthPath = "/healthz"

func WithHealthCheck(customHandler http.Handler) ServerOption {
	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(struct {
			Status string `json:"status"`
		}{
			Status: "OK",
		})
	}))
	if customHandler != nil {
		handler = customHandler
	}

	return func(router *mux.Router) {
		router.
			Name(getRouteName(http.MethodGet, HealthPath)).
			Methods(http.MethodGet).
			Path(HealthPath).
			Handler(handler)
	}
}

func WithMW(mw ServerMiddleware) ServerOption {
	return func(router *mux.Router) {
		router.Use(mux.MiddlewareFunc(mw))
	}
}

func WithPanicRecovery(logger log.Logger) ServerOption {
	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				msg := recover()
				if msg == nil {
					return
				}

				p := Panic{
					Message:    fmt.Sprintf("%v", msg),
					Stacktrace: debug.Stack(),
				}
				getHandlerMetadata(r.Context()).Panic = &p

				getRequestFieldsLogger(r, logger).
					WithField("panic", log.Fields{
						"message": p.Message,
						"stack":   string(p.Stacktrace),
					}).
					Error(r.Context(), "request handled with panic")
				w.WriteHeader(http.StatusInternalServerError)
			}()

			handler.ServeHTTP(w, r)
		})
	})
}
