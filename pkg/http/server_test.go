package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	pkghttp "github.com/klwxsrx/ticketgate/pkg/http"
	"github.com/klwxsrx/ticketgate/pkg/log"
	"github.com/klwxsrx/ticketgate/pkg/metric"
	pkgmetricmock "github.com/klwxsrx/ticketgate/pkg/metric/mock"
	"github.com/klwxsrx/ticketgate/pkg/observability"
)

func TestServer_HealthCheck(t *testing.T) {
	srv := pkghttp.NewServer(pkghttp.DefaultServerAddress, pkghttp.WithHealthCheck(nil))

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, pkghttp.HealthPath, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"OK"}`, rec.Body.String())
}

func TestServer_RegisterPrefix_AppliesRouteOptionsOnlyToRoute(t *testing.T) {
	srv := pkghttp.NewServer(pkghttp.DefaultServerAddress, pkghttp.WithHealthCheck(nil))

	stamp := pkghttp.WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Stamped", "1")
			handler.ServeHTTP(w, r)
		})
	})
	srv.RegisterPrefix("/", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}), stamp)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/events/42", nil))
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("X-Stamped"))

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, pkghttp.HealthPath, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("X-Stamped"))
}

func TestServer_WithPanicRecovery_Returns500AndCountsPanic(t *testing.T) {
	ctrl := gomock.NewController(t)

	metrics := pkgmetricmock.NewMetrics(ctrl)
	labeled := pkgmetricmock.NewMetrics(ctrl)
	metrics.EXPECT().With(gomock.Any()).Return(labeled).Times(2)
	labeled.EXPECT().Increment("http_api_request_panics_total")
	labeled.EXPECT().Duration("http_api_request_duration_seconds", gomock.Any())

	srv := pkghttp.NewServer(
		pkghttp.DefaultServerAddress,
		pkghttp.WithMetrics(metrics),
		pkghttp.WithPanicRecovery(log.NewStub()),
	)
	srv.Register(http.MethodGet, "/boom", http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("unexpected")
	}))

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestServer_WithObservability_PropagatesRequestID(t *testing.T) {
	observer := observability.New()
	srv := pkghttp.NewServer(
		pkghttp.DefaultServerAddress,
		pkghttp.WithObservability(
			observer,
			pkghttp.DefaultRequestIDHeader,
			pkghttp.NewHTTPHeaderRequestIDExtractor(pkghttp.DefaultRequestIDHeader),
			pkghttp.NewRandomUUIDRequestIDExtractor(),
		),
		pkghttp.WithMetrics(metric.NewMetricsStub()),
	)

	var seen string
	srv.Register(http.MethodGet, "/profile", http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen, _ = observer.RequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.Header.Set(pkghttp.DefaultRequestIDHeader, "req-1")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, "req-1", seen)
	assert.Equal(t, "req-1", rec.Header().Get(pkghttp.DefaultRequestIDHeader))

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/profile", nil))
	assert.NotEmpty(t, rec.Header().Get(pkghttp.DefaultRequestIDHeader))
}
