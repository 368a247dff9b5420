package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/klwxsrx/ticketgate/internal/gate/app/rolecache"
	"github.com/klwxsrx/ticketgate/internal/gate/app/roles"
	rolesmock "github.com/klwxsrx/ticketgate/internal/gate/app/roles/mock"
	"github.com/klwxsrx/ticketgate/internal/gate/app/service"
	"github.com/klwxsrx/ticketgate/internal/pkg/route"
	"github.com/klwxsrx/ticketgate/pkg/log"
	"github.com/klwxsrx/ticketgate/pkg/metric"
	pkgmetricmock "github.com/klwxsrx/ticketgate/pkg/metric/mock"
	pkgtime "github.com/klwxsrx/ticketgate/pkg/time"
)

const testToken = "token"

var testNow = time.Unix(1_700_000_000, 0)

type brokenCache struct {
	getErr error
}

func (c brokenCache) Get(context.Context, string) (rolecache.Entry, bool, error) {
	return rolecache.Entry{}, false, c.getErr
}

func (c brokenCache) Set(context.Context, string, rolecache.Entry, time.Duration) error {
	return errors.New("set failed")
}

func (c brokenCache) Delete(context.Context, string) error {
	return errors.New("delete failed")
}

func newGatekeeper(resolver roles.Resolver, clock pkgtime.Clock) service.Gatekeeper {
	return service.NewGatekeeper(
		route.MustCompile(route.DefaultTable()),
		resolver,
		clock,
		metric.NewMetricsStub(),
		log.NewStub(),
	)
}

func TestGatekeeper_Authorize(t *testing.T) {
	errBackend := errors.New("backend unavailable")

	tests := []struct {
		name    string
		path    string
		token   string
		prepare func(resolver *rolesmock.Resolver, cache rolecache.Cache)
		cache   func(clock pkgtime.Clock) rolecache.Cache
		expect  func(t *testing.T, decision service.Decision, cache rolecache.Cache)
	}{
		{
			name: "public path is allowed without token",
			path: "/events",
			expect: func(t *testing.T, decision service.Decision, _ rolecache.Cache) {
				assert.Equal(t, service.DecisionAllow, decision.Kind)
			},
		},
		{
			name: "public dynamic path is allowed",
			path: "/events/summer-fest",
			expect: func(t *testing.T, decision service.Decision, _ rolecache.Cache) {
				assert.Equal(t, service.DecisionAllow, decision.Kind)
			},
		},
		{
			name: "path neither public nor protected is allowed",
			path: "/no-such-page",
			expect: func(t *testing.T, decision service.Decision, _ rolecache.Cache) {
				assert.Equal(t, service.DecisionAllow, decision.Kind)
			},
		},
		{
			name: "protected path without token redirects to login and drops role cache",
			path: "/dashboard/events/abc/edit",
			prepare: func(_ *rolesmock.Resolver, cache rolecache.Cache) {
				_ = cache.Set(context.Background(), rolecache.Key, rolecache.NewEntry([]string{"ADMIN"}, testNow), rolecache.TTL)
			},
			expect: func(t *testing.T, decision service.Decision, cache rolecache.Cache) {
				assert.Equal(t, service.DecisionRedirectLogin, decision.Kind)
				assert.Equal(t, "/login?redirect=%2Fdashboard%2Fevents%2Fabc%2Fedit", decision.Location)
				assert.ErrorIs(t, decision.Reason, service.ErrMissingToken)

				_, ok, err := cache.Get(context.Background(), rolecache.Key)
				require.NoError(t, err)
				assert.False(t, ok)
			},
		},
		{
			name:  "token only route is allowed without role resolution",
			path:  "/my-tickets/42",
			token: testToken,
			expect: func(t *testing.T, decision service.Decision, _ rolecache.Cache) {
				assert.Equal(t, service.DecisionAllow, decision.Kind)
				assert.Nil(t, decision.Roles)
			},
		},
		{
			name:  "fresh role cache is used without resolver call",
			path:  "/dashboard/users",
			token: testToken,
			prepare: func(_ *rolesmock.Resolver, cache rolecache.Cache) {
				entry := rolecache.NewEntry([]string{"ADMIN"}, testNow.Add(-rolecache.TTL+time.Second))
				_ = cache.Set(context.Background(), rolecache.Key, entry, rolecache.TTL)
			},
			expect: func(t *testing.T, decision service.Decision, _ rolecache.Cache) {
				assert.Equal(t, service.DecisionAllow, decision.Kind)
				assert.True(t, decision.Roles.Has("ADMIN"))
			},
		},
		{
			name:  "stale role cache is refetched and rewritten",
			path:  "/dashboard/users",
			token: testToken,
			prepare: func(resolver *rolesmock.Resolver, cache rolecache.Cache) {
				entry := rolecache.NewEntry([]string{"ADMIN"}, testNow.Add(-rolecache.TTL))
				_ = cache.Set(context.Background(), rolecache.Key, entry, 2*rolecache.TTL)
				resolver.EXPECT().FetchRoles(gomock.Any(), testToken).Return([]string{"USER"}, nil)
			},
			expect: func(t *testing.T, decision service.Decision, cache rolecache.Cache) {
				assert.Equal(t, service.DecisionRedirectUnauthorized, decision.Kind)
				assert.Equal(t, "/unauthorized", decision.Location)
				assert.ErrorIs(t, decision.Reason, service.ErrInsufficientRole)

				entry, ok, err := cache.Get(context.Background(), rolecache.Key)
				require.NoError(t, err)
				require.True(t, ok)
				assert.Equal(t, []string{"USER"}, entry.Roles)
				assert.Equal(t, testNow.Unix(), entry.Timestamp)
			},
		},
		{
			name:  "malformed role cache is treated as a miss",
			path:  "/dashboard/blog",
			token: testToken,
			cache: func(pkgtime.Clock) rolecache.Cache {
				return brokenCache{getErr: rolecache.ErrMalformedEntry}
			},
			prepare: func(resolver *rolesmock.Resolver, _ rolecache.Cache) {
				resolver.EXPECT().FetchRoles(gomock.Any(), testToken).Return([]string{"BLOG_EDITOR"}, nil)
			},
			expect: func(t *testing.T, decision service.Decision, _ rolecache.Cache) {
				assert.Equal(t, service.DecisionAllow, decision.Kind)
			},
		},
		{
			name:  "role cache read failure redirects to login",
			path:  "/dashboard/blog",
			token: testToken,
			cache: func(pkgtime.Clock) rolecache.Cache {
				return brokenCache{getErr: errors.New("storage down")}
			},
			expect: func(t *testing.T, decision service.Decision, _ rolecache.Cache) {
				assert.Equal(t, service.DecisionRedirectLogin, decision.Kind)
				assert.Equal(t, "/login?redirect=%2Fdashboard%2Fblog", decision.Location)
				assert.ErrorIs(t, decision.Reason, service.ErrRoleCacheRead)
			},
		},
		{
			name:  "resolver failure redirects to login",
			path:  "/dashboard",
			token: testToken,
			prepare: func(resolver *rolesmock.Resolver, _ rolecache.Cache) {
				resolver.EXPECT().FetchRoles(gomock.Any(), testToken).Return(nil, fmt.Errorf("%w: %w", roles.ErrRoleFetch, errBackend))
			},
			expect: func(t *testing.T, decision service.Decision, cache rolecache.Cache) {
				assert.Equal(t, service.DecisionRedirectLogin, decision.Kind)
				assert.Equal(t, "/login?redirect=%2Fdashboard", decision.Location)
				assert.ErrorIs(t, decision.Reason, roles.ErrRoleFetch)

				_, ok, err := cache.Get(context.Background(), rolecache.Key)
				require.NoError(t, err)
				assert.False(t, ok)
			},
		},
		{
			name:  "super admin is allowed on every protected pattern",
			path:  "/dashboard/users",
			token: testToken,
			prepare: func(resolver *rolesmock.Resolver, _ rolecache.Cache) {
				resolver.EXPECT().FetchRoles(gomock.Any(), testToken).Return([]string{"SUPER_ADMIN"}, nil)
			},
			expect: func(t *testing.T, decision service.Decision, _ rolecache.Cache) {
				assert.Equal(t, service.DecisionAllow, decision.Kind)
			},
		},
		{
			name:  "role cache write failure does not block the request",
			path:  "/dashboard/events",
			token: testToken,
			cache: func(pkgtime.Clock) rolecache.Cache {
				return brokenCache{}
			},
			prepare: func(resolver *rolesmock.Resolver, _ rolecache.Cache) {
				resolver.EXPECT().FetchRoles(gomock.Any(), testToken).Return([]string{"EVENT_TEAM"}, nil)
			},
			expect: func(t *testing.T, decision service.Decision, _ rolecache.Cache) {
				assert.Equal(t, service.DecisionAllow, decision.Kind)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			resolver := rolesmock.NewResolver(ctrl)
			clock := pkgtime.NewAdjustableClock(testNow)

			var cache rolecache.Cache = rolecache.NewMemoryCache(clock)
			if tt.cache != nil {
				cache = tt.cache(clock)
			}
			if tt.prepare != nil {
				tt.prepare(resolver, cache)
			}

			decision := newGatekeeper(resolver, clock).Authorize(context.Background(), service.Request{
				Path:        tt.path,
				AccessToken: tt.token,
				RoleCache:   cache,
			})
			tt.expect(t, decision, cache)
		})
	}
}

func TestGatekeeper_Authorize_AnalyticsScenario(t *testing.T) {
	tests := []struct {
		name  string
		roles []string
		kind  service.DecisionKind
	}{
		{name: "event team is not allowed", roles: []string{"EVENT_TEAM"}, kind: service.DecisionRedirectUnauthorized},
		{name: "event organizer is allowed", roles: []string{"EVENT_ORGANIZER"}, kind: service.DecisionAllow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			resolver := rolesmock.NewResolver(ctrl)
			resolver.EXPECT().FetchRoles(gomock.Any(), testToken).Return(tt.roles, nil)

			clock := pkgtime.NewAdjustableClock(testNow)
			decision := newGatekeeper(resolver, clock).Authorize(context.Background(), service.Request{
				Path:        "/dashboard/events/abc123/analytics",
				AccessToken: testToken,
				RoleCache:   rolecache.NewMemoryCache(clock),
			})
			assert.Equal(t, tt.kind, decision.Kind)
		})
	}
}

func TestGatekeeper_Authorize_SecondRequestWithinTTLUsesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := rolesmock.NewResolver(ctrl)
	resolver.EXPECT().FetchRoles(gomock.Any(), testToken).Return([]string{"ADMIN"}, nil).Times(1)

	clock := pkgtime.NewAdjustableClock(testNow)
	cache := rolecache.NewMemoryCache(clock)
	gatekeeper := newGatekeeper(resolver, clock)
	req := service.Request{Path: "/dashboard/users", AccessToken: testToken, RoleCache: cache}

	assert.True(t, gatekeeper.Authorize(context.Background(), req).IsAllowed())
	clock.Add(rolecache.TTL - time.Second)
	assert.True(t, gatekeeper.Authorize(context.Background(), req).IsAllowed())
}

func TestGatekeeper_Authorize_CountsDecisions(t *testing.T) {
	ctrl := gomock.NewController(t)
	metrics := pkgmetricmock.NewMetrics(ctrl)
	labeled := pkgmetricmock.NewMetrics(ctrl)
	metrics.EXPECT().With(metric.Labels{"decision": "redirect_login"}).Return(labeled)
	labeled.EXPECT().Increment("gate_decisions_total")

	gatekeeper := service.NewGatekeeper(
		route.MustCompile(route.DefaultTable()),
		rolesmock.NewResolver(ctrl),
		pkgtime.NewAdjustableClock(testNow),
		metrics,
		log.NewStub(),
	)

	decision := gatekeeper.Authorize(context.Background(), service.Request{Path: "/profile"})
	assert.Equal(t, service.DecisionRedirectLogin, decision.Kind)
	assert.Nil(t, decision.Roles)
}

func TestDecisionKind_String(t *testing.T) {
	assert.Equal(t, "allow", service.DecisionAllow.String())
	assert.Equal(t, "redirect_unauthorized", service.DecisionRedirectUnauthorized.String())
}
