package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/klwxsrx/ticketgate/internal/gate/app/rolecache"
	"github.com/klwxsrx/ticketgate/internal/gate/app/roles"
	"github.com/klwxsrx/ticketgate/internal/pkg/auth"
	commonhttp "github.com/klwxsrx/ticketgate/internal/pkg/http"
	"github.com/klwxsrx/ticketgate/internal/pkg/route"
	pkgauth "github.com/klwxsrx/ticketgate/pkg/auth"
	"github.com/klwxsrx/ticketgate/pkg/log"
	"github.com/klwxsrx/ticketgate/pkg/metric"
	pkgtime "github.com/klwxsrx/ticketgate/pkg/time"
)

type Gatekeeper interface {
	// Authorize never fails: every problem resolves into a redirect decision.
	Authorize(ctx context.Context, req Request) Decision
}

type gatekeeper struct {
	registry *route.Registry
	resolver roles.Resolver
	clock    pkgtime.Clock
	metrics  metric.Metrics
	logger   log.Logger
}

func NewGatekeeper(
	registry *route.Registry,
	resolver roles.Resolver,
	clock pkgtime.Clock,
	metrics metric.Metrics,
	logger log.Logger,
) Gatekeeper {
	return &gatekeeper{
		registry: registry,
		resolver: resolver,
		clock:    clock,
		metrics:  metrics,
		logger:   logger,
	}
}

func (g *gatekeeper) Authorize(ctx context.Context, req Request) Decision {
	decision := g.authorize(ctx, req)
	g.metrics.With(metric.Labels{
		"decision": decision.Kind.String(),
	}).Increment("gate_decisions_total")

	return decision
}

func (g *gatekeeper) authorize(ctx context.Context, req Request) Decision {
	if g.registry.IsPublic(req.Path) {
		return allow(nil)
	}

	rule, ok := g.registry.MatchProtected(req.Path)
	if !ok {
		return allow(nil)
	}

	cache := req.RoleCache
	if cache == nil {
		cache = noopCache{}
	}

	if req.AccessToken == "" {
		if err := cache.Delete(ctx, rolecache.Key); err != nil {
			g.logger.WithError(err).Warn(ctx, "failed to invalidate role cache")
		}
		return redirectLogin(req.Path, ErrMissingToken)
	}

	if len(rule.RequiredRoles) == 0 {
		return allow(nil)
	}

	roleNames, err := g.getRoles(ctx, req.AccessToken, cache)
	if err != nil {
		g.logger.With(log.Fields{
			"path":      req.Path,
			"timestamp": g.clock.Now().UTC().Format(time.RFC3339),
		}).WithError(err).Error(ctx, "role check failed")
		return redirectLogin(req.Path, err)
	}

	userRoles := pkgauth.NewRoles(roleNames...)
	err = pkgauth.CheckRoles(userRoles, auth.CanAccessRoute(rule.RequiredRoles))
	switch {
	case errors.Is(err, pkgauth.ErrPermissionDenied):
		return Decision{
			Kind:     DecisionRedirectUnauthorized,
			Location: commonhttp.UnauthorizedPath,
			Reason:   fmt.Errorf("%w for %s", ErrInsufficientRole, rule.Pattern),
		}
	case err != nil:
		return redirectLogin(req.Path, err)
	}

	return allow(userRoles)
}

func (g *gatekeeper) getRoles(ctx context.Context, accessToken string, cache rolecache.Cache) ([]string, error) {
	now := g.clock.Now()

	entry, ok, err := cache.Get(ctx, rolecache.Key)
	switch {
	case errors.Is(err, rolecache.ErrMalformedEntry):
		g.logger.WithError(err).Debug(ctx, "role cache ignored")
		ok = false
	case err != nil:
		return nil, fmt.Errorf("%w: %w", ErrRoleCacheRead, err)
	}

	if ok && entry.IsFresh(now) {
		g.metrics.With(metric.Labels{"result": "hit"}).Increment("gate_role_cache_lookups_total")
		return entry.Roles, nil
	}
	g.metrics.With(metric.Labels{"result": "miss"}).Increment("gate_role_cache_lookups_total")

	roleNames, err := g.resolver.FetchRoles(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	err = cache.Set(ctx, rolecache.Key, rolecache.NewEntry(roleNames, now), rolecache.TTL)
	if err != nil {
		g.logger.WithError(err).Warn(ctx, "failed to store role cache")
	}

	return roleNames, nil
}

func allow(roles pkgauth.Roles) Decision {
	return Decision{
		Kind:  DecisionAllow,
		Roles: roles,
	}
}

func redirectLogin(path string, reason error) Decision {
	return Decision{
		Kind:     DecisionRedirectLogin,
		Location: commonhttp.LoginRedirectURL(path),
		Reason:   reason,
	}
}

type noopCache struct{}

func (noopCache) Get(context.Context, string) (rolecache.Entry, bool, error) {
	return rolecache.Entry{}, false, nil
}

func (noopCache) Set(context.Context, string, rolecache.Entry, time.Duration) error {
	return nil
}

func (noopCache) Delete(context.Context, string) error {
	return nil
}
