package gate

import (
	"context"
	"crypto/rand"
	"fmt"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/klwxsrx/ticketgate/internal/gate/app/roles"
	"github.com/klwxsrx/ticketgate/internal/gate/app/service"
	gatehttp "github.com/klwxsrx/ticketgate/internal/gate/infra/http"
	"github.com/klwxsrx/ticketgate/internal/gate/infra/identity"
	gateredis "github.com/klwxsrx/ticketgate/internal/gate/infra/redis"
	commoncmd "github.com/klwxsrx/ticketgate/internal/pkg/cmd"
	commonhttp "github.com/klwxsrx/ticketgate/internal/pkg/http"
	"github.com/klwxsrx/ticketgate/internal/pkg/route"
	pkghttp "github.com/klwxsrx/ticketgate/pkg/http"
	pkglazy "github.com/klwxsrx/ticketgate/pkg/lazy"
	pkglog "github.com/klwxsrx/ticketgate/pkg/log"
	pkgmetric "github.com/klwxsrx/ticketgate/pkg/metric"
	pkgtime "github.com/klwxsrx/ticketgate/pkg/time"
)

const generatedSecretSize = 32

type DependencyContainer struct {
	RouteRegistry  pkglazy.Loader[*route.Registry]
	RoleResolver   pkglazy.Loader[roles.Resolver]
	Gatekeeper     pkglazy.Loader[service.Gatekeeper]
	RoleCaches     pkglazy.Loader[gatehttp.RoleCacheProvider]
	GateMiddleware pkglazy.Loader[pkghttp.ServerMiddleware]
	UpstreamProxy  pkglazy.Loader[http.Handler]
}

func NewDependencyContainer(
	ctx context.Context,
	config Config,
	httpClients pkglazy.Loader[commoncmd.HTTPClientFactory],
	redisClient pkglazy.Loader[*redis.Client],
	clock pkglazy.Loader[pkgtime.Clock],
	metrics pkglazy.Loader[pkgmetric.Metrics],
	logger pkglazy.Loader[pkglog.Logger],
) *DependencyContainer {
	registry := pkglazy.New(func() (*route.Registry, error) {
		return route.Compile(route.DefaultTable())
	})
	resolver := roleResolverProvider(config, httpClients, metrics, logger)
	gatekeeper := gatekeeperProvider(registry, resolver, clock, metrics, logger)
	roleCaches := roleCacheProvider(ctx, config, redisClient, logger)

	return &DependencyContainer{
		RouteRegistry: registry,
		RoleResolver:  resolver,
		Gatekeeper:    gatekeeper,
		RoleCaches:    roleCaches,
		GateMiddleware: pkglazy.New(func() (pkghttp.ServerMiddleware, error) {
			return gatehttp.NewGateMiddleware(gatekeeper.MustLoad(), roleCaches.MustLoad(), logger.MustLoad()), nil
		}),
		UpstreamProxy: pkglazy.New(func() (http.Handler, error) {
			return gatehttp.NewUpstreamProxy(config.UpstreamURL, logger.MustLoad()), nil
		}),
	}
}

// MustRegisterHTTPHandlers mounts the gated proxy as a catch-all, so it has to be registered after other routes.
func (c *DependencyContainer) MustRegisterHTTPHandlers(registry pkghttp.HandlerRegistry) {
	registry.RegisterPrefix(
		"/",
		c.UpstreamProxy.MustLoad(),
		pkghttp.WithMW(c.GateMiddleware.MustLoad()),
	)
}

func roleResolverProvider(
	config Config,
	httpClients pkglazy.Loader[commoncmd.HTTPClientFactory],
	metrics pkglazy.Loader[pkgmetric.Metrics],
	logger pkglazy.Loader[pkglog.Logger],
) pkglazy.Loader[roles.Resolver] {
	return pkglazy.New(func() (roles.Resolver, error) {
		client := httpClients.MustLoad().MustInitClient(commonhttp.DestinationIdentity)
		return identity.NewRoleResolver(client, config.Resolver, metrics.MustLoad(), logger.MustLoad()), nil
	})
}

func gatekeeperProvider(
	registry pkglazy.Loader[*route.Registry],
	resolver pkglazy.Loader[roles.Resolver],
	clock pkglazy.Loader[pkgtime.Clock],
	metrics pkglazy.Loader[pkgmetric.Metrics],
	logger pkglazy.Loader[pkglog.Logger],
) pkglazy.Loader[service.Gatekeeper] {
	return pkglazy.New(func() (service.Gatekeeper, error) {
		return service.NewGatekeeper(
			registry.MustLoad(),
			resolver.MustLoad(),
			clock.MustLoad(),
			metrics.MustLoad(),
			logger.MustLoad(),
		), nil
	})
}

func roleCacheProvider(
	ctx context.Context,
	config Config,
	redisClient pkglazy.Loader[*redis.Client],
	logger pkglazy.Loader[pkglog.Logger],
) pkglazy.Loader[gatehttp.RoleCacheProvider] {
	return pkglazy.New(func() (gatehttp.RoleCacheProvider, error) {
		if config.RoleCacheBackend == RoleCacheBackendRedis {
			return gateredis.NewRoleCacheProvider(redisClient.MustLoad(), config.RedisKeyPrefix), nil
		}

		secret := config.RoleCacheSecret
		if len(secret) == 0 {
			secret = make([]byte, generatedSecretSize)
			if _, err := rand.Read(secret); err != nil {
				return nil, fmt.Errorf("generate role cache secret: %w", err)
			}
			logger.MustLoad().Warn(ctx, "ROLE_CACHE_SECRET is not set, role cache cookies will not survive restarts")
		}

		return gatehttp.NewCookieRoleCacheProvider(secret, config.SecureCookies), nil
	})
}
