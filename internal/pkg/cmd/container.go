package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"

	commonhttp "github.com/klwxsrx/ticketgate/internal/pkg/http"
	"github.com/klwxsrx/ticketgate/pkg/cmd"
	"github.com/klwxsrx/ticketgate/pkg/env"
	"github.com/klwxsrx/ticketgate/pkg/http"
	"github.com/klwxsrx/ticketgate/pkg/lazy"
	"github.com/klwxsrx/ticketgate/pkg/log"
	"github.com/klwxsrx/ticketgate/pkg/metric"
	"github.com/klwxsrx/ticketgate/pkg/observability"
	pkgtime "github.com/klwxsrx/ticketgate/pkg/time"
)

const MetricsPath = "/metrics"

type (
	InfrastructureContainer struct {
		HTTPServer        lazy.Loader[http.Server]
		HTTPClientFactory lazy.Loader[HTTPClientFactory]
		Redis             lazy.Loader[*redis.Client]
		MetricsRegistry   lazy.Loader[*prometheus.Registry]
		Metrics           lazy.Loader[metric.Metrics]
		Observer          lazy.Loader[observability.Observer]
		Logger            lazy.Loader[log.Logger]
		Clock             lazy.Loader[pkgtime.Clock]
	}

	InfrastructureOption func(*infrastructureConfig)

	infrastructureConfig struct {
		logWriter io.Writer
	}
)

// WithLogWriter redirects the logger output, stdout is used by default.
func WithLogWriter(w io.Writer) InfrastructureOption {
	return func(c *infrastructureConfig) {
		c.logWriter = w
	}
}

func NewInfrastructureContainer(ctx context.Context, opts ...InfrastructureOption) *InfrastructureContainer {
	config := infrastructureConfig{logWriter: os.Stdout}
	for _, opt := range opts {
		opt(&config)
	}

	logger := loggerProvider(config.logWriter)
	metricsRegistry := metricsRegistryProvider()
	metrics := metricsProvider(metricsRegistry)
	observer := observerProvider(logger)

	return &InfrastructureContainer{
		HTTPServer:        httpServerProvider(observer, metrics, logger),
		HTTPClientFactory: httpClientFactoryProvider(observer, metrics, logger),
		Redis:             redisProvider(ctx),
		MetricsRegistry:   metricsRegistry,
		Metrics:           metrics,
		Observer:          observer,
		Logger:            logger,
		Clock:             lazy.Value(pkgtime.NewClock()),
	}
}

func (i *InfrastructureContainer) Close(ctx context.Context) {
	if cmd.HandleAppPanic(ctx, i.Logger.MustLoad()) {
		defer os.Exit(1)
	}

	i.Redis.IfLoaded(func(client *redis.Client) {
		if err := client.Close(); err != nil {
			i.Logger.MustLoad().WithError(err).Warn(ctx, "failed to close redis client")
		}
	})
}

func loggerProvider(w io.Writer) lazy.Loader[log.Logger] {
	return lazy.New(func() (log.Logger, error) {
		logLevelStr, err := env.Parse[string]("LOG_LEVEL")
		if err != nil {
			return log.NewWithWriter(log.LevelInfo, w), nil
		}

		logLevel, ok := log.ParseLevel(logLevelStr)
		if !ok {
			logLevel = log.LevelInfo
		}

		return log.NewWithWriter(logLevel, w), nil
	})
}

func metricsRegistryProvider() lazy.Loader[*prometheus.Registry] {
	return lazy.New(func() (*prometheus.Registry, error) {
		registry := prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		return registry, nil
	})
}

func metricsProvider(registry lazy.Loader[*prometheus.Registry]) lazy.Loader[metric.Metrics] {
	return lazy.New(func() (metric.Metrics, error) {
		return metric.NewPrometheus(registry.MustLoad()), nil
	})
}

func observerProvider(
	logger lazy.Loader[log.Logger],
) lazy.Loader[observability.Observer] {
	return lazy.New(func() (observability.Observer, error) {
		return observability.New(
			observability.WithFieldsLogging(logger.MustLoad(), observability.LogFieldRequestID),
		), nil
	})
}

func httpServerProvider(
	observer lazy.Loader[observability.Observer],
	metrics lazy.Loader[metric.Metrics],
	logger lazy.Loader[log.Logger],
) lazy.Loader[http.Server] {
	return lazy.New(func() (http.Server, error) {
		address, err := env.ParseWithDefault[string]("HTTP_ADDRESS", http.DefaultServerAddress)
		if err != nil {
			return nil, err
		}

		return http.NewServer(
			address,
			http.WithHealthCheck(nil),
			http.WithObservability(
				observer.MustLoad(),
				commonhttp.RequestIDHeader,
				http.NewHTTPHeaderRequestIDExtractor(commonhttp.RequestIDHeader),
				http.NewRandomUUIDRequestIDExtractor(),
			),
			http.WithMetrics(metrics.MustLoad()),
			http.WithLogging(logger.MustLoad(), log.LevelInfo, log.LevelError, MetricsPath),
			http.WithPanicRecovery(logger.MustLoad()),
		), nil
	})
}

func httpClientFactoryProvider(
	observer lazy.Loader[observability.Observer],
	metrics lazy.Loader[metric.Metrics],
	logger lazy.Loader[log.Logger],
) lazy.Loader[HTTPClientFactory] {
	return lazy.New(func() (HTTPClientFactory, error) {
		return NewHTTPClientFactory(
			http.WithRequestObservability(observer.MustLoad(), commonhttp.RequestIDHeader),
			http.WithRequestMetrics(metrics.MustLoad()),
			http.WithRequestLogging(logger.MustLoad(), log.LevelInfo, log.LevelWarn),
		), nil
	})
}

func redisProvider(ctx context.Context) lazy.Loader[*redis.Client] {
	return lazy.New(func() (*redis.Client, error) {
		address, err := env.Parse[string]("REDIS_ADDRESS")
		if err != nil {
			return nil, err
		}
		password, err := env.ParseWithDefault[string]("REDIS_PASSWORD", "")
		if err != nil {
			return nil, err
		}

		client := redis.NewClient(&redis.Options{
			Addr:     address,
			Password: password,
		})
		if err = client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("ping redis %s: %w", address, err)
		}

		return client, nil
	})
}
