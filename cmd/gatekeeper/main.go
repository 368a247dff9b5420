package main

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/klwxsrx/ticketgate/internal/gate"
	"github.com/klwxsrx/ticketgate/internal/pkg/cmd"
	pkgcmd "github.com/klwxsrx/ticketgate/pkg/cmd"
	pkgenv "github.com/klwxsrx/ticketgate/pkg/env"
)

func main() {
	ctx := context.Background()
	infra := cmd.NewInfrastructureContainer(ctx)
	defer infra.Close(ctx)

	container := gate.NewDependencyContainer(
		ctx,
		pkgenv.Must(gate.ParseConfig()),
		infra.HTTPClientFactory,
		infra.Redis,
		infra.Clock,
		infra.Metrics,
		infra.Logger,
	)

	httpServer := infra.HTTPServer.MustLoad()
	httpServer.Register(
		http.MethodGet,
		cmd.MetricsPath,
		promhttp.HandlerFor(infra.MetricsRegistry.MustLoad(), promhttp.HandlerOpts{}),
	)
	container.MustRegisterHTTPHandlers(httpServer)

	pkgcmd.MustRun(ctx, infra.Logger.MustLoad(),
		pkgcmd.TermSignalAwaiter,
		httpServer.Listener,
	)
}
