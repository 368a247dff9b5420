package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/klwxsrx/ticketgate/internal/pkg/cmd"
	"github.com/klwxsrx/ticketgate/internal/session"
	sessionapp "github.com/klwxsrx/ticketgate/internal/session/app/session"
	pkgenv "github.com/klwxsrx/ticketgate/pkg/env"
)

type app struct {
	infra     *cmd.InfrastructureContainer
	container *session.DependencyContainer
	store     *sessionapp.Store
	out       io.Writer
}

// stdoutNavigator prints navigations, the CLI has no page to move to.
type stdoutNavigator struct {
	out io.Writer
}

func (n stdoutNavigator) Navigate(url string) {
	_, _ = fmt.Fprintf(n.out, "navigate: %s\n", url)
}

func main() {
	root := &cobra.Command{
		Use:           "sessionctl",
		Short:         "Manage the client session of the ticketing app",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		loginCmd(),
		statusCmd(),
		tokenCmd(),
		refreshCmd(),
		logoutCmd(),
		navigateCmd(),
		watchCmd(),
	)

	if err := root.ExecuteContext(context.Background()); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func runWithApp(fn func(ctx context.Context, a *app) error) func(*cobra.Command, []string) error {
	return func(c *cobra.Command, _ []string) error {
		ctx := c.Context()
		a := newApp(ctx, c.OutOrStdout())
		defer a.close(ctx)

		return fn(ctx, a)
	}
}

func newApp(ctx context.Context, out io.Writer) *app {
	infra := cmd.NewInfrastructureContainer(ctx, cmd.WithLogWriter(os.Stderr))
	container := session.NewDependencyContainer(
		pkgenv.Must(session.ParseConfig()),
		stdoutNavigator{out: out},
		infra.HTTPClientFactory,
		infra.Clock,
		infra.Logger,
	)

	store := container.Store.MustLoad()
	store.Init(ctx)

	return &app{
		infra:     infra,
		container: container,
		store:     store,
		out:       out,
	}
}

func (a *app) close(ctx context.Context) {
	a.container.Close()
	a.infra.Close(ctx)
}

func (a *app) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(a.out, format, args...)
}
