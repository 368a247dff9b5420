package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/klwxsrx/ticketgate/internal/pkg/route"
	"github.com/klwxsrx/ticketgate/internal/routeguard/app/guard"
	sessionapp "github.com/klwxsrx/ticketgate/internal/session/app/session"
	pkgcmd "github.com/klwxsrx/ticketgate/pkg/cmd"
)

var errNoSession = errors.New("not logged in")

func loginCmd() *cobra.Command {
	var (
		user   sessionapp.User
		tokens sessionapp.Tokens
		kind   string
	)

	c := &cobra.Command{
		Use:   "login",
		Short: "Store a session issued by the identity backend",
		Args:  cobra.NoArgs,
		RunE: runWithApp(func(_ context.Context, a *app) error {
			user.AuthType = sessionapp.AuthType(kind)
			if user.AuthType != sessionapp.AuthTypeEmail && user.AuthType != sessionapp.AuthTypeWallet {
				return fmt.Errorf("unknown auth type %q", kind)
			}

			a.store.Login(user, tokens)
			if !a.store.IsAuthenticated() {
				return errNoSession
			}

			a.printf("logged in as %s\n", user.ID)
			return nil
		}),
	}

	flags := c.Flags()
	flags.StringVar(&user.ID, "user-id", "", "user id")
	flags.StringVar(&user.Email, "email", "", "email used for OTP sign in")
	flags.StringVar(&user.WalletAddress, "wallet", "", "wallet address used for SIWE sign in")
	flags.StringVar(&user.Name, "name", "", "display name")
	flags.StringVar(&kind, "auth-type", string(sessionapp.AuthTypeEmail), "email or wallet")
	flags.StringVar(&tokens.Access, "access-token", "", "access token")
	flags.StringVar(&tokens.Refresh, "refresh-token", "", "refresh token")
	_ = c.MarkFlagRequired("user-id")
	_ = c.MarkFlagRequired("access-token")
	_ = c.MarkFlagRequired("refresh-token")

	return c
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current session state",
		Args:  cobra.NoArgs,
		RunE: runWithApp(func(_ context.Context, a *app) error {
			a.printf("state: %s\n", a.store.State())

			s, ok := a.store.Session()
			if !ok {
				return nil
			}
			_, valid := a.store.AccessToken()
			a.printf("user: %s\nauth type: %s\naccess token valid: %t\n", s.User.ID, s.User.AuthType, valid)
			return nil
		}),
	}
}

func tokenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "token",
		Short: "Print the access token if it is still valid",
		Args:  cobra.NoArgs,
		RunE: runWithApp(func(_ context.Context, a *app) error {
			token, ok := a.store.AccessToken()
			if !ok {
				return errNoSession
			}

			a.printf("%s\n", token)
			return nil
		}),
	}
}

func refreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Exchange the refresh token for a new access token",
		Args:  cobra.NoArgs,
		RunE: runWithApp(func(ctx context.Context, a *app) error {
			if !a.store.RefreshAccessToken(ctx) {
				return errors.New("refresh failed")
			}

			a.printf("access token refreshed\n")
			return nil
		}),
	}
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Drop the stored session",
		Args:  cobra.NoArgs,
		RunE: runWithApp(func(_ context.Context, a *app) error {
			a.store.Logout()
			return nil
		}),
	}
}

func navigateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "navigate <path>",
		Short: "Check a client-side navigation against the route guard",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			path := args[0]
			registry := route.MustCompile(route.DefaultTable())

			return runWithApp(func(_ context.Context, a *app) error {
				g := guard.NewGuard(registry, a.store, stdoutNavigator{out: a.out}, guard.DefaultDebounce, a.infra.Logger.MustLoad())
				defer g.Close()

				g.OnNavigate(path)
				if action := g.Flush(); !action.IsRedirect() {
					a.printf("%s: %s, no redirect\n", path, guard.Classify(registry, path))
				}
				return nil
			})(c, args)
		},
	}
}

func watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Keep the session alive with silent refreshes until interrupted",
		Args:  cobra.NoArgs,
		RunE: runWithApp(func(ctx context.Context, a *app) error {
			if !a.store.IsAuthenticated() {
				return errNoSession
			}

			unsubscribe := a.store.Subscribe(func() {
				a.printf("state: %s\n", a.store.State())
			})
			defer unsubscribe()

			return pkgcmd.Run(ctx, a.infra.Logger.MustLoad(), pkgcmd.TermSignalAwaiter)
		}),
	}
}
