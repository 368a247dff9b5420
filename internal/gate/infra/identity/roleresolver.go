package identity

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/klwxsrx/ticketgate/internal/gate/app/roles"
	pkghttp "github.com/klwxsrx/ticketgate/pkg/http"
	"github.com/klwxsrx/ticketgate/pkg/log"
	"github.com/klwxsrx/ticketgate/pkg/metric"
)

const rolesPath = "/api/v1/accounts/me/roles"

type Config struct {
	Timeout    time.Duration
	MaxRetries uint64
	RetryDelay time.Duration
}

func DefaultConfig() Config {
	return Config{
		Timeout:    5 * time.Second,
		MaxRetries: 2,
		RetryDelay: time.Second,
	}
}

// Deadline bounds the whole resolution: every attempt timing out plus every retry delay.
func (c Config) Deadline() time.Duration {
	retries := time.Duration(c.MaxRetries)
	return (retries+1)*c.Timeout + retries*c.RetryDelay
}

type roleResolver struct {
	client  pkghttp.Client
	config  Config
	metrics metric.Metrics
	logger  log.Logger
}

func NewRoleResolver(
	client pkghttp.Client,
	config Config,
	metrics metric.Metrics,
	logger log.Logger,
) roles.Resolver {
	return roleResolver{
		client:  client,
		config:  config,
		metrics: metrics,
		logger:  logger,
	}
}

func (r roleResolver) FetchRoles(ctx context.Context, accessToken string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.config.Deadline())
	defer cancel()

	var result []string
	fetch := func() error {
		var err error
		result, err = r.fetchOnce(ctx, accessToken)
		return err
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(r.config.RetryDelay), r.config.MaxRetries),
		ctx,
	)
	err := backoff.RetryNotify(fetch, policy, func(err error, delay time.Duration) {
		r.metrics.Increment("role_resolver_retries_total")
		r.logger.
			WithError(err).
			WithField("retryIn", delay.String()).
			Warn(ctx, "role resolution attempt failed")
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", roles.ErrRoleFetch, err)
	}

	return result, nil
}

func (r roleResolver) fetchOnce(ctx context.Context, accessToken string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.config.Timeout)
	defer cancel()

	resp, err := r.client.NewRequest(ctx).
		SetAuthToken(accessToken).
		SetResult(&rolesOut{}).
		Get(rolesPath)
	if err != nil {
		return nil, fmt.Errorf("request identity.getMyRoles: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("request identity.getMyRoles: invalid status code %d", resp.StatusCode())
	}

	body, ok := resp.Result().(*rolesOut)
	if !ok || body == nil {
		return nil, fmt.Errorf("identity.getMyRoles response: unexpected body")
	}

	return body.names(), nil
}

type rolesOut struct {
	Result struct {
		Roles []struct {
			Name string `json:"name"`
		} `json:"roles"`
	} `json:"result"`
}

func (o *rolesOut) names() []string {
	names := make([]string, 0, len(o.Result.Roles))
	for _, role := range o.Result.Roles {
		if role.Name != "" {
			names = append(names, role.Name)
		}
	}

	return names
}
