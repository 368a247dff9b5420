package env_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/ticketgate/pkg/env"
)

func TestParse(t *testing.T) {
	t.Setenv("ROLE_RESOLVER_TIMEOUT", "5s")

	timeout, err := env.Parse[time.Duration]("ROLE_RESOLVER_TIMEOUT")
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, timeout)

	_, err = env.Parse[int]("ROLE_RESOLVER_UNKNOWN")
	assert.Error(t, err)
}

func TestParseOptional(t *testing.T) {
	t.Setenv("ROLE_RESOLVER_MAX_RETRIES", "3")
	t.Setenv("ROLE_RESOLVER_RETRY_DELAY", "soon")

	retries, err := env.ParseOptional[int]("ROLE_RESOLVER_MAX_RETRIES")
	require.NoError(t, err)
	require.NotNil(t, retries)
	assert.Equal(t, 3, *retries)

	missing, err := env.ParseOptional[int]("ROLE_RESOLVER_MISSING")
	require.NoError(t, err)
	assert.Nil(t, missing)

	_, err = env.ParseOptional[time.Duration]("ROLE_RESOLVER_RETRY_DELAY")
	assert.Error(t, err)
}

func TestParseWithDefault(t *testing.T) {
	value, err := env.ParseWithDefault("GATE_ENVIRONMENT_MISSING", "development")
	require.NoError(t, err)
	assert.Equal(t, "development", value)
}

func TestMust_PanicsOnError(t *testing.T) {
	assert.Panics(t, func() {
		env.Must(env.Parse[string]("GATE_REQUIRED_MISSING"))
	})
}
