package cmd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/klwxsrx/ticketgate/internal/pkg/cmd"
	commonhttp "github.com/klwxsrx/ticketgate/internal/pkg/http"
)

func TestDestinationURLEnv(t *testing.T) {
	assert.Equal(t, "IDENTITY_SERVICE_URL", cmd.DestinationURLEnv(commonhttp.DestinationIdentity))
	assert.Equal(t, "TICKET_INVENTORY_SERVICE_URL", cmd.DestinationURLEnv("ticketInventory"))
}

func TestHTTPClientFactory_MustInitClient(t *testing.T) {
	t.Setenv("IDENTITY_SERVICE_URL", "http://identity.local")

	client := cmd.NewHTTPClientFactory().MustInitClient(commonhttp.DestinationIdentity)
	assert.NotNil(t, client)
}
