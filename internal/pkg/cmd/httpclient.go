package cmd

import (
	"fmt"

	"github.com/klwxsrx/ticketgate/pkg/env"
	"github.com/klwxsrx/ticketgate/pkg/http"
	"github.com/klwxsrx/ticketgate/pkg/strings"
)

type HTTPClientFactory struct {
	impl http.ClientFactory
}

func NewHTTPClientFactory(
	opts ...http.ClientOption,
) HTTPClientFactory {
	return HTTPClientFactory{
		impl: http.NewClientFactory(opts...),
	}
}

// MustInitClient reads the destination base url from <DESTINATION>_SERVICE_URL.
func (f HTTPClientFactory) MustInitClient(dest http.Destination, extraOpts ...http.ClientOption) http.Client {
	return f.impl.InitClient(dest, MustDestinationURL(dest), extraOpts...)
}

func MustDestinationURL(dest http.Destination) string {
	return env.Must(env.Parse[string](DestinationURLEnv(dest)))
}

func DestinationURLEnv(dest http.Destination) string {
	return fmt.Sprintf("%s_SERVICE_URL", strings.ToScreamingSnakeCase(string(dest)))
}
