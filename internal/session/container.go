package session

import (
	commoncmd "github.com/klwxsrx/ticketgate/internal/pkg/cmd"
	commonhttp "github.com/klwxsrx/ticketgate/internal/pkg/http"
	"github.com/klwxsrx/ticketgate/internal/session/app/session"
	"github.com/klwxsrx/ticketgate/internal/session/infra/identity"
	"github.com/klwxsrx/ticketgate/internal/session/infra/jwt"
	"github.com/klwxsrx/ticketgate/internal/session/infra/storage"
	pkglazy "github.com/klwxsrx/ticketgate/pkg/lazy"
	pkglog "github.com/klwxsrx/ticketgate/pkg/log"
	pkgtime "github.com/klwxsrx/ticketgate/pkg/time"
)

type DependencyContainer struct {
	Storage   pkglazy.Loader[session.Storage]
	Refresher pkglazy.Loader[session.TokenRefresher]
	Validity  pkglazy.Loader[*session.ValidityCache]
	Store     pkglazy.Loader[*session.Store]
}

func NewDependencyContainer(
	config Config,
	navigator session.Navigator,
	httpClients pkglazy.Loader[commoncmd.HTTPClientFactory],
	clock pkglazy.Loader[pkgtime.Clock],
	logger pkglazy.Loader[pkglog.Logger],
) *DependencyContainer {
	storageLoader := pkglazy.New(func() (session.Storage, error) {
		return storage.NewFileStorage(config.StorageFile), nil
	})
	refresher := pkglazy.New(func() (session.TokenRefresher, error) {
		client := httpClients.MustLoad().MustInitClient(commonhttp.DestinationIdentity)
		return identity.NewTokenRefresher(client), nil
	})
	validity := pkglazy.New(func() (*session.ValidityCache, error) {
		return session.NewValidityCache(jwt.NewExpiryDecoder(), clock.MustLoad(), config.ValidityTTL, session.DefaultValiditySize)
	})

	return &DependencyContainer{
		Storage:   storageLoader,
		Refresher: refresher,
		Validity:  validity,
		Store: pkglazy.New(func() (*session.Store, error) {
			return session.NewStore(
				storageLoader.MustLoad(),
				refresher.MustLoad(),
				navigator,
				validity.MustLoad(),
				config.RefreshInterval,
				logger.MustLoad(),
			), nil
		}),
	}
}

func (c *DependencyContainer) Close() {
	c.Store.IfLoaded(func(store *session.Store) {
		store.Close()
	})
}
