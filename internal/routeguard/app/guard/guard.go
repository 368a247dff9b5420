//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "AuthState=AuthState,Navigator=Navigator"
package guard

import (
	"context"
	"sync"
	"time"

	"github.com/klwxsrx/ticketgate/internal/pkg/route"
	"github.com/klwxsrx/ticketgate/pkg/log"
)

const DefaultDebounce = 100 * time.Millisecond

type (
	AuthState interface {
		IsAuthenticated() bool
		IsLoading() bool
		Subscribe(fn func()) (unsubscribe func())
	}

	Navigator interface {
		Navigate(url string)
	}
)

// Guard enforces route categories on client-side navigations.
// Checks are debounced and re-run on every auth state change.
type Guard struct {
	registry  *route.Registry
	state     AuthState
	navigator Navigator
	debounce  time.Duration
	logger    log.Logger

	mu          sync.Mutex
	path        string
	generation  uint64
	timer       *time.Timer
	closed      bool
	unsubscribe func()
}

func NewGuard(
	registry *route.Registry,
	state AuthState,
	navigator Navigator,
	debounce time.Duration,
	logger log.Logger,
) *Guard {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	g := &Guard{
		registry:  registry,
		state:     state,
		navigator: navigator,
		debounce:  debounce,
		logger:    logger,
	}
	g.unsubscribe = state.Subscribe(g.onStateChange)
	return g
}

func (g *Guard) OnNavigate(path string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.path = path
	g.scheduleLocked()
}

// Flush runs a pending check immediately and returns the performed action.
func (g *Guard) Flush() Action {
	g.mu.Lock()
	if g.closed || g.path == "" {
		g.mu.Unlock()
		return Action{}
	}
	g.cancelLocked()
	path := g.path
	g.mu.Unlock()

	return g.enforce(path)
}

func (g *Guard) Close() {
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return
	}
	g.closed = true
	g.cancelLocked()
	unsubscribe := g.unsubscribe
	g.mu.Unlock()

	unsubscribe()
}

func (g *Guard) onStateChange() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.path == "" {
		return
	}
	g.scheduleLocked()
}

func (g *Guard) scheduleLocked() {
	if g.closed {
		return
	}

	g.cancelLocked()
	generation := g.generation
	g.timer = time.AfterFunc(g.debounce, func() {
		g.fire(generation)
	})
}

func (g *Guard) cancelLocked() {
	g.generation++
	if g.timer != nil {
		g.timer.Stop()
		g.timer = nil
	}
}

func (g *Guard) fire(generation uint64) {
	g.mu.Lock()
	if g.closed || generation != g.generation {
		g.mu.Unlock()
		return
	}
	g.timer = nil
	path := g.path
	g.mu.Unlock()

	g.enforce(path)
}

func (g *Guard) enforce(path string) Action {
	if g.state.IsLoading() {
		return Action{}
	}

	category := Classify(g.registry, path)
	action := Decide(category, g.state.IsAuthenticated(), path)
	if !action.IsRedirect() {
		return action
	}

	g.logger.With(log.Fields{
		"path":     path,
		"category": category.String(),
		"location": action.Location,
	}).Info(context.Background(), "route guard redirect")
	g.navigator.Navigate(action.Location)
	return action
}
