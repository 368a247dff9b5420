package guard

import (
	"strings"

	commonhttp "github.com/klwxsrx/ticketgate/internal/pkg/http"
	"github.com/klwxsrx/ticketgate/internal/pkg/route"
)

const (
	CategoryNotFound Category = iota
	CategoryProtected
	CategoryAuth
	CategoryPublic
)

type (
	Category int

	// Action is a navigation the guard has to perform, an empty Location means none.
	Action struct {
		Location string
	}
)

// Classify resolves the category of a client path, query and fragment are ignored.
func Classify(registry *route.Registry, path string) Category {
	path = stripQuery(path)
	switch {
	case !registry.IsKnown(path):
		return CategoryNotFound
	case isProtected(registry, path):
		return CategoryProtected
	case registry.IsAuth(path):
		return CategoryAuth
	default:
		return CategoryPublic
	}
}

func Decide(category Category, authenticated bool, path string) Action {
	switch {
	case category == CategoryAuth && authenticated:
		return Action{Location: commonhttp.DashboardPath}
	case category == CategoryProtected && !authenticated:
		return Action{Location: commonhttp.LoginRedirectURL(path)}
	default:
		return Action{}
	}
}

func (a Action) IsRedirect() bool {
	return a.Location != ""
}

func (c Category) String() string {
	switch c {
	case CategoryProtected:
		return "protected"
	case CategoryAuth:
		return "auth"
	case CategoryPublic:
		return "public"
	default:
		return "not_found"
	}
}

func isProtected(registry *route.Registry, path string) bool {
	_, ok := registry.MatchProtected(path)
	return ok
}

func stripQuery(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		return path[:i]
	}
	return path
}
