package route

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/klwxsrx/ticketgate/pkg/auth"
)

var bracketSegment = regexp.MustCompile(`\[[^/\]]+\]`)

type (
	ProtectedRoute struct {
		Pattern string
		Roles   []auth.Role
	}

	Table struct {
		Public    []string
		Auth      []string
		Protected []ProtectedRoute
	}

	// Rule is a matched protected route. Empty RequiredRoles means the route needs a token only.
	Rule struct {
		Pattern       string
		RequiredRoles auth.Roles
	}
)

type matcher struct {
	exact    map[string]int
	patterns []compiledPattern
}

type compiledPattern struct {
	index int
	re    *regexp.Regexp
}

type Registry struct {
	public    matcher
	auth      matcher
	protected matcher
	rules     []Rule
}

func MustCompile(table Table) *Registry {
	registry, err := Compile(table)
	if err != nil {
		panic(err)
	}

	return registry
}

// Compile turns bracketed segments like /events/[id] into single-segment wildcards.
// Exact entries win over patterns, patterns are tried in declared order.
func Compile(table Table) (*Registry, error) {
	public, err := compileMatcher(table.Public)
	if err != nil {
		return nil, fmt.Errorf("compile public routes: %w", err)
	}

	authRoutes, err := compileMatcher(table.Auth)
	if err != nil {
		return nil, fmt.Errorf("compile auth routes: %w", err)
	}

	protectedPatterns := make([]string, 0, len(table.Protected))
	rules := make([]Rule, 0, len(table.Protected))
	for _, route := range table.Protected {
		protectedPatterns = append(protectedPatterns, route.Pattern)

		var required auth.Roles
		if len(route.Roles) > 0 {
			required = auth.NewRoles(route.Roles...)
		}
		rules = append(rules, Rule{
			Pattern:       route.Pattern,
			RequiredRoles: required,
		})
	}

	protected, err := compileMatcher(protectedPatterns)
	if err != nil {
		return nil, fmt.Errorf("compile protected routes: %w", err)
	}

	return &Registry{
		public:    public,
		auth:      authRoutes,
		protected: protected,
		rules:     rules,
	}, nil
}

func (r *Registry) IsPublic(path string) bool {
	_, ok := r.public.match(path)
	return ok
}

func (r *Registry) IsAuth(path string) bool {
	_, ok := r.auth.match(path)
	return ok
}

func (r *Registry) MatchProtected(path string) (Rule, bool) {
	index, ok := r.protected.match(path)
	if !ok {
		return Rule{}, false
	}

	return r.rules[index], true
}

func (r *Registry) IsKnown(path string) bool {
	if r.IsPublic(path) || r.IsAuth(path) {
		return true
	}

	_, ok := r.MatchProtected(path)
	return ok
}

func compileMatcher(routes []string) (matcher, error) {
	result := matcher{
		exact:    make(map[string]int, len(routes)),
		patterns: make([]compiledPattern, 0),
	}

	for i, route := range routes {
		if !strings.HasPrefix(route, "/") {
			return matcher{}, fmt.Errorf("route %q must start with /", route)
		}

		if !bracketSegment.MatchString(route) {
			if _, ok := result.exact[route]; !ok {
				result.exact[route] = i
			}
			continue
		}

		re, err := regexp.Compile(patternToRegexp(route))
		if err != nil {
			return matcher{}, fmt.Errorf("route %q: %w", route, err)
		}
		result.patterns = append(result.patterns, compiledPattern{index: i, re: re})
	}

	return result, nil
}

func patternToRegexp(pattern string) string {
	var sb strings.Builder
	sb.WriteString("^")

	last := 0
	for _, loc := range bracketSegment.FindAllStringIndex(pattern, -1) {
		sb.WriteString(regexp.QuoteMeta(pattern[last:loc[0]]))
		sb.WriteString("[^/]+")
		last = loc[1]
	}
	sb.WriteString(regexp.QuoteMeta(pattern[last:]))
	sb.WriteString("$")

	return sb.String()
}

func (m matcher) match(path string) (int, bool) {
	if index, ok := m.exact[path]; ok {
		return index, true
	}

	for _, pattern := range m.patterns {
		if pattern.re.MatchString(path) {
			return pattern.index, true
		}
	}

	return 0, false
}
