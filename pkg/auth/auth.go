package auth

type (
	Role string

	Roles map[Role]struct{}
)

func NewRoles[T ~string](names ...T) Roles {
	roles := make(Roles, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		roles[Role(name)] = struct{}{}
	}

	return roles
}

func (r Roles) Has(role Role) bool {
	_, ok := r[role]
	return ok
}

func (r Roles) HasAny(other Roles) bool {
	for role := range other {
		if r.Has(role) {
			return true
		}
	}

	return false
}

func (r Roles) Strings() []string {
	result := make([]string, 0, len(r))
	for role := range r {
		result = append(result, string(role))
	}

	return result
}
