package auth

import "github.com/klwxsrx/ticketgate/pkg/auth"

const (
	RoleSuperAdmin     auth.Role = "SUPER_ADMIN"
	RoleAdmin          auth.Role = "ADMIN"
	RoleEventOrganizer auth.Role = "EVENT_ORGANIZER"
	RoleEventTeam      auth.Role = "EVENT_TEAM"
	RoleBlogEditor     auth.Role = "BLOG_EDITOR"
	RoleUser           auth.Role = "USER"
)

// CanAccessRoute grants access to super admins and to holders of any required role.
// Empty required set means the route needs authentication only.
func CanAccessRoute(required auth.Roles) auth.Permission {
	return func(roles auth.Roles) (bool, error) {
		if roles.Has(RoleSuperAdmin) {
			return true, nil
		}
		if len(required) == 0 {
			return true, nil
		}

		return roles.HasAny(required), nil
	}
}
