package route

import (
	"github.com/klwxsrx/ticketgate/internal/pkg/auth"
	pkgauth "github.com/klwxsrx/ticketgate/pkg/auth"
)

func DefaultTable() Table {
	return Table{
		Public: []string{
			"/",
			"/login",
			"/signup",
			"/verify-otp",
			"/events",
			"/events/[id]",
			"/about",
			"/contact",
			"/unauthorized",
			"/blog",
			"/blog/[slug]",
			"/privacy",
			"/terms",
		},
		Auth: []string{
			"/login",
			"/signup",
			"/verify-otp",
		},
		Protected: []ProtectedRoute{
			{Pattern: "/dashboard", Roles: roles(auth.RoleAdmin, auth.RoleEventOrganizer, auth.RoleEventTeam, auth.RoleBlogEditor)},
			{Pattern: "/dashboard/events", Roles: roles(auth.RoleAdmin, auth.RoleEventOrganizer, auth.RoleEventTeam)},
			{Pattern: "/dashboard/events/create", Roles: roles(auth.RoleAdmin, auth.RoleEventOrganizer)},
			{Pattern: "/dashboard/events/[id]", Roles: roles(auth.RoleAdmin, auth.RoleEventOrganizer, auth.RoleEventTeam)},
			{Pattern: "/dashboard/events/[id]/edit", Roles: roles(auth.RoleAdmin, auth.RoleEventOrganizer)},
			{Pattern: "/dashboard/events/[id]/tickets", Roles: roles(auth.RoleAdmin, auth.RoleEventOrganizer)},
			{Pattern: "/dashboard/events/[id]/analytics", Roles: roles(auth.RoleAdmin, auth.RoleEventOrganizer)},
			{Pattern: "/dashboard/events/[id]/check-in", Roles: roles(auth.RoleAdmin, auth.RoleEventOrganizer, auth.RoleEventTeam)},
			{Pattern: "/dashboard/blog", Roles: roles(auth.RoleAdmin, auth.RoleBlogEditor)},
			{Pattern: "/dashboard/blog/create", Roles: roles(auth.RoleAdmin, auth.RoleBlogEditor)},
			{Pattern: "/dashboard/blog/[slug]/edit", Roles: roles(auth.RoleAdmin, auth.RoleBlogEditor)},
			{Pattern: "/dashboard/users", Roles: roles(auth.RoleAdmin)},
			{Pattern: "/profile"},
			{Pattern: "/my-tickets"},
			{Pattern: "/my-tickets/[id]"},
			{Pattern: "/checkout/[eventId]"},
		},
	}
}

func roles(r ...pkgauth.Role) []pkgauth.Role {
	return r
}
