package auth

import "context"

const rolesContextKey contextKey = iota

type contextKey int

func WithRoles(ctx context.Context, roles Roles) context.Context {
	return context.WithValue(ctx, rolesContextKey, roles)
}

func RolesFromContext(ctx context.Context) (Roles, bool) {
	roles, ok := ctx.Value(rolesContextKey).(Roles)
	return roles, ok
}
