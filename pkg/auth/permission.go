package auth

import (
	"errors"
	"fmt"
)

var ErrPermissionDenied = errors.New("permission denied")

type Permission func(Roles) (bool, error)

func CheckRoles(roles Roles, permission Permission) error {
	allowed, err := permission(roles)
	if err != nil {
		return fmt.Errorf("check permission: %w", err)
	}
	if !allowed {
		return ErrPermissionDenied
	}

	return nil
}
