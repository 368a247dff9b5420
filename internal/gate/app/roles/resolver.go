//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Resolver=Resolver"
package roles

import (
	"context"
	"errors"
)

var ErrRoleFetch = errors.New("failed to fetch roles")

// Resolver asks the identity backend for the role names granted to the token owner.
type Resolver interface {
	FetchRoles(ctx context.Context, accessToken string) ([]string, error)
}
