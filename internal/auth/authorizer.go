package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/franciscosanchezn/linkup-api/internal/models"
)

// ErrForbidden means the caller is authenticated but its stored role does not allow the operation
var ErrForbidden = errors.New("forbidden")

// UserFinder looks up a stored user by email. found is false when no record exists.
type UserFinder interface {
	FindUserByEmail(ctx context.Context, email string) (user *models.User, found bool, err error)
}

// Authorizer decides privilege from the stored user record, never from token contents.
// Every call reads storage once so role changes apply to tokens that are already out.
type Authorizer struct {
	users UserFinder
}

// NewAuthorizer creates an Authorizer backed by users
func NewAuthorizer(users UserFinder) *Authorizer {
	return &Authorizer{users: users}
}

// Require returns nil if the identity's stored role equals role, ErrForbidden if the record is
// missing or has another role, and a wrapped storage error if the lookup itself failed.
func (a *Authorizer) Require(ctx context.Context, id Identity, role string) error {
	if id.IsZero() || id.Email() == "" {
		return ErrForbidden
	}

	user, found, err := a.users.FindUserByEmail(ctx, id.Email())
	if err != nil {
		return fmt.Errorf("lookup role for %s: %w", id.Email(), err)
	}
	if !found || user.Role != role {
		return ErrForbidden
	}
	return nil
}
