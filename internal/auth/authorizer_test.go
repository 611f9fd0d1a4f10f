package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/franciscosanchezn/linkup-api/internal/models"
)

// fakeUsers is an in-memory UserFinder that counts lookups
type fakeUsers struct {
	users   map[string]*models.User
	err     error
	lookups int
}

func (f *fakeUsers) FindUserByEmail(ctx context.Context, email string) (*models.User, bool, error) {
	f.lookups++
	if f.err != nil {
		return nil, false, f.err
	}
	u, ok := f.users[email]
	return u, ok, nil
}

func verifiedIdentity(t *testing.T, email string) Identity {
	t.Helper()
	svc := newTestTokenService(t, nil)
	token, err := svc.Issue(map[string]any{"email": email})
	require.NoError(t, err)
	id, err := svc.Verify(token)
	require.NoError(t, err)
	return id
}

func TestAuthorizerRequire(t *testing.T) {
	store := &fakeUsers{users: map[string]*models.User{
		"admin@x.com": {Email: "admin@x.com", Role: models.RoleAdmin},
		"user@x.com":  {Email: "user@x.com", Role: models.RoleUser},
		"blank@x.com": {Email: "blank@x.com"},
	}}
	authz := NewAuthorizer(store)

	testCases := []struct {
		name    string
		email   string
		wantErr error
	}{
		{name: "admin passes", email: "admin@x.com", wantErr: nil},
		{name: "user is forbidden", email: "user@x.com", wantErr: ErrForbidden},
		{name: "missing role is forbidden", email: "blank@x.com", wantErr: ErrForbidden},
		{name: "unknown user is forbidden", email: "ghost@x.com", wantErr: ErrForbidden},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			store.lookups = 0
			err := authz.Require(context.Background(), verifiedIdentity(t, tt.email), models.RoleAdmin)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Equal(t, 1, store.lookups, "exactly one role lookup per call")
		})
	}
}

func TestAuthorizerRejectsUnverifiedIdentity(t *testing.T) {
	store := &fakeUsers{}
	authz := NewAuthorizer(store)

	err := authz.Require(context.Background(), Identity{}, models.RoleAdmin)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Zero(t, store.lookups)
}

func TestAuthorizerSeesRoleChanges(t *testing.T) {
	store := &fakeUsers{users: map[string]*models.User{
		"a@x.com": {Email: "a@x.com", Role: models.RoleAdmin},
	}}
	authz := NewAuthorizer(store)
	id := verifiedIdentity(t, "a@x.com")

	require.NoError(t, authz.Require(context.Background(), id, models.RoleAdmin))

	store.users["a@x.com"].Role = models.RoleUser
	assert.ErrorIs(t, authz.Require(context.Background(), id, models.RoleAdmin), ErrForbidden)
	assert.Equal(t, 2, store.lookups)
}

func TestAuthorizerPropagatesStorageErrors(t *testing.T) {
	boom := errors.New("connection reset")
	authz := NewAuthorizer(&fakeUsers{err: boom})

	err := authz.Require(context.Background(), verifiedIdentity(t, "a@x.com"), models.RoleAdmin)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrForbidden)
}
