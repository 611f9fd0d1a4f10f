package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// Identity is the decoded, signature-checked claim set of a bearer token.
// Its fields are unexported: the only way to get a non-zero Identity is TokenService.Verify,
// so code that accepts an Identity can rely on authentication having happened.
type Identity struct {
	email  string
	claims jwt.MapClaims
}

func newIdentity(claims jwt.MapClaims) Identity {
	email, _ := claims["email"].(string)
	return Identity{email: email, claims: claims}
}

// Email returns the asserted email, or "" when the token carried none
func (i Identity) Email() string {
	return i.email
}

// IsZero reports whether the identity was never verified
func (i Identity) IsZero() bool {
	return i.claims == nil
}

// Claim returns a single claim value
func (i Identity) Claim(key string) (any, bool) {
	v, ok := i.claims[key]
	return v, ok
}

// Claims returns a copy of every claim, including iat and exp
func (i Identity) Claims() map[string]any {
	out := make(map[string]any, len(i.claims))
	for k, v := range i.claims {
		out[k] = v
	}
	return out
}
