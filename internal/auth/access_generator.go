package auth

import (
	"context"
	"fmt"

	"github.com/go-oauth2/oauth2/v4"
)

// AccessGenerate issues OAuth access tokens as identity tokens: the client's owner email becomes
// the email claim, so the bearer gate and the stored-role check treat them like any other token.
type AccessGenerate struct {
	tokens *TokenService
}

// NewAccessGenerate creates an access token generator signing with tokens
func NewAccessGenerate(tokens *TokenService) *AccessGenerate {
	return &AccessGenerate{tokens: tokens}
}

// Token generates a JWT access token with the owner email and client audience.
// This method is called by the OAuth2 library to generate access tokens
func (g *AccessGenerate) Token(ctx context.Context, data *oauth2.GenerateBasic, isGenRefresh bool) (string, string, error) {
	// For client_credentials GenerateBasic.UserID is empty, so the owner comes from the client
	email := data.UserID
	if email == "" {
		email = data.Client.GetUserID()
	}
	if email == "" {
		return "", "", fmt.Errorf("cannot generate token: client %s has no owner", data.Client.GetID())
	}

	claims := map[string]any{
		"email": email,
		"aud":   data.Client.GetID(),
	}
	if data.TokenInfo.GetScope() != "" {
		claims["scope"] = data.TokenInfo.GetScope()
	}

	access, err := g.tokens.Issue(claims)
	if err != nil {
		return "", "", err
	}
	return access, "", nil
}
