package auth

import (
	"github.com/go-oauth2/oauth2/v4"
	"github.com/go-oauth2/oauth2/v4/manage"
	"github.com/go-oauth2/oauth2/v4/server"
	"gorm.io/gorm"
)

// OAuthService serves the client_credentials grant for machine clients.
// Access tokens are signed by the same TokenService the bearer gate verifies with.
type OAuthService struct {
	server *server.Server
}

func NewOAuthService(db *gorm.DB, tokens *TokenService) *OAuthService {
	manager := manage.NewDefaultManager()
	manager.SetClientTokenCfg(&manage.Config{
		AccessTokenExp:    tokens.TTL(),
		IsGenerateRefresh: false,
	})

	// Use JWT for access tokens
	manager.MapAccessGenerate(NewAccessGenerate(tokens))

	// Configure token store
	manager.MustTokenStorage(NewGormTokenStore(db), nil)

	// Configure client store
	manager.MapClientStorage(NewGormClientStore(db))

	srv := server.NewDefaultServer(manager)
	srv.SetAllowedGrantType(oauth2.ClientCredentials)
	srv.SetClientInfoHandler(server.ClientFormHandler)

	return &OAuthService{server: srv}
}
