package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// OAuthClient is a machine client allowed to obtain tokens with the client_credentials grant.
// Tokens issued to it assert OwnerEmail, so it is exactly as privileged as that user's stored role.
type OAuthClient struct {
	ID         string         `gorm:"primaryKey" json:"client_id"`
	Secret     string         `gorm:"not null" json:"-"` // bcrypt hash
	Name       string         `json:"name"`
	Domain     string         `json:"domain"`
	OwnerEmail string         `gorm:"index;not null" json:"owner_email"`
	Scopes     string         `json:"scopes"` // Space-separated list of allowed scopes
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (OAuthClient) TableName() string {
	return "oauth_clients"
}

// GetID implements oauth2.ClientInfo
func (c *OAuthClient) GetID() string { return c.ID }

// GetSecret implements oauth2.ClientInfo
func (c *OAuthClient) GetSecret() string { return c.Secret }

// GetDomain implements oauth2.ClientInfo
func (c *OAuthClient) GetDomain() string { return c.Domain }

// IsPublic implements oauth2.ClientInfo. Every client here is confidential.
func (c *OAuthClient) IsPublic() bool { return false }

// GetUserID implements oauth2.ClientInfo; the owner email is the user identifier.
func (c *OAuthClient) GetUserID() string { return c.OwnerEmail }

// VerifyPassword implements oauth2.ClientPasswordVerifier against the stored bcrypt hash
func (c *OAuthClient) VerifyPassword(secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(c.Secret), []byte(secret)) == nil
}
