package models

import (
	"time"
)

// OAuthToken records an access token issued through the client_credentials grant
type OAuthToken struct {
	ID          uint   `gorm:"primaryKey"`
	ClientID    string `gorm:"index;not null"`
	OwnerEmail  string
	AccessToken string `gorm:"size:512;uniqueIndex;not null"`
	Scopes      string
	ExpiresAt   time.Time `gorm:"not null"`
	CreatedAt   time.Time
}

func (OAuthToken) TableName() string {
	return "oauth_tokens"
}
