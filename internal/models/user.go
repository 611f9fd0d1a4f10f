package models

import (
	"time"
)

// Roles stored on a user record. An empty role is treated as RoleUser.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is a registered community member. Email is the identity asserted in tokens;
// Role is the only source of privilege and is re-read on every admin-gated call.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"_id"`
	Email     string    `gorm:"size:191;uniqueIndex;not null" json:"email"`
	Name      string    `json:"name,omitempty"`
	PhotoURL  string    `json:"photoURL,omitempty"`
	Role      string    `gorm:"default:'user'" json:"role,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsAdmin reports whether the stored role grants admin privileges.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
