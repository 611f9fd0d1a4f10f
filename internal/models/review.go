package models

import "time"

// Review is a rating left by a member
type Review struct {
	ID          uint      `gorm:"primaryKey" json:"_id"`
	EventID     *uint     `gorm:"index" json:"eventId,omitempty"`
	AuthorEmail string    `gorm:"index" json:"email"`
	AuthorName  string    `json:"name"`
	Rating      int       `json:"rating"`
	Details     string    `json:"details"`
	CreatedAt   time.Time `json:"createdAt"`
}
