package models

import "time"

// Event represents a community event listed on the platform
type Event struct {
	ID             uint      `gorm:"primaryKey" json:"_id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Category       string    `json:"category"`
	Location       string    `json:"location"`
	ImageURL       string    `json:"image"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	Capacity       int       `json:"capacity"`
	OrganizerEmail string    `gorm:"index" json:"organizerEmail"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
