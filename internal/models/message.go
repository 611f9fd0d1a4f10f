package models

import "time"

// Message is a direct chat message between two members
type Message struct {
	ID            uint      `gorm:"primaryKey" json:"_id"`
	SenderEmail   string    `gorm:"index:idx_messages_pair,priority:1;not null" json:"senderEmail"`
	ReceiverEmail string    `gorm:"index:idx_messages_pair,priority:2;not null" json:"receiverEmail"`
	Body          string    `gorm:"not null" json:"body"`
	CreatedAt     time.Time `gorm:"index" json:"createdAt"`
}
