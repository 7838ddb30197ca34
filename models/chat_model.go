package models

import (
	"time"

	"github.com/google/uuid"
)

type ChatMessage struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SenderID uuid.UUID `gorm:"not null" json:"sender_id"`
	Body     string    `gorm:"type:text;not null" json:"body"`

	Sender User `gorm:"foreignkey:SenderID" json:"sender,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
