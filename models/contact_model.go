package models

import (
	"time"

	"github.com/google/uuid"
)

type ContactMessage struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name    string    `gorm:"size:100;not null" json:"name"`
	Email   string    `gorm:"size:255;not null" json:"email"`
	Subject string    `gorm:"size:200;not null" json:"subject"`
	Message string    `gorm:"type:text;not null" json:"message"`

	CreatedAt time.Time `json:"created_at"`
}
