package models

import (
	"time"

	"github.com/google/uuid"
)

type TeamMember struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name     string    `gorm:"size:200;not null" json:"name"`
	Position string    `gorm:"size:200;not null" json:"position"`
	ImageURL *string   `gorm:"size:500" json:"image_url"`
	Contact  *string   `gorm:"size:200" json:"contact"`
	Bio      *string   `gorm:"type:text" json:"bio"`
	Order    int       `gorm:"column:display_order;default:0" json:"order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
