package models

import (
	"time"

	"github.com/google/uuid"
)

type GalleryImage struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	TripID uuid.UUID `gorm:"not null" json:"trip_id"`

	MediaURL string `gorm:"size:500;not null" json:"media_url"`
	// image or video
	MediaType string `gorm:"size:10;not null;default:'image'" json:"media_type"`
	Caption   string `gorm:"type:text" json:"caption"`

	UploadedByID *uuid.UUID `json:"uploaded_by_id"`
	UploadedBy   *User      `gorm:"foreignkey:UploadedByID" json:"uploaded_by,omitempty"`

	Comments  []Comment  `gorm:"foreignkey:ImageID" json:"comments,omitempty"`
	Reactions []Reaction `gorm:"foreignkey:ImageID" json:"reactions,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
