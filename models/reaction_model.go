package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ReactionLike    = "like"
	ReactionDislike = "dislike"
)

// Reaction records one like or dislike per user per gallery image.
type Reaction struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ImageID uuid.UUID `gorm:"not null;uniqueIndex:idx_reactions_image_user" json:"image_id"`
	UserID  uuid.UUID `gorm:"not null;uniqueIndex:idx_reactions_image_user" json:"user_id"`
	Kind    string    `gorm:"size:10;not null" json:"kind"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
