package models

import (
	"time"

	"github.com/google/uuid"
)

// Comment is an adjacency-list node: top-level comments have a nil ParentID,
// replies point at their parent. Guests comment with a display name only.
type Comment struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ImageID uuid.UUID `gorm:"not null" json:"image_id"`

	UserID    *uuid.UUID `json:"user_id"`
	GuestName *string    `gorm:"size:100" json:"guest_name"`

	ParentID *uuid.UUID `json:"parent_id"`
	Body     string     `gorm:"type:text;not null" json:"body"`

	User *User `gorm:"foreignkey:UserID" json:"user,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CommentLike records one like per user per comment. Comment likes have no
// dislike counterpart, so a repeated like simply toggles off.
type CommentLike struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CommentID uuid.UUID `gorm:"not null;uniqueIndex:idx_comment_likes_comment_user" json:"comment_id"`
	UserID    uuid.UUID `gorm:"not null;uniqueIndex:idx_comment_likes_comment_user" json:"user_id"`

	CreatedAt time.Time `json:"created_at"`
}
