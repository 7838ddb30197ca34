package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	FullName string    `gorm:"size:255;not null" json:"full_name"`
	Email    string    `gorm:"size:255;not null;unique" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Role     string    `gorm:"size:20;not null;default:'member'" json:"role"`

	Age               *int    `json:"age"`
	County            *string `gorm:"size:100" json:"county"`
	Constituency      *string `gorm:"size:100" json:"constituency"`
	Bio               *string `gorm:"type:text" json:"bio"`
	ContactInfo       *string `gorm:"size:200" json:"contact_info"`
	ProfilePictureURL *string `gorm:"size:500" json:"profile_picture_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
