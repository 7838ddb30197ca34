package models

import (
	"time"

	"github.com/google/uuid"
)

type TripCategory struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name string    `gorm:"size:50;not null;unique" json:"name"`
}

type Trip struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title      string    `gorm:"size:200;not null" json:"title"`
	CategoryID uuid.UUID `gorm:"not null" json:"category_id"`
	Location   string    `gorm:"size:200;not null" json:"location"`
	Date       time.Time `gorm:"not null" json:"date"`
	Price      float64   `gorm:"type:numeric(10,2);not null" json:"price"`
	ImageURL   string    `gorm:"size:500" json:"image_url"`

	DescriptionShort string `gorm:"size:255" json:"description_short"`
	DescriptionFull  string `gorm:"type:text" json:"description_full"`
	Featured         bool   `gorm:"default:false" json:"featured"`

	// upcoming, success or cancelled
	Status string `gorm:"size:20;not null;default:'upcoming'" json:"status"`

	Category TripCategory `gorm:"foreignkey:CategoryID" json:"category,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
