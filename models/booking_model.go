package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	BookingStatusPending = "pending"
	BookingStatusPaid    = "paid"
	BookingStatusFailed  = "failed"
)

// Booking holds a seat on a trip until the deposit is paid via M-Pesa.
// The ID is assigned in Go so a booking is addressable before the row exists.
// Reference is the correlation id embedded in the outbound STK push; the
// gateway's CheckoutRequestID is stored at initiation time and is the key the
// callback reconciler matches on.
type Booking struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID uuid.UUID `gorm:"not null" json:"user_id"`
	TripID uuid.UUID `gorm:"not null" json:"trip_id"`

	PhoneNumber string `gorm:"size:20;not null" json:"phone_number"`
	Amount      int64  `gorm:"not null" json:"amount"`
	Status      string `gorm:"size:20;not null;default:'pending'" json:"status"`

	Reference         string  `gorm:"size:20;not null;unique" json:"reference"`
	MerchantRequestID *string `gorm:"size:255" json:"merchant_request_id"`
	CheckoutRequestID *string `gorm:"size:255;unique" json:"checkout_request_id"`
	MpesaReceipt      *string `gorm:"size:50" json:"mpesa_receipt"`
	ReceiptURL        *string `gorm:"size:500" json:"receipt_url"`

	PaymentDeadline time.Time `gorm:"not null" json:"payment_deadline"`

	User User `gorm:"foreignkey:UserID" json:"user,omitempty"`
	Trip Trip `gorm:"foreignkey:TripID" json:"trip,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
