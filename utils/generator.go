package utils

import (
	"math/rand"
	"time"

	"github.com/centraladventures/trips_backend/models"
	"gorm.io/gorm"
)

const referenceLength = 8
const letterBytes = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateUniqueBookingReference returns a short code, prefixed "CA-", that no
// existing booking uses. The reference is the correlation id carried in the
// STK push AccountReference field.
func GenerateUniqueBookingReference(tx *gorm.DB) (string, error) {
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))

	for {
		b := make([]byte, referenceLength)
		for i := range b {
			b[i] = letterBytes[seededRand.Intn(len(letterBytes))]
		}
		code := "CA-" + string(b)

		var booking models.Booking
		err := tx.Where("reference = ?", code).First(&booking).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return code, nil
			}
			return "", err
		}
	}
}
