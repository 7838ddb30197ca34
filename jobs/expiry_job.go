package jobs

import (
	"log"
	"time"

	"github.com/centraladventures/trips_backend/database"
	"github.com/centraladventures/trips_backend/models"
)

// RemoveUnpaidBookings deletes every booking whose deposit was never paid
// before its deadline. The status guard in the DELETE means a booking a
// concurrent callback has just marked paid can never be swept.
func RemoveUnpaidBookings() {
	log.Println("Running job: RemoveUnpaidBookings...")

	res := database.DB.
		Where("status <> ? AND payment_deadline < ?", models.BookingStatusPaid, time.Now()).
		Delete(&models.Booking{})

	if res.Error != nil {
		log.Printf("Error removing unpaid bookings: %v", res.Error)
		return
	}

	if res.RowsAffected == 0 {
		log.Println("No expired unpaid bookings found.")
		return
	}

	log.Printf("Removed %d expired unpaid booking(s).", res.RowsAffected)
}
