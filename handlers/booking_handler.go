package handlers

import (
	"log"
	"time"

	"github.com/centraladventures/trips_backend/database"
	"github.com/centraladventures/trips_backend/models"
	"github.com/centraladventures/trips_backend/payments"
	"github.com/centraladventures/trips_backend/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Unpaid bookings are swept once this window has elapsed.
const payLaterWindow = 7 * 24 * time.Hour

type CreateBookingRequest struct {
	TripID      string `json:"trip_id" validate:"required,uuid"`
	PhoneNumber string `json:"phone_number" validate:"required"`
}

func CreateBooking(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	tripID, _ := uuid.Parse(req.TripID)

	var trip models.Trip
	if err := database.DB.First(&trip, "id = ?", tripID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Trip not found"})
	}
	if trip.Status != "upcoming" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "This trip is no longer open for booking"})
	}

	phone := payments.NormalizePhone(req.PhoneNumber)
	amount := int64(trip.Price)

	var booking models.Booking
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		reference, err := utils.GenerateUniqueBookingReference(tx)
		if err != nil {
			return err
		}

		booking = models.Booking{
			ID:              uuid.New(),
			UserID:          userID,
			TripID:          trip.ID,
			PhoneNumber:     phone,
			Amount:          amount,
			Status:          models.BookingStatusPending,
			Reference:       reference,
			PaymentDeadline: time.Now().Add(payLaterWindow),
		}
		return tx.Create(&booking).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create booking"})
	}

	stkResponse, err := payments.InitiateSTKPush(amount, phone, booking.Reference)
	if err != nil {
		log.Printf("🔥 CRITICAL: InitiateSTKPush failed for booking %s: %v", booking.Reference, err)
		// The gateway never saw this booking, so keep the table free of
		// pending rows that no callback can ever resolve.
		if delErr := database.DB.Delete(&models.Booking{}, "id = ?", booking.ID).Error; delErr != nil {
			log.Printf("🔥 Failed to remove unsubmitted booking %s: %v", booking.Reference, delErr)
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Payment could not be initiated, please try again."})
	}

	err = database.DB.Model(&models.Booking{}).
		Where("id = ?", booking.ID).
		Updates(map[string]interface{}{
			"merchant_request_id": stkResponse.MerchantRequestID,
			"checkout_request_id": stkResponse.CheckoutRequestID,
		}).Error
	if err != nil {
		log.Printf("🔥 Failed to store gateway correlation ids for booking %s: %v", booking.Reference, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update booking"})
	}

	booking.MerchantRequestID = &stkResponse.MerchantRequestID
	booking.CheckoutRequestID = &stkResponse.CheckoutRequestID

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"booking":          booking,
		"customer_message": stkResponse.CustomerMessage,
	})
}

func GetMyBookings(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var bookings []models.Booking
	err = database.DB.Preload("Trip").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch bookings"})
	}

	return c.JSON(fiber.Map{"bookings": bookings})
}

func ListAllBookings(c *fiber.Ctx) error {
	query := database.DB.Preload("User").Preload("Trip").Order("created_at DESC")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var bookings []models.Booking
	if err := query.Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch bookings"})
	}

	return c.JSON(fiber.Map{"bookings": bookings})
}

// DeclineBooking removes an unpaid booking. Paid bookings are never touched.
func DeclineBooking(c *fiber.Ctx) error {
	bookingID, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking ID format"})
	}

	res := database.DB.
		Where("id = ? AND status <> ?", bookingID, models.BookingStatusPaid).
		Delete(&models.Booking{})
	if res.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to decline booking"})
	}
	if res.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No unpaid booking with that ID"})
	}

	return c.JSON(fiber.Map{"message": "Booking declined"})
}
