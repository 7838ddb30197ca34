package handlers

import (
	"log"
	"strconv"

	config "github.com/centraladventures/trips_backend/configs"
	"github.com/centraladventures/trips_backend/database"
	"github.com/centraladventures/trips_backend/models"
	"github.com/centraladventures/trips_backend/notifications"
	"github.com/centraladventures/trips_backend/services"
	"github.com/gofiber/fiber/v2"
)

type MpesaCallbackPayload struct {
	Body struct {
		StkCallback struct {
			MerchantRequestID string `json:"MerchantRequestID"`
			CheckoutRequestID string `json:"CheckoutRequestID"`
			ResultCode        int    `json:"ResultCode"`
			ResultDesc        string `json:"ResultDesc"`
			CallbackMetadata  struct {
				Item []struct {
					Name  string      `json:"Name"`
					Value interface{} `json:"Value"`
				} `json:"Item"`
			} `json:"CallbackMetadata"`
		} `json:"stkCallback"`
	} `json:"Body"`
}

// extractCallbackMetadata pulls the receipt number, amount and payer phone out
// of the gateway's name/value item list.
func extractCallbackMetadata(items []struct {
	Name  string      `json:"Name"`
	Value interface{} `json:"Value"`
}) (receipt string, amount int64, phone string) {
	for _, item := range items {
		switch item.Name {
		case "MpesaReceiptNumber":
			if val, ok := item.Value.(string); ok {
				receipt = val
			}
		case "Amount":
			if val, ok := item.Value.(float64); ok {
				amount = int64(val)
			}
		case "PhoneNumber":
			switch val := item.Value.(type) {
			case float64:
				phone = strconv.FormatFloat(val, 'f', -1, 64)
			case string:
				phone = val
			}
		}
	}
	return receipt, amount, phone
}

// HandleMpesaCallback finalizes a booking from the gateway's asynchronous
// result. The status transition is a single conditional update keyed on the
// CheckoutRequestID stored at initiation, so redelivered callbacks and races
// with the expiry sweeper are both no-ops.
func HandleMpesaCallback(c *fiber.Ctx) error {
	if secret := config.Config("MPESA_CALLBACK_SECRET"); secret != "" {
		if c.Query("token") != secret {
			log.Println("⚠️ Rejected M-Pesa callback with bad or missing token")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid callback token"})
		}
	} else {
		log.Println("⚠️ MPESA_CALLBACK_SECRET is not set; accepting callback unverified")
	}

	var payload MpesaCallbackPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse callback payload"})
	}

	stk := payload.Body.StkCallback
	if stk.CheckoutRequestID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing CheckoutRequestID"})
	}

	log.Printf("Received M-Pesa callback for CheckoutRequestID: %s, ResultCode: %d",
		stk.CheckoutRequestID, stk.ResultCode)

	if stk.ResultCode != 0 {
		res := database.DB.Model(&models.Booking{}).
			Where("checkout_request_id = ? AND status = ?", stk.CheckoutRequestID, models.BookingStatusPending).
			Updates(map[string]interface{}{"status": models.BookingStatusFailed})
		if res.Error != nil {
			log.Printf("🔥 Failed to mark booking failed for %s: %v", stk.CheckoutRequestID, res.Error)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process callback"})
		}
		if res.RowsAffected == 0 {
			log.Printf("Failure callback for %s matched no pending booking, ignoring", stk.CheckoutRequestID)
		}
		return c.JSON(fiber.Map{"ResultCode": 0, "ResultDesc": "Accepted"})
	}

	receipt, amount, phone := extractCallbackMetadata(stk.CallbackMetadata.Item)
	if receipt == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing MpesaReceiptNumber in callback metadata"})
	}

	res := database.DB.Model(&models.Booking{}).
		Where("checkout_request_id = ? AND status = ?", stk.CheckoutRequestID, models.BookingStatusPending).
		Updates(map[string]interface{}{
			"status":        models.BookingStatusPaid,
			"mpesa_receipt": receipt,
		})
	if res.Error != nil {
		log.Printf("🔥 CRITICAL: Failed to mark booking paid for %s: %v", stk.CheckoutRequestID, res.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process callback"})
	}

	if res.RowsAffected == 0 {
		// Duplicate delivery or an id we never issued: either way nothing to do.
		log.Printf("Success callback for %s matched no pending booking, ignoring", stk.CheckoutRequestID)
		return c.JSON(fiber.Map{"ResultCode": 0, "ResultDesc": "Accepted"})
	}

	log.Printf("✅ Booking paid: CheckoutRequestID %s, receipt %s, amount %d, phone %s",
		stk.CheckoutRequestID, receipt, amount, phone)

	checkoutRequestID := stk.CheckoutRequestID
	go func() {
		if notifications.EmailClient == nil {
			return
		}
		var booking models.Booking
		if err := database.DB.Preload("User").Preload("Trip").
			First(&booking, "checkout_request_id = ?", checkoutRequestID).Error; err != nil {
			log.Printf("Failed to load booking for confirmation email: %v", err)
			return
		}
		notifications.SendEmail(booking.User.FullName, booking.User.Email,
			"Your Trip Deposit is Confirmed!",
			"<h1>Deposit Received</h1><p>Your M-Pesa payment for "+booking.Trip.Title+" was successful. Receipt: "+receipt+". See you on the trip!</p>")
	}()
	go services.GenerateBookingReceipt(checkoutRequestID)

	return c.JSON(fiber.Map{"ResultCode": 0, "ResultDesc": "Accepted"})
}
