package routes

import (
	"github.com/centraladventures/trips_backend/handlers"
	"github.com/gofiber/fiber/v2"
)

func PaymentRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	// Gateway-facing; authenticated by the shared callback token.
	api.Post("/payments/mpesa/callback", handlers.HandleMpesaCallback)
}
