package routes

import (
	"github.com/centraladventures/trips_backend/handlers"
	"github.com/centraladventures/trips_backend/middleware"
	"github.com/gofiber/fiber/v2"
)

func BookingRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	booking := api.Group("/bookings", middleware.Protected())
	booking.Get("/me", handlers.GetMyBookings)
	booking.Post("", handlers.CreateBooking)

	admin := api.Group("/admin/bookings", middleware.Protected(), middleware.AdminRequired())
	admin.Get("", handlers.ListAllBookings)
	admin.Delete("/:bookingId", handlers.DeclineBooking)
}
