package routes

import (
	"github.com/centraladventures/trips_backend/handlers"
	"github.com/centraladventures/trips_backend/middleware"
	"github.com/gofiber/fiber/v2"
)

func TripRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/trips", handlers.ListTrips)
	api.Get("/trips/:tripId", handlers.GetTrip)
	api.Get("/categories", handlers.ListTripCategories)

	admin := api.Group("/admin/trips", middleware.Protected(), middleware.AdminRequired())
	admin.Post("", handlers.CreateTrip)
	admin.Patch("/:tripId/status", handlers.UpdateTripStatus)
	admin.Delete("/:tripId", handlers.DeleteTrip)
}
