package routes

import (
	"github.com/centraladventures/trips_backend/handlers"
	"github.com/gofiber/fiber/v2"
)

func PublicRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Post("/contact", handlers.SubmitContactMessage)
	api.Get("/team", handlers.ListTeamMembers)
	api.Get("/locations/counties", handlers.ListCounties)
	api.Get("/locations/constituencies", handlers.ListConstituencies)
}
