package routes

import (
	"github.com/centraladventures/trips_backend/handlers"
	"github.com/centraladventures/trips_backend/middleware"
	"github.com/gofiber/fiber/v2"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())
	admin.Get("/contact-messages", handlers.ListContactMessages)
	admin.Post("/team", handlers.CreateTeamMember)
}
