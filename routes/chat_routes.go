package routes

import (
	"github.com/centraladventures/trips_backend/handlers"
	"github.com/centraladventures/trips_backend/middleware"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

func ChatRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/chat/messages", middleware.Protected(), handlers.GetChatHistory)

	api.Use("/chat/ws", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	})
	api.Get("/chat/ws", websocket.New(handlers.ServeChatWs))
}
