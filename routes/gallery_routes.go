package routes

import (
	"github.com/centraladventures/trips_backend/handlers"
	"github.com/centraladventures/trips_backend/middleware"
	"github.com/gofiber/fiber/v2"
)

func GalleryRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/gallery", handlers.ListGalleryImages)
	api.Get("/gallery/:imageId/comments", handlers.ListComments)
	api.Get("/gallery/:imageId/download", handlers.DownloadGalleryMedia)
	api.Post("/gallery/:imageId/comments", middleware.OptionalAuth(), handlers.CreateComment)

	protected := api.Group("/gallery", middleware.Protected())
	protected.Post("", handlers.CreateGalleryImage)
	protected.Get("/upload-signature", handlers.GenerateUploadSignature)
	protected.Post("/:imageId/reactions", handlers.ReactToImage)
	protected.Put("/comments/:commentId", handlers.UpdateComment)
	protected.Delete("/comments/:commentId", handlers.DeleteComment)
	protected.Post("/comments/:commentId/like", handlers.ToggleCommentLike)
}
