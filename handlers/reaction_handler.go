package handlers

import (
	"errors"

	"github.com/centraladventures/trips_backend/database"
	"github.com/centraladventures/trips_backend/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReactionRequest struct {
	Kind string `json:"kind" validate:"required,oneof=like dislike"`
}

// reactionOutcome decides what a new reaction of the given kind does to the
// user's existing reaction on the image: add when there is none, remove when
// it repeats the same kind, switch otherwise.
func reactionOutcome(existing *models.Reaction, kind string) string {
	if existing == nil {
		return "added"
	}
	if existing.Kind == kind {
		return "removed"
	}
	return "switched"
}

// ReactToImage toggles the caller's like/dislike on a gallery item.
func ReactToImage(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	imageID, err := uuid.Parse(c.Params("imageId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid image ID format"})
	}

	var req ReactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var image models.GalleryImage
	if err := database.DB.First(&image, "id = ?", imageID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Gallery item not found"})
	}

	var action string
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.Reaction
		err := tx.Where("image_id = ? AND user_id = ?", image.ID, userID).First(&existing).Error

		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			action = reactionOutcome(nil, req.Kind)
			reaction := models.Reaction{ImageID: image.ID, UserID: userID, Kind: req.Kind}
			return tx.Create(&reaction).Error
		case err != nil:
			return err
		}

		action = reactionOutcome(&existing, req.Kind)
		if action == "removed" {
			return tx.Delete(&models.Reaction{}, "id = ?", existing.ID).Error
		}
		return tx.Model(&models.Reaction{}).
			Where("id = ?", existing.ID).
			Updates(map[string]interface{}{"kind": req.Kind}).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record reaction"})
	}

	var likes, dislikes int64
	database.DB.Model(&models.Reaction{}).Where("image_id = ? AND kind = ?", image.ID, models.ReactionLike).Count(&likes)
	database.DB.Model(&models.Reaction{}).Where("image_id = ? AND kind = ?", image.ID, models.ReactionDislike).Count(&dislikes)

	return c.JSON(fiber.Map{
		"action":   action,
		"likes":    likes,
		"dislikes": dislikes,
	})
}
