package handlers

import (
	"github.com/centraladventures/trips_backend/database"
	"github.com/centraladventures/trips_backend/models"
	"github.com/gofiber/fiber/v2"
)

type TeamMemberRequest struct {
	Name     string  `json:"name" validate:"required,max=200"`
	Position string  `json:"position" validate:"required,max=200"`
	ImageURL *string `json:"image_url,omitempty" validate:"omitempty,url"`
	Contact  *string `json:"contact,omitempty"`
	Bio      *string `json:"bio,omitempty"`
	Order    int     `json:"order,omitempty"`
}

func ListTeamMembers(c *fiber.Ctx) error {
	var members []models.TeamMember
	err := database.DB.Order("display_order ASC, name ASC").Find(&members).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch team"})
	}
	return c.JSON(fiber.Map{"team": members})
}

func CreateTeamMember(c *fiber.Ctx) error {
	var req TeamMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	member := models.TeamMember{
		Name:     req.Name,
		Position: req.Position,
		ImageURL: req.ImageURL,
		Contact:  req.Contact,
		Bio:      req.Bio,
		Order:    req.Order,
	}

	if err := database.DB.Create(&member).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create team member"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"member": member})
}
