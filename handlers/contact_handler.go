package handlers

import (
	"fmt"

	config "github.com/centraladventures/trips_backend/configs"
	"github.com/centraladventures/trips_backend/database"
	"github.com/centraladventures/trips_backend/models"
	"github.com/centraladventures/trips_backend/notifications"
	"github.com/gofiber/fiber/v2"
)

type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required"`
}

// SubmitContactMessage stores the message and notifies the site admin. The
// message is saved even when the email notification fails.
func SubmitContactMessage(c *fiber.Ctx) error {
	var req ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	message := models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := database.DB.Create(&message).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save message"})
	}

	go notifications.SendEmail("Admin", config.Config("ADMIN_EMAIL"),
		fmt.Sprintf("New Contact Message: %s", req.Subject),
		fmt.Sprintf("<h1>New Contact Message</h1><p><b>From:</b> %s (%s)</p><p>%s</p>", req.Name, req.Email, req.Message))

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Thank you! Your message has been sent successfully."})
}

func ListContactMessages(c *fiber.Ctx) error {
	var messages []models.ContactMessage
	if err := database.DB.Order("created_at DESC").Find(&messages).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch messages"})
	}
	return c.JSON(fiber.Map{"messages": messages})
}
