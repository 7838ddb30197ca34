package handlers

import (
	"time"

	"github.com/centraladventures/trips_backend/database"
	"github.com/centraladventures/trips_backend/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type TripRequest struct {
	Title            string  `json:"title" validate:"required"`
	CategoryID       string  `json:"category_id" validate:"required,uuid"`
	Location         string  `json:"location" validate:"required"`
	Date             string  `json:"date" validate:"required"`
	Price            float64 `json:"price" validate:"required,gt=0"`
	ImageURL         string  `json:"image_url,omitempty"`
	DescriptionShort string  `json:"description_short,omitempty"`
	DescriptionFull  string  `json:"description_full,omitempty"`
	Featured         bool    `json:"featured,omitempty"`
}

func ListTrips(c *fiber.Ctx) error {
	statusFilter := c.Query("status", "all")

	query := database.DB.Preload("Category").Order("date ASC")
	switch statusFilter {
	case "all":
	case "upcoming", "success", "cancelled":
		query = query.Where("status = ?", statusFilter)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown status filter"})
	}

	if c.Query("featured") == "true" {
		query = query.Where("featured = ?", true)
	}

	var trips []models.Trip
	if err := query.Find(&trips).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch trips"})
	}

	return c.JSON(fiber.Map{"trips": trips, "status_filter": statusFilter})
}

func GetTrip(c *fiber.Ctx) error {
	tripID, err := uuid.Parse(c.Params("tripId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid trip ID format"})
	}

	var trip models.Trip
	if err := database.DB.Preload("Category").First(&trip, "id = ?", tripID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Trip not found"})
	}

	return c.JSON(fiber.Map{"trip": trip})
}

func ListTripCategories(c *fiber.Ctx) error {
	var categories []models.TripCategory
	if err := database.DB.Order("name ASC").Find(&categories).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch categories"})
	}
	return c.JSON(fiber.Map{"categories": categories})
}

func CreateTrip(c *fiber.Ctx) error {
	var req TripRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Date must be in YYYY-MM-DD format"})
	}
	categoryID, _ := uuid.Parse(req.CategoryID)

	trip := models.Trip{
		Title:            req.Title,
		CategoryID:       categoryID,
		Location:         req.Location,
		Date:             date,
		Price:            req.Price,
		ImageURL:         req.ImageURL,
		DescriptionShort: req.DescriptionShort,
		DescriptionFull:  req.DescriptionFull,
		Featured:         req.Featured,
	}

	if err := database.DB.Create(&trip).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create trip"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"trip": trip})
}

type UpdateTripStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=upcoming success cancelled"`
}

func UpdateTripStatus(c *fiber.Ctx) error {
	tripID, err := uuid.Parse(c.Params("tripId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid trip ID format"})
	}

	var req UpdateTripStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	res := database.DB.Model(&models.Trip{}).
		Where("id = ?", tripID).
		Updates(map[string]interface{}{"status": req.Status})
	if res.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update trip"})
	}
	if res.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Trip not found"})
	}

	return c.JSON(fiber.Map{"message": "Trip status updated"})
}

func DeleteTrip(c *fiber.Ctx) error {
	tripID, err := uuid.Parse(c.Params("tripId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid trip ID format"})
	}

	res := database.DB.Delete(&models.Trip{}, "id = ?", tripID)
	if res.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete trip"})
	}
	if res.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Trip not found"})
	}

	return c.JSON(fiber.Map{"message": "Trip deleted"})
}
