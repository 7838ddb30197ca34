package handlers

import (
	"net/url"
	"strconv"
	"time"

	config "github.com/centraladventures/trips_backend/configs"
	"github.com/centraladventures/trips_backend/database"
	"github.com/centraladventures/trips_backend/models"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const galleryUploadFolder = "central_adventures_gallery"

type CreateGalleryImageRequest struct {
	TripID    string `json:"trip_id" validate:"required,uuid"`
	MediaURL  string `json:"media_url" validate:"required,url"`
	MediaType string `json:"media_type" validate:"omitempty,oneof=image video"`
	Caption   string `json:"caption,omitempty"`
}

func ListGalleryImages(c *fiber.Ctx) error {
	query := database.DB.Preload("UploadedBy").Order("created_at DESC")

	if tripParam := c.Query("trip_id"); tripParam != "" {
		tripID, err := uuid.Parse(tripParam)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid trip ID format"})
		}
		query = query.Where("trip_id = ?", tripID)
	}

	var images []models.GalleryImage
	if err := query.Find(&images).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch gallery"})
	}

	return c.JSON(fiber.Map{"images": images})
}

func CreateGalleryImage(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var req CreateGalleryImageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	tripID, _ := uuid.Parse(req.TripID)

	var trip models.Trip
	if err := database.DB.First(&trip, "id = ?", tripID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Trip not found"})
	}

	mediaType := req.MediaType
	if mediaType == "" {
		mediaType = "image"
	}

	image := models.GalleryImage{
		TripID:       trip.ID,
		MediaURL:     req.MediaURL,
		MediaType:    mediaType,
		Caption:      req.Caption,
		UploadedByID: &userID,
	}

	if err := database.DB.Create(&image).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save gallery item"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"image": image})
}

// DownloadGalleryMedia sends the caller to the stored media URL. The files
// live on Cloudinary, so a redirect is the download.
func DownloadGalleryMedia(c *fiber.Ctx) error {
	imageID, err := uuid.Parse(c.Params("imageId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid image ID format"})
	}

	var image models.GalleryImage
	if err := database.DB.First(&image, "id = ?", imageID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Gallery item not found"})
	}

	return c.Redirect(image.MediaURL, fiber.StatusFound)
}

// GenerateUploadSignature creates a secure signature for a frontend upload to
// the gallery folder on Cloudinary.
func GenerateUploadSignature(c *fiber.Ctx) error {
	cloudinaryURL := config.Config("CLOUDINARY_URL")
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to initialize Cloudinary"})
	}

	parsedURL, err := url.Parse(cloudinaryURL)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to parse Cloudinary URL"})
	}
	secret, _ := parsedURL.User.Password()

	paramsToSign, err := api.StructToParams(uploader.UploadParams{
		Folder: galleryUploadFolder,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to prepare signature params"})
	}

	timestamp := time.Now().Unix()
	paramsToSign.Set("timestamp", strconv.FormatInt(timestamp, 10))

	signature, err := api.SignParameters(paramsToSign, secret)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to sign upload params"})
	}

	return c.JSON(fiber.Map{
		"signature": signature,
		"timestamp": timestamp,
		"api_key":   cld.Config.Cloud.APIKey,
		"folder":    galleryUploadFolder,
	})
}
