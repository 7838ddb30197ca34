package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownloadGalleryMedia_RedirectsToStoredURL(t *testing.T) {
	mock := newMockDB(t)
	imageID := uuid.New()
	mediaURL := "https://res.cloudinary.com/demo/image/upload/central_adventures_gallery/summit.jpg"

	mock.ExpectQuery(`SELECT \* FROM "gallery_images"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "trip_id", "media_url", "media_type"}).
			AddRow(imageID.String(), uuid.NewString(), mediaURL, "image"))

	app := fiber.New()
	app.Get("/api/v1/gallery/:imageId/download", DownloadGalleryMedia)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/gallery/"+imageID.String()+"/download", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, mediaURL, resp.Header.Get("Location"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDownloadGalleryMedia_UnknownImage(t *testing.T) {
	mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "gallery_images"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	app := fiber.New()
	app.Get("/api/v1/gallery/:imageId/download", DownloadGalleryMedia)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/gallery/"+uuid.NewString()+"/download", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
