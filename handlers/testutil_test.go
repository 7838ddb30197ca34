package handlers

import (
	"log"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/centraladventures/trips_backend/database"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockDB swaps the package-level DB for a sqlmock-backed one.
func newMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		log.Fatalf("An error '%s' was not expected when opening a stub database connection", err)
	}
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		log.Fatalf("An error '%s' was not expected when opening gorm database", err)
	}

	database.DB = gormDB
	return mock
}

// asUser wraps a handler with a stub of the JWT middleware so tests can act
// as an authenticated member without minting real tokens.
func asUser(userID uuid.UUID, role string, handler fiber.Handler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"user_id": userID.String(),
			"role":    role,
		})
		c.Locals("user", token)
		return handler(c)
	}
}
