package utils

import (
	"log"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
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

	return gormDB, mock
}

func TestGenerateUniqueBookingReference(t *testing.T) {
	gormDB, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "bookings" WHERE reference`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	code, err := GenerateUniqueBookingReference(gormDB)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(code, "CA-"))
	assert.Len(t, code, len("CA-")+referenceLength)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGenerateUniqueBookingReference_RetriesOnCollision(t *testing.T) {
	gormDB, mock := newMockDB(t)

	// First draw collides with an existing booking, second one is free.
	mock.ExpectQuery(`SELECT \* FROM "bookings" WHERE reference`).
		WillReturnRows(sqlmock.NewRows([]string{"reference"}).AddRow("CA-TAKEN001"))
	mock.ExpectQuery(`SELECT \* FROM "bookings" WHERE reference`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	code, err := GenerateUniqueBookingReference(gormDB)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(code, "CA-"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
