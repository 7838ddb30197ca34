package jobs

import (
	"log"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/centraladventures/trips_backend/database"
	"github.com/centraladventures/trips_backend/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

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

func TestRemoveUnpaidBookings(t *testing.T) {
	mock := newMockDB(t)

	// The status guard is what keeps a just-paid booking out of the sweep.
	mock.ExpectExec(`DELETE FROM "bookings" WHERE status <> \$1 AND payment_deadline < \$2`).
		WithArgs(models.BookingStatusPaid, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 3))

	RemoveUnpaidBookings()

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoveUnpaidBookings_NothingExpired(t *testing.T) {
	mock := newMockDB(t)

	mock.ExpectExec(`DELETE FROM "bookings" WHERE status <> \$1 AND payment_deadline < \$2`).
		WithArgs(models.BookingStatusPaid, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	RemoveUnpaidBookings()

	assert.NoError(t, mock.ExpectationsWereMet())
}
