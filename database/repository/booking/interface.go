// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"

	"studyrooms/config"
	"studyrooms/database"
	"studyrooms/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository persists booking records. FindConfirmedByRoomAndDate
// satisfies scheduling.BookingStore.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	FindConfirmedByRoomAndDate(ctx context.Context, roomID, date string) ([]models.Booking, error)
	FindByRoom(ctx context.Context, roomID string, limit int64) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) error
	DeleteBefore(ctx context.Context, date string) (int64, error)
	EnsureIndexes() error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
