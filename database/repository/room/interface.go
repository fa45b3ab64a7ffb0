// File: database/repository/room/interface.go
package roomRepo

import (
	"context"

	"studyrooms/config"
	"studyrooms/database"
	"studyrooms/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// RoomRepository persists study room records.
type RoomRepository interface {
	Create(ctx context.Context, room *models.Room) error
	GetByID(ctx context.Context, id string) (*models.Room, error)
	ListActive(ctx context.Context) ([]models.Room, error)
	ListByType(ctx context.Context, roomType models.RoomType) ([]models.Room, error)
	Update(ctx context.Context, room *models.Room) error
	Delete(ctx context.Context, id string) error
}

type mongoRoomRepo struct {
	coll *mongo.Collection
}

// NewMongoRoomRepo constructs a new MongoDB RoomRepository.
func NewMongoRoomRepo() RoomRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoRoomRepo{
		coll: db.Collection("rooms"),
	}
}
