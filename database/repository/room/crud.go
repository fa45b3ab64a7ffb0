// File: database/repository/room/crud.go
package roomRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"studyrooms/models"
)

func (r *mongoRoomRepo) Create(ctx context.Context, room *models.Room) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if !room.Type.Valid() {
		return fmt.Errorf("unknown room type %q", room.Type)
	}
	if room.ID == "" {
		room.ID = uuid.New().String()
	}
	_, err := r.coll.InsertOne(ctx, room)
	return err
}

func (r *mongoRoomRepo) GetByID(ctx context.Context, id string) (*models.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var room models.Room
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&room)
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *mongoRoomRepo) ListActive(ctx context.Context) ([]models.Room, error) {
	return r.list(ctx, bson.M{"active": true})
}

func (r *mongoRoomRepo) ListByType(ctx context.Context, roomType models.RoomType) ([]models.Room, error) {
	return r.list(ctx, bson.M{"active": true, "type": roomType})
}

func (r *mongoRoomRepo) list(ctx context.Context, filter bson.M) ([]models.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rooms []models.Room
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *mongoRoomRepo) Update(ctx context.Context, room *models.Room) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if !room.Type.Valid() {
		return fmt.Errorf("unknown room type %q", room.Type)
	}
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": room.ID}, room)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoRoomRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
