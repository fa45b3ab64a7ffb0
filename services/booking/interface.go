// File: services/booking/interface.go
package booking

import (
	"context"

	bookingRepo "studyrooms/database/repository/booking"
	roomRepo "studyrooms/database/repository/room"
	"studyrooms/models"

	"github.com/go-redis/redis/v8"
)

// BookingService defines availability queries and booking lifecycle
// operations for study rooms.
type BookingService interface {
	// GetDayAvailability returns the bookable start slots for a room on a
	// given date. When durationMinutes is zero, single-slot (30 minute)
	// availability is returned.
	GetDayAvailability(ctx context.Context, roomID, date string, durationMinutes int) ([]models.AvailableSlot, error)

	// GetWeekAvailability builds the rolling booking window view for a room
	// starting at the given date.
	GetWeekAvailability(ctx context.Context, roomID, startDate string) (*models.WeekAvailability, error)

	// CreateBooking validates the request against the room's schedule and
	// persists a confirmed booking.
	CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error)

	// CancelBooking marks a booking cancelled, freeing its slots.
	CancelBooking(ctx context.Context, bookingID string) error

	// GetRoomUtilization reports the booked/free split for a room on a date.
	GetRoomUtilization(ctx context.Context, roomID, date string) (*models.UtilizationStats, error)
}

// DefaultBookingService is the production implementation backed by Mongo
// repositories and a Redis availability cache. A nil Cache disables caching.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	RoomRepo roomRepo.RoomRepository
	Cache    *redis.Client
}
