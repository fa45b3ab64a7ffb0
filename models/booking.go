package models

import "time"

// Booking statuses. Only confirmed bookings block availability.
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking represents a stored room booking record.
type Booking struct {
	ID              string    `bson:"id" json:"id"`                           // Unique booking identifier (UUID)
	RoomID          string    `bson:"room_id" json:"room_id"`                 // Room that was booked
	UserID          string    `bson:"user_id,omitempty" json:"user_id,omitempty"`
	Date            string    `bson:"date" json:"date"`                       // Booking date in "YYYY-MM-DD" format
	StartTime       string    `bson:"start_time" json:"start_time"`           // "HH:MM", 30-minute aligned
	DurationMinutes int       `bson:"duration_minutes" json:"duration_minutes"`
	Status          string    `bson:"status" json:"status"`                   // "confirmed" or "cancelled"
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updated_at"`
}

// BookingRequest is the legacy wire form submitted to create a booking.
type BookingRequest struct {
	RoomID          string `json:"room_id" binding:"required"`
	UserID          string `json:"user_id,omitempty"`
	Date            string `json:"date" binding:"required"`
	StartTime       string `json:"start_time" binding:"required"`
	DurationMinutes int    `json:"duration_minutes" binding:"required"`
}
