// File: handlers/bundle.go
package handlers

// HandlerBundle groups the handlers handed to route registration.
type HandlerBundle struct {
	Booking *BookingHandler
	Room    *RoomHandler
}
