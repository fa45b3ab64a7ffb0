// File: handlers/booking.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"studyrooms/models"
	"studyrooms/scheduling"
	"studyrooms/services/booking"
	"studyrooms/utils"
)

// BookingHandler exposes availability queries and booking lifecycle
// endpoints.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler constructs a BookingHandler with its dependencies.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// GetDayAvailabilityHandler returns the bookable start slots for a room on a
// date. Query params: date (required, YYYY-MM-DD), duration (minutes,
// optional, defaults to one slot).
func (h *BookingHandler) GetDayAvailabilityHandler(c *gin.Context) {
	roomID := c.Param("roomID")
	date := c.Query("date")
	if date == "" {
		date = time.Now().UTC().Format(scheduling.DateLayout)
	}

	duration := 0
	if raw := c.Query("duration"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid duration", "duration must be an integer number of minutes")
			return
		}
		duration = parsed
	}

	slots, err := h.Service.GetDayAvailability(c.Request.Context(), roomID, date, duration)
	if err != nil {
		utils.JSONSchedulingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"roomId": roomID,
		"date":   date,
		"slots":  slots,
	})
}

// GetWeekAvailabilityHandler returns the rolling window availability view.
// Query param: start (optional, YYYY-MM-DD, defaults to today).
func (h *BookingHandler) GetWeekAvailabilityHandler(c *gin.Context) {
	roomID := c.Param("roomID")
	start := c.Query("start")
	if start == "" {
		start = time.Now().UTC().Format(scheduling.DateLayout)
	}

	week, err := h.Service.GetWeekAvailability(c.Request.Context(), roomID, start)
	if err != nil {
		utils.JSONSchedulingError(c, err)
		return
	}

	c.JSON(http.StatusOK, week)
}

// CreateBookingHandler validates and persists a new booking.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking request", err.Error())
		return
	}

	created, err := h.Service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		utils.JSONSchedulingError(c, err)
		return
	}

	h.Logger.Info("Booking created via API",
		zap.String("bookingID", created.ID),
		zap.String("roomID", created.RoomID))
	c.JSON(http.StatusCreated, created)
}

// CancelBookingHandler marks an existing booking cancelled.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	bookingID := c.Param("id")
	if err := h.Service.CancelBooking(c.Request.Context(), bookingID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "booking not found", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to cancel booking", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled", "id": bookingID})
}

// GetRoomUtilizationHandler reports the booked/free split for a room on a
// date.
func (h *BookingHandler) GetRoomUtilizationHandler(c *gin.Context) {
	roomID := c.Param("roomID")
	date := c.Query("date")
	if date == "" {
		date = time.Now().UTC().Format(scheduling.DateLayout)
	}

	stats, err := h.Service.GetRoomUtilization(c.Request.Context(), roomID, date)
	if err != nil {
		utils.JSONSchedulingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"roomId":      roomID,
		"date":        date,
		"utilization": stats,
	})
}
