// File: services/booking/service.go
package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"studyrooms/config"
	"studyrooms/models"
	"studyrooms/scheduling"
	"studyrooms/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// OperatingHours returns the room's open/close hours, falling back to the
// configured defaults when the room record carries none.
func OperatingHours(room *models.Room) (int, int) {
	if room.OpenHour == 0 && room.CloseHour == 0 {
		return config.AppConfig.DefaultOpenHour, config.AppConfig.DefaultCloseHour
	}
	return room.OpenHour, room.CloseHour
}

// buildSchedule loads the room's confirmed bookings for a date and folds them
// into an immutable daily schedule.
func (s *DefaultBookingService) buildSchedule(ctx context.Context, room *models.Room, date string) (scheduling.DailySchedule, error) {
	day, err := time.Parse(scheduling.DateLayout, date)
	if err != nil {
		return scheduling.DailySchedule{}, &scheduling.SlotError{
			Code:    scheduling.CodeInvalidFormat,
			Message: fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", date),
		}
	}

	bookings, err := s.Repo.FindConfirmedByRoomAndDate(ctx, room.ID, date)
	if err != nil {
		return scheduling.DailySchedule{}, fmt.Errorf("failed to load bookings for room %s on %s: %w", room.ID, date, err)
	}

	booked := make([]scheduling.TimeRange, 0, len(bookings))
	for _, b := range bookings {
		r, err := scheduling.RangeFromLegacy(b.StartTime, b.DurationMinutes)
		if err != nil {
			return scheduling.DailySchedule{}, fmt.Errorf("stored booking %s is malformed: %w", b.ID, err)
		}
		booked = append(booked, r)
	}

	openHour, closeHour := OperatingHours(room)
	return scheduling.NewDailySchedule(day, openHour, closeHour, booked)
}

func (s *DefaultBookingService) GetDayAvailability(ctx context.Context, roomID, date string, durationMinutes int) ([]models.AvailableSlot, error) {
	logger := utils.GetLogger()

	if durationMinutes == 0 {
		durationMinutes = scheduling.SlotMinutes
	}

	cacheKey := utils.AvailabilityCacheKey(roomID, date, durationMinutes)
	if s.Cache != nil {
		cached, err := s.Cache.Get(ctx, cacheKey).Result()
		if err == nil {
			var slots []models.AvailableSlot
			if err := json.Unmarshal([]byte(cached), &slots); err == nil {
				return slots, nil
			}
			logger.Warn("Discarding corrupt availability cache entry", zap.String("key", cacheKey))
		} else if err != redis.Nil {
			logger.Warn("Availability cache read failed", zap.String("key", cacheKey), zap.Error(err))
		}
	}

	room, err := s.RoomRepo.GetByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch room %s: %w", roomID, err)
	}

	schedule, err := s.buildSchedule(ctx, room, date)
	if err != nil {
		return nil, err
	}

	starts, err := schedule.AvailableSlotsForDuration(durationMinutes)
	if err != nil {
		return nil, err
	}

	slots := make([]models.AvailableSlot, 0, len(starts))
	for _, slot := range starts {
		slots = append(slots, models.AvailableSlot{
			Time:        slot.String(),
			DisplayTime: slot.DisplayString(),
			Minutes:     slot.Minutes(),
		})
	}

	if s.Cache != nil {
		if data, err := json.Marshal(slots); err == nil {
			if err := s.Cache.Set(ctx, cacheKey, data, utils.AvailabilityCacheTTL).Err(); err != nil {
				logger.Warn("Availability cache write failed", zap.String("key", cacheKey), zap.Error(err))
			}
		}
	}

	return slots, nil
}

func (s *DefaultBookingService) GetWeekAvailability(ctx context.Context, roomID, startDate string) (*models.WeekAvailability, error) {
	room, err := s.RoomRepo.GetByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch room %s: %w", roomID, err)
	}

	start, err := time.Parse(scheduling.DateLayout, startDate)
	if err != nil {
		return nil, &scheduling.SlotError{
			Code:    scheduling.CodeInvalidFormat,
			Message: fmt.Sprintf("invalid start date %q, expected YYYY-MM-DD", startDate),
		}
	}

	openHour, closeHour := OperatingHours(room)
	window, err := scheduling.NewBookingWindow(roomID, start, config.AppConfig.WindowDays, openHour, closeHour)
	if err != nil {
		return nil, err
	}
	if err := window.Refresh(ctx, s.Repo); err != nil {
		return nil, fmt.Errorf("failed to refresh booking window for room %s: %w", roomID, err)
	}

	days := make([]models.DayAvailability, 0, window.Days())
	for _, date := range window.Dates() {
		schedule, ok := window.Schedule(date)
		if !ok {
			continue
		}
		starts := schedule.AvailableSlots()
		slots := make([]models.AvailableSlot, 0, len(starts))
		for _, slot := range starts {
			slots = append(slots, models.AvailableSlot{
				Time:        slot.String(),
				DisplayTime: slot.DisplayString(),
				Minutes:     slot.Minutes(),
			})
		}
		days = append(days, models.DayAvailability{
			Date:        date,
			Slots:       slots,
			Utilization: schedule.Stats(),
		})
	}

	summary := window.Summary()
	return &models.WeekAvailability{
		RoomID:             roomID,
		WindowStart:        window.WindowStart().Format(scheduling.DateLayout),
		Days:               days,
		AverageUtilization: summary.AverageUtilization,
		TotalBookings:      summary.TotalBookings,
	}, nil
}

func (s *DefaultBookingService) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	logger := utils.GetLogger()

	r, err := scheduling.RangeFromLegacy(req.StartTime, req.DurationMinutes)
	if err != nil {
		return nil, err
	}

	room, err := s.RoomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch room %s: %w", req.RoomID, err)
	}
	if !room.Active {
		return nil, &scheduling.SlotError{
			Code:    scheduling.CodeUnavailable,
			Message: fmt.Sprintf("room %s is not open for booking", room.ID),
		}
	}

	info, ok := room.Type.Info()
	if !ok {
		return nil, &scheduling.SlotError{
			Code:    scheduling.CodeWrongRoom,
			Message: fmt.Sprintf("room %s has unknown type %q", room.ID, room.Type),
		}
	}
	if r.DurationMinutes() > info.MaxDurationMinutes {
		return nil, &scheduling.SlotError{
			Code: scheduling.CodeInvalidDuration,
			Message: fmt.Sprintf("%s rooms allow at most %d minutes, got %d",
				room.Type, info.MaxDurationMinutes, r.DurationMinutes()),
		}
	}
	openHour, closeHour := OperatingHours(room)
	if !r.WithinOperatingHours(openHour, closeHour) {
		return nil, &scheduling.SlotError{
			Code: scheduling.CodeOutOfRange,
			Message: fmt.Sprintf("range %s is outside operating hours %02d:00-%02d:00",
				r, openHour, closeHour),
		}
	}

	schedule, err := s.buildSchedule(ctx, room, req.Date)
	if err != nil {
		return nil, err
	}
	if !schedule.IsAvailable(r) {
		return nil, &scheduling.SlotError{
			Code:    scheduling.CodeUnavailable,
			Message: fmt.Sprintf("range %s on %s conflicts with an existing booking", r, req.Date),
		}
	}

	booking := &models.Booking{
		RoomID:          req.RoomID,
		UserID:          req.UserID,
		Date:            req.Date,
		StartTime:       r.Start().String(),
		DurationMinutes: r.DurationMinutes(),
		Status:          models.BookingStatusConfirmed,
	}
	if err := s.Repo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	if s.Cache != nil {
		if err := utils.InvalidateAvailability(ctx, s.Cache, req.RoomID, req.Date); err != nil {
			logger.Warn("Failed to invalidate availability cache",
				zap.String("roomID", req.RoomID), zap.String("date", req.Date), zap.Error(err))
		}
	}

	logger.Info("Booking confirmed",
		zap.String("bookingID", booking.ID),
		zap.String("roomID", booking.RoomID),
		zap.String("date", booking.Date),
		zap.String("range", r.String()))
	return booking, nil
}

func (s *DefaultBookingService) CancelBooking(ctx context.Context, bookingID string) error {
	logger := utils.GetLogger()

	booking, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("failed to fetch booking %s: %w", bookingID, err)
	}
	if booking.Status == models.BookingStatusCancelled {
		return nil
	}

	if err := s.Repo.UpdateStatus(ctx, bookingID, models.BookingStatusCancelled); err != nil {
		return fmt.Errorf("failed to cancel booking %s: %w", bookingID, err)
	}

	if s.Cache != nil {
		if err := utils.InvalidateAvailability(ctx, s.Cache, booking.RoomID, booking.Date); err != nil {
			logger.Warn("Failed to invalidate availability cache",
				zap.String("roomID", booking.RoomID), zap.String("date", booking.Date), zap.Error(err))
		}
	}

	logger.Info("Booking cancelled", zap.String("bookingID", bookingID))
	return nil
}

func (s *DefaultBookingService) GetRoomUtilization(ctx context.Context, roomID, date string) (*models.UtilizationStats, error) {
	room, err := s.RoomRepo.GetByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch room %s: %w", roomID, err)
	}

	schedule, err := s.buildSchedule(ctx, room, date)
	if err != nil {
		return nil, err
	}

	stats := schedule.Stats()
	return &stats, nil
}
