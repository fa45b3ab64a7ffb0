package scheduling

import (
	"context"
	"sort"
	"time"

	"studyrooms/models"
)

// DefaultWindowDays is the rolling window length when none is given.
const DefaultWindowDays = 7

// BookingStore is the storage collaborator the window rebuilds from. Only
// confirmed-status bookings participate in blocking availability.
type BookingStore interface {
	FindConfirmedByRoomAndDate(ctx context.Context, roomID, date string) ([]models.Booking, error)
}

// WindowSummary aggregates a window's utilization and bookkeeping totals.
type WindowSummary struct {
	RoomID             string  `json:"roomId"`
	Days               int     `json:"days"`
	AverageUtilization float64 `json:"averageUtilization"`
	TotalBookings      int     `json:"totalBookings"`
}

// BookingWindow holds one room's DailySchedules across a contiguous date
// range. It owns its schedules exclusively; writes perform a
// read-modify-replace on the day's schedule and must be serialized by the
// caller when shared across goroutines.
type BookingWindow struct {
	roomID    string
	start     time.Time
	days      int
	startHour int
	endHour   int
	schedules map[string]DailySchedule
	bookings  []models.Booking
}

// NewBookingWindow creates a window of empty schedules starting at the given
// date, normalized to midnight. A non-positive days falls back to
// DefaultWindowDays.
func NewBookingWindow(roomID string, start time.Time, days, startHour, endHour int) (*BookingWindow, error) {
	if days <= 0 {
		days = DefaultWindowDays
	}
	w := &BookingWindow{
		roomID:    roomID,
		start:     normalizeDate(start),
		days:      days,
		startHour: startHour,
		endHour:   endHour,
		schedules: make(map[string]DailySchedule, days),
	}
	for i := 0; i < days; i++ {
		day := w.start.AddDate(0, 0, i)
		sched, err := NewDailySchedule(day, startHour, endHour, nil)
		if err != nil {
			return nil, err
		}
		w.schedules[sched.DateKey()] = sched
	}
	return w, nil
}

// RoomID returns the room this window tracks.
func (w *BookingWindow) RoomID() string { return w.roomID }

// WindowStart returns the first day of the window.
func (w *BookingWindow) WindowStart() time.Time { return w.start }

// Days returns the window length in days.
func (w *BookingWindow) Days() int { return w.days }

// Dates returns the window's date keys in order.
func (w *BookingWindow) Dates() []string {
	dates := make([]string, 0, len(w.schedules))
	for k := range w.schedules {
		dates = append(dates, k)
	}
	sort.Strings(dates)
	return dates
}

// Schedule returns the day's schedule, if the date lies within the window.
func (w *BookingWindow) Schedule(date string) (DailySchedule, bool) {
	s, ok := w.schedules[date]
	return s, ok
}

// IsAvailable delegates to the day's schedule. Dates outside the window are
// treated as unavailable.
func (w *BookingWindow) IsAvailable(r TimeRange, date string) bool {
	s, ok := w.schedules[date]
	if !ok {
		return false
	}
	return s.IsAvailable(r)
}

// AvailableSlots returns the day's bookable 30-minute starts, or nil for
// dates outside the window.
func (w *BookingWindow) AvailableSlots(date string) []TimeSlot {
	s, ok := w.schedules[date]
	if !ok {
		return nil
	}
	return s.AvailableSlots()
}

// AvailableSlotsForDuration returns the day's start slots fitting a booking
// of the requested length.
func (w *BookingWindow) AvailableSlotsForDuration(date string, durationMinutes int) ([]TimeSlot, error) {
	s, ok := w.schedules[date]
	if !ok {
		return nil, nil
	}
	return s.AvailableSlotsForDuration(durationMinutes)
}

// AddBooking books the range described by b on its day, replacing the stored
// schedule with the derived one and tracking b for bookkeeping.
func (w *BookingWindow) AddBooking(b models.Booking) error {
	if b.RoomID != w.roomID {
		return newSlotError(CodeWrongRoom, "booking %s targets room %s, window tracks %s", b.ID, b.RoomID, w.roomID)
	}
	sched, ok := w.schedules[b.Date]
	if !ok {
		return newSlotError(CodeUnavailable, "date %s outside the booking window", b.Date)
	}
	r, err := RangeFromLegacy(b.StartTime, b.DurationMinutes)
	if err != nil {
		return err
	}
	next, err := sched.AddBooking(r)
	if err != nil {
		return err
	}
	w.schedules[b.Date] = next
	w.bookings = append(w.bookings, b)
	return nil
}

// RemoveBooking drops the tracked booking by id and frees its range. Unknown
// ids are a no-op.
func (w *BookingWindow) RemoveBooking(bookingID string) error {
	idx := -1
	for i, b := range w.bookings {
		if b.ID == bookingID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	b := w.bookings[idx]
	r, err := RangeFromLegacy(b.StartTime, b.DurationMinutes)
	if err != nil {
		return err
	}
	if sched, ok := w.schedules[b.Date]; ok {
		w.schedules[b.Date] = sched.RemoveBooking(r)
	}
	w.bookings = append(w.bookings[:idx], w.bookings[idx+1:]...)
	return nil
}

// Roll advances the window by one calendar day: the oldest schedule is
// dropped, a fresh empty schedule is appended for the new trailing day, and
// bookings dated before the new start are pruned.
func (w *BookingWindow) Roll() error {
	delete(w.schedules, w.start.Format(DateLayout))
	w.start = w.start.AddDate(0, 0, 1)

	trailing := w.start.AddDate(0, 0, w.days-1)
	sched, err := NewDailySchedule(trailing, w.startHour, w.endHour, nil)
	if err != nil {
		return err
	}
	w.schedules[sched.DateKey()] = sched

	startKey := w.start.Format(DateLayout)
	kept := w.bookings[:0]
	for _, b := range w.bookings {
		if b.Date >= startKey {
			kept = append(kept, b)
		}
	}
	w.bookings = kept
	return nil
}

// Refresh clears all window state and rebuilds every day's schedule from the
// store's confirmed bookings.
func (w *BookingWindow) Refresh(ctx context.Context, store BookingStore) error {
	schedules := make(map[string]DailySchedule, w.days)
	var bookings []models.Booking

	for i := 0; i < w.days; i++ {
		day := w.start.AddDate(0, 0, i)
		key := day.Format(DateLayout)

		stored, err := store.FindConfirmedByRoomAndDate(ctx, w.roomID, key)
		if err != nil {
			return err
		}

		var ranges []TimeRange
		for _, b := range stored {
			if b.Status != models.BookingStatusConfirmed {
				continue
			}
			r, err := RangeFromLegacy(b.StartTime, b.DurationMinutes)
			if err != nil {
				return err
			}
			ranges = append(ranges, r)
			bookings = append(bookings, b)
		}

		sched, err := NewDailySchedule(day, w.startHour, w.endHour, ranges)
		if err != nil {
			return err
		}
		schedules[key] = sched
	}

	w.schedules = schedules
	w.bookings = bookings
	return nil
}

// Bookings returns a copy of the tracked bookings.
func (w *BookingWindow) Bookings() []models.Booking {
	out := make([]models.Booking, len(w.bookings))
	copy(out, w.bookings)
	return out
}

// Utilization maps each date in the window to its utilization percentage.
func (w *BookingWindow) Utilization() map[string]float64 {
	out := make(map[string]float64, len(w.schedules))
	for key, s := range w.schedules {
		out[key] = s.UtilizationPercentage()
	}
	return out
}

// Summary aggregates average utilization and total tracked bookings.
func (w *BookingWindow) Summary() WindowSummary {
	total := 0.0
	for _, s := range w.schedules {
		total += s.UtilizationPercentage()
	}
	avg := 0.0
	if len(w.schedules) > 0 {
		avg = total / float64(len(w.schedules))
	}
	return WindowSummary{
		RoomID:             w.roomID,
		Days:               w.days,
		AverageUtilization: avg,
		TotalBookings:      len(w.bookings),
	}
}
