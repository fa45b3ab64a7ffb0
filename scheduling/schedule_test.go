package scheduling

import (
	"testing"
	"time"
)

var testDay = time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC) // a Monday

func mustSchedule(t *testing.T, booked ...TimeRange) DailySchedule {
	t.Helper()
	s, err := NewDailySchedule(testDay, 8, 22, booked)
	if err != nil {
		t.Fatalf("NewDailySchedule: %v", err)
	}
	return s
}

func TestNewDailySchedule_Validation(t *testing.T) {
	if _, err := NewDailySchedule(testDay, 22, 8, nil); ErrorCode(err) != CodeInvalidRange {
		t.Errorf("inverted hours should fail, got %v", err)
	}
	if _, err := NewDailySchedule(testDay, -1, 22, nil); ErrorCode(err) != CodeInvalidRange {
		t.Errorf("negative start hour should fail, got %v", err)
	}
	if _, err := NewDailySchedule(testDay, 8, 25, nil); ErrorCode(err) != CodeInvalidRange {
		t.Errorf("end hour past 24 should fail, got %v", err)
	}

	// Overlapping bookings are rejected at construction.
	overlapping := []TimeRange{
		mustRange(t, "14:00", 60),
		mustRange(t, "14:30", 60),
	}
	if _, err := NewDailySchedule(testDay, 8, 22, overlapping); ErrorCode(err) != CodeOverlappingBookings {
		t.Errorf("expected overlappingBookings, got %v", err)
	}
}

func TestDailySchedule_DateNormalized(t *testing.T) {
	late := time.Date(2026, 3, 9, 17, 45, 12, 0, time.UTC)
	s, err := NewDailySchedule(late, 8, 22, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.Date().Equal(testDay) {
		t.Fatalf("date not normalized to midnight: %s", s.Date())
	}
	if s.DateKey() != "2026-03-09" {
		t.Fatalf("unexpected date key %s", s.DateKey())
	}
}

func TestDailySchedule_IsAvailable(t *testing.T) {
	s := mustSchedule(t, mustRange(t, "14:00", 60))

	// Booking 14:00-15:00 on an 8-22 day.
	if s.IsAvailable(mustRange(t, "14:30", 60)) {
		t.Error("14:30+60 overlaps the 14:00 booking")
	}
	if !s.IsAvailable(mustRange(t, "15:00", 60)) {
		t.Error("15:00+60 is adjacent, not conflicting")
	}
	if s.IsAvailable(mustRange(t, "07:30", 60)) {
		t.Error("range before opening is unavailable")
	}
	if s.IsAvailable(mustRange(t, "21:30", 60)) {
		t.Error("range past closing is unavailable")
	}
}

func TestDailySchedule_SlotQueries(t *testing.T) {
	s := mustSchedule(t, mustRange(t, "14:00", 60))

	if s.IsSlotAvailable(mustSlot(t, "14:30")) {
		t.Error("14:30 is booked")
	}
	if !s.IsSlotAvailable(mustSlot(t, "15:00")) {
		t.Error("15:00 is free")
	}
	if s.IsSlotAvailable(mustSlot(t, "22:00")) {
		t.Error("22:00 is past closing")
	}

	free := mustSchedule(t)
	if got := len(free.AvailableSlots()); got != 28 {
		t.Fatalf("an empty 8-22 day has 28 slots, got %d", got)
	}
	if got := len(s.AvailableSlots()); got != 26 {
		t.Fatalf("expected 26 free slots with a 60m booking, got %d", got)
	}
}

func TestDailySchedule_AvailableSlotsForDuration(t *testing.T) {
	// Operating hours 8-22, no bookings: 27 starts allow a 60-minute
	// booking ending by 22:00.
	free := mustSchedule(t)
	starts, err := free.AvailableSlotsForDuration(60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(starts) != 27 {
		t.Fatalf("expected 27 start slots, got %d", len(starts))
	}
	if starts[0].String() != "08:00" || starts[len(starts)-1].String() != "21:00" {
		t.Fatalf("unexpected bounds %s..%s", starts[0], starts[len(starts)-1])
	}

	if _, err := free.AvailableSlotsForDuration(45); ErrorCode(err) != CodeInvalidDuration {
		t.Errorf("expected invalidDuration for 45m, got %v", err)
	}
}

func TestDailySchedule_MaxAvailableDuration(t *testing.T) {
	s := mustSchedule(t, mustRange(t, "16:00", 60))

	if got := s.MaxAvailableDuration(mustSlot(t, "14:00")); got != 120 {
		t.Errorf("14:00 can run 120m before the 16:00 booking, got %d", got)
	}
	if got := s.MaxAvailableDuration(mustSlot(t, "16:00")); got != 0 {
		t.Errorf("a booked start yields 0, got %d", got)
	}
	if got := s.MaxAvailableDuration(mustSlot(t, "21:00")); got != 60 {
		t.Errorf("21:00 can run 60m to closing, got %d", got)
	}
}

func TestDailySchedule_NextAvailableSlot(t *testing.T) {
	s := mustSchedule(t, mustRange(t, "14:30", 90))

	next, ok := s.NextAvailableSlot(mustSlot(t, "14:00"))
	if !ok || next.String() != "16:00" {
		t.Fatalf("expected 16:00, got %v %v", next, ok)
	}
	if _, ok := s.NextAvailableSlot(mustSlot(t, "21:30")); ok {
		t.Error("no slot remains after the last one in hours")
	}
}

func TestDailySchedule_AddBookingImmutable(t *testing.T) {
	s := mustSchedule(t)
	r := mustRange(t, "10:00", 90)

	booked, err := s.AddBooking(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if booked.IsAvailable(r) {
		t.Error("derived schedule must see the new booking")
	}
	// The original is unchanged.
	if !s.IsAvailable(r) {
		t.Error("original schedule must be untouched")
	}
	if len(s.BookedRanges()) != 0 || len(booked.BookedRanges()) != 1 {
		t.Error("booked range counts wrong")
	}

	if _, err := booked.AddBooking(mustRange(t, "10:30", 30)); ErrorCode(err) != CodeUnavailable {
		t.Errorf("conflicting add should fail with unavailable, got %v", err)
	}
	if _, err := s.AddBooking(mustRange(t, "07:00", 60)); ErrorCode(err) != CodeUnavailable {
		t.Errorf("out-of-hours add should fail with unavailable, got %v", err)
	}
}

func TestDailySchedule_RemoveBookingIdempotent(t *testing.T) {
	r := mustRange(t, "14:00", 60)
	s := mustSchedule(t, r)

	once := s.RemoveBooking(r)
	if !once.IsAvailable(r) {
		t.Error("removed range should be available again")
	}
	twice := once.RemoveBooking(r)
	if len(twice.BookedRanges()) != len(once.BookedRanges()) {
		t.Error("second removal must change nothing")
	}
	// Removing an unknown range is a no-op.
	same := s.RemoveBooking(mustRange(t, "09:00", 30))
	if len(same.BookedRanges()) != 1 {
		t.Error("removing an absent range must keep the schedule intact")
	}
}

func TestDailySchedule_Utilization(t *testing.T) {
	s := mustSchedule(t, mustRange(t, "14:00", 60), mustRange(t, "18:00", 120))

	if got := s.TotalBookedMinutes(); got != 180 {
		t.Errorf("expected 180 booked minutes, got %d", got)
	}
	if got := s.TotalAvailableMinutes(); got != 660 {
		t.Errorf("expected 660 available minutes, got %d", got)
	}
	want := float64(180) / float64(840) * 100
	if got := s.UtilizationPercentage(); got != want {
		t.Errorf("expected %.4f%%, got %.4f%%", want, got)
	}

	stats := s.Stats()
	if stats.TotalSlots != 28 || stats.BookedSlots != 6 || stats.AvailableSlots != 22 {
		t.Errorf("unexpected stats %+v", stats)
	}
}
