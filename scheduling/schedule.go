package scheduling

import (
	"sort"
	"time"

	"studyrooms/models"
)

// DateLayout is the civil date key format used across the engine and the
// storage boundary.
const DateLayout = "2006-01-02"

// DailySchedule aggregates one room's booked ranges for a single civil day
// within its operating hours. It is a value: AddBooking and RemoveBooking
// return new schedules and never mutate the receiver.
type DailySchedule struct {
	date      time.Time
	startHour int
	endHour   int
	booked    []TimeRange // sorted by start, pairwise non-overlapping
}

// NewDailySchedule validates operating hours and pairwise non-overlap of the
// supplied booked ranges. The date is normalized to midnight.
func NewDailySchedule(date time.Time, startHour, endHour int, booked []TimeRange) (DailySchedule, error) {
	if startHour < 0 || endHour > 24 || startHour >= endHour {
		return DailySchedule{}, newSlotError(CodeInvalidRange, "operating hours %d-%d invalid", startHour, endHour)
	}
	ranges := make([]TimeRange, len(booked))
	copy(ranges, booked)
	sort.Slice(ranges, func(i, j int) bool {
		return ranges[i].Start().Before(ranges[j].Start())
	})
	for i := 1; i < len(ranges); i++ {
		if ranges[i-1].OverlapsWith(ranges[i]) {
			return DailySchedule{}, newSlotError(CodeOverlappingBookings,
				"ranges %s and %s overlap", ranges[i-1], ranges[i])
		}
	}
	return DailySchedule{
		date:      normalizeDate(date),
		startHour: startHour,
		endHour:   endHour,
		booked:    ranges,
	}, nil
}

func normalizeDate(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
}

// Date returns the schedule's civil day, normalized to midnight.
func (s DailySchedule) Date() time.Time { return s.date }

// DateKey returns the schedule's day in "YYYY-MM-DD" form.
func (s DailySchedule) DateKey() string { return s.date.Format(DateLayout) }

// OperatingHours returns the half-open [start, end) hour window.
func (s DailySchedule) OperatingHours() (int, int) { return s.startHour, s.endHour }

// BookedRanges returns a copy of the booked ranges in start order.
func (s DailySchedule) BookedRanges() []TimeRange {
	out := make([]TimeRange, len(s.booked))
	copy(out, s.booked)
	return out
}

// IsAvailable is the single source of truth for conflict detection: false if
// the range falls outside operating hours or overlaps any booked range.
func (s DailySchedule) IsAvailable(r TimeRange) bool {
	if !r.WithinOperatingHours(s.startHour, s.endHour) {
		return false
	}
	for _, b := range s.booked {
		if b.OverlapsWith(r) {
			return false
		}
	}
	return true
}

// IsSlotAvailable reports whether a minimal 30-minute booking starting at
// slot would be available.
func (s DailySchedule) IsSlotAvailable(slot TimeSlot) bool {
	r, err := RangeFromStartAndDuration(slot, SlotMinutes)
	if err != nil {
		return false
	}
	return s.IsAvailable(r)
}

// AvailableSlots walks every 30-minute slot within operating hours and
// returns those where a 30-minute booking fits.
func (s DailySchedule) AvailableSlots() []TimeSlot {
	return s.availableStarts(SlotMinutes)
}

// AvailableSlotsForDuration returns the start slots from which a booking of
// the requested length fits entirely within hours and clear of bookings.
func (s DailySchedule) AvailableSlotsForDuration(durationMinutes int) ([]TimeSlot, error) {
	if err := validateDuration(durationMinutes); err != nil {
		return nil, err
	}
	return s.availableStarts(durationMinutes), nil
}

func (s DailySchedule) availableStarts(durationMinutes int) []TimeSlot {
	var starts []TimeSlot
	for m := s.startHour * 60; m < s.endHour*60; m += SlotMinutes {
		slot := TimeSlot{minutes: m}
		r, err := RangeFromStartAndDuration(slot, durationMinutes)
		if err != nil {
			break
		}
		if s.IsAvailable(r) {
			starts = append(starts, slot)
		}
	}
	return starts
}

// MaxAvailableDuration greedily extends from startSlot in 30-minute steps
// while availability holds, returning the total minutes obtainable. Zero if
// the start slot itself is unavailable.
func (s DailySchedule) MaxAvailableDuration(startSlot TimeSlot) int {
	minutes := 0
	slot := startSlot
	for s.IsSlotAvailable(slot) {
		minutes += SlotMinutes
		next, err := slot.Next()
		if err != nil {
			break
		}
		slot = next
	}
	return minutes
}

// NextAvailableSlot scans forward from the slot after afterSlot, returning
// false if operating hours end first.
func (s DailySchedule) NextAvailableSlot(afterSlot TimeSlot) (TimeSlot, bool) {
	slot, err := afterSlot.Next()
	for ; err == nil; slot, err = slot.Next() {
		if !slot.WithinOperatingHours(s.startHour, s.endHour) {
			if slot.Minutes() >= s.endHour*60 {
				return TimeSlot{}, false
			}
			continue
		}
		if s.IsSlotAvailable(slot) {
			return slot, true
		}
	}
	return TimeSlot{}, false
}

// AddBooking returns a new schedule with the range booked. It fails with an
// unavailable error when the range conflicts or leaves operating hours.
func (s DailySchedule) AddBooking(r TimeRange) (DailySchedule, error) {
	if !s.IsAvailable(r) {
		return DailySchedule{}, newSlotError(CodeUnavailable, "range %s not available on %s", r, s.DateKey())
	}
	booked := make([]TimeRange, 0, len(s.booked)+1)
	booked = append(booked, s.booked...)
	booked = append(booked, r)
	sort.Slice(booked, func(i, j int) bool {
		return booked[i].Start().Before(booked[j].Start())
	})
	return DailySchedule{date: s.date, startHour: s.startHour, endHour: s.endHour, booked: booked}, nil
}

// RemoveBooking returns a new schedule with any range structurally equal to
// r removed. The receiver is returned unchanged when no match exists, so the
// operation is idempotent.
func (s DailySchedule) RemoveBooking(r TimeRange) DailySchedule {
	idx := -1
	for i, b := range s.booked {
		if b.Equals(r) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return s
	}
	booked := make([]TimeRange, 0, len(s.booked)-1)
	booked = append(booked, s.booked[:idx]...)
	booked = append(booked, s.booked[idx+1:]...)
	return DailySchedule{date: s.date, startHour: s.startHour, endHour: s.endHour, booked: booked}
}

// TotalBookedMinutes sums the durations of all booked ranges.
func (s DailySchedule) TotalBookedMinutes() int {
	total := 0
	for _, b := range s.booked {
		total += b.DurationMinutes()
	}
	return total
}

// TotalAvailableMinutes returns the unbooked remainder of the operating
// window.
func (s DailySchedule) TotalAvailableMinutes() int {
	return s.operatingMinutes() - s.TotalBookedMinutes()
}

// UtilizationPercentage returns the booked share of the operating window as
// a 0-100 value. A zero-minute window reports zero.
func (s DailySchedule) UtilizationPercentage() float64 {
	window := s.operatingMinutes()
	if window == 0 {
		return 0
	}
	return float64(s.TotalBookedMinutes()) / float64(window) * 100
}

func (s DailySchedule) operatingMinutes() int {
	return (s.endHour - s.startHour) * 60
}

// Stats snapshots the day's slot counts and utilization.
func (s DailySchedule) Stats() models.UtilizationStats {
	total := s.operatingMinutes() / SlotMinutes
	booked := s.TotalBookedMinutes() / SlotMinutes
	return models.UtilizationStats{
		TotalSlots:            total,
		AvailableSlots:        total - booked,
		BookedSlots:           booked,
		UtilizationPercentage: s.UtilizationPercentage(),
	}
}
