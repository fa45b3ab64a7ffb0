package scheduling

import "fmt"

const (
	// MinBookingMinutes is the shortest legal booking.
	MinBookingMinutes = 30
	// MaxBookingMinutes is the authoritative booking-length ceiling.
	MaxBookingMinutes = 240
)

// TimeRange is an immutable half-open interval [start, end) of 30-minute
// slots. Construction guarantees start < end.
type TimeRange struct {
	start TimeSlot
	end   TimeSlot
}

// RangeFromSlots builds a range from two slots, requiring start < end.
func RangeFromSlots(start, end TimeSlot) (TimeRange, error) {
	if !start.Before(end) {
		return TimeRange{}, newSlotError(CodeInvalidRange, "start %s not before end %s", start, end)
	}
	return TimeRange{start: start, end: end}, nil
}

// RangeFromStartAndDuration builds a range of the given booking length.
// Duration must be in [30, 240] minutes and a multiple of 30.
func RangeFromStartAndDuration(start TimeSlot, durationMinutes int) (TimeRange, error) {
	if err := validateDuration(durationMinutes); err != nil {
		return TimeRange{}, err
	}
	end, err := start.AddSlots(durationMinutes / SlotMinutes)
	if err != nil {
		return TimeRange{}, newSlotError(CodeInvalidRange, "range %s+%dm passes the day boundary", start, durationMinutes)
	}
	return TimeRange{start: start, end: end}, nil
}

// RangeFromLegacy builds a range from the stored booking form,
// a "HH:MM" start time plus a duration in minutes.
func RangeFromLegacy(startTime string, durationMinutes int) (TimeRange, error) {
	start, err := SlotFromString(startTime)
	if err != nil {
		return TimeRange{}, err
	}
	return RangeFromStartAndDuration(start, durationMinutes)
}

func validateDuration(minutes int) error {
	if minutes < MinBookingMinutes || minutes > MaxBookingMinutes {
		return newSlotError(CodeInvalidDuration, "duration %dm outside [%d, %d]", minutes, MinBookingMinutes, MaxBookingMinutes)
	}
	if minutes%SlotMinutes != 0 {
		return newSlotError(CodeInvalidDuration, "duration %dm not a multiple of %d", minutes, SlotMinutes)
	}
	return nil
}

// Start returns the inclusive start slot.
func (r TimeRange) Start() TimeSlot { return r.start }

// End returns the exclusive end slot.
func (r TimeRange) End() TimeSlot { return r.end }

// DurationMinutes returns the range length in minutes.
func (r TimeRange) DurationMinutes() int { return r.end.Minutes() - r.start.Minutes() }

// SlotCount returns the number of 30-minute slots the range covers.
func (r TimeRange) SlotCount() int { return r.DurationMinutes() / SlotMinutes }

// String formats the range as "HH:MM-HH:MM".
func (r TimeRange) String() string {
	return fmt.Sprintf("%s-%s", r.start, r.end)
}

// Equals reports structural equality of start and end.
func (r TimeRange) Equals(other TimeRange) bool {
	return r.start.Equals(other.start) && r.end.Equals(other.end)
}

// OverlapsWith reports whether the two ranges share any point. Ranges that
// merely touch are adjacent, not overlapping.
func (r TimeRange) OverlapsWith(other TimeRange) bool {
	return r.start.Before(other.end) && other.start.Before(r.end)
}

// Contains performs the half-open membership test start <= slot < end.
func (r TimeRange) Contains(slot TimeSlot) bool {
	return r.start.BeforeOrEqual(slot) && slot.Before(r.end)
}

// ContainsRange reports whether other lies entirely within r.
func (r TimeRange) ContainsRange(other TimeRange) bool {
	return r.start.BeforeOrEqual(other.start) && other.end.BeforeOrEqual(r.end)
}

// Before reports whether r ends at or before other starts.
func (r TimeRange) Before(other TimeRange) bool {
	return r.end.BeforeOrEqual(other.start)
}

// After reports whether r starts at or after other ends.
func (r TimeRange) After(other TimeRange) bool {
	return r.start.AfterOrEqual(other.end)
}

// AdjacentTo reports whether the ranges touch without overlapping.
func (r TimeRange) AdjacentTo(other TimeRange) bool {
	return r.end.Equals(other.start) || other.end.Equals(r.start)
}

// Overlap returns the shared sub-range, if any.
func (r TimeRange) Overlap(other TimeRange) (TimeRange, bool) {
	if !r.OverlapsWith(other) {
		return TimeRange{}, false
	}
	start := r.start
	if other.start.After(start) {
		start = other.start
	}
	end := r.end
	if other.end.Before(end) {
		end = other.end
	}
	return TimeRange{start: start, end: end}, true
}

// AllSlots returns every 30-minute slot from start to end exclusive.
func (r TimeRange) AllSlots() []TimeSlot {
	slots := make([]TimeSlot, 0, r.SlotCount())
	for m := r.start.Minutes(); m < r.end.Minutes(); m += SlotMinutes {
		slots = append(slots, TimeSlot{minutes: m})
	}
	return slots
}

// Split partitions the range into chunks no larger than chunkMinutes, the
// last chunk possibly smaller.
func (r TimeRange) Split(chunkMinutes int) ([]TimeRange, error) {
	if chunkMinutes <= 0 || chunkMinutes%SlotMinutes != 0 {
		return nil, newSlotError(CodeInvalidDuration, "chunk %dm not a positive multiple of %d", chunkMinutes, SlotMinutes)
	}
	var chunks []TimeRange
	for m := r.start.Minutes(); m < r.end.Minutes(); m += chunkMinutes {
		end := m + chunkMinutes
		if end > r.end.Minutes() {
			end = r.end.Minutes()
		}
		chunks = append(chunks, TimeRange{
			start: TimeSlot{minutes: m},
			end:   TimeSlot{minutes: end},
		})
	}
	return chunks, nil
}

// Extend returns a new range with the end pushed later by minutes.
func (r TimeRange) Extend(minutes int) (TimeRange, error) {
	if minutes <= 0 || minutes%SlotMinutes != 0 {
		return TimeRange{}, newSlotError(CodeInvalidDuration, "extend by %dm not a positive multiple of %d", minutes, SlotMinutes)
	}
	end, err := r.end.AddSlots(minutes / SlotMinutes)
	if err != nil {
		return TimeRange{}, err
	}
	return TimeRange{start: r.start, end: end}, nil
}

// Shorten returns a new range with the end pulled earlier by minutes.
func (r TimeRange) Shorten(minutes int) (TimeRange, error) {
	if minutes <= 0 || minutes%SlotMinutes != 0 {
		return TimeRange{}, newSlotError(CodeInvalidDuration, "shorten by %dm not a positive multiple of %d", minutes, SlotMinutes)
	}
	end, err := r.end.AddSlots(-minutes / SlotMinutes)
	if err != nil {
		return TimeRange{}, err
	}
	return RangeFromSlots(r.start, end)
}

// Shift returns a new range moved by a signed minute offset, preserving
// duration.
func (r TimeRange) Shift(minutes int) (TimeRange, error) {
	if minutes%SlotMinutes != 0 {
		return TimeRange{}, newSlotError(CodeInvalidDuration, "shift by %dm not a multiple of %d", minutes, SlotMinutes)
	}
	steps := minutes / SlotMinutes
	start, err := r.start.AddSlots(steps)
	if err != nil {
		return TimeRange{}, err
	}
	end, err := r.end.AddSlots(steps)
	if err != nil {
		return TimeRange{}, err
	}
	return TimeRange{start: start, end: end}, nil
}

// ValidBookingDuration is the single authoritative booking-length rule:
// duration in [30, 240] minutes and a multiple of 30.
func (r TimeRange) ValidBookingDuration() bool {
	return validateDuration(r.DurationMinutes()) == nil
}

// WithinOperatingHours reports whether every constituent slot lies inside
// the [startHour, endHour) window. The exclusive end may land exactly on
// the closing hour.
func (r TimeRange) WithinOperatingHours(startHour, endHour int) bool {
	return r.start.Minutes() >= startHour*60 && r.end.Minutes() <= endHour*60
}
