package scheduling

import (
	"fmt"
	"regexp"
	"time"
)

const (
	// SlotMinutes is the fixed slot granularity.
	SlotMinutes = 30
	// MinutesPerDay bounds the slot domain [0, 1440).
	MinutesPerDay = 24 * 60
	// SlotsPerDay is the number of valid TimeSlot values (48).
	SlotsPerDay = MinutesPerDay / SlotMinutes
)

var timePattern = regexp.MustCompile(`^(\d{2}):(\d{2})$`)

// TimeSlot is an immutable 30-minute-aligned point in a day, identified by
// its minute offset from midnight. The zero value is midnight.
type TimeSlot struct {
	minutes int
}

// SlotFromMinutes builds a TimeSlot from a minutes-from-midnight offset.
func SlotFromMinutes(minutes int) (TimeSlot, error) {
	if minutes < 0 || minutes >= MinutesPerDay {
		return TimeSlot{}, newSlotError(CodeInvalidTime, "minutes %d outside [0, %d)", minutes, MinutesPerDay)
	}
	if minutes%SlotMinutes != 0 {
		return TimeSlot{}, newSlotError(CodeInvalidTime, "minutes %d not aligned to %d-minute slots", minutes, SlotMinutes)
	}
	return TimeSlot{minutes: minutes}, nil
}

// SlotFromHourMinute builds a TimeSlot from an hour and minute pair.
func SlotFromHourMinute(hour, minute int) (TimeSlot, error) {
	if hour < 0 || hour > 23 {
		return TimeSlot{}, newSlotError(CodeInvalidTime, "hour %d outside [0, 23]", hour)
	}
	if minute < 0 || minute > 59 {
		return TimeSlot{}, newSlotError(CodeInvalidTime, "minute %d outside [0, 59]", minute)
	}
	return SlotFromMinutes(hour*60 + minute)
}

// SlotFromString parses a "HH:MM" time string.
func SlotFromString(s string) (TimeSlot, error) {
	m := timePattern.FindStringSubmatch(s)
	if m == nil {
		return TimeSlot{}, newSlotError(CodeInvalidFormat, "time %q does not match HH:MM", s)
	}
	var hour, minute int
	fmt.Sscanf(m[1], "%d", &hour)
	fmt.Sscanf(m[2], "%d", &minute)
	return SlotFromHourMinute(hour, minute)
}

// Minutes returns the slot's offset from midnight.
func (t TimeSlot) Minutes() int { return t.minutes }

// Hour returns the slot's hour component.
func (t TimeSlot) Hour() int { return t.minutes / 60 }

// Minute returns the slot's minute component (0 or 30).
func (t TimeSlot) Minute() int { return t.minutes % 60 }

// String formats the slot as "HH:MM".
func (t TimeSlot) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// DisplayString formats the slot as "h:mm AM/PM".
func (t TimeSlot) DisplayString() string {
	hour := t.Hour()
	meridiem := "AM"
	switch {
	case hour == 0:
		hour = 12
	case hour == 12:
		meridiem = "PM"
	case hour > 12:
		hour -= 12
		meridiem = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", hour, t.Minute(), meridiem)
}

// Equals reports structural equality.
func (t TimeSlot) Equals(other TimeSlot) bool { return t.minutes == other.minutes }

// Before reports whether t is strictly earlier than other.
func (t TimeSlot) Before(other TimeSlot) bool { return t.minutes < other.minutes }

// After reports whether t is strictly later than other.
func (t TimeSlot) After(other TimeSlot) bool { return t.minutes > other.minutes }

// BeforeOrEqual reports whether t is no later than other.
func (t TimeSlot) BeforeOrEqual(other TimeSlot) bool { return t.minutes <= other.minutes }

// AfterOrEqual reports whether t is no earlier than other.
func (t TimeSlot) AfterOrEqual(other TimeSlot) bool { return t.minutes >= other.minutes }

// Next returns the following slot. Fails at the 23:30 day boundary.
func (t TimeSlot) Next() (TimeSlot, error) {
	return t.AddSlots(1)
}

// Previous returns the preceding slot. Fails at the 00:00 day boundary.
func (t TimeSlot) Previous() (TimeSlot, error) {
	return t.AddSlots(-1)
}

// AddSlots offsets the slot by n 30-minute steps, in either direction.
func (t TimeSlot) AddSlots(n int) (TimeSlot, error) {
	minutes := t.minutes + n*SlotMinutes
	if minutes < 0 || minutes >= MinutesPerDay {
		return TimeSlot{}, newSlotError(CodeOutOfRange, "slot %s%+d steps leaves the day", t, n)
	}
	return TimeSlot{minutes: minutes}, nil
}

// WithinOperatingHours reports whether the slot lies in the half-open hour
// window [startHour, endHour).
func (t TimeSlot) WithinOperatingHours(startHour, endHour int) bool {
	return t.minutes >= startHour*60 && t.minutes < endHour*60
}

// InPast reports whether the slot, placed on the given calendar day, is
// earlier than now. Pure function of its arguments; no hidden clock.
func (t TimeSlot) InPast(day time.Time, now time.Time) bool {
	at := time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location())
	return at.Before(now)
}
