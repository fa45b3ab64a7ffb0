package scheduling

import (
	"testing"
	"time"
)

func mustSlot(t *testing.T, s string) TimeSlot {
	t.Helper()
	slot, err := SlotFromString(s)
	if err != nil {
		t.Fatalf("SlotFromString(%q): %v", s, err)
	}
	return slot
}

func TestSlotFromHourMinute_Valid(t *testing.T) {
	slot, err := SlotFromHourMinute(14, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slot.Minutes() != 870 {
		t.Fatalf("expected 870 minutes, got %d", slot.Minutes())
	}
	if slot.String() != "14:30" {
		t.Fatalf("expected 14:30, got %s", slot.String())
	}
}

func TestSlotFromHourMinute_Invalid(t *testing.T) {
	cases := []struct {
		hour, minute int
	}{
		{24, 0},
		{-1, 0},
		{10, 60},
		{10, -1},
		{10, 15}, // not 30-minute aligned
	}
	for _, tc := range cases {
		if _, err := SlotFromHourMinute(tc.hour, tc.minute); err == nil {
			t.Errorf("expected error for %d:%d", tc.hour, tc.minute)
		} else if ErrorCode(err) != CodeInvalidTime {
			t.Errorf("expected invalidTime for %d:%d, got %s", tc.hour, tc.minute, ErrorCode(err))
		}
	}
}

func TestSlotFromString_Format(t *testing.T) {
	for _, bad := range []string{"9:00", "0900", "14:30:00", "twelve", "", "14-30"} {
		if _, err := SlotFromString(bad); ErrorCode(err) != CodeInvalidFormat {
			t.Errorf("expected invalidFormat for %q, got %v", bad, err)
		}
	}
	// Well-formed but misaligned falls through to the time check.
	if _, err := SlotFromString("14:15"); ErrorCode(err) != CodeInvalidTime {
		t.Errorf("expected invalidTime for 14:15, got %v", err)
	}
}

func TestSlot_StringRoundTrip(t *testing.T) {
	// Every valid slot round-trips through its "HH:MM" form.
	for h := 0; h < 24; h++ {
		for _, m := range []int{0, 30} {
			slot, err := SlotFromHourMinute(h, m)
			if err != nil {
				t.Fatalf("SlotFromHourMinute(%d, %d): %v", h, m, err)
			}
			back, err := SlotFromString(slot.String())
			if err != nil {
				t.Fatalf("round trip of %s: %v", slot, err)
			}
			if !back.Equals(slot) {
				t.Fatalf("round trip changed %s to %s", slot, back)
			}
		}
	}
}

func TestSlot_ExactlyFortyEightValues(t *testing.T) {
	count := 0
	for m := 0; m < MinutesPerDay; m++ {
		if _, err := SlotFromMinutes(m); err == nil {
			count++
		}
	}
	if count != SlotsPerDay {
		t.Fatalf("expected %d valid slots, got %d", SlotsPerDay, count)
	}
}

func TestSlot_NextPrevious_Boundaries(t *testing.T) {
	last := mustSlot(t, "23:30")
	if _, err := last.Next(); ErrorCode(err) != CodeOutOfRange {
		t.Errorf("expected outOfRange after 23:30, got %v", err)
	}
	first := mustSlot(t, "00:00")
	if _, err := first.Previous(); ErrorCode(err) != CodeOutOfRange {
		t.Errorf("expected outOfRange before 00:00, got %v", err)
	}

	next, err := mustSlot(t, "14:00").Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next.String() != "14:30" {
		t.Fatalf("expected 14:30, got %s", next)
	}
}

func TestSlot_AddSlots(t *testing.T) {
	slot := mustSlot(t, "10:00")
	moved, err := slot.AddSlots(3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if moved.String() != "11:30" {
		t.Fatalf("expected 11:30, got %s", moved)
	}
	back, err := moved.AddSlots(-3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !back.Equals(slot) {
		t.Fatalf("expected %s, got %s", slot, back)
	}
	if _, err := slot.AddSlots(48); ErrorCode(err) != CodeOutOfRange {
		t.Errorf("expected outOfRange, got %v", err)
	}
	if _, err := slot.AddSlots(-21); ErrorCode(err) != CodeOutOfRange {
		t.Errorf("expected outOfRange, got %v", err)
	}
}

func TestSlot_Comparisons(t *testing.T) {
	a := mustSlot(t, "09:00")
	b := mustSlot(t, "09:30")
	if !a.Before(b) || b.Before(a) {
		t.Fatal("Before ordering wrong")
	}
	if !b.After(a) || a.After(b) {
		t.Fatal("After ordering wrong")
	}
	if !a.BeforeOrEqual(a) || !a.AfterOrEqual(a) {
		t.Fatal("reflexive comparisons wrong")
	}
	if !a.Equals(mustSlot(t, "09:00")) {
		t.Fatal("structural equality wrong")
	}
}

func TestSlot_DisplayString(t *testing.T) {
	cases := map[string]string{
		"00:00": "12:00 AM",
		"00:30": "12:30 AM",
		"09:00": "9:00 AM",
		"12:00": "12:00 PM",
		"12:30": "12:30 PM",
		"14:30": "2:30 PM",
		"23:30": "11:30 PM",
	}
	for in, want := range cases {
		if got := mustSlot(t, in).DisplayString(); got != want {
			t.Errorf("DisplayString(%s) = %q, want %q", in, got, want)
		}
	}
}

func TestSlot_WithinOperatingHours(t *testing.T) {
	if !mustSlot(t, "08:00").WithinOperatingHours(8, 22) {
		t.Error("08:00 should be within 8-22")
	}
	if mustSlot(t, "07:30").WithinOperatingHours(8, 22) {
		t.Error("07:30 should be outside 8-22")
	}
	// Half-open: the closing hour itself is out.
	if mustSlot(t, "22:00").WithinOperatingHours(8, 22) {
		t.Error("22:00 should be outside 8-22")
	}
	if !mustSlot(t, "21:30").WithinOperatingHours(8, 22) {
		t.Error("21:30 should be within 8-22")
	}
}

func TestSlot_InPast(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 10, 14, 15, 0, 0, time.UTC)

	if !mustSlot(t, "14:00").InPast(day, now) {
		t.Error("14:00 should be past at 14:15")
	}
	if mustSlot(t, "14:30").InPast(day, now) {
		t.Error("14:30 should not be past at 14:15")
	}
	// A future day is never past.
	if mustSlot(t, "08:00").InPast(day.AddDate(0, 0, 1), now) {
		t.Error("tomorrow 08:00 should not be past")
	}
}
