package scheduling

import (
	"testing"
	"time"
)

func selectedStrings(sel *Selector) []string {
	var out []string
	for _, s := range sel.Selected() {
		out = append(out, s.String())
	}
	return out
}

func assertSelection(t *testing.T, sel *Selector, want ...string) {
	t.Helper()
	got := selectedStrings(sel)
	if len(got) != len(want) {
		t.Fatalf("selection = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("selection = %v, want %v", got, want)
		}
	}
}

func TestSelector_Single(t *testing.T) {
	sel := NewSelector(SelectionSingle)

	sel.Select(mustSlot(t, "14:00"))
	assertSelection(t, sel, "14:00")

	// Any available slot replaces the current selection.
	sel.Select(mustSlot(t, "16:00"))
	assertSelection(t, sel, "16:00")

	// Re-clicking the sole selected slot clears it.
	sel.Select(mustSlot(t, "16:00"))
	assertSelection(t, sel)
}

func TestSelector_Range(t *testing.T) {
	sel := NewSelector(SelectionRange)

	// First click sets a pending start.
	sel.Select(mustSlot(t, "14:00"))
	assertSelection(t, sel, "14:00")

	// Second click expands to the full inclusive run.
	sel.Select(mustSlot(t, "15:00"))
	assertSelection(t, sel, "14:00", "14:30", "15:00")

	// A third click on the fixed range restarts fresh.
	sel.Select(mustSlot(t, "10:00"))
	assertSelection(t, sel, "10:00")

	// Clicking the lone pending slot clears it.
	sel.Select(mustSlot(t, "10:00"))
	assertSelection(t, sel)
}

func TestSelector_RangeClickOrderIrrelevant(t *testing.T) {
	sel := NewSelector(SelectionRange)
	sel.Select(mustSlot(t, "15:00"))
	sel.Select(mustSlot(t, "14:00"))
	// Reverse click order yields the same normalized set.
	assertSelection(t, sel, "14:00", "14:30", "15:00")
}

func TestSelector_MultiToggleAndEviction(t *testing.T) {
	sel := NewSelector(SelectionMulti)
	sel.MaxSlots = 3

	sel.Select(mustSlot(t, "09:00"))
	sel.Select(mustSlot(t, "11:00"))
	sel.Select(mustSlot(t, "13:00"))
	assertSelection(t, sel, "09:00", "11:00", "13:00")

	// Toggling off removes an individual slot.
	sel.Select(mustSlot(t, "11:00"))
	assertSelection(t, sel, "09:00", "13:00")

	// Exceeding the cap evicts the oldest selection.
	sel.Select(mustSlot(t, "15:00"))
	sel.Select(mustSlot(t, "17:00"))
	assertSelection(t, sel, "13:00", "15:00", "17:00")
}

func TestSelector_ContiguousEndsOnly(t *testing.T) {
	sel := NewSelector(SelectionContiguous)

	sel.Select(mustSlot(t, "14:00"))
	sel.Select(mustSlot(t, "14:30"))
	sel.Select(mustSlot(t, "15:00"))
	assertSelection(t, sel, "14:00", "14:30", "15:00")

	// Extension is allowed from the front as well.
	sel.Select(mustSlot(t, "13:30"))
	assertSelection(t, sel, "13:30", "14:00", "14:30", "15:00")

	// Non-adjacent slots are silently rejected.
	sel.Select(mustSlot(t, "18:00"))
	assertSelection(t, sel, "13:30", "14:00", "14:30", "15:00")

	// Middle deselection is rejected; ends come off.
	sel.Select(mustSlot(t, "14:00"))
	assertSelection(t, sel, "13:30", "14:00", "14:30", "15:00")
	sel.Select(mustSlot(t, "13:30"))
	assertSelection(t, sel, "14:00", "14:30", "15:00")
	sel.Select(mustSlot(t, "15:00"))
	assertSelection(t, sel, "14:00", "14:30")
}

func TestSelector_ContiguousDurationCap(t *testing.T) {
	sel := NewSelector(SelectionContiguous)
	sel.MaxMinutes = 60

	sel.Select(mustSlot(t, "14:00"))
	sel.Select(mustSlot(t, "14:30"))
	assertSelection(t, sel, "14:00", "14:30")

	// A third slot would exceed 60 minutes: rejected, selection unchanged.
	sel.Select(mustSlot(t, "15:00"))
	assertSelection(t, sel, "14:00", "14:30")
}

func TestSelector_CanSelect(t *testing.T) {
	s := mustSchedule(t, mustRange(t, "14:00", 60))
	sel := NewSelector(SelectionSingle)
	now := time.Date(2026, 3, 9, 10, 15, 0, 0, time.UTC)

	if sel.CanSelect(mustSlot(t, "14:00"), s, now) {
		t.Error("booked slot cannot be selected")
	}
	if sel.CanSelect(mustSlot(t, "09:00"), s, now) {
		t.Error("past slot cannot be selected")
	}
	if !sel.CanSelect(mustSlot(t, "15:00"), s, now) {
		t.Error("free future slot can be selected")
	}
}

func TestSelector_SelectionRange(t *testing.T) {
	sel := NewSelector(SelectionRange)
	if _, ok := sel.SelectionRange(); ok {
		t.Error("empty selection resolves to no range")
	}

	sel.Select(mustSlot(t, "14:00"))
	sel.Select(mustSlot(t, "15:00"))
	r, ok := sel.SelectionRange()
	if !ok {
		t.Fatal("contiguous selection should resolve")
	}
	// First slot through one past the last.
	if r.String() != "14:00-15:30" {
		t.Fatalf("expected 14:00-15:30, got %s", r)
	}

	// A non-contiguous multi selection does not resolve.
	multi := NewSelector(SelectionMulti)
	multi.Select(mustSlot(t, "09:00"))
	multi.Select(mustSlot(t, "12:00"))
	if multi.IsValidSelection() {
		t.Error("gapped selection is not valid")
	}
	if _, ok := multi.SelectionRange(); ok {
		t.Error("gapped selection resolves to no range")
	}

	// A contiguous multi selection resolves even when clicked out of order.
	multi2 := NewSelector(SelectionMulti)
	multi2.Select(mustSlot(t, "12:00"))
	multi2.Select(mustSlot(t, "11:30"))
	r2, ok := multi2.SelectionRange()
	if !ok || r2.String() != "11:30-12:30" {
		t.Fatalf("expected 11:30-12:30, got %v %v", r2, ok)
	}
}
