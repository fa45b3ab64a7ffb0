package scheduling

import (
	"sort"
	"time"
)

// SelectionMode picks the algorithm that turns slot clicks into a candidate
// range. Dispatch is an exhaustive switch, not runtime polymorphism.
type SelectionMode int

const (
	// SelectionSingle replaces the selection with the clicked slot.
	SelectionSingle SelectionMode = iota
	// SelectionRange expands two clicks into the full run between them.
	SelectionRange
	// SelectionMulti toggles individual slots with a FIFO count cap.
	SelectionMulti
	// SelectionContiguous grows a contiguous run from its ends under a
	// total-duration cap.
	SelectionContiguous
)

// DefaultMaxMultiSlots caps SelectionMulti when no cap is configured.
const DefaultMaxMultiSlots = 8

// Selector holds the caller's ordered slot selection and interprets clicks
// according to its mode.
type Selector struct {
	Mode SelectionMode

	// MaxSlots bounds SelectionMulti; zero means DefaultMaxMultiSlots.
	MaxSlots int
	// MaxMinutes bounds the total duration of a SelectionContiguous run;
	// zero means MaxBookingMinutes.
	MaxMinutes int

	selected []TimeSlot // click order for multi; ascending for range/contiguous
}

// NewSelector returns a selector for the given mode with default caps.
func NewSelector(mode SelectionMode) *Selector {
	return &Selector{Mode: mode}
}

func (sel *Selector) maxSlots() int {
	if sel.MaxSlots > 0 {
		return sel.MaxSlots
	}
	return DefaultMaxMultiSlots
}

func (sel *Selector) maxMinutes() int {
	if sel.MaxMinutes > 0 {
		return sel.MaxMinutes
	}
	return MaxBookingMinutes
}

// CanSelect is the default gate for every mode: the slot must be currently
// available and not in the past.
func (sel *Selector) CanSelect(slot TimeSlot, schedule DailySchedule, now time.Time) bool {
	return schedule.IsSlotAvailable(slot) && !slot.InPast(schedule.Date(), now)
}

// Selected returns a copy of the current selection.
func (sel *Selector) Selected() []TimeSlot {
	out := make([]TimeSlot, len(sel.selected))
	copy(out, sel.selected)
	return out
}

// Count returns the number of selected slots.
func (sel *Selector) Count() int { return len(sel.selected) }

// Clear empties the selection.
func (sel *Selector) Clear() { sel.selected = nil }

// Contains reports whether the slot is currently selected.
func (sel *Selector) Contains(slot TimeSlot) bool {
	for _, s := range sel.selected {
		if s.Equals(slot) {
			return true
		}
	}
	return false
}

// Select applies a slot click to the selection under the active mode.
func (sel *Selector) Select(slot TimeSlot) {
	switch sel.Mode {
	case SelectionSingle:
		sel.selectSingle(slot)
	case SelectionRange:
		sel.selectRange(slot)
	case SelectionMulti:
		sel.selectMulti(slot)
	case SelectionContiguous:
		sel.selectContiguous(slot)
	}
}

func (sel *Selector) selectSingle(slot TimeSlot) {
	if len(sel.selected) == 1 && sel.selected[0].Equals(slot) {
		sel.selected = nil
		return
	}
	sel.selected = []TimeSlot{slot}
}

func (sel *Selector) selectRange(slot TimeSlot) {
	switch len(sel.selected) {
	case 0:
		sel.selected = []TimeSlot{slot}
	case 1:
		// Re-clicking the lone pending slot clears it.
		if sel.selected[0].Equals(slot) {
			sel.selected = nil
			return
		}
		// Expand to the inclusive run between the two clicks, normalized
		// so click order does not matter.
		lo, hi := sel.selected[0], slot
		if hi.Before(lo) {
			lo, hi = hi, lo
		}
		var run []TimeSlot
		for m := lo.Minutes(); m <= hi.Minutes(); m += SlotMinutes {
			run = append(run, TimeSlot{minutes: m})
		}
		sel.selected = run
	default:
		// A click on an already-fixed range restarts fresh at that slot.
		sel.selected = []TimeSlot{slot}
	}
}

func (sel *Selector) selectMulti(slot TimeSlot) {
	for i, s := range sel.selected {
		if s.Equals(slot) {
			sel.selected = append(sel.selected[:i], sel.selected[i+1:]...)
			return
		}
	}
	sel.selected = append(sel.selected, slot)
	if len(sel.selected) > sel.maxSlots() {
		// Evict the oldest selection.
		sel.selected = sel.selected[1:]
	}
}

func (sel *Selector) selectContiguous(slot TimeSlot) {
	if len(sel.selected) == 0 {
		sel.selected = []TimeSlot{slot}
		return
	}

	first := sel.selected[0]
	last := sel.selected[len(sel.selected)-1]

	if sel.Contains(slot) {
		// Deselection only from the two ends, never the middle.
		if slot.Equals(first) {
			sel.selected = sel.selected[1:]
		} else if slot.Equals(last) {
			sel.selected = sel.selected[:len(sel.selected)-1]
		}
		return
	}

	// Extension is only legal from either end of the contiguous run, and
	// only while the total duration stays under the cap.
	if (len(sel.selected)+1)*SlotMinutes > sel.maxMinutes() {
		return
	}
	if next, err := slot.Next(); err == nil && next.Equals(first) {
		sel.selected = append([]TimeSlot{slot}, sel.selected...)
		return
	}
	if next, err := last.Next(); err == nil && next.Equals(slot) {
		sel.selected = append(sel.selected, slot)
	}
}

// IsValidSelection reports whether the current selection forms a single
// contiguous run of slots.
func (sel *Selector) IsValidSelection() bool {
	if len(sel.selected) == 0 {
		return false
	}
	return isContiguousRun(sel.sorted())
}

// SelectionRange resolves the selection to the range from the first slot to
// one past the last, or false when the selection is empty, non-contiguous,
// or runs past the day boundary.
func (sel *Selector) SelectionRange() (TimeRange, bool) {
	if !sel.IsValidSelection() {
		return TimeRange{}, false
	}
	run := sel.sorted()
	end, err := run[len(run)-1].Next()
	if err != nil {
		return TimeRange{}, false
	}
	r, err := RangeFromSlots(run[0], end)
	if err != nil {
		return TimeRange{}, false
	}
	return r, true
}

func (sel *Selector) sorted() []TimeSlot {
	run := make([]TimeSlot, len(sel.selected))
	copy(run, sel.selected)
	sort.Slice(run, func(i, j int) bool { return run[i].Before(run[j]) })
	return run
}

func isContiguousRun(sorted []TimeSlot) bool {
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Minutes()-sorted[i-1].Minutes() != SlotMinutes {
			return false
		}
	}
	return true
}
