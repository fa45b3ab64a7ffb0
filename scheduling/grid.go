package scheduling

import "time"

// GridView selects the grid layout.
type GridView int

const (
	GridDay GridView = iota
	GridWeek
	GridRoom
	GridCompact
)

// SlotCell is the presentation viewmodel for one slot on one date.
type SlotCell struct {
	Slot      TimeSlot
	Date      string
	Available bool
	Selected  bool
	Past      bool
}

// ScheduleGrid lays SlotCells into rows and columns for presentation. Grids
// are bounded (at most 48 rows by 7 columns), so lookups are linear scans.
type ScheduleGrid struct {
	View GridView
	Rows [][]SlotCell
}

func buildCell(slot TimeSlot, s DailySchedule, sel *Selector, now time.Time) SlotCell {
	cell := SlotCell{
		Slot:      slot,
		Date:      s.DateKey(),
		Available: s.IsSlotAvailable(slot),
		Past:      slot.InPast(s.Date(), now),
	}
	if sel != nil {
		cell.Selected = sel.Contains(slot)
	}
	return cell
}

func daySlots(s DailySchedule) []TimeSlot {
	startHour, endHour := s.OperatingHours()
	slots := make([]TimeSlot, 0, (endHour-startHour)*60/SlotMinutes)
	for m := startHour * 60; m < endHour*60; m += SlotMinutes {
		slots = append(slots, TimeSlot{minutes: m})
	}
	return slots
}

// BuildDayGrid lays one schedule out as a single column of slot rows.
func BuildDayGrid(s DailySchedule, sel *Selector, now time.Time) ScheduleGrid {
	grid := ScheduleGrid{View: GridDay}
	for _, slot := range daySlots(s) {
		grid.Rows = append(grid.Rows, []SlotCell{buildCell(slot, s, sel, now)})
	}
	return grid
}

// BuildWeekGrid lays a window out as slot rows crossed with day columns.
func BuildWeekGrid(w *BookingWindow, sel *Selector, now time.Time) ScheduleGrid {
	grid := ScheduleGrid{View: GridWeek}
	dates := w.Dates()
	if len(dates) == 0 {
		return grid
	}
	first, _ := w.Schedule(dates[0])
	for _, slot := range daySlots(first) {
		row := make([]SlotCell, 0, len(dates))
		for _, date := range dates {
			s, ok := w.Schedule(date)
			if !ok {
				continue
			}
			row = append(row, buildCell(slot, s, sel, now))
		}
		grid.Rows = append(grid.Rows, row)
	}
	return grid
}

// BuildRoomGrid lays several rooms' schedules for one day out as slot rows
// crossed with room columns. Schedules must share operating hours.
func BuildRoomGrid(schedules []DailySchedule, sel *Selector, now time.Time) ScheduleGrid {
	grid := ScheduleGrid{View: GridRoom}
	if len(schedules) == 0 {
		return grid
	}
	for _, slot := range daySlots(schedules[0]) {
		row := make([]SlotCell, 0, len(schedules))
		for _, s := range schedules {
			row = append(row, buildCell(slot, s, sel, now))
		}
		grid.Rows = append(grid.Rows, row)
	}
	return grid
}

// BuildCompactGrid lays only the available slots of one schedule out in
// fixed-width rows.
func BuildCompactGrid(s DailySchedule, sel *Selector, now time.Time, columns int) ScheduleGrid {
	if columns <= 0 {
		columns = 4
	}
	grid := ScheduleGrid{View: GridCompact}
	var row []SlotCell
	for _, slot := range s.AvailableSlots() {
		row = append(row, buildCell(slot, s, sel, now))
		if len(row) == columns {
			grid.Rows = append(grid.Rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		grid.Rows = append(grid.Rows, row)
	}
	return grid
}

// FindCell scans for the cell matching the slot and date.
func (g ScheduleGrid) FindCell(slot TimeSlot, date string) (SlotCell, bool) {
	for _, row := range g.Rows {
		for _, cell := range row {
			if cell.Slot.Equals(slot) && cell.Date == date {
				return cell, true
			}
		}
	}
	return SlotCell{}, false
}
