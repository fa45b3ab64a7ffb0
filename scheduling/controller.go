package scheduling

import (
	"context"
	"time"

	"studyrooms/models"
)

// BookingCreator is the collaborator that persists a resolved booking
// request. Conflict and validation failures surface as errors.
type BookingCreator interface {
	CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error)
}

// Controller mediates between raw slot clicks and booking-request
// construction for one room on one day.
type Controller struct {
	RoomID   string
	UserID   string
	Schedule DailySchedule
	Selector *Selector
	Creator  BookingCreator

	// OnError receives every validation or collaborator failure; errors are
	// never swallowed.
	OnError func(error)

	// Now is injectable for tests; nil means time.Now.
	Now func() time.Time
}

func (c *Controller) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c *Controller) reportError(err error) {
	if c.OnError != nil {
		c.OnError(err)
	}
}

// HandleSlotClick routes a click through the selection strategy. Clicks on
// already-selected slots always reach the strategy so deselection works;
// otherwise the slot must pass the availability/past gate.
func (c *Controller) HandleSlotClick(slot TimeSlot) {
	if !c.Selector.Contains(slot) && !c.Selector.CanSelect(slot, c.Schedule, c.now()) {
		c.reportError(newSlotError(CodeUnavailable, "slot %s cannot be selected", slot))
		return
	}
	c.Selector.Select(slot)
}

// CanBook reports whether the current selection resolves to a legal,
// available booking.
func (c *Controller) CanBook() bool {
	if c.Selector.Count() == 0 || !c.Selector.IsValidSelection() {
		return false
	}
	r, ok := c.Selector.SelectionRange()
	if !ok || !r.ValidBookingDuration() {
		return false
	}
	return c.Schedule.IsAvailable(r)
}

// CreateBooking submits the resolved selection to the booking collaborator
// in legacy wire form and clears the selection on success. The local
// schedule is replaced with the derived one so subsequent availability
// checks reflect the new booking.
func (c *Controller) CreateBooking(ctx context.Context) (*models.Booking, error) {
	if !c.CanBook() {
		err := newSlotError(CodeInvalidRange, "selection does not resolve to a bookable range")
		c.reportError(err)
		return nil, err
	}
	r, _ := c.Selector.SelectionRange()

	req := models.BookingRequest{
		RoomID:          c.RoomID,
		UserID:          c.UserID,
		Date:            c.Schedule.DateKey(),
		StartTime:       r.Start().String(),
		DurationMinutes: r.DurationMinutes(),
	}
	booking, err := c.Creator.CreateBooking(ctx, req)
	if err != nil {
		c.reportError(err)
		return nil, err
	}

	if next, err := c.Schedule.AddBooking(r); err == nil {
		c.Schedule = next
	}
	c.Selector.Clear()
	return booking, nil
}
