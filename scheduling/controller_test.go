package scheduling

import (
	"context"
	"errors"
	"testing"
	"time"

	"studyrooms/models"
)

// fakeCreator records the last request and can be forced to fail.
type fakeCreator struct {
	lastReq models.BookingRequest
	fail    error
}

func (f *fakeCreator) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	f.lastReq = req
	if f.fail != nil {
		return nil, f.fail
	}
	return &models.Booking{
		ID:              "bk-1",
		RoomID:          req.RoomID,
		Date:            req.Date,
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
		Status:          models.BookingStatusConfirmed,
	}, nil
}

func newTestController(t *testing.T, creator *fakeCreator) (*Controller, *[]error) {
	t.Helper()
	var reported []error
	c := &Controller{
		RoomID:   "room-1",
		Schedule: mustSchedule(t),
		Selector: NewSelector(SelectionRange),
		Creator:  creator,
		OnError:  func(err error) { reported = append(reported, err) },
		Now: func() time.Time {
			return time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)
		},
	}
	return c, &reported
}

func TestController_ClickGate(t *testing.T) {
	c, reported := newTestController(t, &fakeCreator{})
	c.Schedule = mustSchedule(t, mustRange(t, "14:00", 60))

	// A click on a booked slot is rejected and reported.
	c.HandleSlotClick(mustSlot(t, "14:00"))
	if c.Selector.Count() != 0 {
		t.Error("rejected click must not select")
	}
	if len(*reported) != 1 || ErrorCode((*reported)[0]) != CodeUnavailable {
		t.Fatalf("expected one unavailable report, got %v", *reported)
	}

	// A past slot is rejected too.
	c.HandleSlotClick(mustSlot(t, "08:00"))
	if c.Selector.Count() != 0 {
		t.Error("past click must not select")
	}

	// Free future slots pass through to the strategy.
	c.HandleSlotClick(mustSlot(t, "15:00"))
	if c.Selector.Count() != 1 {
		t.Error("valid click should select")
	}

	// Deselection of a selected slot bypasses the availability gate.
	c.HandleSlotClick(mustSlot(t, "15:00"))
	if c.Selector.Count() != 0 {
		t.Error("re-click should deselect")
	}
}

func TestController_CanBook(t *testing.T) {
	c, _ := newTestController(t, &fakeCreator{})
	if c.CanBook() {
		t.Error("empty selection cannot book")
	}

	c.HandleSlotClick(mustSlot(t, "14:00"))
	c.HandleSlotClick(mustSlot(t, "15:00"))
	if !c.CanBook() {
		t.Error("a contiguous 90m selection can book")
	}
}

func TestController_CreateBooking(t *testing.T) {
	creator := &fakeCreator{}
	c, reported := newTestController(t, creator)

	c.HandleSlotClick(mustSlot(t, "14:00"))
	c.HandleSlotClick(mustSlot(t, "15:00"))

	booking, err := c.CreateBooking(context.Background())
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	if booking.ID != "bk-1" {
		t.Fatalf("unexpected booking %+v", booking)
	}

	// The legacy wire form carries start time and duration.
	if creator.lastReq.RoomID != "room-1" ||
		creator.lastReq.Date != "2026-03-09" ||
		creator.lastReq.StartTime != "14:00" ||
		creator.lastReq.DurationMinutes != 90 {
		t.Fatalf("unexpected request %+v", creator.lastReq)
	}

	if c.Selector.Count() != 0 {
		t.Error("selection should clear on success")
	}
	if c.Schedule.IsAvailable(mustRange(t, "14:00", 90)) {
		t.Error("local schedule should reflect the new booking")
	}
	if len(*reported) != 0 {
		t.Errorf("no errors expected, got %v", *reported)
	}
}

func TestController_CreateBookingFailures(t *testing.T) {
	c, reported := newTestController(t, &fakeCreator{})

	// No selection: fails locally and reports.
	if _, err := c.CreateBooking(context.Background()); ErrorCode(err) != CodeInvalidRange {
		t.Fatalf("expected invalidRange, got %v", err)
	}
	if len(*reported) != 1 {
		t.Fatalf("expected one report, got %d", len(*reported))
	}

	// Collaborator failures surface through the callback and the return.
	boom := errors.New("storage down")
	creator := &fakeCreator{fail: boom}
	c2, reported2 := newTestController(t, creator)
	c2.HandleSlotClick(mustSlot(t, "14:00"))
	if _, err := c2.CreateBooking(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected collaborator error, got %v", err)
	}
	if len(*reported2) != 1 || !errors.Is((*reported2)[0], boom) {
		t.Fatalf("collaborator error must reach OnError, got %v", *reported2)
	}
	// Selection survives a failed submission.
	if c2.Selector.Count() != 1 {
		t.Error("selection must remain after a failure")
	}
}
