package models

// AvailableSlot is the wire form of a bookable 30-minute start slot.
type AvailableSlot struct {
	Time        string `json:"time"`        // "HH:MM"
	DisplayTime string `json:"displayTime"` // "h:mm AM/PM"
	Minutes     int    `json:"minutes"`     // minutes from midnight
}

// UtilizationStats summarizes one day's booked/free split for a room.
type UtilizationStats struct {
	TotalSlots            int     `json:"totalSlots"`
	AvailableSlots        int     `json:"availableSlots"`
	BookedSlots           int     `json:"bookedSlots"`
	UtilizationPercentage float64 `json:"utilizationPercentage"`
}

// DayAvailability is the per-day availability view returned for week queries.
type DayAvailability struct {
	Date        string           `json:"date"`
	Slots       []AvailableSlot  `json:"slots"`
	Utilization UtilizationStats `json:"utilization"`
}

// WeekAvailability groups a rolling window's availability for one room.
type WeekAvailability struct {
	RoomID             string            `json:"roomId"`
	WindowStart        string            `json:"windowStart"`
	Days               []DayAvailability `json:"days"`
	AverageUtilization float64           `json:"averageUtilization"`
	TotalBookings      int               `json:"totalBookings"`
}
