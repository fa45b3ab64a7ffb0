package models

// RoomType is a tagged room category. Capacity, rate and booking rules are
// data, not behavior.
type RoomType string

const (
	RoomTypeSmall      RoomType = "small"
	RoomTypeLarge      RoomType = "large"
	RoomTypeConference RoomType = "conference"
)

// RoomTypeInfo carries the per-category booking rules.
type RoomTypeInfo struct {
	Capacity           int     `json:"capacity"`
	HourlyRate         float64 `json:"hourlyRate"`
	MaxDurationMinutes int     `json:"maxDurationMinutes"`
}

var roomTypeCatalogue = map[RoomType]RoomTypeInfo{
	RoomTypeSmall:      {Capacity: 4, HourlyRate: 10, MaxDurationMinutes: 120},
	RoomTypeLarge:      {Capacity: 10, HourlyRate: 18, MaxDurationMinutes: 180},
	RoomTypeConference: {Capacity: 20, HourlyRate: 30, MaxDurationMinutes: 240},
}

// Info returns the booking rules for the room type.
func (t RoomType) Info() (RoomTypeInfo, bool) {
	info, ok := roomTypeCatalogue[t]
	return info, ok
}

// Valid reports whether the room type is a known category.
func (t RoomType) Valid() bool {
	_, ok := roomTypeCatalogue[t]
	return ok
}

// Room represents a bookable study room.
type Room struct {
	ID        string   `bson:"id" json:"id"`
	Name      string   `bson:"name" json:"name"`
	Type      RoomType `bson:"type" json:"type"`
	Location  string   `bson:"location,omitempty" json:"location,omitempty"`
	OpenHour  int      `bson:"open_hour" json:"open_hour"`   // e.g. 8 for 08:00
	CloseHour int      `bson:"close_hour" json:"close_hour"` // e.g. 22 for 22:00, half-open
	Active    bool     `bson:"active" json:"active"`
}
