package models

// SlotStatus tags a slot in an availability grid.
type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotPending   SlotStatus = "pending"
	SlotBooked    SlotStatus = "booked"
)

// Slot is a derived half-hour window in the availability grid. Slots are
// never persisted; they are recomputed on every query.
type Slot struct {
	Start     int        `json:"start"`      // minutes from midnight
	End       int        `json:"end"`        // minutes from midnight, exclusive
	Label     string     `json:"label"`      // "HH:MM-HH:MM" for display
	Status    SlotStatus `json:"status"`
	BookingID string     `json:"bookingId,omitempty"` // occupying booking, if any
	UserID    string     `json:"userId,omitempty"`    // owner of the occupying booking
}

// DaySummary tallies slot statuses after projection.
type DaySummary struct {
	Total     int `json:"total"`
	Available int `json:"available"`
	Occupied  int `json:"occupied"`
}

// DayAvailability is the full projection for one facility and date.
type DayAvailability struct {
	FacilityID string     `json:"facilityId"`
	Date       string     `json:"date"`
	Slots      []Slot     `json:"slots"`
	Summary    DaySummary `json:"summary"`
}

// WeekDay is the aggregate-only projection of a single day inside a week.
type WeekDay struct {
	Date      string `json:"date"`
	DayOfWeek string `json:"dayOfWeek"`
	Total     int    `json:"total"`
	Available int    `json:"available"`
	Occupied  int    `json:"occupied"`
}

// WeekAvailability reports per-day summaries for a fixed 7-day window.
// Full slot detail is omitted to bound response size.
type WeekAvailability struct {
	FacilityID string    `json:"facilityId"`
	StartDate  string    `json:"startDate"`
	Days       []WeekDay `json:"days"`
}
