package models

import "time"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusRejected  BookingStatus = "rejected"
	StatusCompleted BookingStatus = "completed"
)

// ActiveStatuses are the states that hold a facility window and can conflict
// with new bookings. Cancelled, rejected and completed bookings never do.
var ActiveStatuses = []BookingStatus{StatusPending, StatusConfirmed}

// transitionMap lists the reachable target states per current state.
// Cancelled, rejected and completed are terminal.
var transitionMap = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusRejected, StatusCancelled},
	StatusConfirmed: {StatusCancelled, StatusCompleted},
}

// IsActive reports whether the booking still occupies its window.
func (s BookingStatus) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

// IsTerminal reports whether no further transition is allowed.
func (s BookingStatus) IsTerminal() bool {
	return s == StatusCancelled || s == StatusRejected || s == StatusCompleted
}

// Valid reports whether s is a known status value.
func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusRejected, StatusCompleted:
		return true
	}
	return false
}

// ValidTransition reports whether a booking may move from one status to another.
func ValidTransition(from, to BookingStatus) bool {
	for _, allowed := range transitionMap[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Booking represents a facility reservation record.
type Booking struct {
	ID         string        `bson:"id" json:"id"`                  // UUID
	FacilityID string        `bson:"facility_id" json:"facilityId"` // Facility being reserved
	UserID     string        `bson:"user_id" json:"userId"`         // User who made the booking
	Date       string        `bson:"date" json:"date"`              // "YYYY-MM-DD"
	Start      int           `bson:"start" json:"start"`            // minutes from midnight
	End        int           `bson:"end" json:"end"`                // minutes from midnight, exclusive
	Status     BookingStatus `bson:"status" json:"status"`
	Purpose    string        `bson:"purpose,omitempty" json:"purpose,omitempty"`
	Attendees  int           `bson:"attendees" json:"attendees"`
	AdminNotes string        `bson:"admin_notes,omitempty" json:"adminNotes,omitempty"`
	CreatedAt  time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time     `bson:"updated_at" json:"updatedAt"`
}

// OverlapsWindow reports whether the booking's half-open window intersects
// [start, end).
func (b *Booking) OverlapsWindow(start, end int) bool {
	return Overlaps(b.Start, b.End, start, end)
}

// BookingStats summarises a set of bookings for dashboard views.
type BookingStats struct {
	Total     int64 `json:"total"`
	Confirmed int64 `json:"confirmed"`
	Pending   int64 `json:"pending"`
	Cancelled int64 `json:"cancelled"`
	Upcoming  int64 `json:"upcoming"` // confirmed with date >= today
}
