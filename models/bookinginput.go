package models

// CreateBookingInput is the payload for creating a booking. Times are
// "HH:MM" strings and are validated by the booking service before anything
// touches storage.
type CreateBookingInput struct {
	FacilityID string `json:"facilityId"`
	Date       string `json:"date"`      // "YYYY-MM-DD"
	StartTime  string `json:"startTime"` // "HH:MM"
	EndTime    string `json:"endTime"`   // "HH:MM"
	Purpose    string `json:"purpose,omitempty"`
	Attendees  int    `json:"attendees"`
}

// UpdateBookingPatch carries the mutable booking fields. Nil pointers mean
// "leave unchanged". Status and AdminNotes are honoured for admins only.
type UpdateBookingPatch struct {
	Date       *string `json:"date,omitempty"`
	StartTime  *string `json:"startTime,omitempty"`
	EndTime    *string `json:"endTime,omitempty"`
	Purpose    *string `json:"purpose,omitempty"`
	Attendees  *int    `json:"attendees,omitempty"`
	Status     *string `json:"status,omitempty"`
	AdminNotes *string `json:"adminNotes,omitempty"`
}

// FacilityInput is the admin payload for creating or updating a facility.
type FacilityInput struct {
	Name             string           `json:"name"`
	Location         string           `json:"location"`
	Capacity         int              `json:"capacity"`
	Description      string           `json:"description,omitempty"`
	Amenities        []string         `json:"amenities,omitempty"`
	Category         FacilityCategory `json:"category"`
	ImageURL         string           `json:"imageUrl,omitempty"`
	RequiresApproval bool             `json:"requiresApproval"`
}
