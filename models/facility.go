package models

import "time"

// FacilityCategory classifies a bookable facility.
type FacilityCategory string

const (
	CategoryClassroom   FacilityCategory = "classroom"
	CategoryLab         FacilityCategory = "lab"
	CategorySports      FacilityCategory = "sports"
	CategoryAuditorium  FacilityCategory = "auditorium"
	CategoryMeetingRoom FacilityCategory = "meeting_room"
	CategoryOther       FacilityCategory = "other"
)

// Valid reports whether c is a known category.
func (c FacilityCategory) Valid() bool {
	switch c {
	case CategoryClassroom, CategoryLab, CategorySports, CategoryAuditorium, CategoryMeetingRoom, CategoryOther:
		return true
	}
	return false
}

// Facility is a bookable campus resource. Facilities are deactivated rather
// than deleted so historical bookings keep a valid reference.
type Facility struct {
	ID               string           `bson:"id" json:"id"`
	Name             string           `bson:"name" json:"name"`
	Location         string           `bson:"location" json:"location"`
	Capacity         int              `bson:"capacity" json:"capacity"`
	Description      string           `bson:"description,omitempty" json:"description,omitempty"`
	Amenities        []string         `bson:"amenities,omitempty" json:"amenities,omitempty"`
	Category         FacilityCategory `bson:"category" json:"category"`
	ImageURL         string           `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
	RequiresApproval bool             `bson:"requires_approval" json:"requiresApproval"`
	Active           bool             `bson:"active" json:"active"`
	CreatedAt        time.Time        `bson:"created_at" json:"createdAt"`
	UpdatedAt        time.Time        `bson:"updated_at" json:"updatedAt"`
}
