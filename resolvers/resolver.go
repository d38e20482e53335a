package resolvers

import (
	"context"

	facilityRepo "campusbook/database/repository/facility"
	"campusbook/models"
	"campusbook/services/availability"
	"campusbook/services/booking"
	"campusbook/services/facility"
	"campusbook/utils"
)

// Resolver is the facade consumed by the surrounding application layer
// (HTTP controllers live outside this module). It bundles the assembled
// services and applies the configured default day bounds where callers
// leave them out.
type Resolver struct {
	Booking      booking.BookingService
	Facility     facility.FacilityService
	Availability availability.AvailabilityService

	DayStart int // default grid bounds, minutes from midnight
	DayEnd   int
}

// CheckConflicts returns the active reservations colliding with the
// requested window.
func (r *Resolver) CheckConflicts(ctx context.Context, facilityID, date, startTime, endTime, excludeID string) ([]models.Booking, error) {
	return r.Booking.CheckConflicts(ctx, facilityID, date, startTime, endTime, excludeID)
}

// ProjectAvailability returns the daily slot grid. Empty bounds fall back to
// the configured day start/end.
func (r *Resolver) ProjectAvailability(ctx context.Context, facilityID, date, startTime, endTime string) (models.DayAvailability, error) {
	dayStart, dayEnd := r.DayStart, r.DayEnd
	var err error
	if startTime != "" {
		if dayStart, err = models.ParseClock(startTime); err != nil {
			return models.DayAvailability{}, utils.Validationf("%v", err)
		}
	}
	if endTime != "" {
		if dayEnd, err = models.ParseClock(endTime); err != nil {
			return models.DayAvailability{}, utils.Validationf("%v", err)
		}
	}
	return r.Availability.Day(ctx, facilityID, date, dayStart, dayEnd)
}

// ProjectWeeklyAvailability returns aggregate availability for the 7-day
// window anchored at startDate.
func (r *Resolver) ProjectWeeklyAvailability(ctx context.Context, facilityID, startDate string) (models.WeekAvailability, error) {
	return r.Availability.Week(ctx, facilityID, startDate)
}

// CreateReservation persists a new reservation for the actor.
func (r *Resolver) CreateReservation(ctx context.Context, input models.CreateBookingInput, actor models.Actor) (*models.Booking, error) {
	return r.Booking.Create(ctx, input, actor)
}

// UpdateReservation applies a patch under the ownership rules.
func (r *Resolver) UpdateReservation(ctx context.Context, id string, patch models.UpdateBookingPatch, actor models.Actor) (*models.Booking, error) {
	return r.Booking.Update(ctx, id, patch, actor)
}

// CancelReservation moves a reservation to cancelled.
func (r *Resolver) CancelReservation(ctx context.Context, id string, actor models.Actor) (*models.Booking, error) {
	return r.Booking.Cancel(ctx, id, actor)
}

// ListFacilities returns the bookable inventory.
func (r *Resolver) ListFacilities(ctx context.Context, filter facilityRepo.ListFilter) ([]models.Facility, error) {
	return r.Facility.List(ctx, filter)
}
