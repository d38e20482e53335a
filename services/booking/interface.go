package booking

import (
	"context"

	bookingRepo "campusbook/database/repository/booking"
	facilityRepo "campusbook/database/repository/facility"
	"campusbook/models"
	"campusbook/services/availability"
	"campusbook/services/notification"
	"campusbook/utils"

	"go.uber.org/zap"
)

// BookingList pairs a booking listing with its aggregate stats.
type BookingList struct {
	Data  []models.Booking    `json:"data"`
	Stats models.BookingStats `json:"stats"`
}

// BookingService is the lifecycle manager for reservations.
type BookingService interface {
	// CheckConflicts returns the active bookings whose window overlaps the
	// requested one. Pure read.
	CheckConflicts(ctx context.Context, facilityID, date, startTime, endTime, excludeID string) ([]models.Booking, error)
	// Create validates and persists a new booking.
	Create(ctx context.Context, input models.CreateBookingInput, actor models.Actor) (*models.Booking, error)
	// Update applies a patch under the ownership and transition rules.
	Update(ctx context.Context, id string, patch models.UpdateBookingPatch, actor models.Actor) (*models.Booking, error)
	// Cancel moves a booking to cancelled. Invalid from terminal states.
	Cancel(ctx context.Context, id string, actor models.Actor) (*models.Booking, error)
	// Approve confirms a pending booking. Admin only.
	Approve(ctx context.Context, id string, actor models.Actor) (*models.Booking, error)
	// Reject declines a pending booking with an optional note. Admin only.
	Reject(ctx context.Context, id string, actor models.Actor, note string) (*models.Booking, error)
	// Get returns one booking, visible to its owner or an admin.
	Get(ctx context.Context, id string, actor models.Actor) (*models.Booking, error)
	// List returns the actor's bookings (all of them for admins) with stats.
	List(ctx context.Context, actor models.Actor) (BookingList, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo         bookingRepo.BookingRepository
	FacilityRepo facilityRepo.FacilityRepository
	Dispatcher   notification.Dispatcher
	Cache        *availability.Cache // optional; nil disables invalidation
	Clock        utils.Clock
	MaxHours     int // longest allowed single booking
	Logger       *zap.Logger

	locks windowLocks
}
