package bookingRepo

import (
	"context"

	"campusbook/models"
)

// BookingRepository defines the data access methods used by the booking and
// availability services.
type BookingRepository interface {
	// Insert persists a new booking record.
	Insert(ctx context.Context, booking *models.Booking) error
	// Update replaces an existing booking document.
	Update(ctx context.Context, booking *models.Booking) error
	// GetByID retrieves a booking by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// FindConflicts returns active bookings of facility+date whose half-open
	// window overlaps [start, end), ascending by start. excludeID, when
	// non-empty, removes that booking from consideration.
	FindConflicts(ctx context.Context, facilityID, date string, start, end int, excludeID string) ([]models.Booking, error)
	// FindActive returns all active bookings for a facility and date,
	// ascending by start.
	FindActive(ctx context.Context, facilityID, date string) ([]models.Booking, error)
	// ListByUser returns a user's bookings, newest first.
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
	// ListAll returns every booking, newest first.
	ListAll(ctx context.Context) ([]models.Booking, error)
	// Stats aggregates booking counts for one user, or for everyone when
	// userID is empty. today scopes the upcoming count.
	Stats(ctx context.Context, userID, today string) (models.BookingStats, error)
	// MarkCompleted flips confirmed bookings dated strictly before the given
	// day to completed, returning how many were updated.
	MarkCompleted(ctx context.Context, before string) (int64, error)
}
