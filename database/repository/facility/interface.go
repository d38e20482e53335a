package facilityRepo

import (
	"context"

	"campusbook/models"
)

// ListFilter narrows facility listings. Zero values mean "no filter".
type ListFilter struct {
	Category   models.FacilityCategory
	ActiveOnly bool
}

// FacilityRepository defines the data access methods for facility inventory.
type FacilityRepository interface {
	// Insert persists a new facility.
	Insert(ctx context.Context, facility *models.Facility) error
	// Update replaces an existing facility document.
	Update(ctx context.Context, facility *models.Facility) error
	// GetByID retrieves a facility regardless of its active flag.
	GetByID(ctx context.Context, id string) (*models.Facility, error)
	// GetActiveByID retrieves a facility only if it is active.
	GetActiveByID(ctx context.Context, id string) (*models.Facility, error)
	// List returns facilities matching the filter, ordered by name.
	List(ctx context.Context, filter ListFilter) ([]models.Facility, error)
	// SetActive flips the soft-delete flag.
	SetActive(ctx context.Context, id string, active bool) error
}
