package facility

import (
	"context"
	"strings"

	facilityRepo "campusbook/database/repository/facility"
	"campusbook/models"
	"campusbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FacilityService manages the bookable inventory. Mutations are admin-only;
// listing is open to every actor.
type FacilityService interface {
	Create(ctx context.Context, input models.FacilityInput, actor models.Actor) (*models.Facility, error)
	Update(ctx context.Context, id string, input models.FacilityInput, actor models.Actor) (*models.Facility, error)
	// Deactivate soft-deletes a facility; historical bookings keep pointing
	// at it.
	Deactivate(ctx context.Context, id string, actor models.Actor) error
	Get(ctx context.Context, id string) (*models.Facility, error)
	List(ctx context.Context, filter facilityRepo.ListFilter) ([]models.Facility, error)
}

// DefaultFacilityService implements FacilityService.
type DefaultFacilityService struct {
	Repo   facilityRepo.FacilityRepository
	Clock  utils.Clock
	Logger *zap.Logger
}

func (svc *DefaultFacilityService) Create(ctx context.Context, input models.FacilityInput, actor models.Actor) (*models.Facility, error) {
	if !actor.IsAdmin() {
		return nil, utils.Authorizationf("facility management is reserved for admins")
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	now := svc.Clock.Now()
	facility := &models.Facility{
		ID:               uuid.NewString(),
		Name:             strings.TrimSpace(input.Name),
		Location:         strings.TrimSpace(input.Location),
		Capacity:         input.Capacity,
		Description:      input.Description,
		Amenities:        input.Amenities,
		Category:         input.Category,
		ImageURL:         input.ImageURL,
		RequiresApproval: input.RequiresApproval,
		Active:           true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := svc.Repo.Insert(ctx, facility); err != nil {
		return nil, err
	}

	svc.Logger.Info("facility created",
		zap.String("facilityId", facility.ID), zap.String("name", facility.Name))
	return facility, nil
}

func (svc *DefaultFacilityService) Update(ctx context.Context, id string, input models.FacilityInput, actor models.Actor) (*models.Facility, error) {
	if !actor.IsAdmin() {
		return nil, utils.Authorizationf("facility management is reserved for admins")
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	facility, err := svc.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	facility.Name = strings.TrimSpace(input.Name)
	facility.Location = strings.TrimSpace(input.Location)
	facility.Capacity = input.Capacity
	facility.Description = input.Description
	facility.Amenities = input.Amenities
	facility.Category = input.Category
	facility.ImageURL = input.ImageURL
	facility.RequiresApproval = input.RequiresApproval
	facility.UpdatedAt = svc.Clock.Now()

	if err := svc.Repo.Update(ctx, facility); err != nil {
		return nil, err
	}
	return facility, nil
}

func (svc *DefaultFacilityService) Deactivate(ctx context.Context, id string, actor models.Actor) error {
	if !actor.IsAdmin() {
		return utils.Authorizationf("facility management is reserved for admins")
	}
	if err := svc.Repo.SetActive(ctx, id, false); err != nil {
		return err
	}
	svc.Logger.Info("facility deactivated", zap.String("facilityId", id))
	return nil
}

func (svc *DefaultFacilityService) Get(ctx context.Context, id string) (*models.Facility, error) {
	return svc.Repo.GetByID(ctx, id)
}

func (svc *DefaultFacilityService) List(ctx context.Context, filter facilityRepo.ListFilter) ([]models.Facility, error) {
	return svc.Repo.List(ctx, filter)
}

func validateInput(input models.FacilityInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return utils.Validationf("name is required")
	}
	if strings.TrimSpace(input.Location) == "" {
		return utils.Validationf("location is required")
	}
	if input.Capacity <= 0 {
		return utils.Validationf("capacity must be a positive integer")
	}
	if !input.Category.Valid() {
		return utils.Validationf("invalid facility category: %s", input.Category)
	}
	return nil
}
