package facilityRepo

import (
	"context"
	"sort"
	"sync"
	"time"

	"campusbook/models"
	"campusbook/utils"
)

// MemoryFacilityRepo is a mutex-guarded in-memory FacilityRepository used in
// tests and local runs without a database.
type MemoryFacilityRepo struct {
	mu   sync.RWMutex
	byID map[string]models.Facility
}

func NewMemoryFacilityRepo() *MemoryFacilityRepo {
	return &MemoryFacilityRepo{byID: make(map[string]models.Facility)}
}

func (repo *MemoryFacilityRepo) Insert(ctx context.Context, facility *models.Facility) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	repo.byID[facility.ID] = *facility
	return nil
}

func (repo *MemoryFacilityRepo) Update(ctx context.Context, facility *models.Facility) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if _, ok := repo.byID[facility.ID]; !ok {
		return utils.NotFoundf("facility not found: %s", facility.ID)
	}
	repo.byID[facility.ID] = *facility
	return nil
}

func (repo *MemoryFacilityRepo) GetByID(ctx context.Context, id string) (*models.Facility, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	f, ok := repo.byID[id]
	if !ok {
		return nil, utils.NotFoundf("facility not found: %s", id)
	}
	return &f, nil
}

func (repo *MemoryFacilityRepo) GetActiveByID(ctx context.Context, id string) (*models.Facility, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	f, ok := repo.byID[id]
	if !ok || !f.Active {
		return nil, utils.NotFoundf("facility not found: %s", id)
	}
	return &f, nil
}

func (repo *MemoryFacilityRepo) List(ctx context.Context, filter ListFilter) ([]models.Facility, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	out := []models.Facility{}
	for _, f := range repo.byID {
		if filter.Category != "" && f.Category != filter.Category {
			continue
		}
		if filter.ActiveOnly && !f.Active {
			continue
		}
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (repo *MemoryFacilityRepo) SetActive(ctx context.Context, id string, active bool) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	f, ok := repo.byID[id]
	if !ok {
		return utils.NotFoundf("facility not found: %s", id)
	}
	f.Active = active
	f.UpdatedAt = time.Now()
	repo.byID[id] = f
	return nil
}
