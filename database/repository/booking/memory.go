package bookingRepo

import (
	"context"
	"sort"
	"sync"

	"campusbook/models"
	"campusbook/utils"
)

// MemoryBookingRepo is a mutex-guarded in-memory BookingRepository used in
// tests and local runs without a database.
type MemoryBookingRepo struct {
	mu   sync.RWMutex
	byID map[string]models.Booking
}

func NewMemoryBookingRepo() *MemoryBookingRepo {
	return &MemoryBookingRepo{byID: make(map[string]models.Booking)}
}

func (repo *MemoryBookingRepo) Insert(ctx context.Context, booking *models.Booking) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	repo.byID[booking.ID] = *booking
	return nil
}

func (repo *MemoryBookingRepo) Update(ctx context.Context, booking *models.Booking) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if _, ok := repo.byID[booking.ID]; !ok {
		return utils.NotFoundf("booking not found: %s", booking.ID)
	}
	repo.byID[booking.ID] = *booking
	return nil
}

func (repo *MemoryBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	b, ok := repo.byID[id]
	if !ok {
		return nil, utils.NotFoundf("booking not found: %s", id)
	}
	return &b, nil
}

func (repo *MemoryBookingRepo) FindConflicts(ctx context.Context, facilityID, date string, start, end int, excludeID string) ([]models.Booking, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	out := []models.Booking{}
	for _, b := range repo.byID {
		if b.FacilityID != facilityID || b.Date != date || b.ID == excludeID {
			continue
		}
		if !b.Status.IsActive() || !b.OverlapsWindow(start, end) {
			continue
		}
		out = append(out, b)
	}
	sortByStart(out)
	return out, nil
}

func (repo *MemoryBookingRepo) FindActive(ctx context.Context, facilityID, date string) ([]models.Booking, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	out := []models.Booking{}
	for _, b := range repo.byID {
		if b.FacilityID == facilityID && b.Date == date && b.Status.IsActive() {
			out = append(out, b)
		}
	}
	sortByStart(out)
	return out, nil
}

func (repo *MemoryBookingRepo) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	out := []models.Booking{}
	for _, b := range repo.byID {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (repo *MemoryBookingRepo) ListAll(ctx context.Context) ([]models.Booking, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	out := []models.Booking{}
	for _, b := range repo.byID {
		out = append(out, b)
	}
	sortNewestFirst(out)
	return out, nil
}

func (repo *MemoryBookingRepo) Stats(ctx context.Context, userID, today string) (models.BookingStats, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	var stats models.BookingStats
	for _, b := range repo.byID {
		if userID != "" && b.UserID != userID {
			continue
		}
		stats.Total++
		switch b.Status {
		case models.StatusConfirmed:
			stats.Confirmed++
			if b.Date >= today {
				stats.Upcoming++
			}
		case models.StatusPending:
			stats.Pending++
		case models.StatusCancelled:
			stats.Cancelled++
		}
	}
	return stats, nil
}

func (repo *MemoryBookingRepo) MarkCompleted(ctx context.Context, before string) (int64, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	var n int64
	for id, b := range repo.byID {
		if b.Status == models.StatusConfirmed && b.Date < before {
			b.Status = models.StatusCompleted
			repo.byID[id] = b
			n++
		}
	}
	return n, nil
}

func sortByStart(bookings []models.Booking) {
	sort.Slice(bookings, func(i, j int) bool {
		if bookings[i].Start != bookings[j].Start {
			return bookings[i].Start < bookings[j].Start
		}
		return bookings[i].ID < bookings[j].ID
	})
}

func sortNewestFirst(bookings []models.Booking) {
	sort.Slice(bookings, func(i, j int) bool {
		if !bookings[i].CreatedAt.Equal(bookings[j].CreatedAt) {
			return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
		}
		return bookings[i].ID < bookings[j].ID
	})
}
