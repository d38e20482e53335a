package availability

import (
	"context"
	"time"

	bookingRepo "campusbook/database/repository/booking"
	facilityRepo "campusbook/database/repository/facility"
	"campusbook/models"

	"go.uber.org/zap"
)

// AvailabilityService projects booking state onto the slot grid.
type AvailabilityService interface {
	// Day returns the full slot projection for one facility and date.
	Day(ctx context.Context, facilityID, date string, dayStart, dayEnd int) (models.DayAvailability, error)
	// Week returns aggregate-only summaries for seven consecutive days
	// anchored at startDate, using the default day bounds.
	Week(ctx context.Context, facilityID, startDate string) (models.WeekAvailability, error)
}

// DefaultAvailabilityService is the production projector.
type DefaultAvailabilityService struct {
	FacilityRepo facilityRepo.FacilityRepository
	BookingRepo  bookingRepo.BookingRepository
	Cache        *Cache // optional; nil disables caching
	DayStart     int    // default grid bounds, minutes from midnight
	DayEnd       int
	Logger       *zap.Logger
}

func (svc *DefaultAvailabilityService) Day(ctx context.Context, facilityID, date string, dayStart, dayEnd int) (models.DayAvailability, error) {
	if _, err := svc.FacilityRepo.GetActiveByID(ctx, facilityID); err != nil {
		return models.DayAvailability{}, err
	}

	if svc.Cache != nil {
		if cached := svc.Cache.GetDay(ctx, facilityID, date, dayStart, dayEnd); cached != nil {
			return *cached, nil
		}
	}

	day, err := svc.project(ctx, facilityID, date, dayStart, dayEnd)
	if err != nil {
		return models.DayAvailability{}, err
	}

	if svc.Cache != nil {
		svc.Cache.SetDay(ctx, day, dayStart, dayEnd)
	}
	return day, nil
}

func (svc *DefaultAvailabilityService) Week(ctx context.Context, facilityID, startDate string) (models.WeekAvailability, error) {
	if _, err := svc.FacilityRepo.GetActiveByID(ctx, facilityID); err != nil {
		return models.WeekAvailability{}, err
	}
	start, err := models.ParseDate(startDate, time.UTC)
	if err != nil {
		return models.WeekAvailability{}, err
	}

	week := models.WeekAvailability{FacilityID: facilityID, StartDate: startDate}
	for i := 0; i < 7; i++ {
		d := start.AddDate(0, 0, i)
		dateStr := d.Format(models.DateLayout)

		day, err := svc.project(ctx, facilityID, dateStr, svc.DayStart, svc.DayEnd)
		if err != nil {
			return models.WeekAvailability{}, err
		}
		week.Days = append(week.Days, models.WeekDay{
			Date:      dateStr,
			DayOfWeek: d.Weekday().String(),
			Total:     day.Summary.Total,
			Available: day.Summary.Available,
			Occupied:  day.Summary.Occupied,
		})
	}
	return week, nil
}

// project builds the grid and overlays active bookings. When a slot matches
// more than one active booking the last match wins; that state means the
// write-path conflict guarantee was violated upstream, so it is logged.
func (svc *DefaultAvailabilityService) project(ctx context.Context, facilityID, date string, dayStart, dayEnd int) (models.DayAvailability, error) {
	slots := GenerateSlots(dayStart, dayEnd)

	active, err := svc.BookingRepo.FindActive(ctx, facilityID, date)
	if err != nil {
		return models.DayAvailability{}, err
	}

	for i := range slots {
		matches := 0
		for _, b := range active {
			if !b.OverlapsWindow(slots[i].Start, slots[i].End) {
				continue
			}
			matches++
			slots[i].Status = slotStatus(b.Status)
			slots[i].BookingID = b.ID
			slots[i].UserID = b.UserID
		}
		if matches > 1 {
			svc.Logger.Warn("slot overlaps multiple active bookings",
				zap.String("facilityId", facilityID),
				zap.String("date", date),
				zap.String("slot", slots[i].Label),
				zap.Int("matches", matches))
		}
	}

	summary := models.DaySummary{Total: len(slots)}
	for _, s := range slots {
		if s.Status == models.SlotAvailable {
			summary.Available++
		} else {
			summary.Occupied++
		}
	}

	return models.DayAvailability{
		FacilityID: facilityID,
		Date:       date,
		Slots:      slots,
		Summary:    summary,
	}, nil
}

func slotStatus(s models.BookingStatus) models.SlotStatus {
	if s == models.StatusPending {
		return models.SlotPending
	}
	return models.SlotBooked
}
