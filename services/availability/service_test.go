package availability

import (
	"context"
	"testing"
	"time"

	bookingRepo "campusbook/database/repository/booking"
	facilityRepo "campusbook/database/repository/facility"
	"campusbook/models"
	"campusbook/utils"

	"go.uber.org/zap"
)

const (
	testFacility = "fac-1"
	testDate     = "2026-03-02"
	dayStart     = 480  // 08:00
	dayEnd       = 1320 // 22:00
)

func newTestService(t *testing.T) (*DefaultAvailabilityService, *bookingRepo.MemoryBookingRepo) {
	t.Helper()
	facilities := facilityRepo.NewMemoryFacilityRepo()
	bookings := bookingRepo.NewMemoryBookingRepo()

	err := facilities.Insert(context.Background(), &models.Facility{
		ID:       testFacility,
		Name:     "Main Hall",
		Location: "Block A",
		Capacity: 40,
		Category: models.CategoryAuditorium,
		Active:   true,
	})
	if err != nil {
		t.Fatalf("seed facility: %v", err)
	}

	return &DefaultAvailabilityService{
		FacilityRepo: facilities,
		BookingRepo:  bookings,
		DayStart:     dayStart,
		DayEnd:       dayEnd,
		Logger:       zap.NewNop(),
	}, bookings
}

func seedBooking(t *testing.T, repo *bookingRepo.MemoryBookingRepo, id string, start, end int, status models.BookingStatus) {
	t.Helper()
	err := repo.Insert(context.Background(), &models.Booking{
		ID:         id,
		FacilityID: testFacility,
		UserID:     "user-1",
		Date:       testDate,
		Start:      start,
		End:        end,
		Status:     status,
		Attendees:  5,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	})
	if err != nil {
		t.Fatalf("seed booking %s: %v", id, err)
	}
}

func TestDayMarksBookedSlots(t *testing.T) {
	svc, bookings := newTestService(t)
	seedBooking(t, bookings, "b-1", 540, 660, models.StatusConfirmed) // 09:00-11:00

	day, err := svc.Day(context.Background(), testFacility, testDate, dayStart, dayEnd)
	if err != nil {
		t.Fatalf("Day: %v", err)
	}

	occupied := map[string]bool{
		"09:00-09:30": true,
		"09:30-10:00": true,
		"10:00-10:30": true,
		"10:30-11:00": true,
	}
	for _, s := range day.Slots {
		if occupied[s.Label] {
			if s.Status != models.SlotBooked {
				t.Errorf("slot %s: got %s, want booked", s.Label, s.Status)
			}
			if s.BookingID != "b-1" || s.UserID != "user-1" {
				t.Errorf("slot %s missing occupant info", s.Label)
			}
		} else if s.Status != models.SlotAvailable {
			t.Errorf("slot %s: got %s, want available", s.Label, s.Status)
		}
	}

	if day.Summary.Total != 28 || day.Summary.Occupied != 4 || day.Summary.Available != 24 {
		t.Errorf("summary = %+v", day.Summary)
	}
	if day.Summary.Available+day.Summary.Occupied != day.Summary.Total {
		t.Error("summary does not add up")
	}
}

func TestDayMarksPendingSlots(t *testing.T) {
	svc, bookings := newTestService(t)
	seedBooking(t, bookings, "b-1", 600, 630, models.StatusPending)

	day, err := svc.Day(context.Background(), testFacility, testDate, dayStart, dayEnd)
	if err != nil {
		t.Fatalf("Day: %v", err)
	}
	for _, s := range day.Slots {
		if s.Label == "10:00-10:30" && s.Status != models.SlotPending {
			t.Errorf("pending booking projected as %s", s.Status)
		}
	}
}

func TestDayIgnoresInactiveStatuses(t *testing.T) {
	svc, bookings := newTestService(t)
	seedBooking(t, bookings, "b-1", 540, 660, models.StatusCancelled)
	seedBooking(t, bookings, "b-2", 540, 660, models.StatusRejected)
	seedBooking(t, bookings, "b-3", 540, 660, models.StatusCompleted)

	day, err := svc.Day(context.Background(), testFacility, testDate, dayStart, dayEnd)
	if err != nil {
		t.Fatalf("Day: %v", err)
	}
	if day.Summary.Occupied != 0 {
		t.Errorf("terminal bookings occupied %d slots", day.Summary.Occupied)
	}
}

func TestDayUnknownFacility(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Day(context.Background(), "nope", testDate, dayStart, dayEnd)
	if !utils.IsKind(err, utils.KindNotFound) {
		t.Errorf("got %v, want not_found", err)
	}
}

func TestDayInactiveFacility(t *testing.T) {
	svc, _ := newTestService(t)
	if err := svc.FacilityRepo.SetActive(context.Background(), testFacility, false); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	_, err := svc.Day(context.Background(), testFacility, testDate, dayStart, dayEnd)
	if !utils.IsKind(err, utils.KindNotFound) {
		t.Errorf("got %v, want not_found", err)
	}
}

func TestWeekAggregates(t *testing.T) {
	svc, bookings := newTestService(t)
	seedBooking(t, bookings, "b-1", 540, 660, models.StatusConfirmed)

	week, err := svc.Week(context.Background(), testFacility, "2026-03-01")
	if err != nil {
		t.Fatalf("Week: %v", err)
	}
	if len(week.Days) != 7 {
		t.Fatalf("got %d days, want 7", len(week.Days))
	}
	for i, d := range week.Days {
		if d.Available+d.Occupied != d.Total {
			t.Errorf("day %d summary does not add up: %+v", i, d)
		}
		wantOccupied := 0
		if d.Date == testDate {
			wantOccupied = 4
		}
		if d.Occupied != wantOccupied {
			t.Errorf("day %s: occupied=%d, want %d", d.Date, d.Occupied, wantOccupied)
		}
	}
	if week.Days[0].Date != "2026-03-01" || week.Days[6].Date != "2026-03-07" {
		t.Errorf("week window [%s, %s] misanchored", week.Days[0].Date, week.Days[6].Date)
	}
	if week.Days[0].DayOfWeek != "Sunday" {
		t.Errorf("2026-03-01 reported as %s", week.Days[0].DayOfWeek)
	}
}

func TestWeekBadStartDate(t *testing.T) {
	svc, _ := newTestService(t)
	if _, err := svc.Week(context.Background(), testFacility, "03/01/2026"); err == nil {
		t.Error("expected error for malformed start date")
	}
}
