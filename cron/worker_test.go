package cron

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	bookingRepo "campusbook/database/repository/booking"
	"campusbook/models"
	"campusbook/services/notification"
	"campusbook/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

type fakeNotifier struct {
	events []notification.BookingEvent
}

func (n *fakeNotifier) Notify(ctx context.Context, event notification.BookingEvent) error {
	n.events = append(n.events, event)
	return nil
}

func TestHandleBookingEvent(t *testing.T) {
	notifier := &fakeNotifier{}
	handler := HandleBookingEvent(notifier, zap.NewNop())

	event := notification.BookingEvent{
		Type: notification.EventBookingApproved,
		Booking: models.Booking{
			ID:         "b-1",
			FacilityID: "fac-1",
			UserID:     "user-1",
			Date:       "2026-03-02",
			Start:      540,
			End:        660,
			Status:     models.StatusConfirmed,
		},
		ActorID: "admin-1",
		At:      time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	if err := handler(context.Background(), asynq.NewTask(notification.TaskBookingEvent, payload)); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if len(notifier.events) != 1 {
		t.Fatalf("notified %d times, want 1", len(notifier.events))
	}
	got := notifier.events[0]
	if got.Type != notification.EventBookingApproved || got.Booking.ID != "b-1" {
		t.Errorf("delivered event=%+v", got)
	}
}

func TestHandleBookingEventBadPayload(t *testing.T) {
	notifier := &fakeNotifier{}
	handler := HandleBookingEvent(notifier, zap.NewNop())

	err := handler(context.Background(), asynq.NewTask(notification.TaskBookingEvent, []byte("{not json")))
	if err == nil {
		t.Fatal("expected error for malformed payload")
	}
	if len(notifier.events) != 0 {
		t.Errorf("notifier called despite malformed payload")
	}
}

func TestHandleCompleteSweep(t *testing.T) {
	repo := bookingRepo.NewMemoryBookingRepo()
	ctx := context.Background()

	seed := []models.Booking{
		{ID: "past-confirmed", FacilityID: "fac-1", UserID: "u1",
			Date: "2026-02-27", Start: 540, End: 600, Status: models.StatusConfirmed},
		{ID: "past-pending", FacilityID: "fac-1", UserID: "u1",
			Date: "2026-02-27", Start: 600, End: 660, Status: models.StatusPending},
		{ID: "past-cancelled", FacilityID: "fac-1", UserID: "u2",
			Date: "2026-02-26", Start: 540, End: 600, Status: models.StatusCancelled},
		{ID: "today-confirmed", FacilityID: "fac-1", UserID: "u2",
			Date: "2026-03-01", Start: 540, End: 600, Status: models.StatusConfirmed},
		{ID: "future-confirmed", FacilityID: "fac-1", UserID: "u1",
			Date: "2026-03-05", Start: 540, End: 600, Status: models.StatusConfirmed},
	}
	for i := range seed {
		if err := repo.Insert(ctx, &seed[i]); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	clock := utils.FixedClock{T: time.Date(2026, 3, 1, 0, 10, 0, 0, time.UTC)}
	handler := HandleCompleteSweep(repo, clock, zap.NewNop())

	if err := handler(ctx, asynq.NewTask(TaskCompleteSweep, nil)); err != nil {
		t.Fatalf("handler: %v", err)
	}

	want := map[string]models.BookingStatus{
		"past-confirmed":   models.StatusCompleted,
		"past-pending":     models.StatusPending,
		"past-cancelled":   models.StatusCancelled,
		"today-confirmed":  models.StatusConfirmed,
		"future-confirmed": models.StatusConfirmed,
	}
	for id, status := range want {
		b, err := repo.GetByID(ctx, id)
		if err != nil {
			t.Fatalf("GetByID(%s): %v", id, err)
		}
		if b.Status != status {
			t.Errorf("%s: status=%s, want %s", id, b.Status, status)
		}
	}

	// The sweep is idempotent: a second run finds nothing to flip.
	if err := handler(ctx, asynq.NewTask(TaskCompleteSweep, nil)); err != nil {
		t.Fatalf("second run: %v", err)
	}
}
