package booking

import (
	"context"
	"time"

	"campusbook/models"
	"campusbook/services/notification"
	"campusbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// window is a parsed, validated booking window.
type window struct {
	date  string
	start int
	end   int
}

// CheckConflicts parses the requested window and returns the active bookings
// it collides with, ascending by start time. Pure read.
func (svc *DefaultBookingService) CheckConflicts(ctx context.Context, facilityID, date, startTime, endTime, excludeID string) ([]models.Booking, error) {
	w, err := svc.parseWindow(date, startTime, endTime)
	if err != nil {
		return nil, err
	}
	return svc.Repo.FindConflicts(ctx, facilityID, w.date, w.start, w.end, excludeID)
}

// Create validates the request, checks for conflicts under the facility+date
// lock and persists the booking with its initial status.
func (svc *DefaultBookingService) Create(ctx context.Context, input models.CreateBookingInput, actor models.Actor) (*models.Booking, error) {
	w, err := svc.parseWindow(input.Date, input.StartTime, input.EndTime)
	if err != nil {
		return nil, err
	}
	if input.Attendees <= 0 {
		return nil, utils.Validationf("attendees must be a positive integer")
	}

	facility, err := svc.FacilityRepo.GetActiveByID(ctx, input.FacilityID)
	if err != nil {
		return nil, err
	}
	if input.Attendees > facility.Capacity {
		return nil, utils.Validationf("attendees (%d) exceed facility capacity (%d)", input.Attendees, facility.Capacity)
	}

	now := svc.Clock.Now()
	if err := svc.rejectPastStart(w, now); err != nil {
		return nil, err
	}

	status := models.StatusConfirmed
	if facility.RequiresApproval {
		status = models.StatusPending
	}

	booking := &models.Booking{
		ID:         uuid.NewString(),
		FacilityID: facility.ID,
		UserID:     actor.ID,
		Date:       w.date,
		Start:      w.start,
		End:        w.end,
		Status:     status,
		Purpose:    input.Purpose,
		Attendees:  input.Attendees,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	// Conflict check and insert must be atomic per facility+date.
	lock := svc.locks.get(facility.ID, w.date)
	lock.Lock()
	defer lock.Unlock()

	conflicts, err := svc.Repo.FindConflicts(ctx, facility.ID, w.date, w.start, w.end, "")
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		return nil, utils.ConflictError("facility is already booked during the requested time", conflicts)
	}

	if err := svc.Repo.Insert(ctx, booking); err != nil {
		return nil, err
	}

	svc.bumpAvailability(ctx, booking.FacilityID, booking.Date)
	svc.publish(ctx, notification.EventBookingCreated, booking, actor.ID)
	svc.Logger.Info("booking created",
		zap.String("bookingId", booking.ID),
		zap.String("facilityId", booking.FacilityID),
		zap.String("status", string(booking.Status)))
	return booking, nil
}

// Update applies a patch. Owners may edit their own pending bookings;
// admins may edit anything, including status and admin notes. A window
// change re-runs conflict detection excluding the booking itself.
func (svc *DefaultBookingService) Update(ctx context.Context, id string, patch models.UpdateBookingPatch, actor models.Actor) (*models.Booking, error) {
	b, err := svc.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanModify(actor, b) {
		return nil, utils.Authorizationf("not allowed to modify booking %s", id)
	}
	if (patch.Status != nil || patch.AdminNotes != nil) && !actor.IsAdmin() {
		return nil, utils.Authorizationf("status and admin notes are admin-only fields")
	}

	oldDate := b.Date
	windowChanged := patch.Date != nil || patch.StartTime != nil || patch.EndTime != nil
	if windowChanged {
		w, err := svc.patchedWindow(b, patch)
		if err != nil {
			return nil, err
		}

		lock := svc.locks.get(b.FacilityID, w.date)
		lock.Lock()
		defer lock.Unlock()

		conflicts, err := svc.Repo.FindConflicts(ctx, b.FacilityID, w.date, w.start, w.end, b.ID)
		if err != nil {
			return nil, err
		}
		if len(conflicts) > 0 {
			return nil, utils.ConflictError("facility is already booked during the requested time", conflicts)
		}

		b.Date, b.Start, b.End = w.date, w.start, w.end
	}

	if patch.Purpose != nil {
		b.Purpose = *patch.Purpose
	}
	if patch.Attendees != nil {
		if *patch.Attendees <= 0 {
			return nil, utils.Validationf("attendees must be a positive integer")
		}
		facility, err := svc.FacilityRepo.GetByID(ctx, b.FacilityID)
		if err != nil {
			return nil, err
		}
		if *patch.Attendees > facility.Capacity {
			return nil, utils.Validationf("attendees (%d) exceed facility capacity (%d)", *patch.Attendees, facility.Capacity)
		}
		b.Attendees = *patch.Attendees
	}
	if patch.AdminNotes != nil {
		b.AdminNotes = *patch.AdminNotes
	}

	event := notification.EventBookingUpdated
	if patch.Status != nil {
		target := models.BookingStatus(*patch.Status)
		if !target.Valid() {
			return nil, utils.Validationf("invalid status: %s", *patch.Status)
		}
		if target != b.Status {
			if !models.ValidTransition(b.Status, target) {
				return nil, utils.Validationf("invalid status transition from %s to %s", b.Status, target)
			}
			b.Status = target
			event = eventForStatus(target)
		}
	}

	b.UpdatedAt = svc.Clock.Now()
	if err := svc.Repo.Update(ctx, b); err != nil {
		return nil, err
	}

	svc.bumpAvailability(ctx, b.FacilityID, oldDate, b.Date)
	svc.publish(ctx, event, b, actor.ID)
	return b, nil
}

// Cancel moves the booking to cancelled. A second cancel, or a cancel from
// any other terminal state, is rejected as invalid.
func (svc *DefaultBookingService) Cancel(ctx context.Context, id string, actor models.Actor) (*models.Booking, error) {
	b, err := svc.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanCancel(actor, b) {
		return nil, utils.Authorizationf("not allowed to cancel booking %s", id)
	}
	return svc.transition(ctx, b, models.StatusCancelled, actor, "")
}

// Approve confirms a pending booking. Admin only.
func (svc *DefaultBookingService) Approve(ctx context.Context, id string, actor models.Actor) (*models.Booking, error) {
	if !actor.IsAdmin() {
		return nil, utils.Authorizationf("approval is reserved for admins")
	}
	b, err := svc.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return svc.transition(ctx, b, models.StatusConfirmed, actor, "")
}

// Reject declines a pending booking with an optional admin note. Admin only.
func (svc *DefaultBookingService) Reject(ctx context.Context, id string, actor models.Actor, note string) (*models.Booking, error) {
	if !actor.IsAdmin() {
		return nil, utils.Authorizationf("rejection is reserved for admins")
	}
	b, err := svc.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return svc.transition(ctx, b, models.StatusRejected, actor, note)
}

// Get returns one booking, visible to its owner or an admin.
func (svc *DefaultBookingService) Get(ctx context.Context, id string, actor models.Actor) (*models.Booking, error) {
	b, err := svc.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanView(actor, b) {
		return nil, utils.Authorizationf("not allowed to view booking %s", id)
	}
	return b, nil
}

// List returns the actor's bookings, newest first, with aggregate stats.
// Admins see everything.
func (svc *DefaultBookingService) List(ctx context.Context, actor models.Actor) (BookingList, error) {
	var (
		data []models.Booking
		err  error
	)
	statsUser := actor.ID
	if actor.IsAdmin() {
		data, err = svc.Repo.ListAll(ctx)
		statsUser = ""
	} else {
		data, err = svc.Repo.ListByUser(ctx, actor.ID)
	}
	if err != nil {
		return BookingList{}, err
	}

	today := svc.Clock.Now().Format(models.DateLayout)
	stats, err := svc.Repo.Stats(ctx, statsUser, today)
	if err != nil {
		return BookingList{}, err
	}
	return BookingList{Data: data, Stats: stats}, nil
}

func (svc *DefaultBookingService) transition(ctx context.Context, b *models.Booking, target models.BookingStatus, actor models.Actor, note string) (*models.Booking, error) {
	if !models.ValidTransition(b.Status, target) {
		return nil, utils.Validationf("invalid status transition from %s to %s", b.Status, target)
	}
	b.Status = target
	if note != "" {
		b.AdminNotes = note
	}
	b.UpdatedAt = svc.Clock.Now()

	if err := svc.Repo.Update(ctx, b); err != nil {
		return nil, err
	}

	svc.bumpAvailability(ctx, b.FacilityID, b.Date)
	svc.publish(ctx, eventForStatus(target), b, actor.ID)
	return b, nil
}

// parseWindow validates the date, the "HH:MM" bounds, their ordering and the
// duration cap, before anything touches storage.
func (svc *DefaultBookingService) parseWindow(date, startTime, endTime string) (window, error) {
	if _, err := models.ParseDate(date, svc.Clock.Now().Location()); err != nil {
		return window{}, utils.Validationf("%v", err)
	}
	start, err := models.ParseClock(startTime)
	if err != nil {
		return window{}, utils.Validationf("%v", err)
	}
	end, err := models.ParseClock(endTime)
	if err != nil {
		return window{}, utils.Validationf("%v", err)
	}
	if end <= start {
		return window{}, utils.Validationf("end time must be after start time")
	}
	if svc.MaxHours > 0 && end-start > svc.MaxHours*60 {
		return window{}, utils.Validationf("booking duration cannot exceed %d hours", svc.MaxHours)
	}
	return window{date: date, start: start, end: end}, nil
}

func (svc *DefaultBookingService) patchedWindow(b *models.Booking, patch models.UpdateBookingPatch) (window, error) {
	date := b.Date
	if patch.Date != nil {
		date = *patch.Date
	}
	startTime := models.FormatClock(b.Start)
	if patch.StartTime != nil {
		startTime = *patch.StartTime
	}
	endTime := models.FormatClock(b.End)
	if patch.EndTime != nil {
		endTime = *patch.EndTime
	}
	return svc.parseWindow(date, startTime, endTime)
}

func (svc *DefaultBookingService) rejectPastStart(w window, now time.Time) error {
	day, err := models.ParseDate(w.date, now.Location())
	if err != nil {
		return utils.Validationf("%v", err)
	}
	startAt := day.Add(time.Duration(w.start) * time.Minute)
	if startAt.Before(now) {
		return utils.Validationf("booking start cannot be in the past")
	}
	return nil
}

func (svc *DefaultBookingService) bumpAvailability(ctx context.Context, facilityID string, dates ...string) {
	if svc.Cache == nil {
		return
	}
	seen := map[string]bool{}
	for _, d := range dates {
		if !seen[d] {
			seen[d] = true
			svc.Cache.Bump(ctx, facilityID, d)
		}
	}
}

func (svc *DefaultBookingService) publish(ctx context.Context, event notification.EventType, b *models.Booking, actorID string) {
	if svc.Dispatcher == nil {
		return
	}
	svc.Dispatcher.Publish(ctx, notification.BookingEvent{
		Type:    event,
		Booking: *b,
		ActorID: actorID,
		At:      svc.Clock.Now(),
	})
}

func eventForStatus(s models.BookingStatus) notification.EventType {
	switch s {
	case models.StatusConfirmed:
		return notification.EventBookingApproved
	case models.StatusRejected:
		return notification.EventBookingRejected
	case models.StatusCancelled:
		return notification.EventBookingCancelled
	}
	return notification.EventBookingUpdated
}
