package notification

import (
	"time"

	"campusbook/models"
)

// EventType identifies what happened to a booking.
type EventType string

const (
	EventBookingCreated   EventType = "booking_created"
	EventBookingUpdated   EventType = "booking_updated"
	EventBookingApproved  EventType = "booking_approved"
	EventBookingRejected  EventType = "booking_rejected"
	EventBookingCancelled EventType = "booking_cancelled"
)

// BookingEvent is the "reservation state changed" record handed to the
// notification worker. It carries a snapshot of the booking so consumers
// never have to read the store.
type BookingEvent struct {
	Type    EventType      `json:"type"`
	Booking models.Booking `json:"booking"`
	ActorID string         `json:"actorId"`
	At      time.Time      `json:"at"`
}

// TaskBookingEvent is the asynq task type carrying a BookingEvent payload.
const TaskBookingEvent = "booking:event"
