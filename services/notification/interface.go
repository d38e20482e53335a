package notification

import "context"

// Dispatcher publishes booking events from the write path. Implementations
// must be fire-and-forget: the write path never fails or blocks on event
// delivery.
type Dispatcher interface {
	Publish(ctx context.Context, event BookingEvent)
}

// Notifier consumes booking events on the worker side. This is the seam
// where an email or push delivery implementation would plug in; delivery
// itself lives outside this module.
type Notifier interface {
	Notify(ctx context.Context, event BookingEvent) error
}
