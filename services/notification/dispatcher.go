package notification

import (
	"context"
	"encoding/json"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// AsynqDispatcher enqueues booking events onto the asynq queue. Enqueue
// failures are logged and swallowed so the booking write path never depends
// on the queue being reachable.
type AsynqDispatcher struct {
	client *asynq.Client
	logger *zap.Logger
}

func NewAsynqDispatcher(redisOpt asynq.RedisClientOpt, logger *zap.Logger) *AsynqDispatcher {
	return &AsynqDispatcher{
		client: asynq.NewClient(redisOpt),
		logger: logger,
	}
}

func (d *AsynqDispatcher) Publish(ctx context.Context, event BookingEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		d.logger.Error("failed to marshal booking event",
			zap.String("type", string(event.Type)), zap.Error(err))
		return
	}

	task := asynq.NewTask(TaskBookingEvent, payload)
	if _, err := d.client.EnqueueContext(ctx, task); err != nil {
		d.logger.Error("failed to enqueue booking event",
			zap.String("type", string(event.Type)),
			zap.String("bookingId", event.Booking.ID),
			zap.Error(err))
	}
}

// Close releases the underlying queue connection.
func (d *AsynqDispatcher) Close() error {
	return d.client.Close()
}

// NopDispatcher drops all events. Used in tests and when the queue is not
// configured.
type NopDispatcher struct{}

func (NopDispatcher) Publish(ctx context.Context, event BookingEvent) {}

// LogNotifier is the default Notifier: it records the event in the log.
type LogNotifier struct {
	Logger *zap.Logger
}

func (n *LogNotifier) Notify(ctx context.Context, event BookingEvent) error {
	n.Logger.Info("booking event",
		zap.String("type", string(event.Type)),
		zap.String("bookingId", event.Booking.ID),
		zap.String("facilityId", event.Booking.FacilityID),
		zap.String("userId", event.Booking.UserID),
		zap.String("status", string(event.Booking.Status)),
		zap.String("actorId", event.ActorID),
	)
	return nil
}
