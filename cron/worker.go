package cron

import (
	"context"
	"encoding/json"
	"fmt"

	bookingRepo "campusbook/database/repository/booking"
	"campusbook/models"
	"campusbook/services/notification"
	"campusbook/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// TaskCompleteSweep marks past confirmed bookings as completed. It is
// enqueued nightly by the scheduler; the booking write path never depends
// on it.
const TaskCompleteSweep = "booking:complete-sweep"

// completeSweepCron fires shortly after midnight.
const completeSweepCron = "10 0 * * *"

// Worker consumes booking events and runs periodic maintenance.
type Worker struct {
	redisOpt asynq.RedisClientOpt
	notifier notification.Notifier
	repo     bookingRepo.BookingRepository
	clock    utils.Clock
	logger   *zap.Logger

	srv       *asynq.Server
	scheduler *asynq.Scheduler
}

func NewWorker(
	redisOpt asynq.RedisClientOpt,
	notifier notification.Notifier,
	repo bookingRepo.BookingRepository,
	clock utils.Clock,
	logger *zap.Logger,
) *Worker {
	return &Worker{
		redisOpt: redisOpt,
		notifier: notifier,
		repo:     repo,
		clock:    clock,
		logger:   logger,
	}
}

// Start runs the asynq server and registers the nightly sweep. Non-blocking.
func (w *Worker) Start() error {
	w.srv = asynq.NewServer(w.redisOpt, asynq.Config{
		Concurrency: 10,
		Queues: map[string]int{
			"default": 1,
		},
	})

	mux := asynq.NewServeMux()
	mux.HandleFunc(notification.TaskBookingEvent, HandleBookingEvent(w.notifier, w.logger))
	mux.HandleFunc(TaskCompleteSweep, HandleCompleteSweep(w.repo, w.clock, w.logger))

	if err := w.srv.Start(mux); err != nil {
		return fmt.Errorf("failed to start booking worker: %w", err)
	}

	w.scheduler = asynq.NewScheduler(w.redisOpt, nil)
	if _, err := w.scheduler.Register(completeSweepCron, asynq.NewTask(TaskCompleteSweep, nil)); err != nil {
		return fmt.Errorf("failed to register completion sweep: %w", err)
	}
	if err := w.scheduler.Start(); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}

	w.logger.Info("booking worker started")
	return nil
}

// Shutdown stops the scheduler and drains the server.
func (w *Worker) Shutdown() {
	if w.scheduler != nil {
		w.scheduler.Shutdown()
	}
	if w.srv != nil {
		w.srv.Shutdown()
	}
}

// HandleBookingEvent forwards a queued booking event to the notifier.
func HandleBookingEvent(notifier notification.Notifier, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var event notification.BookingEvent
		if err := json.Unmarshal(task.Payload(), &event); err != nil {
			logger.Error("invalid booking event payload", zap.Error(err))
			return err
		}
		return notifier.Notify(ctx, event)
	}
}

// HandleCompleteSweep flips confirmed bookings dated before today to
// completed.
func HandleCompleteSweep(repo bookingRepo.BookingRepository, clock utils.Clock, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		today := clock.Now().Format(models.DateLayout)
		n, err := repo.MarkCompleted(ctx, today)
		if err != nil {
			logger.Error("completion sweep failed", zap.Error(err))
			return err
		}
		if n > 0 {
			logger.Info("completed past bookings", zap.Int64("count", n))
		}
		return nil
	}
}
