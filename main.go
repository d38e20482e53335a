// File: campusbook/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campusbook/config"
	"campusbook/cron"
	"campusbook/database"
	bookingRepo "campusbook/database/repository/booking"
	facilityRepo "campusbook/database/repository/facility"
	"campusbook/models"
	"campusbook/resolvers"
	"campusbook/services/availability"
	"campusbook/services/booking"
	"campusbook/services/facility"
	"campusbook/services/notification"
	"campusbook/utils"

	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	ctx := context.Background()
	client, err := database.Connect(ctx, config.AppConfig.DatabaseURL)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to database: %v", err)
	}
	defer func() {
		if err := database.Disconnect(client); err != nil {
			logger.Sugar().Errorf("main: failed to disconnect database: %v", err)
		}
	}()

	cacheClient, err := utils.NewCacheClient(config.AppConfig)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to redis: %v", err)
	}

	// repositories.
	bookings := bookingRepo.NewMongoBookingRepo(client, config.AppConfig.DatabaseName)
	facilities := facilityRepo.NewMongoFacilityRepo(client, config.AppConfig.DatabaseName)
	if err := bookings.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	if err := facilities.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}

	dayStart, err := models.ParseClock(config.AppConfig.DayStart)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid DAY_START: %v", err)
	}
	dayEnd, err := models.ParseClock(config.AppConfig.DayEnd)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid DAY_END: %v", err)
	}

	redisOpt := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
	dispatcher := notification.NewAsynqDispatcher(redisOpt, logger)
	defer dispatcher.Close()

	clock := utils.SystemClock{}
	cache := availability.NewCache(cacheClient,
		time.Duration(config.AppConfig.CacheTTLSeconds)*time.Second, logger)

	// services.
	availabilityService := &availability.DefaultAvailabilityService{
		FacilityRepo: facilities,
		BookingRepo:  bookings,
		Cache:        cache,
		DayStart:     dayStart,
		DayEnd:       dayEnd,
		Logger:       logger,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:         bookings,
		FacilityRepo: facilities,
		Dispatcher:   dispatcher,
		Cache:        cache,
		Clock:        clock,
		MaxHours:     config.AppConfig.MaxBookingHours,
		Logger:       logger,
	}
	facilityService := &facility.DefaultFacilityService{
		Repo:   facilities,
		Clock:  clock,
		Logger: logger,
	}
	// The resolver is the surface the surrounding application layer embeds;
	// routing and auth live outside this module.
	resolver := &resolvers.Resolver{
		Booking:      bookingService,
		Facility:     facilityService,
		Availability: availabilityService,
		DayStart:     dayStart,
		DayEnd:       dayEnd,
	}
	// Startup sanity read through the full stack.
	active, err := resolver.ListFacilities(ctx, facilityRepo.ListFilter{ActiveOnly: true})
	if err != nil {
		logger.Sugar().Fatalf("main: facility inventory unreachable: %v", err)
	}
	logger.Sugar().Infof("serving %d active facilities", len(active))

	notifier := &notification.LogNotifier{Logger: logger}
	worker := cron.NewWorker(redisOpt, notifier, bookings, clock, logger)
	if err := worker.Start(); err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}

	logger.Sugar().Info("campusbook worker running")

	// Wait for an OS signal to gracefully shut down.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: shutting down...")

	worker.Shutdown()
	logger.Sugar().Info("main: stopped gracefully")
}
