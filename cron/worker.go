// File: cron/worker.go
package cron

import (
	"context"
	"log"
	"time"

	"studyrooms/config"
	bookingRepo "studyrooms/database/repository/booking"
	roomRepo "studyrooms/database/repository/room"
	"studyrooms/scheduling"
	"studyrooms/services/booking"
	"studyrooms/utils"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

const (
	TypeScheduleRoll  = "schedule:roll"
	TypeBookingPurge  = "bookings:purge"
	retentionDays     = 90
	workerConcurrency = 5
)

// InitScheduleWorker runs the async worker and its nightly schedule in the
// background.
func InitScheduleWorker(bookings bookingRepo.BookingRepository, rooms roomRepo.RoomRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: workerConcurrency,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeScheduleRoll, handleScheduleRoll(bookings, rooms, utils.GetCacheClient()))
	mux.HandleFunc(TypeBookingPurge, handleBookingPurge(bookings))

	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{Location: time.UTC})
	if _, err := scheduler.Register("5 0 * * *", asynq.NewTask(TypeScheduleRoll, nil)); err != nil {
		log.Printf("[ScheduleWorker] failed to register roll task: %v", err)
	}
	if _, err := scheduler.Register("30 3 * * *", asynq.NewTask(TypeBookingPurge, nil)); err != nil {
		log.Printf("[ScheduleWorker] failed to register purge task: %v", err)
	}

	go func() {
		log.Println("[ScheduleWorker] starting scheduler...")
		if err := scheduler.Run(); err != nil {
			log.Printf("[ScheduleWorker] scheduler stopped: %v", err)
		}
	}()

	// Start the async worker with retry logic.
	go func() {
		log.Println("[ScheduleWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ScheduleWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ScheduleWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

// handleScheduleRoll advances each room's booking window past midnight:
// availability cached for the dropped day is invalidated and the fresh
// window's utilization is logged. A nil cache skips invalidation.
func handleScheduleRoll(bookings bookingRepo.BookingRepository, rooms roomRepo.RoomRepository, cache *redis.Client) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		today := time.Now().UTC()
		dropped := today.AddDate(0, 0, -1).Format(scheduling.DateLayout)

		active, err := rooms.ListActive(ctx)
		if err != nil {
			log.Printf("[ScheduleRoll] failed to list rooms: %v", err)
			return err
		}

		for _, room := range active {
			if cache != nil {
				if err := utils.InvalidateAvailability(ctx, cache, room.ID, dropped); err != nil {
					log.Printf("[ScheduleRoll] cache invalidation failed for room %s: %v", room.ID, err)
				}
			}

			openHour, closeHour := booking.OperatingHours(&room)
			window, err := scheduling.NewBookingWindow(room.ID, today, config.AppConfig.WindowDays, openHour, closeHour)
			if err != nil {
				log.Printf("[ScheduleRoll] failed to build window for room %s: %v", room.ID, err)
				continue
			}
			if err := window.Refresh(ctx, bookings); err != nil {
				log.Printf("[ScheduleRoll] failed to refresh window for room %s: %v", room.ID, err)
				continue
			}

			summary := window.Summary()
			log.Printf("[ScheduleRoll] room %s: %d bookings across %d days, %.1f%% average utilization",
				room.ID, summary.TotalBookings, summary.Days, summary.AverageUtilization)
		}
		return nil
	}
}

// handleBookingPurge removes booking records older than the retention
// horizon.
func handleBookingPurge(bookings bookingRepo.BookingRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		cutoff := time.Now().UTC().AddDate(0, 0, -retentionDays).Format(scheduling.DateLayout)

		removed, err := bookings.DeleteBefore(ctx, cutoff)
		if err != nil {
			log.Printf("[BookingPurge] failed to purge bookings before %s: %v", cutoff, err)
			return err
		}
		log.Printf("[BookingPurge] removed %d bookings dated before %s", removed, cutoff)
		return nil
	}
}
