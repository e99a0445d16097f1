package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"fobworks/config"
	bookingRepo "fobworks/database/repository/booking"
	"fobworks/models"
	"fobworks/services/notification"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

const TypeReminderSend = "reminder:send"

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}
}

// ReminderQueue enqueues day-before reminder emails for confirmed bookings.
type ReminderQueue struct {
	client *asynq.Client
}

func NewReminderQueue() *ReminderQueue {
	return &ReminderQueue{client: asynq.NewClient(redisOpts())}
}

// ScheduleReminder queues the reminder to fire the evening before the visit.
// Appointments within the next day get no reminder.
func (q *ReminderQueue) ScheduleReminder(b *models.Booking) error {
	day, err := time.ParseInLocation("2006-01-02", b.Date, time.Local)
	if err != nil {
		return fmt.Errorf("reminder: bad booking date %q: %w", b.Date, err)
	}
	fireAt := day.AddDate(0, 0, -1).Add(17 * time.Hour)
	if time.Now().After(fireAt) {
		return nil
	}

	payload, err := json.Marshal(models.ReminderPayload{
		ReminderID:  uuid.NewString(),
		OrderNumber: b.OrderNumber,
		FireDate:    fireAt.Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("reminder: marshal payload: %w", err)
	}

	task := asynq.NewTask(TypeReminderSend, payload)
	if _, err := q.client.Enqueue(task, asynq.ProcessAt(fireAt)); err != nil {
		return fmt.Errorf("reminder: enqueue: %w", err)
	}
	return nil
}

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(repo bookingRepo.BookingRepository, notifSvc notification.Service) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReminderSend, handleReminderTask(repo, notifSvc))

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Printf("[ReminderWorker] worker stopped: %v", err)
		}
	}()
}

func handleReminderTask(repo bookingRepo.BookingRepository, notifSvc notification.Service) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		b, err := repo.GetByOrderNumber(p.OrderNumber)
		if err == bookingRepo.ErrNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		// The booking may have been cancelled since the reminder was queued.
		if b.Status != models.StatusConfirmed {
			return nil
		}

		if err := notifSvc.Reminder(b); err != nil {
			log.Printf("[ReminderHandler] failed to send reminder for %s: %v", b.OrderNumber, err)
			return err
		}
		return nil
	}
}
