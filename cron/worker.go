package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"roomly/config"
	"roomly/models"
	"roomly/services/scheduling"

	"github.com/hibiken/asynq"
)

const TypeReminderSend = "reminder:send"

// reminderLeadTime is how long before the reservation start the reminder
// fires.
const reminderLeadTime = time.Hour

// reminderPayload is the queued task body.
type reminderPayload struct {
	ReservationID string `json:"reservationId"`
	RoomNumber    string `json:"roomNumber"`
	Email         string `json:"email"`
	StartsAt      string `json:"startsAt"` // RFC3339
	Label         string `json:"label"`    // clock interval for the message
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}
}

// ReminderQueue schedules reservation reminders over asynq. It satisfies
// scheduling.ReminderScheduler.
type ReminderQueue struct {
	client *asynq.Client
}

// NewReminderQueue builds the enqueue-side client.
func NewReminderQueue() *ReminderQueue {
	return &ReminderQueue{client: asynq.NewClient(redisOpts())}
}

// ScheduleReminder enqueues a reminder to fire one hour before the
// reservation starts. Reservations starting sooner than that get no
// reminder.
func (q *ReminderQueue) ScheduleReminder(res models.Reservation) error {
	fireAt := res.Window.Start.Add(-reminderLeadTime)
	if !fireAt.After(time.Now()) {
		return nil
	}

	payload, err := json.Marshal(reminderPayload{
		ReservationID: res.ID,
		RoomNumber:    res.RoomNumber,
		Email:         res.RequesterEmail,
		StartsAt:      res.Window.Start.Format(time.RFC3339),
		Label:         res.Window.ClockLabel(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}

	task := asynq.NewTask(TypeReminderSend, payload)
	if _, err := q.client.Enqueue(task, asynq.ProcessAt(fireAt)); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}

// InitReminderWorker runs the async worker in background. The ledger is
// consulted at fire time so reminders for since-cancelled reservations
// are dropped silently.
func InitReminderWorker(ledger scheduling.ReservationLedger) {
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
	mux.HandleFunc(TypeReminderSend, handleReminderTask(ledger))

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // backoff
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(ledger scheduling.ReservationLedger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p reminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		res, err := ledger.Get(ctx, p.ReservationID)
		if err != nil {
			// Unknown or since-deleted reservation: nothing to remind.
			log.Printf("[ReminderHandler] reservation %s not found, dropping reminder", p.ReservationID)
			return nil
		}
		if res.Status != models.StatusConfirmed {
			log.Printf("[ReminderHandler] reservation %s is %s, dropping reminder", res.ID, res.Status)
			return nil
		}

		log.Printf("[ReminderHandler] reminder: %s has room %s booked %s (starts %s)",
			p.Email, p.RoomNumber, p.Label, p.StartsAt)
		return nil
	}
}
