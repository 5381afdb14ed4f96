package cron

import (
	"encoding/json"
	"fmt"
	"time"

	"doctorsportal/config"
	"doctorsportal/models"

	"github.com/hibiken/asynq"
)

// reminderHour is the local hour on the appointment date at which the
// reminder fires.
const reminderHour = 8

// ReminderQueue schedules appointment reminder tasks onto the asynq queue.
type ReminderQueue struct {
	client *asynq.Client
}

// NewReminderQueue constructs a ReminderQueue over the configured Redis.
func NewReminderQueue() *ReminderQueue {
	return &ReminderQueue{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisQueueDB,
		}),
	}
}

// ScheduleReminder enqueues a reminder task processed on the morning of the
// appointment date. Past or same-day dates enqueue immediately.
func (q *ReminderQueue) ScheduleReminder(booking models.Booking) error {
	payload, err := json.Marshal(reminderPayload{BookingID: booking.ID})
	if err != nil {
		return err
	}

	day, err := time.ParseInLocation("2006-01-02", booking.AppointmentDate, time.Local)
	if err != nil {
		return fmt.Errorf("invalid appointment date %q: %w", booking.AppointmentDate, err)
	}
	at := day.Add(reminderHour * time.Hour)

	task := asynq.NewTask(TypeAppointmentReminder, payload)
	if at.Before(time.Now()) {
		_, err = q.client.Enqueue(task)
	} else {
		_, err = q.client.Enqueue(task, asynq.ProcessAt(at))
	}
	if err != nil {
		return fmt.Errorf("failed to enqueue reminder for booking %s: %w", booking.ID, err)
	}
	return nil
}

// Close releases the underlying asynq client.
func (q *ReminderQueue) Close() error {
	return q.client.Close()
}
