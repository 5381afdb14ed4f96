package cron

import (
	"context"
	"encoding/json"
	"log"

	"doctorsportal/config"
	bookingRepo "doctorsportal/database/repository/booking"
	"doctorsportal/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeAppointmentReminder = "appointment:reminder"

// reminderPayload is the task body for an appointment reminder.
type reminderPayload struct {
	BookingID string `json:"bookingId"`
}

// InitReminderWorker runs the async reminder worker in the background. The
// worker surfaces due reminders for paid bookings; the delivery channel is
// out of scope, so a due reminder is logged for the notification edge to
// pick up.
func InitReminderWorker(repo bookingRepo.BookingRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeAppointmentReminder, handleReminderTask(repo))

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Printf("[ReminderWorker] worker stopped: %v", err)
		}
	}()
}

func handleReminderTask(repo bookingRepo.BookingRepository) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var p reminderPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			return err
		}

		logger := utils.GetLogger()
		b, err := repo.GetByID(ctx, p.BookingID)
		if err != nil {
			// Nothing to remind about; don't retry.
			logger.Warn("reminder target booking missing", zap.String("bookingID", p.BookingID), zap.Error(err))
			return nil
		}

		logger.Info("appointment reminder due",
			zap.String("bookingID", b.ID),
			zap.String("email", b.Email),
			zap.String("treatment", b.Treatment),
			zap.String("date", b.AppointmentDate),
			zap.String("slot", b.Slot))
		return nil
	}
}
