package scheduler

import (
	"context"
	"fmt"
	"time"

	"salon_backoffice_backend/internal/appointments/domain"
	"salon_backoffice_backend/internal/appointments/repository"
	"salon_backoffice_backend/platform/apperr"
	"salon_backoffice_backend/platform/config"
	"salon_backoffice_backend/platform/logger"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReminderMailer delivers the reminder email. A nil mailer downgrades
// reminders to a log line.
type ReminderMailer interface {
	SendReminder(ctx context.Context, to, customerName string, appointmentDate time.Time, serviceNames []string) error
}

type Worker struct {
	server *asynq.Server
	mux    *asynq.ServeMux
	repo   repository.Repository
	mailer ReminderMailer
	log    *logger.Logger
}

func NewWorker(cfg config.SchedulerConfig, pool *pgxpool.Pool, mailer ReminderMailer, log *logger.Logger) (*Worker, error) {
	redisURL := cfg.GetRedisURL()
	if redisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := redisClientOpt(redisURL, cfg.GetRedisTLSInsecure())
	if err != nil {
		return nil, err
	}

	queue := cfg.GetAsynqQueueName()
	if queue == "" {
		queue = "default"
	}

	concurrency := cfg.GetAsynqConcurrency()
	if concurrency < 1 {
		concurrency = 10
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			queue: 1,
		},
	})

	mux := asynq.NewServeMux()
	w := &Worker{
		server: server,
		mux:    mux,
		repo:   repository.New(pool),
		mailer: mailer,
		log:    log,
	}

	mux.HandleFunc(TaskAppointmentReminder, w.handleAppointmentReminder)

	return w, nil
}

func (w *Worker) Run(ctx context.Context) {
	if w == nil || w.server == nil {
		return
	}

	go func() {
		<-ctx.Done()
		w.server.Shutdown()
	}()

	if err := w.server.Run(w.mux); err != nil {
		w.log.Error("scheduler worker stopped", "error", err)
	}
}

// handleAppointmentReminder fires when a reminder comes due. Reminders
// for appointments that were cancelled, completed, or deleted since
// booking are dropped without error.
func (w *Worker) handleAppointmentReminder(ctx context.Context, task *asynq.Task) error {
	payload, err := ParseAppointmentReminderPayload(task)
	if err != nil {
		return err
	}

	apptID, err := uuid.Parse(payload.AppointmentID)
	if err != nil {
		return err
	}

	appt, err := w.repo.GetByID(ctx, apptID)
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			return nil
		}
		return err
	}

	if appt.Status != domain.StatusScheduled && appt.Status != domain.StatusConfirmed {
		return nil
	}

	if appt.Customer == nil || appt.Customer.Email == nil {
		w.log.Info("reminder skipped, no customer email",
			"appointment_id", appt.ID.String(),
		)
		return nil
	}

	if w.mailer == nil {
		w.log.Info("reminder due",
			"appointment_id", appt.ID.String(),
			"appointment_date", appt.AppointmentDate.Format("2006-01-02 15:04"),
		)
		return nil
	}

	serviceNames := make([]string, 0, len(appt.Services))
	for _, line := range appt.Services {
		serviceNames = append(serviceNames, line.Name)
	}

	return w.mailer.SendReminder(ctx,
		*appt.Customer.Email,
		appt.Customer.Name,
		appt.AppointmentDate,
		serviceNames,
	)
}
