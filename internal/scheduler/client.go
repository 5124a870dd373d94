// Package scheduler enqueues and processes delayed appointment reminder
// tasks over Redis via asynq.
package scheduler

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"salon_backoffice_backend/platform/config"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
)

// Client enqueues reminder tasks. A nil client is a no-op, which lets
// the composition root disable reminders when Redis is not configured.
type Client struct {
	client *asynq.Client
	queue  string
	lead   time.Duration
}

func NewClient(cfg config.SchedulerConfig) (*Client, error) {
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

	lead := cfg.GetReminderLeadTime()
	if lead <= 0 {
		lead = 24 * time.Hour
	}

	return &Client{
		client: asynq.NewClient(opt),
		queue:  queue,
		lead:   lead,
	}, nil
}

func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// ScheduleReminder enqueues a reminder to fire the configured lead time
// before the appointment. A reminder whose fire time is already in the
// past is processed immediately.
func (c *Client) ScheduleReminder(ctx context.Context, appointmentID uuid.UUID, appointmentDate time.Time) error {
	if c == nil || c.client == nil {
		return nil
	}

	task, err := NewAppointmentReminderTask(AppointmentReminderPayload{
		AppointmentID: appointmentID.String(),
	})
	if err != nil {
		return err
	}

	runAt := appointmentDate.Add(-c.lead)
	_, err = c.client.EnqueueContext(ctx, task, asynq.ProcessAt(runAt), asynq.Queue(c.queue))
	return err
}

func redisClientOpt(redisURL string, tlsInsecure bool) (asynq.RedisClientOpt, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return asynq.RedisClientOpt{}, err
	}

	var tlsConfig *tls.Config
	if opt.TLSConfig != nil {
		clone := opt.TLSConfig.Clone()
		if tlsInsecure {
			clone.InsecureSkipVerify = true
		}
		tlsConfig = clone
	} else if tlsInsecure {
		tlsConfig = &tls.Config{InsecureSkipVerify: true}
	}

	return asynq.RedisClientOpt{
		Addr:      opt.Addr,
		Password:  opt.Password,
		DB:        opt.DB,
		TLSConfig: tlsConfig,
	}, nil
}
