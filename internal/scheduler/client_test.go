package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
)

type stubConfig struct {
	redisURL string
	queue    string
	lead     time.Duration
}

func (s stubConfig) GetRedisURL() string                { return s.redisURL }
func (s stubConfig) GetRedisTLSInsecure() bool          { return false }
func (s stubConfig) GetAsynqQueueName() string          { return s.queue }
func (s stubConfig) GetAsynqConcurrency() int           { return 0 }
func (s stubConfig) GetReminderLeadTime() time.Duration { return s.lead }

func TestNewClientRequiresRedisURL(t *testing.T) {
	if _, err := NewClient(stubConfig{}); err == nil {
		t.Fatal("expected error for missing redis url")
	}
}

func TestNilClientIsNoOp(t *testing.T) {
	var c *Client
	if err := c.Close(); err != nil {
		t.Errorf("close: %v", err)
	}
	if err := c.ScheduleReminder(context.Background(), uuid.New(), time.Now()); err != nil {
		t.Errorf("schedule: %v", err)
	}
}

func TestNewClientDefaults(t *testing.T) {
	srv := miniredis.RunT(t)

	client, err := NewClient(stubConfig{redisURL: "redis://" + srv.Addr()})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	defer client.Close()

	if client.queue != "default" {
		t.Errorf("queue = %q, want default", client.queue)
	}
	if client.lead != 24*time.Hour {
		t.Errorf("lead = %v, want 24h", client.lead)
	}
}

func TestScheduleReminderEnqueues(t *testing.T) {
	srv := miniredis.RunT(t)

	client, err := NewClient(stubConfig{
		redisURL: "redis://" + srv.Addr(),
		queue:    "salon",
		lead:     2 * time.Hour,
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	defer client.Close()

	appointmentDate := time.Now().Add(48 * time.Hour)
	if err := client.ScheduleReminder(context.Background(), uuid.New(), appointmentDate); err != nil {
		t.Fatalf("schedule: %v", err)
	}

	if len(srv.Keys()) == 0 {
		t.Error("expected task data in redis")
	}
}

func TestRedisClientOptInvalidURL(t *testing.T) {
	if _, err := redisClientOpt("not-a-url", false); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestRedisClientOptTLSInsecure(t *testing.T) {
	opt, err := redisClientOpt("rediss://localhost:6379", true)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if opt.TLSConfig == nil || !opt.TLSConfig.InsecureSkipVerify {
		t.Errorf("tls config = %+v, want insecure skip verify", opt.TLSConfig)
	}
}
