package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"salon_backoffice_backend/internal/appointments"
	appointmentservice "salon_backoffice_backend/internal/appointments/service"
	"salon_backoffice_backend/internal/auth"
	"salon_backoffice_backend/internal/customers"
	"salon_backoffice_backend/internal/dashboard"
	"salon_backoffice_backend/internal/email"
	"salon_backoffice_backend/internal/events"
	apphttp "salon_backoffice_backend/internal/http"
	"salon_backoffice_backend/internal/http/router"
	"salon_backoffice_backend/internal/packages"
	"salon_backoffice_backend/internal/revenue"
	"salon_backoffice_backend/internal/scheduler"
	"salon_backoffice_backend/internal/services"
	"salon_backoffice_backend/internal/staff"
	"salon_backoffice_backend/migrations"
	"salon_backoffice_backend/platform/config"
	"salon_backoffice_backend/platform/db"
	"salon_backoffice_backend/platform/logger"
	"salon_backoffice_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	if err := withRetry(ctx, log, "database migrations", 5, 2*time.Second, func() error {
		return db.RunMigrations(ctx, cfg, migrations.FS)
	}); err != nil {
		log.Error("failed to run database migrations", "error", err)
		panic("failed to run database migrations: " + err.Error())
	}
	log.Info("database migrations complete")

	var pool *pgxpool.Pool
	if err := withRetry(ctx, log, "database connection", 5, 2*time.Second, func() error {
		p, err := db.NewPool(ctx, cfg)
		if err != nil {
			return err
		}
		pool = p
		return nil
	}); err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()
	log.Info("database connection established")

	// Event bus for decoupled communication between modules
	eventBus := events.NewInMemoryBus(log)

	reminderScheduler, closeScheduler := initReminderScheduler(cfg, log)
	if closeScheduler != nil {
		defer closeScheduler()
	}

	sender := email.NewSender(cfg)
	if sender == nil {
		log.Warn("SMTP not configured; confirmation emails disabled")
	}

	// Shared validator instance for dependency injection
	val := validator.New()

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	authModule := auth.New(pool, cfg, log, val)
	customersModule := customers.New(pool, eventBus, log, val)
	staffModule := staff.New(pool, val)
	servicesModule := services.New(pool, val)
	packagesModule := packages.New(pool, val)
	appointmentsModule := appointments.New(pool, eventBus, log, val, reminderScheduler, sender)
	revenueModule := revenue.New(pool, val)
	dashboardModule := dashboard.New(pool)

	if err := authModule.Service().SeedOwner(ctx,
		os.Getenv("SEED_OWNER_NAME"),
		os.Getenv("SEED_OWNER_EMAIL"),
		os.Getenv("SEED_OWNER_PASSWORD"),
	); err != nil {
		log.Error("failed to seed owner account", "error", err)
	}

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config:   cfg,
		Logger:   log,
		Health:   db.NewPoolAdapter(pool),
		EventBus: eventBus,
		Modules: []apphttp.Module{
			authModule,
			customersModule,
			staffModule,
			servicesModule,
			packagesModule,
			appointmentsModule,
			revenueModule,
			dashboardModule,
		},
	}

	engine := router.New(app)

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- engine.Run(cfg.HTTPAddr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = shutdownCtx
	case err := <-srvErr:
		if err != nil {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

func initReminderScheduler(cfg config.SchedulerConfig, log *logger.Logger) (appointmentservice.ReminderScheduler, func()) {
	if cfg.GetRedisURL() == "" {
		log.Warn("REDIS_URL not configured; appointment reminders disabled")
		return nil, nil
	}

	reminderClient, err := scheduler.NewClient(cfg)
	if err != nil {
		log.Error("failed to initialize reminder scheduler client", "error", err)
		return nil, nil
	}

	return reminderClient, func() {
		_ = reminderClient.Close()
	}
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return errors.New(name + ": invalid retry attempts")
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return errors.New(name + ": " + lastErr.Error())
}
