// Package appointments wires the appointment bounded context: booking,
// partial updates, cancellation, and the today/list/get reads, with
// reminder scheduling and confirmation email as optional side effects.
package appointments

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"salon_backoffice_backend/internal/appointments/handler"
	"salon_backoffice_backend/internal/appointments/repository"
	"salon_backoffice_backend/internal/appointments/service"
	"salon_backoffice_backend/internal/events"
	apphttp "salon_backoffice_backend/internal/http"
	"salon_backoffice_backend/platform/logger"
	"salon_backoffice_backend/platform/validator"
)

// Module is the appointments bounded context.
type Module struct {
	handler *handler.Handler
	svc     *service.Service
}

// New creates the appointments module. reminders and mailer may be nil
// when Redis or SMTP are not configured.
func New(pool *pgxpool.Pool, bus events.Bus, log *logger.Logger, val *validator.Validator,
	reminders service.ReminderScheduler, mailer service.ConfirmationMailer) *Module {

	repo := repository.New(pool)
	svc := service.New(repo, bus, log, reminders, mailer)

	return &Module{
		handler: handler.New(svc, val),
		svc:     svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string { return "appointments" }

// RegisterRoutes mounts the appointment routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	protected := ctx.Protected.Group("/appointments")
	protected.GET("", m.handler.List)
	protected.GET("/today", m.handler.ListToday)
	protected.GET("/:id", m.handler.Get)
	protected.POST("", m.handler.Create)
	protected.PUT("/:id", m.handler.Update)
	protected.DELETE("/:id", m.handler.Cancel)
}
