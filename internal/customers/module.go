// Package customers wires the customer bounded context: CRUD, search,
// and the event subscription that maintains visit denormalizations.
package customers

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"salon_backoffice_backend/internal/customers/handler"
	"salon_backoffice_backend/internal/customers/repository"
	"salon_backoffice_backend/internal/customers/service"
	"salon_backoffice_backend/internal/events"
	apphttp "salon_backoffice_backend/internal/http"
	"salon_backoffice_backend/platform/logger"
	"salon_backoffice_backend/platform/validator"
)

// Module is the customers bounded context.
type Module struct {
	handler *handler.Handler
	svc     *service.Service
}

// New creates the customers module with its full dependency chain and
// registers its event subscriptions.
func New(pool *pgxpool.Pool, bus events.Bus, log *logger.Logger, val *validator.Validator) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, log)
	svc.SubscribeToEvents(bus)

	return &Module{
		handler: handler.New(svc, val),
		svc:     svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string { return "customers" }

// RegisterRoutes mounts the customer routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	protected := ctx.Protected.Group("/customers")
	protected.GET("", m.handler.List)
	protected.GET("/search", m.handler.Search)
	protected.GET("/:id", m.handler.Get)
	protected.POST("", m.handler.Create)
	protected.PUT("/:id", m.handler.Update)

	owner := ctx.Owner.Group("/customers")
	owner.DELETE("/:id", m.handler.Delete)
}
