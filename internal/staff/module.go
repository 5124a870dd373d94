// Package staff wires the staff member bounded context.
package staff

import (
	"github.com/jackc/pgx/v5/pgxpool"

	apphttp "salon_backoffice_backend/internal/http"
	"salon_backoffice_backend/internal/staff/handler"
	"salon_backoffice_backend/internal/staff/repository"
	"salon_backoffice_backend/internal/staff/service"
	"salon_backoffice_backend/platform/validator"
)

// Module is the staff bounded context.
type Module struct {
	handler *handler.Handler
	svc     *service.Service
}

// New creates the staff module with its full dependency chain.
func New(pool *pgxpool.Pool, val *validator.Validator) *Module {
	repo := repository.New(pool)
	svc := service.New(repo)

	return &Module{
		handler: handler.New(svc, val),
		svc:     svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string { return "staff" }

// RegisterRoutes mounts the staff routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	protected := ctx.Protected.Group("/staff")
	protected.GET("", m.handler.List)
	protected.GET("/:id", m.handler.Get)

	owner := ctx.Owner.Group("/staff")
	owner.POST("", m.handler.Create)
	owner.PUT("/:id", m.handler.Update)
	owner.DELETE("/:id", m.handler.Delete)
}
