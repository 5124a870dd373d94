// Package packages wires the treatment package bounded context.
// Packages are an independent catalog entity; they are not linked into
// the appointment ledger.
package packages

import (
	"github.com/jackc/pgx/v5/pgxpool"

	apphttp "salon_backoffice_backend/internal/http"
	"salon_backoffice_backend/internal/packages/handler"
	"salon_backoffice_backend/internal/packages/repository"
	"salon_backoffice_backend/internal/packages/service"
	"salon_backoffice_backend/platform/validator"
)

// Module is the packages bounded context.
type Module struct {
	handler *handler.Handler
	svc     *service.Service
}

// New creates the packages module with its full dependency chain.
func New(pool *pgxpool.Pool, val *validator.Validator) *Module {
	repo := repository.New(pool)
	svc := service.New(repo)

	return &Module{
		handler: handler.New(svc, val),
		svc:     svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string { return "packages" }

// RegisterRoutes mounts the package routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	protected := ctx.Protected.Group("/packages")
	protected.GET("", m.handler.List)
	protected.GET("/:id", m.handler.Get)

	owner := ctx.Owner.Group("/packages")
	owner.POST("", m.handler.Create)
	owner.PUT("/:id", m.handler.Update)
	owner.DELETE("/:id", m.handler.Delete)
}
