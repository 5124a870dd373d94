// Package services wires the service catalog bounded context.
package services

import (
	"github.com/jackc/pgx/v5/pgxpool"

	apphttp "salon_backoffice_backend/internal/http"
	"salon_backoffice_backend/internal/services/handler"
	"salon_backoffice_backend/internal/services/repository"
	"salon_backoffice_backend/internal/services/service"
	"salon_backoffice_backend/platform/validator"
)

// Module is the service catalog bounded context.
type Module struct {
	handler *handler.Handler
	svc     *service.Service
}

// New creates the services module with its full dependency chain.
func New(pool *pgxpool.Pool, val *validator.Validator) *Module {
	repo := repository.New(pool)
	svc := service.New(repo)

	return &Module{
		handler: handler.New(svc, val),
		svc:     svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string { return "services" }

// RegisterRoutes mounts the catalog routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	protected := ctx.Protected.Group("/services")
	protected.GET("", m.handler.List)
	protected.GET("/category/:category", m.handler.ListByCategory)
	protected.GET("/:id", m.handler.Get)

	owner := ctx.Owner.Group("/services")
	owner.POST("", m.handler.Create)
	owner.PUT("/:id", m.handler.Update)
	owner.DELETE("/:id", m.handler.Delete)
}
