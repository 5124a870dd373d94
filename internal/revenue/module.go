// Package revenue wires the revenue reporting bounded context. Every
// route is restricted to the OWNER role.
package revenue

import (
	"github.com/jackc/pgx/v5/pgxpool"

	apphttp "salon_backoffice_backend/internal/http"
	"salon_backoffice_backend/internal/revenue/handler"
	"salon_backoffice_backend/internal/revenue/repository"
	"salon_backoffice_backend/internal/revenue/service"
	"salon_backoffice_backend/platform/validator"
)

// Module is the revenue bounded context.
type Module struct {
	handler *handler.Handler
	svc     *service.Service
}

// New creates the revenue module with its full dependency chain.
func New(pool *pgxpool.Pool, val *validator.Validator) *Module {
	repo := repository.New(pool)
	svc := service.New(repo)

	return &Module{
		handler: handler.New(svc, val),
		svc:     svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string { return "revenue" }

// RegisterRoutes mounts the revenue routes on the owner-only group.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	owner := ctx.Owner.Group("/revenue")
	owner.GET("/metrics", m.handler.Metrics)
	owner.GET("/by-staff", m.handler.ByStaff)
	owner.GET("/by-category", m.handler.ByCategory)
	owner.GET("/trends", m.handler.Trends)
	owner.GET("/monthly", m.handler.Monthly)
	owner.GET("/daily", m.handler.Daily)
	owner.GET("/staff/:id", m.handler.StaffSummary)
}
