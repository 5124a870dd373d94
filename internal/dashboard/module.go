// Package dashboard wires the role-aware dashboard bounded context.
package dashboard

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"salon_backoffice_backend/internal/dashboard/handler"
	"salon_backoffice_backend/internal/dashboard/repository"
	"salon_backoffice_backend/internal/dashboard/service"
	apphttp "salon_backoffice_backend/internal/http"
	"salon_backoffice_backend/platform/httpkit"
)

// Module is the dashboard bounded context.
type Module struct {
	handler *handler.Handler
}

// New creates the dashboard module with its full dependency chain.
func New(pool *pgxpool.Pool) *Module {
	repo := repository.New(pool)
	svc := service.New(repo)

	return &Module{handler: handler.New(svc)}
}

// Name returns the module identifier.
func (m *Module) Name() string { return "dashboard" }

// RegisterRoutes mounts the dashboard routes. The base route is role
// aware; the role-specific routes reject the other role outright.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	protected := ctx.Protected.Group("/dashboard")
	protected.GET("", m.handler.Dashboard)
	protected.GET("/owner", httpkit.RequireRole("OWNER"), m.handler.Owner)
	protected.GET("/receptionist", httpkit.RequireRole("RECEPTIONIST"), m.handler.Receptionist)
}
