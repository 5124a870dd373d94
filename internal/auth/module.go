// Package auth wires the authentication bounded context: login, user
// registration, and the current-user profile endpoint.
package auth

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"salon_backoffice_backend/internal/auth/handler"
	"salon_backoffice_backend/internal/auth/repository"
	"salon_backoffice_backend/internal/auth/service"
	apphttp "salon_backoffice_backend/internal/http"
	"salon_backoffice_backend/platform/config"
	"salon_backoffice_backend/platform/logger"
	"salon_backoffice_backend/platform/validator"
)

// Module is the auth bounded context.
type Module struct {
	handler *handler.Handler
	svc     *service.Service
}

// New creates the auth module with its full dependency chain.
func New(pool *pgxpool.Pool, cfg config.AuthServiceConfig, log *logger.Logger, val *validator.Validator) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, cfg, log)

	return &Module{
		handler: handler.New(svc, val),
		svc:     svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string { return "auth" }

// Service exposes the auth service for composition-root concerns
// such as seeding the first owner account.
func (m *Module) Service() *service.Service { return m.svc }

// RegisterRoutes mounts the auth routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	public := ctx.V1.Group("/auth")
	public.POST("/login", ctx.AuthRateLimiter.RateLimit(), m.handler.Login)

	protected := ctx.Protected.Group("/auth")
	protected.GET("/me", m.handler.Me)

	owner := ctx.Owner.Group("/auth")
	owner.POST("/register", m.handler.Register)
}
