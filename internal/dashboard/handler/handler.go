// Package handler provides HTTP handlers for the dashboard endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salon_backoffice_backend/internal/dashboard/service"
	"salon_backoffice_backend/platform/httpkit"
)

// Handler handles HTTP requests for the dashboard.
type Handler struct {
	svc *service.Service
}

// New creates a new dashboard handler.
func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Dashboard handles GET /dashboard. It routes to the owner or
// receptionist dashboard based on the caller's role.
func (h *Handler) Dashboard(c *gin.Context) {
	id := httpkit.MustGetIdentity(c)
	if id == nil {
		return
	}

	switch {
	case id.HasRole("OWNER"):
		h.Owner(c)
	case id.HasRole("RECEPTIONIST"):
		h.Receptionist(c)
	default:
		httpkit.Error(c, http.StatusBadRequest, "invalid user type", nil)
	}
}

// Owner handles GET /dashboard/owner (OWNER only).
func (h *Handler) Owner(c *gin.Context) {
	id := httpkit.MustGetIdentity(c)
	if id == nil {
		return
	}

	resp, err := h.svc.Owner(c.Request.Context(), id.UserID())
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, resp)
}

// Receptionist handles GET /dashboard/receptionist (RECEPTIONIST only).
func (h *Handler) Receptionist(c *gin.Context) {
	id := httpkit.MustGetIdentity(c)
	if id == nil {
		return
	}

	resp, err := h.svc.Receptionist(c.Request.Context(), id.UserID())
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, resp)
}
