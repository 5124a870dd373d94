// Package handler provides HTTP handlers for catalog service endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"salon_backoffice_backend/internal/services/service"
	"salon_backoffice_backend/internal/services/transport"
	"salon_backoffice_backend/platform/httpkit"
	"salon_backoffice_backend/platform/validator"
)

// Handler handles HTTP requests for catalog services.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new services handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// List handles GET /services. With ?all=true it includes inactive services.
func (h *Handler) List(c *gin.Context) {
	var (
		resp []transport.ServiceResponse
		err  error
	)

	if c.Query("all") == "true" {
		resp, err = h.svc.List(c.Request.Context())
	} else {
		resp, err = h.svc.ListActive(c.Request.Context())
	}
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OKCount(c, len(resp), resp)
}

// ListByCategory handles GET /services/category/:category.
func (h *Handler) ListByCategory(c *gin.Context) {
	resp, err := h.svc.ListByCategory(c.Request.Context(), c.Param("category"))
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OKCount(c, len(resp), resp)
}

// Get handles GET /services/:id.
func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	resp, err := h.svc.Get(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, resp)
}

// Create handles POST /services (OWNER only).
func (h *Handler) Create(c *gin.Context) {
	var req transport.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	resp, err := h.svc.Create(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.Created(c, resp)
}

// Update handles PUT /services/:id (OWNER only).
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req transport.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, resp)
}

// Delete handles DELETE /services/:id (OWNER only, soft delete).
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, gin.H{"deactivated": true})
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid service id", nil)
		return uuid.Nil, false
	}
	return id, true
}
