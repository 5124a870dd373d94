// Package handler provides HTTP handlers for package endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"salon_backoffice_backend/internal/packages/service"
	"salon_backoffice_backend/internal/packages/transport"
	"salon_backoffice_backend/platform/httpkit"
	"salon_backoffice_backend/platform/validator"
)

// Handler handles HTTP requests for packages.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new packages handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// List handles GET /packages. With ?all=true it includes inactive packages.
func (h *Handler) List(c *gin.Context) {
	var (
		resp []transport.PackageResponse
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

// Get handles GET /packages/:id.
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

// Create handles POST /packages (OWNER only).
func (h *Handler) Create(c *gin.Context) {
	var req transport.CreatePackageRequest
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

// Update handles PUT /packages/:id (OWNER only).
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req transport.UpdatePackageRequest
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

// Delete handles DELETE /packages/:id (OWNER only).
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, gin.H{"deleted": true})
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid package id", nil)
		return uuid.Nil, false
	}
	return id, true
}
