// Package handler provides HTTP handlers for revenue report endpoints.
// All routes are OWNER only.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"salon_backoffice_backend/internal/revenue/service"
	"salon_backoffice_backend/internal/revenue/transport"
	"salon_backoffice_backend/platform/httpkit"
	"salon_backoffice_backend/platform/validator"
)

// Handler handles HTTP requests for revenue reports.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new revenue handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Metrics handles GET /revenue/metrics.
func (h *Handler) Metrics(c *gin.Context) {
	query, ok := bindWindowQuery(c, h.val)
	if !ok {
		return
	}

	resp, err := h.svc.Metrics(c.Request.Context(), query)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, resp)
}

// ByStaff handles GET /revenue/by-staff.
func (h *Handler) ByStaff(c *gin.Context) {
	query, ok := bindWindowQuery(c, h.val)
	if !ok {
		return
	}

	resp, err := h.svc.ByStaff(c.Request.Context(), query)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OKCount(c, len(resp), resp)
}

// ByCategory handles GET /revenue/by-category.
func (h *Handler) ByCategory(c *gin.Context) {
	query, ok := bindWindowQuery(c, h.val)
	if !ok {
		return
	}

	resp, err := h.svc.ByCategory(c.Request.Context(), query)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OKCount(c, len(resp), resp)
}

// Trends handles GET /revenue/trends.
func (h *Handler) Trends(c *gin.Context) {
	var query transport.TrendsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid query parameters", nil)
		return
	}

	if err := h.val.Struct(query); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	resp, err := h.svc.Trends(c.Request.Context(), query)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OKCount(c, len(resp), resp)
}

// Monthly handles GET /revenue/monthly.
func (h *Handler) Monthly(c *gin.Context) {
	var query transport.MonthlyQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid query parameters", nil)
		return
	}

	if err := h.val.Struct(query); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	resp, err := h.svc.Monthly(c.Request.Context(), query)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, resp)
}

// Daily handles GET /revenue/daily.
func (h *Handler) Daily(c *gin.Context) {
	var query transport.DailyQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid query parameters", nil)
		return
	}

	if err := h.val.Struct(query); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	resp, err := h.svc.Daily(c.Request.Context(), query)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, resp)
}

// StaffSummary handles GET /revenue/staff/:id.
func (h *Handler) StaffSummary(c *gin.Context) {
	staffID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid staff id", nil)
		return
	}

	query, ok := bindWindowQuery(c, h.val)
	if !ok {
		return
	}

	resp, err := h.svc.StaffSummary(c.Request.Context(), staffID, query)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, resp)
}

func bindWindowQuery(c *gin.Context, val *validator.Validator) (transport.WindowQuery, bool) {
	var query transport.WindowQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid query parameters", nil)
		return query, false
	}

	if err := val.Struct(query); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation failed", err.Error())
		return query, false
	}

	return query, true
}
