package layout

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tablebook/internal/pkg/relations"
	"tablebook/internal/pkg/response"
	pkgvalidator "tablebook/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	var restaurantID *uuid.UUID
	if raw := c.Query("restaurant_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid restaurant_id filter")
			return
		}
		restaurantID = &id
	}

	items, err := h.service.List(c.Request.Context(), c.GetString("role"), relations.Parse(c.Query("relations")), restaurantID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to list table layouts")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"table_layouts": items})
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid table layout ID")
		return
	}

	item, err := h.service.Get(c.Request.Context(), c.GetString("role"), id, relations.Parse(c.Query("relations")))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Table layout not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load table layout")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"table_layout": item})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateTableLayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body", err.Error())
		return
	}
	if fields := pkgvalidator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", fields)
		return
	}

	item, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create table layout")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"table_layout": item})
}

func (h *Handler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid table layout ID")
		return
	}

	var req UpdateTableLayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body", err.Error())
		return
	}
	if fields := pkgvalidator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", fields)
		return
	}

	item, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Table layout not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update table layout")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"table_layout": item})
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid table layout ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Table layout not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete table layout")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, guard func(entity, operation string) gin.HandlerFunc) {
	g := r.Group("/table-layouts")
	g.GET("", guard("table_layout", "read"), h.List)
	g.GET("/:id", guard("table_layout", "read"), h.GetByID)
	g.POST("", guard("table_layout", "create"), h.Create)
	g.PUT("/:id", guard("table_layout", "update"), h.Update)
	g.DELETE("/:id", guard("table_layout", "delete"), h.Delete)
}
