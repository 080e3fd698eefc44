package hours

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

// List handles GET /operating-hours?relations=...&restaurant_id=...
// The restaurant_id filter feeds the sub-table on a restaurant's detail view.
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
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to list operating hours")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"operating_hours": items})
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid operating hour ID")
		return
	}

	item, err := h.service.Get(c.Request.Context(), c.GetString("role"), id, relations.Parse(c.Query("relations")))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Operating hour not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load operating hour")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"operating_hour": item})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateOperatingHourRequest
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
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create operating hour")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"operating_hour": item})
}

func (h *Handler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid operating hour ID")
		return
	}

	var req UpdateOperatingHourRequest
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
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Operating hour not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update operating hour")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"operating_hour": item})
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid operating hour ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Operating hour not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete operating hour")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, guard func(entity, operation string) gin.HandlerFunc) {
	g := r.Group("/operating-hours")
	g.GET("", guard("operating_hour", "read"), h.List)
	g.GET("/:id", guard("operating_hour", "read"), h.GetByID)
	g.POST("", guard("operating_hour", "create"), h.Create)
	g.PUT("/:id", guard("operating_hour", "update"), h.Update)
	g.DELETE("/:id", guard("operating_hour", "delete"), h.Delete)
}
