package preference

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
	var customerID *uuid.UUID
	if raw := c.Query("customer_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid customer_id filter")
			return
		}
		customerID = &id
	}

	items, err := h.service.List(c.Request.Context(), c.GetString("role"), relations.Parse(c.Query("relations")), customerID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to list customer preferences")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"customer_preferences": items})
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid customer preference ID")
		return
	}

	item, err := h.service.Get(c.Request.Context(), c.GetString("role"), id, relations.Parse(c.Query("relations")))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Customer preference not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load customer preference")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"customer_preference": item})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateCustomerPreferenceRequest
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
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create customer preference")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"customer_preference": item})
}

func (h *Handler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid customer preference ID")
		return
	}

	var req UpdateCustomerPreferenceRequest
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
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Customer preference not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update customer preference")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"customer_preference": item})
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid customer preference ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Customer preference not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete customer preference")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, guard func(entity, operation string) gin.HandlerFunc) {
	g := r.Group("/customer-preferences")
	g.GET("", guard("customer_preference", "read"), h.List)
	g.GET("/:id", guard("customer_preference", "read"), h.GetByID)
	g.POST("", guard("customer_preference", "create"), h.Create)
	g.PUT("/:id", guard("customer_preference", "update"), h.Update)
	g.DELETE("/:id", guard("customer_preference", "delete"), h.Delete)
}
