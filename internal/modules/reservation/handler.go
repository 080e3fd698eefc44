package reservation

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

// List handles GET /reservations with optional restaurant_id, customer_id and
// table_layout_id filters for the embedded sub-tables.
func (h *Handler) List(c *gin.Context) {
	var filters [3]*uuid.UUID
	for i, name := range []string{"restaurant_id", "customer_id", "table_layout_id"} {
		raw := c.Query(name)
		if raw == "" {
			continue
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid "+name+" filter")
			return
		}
		filters[i] = &id
	}

	items, err := h.service.List(
		c.Request.Context(),
		c.GetString("role"),
		relations.Parse(c.Query("relations")),
		filters[0], filters[1], filters[2],
	)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to list reservations")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reservations": items})
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid reservation ID")
		return
	}

	item, err := h.service.Get(c.Request.Context(), c.GetString("role"), id, relations.Parse(c.Query("relations")))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Reservation not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load reservation")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reservation": item})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateReservationRequest
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
		if errors.Is(err, ErrSlotTaken) {
			response.Error(c, http.StatusConflict, "CONFLICT", "Table already reserved for this slot")
			return
		}
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create reservation")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"reservation": item})
}

func (h *Handler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid reservation ID")
		return
	}

	var req UpdateReservationRequest
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
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Reservation not found")
		case errors.Is(err, ErrSlotTaken):
			response.Error(c, http.StatusConflict, "CONFLICT", "Table already reserved for this slot")
		default:
			response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update reservation")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reservation": item})
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid reservation ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Reservation not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete reservation")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, guard func(entity, operation string) gin.HandlerFunc) {
	g := r.Group("/reservations")
	g.GET("", guard("reservation", "read"), h.List)
	g.GET("/:id", guard("reservation", "read"), h.GetByID)
	g.POST("", guard("reservation", "create"), h.Create)
	g.PUT("/:id", guard("reservation", "update"), h.Update)
	g.DELETE("/:id", guard("reservation", "delete"), h.Delete)
}
