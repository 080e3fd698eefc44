package access

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tablebook/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Check handles GET /access. With ?entity=&operation= it answers a single
// permission question; without them it returns the actor's full grant map so
// a client can gate a whole page in one call.
func (h *Handler) Check(c *gin.Context) {
	role := c.GetString("role")
	if role == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	entity := c.Query("entity")
	operation := c.Query("operation")

	if entity == "" && operation == "" {
		grants, err := h.service.Grants(c.Request.Context(), role)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load permissions")
			return
		}
		response.Success(c, http.StatusOK, gin.H{"grants": grants})
		return
	}

	if entity == "" || !ValidOperation(operation) {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "entity and a valid operation are required")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"allowed": h.service.Can(c.Request.Context(), role, entity, operation),
	})
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/access", h.Check)
}
