package specialty

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medicore/clinic-api/internal/service/specialty"
	"github.com/medicore/clinic-api/pkg/httputil"
)

type Handler struct {
	service specialty.SpecialtyService
}

func NewHandler(service specialty.SpecialtyService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/specialties", h.ListSpecialties)
}

func (h *Handler) ListSpecialties(c *gin.Context) {
	specialties, err := h.service.List(c.Request.Context())
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, specialties)
}
