package department

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medicore/clinic-api/internal/service/department"
	"github.com/medicore/clinic-api/pkg/httputil"
)

type Handler struct {
	service department.DepartmentService
}

func NewHandler(service department.DepartmentService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/departments", h.ListDepartments)
}

func (h *Handler) ListDepartments(c *gin.Context) {
	departments, err := h.service.List(c.Request.Context())
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, departments)
}
