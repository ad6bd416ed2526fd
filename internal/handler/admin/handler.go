package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/medicore/clinic-api/internal/model"
	"github.com/medicore/clinic-api/internal/service/admin"
	"github.com/medicore/clinic-api/internal/service/user"
	"github.com/medicore/clinic-api/pkg/httputil"
)

type Handler struct {
	service admin.AdminService
	userSvc user.UserService
}

func NewHandler(service admin.AdminService, userSvc user.UserService) *Handler {
	return &Handler{service: service, userSvc: userSvc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	admins := r.Group("/admin")
	{
		admins.POST("", h.CreateAdmin)
		admins.GET("/searchUsers", h.SearchUsers)
		admins.PUT("/:id", h.UpdateAdmin)
		admins.GET("/:id", h.GetAdmin)
	}
}

func (h *Handler) CreateAdmin(c *gin.Context) {
	var req model.CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BadRequest(c, "Missing required fields")
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *Handler) UpdateAdmin(c *gin.Context) {
	id, err := parseAdminID(c)
	if err != nil {
		httputil.BadRequest(c, "Invalid admin ID")
		return
	}

	var req model.UpdateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BadRequest(c, "Missing required fields")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, req.Name, req.Email)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *Handler) GetAdmin(c *gin.Context) {
	id, err := parseAdminID(c)
	if err != nil {
		httputil.BadRequest(c, "Invalid admin ID")
		return
	}

	a, err := h.service.GetProfile(c.Request.Context(), id)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, a)
}

// SearchUsers spans the admin, doctor and patient tables in one query.
func (h *Handler) SearchUsers(c *gin.Context) {
	filters := &model.UserSearchFilters{
		Role:  c.Query("role"),
		Name:  c.Query("name"),
		Email: c.Query("email"),
	}
	if filters.Role == "" && filters.Name == "" && filters.Email == "" {
		httputil.BadRequest(c, "At least one search parameter (role, name, or email) is required.")
		return
	}

	results, err := h.userSvc.Search(c.Request.Context(), filters)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}

func parseAdminID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, strconv.ErrSyntax
	}
	return id, nil
}
