package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medicore/clinic-api/internal/repository/sqlite"
)

// Handler serves the operational endpoints that sit outside the resource
// slices.
type Handler struct {
	db *sqlite.DB
}

func NewHandler(db *sqlite.DB) *Handler {
	return &Handler{db: db}
}

func (h *Handler) HealthCheck(c *gin.Context) {
	if err := h.db.PingContext(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
