package medicalrecord

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/medicore/clinic-api/internal/model"
	"github.com/medicore/clinic-api/internal/service/medicalrecord"
	"github.com/medicore/clinic-api/pkg/httputil"
)

type Handler struct {
	service medicalrecord.MedicalRecordService
}

func NewHandler(service medicalrecord.MedicalRecordService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	records := r.Group("/medical-record")
	{
		records.POST("", h.CreateRecord)
		records.PUT("/:id", h.UpdateRecord)
		records.GET("/:id", h.GetRecord)
	}
}

func (h *Handler) CreateRecord(c *gin.Context) {
	var req model.CreateMedicalRecordRequest
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

func (h *Handler) UpdateRecord(c *gin.Context) {
	id, err := parseRecordID(c)
	if err != nil {
		httputil.BadRequest(c, "Invalid medical record ID")
		return
	}

	var req model.UpdateMedicalRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BadRequest(c, "Missing required fields")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *Handler) GetRecord(c *gin.Context) {
	id, err := parseRecordID(c)
	if err != nil {
		httputil.BadRequest(c, "Invalid medical record ID")
		return
	}

	record, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

func parseRecordID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, strconv.ErrSyntax
	}
	return id, nil
}
