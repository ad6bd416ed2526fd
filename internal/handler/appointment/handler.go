package appointment

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/medicore/clinic-api/internal/model"
	"github.com/medicore/clinic-api/internal/service/appointment"
	"github.com/medicore/clinic-api/pkg/httputil"
)

type Handler struct {
	service appointment.AppointmentService
}

func NewHandler(service appointment.AppointmentService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	appointments := r.Group("/appointment")
	{
		appointments.POST("", h.BookAppointment)
		appointments.PUT("/:id", h.RescheduleAppointment)
		appointments.DELETE("/:id", h.CancelAppointment)
	}
}

func (h *Handler) BookAppointment(c *gin.Context) {
	var req model.BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BadRequest(c, "Missing required fields")
		return
	}

	booked, err := h.service.Book(c.Request.Context(), &req)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, booked)
}

// RescheduleAppointment reports any failure, including a missing row, as a
// 400 so callers get a single status to retry on.
func (h *Handler) RescheduleAppointment(c *gin.Context) {
	id, err := parseAppointmentID(c)
	if err != nil {
		httputil.BadRequest(c, "Invalid appointment ID")
		return
	}

	var req model.RescheduleAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BadRequest(c, "Missing required fields")
		return
	}

	rescheduled, err := h.service.Reschedule(c.Request.Context(), id, req.AppointmentDate)
	if err != nil {
		httputil.ErrorWithStatus(c, http.StatusBadRequest, err)
		return
	}

	c.JSON(http.StatusOK, rescheduled)
}

func (h *Handler) CancelAppointment(c *gin.Context) {
	id, err := parseAppointmentID(c)
	if err != nil {
		httputil.BadRequest(c, "Invalid appointment ID")
		return
	}

	if err := h.service.Cancel(c.Request.Context(), id); err != nil {
		httputil.ErrorWithStatus(c, http.StatusBadRequest, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment canceled successfully", "appointmentId": id})
}

func parseAppointmentID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, strconv.ErrSyntax
	}
	return id, nil
}
