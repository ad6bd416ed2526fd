package patient

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/medicore/clinic-api/internal/model"
	"github.com/medicore/clinic-api/internal/service/appointment"
	"github.com/medicore/clinic-api/internal/service/medicalrecord"
	"github.com/medicore/clinic-api/internal/service/patient"
	"github.com/medicore/clinic-api/pkg/apperror"
	"github.com/medicore/clinic-api/pkg/httputil"
)

type Handler struct {
	service        patient.PatientService
	appointmentSvc appointment.AppointmentService
	recordSvc      medicalrecord.MedicalRecordService
}

func NewHandler(service patient.PatientService, appointmentSvc appointment.AppointmentService, recordSvc medicalrecord.MedicalRecordService) *Handler {
	return &Handler{
		service:        service,
		appointmentSvc: appointmentSvc,
		recordSvc:      recordSvc,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	patients := r.Group("/patient")
	{
		patients.POST("", h.CreatePatient)
		patients.PUT("/:id", h.UpdatePatient)
		patients.GET("/:id", h.GetPatient)
		patients.GET("/:id/appointment", h.ListAppointments)
		patients.GET("/:id/medical-record", h.ListMedicalRecords)
	}
}

func (h *Handler) CreatePatient(c *gin.Context) {
	var req model.CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BadRequest(c, "All fields are required")
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *Handler) UpdatePatient(c *gin.Context) {
	id, err := parsePatientID(c)
	if err != nil {
		httputil.BadRequest(c, "Invalid patient ID")
		return
	}

	var req model.UpdatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BadRequest(c, "All fields are required")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *Handler) GetPatient(c *gin.Context) {
	id, err := parsePatientID(c)
	if err != nil {
		httputil.BadRequest(c, "Invalid patient ID")
		return
	}

	p, err := h.service.GetProfile(c.Request.Context(), id)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *Handler) ListAppointments(c *gin.Context) {
	id, err := parsePatientID(c)
	if err != nil {
		httputil.BadRequest(c, "Invalid patient ID")
		return
	}

	appointments, err := h.appointmentSvc.ListByPatient(c.Request.Context(), id)
	if err != nil {
		httputil.Error(c, err)
		return
	}
	if len(appointments) == 0 {
		httputil.Error(c, apperror.NotFoundMsg("Appointments not found"))
		return
	}

	c.JSON(http.StatusOK, appointments)
}

func (h *Handler) ListMedicalRecords(c *gin.Context) {
	id, err := parsePatientID(c)
	if err != nil {
		httputil.BadRequest(c, "Invalid patient ID")
		return
	}

	records, err := h.recordSvc.ListByPatient(c.Request.Context(), id)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

func parsePatientID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, strconv.ErrSyntax
	}
	return id, nil
}
