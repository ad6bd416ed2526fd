package doctor

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/medicore/clinic-api/internal/model"
	"github.com/medicore/clinic-api/internal/service/appointment"
	"github.com/medicore/clinic-api/internal/service/availability"
	"github.com/medicore/clinic-api/internal/service/doctor"
	"github.com/medicore/clinic-api/pkg/apperror"
	"github.com/medicore/clinic-api/pkg/httputil"
)

type Handler struct {
	service         doctor.DoctorService
	availabilitySvc availability.AvailabilityService
	appointmentSvc  appointment.AppointmentService
}

func NewHandler(service doctor.DoctorService, availabilitySvc availability.AvailabilityService, appointmentSvc appointment.AppointmentService) *Handler {
	return &Handler{
		service:         service,
		availabilitySvc: availabilitySvc,
		appointmentSvc:  appointmentSvc,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	doctors := r.Group("/doctor")
	{
		doctors.POST("", h.CreateDoctor)
		doctors.GET("", h.SearchDoctors)
		doctors.PUT("/:id", h.UpdateProfile)
		doctors.GET("/:id", h.GetProfile)

		doctors.POST("/:id/availability", h.SetAvailability)
		doctors.GET("/:id/availability", h.GetAvailability)

		doctors.GET("/:id/appointment", h.ListAppointments)

		doctors.POST("/:id/specialties", h.AssociateSpecialty)
		doctors.GET("/:id/specialties", h.GetSpecialties)
	}
}

func (h *Handler) CreateDoctor(c *gin.Context) {
	var req model.CreateDoctorRequest
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

func (h *Handler) SearchDoctors(c *gin.Context) {
	filters := &model.DoctorSearchFilters{
		Location:  c.Query("location"),
		Day:       c.Query("day"),
		StartTime: c.Query("startTime"),
		EndTime:   c.Query("endTime"),
	}

	if raw := c.Query("specialtyId"); raw != "" {
		specialtyID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || specialtyID <= 0 {
			httputil.BadRequest(c, "Invalid specialty ID")
			return
		}
		filters.SpecialtyID = specialtyID
	}

	results, err := h.service.Search(c.Request.Context(), filters)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	id, err := parseDoctorID(c)
	if err != nil {
		httputil.BadRequest(c, "Invalid doctor ID")
		return
	}

	var req model.UpdateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BadRequest(c, "Missing required fields")
		return
	}

	updated, err := h.service.UpdateProfile(c.Request.Context(), id, &req)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *Handler) GetProfile(c *gin.Context) {
	id, err := parseDoctorID(c)
	if err != nil {
		httputil.BadRequest(c, "Invalid doctor ID")
		return
	}

	d, err := h.service.GetProfile(c.Request.Context(), id)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, d)
}

func (h *Handler) SetAvailability(c *gin.Context) {
	id, err := parseDoctorID(c)
	if err != nil {
		httputil.BadRequest(c, "Invalid doctor ID")
		return
	}

	var req model.SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BadRequest(c, "Missing required fields")
		return
	}

	created, err := h.availabilitySvc.Set(c.Request.Context(), &model.Availability{
		DoctorID:  id,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Days:      req.Days,
	})
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *Handler) GetAvailability(c *gin.Context) {
	id, err := parseDoctorID(c)
	if err != nil {
		httputil.BadRequest(c, "Invalid doctor ID")
		return
	}

	slots, err := h.availabilitySvc.ListByDoctor(c.Request.Context(), id)
	if err != nil {
		httputil.Error(c, err)
		return
	}
	if len(slots) == 0 {
		httputil.Error(c, apperror.NotFoundMsg("No availability found for this doctor"))
		return
	}

	c.JSON(http.StatusOK, slots)
}

func (h *Handler) ListAppointments(c *gin.Context) {
	id, err := parseDoctorID(c)
	if err != nil {
		httputil.BadRequest(c, "Invalid doctor ID")
		return
	}

	appointments, err := h.appointmentSvc.ListByDoctor(c.Request.Context(), id)
	if err != nil {
		httputil.Error(c, err)
		return
	}
	if len(appointments) == 0 {
		httputil.Error(c, apperror.NotFoundMsg("No appointments found for this doctor"))
		return
	}

	c.JSON(http.StatusOK, appointments)
}

// AssociateSpecialty accepts the list-shaped body for wire compatibility but
// a doctor holds exactly one specialty.
func (h *Handler) AssociateSpecialty(c *gin.Context) {
	id, err := parseDoctorID(c)
	if err != nil {
		httputil.BadRequest(c, "Invalid doctor ID")
		return
	}

	var req model.AssociateSpecialtiesRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.SpecialtyIDs) != 1 {
		httputil.BadRequest(c, "Doctor can be associated with exactly one specialty.")
		return
	}

	result, err := h.service.AssociateSpecialty(c.Request.Context(), id, req.SpecialtyIDs[0])
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) GetSpecialties(c *gin.Context) {
	id, err := parseDoctorID(c)
	if err != nil {
		httputil.BadRequest(c, "Invalid doctor ID")
		return
	}

	specialties, err := h.service.GetSpecialties(c.Request.Context(), id)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, specialties)
}

func parseDoctorID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, strconv.ErrSyntax
	}
	return id, nil
}
