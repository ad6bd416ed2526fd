package appointment

import (
	"context"

	"github.com/medicore/clinic-api/internal/model"
	"github.com/medicore/clinic-api/internal/repository"
	"github.com/medicore/clinic-api/pkg/apperror"
)

type AppointmentService interface {
	Book(ctx context.Context, req *model.BookAppointmentRequest) (*model.Appointment, error)
	Reschedule(ctx context.Context, id int64, date string) (*model.Appointment, error)
	Cancel(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*model.Appointment, error)
	ListByPatient(ctx context.Context, patientID int64) ([]*model.Appointment, error)
	ListByDoctor(ctx context.Context, doctorID int64) ([]*model.Appointment, error)
}

type Service struct {
	repo repository.AppointmentRepository
}

func NewService(repo repository.AppointmentRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Book(ctx context.Context, req *model.BookAppointmentRequest) (*model.Appointment, error) {
	appointment := &model.Appointment{
		PatientID:       req.PatientID,
		DoctorID:        req.DoctorID,
		AppointmentDate: req.AppointmentDate,
		Reason:          req.Reason,
		Status:          model.AppointmentStatusBooked,
	}
	return s.repo.Create(ctx, appointment)
}

func (s *Service) Reschedule(ctx context.Context, id int64, date string) (*model.Appointment, error) {
	return s.repo.Reschedule(ctx, id, date)
}

// Cancel removes the row; a canceled appointment cannot be transitioned
// back or rescheduled.
func (s *Service) Cancel(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) Get(ctx context.Context, id int64) (*model.Appointment, error) {
	appointment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, apperror.NotFoundMsg("Appointment not found")
	}
	return appointment, nil
}

func (s *Service) ListByPatient(ctx context.Context, patientID int64) ([]*model.Appointment, error) {
	return s.repo.ListByPatient(ctx, patientID)
}

func (s *Service) ListByDoctor(ctx context.Context, doctorID int64) ([]*model.Appointment, error) {
	return s.repo.ListByDoctor(ctx, doctorID)
}
