package medicalrecord

import (
	"context"
	"fmt"

	"github.com/medicore/clinic-api/internal/model"
	"github.com/medicore/clinic-api/internal/repository"
	"github.com/medicore/clinic-api/pkg/apperror"
)

type MedicalRecordService interface {
	Create(ctx context.Context, req *model.CreateMedicalRecordRequest) (*model.MedicalRecord, error)
	Get(ctx context.Context, id int64) (*model.MedicalRecord, error)
	Update(ctx context.Context, id int64, req *model.UpdateMedicalRecordRequest) (*model.MedicalRecord, error)
	ListByPatient(ctx context.Context, patientID int64) ([]*model.MedicalRecord, error)
}

type Service struct {
	repo        repository.MedicalRecordRepository
	patientRepo repository.PatientRepository
}

func NewService(repo repository.MedicalRecordRepository, patientRepo repository.PatientRepository) *Service {
	return &Service{repo: repo, patientRepo: patientRepo}
}

func (s *Service) Create(ctx context.Context, req *model.CreateMedicalRecordRequest) (*model.MedicalRecord, error) {
	record := &model.MedicalRecord{
		PatientID:         req.PatientID,
		DoctorID:          req.DoctorID,
		Diagnosis:         req.Diagnosis,
		Prescriptions:     req.Prescriptions,
		Notes:             req.Notes,
		OngoingTreatments: req.OngoingTreatments,
		TestResults:       req.TestResults,
	}
	if record.TestResults == nil {
		record.TestResults = []model.TestResult{}
	}
	return s.repo.Create(ctx, record)
}

func (s *Service) Get(ctx context.Context, id int64) (*model.MedicalRecord, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, apperror.NotFoundMsg("Medical record not found")
	}
	return record, nil
}

// Update applies the fields the request carries over the stored record;
// list fields are overwritten wholesale, never appended.
func (s *Service) Update(ctx context.Context, id int64, req *model.UpdateMedicalRecordRequest) (*model.MedicalRecord, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, apperror.NotFoundMsg("Medical record not found")
	}

	if req.Diagnosis != nil {
		record.Diagnosis = *req.Diagnosis
	}
	if req.Prescriptions != nil {
		record.Prescriptions = *req.Prescriptions
	}
	if req.Notes != nil {
		record.Notes = *req.Notes
	}
	if req.OngoingTreatments != nil {
		record.OngoingTreatments = *req.OngoingTreatments
	}
	if req.TestResults != nil {
		record.TestResults = *req.TestResults
	}
	return s.repo.Update(ctx, record)
}

func (s *Service) ListByPatient(ctx context.Context, patientID int64) ([]*model.MedicalRecord, error) {
	patient, err := s.patientRepo.FindByID(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	if patient == nil {
		return nil, apperror.NotFoundMsg("Patient not found")
	}
	return s.repo.ListByPatient(ctx, patientID)
}
