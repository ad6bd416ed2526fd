package patient

import (
	"context"
	"fmt"

	"github.com/medicore/clinic-api/internal/model"
	"github.com/medicore/clinic-api/internal/repository"
	"github.com/medicore/clinic-api/pkg/apperror"
	"github.com/medicore/clinic-api/pkg/security"
)

type PatientService interface {
	Create(ctx context.Context, req *model.CreatePatientRequest) (*model.Patient, error)
	Update(ctx context.Context, id int64, req *model.UpdatePatientRequest) (*model.Patient, error)
	GetProfile(ctx context.Context, id int64) (*model.Patient, error)
}

type Service struct {
	repo   repository.PatientRepository
	hasher security.PasswordHasher
}

func NewService(repo repository.PatientRepository, hasher security.PasswordHasher) *Service {
	return &Service{repo: repo, hasher: hasher}
}

// Create rejects a duplicate patient name before inserting. The name is the
// patient uniqueness key; email uniqueness is only enforced by the store.
func (s *Service) Create(ctx context.Context, req *model.CreatePatientRequest) (*model.Patient, error) {
	existing, err := s.repo.FindByName(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check patient name: %w", err)
	}
	if existing != nil {
		return nil, apperror.Conflict("Patient with this name already exists")
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	patient := &model.Patient{
		Name:        req.Name,
		Email:       req.Email,
		Password:    hash,
		DateOfBirth: req.DateOfBirth,
		Address:     req.Address,
	}
	return s.repo.Create(ctx, patient)
}

// Update merges the request over the stored row, so fields the request does
// not carry survive unchanged.
func (s *Service) Update(ctx context.Context, id int64, req *model.UpdatePatientRequest) (*model.Patient, error) {
	patient, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	if patient == nil {
		return nil, apperror.NotFoundMsg("Patient not found")
	}

	patient.Name = req.Name
	patient.Email = req.Email
	patient.Address = req.Address
	return s.repo.Update(ctx, patient)
}

func (s *Service) GetProfile(ctx context.Context, id int64) (*model.Patient, error) {
	patient, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	if patient == nil {
		return nil, apperror.NotFoundMsg("Patient not found")
	}
	return patient, nil
}
