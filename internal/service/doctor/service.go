package doctor

import (
	"context"
	"fmt"

	"github.com/medicore/clinic-api/internal/model"
	"github.com/medicore/clinic-api/internal/repository"
	"github.com/medicore/clinic-api/internal/service/specialty"
	"github.com/medicore/clinic-api/pkg/apperror"
	"github.com/medicore/clinic-api/pkg/security"
)

type DoctorService interface {
	Create(ctx context.Context, req *model.CreateDoctorRequest) (*model.Doctor, error)
	UpdateProfile(ctx context.Context, id int64, req *model.UpdateDoctorRequest) (*model.Doctor, error)
	GetProfile(ctx context.Context, id int64) (*model.Doctor, error)
	AssociateSpecialty(ctx context.Context, doctorID, specialtyID int64) (*model.DoctorSpecialties, error)
	GetSpecialties(ctx context.Context, doctorID int64) ([]model.Specialty, error)
	Search(ctx context.Context, filters *model.DoctorSearchFilters) ([]*model.DoctorSearchResult, error)
}

type Service struct {
	repo         repository.DoctorRepository
	specialtySvc specialty.SpecialtyService
	hasher       security.PasswordHasher
}

func NewService(repo repository.DoctorRepository, specialtySvc specialty.SpecialtyService, hasher security.PasswordHasher) *Service {
	return &Service{repo: repo, specialtySvc: specialtySvc, hasher: hasher}
}

func (s *Service) Create(ctx context.Context, req *model.CreateDoctorRequest) (*model.Doctor, error) {
	existingEmail, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check doctor email: %w", err)
	}
	if existingEmail != nil {
		return nil, apperror.Conflict("A doctor with this email already exists")
	}

	existingLicense, err := s.repo.FindByLicenseNumber(ctx, req.LicenseNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to check license number: %w", err)
	}
	if existingLicense != nil {
		return nil, apperror.Conflict("A doctor with this license number already exists")
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	doctor := &model.Doctor{
		Name:          req.Name,
		Email:         req.Email,
		Password:      hash,
		SpecialtyID:   req.Specialty,
		LicenseNumber: req.LicenseNumber,
	}
	return s.repo.Create(ctx, doctor)
}

func (s *Service) UpdateProfile(ctx context.Context, id int64, req *model.UpdateDoctorRequest) (*model.Doctor, error) {
	doctor := &model.Doctor{
		ID:          id,
		Name:        req.Name,
		Email:       req.Email,
		SpecialtyID: req.Specialty,
	}
	return s.repo.Update(ctx, doctor)
}

func (s *Service) GetProfile(ctx context.Context, id int64) (*model.Doctor, error) {
	doctor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get doctor: %w", err)
	}
	if doctor == nil {
		return nil, apperror.NotFoundMsg("Doctor not found")
	}
	return doctor, nil
}

// AssociateSpecialty requires both the doctor and the specialty to exist
// independently before the association write.
func (s *Service) AssociateSpecialty(ctx context.Context, doctorID, specialtyID int64) (*model.DoctorSpecialties, error) {
	doctor, err := s.repo.FindByID(ctx, doctorID)
	if err != nil {
		return nil, fmt.Errorf("failed to get doctor: %w", err)
	}
	if doctor == nil {
		return nil, apperror.NotFoundMsg("Doctor not found")
	}

	sp, err := s.specialtySvc.GetByID(ctx, specialtyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get specialty: %w", err)
	}
	if sp == nil {
		return nil, apperror.NotFoundMsg("Specialty not found")
	}

	if err := s.repo.UpdateSpecialty(ctx, doctorID, specialtyID); err != nil {
		return nil, err
	}

	return &model.DoctorSpecialties{
		DoctorID:    doctorID,
		Specialties: []model.Specialty{*sp},
	}, nil
}

func (s *Service) GetSpecialties(ctx context.Context, doctorID int64) ([]model.Specialty, error) {
	doctor, err := s.repo.FindByID(ctx, doctorID)
	if err != nil {
		return nil, fmt.Errorf("failed to get doctor: %w", err)
	}
	if doctor == nil {
		return nil, apperror.NotFoundMsg("Doctor not found")
	}

	if doctor.SpecialtyID == 0 {
		return []model.Specialty{}, nil
	}

	sp, err := s.specialtySvc.GetByID(ctx, doctor.SpecialtyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get specialty: %w", err)
	}
	if sp == nil {
		return []model.Specialty{}, nil
	}
	return []model.Specialty{*sp}, nil
}

func (s *Service) Search(ctx context.Context, filters *model.DoctorSearchFilters) ([]*model.DoctorSearchResult, error) {
	return s.repo.Search(ctx, filters)
}
