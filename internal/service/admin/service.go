package admin

import (
	"context"
	"fmt"

	"github.com/medicore/clinic-api/internal/model"
	"github.com/medicore/clinic-api/internal/repository"
	"github.com/medicore/clinic-api/pkg/apperror"
	"github.com/medicore/clinic-api/pkg/security"
)

type AdminService interface {
	Create(ctx context.Context, req *model.CreateAdminRequest) (*model.Admin, error)
	Update(ctx context.Context, id int64, name, email string) (*model.Admin, error)
	GetProfile(ctx context.Context, id int64) (*model.Admin, error)
}

type Service struct {
	repo   repository.AdminRepository
	hasher security.PasswordHasher
}

func NewService(repo repository.AdminRepository, hasher security.PasswordHasher) *Service {
	return &Service{repo: repo, hasher: hasher}
}

func (s *Service) Create(ctx context.Context, req *model.CreateAdminRequest) (*model.Admin, error) {
	existing, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check admin email: %w", err)
	}
	if existing != nil {
		return nil, apperror.Conflict("Admin with this email already exists")
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &model.Admin{
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
	}
	return s.repo.Create(ctx, admin)
}

func (s *Service) Update(ctx context.Context, id int64, name, email string) (*model.Admin, error) {
	return s.repo.Update(ctx, id, name, email)
}

func (s *Service) GetProfile(ctx context.Context, id int64) (*model.Admin, error) {
	admin, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	if admin == nil {
		return nil, apperror.NotFoundMsg("Admin not found")
	}
	return admin, nil
}
