package availability

import (
	"context"

	"github.com/medicore/clinic-api/internal/model"
	"github.com/medicore/clinic-api/internal/repository"
)

type AvailabilityService interface {
	Set(ctx context.Context, availability *model.Availability) (*model.Availability, error)
	ListByDoctor(ctx context.Context, doctorID int64) ([]*model.Availability, error)
}

type Service struct {
	repo repository.AvailabilityRepository
}

func NewService(repo repository.AvailabilityRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Set(ctx context.Context, availability *model.Availability) (*model.Availability, error) {
	return s.repo.Create(ctx, availability)
}

func (s *Service) ListByDoctor(ctx context.Context, doctorID int64) ([]*model.Availability, error) {
	return s.repo.ListByDoctor(ctx, doctorID)
}
