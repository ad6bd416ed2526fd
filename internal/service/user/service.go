package user

import (
	"context"

	"github.com/medicore/clinic-api/internal/model"
	"github.com/medicore/clinic-api/internal/repository"
)

type UserService interface {
	Search(ctx context.Context, filters *model.UserSearchFilters) ([]*model.UserSearchResult, error)
}

type Service struct {
	repo repository.UserRepository
}

func NewService(repo repository.UserRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Search(ctx context.Context, filters *model.UserSearchFilters) ([]*model.UserSearchResult, error) {
	return s.repo.Search(ctx, filters)
}
