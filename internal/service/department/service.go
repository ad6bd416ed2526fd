package department

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/medicore/clinic-api/internal/model"
	"github.com/medicore/clinic-api/internal/repository"
)

const listCacheKey = "departments"

type DepartmentService interface {
	List(ctx context.Context) ([]*model.Department, error)
}

// Service caches the department listing; departments are reference data with
// no mutation endpoint.
type Service struct {
	repo  repository.DepartmentRepository
	cache *gocache.Cache
}

func NewService(repo repository.DepartmentRepository) *Service {
	return &Service{
		repo:  repo,
		cache: gocache.New(5*time.Minute, 10*time.Minute),
	}
}

func (s *Service) List(ctx context.Context) ([]*model.Department, error) {
	if cached, ok := s.cache.Get(listCacheKey); ok {
		return cached.([]*model.Department), nil
	}

	departments, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(listCacheKey, departments, gocache.DefaultExpiration)
	return departments, nil
}
