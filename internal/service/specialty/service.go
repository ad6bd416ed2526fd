package specialty

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/medicore/clinic-api/internal/model"
	"github.com/medicore/clinic-api/internal/repository"
)

const (
	listCacheKey = "specialties"
	cacheTTL     = 5 * time.Minute
)

type SpecialtyService interface {
	List(ctx context.Context) ([]*model.Specialty, error)
	GetByID(ctx context.Context, id int64) (*model.Specialty, error)
}

// Service serves specialty reads through a TTL cache; specialties have no
// mutation endpoint, so staleness is bounded by the TTL alone.
type Service struct {
	repo  repository.SpecialtyRepository
	cache *gocache.Cache
}

func NewService(repo repository.SpecialtyRepository) *Service {
	return &Service{
		repo:  repo,
		cache: gocache.New(cacheTTL, 10*time.Minute),
	}
}

func (s *Service) List(ctx context.Context) ([]*model.Specialty, error) {
	if cached, ok := s.cache.Get(listCacheKey); ok {
		return cached.([]*model.Specialty), nil
	}

	specialties, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(listCacheKey, specialties, gocache.DefaultExpiration)
	return specialties, nil
}

// GetByID returns (nil, nil) when the specialty does not exist, matching the
// repository contract callers already handle.
func (s *Service) GetByID(ctx context.Context, id int64) (*model.Specialty, error) {
	key := fmt.Sprintf("specialty:%d", id)
	if cached, ok := s.cache.Get(key); ok {
		return cached.(*model.Specialty), nil
	}

	specialty, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if specialty != nil {
		s.cache.Set(key, specialty, gocache.DefaultExpiration)
	}
	return specialty, nil
}
