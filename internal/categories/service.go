package categories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/civicworks/civicreport-backend/pkg/db/models"
	pkgerrors "github.com/civicworks/civicreport-backend/pkg/errors"
	"github.com/civicworks/civicreport-backend/pkg/logger"
	"github.com/civicworks/civicreport-backend/pkg/redis"
)

// Service exposes read access to the category reference data.
type Service interface {
	ListCategories(ctx context.Context) ([]CategoryDTO, error)
}

type categoryLister interface {
	List(ctx context.Context) ([]models.Category, error)
}

// cacher is the slice of the redis client the service needs. A nil cacher
// disables caching entirely; cache failures never fail the request.
type cacher interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	CacheKey(parts ...string) string
}

type service struct {
	repo  categoryLister
	cache cacher
	ttl   time.Duration
	logg  *logger.Logger
}

// ServiceParams bundles the dependencies required to build a categories service.
type ServiceParams struct {
	Repo     categoryLister
	Cache    cacher
	CacheTTL time.Duration
	Logger   *logger.Logger
}

// NewService constructs a categories service instance.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("categories repository is required")
	}
	ttl := params.CacheTTL
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &service{
		repo:  params.Repo,
		cache: params.Cache,
		ttl:   ttl,
		logg:  params.Logger,
	}, nil
}

func (s *service) ListCategories(ctx context.Context) ([]CategoryDTO, error) {
	if cached, ok := s.fromCache(ctx); ok {
		return cached, nil
	}

	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list categories")
	}

	out := make([]CategoryDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}

	s.storeCache(ctx, out)
	return out, nil
}

func (s *service) fromCache(ctx context.Context) ([]CategoryDTO, bool) {
	if s.cache == nil {
		return nil, false
	}

	raw, err := s.cache.Get(ctx, s.cache.CacheKey("categories"))
	if err != nil {
		if !errors.Is(err, redis.Nil) && s.logg != nil {
			s.logg.Warn(ctx, "categories cache read failed")
		}
		return nil, false
	}

	var out []CategoryDTO
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, false
	}
	return out, true
}

func (s *service) storeCache(ctx context.Context, rows []CategoryDTO) {
	if s.cache == nil {
		return
	}

	payload, err := json.Marshal(rows)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, s.cache.CacheKey("categories"), payload, s.ttl); err != nil && s.logg != nil {
		s.logg.Warn(ctx, "categories cache write failed")
	}
}
