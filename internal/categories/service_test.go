package categories

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/civicworks/civicreport-backend/pkg/db/models"
	"github.com/civicworks/civicreport-backend/pkg/redis"
	"github.com/google/uuid"
)

type stubCategoryLister struct {
	rows  []models.Category
	err   error
	calls int
}

func (s *stubCategoryLister) List(ctx context.Context) ([]models.Category, error) {
	s.calls++
	return s.rows, s.err
}

type fakeCache struct {
	store   map[string]string
	getErr  error
	setErr  error
	setKeys []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: map[string]string{}}
}

func (f *fakeCache) Get(ctx context.Context, key string) (string, error) {
	if f.getErr != nil {
		return "", f.getErr
	}
	v, ok := f.store[key]
	if !ok {
		return "", redis.Nil
	}
	return v, nil
}

func (f *fakeCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	if f.setErr != nil {
		return f.setErr
	}
	switch v := value.(type) {
	case []byte:
		f.store[key] = string(v)
	case string:
		f.store[key] = v
	}
	f.setKeys = append(f.setKeys, key)
	return nil
}

func (f *fakeCache) CacheKey(parts ...string) string {
	return "cr:cache:" + strings.Join(parts, ":")
}

func testCategories() []models.Category {
	return []models.Category{
		{ID: uuid.New(), Name: "Potholes"},
		{ID: uuid.New(), Name: "Sanitation"},
	}
}

func TestListCategoriesPopulatesCache(t *testing.T) {
	repo := &stubCategoryLister{rows: testCategories()}
	cache := newFakeCache()

	svc, err := NewService(ServiceParams{Repo: repo, Cache: cache})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	got, err := svc.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("list categories: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 categories but got %d", len(got))
	}
	if len(cache.setKeys) != 1 {
		t.Fatalf("expected one cache write but got %d", len(cache.setKeys))
	}

	// second call must be served from the cache
	if _, err := svc.ListCategories(context.Background()); err != nil {
		t.Fatalf("list categories (cached): %v", err)
	}
	if repo.calls != 1 {
		t.Fatalf("expected repo hit once but got %d", repo.calls)
	}
}

func TestListCategoriesFallsThroughOnCacheError(t *testing.T) {
	repo := &stubCategoryLister{rows: testCategories()}
	cache := newFakeCache()
	cache.getErr = errors.New("connection refused")
	cache.setErr = errors.New("connection refused")

	svc, err := NewService(ServiceParams{Repo: repo, Cache: cache})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	got, err := svc.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("cache failure must not fail the request: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 categories but got %d", len(got))
	}
}

func TestListCategoriesIgnoresCorruptCacheEntry(t *testing.T) {
	repo := &stubCategoryLister{rows: testCategories()}
	cache := newFakeCache()
	cache.store[cache.CacheKey("categories")] = "{not json"

	svc, err := NewService(ServiceParams{Repo: repo, Cache: cache})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	got, err := svc.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("list categories: %v", err)
	}
	if repo.calls != 1 {
		t.Fatalf("corrupt cache entry must fall through to the repo")
	}

	var cached []CategoryDTO
	if err := json.Unmarshal([]byte(cache.store[cache.CacheKey("categories")]), &cached); err != nil {
		t.Fatalf("cache should hold fresh JSON after fallthrough: %v", err)
	}
	if len(cached) != len(got) {
		t.Fatalf("expected cache refresh with %d rows but got %d", len(got), len(cached))
	}
}

func TestListCategoriesWorksWithoutCache(t *testing.T) {
	repo := &stubCategoryLister{rows: testCategories()}

	svc, err := NewService(ServiceParams{Repo: repo})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	got, err := svc.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("list categories: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 categories but got %d", len(got))
	}
}
