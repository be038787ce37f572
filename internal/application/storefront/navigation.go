package storefront

import (
	"context"
	"time"

	appcatalog "github.com/amunitsiia/shop/internal/application/catalog"
	"github.com/amunitsiia/shop/internal/domain/catalog"
	"go.uber.org/zap"
)

// NavigationService serves the shop menu through the cache
type NavigationService struct {
	superRepo    catalog.SuperCategoryRepository
	categoryRepo catalog.CategoryRepository
	cache        Cache
	ttl          time.Duration
	logger       *zap.Logger
}

// NewNavigationService creates a new NavigationService
func NewNavigationService(
	superRepo catalog.SuperCategoryRepository,
	categoryRepo catalog.CategoryRepository,
	cache Cache,
	ttl time.Duration,
	logger *zap.Logger,
) *NavigationService {
	return &NavigationService{
		superRepo:    superRepo,
		categoryRepo: categoryRepo,
		cache:        cache,
		ttl:          ttl,
		logger:       logger.Named("navigation"),
	}
}

// Navigation returns all super categories and categories. Each list is
// cached under its own key and reloaded independently when missing.
func (s *NavigationService) Navigation(ctx context.Context) (*Navigation, error) {
	nav := &Navigation{}

	if !s.cached(ctx, appcatalog.CacheKeySuperCategories, &nav.SuperCategories) {
		supers, err := s.superRepo.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		nav.SuperCategories = make([]appcatalog.SuperCategoryResponse, len(supers))
		for i := range supers {
			nav.SuperCategories[i] = appcatalog.ToSuperCategoryResponse(&supers[i])
		}
		s.store(ctx, appcatalog.CacheKeySuperCategories, nav.SuperCategories)
	}

	if !s.cached(ctx, appcatalog.CacheKeyCategoryList, &nav.Categories) {
		categories, err := s.categoryRepo.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		nav.Categories = make([]appcatalog.CategoryResponse, len(categories))
		for i := range categories {
			nav.Categories[i] = appcatalog.ToCategoryResponse(&categories[i])
		}
		s.store(ctx, appcatalog.CacheKeyCategoryList, nav.Categories)
	}

	return nav, nil
}

func (s *NavigationService) cached(ctx context.Context, key string, dest any) bool {
	found, err := s.cache.Get(ctx, key, dest)
	if err != nil {
		s.logger.Warn("navigation cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return found
}

func (s *NavigationService) store(ctx context.Context, key string, value any) {
	if err := s.cache.Set(ctx, key, value, s.ttl); err != nil {
		s.logger.Warn("navigation cache write failed", zap.String("key", key), zap.Error(err))
	}
}
