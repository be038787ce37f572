package catalog

import (
	"context"

	"github.com/amunitsiia/shop/internal/domain/catalog"
	"github.com/amunitsiia/shop/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BrandService manages brands
type BrandService struct {
	brandRepo catalog.BrandRepository
	logger    *zap.Logger
}

// NewBrandService creates a new BrandService
func NewBrandService(brandRepo catalog.BrandRepository, logger *zap.Logger) *BrandService {
	return &BrandService{brandRepo: brandRepo, logger: logger.Named("brand")}
}

// Create creates a brand
func (s *BrandService) Create(ctx context.Context, req BrandRequest) (*BrandResponse, error) {
	b, err := catalog.NewBrand(req.Name, req.Slug)
	if err != nil {
		return nil, err
	}
	if err := s.ensureSlug(ctx, b.Slug, nil); err != nil {
		return nil, err
	}
	if err := s.brandRepo.Save(ctx, b); err != nil {
		return nil, err
	}
	resp := ToBrandResponse(b)
	return &resp, nil
}

// Get returns a brand by ID
func (s *BrandService) Get(ctx context.Context, id uuid.UUID) (*BrandResponse, error) {
	b, err := s.brandRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToBrandResponse(b)
	return &resp, nil
}

// List lists brands with pagination
func (s *BrandService) List(ctx context.Context, filter BrandListFilter) ([]BrandResponse, int64, error) {
	f := listFilter(filter.Page, filter.PageSize, filter.OrderBy, filter.OrderDir)
	f.Search = filter.Search
	brands, total, err := s.brandRepo.FindPage(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	items := make([]BrandResponse, len(brands))
	for i := range brands {
		items[i] = ToBrandResponse(&brands[i])
	}
	return items, total, nil
}

// Update renames a brand
func (s *BrandService) Update(ctx context.Context, id uuid.UUID, req BrandRequest) (*BrandResponse, error) {
	b, err := s.brandRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := b.Update(req.Name, req.Slug); err != nil {
		return nil, err
	}
	if err := s.ensureSlug(ctx, b.Slug, &b.ID); err != nil {
		return nil, err
	}
	if err := s.brandRepo.Save(ctx, b); err != nil {
		return nil, err
	}
	resp := ToBrandResponse(b)
	return &resp, nil
}

// Delete removes a brand. Its products keep existing without a brand.
func (s *BrandService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.brandRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.brandRepo.Delete(ctx, id)
}

func (s *BrandService) ensureSlug(ctx context.Context, slug string, excludeID *uuid.UUID) error {
	exists, err := s.brandRepo.ExistsBySlug(ctx, slug, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return shared.ErrAlreadyExists.WithMessage("Brand with this slug already exists")
	}
	return nil
}
