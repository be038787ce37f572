package catalog

import (
	"context"

	"github.com/amunitsiia/shop/internal/domain/catalog"
	"github.com/amunitsiia/shop/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CategoryService manages the shop navigation: super categories,
// categories and the feature definitions of each category
type CategoryService struct {
	superRepo    catalog.SuperCategoryRepository
	categoryRepo catalog.CategoryRepository
	nav          NavigationCache
	logger       *zap.Logger
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(
	superRepo catalog.SuperCategoryRepository,
	categoryRepo catalog.CategoryRepository,
	nav NavigationCache,
	logger *zap.Logger,
) *CategoryService {
	return &CategoryService{
		superRepo:    superRepo,
		categoryRepo: categoryRepo,
		nav:          nav,
		logger:       logger.Named("category"),
	}
}

// CreateSuperCategory creates a super category
func (s *CategoryService) CreateSuperCategory(ctx context.Context, req SuperCategoryRequest) (*SuperCategoryResponse, error) {
	sc, err := catalog.NewSuperCategory(req.Name, req.Icon)
	if err != nil {
		return nil, err
	}
	if err := s.superRepo.Save(ctx, sc); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	resp := ToSuperCategoryResponse(sc)
	return &resp, nil
}

// GetSuperCategory returns a super category by ID
func (s *CategoryService) GetSuperCategory(ctx context.Context, id uuid.UUID) (*SuperCategoryResponse, error) {
	sc, err := s.superRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToSuperCategoryResponse(sc)
	return &resp, nil
}

// ListSuperCategories returns every super category ordered by name
func (s *CategoryService) ListSuperCategories(ctx context.Context) ([]SuperCategoryResponse, error) {
	scs, err := s.superRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]SuperCategoryResponse, len(scs))
	for i := range scs {
		items[i] = ToSuperCategoryResponse(&scs[i])
	}
	return items, nil
}

// UpdateSuperCategory renames a super category
func (s *CategoryService) UpdateSuperCategory(ctx context.Context, id uuid.UUID, req SuperCategoryRequest) (*SuperCategoryResponse, error) {
	sc, err := s.superRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := sc.Update(req.Name, req.Icon); err != nil {
		return nil, err
	}
	if err := s.superRepo.Save(ctx, sc); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	resp := ToSuperCategoryResponse(sc)
	return &resp, nil
}

// DeleteSuperCategory deletes a super category that has no categories
func (s *CategoryService) DeleteSuperCategory(ctx context.Context, id uuid.UUID) error {
	if _, err := s.superRepo.FindByID(ctx, id); err != nil {
		return err
	}
	used, err := s.superRepo.HasCategories(ctx, id)
	if err != nil {
		return err
	}
	if used {
		return shared.ErrInvalidState.WithMessage("Super category still has categories")
	}
	if err := s.superRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// CreateCategory creates a category under an existing super category
func (s *CategoryService) CreateCategory(ctx context.Context, req CategoryRequest) (*CategoryResponse, error) {
	if _, err := s.superRepo.FindByID(ctx, req.SuperCategoryID); err != nil {
		return nil, err
	}
	c, err := catalog.NewCategory(req.Name, req.Slug, req.SuperCategoryID, req.Icon)
	if err != nil {
		return nil, err
	}
	if err := s.ensureCategorySlug(ctx, c.Slug, nil); err != nil {
		return nil, err
	}
	if err := s.categoryRepo.Save(ctx, c); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	s.logger.Info("category created", zap.String("slug", c.Slug))
	resp := ToCategoryResponse(c)
	return &resp, nil
}

// GetCategory returns a category by ID
func (s *CategoryService) GetCategory(ctx context.Context, id uuid.UUID) (*CategoryResponse, error) {
	c, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToCategoryResponse(c)
	return &resp, nil
}

// ListCategories lists categories with pagination
func (s *CategoryService) ListCategories(ctx context.Context, filter CategoryListFilter) ([]CategoryResponse, int64, error) {
	f := listFilter(filter.Page, filter.PageSize, filter.OrderBy, filter.OrderDir)
	f.Search = filter.Search
	if filter.SuperCategoryID != nil {
		f.Filters["super_category_id"] = *filter.SuperCategoryID
	}

	categories, total, err := s.categoryRepo.FindPage(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	items := make([]CategoryResponse, len(categories))
	for i := range categories {
		items[i] = ToCategoryResponse(&categories[i])
	}
	return items, total, nil
}

// UpdateCategory replaces the attributes of a category
func (s *CategoryService) UpdateCategory(ctx context.Context, id uuid.UUID, req CategoryRequest) (*CategoryResponse, error) {
	c, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.SuperCategoryID != c.SuperCategoryID {
		if _, err := s.superRepo.FindByID(ctx, req.SuperCategoryID); err != nil {
			return nil, err
		}
	}
	if err := c.Update(req.Name, req.Slug, req.SuperCategoryID, req.Icon); err != nil {
		return nil, err
	}
	if err := s.ensureCategorySlug(ctx, c.Slug, &c.ID); err != nil {
		return nil, err
	}
	c.SuperCategory = nil
	if err := s.categoryRepo.Save(ctx, c); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	resp := ToCategoryResponse(c)
	return &resp, nil
}

// DeleteCategory deletes a category that has no products, with its feature definitions
func (s *CategoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if _, err := s.categoryRepo.FindByID(ctx, id); err != nil {
		return err
	}
	used, err := s.categoryRepo.HasProducts(ctx, id)
	if err != nil {
		return err
	}
	if used {
		return shared.ErrInvalidState.WithMessage("Category still has products")
	}
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// AddFeature defines a new characteristic for products of the category
func (s *CategoryService) AddFeature(ctx context.Context, categoryID uuid.UUID, req FeatureRequest) (*FeatureResponse, error) {
	if _, err := s.categoryRepo.FindByID(ctx, categoryID); err != nil {
		return nil, err
	}
	f, err := catalog.NewCategoryFeature(categoryID, req.FeatureName)
	if err != nil {
		return nil, err
	}
	if err := s.categoryRepo.SaveFeature(ctx, f); err != nil {
		return nil, err
	}
	resp := ToFeatureResponse(f)
	return &resp, nil
}

// ListFeatures lists the feature definitions of a category
func (s *CategoryService) ListFeatures(ctx context.Context, categoryID uuid.UUID) ([]FeatureResponse, error) {
	if _, err := s.categoryRepo.FindByID(ctx, categoryID); err != nil {
		return nil, err
	}
	features, err := s.categoryRepo.FindFeatures(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	items := make([]FeatureResponse, len(features))
	for i := range features {
		items[i] = ToFeatureResponse(&features[i])
	}
	return items, nil
}

// DeleteFeature removes a feature definition of the category and every value of it
func (s *CategoryService) DeleteFeature(ctx context.Context, categoryID, featureID uuid.UUID) error {
	f, err := s.categoryRepo.FindFeatureByID(ctx, featureID)
	if err != nil {
		return err
	}
	if f.CategoryID != categoryID {
		return shared.ErrNotFound
	}
	return s.categoryRepo.DeleteFeature(ctx, featureID)
}

func (s *CategoryService) ensureCategorySlug(ctx context.Context, slug string, excludeID *uuid.UUID) error {
	exists, err := s.categoryRepo.ExistsBySlug(ctx, slug, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return shared.ErrAlreadyExists.WithMessage("Category with this slug already exists")
	}
	return nil
}

// invalidate drops the cached navigation. Errors are logged only.
func (s *CategoryService) invalidate(ctx context.Context) {
	if s.nav == nil {
		return
	}
	if err := s.nav.Delete(ctx, CacheKeySuperCategories, CacheKeyCategoryList); err != nil {
		s.logger.Warn("failed to invalidate navigation cache", zap.Error(err))
	}
}

func listFilter(page, pageSize int, orderBy, orderDir string) shared.Filter {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	return shared.Filter{
		Page:     page,
		PageSize: pageSize,
		OrderBy:  orderBy,
		OrderDir: orderDir,
		Filters:  make(map[string]interface{}),
	}
}
