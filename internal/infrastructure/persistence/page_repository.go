package persistence

import (
	"context"

	"github.com/amunitsiia/shop/internal/domain/catalog"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPageRepository implements PageRepository using GORM
type GormPageRepository struct {
	db *gorm.DB
}

// NewGormPageRepository creates a new GormPageRepository
func NewGormPageRepository(db *gorm.DB) *GormPageRepository {
	return &GormPageRepository{db: db}
}

func (r *GormPageRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.PageData, error) {
	var page catalog.PageData
	if err := r.db.WithContext(ctx).First(&page, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &page, nil
}

func (r *GormPageRepository) FindByName(ctx context.Context, name string) (*catalog.PageData, error) {
	var page catalog.PageData
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&page).Error; err != nil {
		return nil, notFound(err)
	}
	return &page, nil
}

func (r *GormPageRepository) FindAll(ctx context.Context) ([]catalog.PageData, error) {
	var pages []catalog.PageData
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&pages).Error; err != nil {
		return nil, err
	}
	return pages, nil
}

func (r *GormPageRepository) Save(ctx context.Context, page *catalog.PageData) error {
	return r.db.WithContext(ctx).Save(page).Error
}

func (r *GormPageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.PageData{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return notFound(gorm.ErrRecordNotFound)
	}
	return nil
}

var _ catalog.PageRepository = (*GormPageRepository)(nil)
