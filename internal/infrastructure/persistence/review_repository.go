package persistence

import (
	"context"

	"github.com/amunitsiia/shop/internal/domain/review"
	"github.com/amunitsiia/shop/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormReviewRepository implements ReviewRepository using GORM
type GormReviewRepository struct {
	db *gorm.DB
}

// NewGormReviewRepository creates a new GormReviewRepository
func NewGormReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

func (r *GormReviewRepository) withAuthor(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Select("reviews.*, users.username AS author_name").
		Joins("LEFT JOIN users ON users.id = reviews.author_id")
}

// FindByID finds a review by its ID
func (r *GormReviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*review.Review, error) {
	var rv review.Review
	if err := r.withAuthor(ctx).Where("reviews.id = ?", id).First(&rv).Error; err != nil {
		return nil, notFound(err)
	}
	return &rv, nil
}

// FindByProduct returns product reviews, newest first
func (r *GormReviewRepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]review.Review, error) {
	var reviews []review.Review
	if err := r.withAuthor(ctx).
		Where("reviews.product_id = ?", productID).
		Order("reviews.created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// FindAll lists reviews matching the filter
func (r *GormReviewRepository) FindAll(ctx context.Context, filter shared.Filter) ([]review.Review, error) {
	var reviews []review.Review
	field := "reviews." + ValidateSortField(filter.OrderBy, ReviewSortFields, "created_at")
	query := r.applyFilter(r.withAuthor(ctx), filter).Order(field + " " + ValidateSortOrder(filter.OrderDir))
	if filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}
	if err := query.Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// Count counts reviews matching the filter
func (r *GormReviewRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	err := r.applyFilter(r.db.WithContext(ctx).Model(&review.Review{}), filter).Count(&count).Error
	return count, err
}

// Save creates or updates a review
func (r *GormReviewRepository) Save(ctx context.Context, rv *review.Review) error {
	return r.db.WithContext(ctx).Save(rv).Error
}

// Delete removes a review and its likes
func (r *GormReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("review_id = ?", id).Delete(&review.Like{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&review.Review{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// IncrementReaction bumps the like or dislike counter in place
func (r *GormReviewRepository) IncrementReaction(ctx context.Context, id uuid.UUID, like bool) error {
	column := "dislike_num"
	if like {
		column = "like_num"
	}
	result := r.db.WithContext(ctx).Model(&review.Review{}).
		Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormReviewRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "product_id":
			query = query.Where("reviews.product_id = ?", value)
		case "grade":
			query = query.Where("reviews.grade = ?", value)
		}
	}
	return query
}

var _ review.ReviewRepository = (*GormReviewRepository)(nil)

// GormLikeRepository implements LikeRepository using GORM
type GormLikeRepository struct {
	db *gorm.DB
}

// NewGormLikeRepository creates a new GormLikeRepository
func NewGormLikeRepository(db *gorm.DB) *GormLikeRepository {
	return &GormLikeRepository{db: db}
}

// Exists reports whether the author already reacted to the review
func (r *GormLikeRepository) Exists(ctx context.Context, reviewID, authorID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&review.Like{}).
		Where("review_id = ? AND author_id = ?", reviewID, authorID).
		Count(&count).Error
	return count > 0, err
}

// CreateIfAbsent inserts a reaction with ON CONFLICT DO NOTHING on the
// unique (review, author) index, so a lost race leaves the transaction usable.
func (r *GormLikeRepository) CreateIfAbsent(ctx context.Context, like *review.Like) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "review_id"}, {Name: "author_id"}},
			DoNothing: true,
		}).
		Create(like)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

var _ review.LikeRepository = (*GormLikeRepository)(nil)
