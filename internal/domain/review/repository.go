package review

import (
	"context"

	"github.com/amunitsiia/shop/internal/domain/shared"
	"github.com/google/uuid"
)

// ReviewRepository defines persistence for reviews.
// Filter keys: "product_id", "grade".
type ReviewRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Review, error)
	// FindByProduct returns product reviews newest first with author names
	FindByProduct(ctx context.Context, productID uuid.UUID) ([]Review, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Review, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, review *Review) error
	Delete(ctx context.Context, id uuid.UUID) error
	// IncrementReaction bumps like_num (like=true) or dislike_num atomically
	IncrementReaction(ctx context.Context, id uuid.UUID, like bool) error
}

// LikeRepository defines persistence for review reactions
type LikeRepository interface {
	Exists(ctx context.Context, reviewID, authorID uuid.UUID) (bool, error)
	// CreateIfAbsent inserts the like unless the author already reacted to
	// the review, reporting whether a row was written
	CreateIfAbsent(ctx context.Context, like *Like) (bool, error)
}
