package review

import (
	"context"
	"testing"

	"github.com/amunitsiia/shop/internal/domain/catalog"
	"github.com/amunitsiia/shop/internal/domain/review"
	"github.com/amunitsiia/shop/internal/domain/shared"
	"github.com/amunitsiia/shop/internal/testutil/mockrepo"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newService() (*ReviewService, *mockrepo.ReviewRepository, *mockrepo.LikeRepository, *mockrepo.ProductRepository) {
	reviews := new(mockrepo.ReviewRepository)
	likes := new(mockrepo.LikeRepository)
	products := new(mockrepo.ProductRepository)
	scope := &NoOpTransactionScope{Reviews: reviews, Likes: likes}
	return NewReviewService(scope, reviews, products, zap.NewNop()), reviews, likes, products
}

func TestReviewService_AddReview(t *testing.T) {
	ctx := context.Background()
	product := &catalog.Product{BaseEntity: shared.NewBaseEntity(), Slug: "nizh-tactical"}

	t.Run("anonymous review", func(t *testing.T) {
		svc, reviews, _, products := newService()
		products.On("FindBySlug", ctx, "nizh-tactical").Return(product, nil)
		reviews.On("Save", ctx, mock.MatchedBy(func(r *review.Review) bool {
			return r.ProductID == product.ID && r.AuthorID == nil && r.Grade == 4
		})).Return(nil)

		resp, err := svc.AddReview(ctx, "nizh-tactical", nil, AddReviewRequest{Grade: 4, ReviewText: "Добрий ніж"})

		require.NoError(t, err)
		assert.Equal(t, "Добрий ніж", resp.ReviewText)
	})

	t.Run("grade out of range", func(t *testing.T) {
		svc, reviews, _, products := newService()
		products.On("FindBySlug", ctx, "nizh-tactical").Return(product, nil)

		_, err := svc.AddReview(ctx, "nizh-tactical", nil, AddReviewRequest{Grade: 6, ReviewText: "x"})

		var de *shared.DomainError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "INVALID_GRADE", de.Code)
		reviews.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("unknown product", func(t *testing.T) {
		svc, _, _, products := newService()
		products.On("FindBySlug", ctx, "missing").Return(nil, shared.ErrNotFound)

		_, err := svc.AddReview(ctx, "missing", nil, AddReviewRequest{Grade: 3, ReviewText: "x"})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestReviewService_ToggleLike(t *testing.T) {
	ctx := context.Background()
	r := &review.Review{BaseEntity: shared.NewBaseEntity()}
	author := uuid.New()

	t.Run("first reaction is counted", func(t *testing.T) {
		svc, reviews, likes, _ := newService()
		reviews.On("FindByID", ctx, r.ID).Return(r, nil)
		likes.On("Exists", ctx, r.ID, author).Return(false, nil)
		likes.On("CreateIfAbsent", ctx, mock.MatchedBy(func(l *review.Like) bool { return !l.Like && l.Dislike })).Return(true, nil)
		reviews.On("IncrementReaction", ctx, r.ID, false).Return(nil)

		resp, err := svc.ToggleLike(ctx, r.ID, author, false)

		require.NoError(t, err)
		assert.Equal(t, review.MsgLikeAdded, resp.Message)
		assert.True(t, resp.Added)
		reviews.AssertExpectations(t)
	})

	t.Run("second reaction is ignored", func(t *testing.T) {
		svc, reviews, likes, _ := newService()
		reviews.On("FindByID", ctx, r.ID).Return(r, nil)
		likes.On("Exists", ctx, r.ID, author).Return(true, nil)

		resp, err := svc.ToggleLike(ctx, r.ID, author, true)

		require.NoError(t, err)
		assert.Equal(t, review.MsgLikeNotAdded, resp.Message)
		reviews.AssertNotCalled(t, "IncrementReaction", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("concurrent duplicate is skipped by the unique index", func(t *testing.T) {
		svc, reviews, likes, _ := newService()
		reviews.On("FindByID", ctx, r.ID).Return(r, nil)
		likes.On("Exists", ctx, r.ID, author).Return(false, nil)
		likes.On("CreateIfAbsent", ctx, mock.Anything).Return(false, nil)

		resp, err := svc.ToggleLike(ctx, r.ID, author, true)

		require.NoError(t, err)
		assert.False(t, resp.Added)
		assert.Equal(t, review.MsgLikeNotAdded, resp.Message)
		reviews.AssertNotCalled(t, "IncrementReaction", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestReviewService_ProductReviews(t *testing.T) {
	ctx := context.Background()
	svc, reviews, _, _ := newService()
	productID := uuid.New()

	reviews.On("FindByProduct", ctx, productID).Return([]review.Review{
		{BaseEntity: shared.NewBaseEntity(), Grade: 5},
		{BaseEntity: shared.NewBaseEntity(), Grade: 4},
	}, nil)

	resp, err := svc.ProductReviews(ctx, productID)

	require.NoError(t, err)
	assert.Len(t, resp.Reviews, 2)
	assert.Equal(t, "9", resp.Evaluation)
}
