package review

import (
	"context"

	"github.com/amunitsiia/shop/internal/domain/catalog"
	"github.com/amunitsiia/shop/internal/domain/review"
	"github.com/amunitsiia/shop/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReviewService handles product reviews and reactions to them
type ReviewService struct {
	scope       TransactionScope
	reviewRepo  review.ReviewRepository
	productRepo catalog.ProductRepository
	logger      *zap.Logger
}

// NewReviewService creates a new ReviewService
func NewReviewService(
	scope TransactionScope,
	reviewRepo review.ReviewRepository,
	productRepo catalog.ProductRepository,
	logger *zap.Logger,
) *ReviewService {
	return &ReviewService{
		scope:       scope,
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		logger:      logger.Named("review"),
	}
}

// AddReview posts a review of the product with the given slug.
// authorID is nil for anonymous visitors.
func (s *ReviewService) AddReview(ctx context.Context, productSlug string, authorID *uuid.UUID, req AddReviewRequest) (*ReviewResponse, error) {
	product, err := s.productRepo.FindBySlug(ctx, productSlug)
	if err != nil {
		return nil, err
	}
	r, err := review.NewReview(product.ID, authorID, req.Grade, req.ReviewText)
	if err != nil {
		return nil, err
	}
	if err := s.reviewRepo.Save(ctx, r); err != nil {
		return nil, err
	}
	resp := ToReviewResponse(r)
	return &resp, nil
}

// ToggleLike records the author's reaction to a review once. A second
// reaction by the same author is ignored.
func (s *ReviewService) ToggleLike(ctx context.Context, reviewID, authorID uuid.UUID, like bool) (*LikeResponse, error) {
	added := false
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		if _, err := repos.ReviewRepo().FindByID(ctx, reviewID); err != nil {
			return err
		}
		exists, err := repos.LikeRepo().Exists(ctx, reviewID, authorID)
		if err != nil || exists {
			return err
		}

		l, err := review.NewLike(reviewID, authorID, like)
		if err != nil {
			return err
		}
		added, err = repos.LikeRepo().CreateIfAbsent(ctx, l)
		if err != nil || !added {
			return err
		}
		return repos.ReviewRepo().IncrementReaction(ctx, reviewID, like)
	})
	if err != nil {
		return nil, err
	}

	if !added {
		return &LikeResponse{Message: review.MsgLikeNotAdded}, nil
	}
	s.logger.Debug("review reaction added",
		zap.String("review_id", reviewID.String()),
		zap.Bool("like", like),
	)
	return &LikeResponse{Message: review.MsgLikeAdded, Added: true}, nil
}

// ProductReviews returns a product's reviews newest first and its score
func (s *ReviewService) ProductReviews(ctx context.Context, productID uuid.UUID) (*ProductReviewsResponse, error) {
	reviews, err := s.reviewRepo.FindByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	resp := &ProductReviewsResponse{Reviews: make([]ReviewResponse, len(reviews))}
	grades := make([]int, len(reviews))
	for i := range reviews {
		resp.Reviews[i] = ToReviewResponse(&reviews[i])
		grades[i] = reviews[i].Grade
	}
	resp.Evaluation = review.Evaluate(grades)
	return resp, nil
}

// List lists reviews for the back office
func (s *ReviewService) List(ctx context.Context, filter ReviewListFilter) ([]ReviewResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	f := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Filters:  make(map[string]interface{}),
	}
	if filter.ProductID != nil {
		f.Filters["product_id"] = *filter.ProductID
	}
	if filter.Grade != nil {
		f.Filters["grade"] = *filter.Grade
	}

	reviews, err := s.reviewRepo.FindAll(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.reviewRepo.Count(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	items := make([]ReviewResponse, len(reviews))
	for i := range reviews {
		items[i] = ToReviewResponse(&reviews[i])
	}
	return items, total, nil
}

// Delete removes a review with its reactions
func (s *ReviewService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.reviewRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.reviewRepo.Delete(ctx, id)
}
