package review

import (
	"time"

	"github.com/amunitsiia/shop/internal/domain/review"
	"github.com/google/uuid"
)

// AddReviewRequest posts a review of a product
type AddReviewRequest struct {
	Grade      int    `json:"grade" binding:"required,min=1,max=5"`
	ReviewText string `json:"review_text" binding:"required,max=255"`
}

// LikeRequest reacts to a review: like=true likes it, like=false dislikes it
type LikeRequest struct {
	Like *bool `json:"like" binding:"required"`
}

// LikeResponse reports whether the reaction was recorded
type LikeResponse struct {
	Message string `json:"message"`
	Added   bool   `json:"added"`
}

// ReviewResponse represents a review
type ReviewResponse struct {
	ID         uuid.UUID  `json:"id"`
	ProductID  uuid.UUID  `json:"product_id"`
	Grade      int        `json:"grade"`
	ReviewText string     `json:"review_text"`
	ReviewDate time.Time  `json:"review_date"`
	AuthorID   *uuid.UUID `json:"author_id,omitempty"`
	AuthorName string     `json:"author_name,omitempty"`
	LikeNum    int        `json:"like_num"`
	DislikeNum int        `json:"dislike_num"`
}

// ProductReviewsResponse lists reviews with the resulting product score
type ProductReviewsResponse struct {
	Reviews    []ReviewResponse `json:"reviews"`
	Evaluation string           `json:"evaluation"`
}

// ReviewListFilter filters the back-office review list
type ReviewListFilter struct {
	ProductID *uuid.UUID `form:"product_id"`
	Grade     *int       `form:"grade" binding:"omitempty,min=1,max=5"`
	Page      int        `form:"page" binding:"omitempty,min=1"`
	PageSize  int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy   string     `form:"order_by"`
	OrderDir  string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToReviewResponse converts a domain review to a response
func ToReviewResponse(r *review.Review) ReviewResponse {
	return ReviewResponse{
		ID:         r.ID,
		ProductID:  r.ProductID,
		Grade:      r.Grade,
		ReviewText: r.ReviewText,
		ReviewDate: r.ReviewDate,
		AuthorID:   r.AuthorID,
		AuthorName: r.AuthorName,
		LikeNum:    r.LikeNum,
		DislikeNum: r.DislikeNum,
	}
}
