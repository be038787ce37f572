package review

import (
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/amunitsiia/shop/internal/domain/shared"
	"github.com/google/uuid"
)

// Grade bounds
const (
	MinGrade = 1
	MaxGrade = 5
)

// Review is a graded customer opinion of a product
type Review struct {
	shared.BaseEntity
	ProductID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	Grade      int        `gorm:"not null"`
	ReviewText string     `gorm:"type:varchar(255);not null"`
	ReviewDate time.Time  `gorm:"not null"`
	AuthorID   *uuid.UUID `gorm:"type:uuid;index"`
	LikeNum    int        `gorm:"not null"`
	DislikeNum int        `gorm:"not null"`
	// AuthorName is loaded from users, never written
	AuthorName string `gorm:"->;-:migration"`
}

// TableName returns the table name for GORM
func (Review) TableName() string {
	return "reviews"
}

// NewReview creates a review. Anonymous reviews have no author.
func NewReview(productID uuid.UUID, authorID *uuid.UUID, grade int, text string) (*Review, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product is required")
	}
	if grade < MinGrade || grade > MaxGrade {
		return nil, shared.NewDomainError("INVALID_GRADE", "Grade must be between 1 and 5")
	}
	text = strings.TrimSpace(text)
	if text == "" || utf8.RuneCountInString(text) > 255 {
		return nil, shared.NewDomainError("INVALID_REVIEW_TEXT", "Review text must be 1-255 characters")
	}
	base := shared.NewBaseEntity()
	return &Review{
		BaseEntity: base,
		ProductID:  productID,
		Grade:      grade,
		ReviewText: text,
		ReviewDate: base.CreatedAt,
		AuthorID:   authorID,
	}, nil
}

// Evaluate converts review grades into the 0-10 product score:
// ceil(2 * sum / count), "0" without reviews.
func Evaluate(grades []int) string {
	if len(grades) == 0 {
		return "0"
	}
	sum := 0
	for _, g := range grades {
		sum += g
	}
	score := int(math.Ceil(2 * float64(sum) / float64(len(grades))))
	return strconv.Itoa(score)
}

// Like is a single reaction of a user to a review
type Like struct {
	shared.BaseEntity
	ReviewID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_like_review_author,priority:1"`
	AuthorID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_like_review_author,priority:2"`
	Like     bool      `gorm:"not null"`
	Dislike  bool      `gorm:"not null"`
}

// TableName returns the table name for GORM
func (Like) TableName() string {
	return "likes"
}

// Reaction responses
const (
	MsgLikeAdded    = "Like was added"
	MsgLikeNotAdded = "Like was not added"
)

// NewLike creates a like (like=true) or dislike (like=false)
func NewLike(reviewID, authorID uuid.UUID, like bool) (*Like, error) {
	if reviewID == uuid.Nil || authorID == uuid.Nil {
		return nil, shared.ErrInvalidInput
	}
	return &Like{
		BaseEntity: shared.NewBaseEntity(),
		ReviewID:   reviewID,
		AuthorID:   authorID,
		Like:       like,
		Dislike:    !like,
	}, nil
}
