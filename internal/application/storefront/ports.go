package storefront

import (
	"context"
	"time"

	appreview "github.com/amunitsiia/shop/internal/application/review"
	"github.com/amunitsiia/shop/internal/domain/trade"
	"github.com/google/uuid"
)

// Cache stores the shop navigation between requests
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

// CartRestorer rebuilds a cookie cart from the user's pending order
type CartRestorer interface {
	RestoreCart(ctx context.Context, userID uuid.UUID) (trade.Cart, error)
}

// ReviewReader loads the reviews shown on a product page
type ReviewReader interface {
	ProductReviews(ctx context.Context, productID uuid.UUID) (*appreview.ProductReviewsResponse, error)
}

// ImageURLs turns stored object keys into public URLs
type ImageURLs interface {
	PublicURL(key string) string
}
