package catalog

import (
	"context"
	"time"
)

// Navigation cache keys shared with the storefront
const (
	CacheKeySuperCategories = "super_categories"
	CacheKeyCategoryList    = "category_list"
)

// ObjectStorage stores uploaded media
type ObjectStorage interface {
	// GenerateUploadURL presigns a direct upload of storageKey
	GenerateUploadURL(ctx context.Context, storageKey, contentType string, expiresIn time.Duration) (string, time.Time, error)
	DeleteObject(ctx context.Context, storageKey string) error
	ObjectExists(ctx context.Context, storageKey string) (bool, error)
	PublicURL(storageKey string) string
}

// NavigationCache is the part of the cache the back office invalidates
type NavigationCache interface {
	Delete(ctx context.Context, keys ...string) error
}
