package storage

import (
	"context"
	"errors"
	"strings"
	"time"

	catalogapp "github.com/amunitsiia/shop/internal/application/catalog"
)

// StubObjectStorage stands in for object storage when no bucket is
// configured. URLs point at BaseURL and nothing is stored.
type StubObjectStorage struct {
	BaseURL string
}

// NewStubObjectStorage creates a new StubObjectStorage
func NewStubObjectStorage(baseURL string) *StubObjectStorage {
	if baseURL == "" {
		baseURL = "/media"
	}
	return &StubObjectStorage{BaseURL: strings.TrimRight(baseURL, "/")}
}

var _ catalogapp.ObjectStorage = (*StubObjectStorage)(nil)

// GenerateUploadURL returns a fake upload URL for storageKey
func (s *StubObjectStorage) GenerateUploadURL(
	_ context.Context,
	storageKey, _ string,
	expiresIn time.Duration,
) (string, time.Time, error) {
	if storageKey == "" {
		return "", time.Time{}, errors.New("storage key is required")
	}
	expiresAt := time.Now().Add(expiresIn)
	return s.BaseURL + "/upload/" + escapeKey(storageKey) + "?expires=" + expiresAt.Format(time.RFC3339), expiresAt, nil
}

// DeleteObject is a no-op
func (s *StubObjectStorage) DeleteObject(_ context.Context, storageKey string) error {
	if storageKey == "" {
		return errors.New("storage key is required")
	}
	return nil
}

// ObjectExists always reports true so image registration works in development
func (s *StubObjectStorage) ObjectExists(_ context.Context, storageKey string) (bool, error) {
	if storageKey == "" {
		return false, errors.New("storage key is required")
	}
	return true, nil
}

// PublicURL joins BaseURL and the key
func (s *StubObjectStorage) PublicURL(storageKey string) string {
	if storageKey == "" {
		return ""
	}
	return s.BaseURL + "/" + escapeKey(storageKey)
}
