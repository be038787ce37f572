package storage

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/amunitsiia/shop/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func baseConfig() *config.StorageConfig {
	return &config.StorageConfig{
		Bucket:       "shop-media",
		AccessKey:    "test-key",
		SecretKey:    "test-secret",
		Endpoint:     "http://localhost:9000",
		UsePathStyle: true,
	}
}

func TestNewS3ObjectStorage_Validation(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		_, err := NewS3ObjectStorage(nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "configuration is required")
	})

	t.Run("missing bucket", func(t *testing.T) {
		cfg := baseConfig()
		cfg.Bucket = ""
		_, err := NewS3ObjectStorage(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bucket is required")
	})

	t.Run("missing access key", func(t *testing.T) {
		cfg := baseConfig()
		cfg.AccessKey = ""
		_, err := NewS3ObjectStorage(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "access key is required")
	})

	t.Run("missing secret key", func(t *testing.T) {
		cfg := baseConfig()
		cfg.SecretKey = ""
		_, err := NewS3ObjectStorage(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "secret key is required")
	})

	t.Run("defaults", func(t *testing.T) {
		cfg := baseConfig()
		cfg.Endpoint = "localhost:9000"
		storage, err := NewS3ObjectStorage(cfg)
		require.NoError(t, err)
		assert.Equal(t, "shop-media", storage.GetBucket())
		assert.Equal(t, "http://localhost:9000", storage.endpoint)
		assert.Equal(t, 15*time.Minute, storage.presignExpiration)
	})

	t.Run("ssl endpoint", func(t *testing.T) {
		cfg := baseConfig()
		cfg.Endpoint = "s3.example.com"
		cfg.UseSSL = true
		storage, err := NewS3ObjectStorage(cfg)
		require.NoError(t, err)
		assert.Equal(t, "https://s3.example.com", storage.endpoint)
	})
}

func TestS3ObjectStorageOptions(t *testing.T) {
	storage, err := NewS3ObjectStorage(baseConfig(),
		WithLogger(zaptest.NewLogger(t)),
		WithPresignExpiration(time.Hour),
	)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, storage.presignExpiration)
}

func TestS3ObjectStorage_GenerateUploadURL(t *testing.T) {
	storage, err := NewS3ObjectStorage(baseConfig())
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("empty key", func(t *testing.T) {
		url, _, err := storage.GenerateUploadURL(ctx, "", "image/jpeg", time.Minute)
		require.Error(t, err)
		assert.Empty(t, url)
	})

	t.Run("presigned put", func(t *testing.T) {
		url, expiresAt, err := storage.GenerateUploadURL(ctx, "product_nizh/a.jpg", "image/jpeg", 10*time.Minute)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(url, "http://localhost:9000/shop-media/product_nizh/a.jpg"))
		assert.Contains(t, url, "X-Amz-Signature=")
		assert.True(t, expiresAt.Before(time.Now().Add(11*time.Minute)))
	})

	t.Run("default expiration", func(t *testing.T) {
		_, expiresAt, err := storage.GenerateUploadURL(ctx, "k.jpg", "image/jpeg", 0)
		require.NoError(t, err)
		assert.True(t, expiresAt.After(time.Now().Add(14*time.Minute)))
	})
}

func TestS3ObjectStorage_EmptyKey(t *testing.T) {
	storage, err := NewS3ObjectStorage(baseConfig())
	require.NoError(t, err)

	assert.Error(t, storage.DeleteObject(context.Background(), ""))
	_, err = storage.ObjectExists(context.Background(), "")
	assert.Error(t, err)
}

func TestS3ObjectStorage_PublicURL(t *testing.T) {
	t.Run("path style", func(t *testing.T) {
		storage, err := NewS3ObjectStorage(baseConfig())
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:9000/shop-media/brand_x/logo%20big.png", storage.PublicURL("brand_x/logo big.png"))
		assert.Empty(t, storage.PublicURL(""))
	})

	t.Run("virtual hosted", func(t *testing.T) {
		cfg := baseConfig()
		cfg.UsePathStyle = false
		cfg.Endpoint = "https://s3.eu-central-1.amazonaws.com"
		storage, err := NewS3ObjectStorage(cfg)
		require.NoError(t, err)
		assert.Equal(t, "https://shop-media.s3.eu-central-1.amazonaws.com/a.jpg", storage.PublicURL("a.jpg"))
	})

	t.Run("public base url", func(t *testing.T) {
		cfg := baseConfig()
		cfg.PublicBaseURL = "https://cdn.amunitsiia.ua/"
		storage, err := NewS3ObjectStorage(cfg)
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.amunitsiia.ua/a.jpg", storage.PublicURL("a.jpg"))
	})
}
