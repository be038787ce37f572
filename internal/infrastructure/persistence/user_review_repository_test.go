package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/amunitsiia/shop/internal/domain/identity"
	"github.com/amunitsiia/shop/internal/domain/review"
	"github.com/amunitsiia/shop/internal/domain/shared"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUser(t *testing.T, username, email string) *identity.User {
	t.Helper()
	user, err := identity.NewUser(username, email, "secret123")
	require.NoError(t, err)
	return user
}

func TestGormUserRepository_FindByLogin(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	email := gofakeit.Email()
	older := newTestUser(t, "Oksana", email)
	older.CreatedAt = time.Now().Add(-48 * time.Hour)
	require.NoError(t, repo.Save(ctx, older))
	newer := newTestUser(t, "oksana_2", email)
	require.NoError(t, repo.Save(ctx, newer))

	t.Run("by email, oldest first", func(t *testing.T) {
		users, err := repo.FindByLogin(ctx, "  "+email+" ")
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, older.ID, users[0].ID)
		assert.Equal(t, newer.ID, users[1].ID)
	})

	t.Run("by username ignoring case", func(t *testing.T) {
		users, err := repo.FindByLogin(ctx, "OKSANA")
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, older.ID, users[0].ID)
	})

	t.Run("unknown login", func(t *testing.T) {
		users, err := repo.FindByLogin(ctx, "nobody")
		require.NoError(t, err)
		assert.Empty(t, users)
	})
}

func TestGormUserRepository_Save(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	user := newTestUser(t, "taras", "taras@example.com")
	require.NoError(t, repo.Save(ctx, user))

	exists, err := repo.ExistsByUsername(ctx, "TARAS")
	require.NoError(t, err)
	assert.True(t, exists)

	t.Run("updates in place", func(t *testing.T) {
		user.PromoteToStaff()
		user.RecordLogin()
		require.NoError(t, repo.Save(ctx, user))

		found, err := repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.True(t, found.IsStaff)
		assert.NotNil(t, found.LastLoginAt)
	})

	t.Run("duplicate username", func(t *testing.T) {
		err := repo.Save(ctx, newTestUser(t, "taras", "other@example.com"))
		assert.ErrorIs(t, err, shared.ErrAlreadyExists)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormReviewRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormReviewRepository(db)
	likes := NewGormLikeRepository(db)
	users := NewGormUserRepository(db)
	ctx := context.Background()

	category := seedCategory(t, db)
	product := seedProduct(t, db, category.ID, "Спальник", 2700)
	author := newTestUser(t, "reviewer", "")
	require.NoError(t, users.Save(ctx, author))

	signed, err := review.NewReview(product.ID, &author.ID, 5, "Теплий")
	require.NoError(t, err)
	signed.CreatedAt = time.Now().Add(-time.Hour)
	require.NoError(t, repo.Save(ctx, signed))
	anonymous, err := review.NewReview(product.ID, nil, 3, "Важкуватий")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, anonymous))

	t.Run("product reviews newest first with author names", func(t *testing.T) {
		reviews, err := repo.FindByProduct(ctx, product.ID)
		require.NoError(t, err)
		require.Len(t, reviews, 2)
		assert.Equal(t, anonymous.ID, reviews[0].ID)
		assert.Empty(t, reviews[0].AuthorName)
		assert.Equal(t, "reviewer", reviews[1].AuthorName)
	})

	t.Run("filter by grade", func(t *testing.T) {
		filter := shared.DefaultFilter().With("grade", 3)
		reviews, err := repo.FindAll(ctx, filter)
		require.NoError(t, err)
		require.Len(t, reviews, 1)
		assert.Equal(t, anonymous.ID, reviews[0].ID)

		total, err := repo.Count(ctx, filter)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
	})

	t.Run("reactions", func(t *testing.T) {
		require.NoError(t, repo.IncrementReaction(ctx, signed.ID, true))
		require.NoError(t, repo.IncrementReaction(ctx, signed.ID, true))
		require.NoError(t, repo.IncrementReaction(ctx, signed.ID, false))

		found, err := repo.FindByID(ctx, signed.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, found.LikeNum)
		assert.Equal(t, 1, found.DislikeNum)

		assert.ErrorIs(t, repo.IncrementReaction(ctx, uuid.New(), true), shared.ErrNotFound)
	})

	t.Run("one like per author", func(t *testing.T) {
		like, err := review.NewLike(signed.ID, author.ID, true)
		require.NoError(t, err)
		added, err := likes.CreateIfAbsent(ctx, like)
		require.NoError(t, err)
		assert.True(t, added)

		exists, err := likes.Exists(ctx, signed.ID, author.ID)
		require.NoError(t, err)
		assert.True(t, exists)

		again, err := review.NewLike(signed.ID, author.ID, false)
		require.NoError(t, err)
		added, err = likes.CreateIfAbsent(ctx, again)
		require.NoError(t, err, "duplicate must not fail the transaction")
		assert.False(t, added)

		var count int64
		require.NoError(t, db.Model(&review.Like{}).Where("review_id = ?", signed.ID).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("delete drops likes", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, signed.ID))

		exists, err := likes.Exists(ctx, signed.ID, author.ID)
		require.NoError(t, err)
		assert.False(t, exists)
		assert.ErrorIs(t, repo.Delete(ctx, signed.ID), shared.ErrNotFound)
	})
}
