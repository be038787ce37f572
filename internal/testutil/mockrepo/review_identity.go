package mockrepo

import (
	"context"

	"github.com/amunitsiia/shop/internal/domain/identity"
	"github.com/amunitsiia/shop/internal/domain/review"
	"github.com/amunitsiia/shop/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// ReviewRepository mocks review.ReviewRepository
type ReviewRepository struct {
	mock.Mock
}

func (m *ReviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*review.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*review.Review), args.Error(1)
}

func (m *ReviewRepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]review.Review, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).([]review.Review), args.Error(1)
}

func (m *ReviewRepository) FindAll(ctx context.Context, filter shared.Filter) ([]review.Review, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]review.Review), args.Error(1)
}

func (m *ReviewRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ReviewRepository) Save(ctx context.Context, rv *review.Review) error {
	return m.Called(ctx, rv).Error(0)
}

func (m *ReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *ReviewRepository) IncrementReaction(ctx context.Context, id uuid.UUID, like bool) error {
	return m.Called(ctx, id, like).Error(0)
}

// LikeRepository mocks review.LikeRepository
type LikeRepository struct {
	mock.Mock
}

func (m *LikeRepository) Exists(ctx context.Context, reviewID, authorID uuid.UUID) (bool, error) {
	args := m.Called(ctx, reviewID, authorID)
	return args.Bool(0), args.Error(1)
}

func (m *LikeRepository) CreateIfAbsent(ctx context.Context, like *review.Like) (bool, error) {
	args := m.Called(ctx, like)
	return args.Bool(0), args.Error(1)
}

// UserRepository mocks identity.UserRepository
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *UserRepository) FindByLogin(ctx context.Context, login string) ([]identity.User, error) {
	args := m.Called(ctx, login)
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *UserRepository) Save(ctx context.Context, user *identity.User) error {
	return m.Called(ctx, user).Error(0)
}

var (
	_ review.ReviewRepository = (*ReviewRepository)(nil)
	_ review.LikeRepository   = (*LikeRepository)(nil)
	_ identity.UserRepository = (*UserRepository)(nil)
)
