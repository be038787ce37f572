package review

import (
	"context"

	"github.com/amunitsiia/shop/internal/domain/review"
)

// TransactionScope runs a unit of work against repositories sharing one database transaction
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories exposes the repositories a reaction write needs
type TransactionalRepositories interface {
	ReviewRepo() review.ReviewRepository
	LikeRepo() review.LikeRepository
}

// NoOpTransactionScope executes without a transaction. Used in tests.
type NoOpTransactionScope struct {
	Reviews review.ReviewRepository
	Likes   review.LikeRepository
}

func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

func (s *NoOpTransactionScope) ReviewRepo() review.ReviewRepository { return s.Reviews }
func (s *NoOpTransactionScope) LikeRepo() review.LikeRepository     { return s.Likes }

var _ TransactionScope = (*NoOpTransactionScope)(nil)
