package identity

import (
	"context"

	"github.com/amunitsiia/shop/internal/domain/identity"
	"github.com/amunitsiia/shop/internal/domain/partner"
)

// TransactionScope runs a unit of work against repositories sharing one database transaction
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories exposes the repositories registration writes to
type TransactionalRepositories interface {
	UserRepo() identity.UserRepository
	BuyerRepo() partner.BuyerRepository
}

// NoOpTransactionScope executes without a transaction. Used in tests.
type NoOpTransactionScope struct {
	Users  identity.UserRepository
	Buyers partner.BuyerRepository
}

func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

func (s *NoOpTransactionScope) UserRepo() identity.UserRepository  { return s.Users }
func (s *NoOpTransactionScope) BuyerRepo() partner.BuyerRepository { return s.Buyers }

var _ TransactionScope = (*NoOpTransactionScope)(nil)
