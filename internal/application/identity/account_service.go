package identity

import (
	"context"
	"errors"

	apptrade "github.com/amunitsiia/shop/internal/application/trade"
	"github.com/amunitsiia/shop/internal/domain/identity"
	"github.com/amunitsiia/shop/internal/domain/partner"
	"github.com/amunitsiia/shop/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrForeignAccount is returned when a user opens somebody else's account page
var ErrForeignAccount = shared.ErrForbidden.WithMessage("You can only access your own account")

// OrderHistory lists the orders of a user's buyer
type OrderHistory interface {
	History(ctx context.Context, userID uuid.UUID) ([]apptrade.OrderHistoryEntry, error)
}

// AccountService serves the account page: buyer contact details and order history
type AccountService struct {
	userRepo  identity.UserRepository
	buyerRepo partner.BuyerRepository
	orders    OrderHistory
	logger    *zap.Logger
}

// NewAccountService creates a new AccountService
func NewAccountService(
	userRepo identity.UserRepository,
	buyerRepo partner.BuyerRepository,
	orders OrderHistory,
	logger *zap.Logger,
) *AccountService {
	return &AccountService{
		userRepo:  userRepo,
		buyerRepo: buyerRepo,
		orders:    orders,
		logger:    logger.Named("account"),
	}
}

// GetAccount returns the account of userID. accountID is the account
// requested and must be the caller's own.
func (s *AccountService) GetAccount(ctx context.Context, userID, accountID uuid.UUID) (*AccountResponse, error) {
	if userID != accountID {
		return nil, ErrForeignAccount
	}
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	buyer, err := s.buyerOf(ctx, user)
	if err != nil {
		return nil, err
	}
	history, err := s.orders.History(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &AccountResponse{User: ToUserInfo(user), Form: contactForm(buyer), Orders: history}, nil
}

// UpdateAccount replaces the buyer contact details of the caller's account
func (s *AccountService) UpdateAccount(ctx context.Context, userID, accountID uuid.UUID, req apptrade.ContactForm) (*AccountResponse, error) {
	if userID != accountID {
		return nil, ErrForeignAccount
	}
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	buyer, err := s.buyerOf(ctx, user)
	if err != nil {
		return nil, err
	}
	if err := buyer.UpdateContact(req.Contact()); err != nil {
		return nil, err
	}
	if err := s.buyerRepo.Save(ctx, buyer); err != nil {
		return nil, err
	}
	s.logger.Info("account contact updated", zap.String("user_id", userID.String()))

	history, err := s.orders.History(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &AccountResponse{User: ToUserInfo(user), Form: contactForm(buyer), Orders: history}, nil
}

// buyerOf returns the user's buyer profile, creating it from the account when missing
func (s *AccountService) buyerOf(ctx context.Context, user *identity.User) (*partner.Buyer, error) {
	buyer, err := s.buyerRepo.FindByUserID(ctx, user.ID)
	if err == nil {
		return buyer, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	buyer = partner.NewBuyerForUser(user.ID, user.Username, user.Email)
	if err := s.buyerRepo.Save(ctx, buyer); err != nil {
		return nil, err
	}
	return buyer, nil
}

func contactForm(b *partner.Buyer) apptrade.ContactForm {
	c := b.Contact()
	return apptrade.ContactForm{Name: c.Name, Email: c.Email, Tel: c.Tel, Address: c.Address}
}
