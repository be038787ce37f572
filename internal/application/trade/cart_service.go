package trade

import (
	"context"
	"errors"

	"github.com/amunitsiia/shop/internal/domain/catalog"
	"github.com/amunitsiia/shop/internal/domain/partner"
	"github.com/amunitsiia/shop/internal/domain/shared"
	"github.com/amunitsiia/shop/internal/domain/trade"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrProductSoldOut is returned when a sold-out product is put into a cart
var ErrProductSoldOut = shared.NewDomainError("PRODUCT_SOLD_OUT", "Product is sold out")

// ImageURLResolver turns a stored object key into a URL clients can load
type ImageURLResolver interface {
	PublicURL(key string) string
}

// CartService handles the cookie cart and the server-side cart of signed-in buyers
type CartService struct {
	scope       TransactionScope
	productRepo catalog.ProductRepository
	imageRepo   catalog.ProductImageRepository
	orderRepo   trade.OrderRepository
	buyerRepo   partner.BuyerRepository
	images      ImageURLResolver
	logger      *zap.Logger
}

// NewCartService creates a new CartService
func NewCartService(
	scope TransactionScope,
	productRepo catalog.ProductRepository,
	imageRepo catalog.ProductImageRepository,
	orderRepo trade.OrderRepository,
	buyerRepo partner.BuyerRepository,
	images ImageURLResolver,
	logger *zap.Logger,
) *CartService {
	return &CartService{
		scope:       scope,
		productRepo: productRepo,
		imageRepo:   imageRepo,
		orderRepo:   orderRepo,
		buyerRepo:   buyerRepo,
		images:      images,
		logger:      logger.Named("cart"),
	}
}

// Lines resolves cart entries against the catalog in a stable order.
// Entries of unknown products are skipped.
func (s *CartService) Lines(ctx context.Context, cart trade.Cart) ([]trade.Line, error) {
	ids := cart.ProductIDs()
	if len(ids) == 0 {
		return []trade.Line{}, nil
	}

	products, err := s.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	images, err := s.imageRepo.FirstImages(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]catalog.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	quantities := cart.Quantities()
	lines := make([]trade.Line, 0, len(products))
	for _, id := range ids {
		p, ok := byID[id]
		if !ok {
			continue
		}
		lines = append(lines, trade.Line{
			ProductID: p.ID,
			Name:      p.Name,
			Slug:      p.Slug,
			Price:     p.Price,
			Image:     s.imageURL(images[p.ID]),
			Quantity:  quantities[id],
		})
	}
	return lines, nil
}

// GetCart builds the cart view for a cookie cart
func (s *CartService) GetCart(ctx context.Context, cart trade.Cart) (*CartResponse, error) {
	lines, err := s.Lines(ctx, cart)
	if err != nil {
		return nil, err
	}
	return &CartResponse{
		Items: toCartItems(lines),
		Order: toTotals(trade.Summarize(lines)),
	}, nil
}

// UpdateItem adds or removes one unit of a product in the buyer's open order
func (s *CartService) UpdateItem(ctx context.Context, userID uuid.UUID, req UpdateItemRequest) (*UpdateItemResponse, error) {
	action, err := trade.ParseCartAction(req.Action)
	if err != nil {
		return nil, err
	}

	var count int
	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		product, err := repos.ProductRepo().FindByID(ctx, req.ProductID)
		if err != nil {
			return err
		}
		if !product.IsPurchasable() {
			return ErrProductSoldOut
		}

		buyer, err := repos.BuyerRepo().FindByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return shared.ErrNotFound.WithMessage("Buyer not found")
			}
			return err
		}

		order, err := pendingOrder(ctx, repos.OrderRepo(), buyer.ID)
		if err != nil {
			return err
		}

		item, err := repos.OrderRepo().FindItem(ctx, order.ID, product.ID)
		existing := err == nil
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return err
		}
		if !existing {
			if item, err = trade.NewOrderItem(order.ID, product.ID, 0); err != nil {
				return err
			}
		}

		count = order.ItemCount()
		if existing {
			count -= item.Quantity
		}
		if item.Apply(action) {
			if existing {
				return repos.OrderRepo().DeleteItem(ctx, item.ID)
			}
			return nil
		}
		count += item.Quantity
		return repos.OrderRepo().SaveItem(ctx, item)
	})
	if err != nil {
		return nil, err
	}
	return &UpdateItemResponse{Message: trade.MsgItemAdded, ItemCount: count}, nil
}

// MergeCartOnLogin replaces the buyer's open order with the cookie cart.
// With an empty cookie cart nothing changes and true is returned: the client
// should restore its cookie from the server-side order instead.
func (s *CartService) MergeCartOnLogin(ctx context.Context, customer Customer, cart trade.Cart) (bool, error) {
	if cart.IsEmpty() {
		return true, nil
	}

	ids := cart.ProductIDs()
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		buyer, err := buyerFor(ctx, repos.BuyerRepo(), customer)
		if err != nil {
			return err
		}
		order, err := pendingOrder(ctx, repos.OrderRepo(), buyer.ID)
		if err != nil {
			return err
		}
		if err := repos.OrderRepo().DeleteItems(ctx, order.ID); err != nil {
			return err
		}

		products, err := repos.ProductRepo().FindByIDs(ctx, ids)
		if err != nil {
			return err
		}
		known := make(map[uuid.UUID]bool, len(products))
		for _, p := range products {
			known[p.ID] = true
		}

		quantities := cart.Quantities()
		items := make([]trade.OrderItem, 0, len(ids))
		for _, id := range ids {
			if !known[id] {
				continue
			}
			item, err := trade.NewOrderItem(order.ID, id, quantities[id])
			if err != nil {
				return err
			}
			items = append(items, *item)
		}
		if len(items) == 0 {
			return nil
		}
		return repos.OrderRepo().CreateItems(ctx, items)
	})
	if err != nil {
		return false, err
	}

	s.logger.Info("cookie cart merged into order",
		zap.String("user_id", customer.UserID.String()),
		zap.Int("items", len(ids)),
	)
	return false, nil
}

// RestoreCart returns the cookie cart rebuilt from the user's last order
// when that order is still open. It returns nil when there is nothing to restore.
func (s *CartService) RestoreCart(ctx context.Context, userID uuid.UUID) (trade.Cart, error) {
	order, err := s.lastOrder(ctx, userID)
	if err != nil || order == nil || order.Complete {
		return nil, err
	}
	return trade.CartFromItems(order.Items), nil
}

// ClearPendingOrder drops the user's open order. Used when staff log in.
func (s *CartService) ClearPendingOrder(ctx context.Context, userID uuid.UUID) error {
	order, err := s.lastOrder(ctx, userID)
	if err != nil || order == nil || order.Complete {
		return err
	}
	if err := s.orderRepo.Delete(ctx, order.ID); err != nil {
		return err
	}
	s.logger.Info("pending order cleared", zap.String("user_id", userID.String()))
	return nil
}

func (s *CartService) lastOrder(ctx context.Context, userID uuid.UUID) (*trade.Order, error) {
	buyer, err := s.buyerRepo.FindByUserID(ctx, userID)
	if errors.Is(err, shared.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	order, err := s.orderRepo.FindLastByBuyer(ctx, buyer.ID)
	if errors.Is(err, shared.ErrNotFound) {
		return nil, nil
	}
	return order, err
}

func (s *CartService) imageURL(key string) string {
	if key == "" || s.images == nil {
		return key
	}
	return s.images.PublicURL(key)
}

// buyerFor returns the buyer profile of a user, creating it when missing
func buyerFor(ctx context.Context, repo partner.BuyerRepository, customer Customer) (*partner.Buyer, error) {
	buyer, err := repo.FindByUserID(ctx, customer.UserID)
	if err == nil {
		return buyer, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	buyer = partner.NewBuyerForUser(customer.UserID, customer.Username, customer.Email)
	if err := repo.Save(ctx, buyer); err != nil {
		return nil, err
	}
	return buyer, nil
}

// pendingOrder returns the buyer's open order, opening one when missing
func pendingOrder(ctx context.Context, repo trade.OrderRepository, buyerID uuid.UUID) (*trade.Order, error) {
	order, err := repo.FindPendingByBuyer(ctx, buyerID)
	if err == nil {
		return order, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	order, err = trade.NewOrder(buyerID)
	if err != nil {
		return nil, err
	}
	if err := repo.Save(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}
