package trade

import (
	"context"

	appinv "github.com/amunitsiia/shop/internal/application/inventory"
	"github.com/amunitsiia/shop/internal/domain/inventory"
	"github.com/amunitsiia/shop/internal/domain/partner"
	"github.com/amunitsiia/shop/internal/domain/trade"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CheckoutService turns a cart into a paid order
type CheckoutService struct {
	scope     TransactionScope
	carts     *CartService
	stockRepo inventory.StockRepository
	buyerRepo partner.BuyerRepository
	logger    *zap.Logger
}

// NewCheckoutService creates a new CheckoutService
func NewCheckoutService(
	scope TransactionScope,
	carts *CartService,
	stockRepo inventory.StockRepository,
	buyerRepo partner.BuyerRepository,
	logger *zap.Logger,
) *CheckoutService {
	return &CheckoutService{
		scope:     scope,
		carts:     carts,
		stockRepo: stockRepo,
		buyerRepo: buyerRepo,
		logger:    logger.Named("checkout"),
	}
}

// Prepare returns the stock-checked cart and, for signed-in users, the
// contact form prefilled from their buyer profile
func (s *CheckoutService) Prepare(ctx context.Context, customer *Customer, cart trade.Cart) (*CheckoutResponse, error) {
	resp, _, err := s.check(ctx, cart)
	if err != nil {
		return nil, err
	}
	if customer != nil {
		buyer, err := buyerFor(ctx, s.buyerRepo, *customer)
		if err != nil {
			return nil, err
		}
		c := buyer.Contact()
		resp.Form = &ContactForm{Name: c.Name, Email: c.Email, Tel: c.Tel, Address: c.Address}
	}
	return resp, nil
}

// Revise answers a rejected checkout form: the cart is still checked
// against stock and the submitted contact details are echoed back.
func (s *CheckoutService) Revise(ctx context.Context, form CheckoutForm, cart trade.Cart) (*CheckoutResponse, error) {
	resp, _, err := s.check(ctx, cart)
	if err != nil {
		return nil, err
	}
	contact := form.ContactForm
	resp.Form = &contact
	return resp, nil
}

// Submit completes the purchase. When stock no longer covers the cart the
// corrected cart is returned and nothing is written.
func (s *CheckoutService) Submit(ctx context.Context, customer *Customer, form CheckoutForm, cart trade.Cart) (*CheckoutResponse, error) {
	resp, lines, err := s.check(ctx, cart)
	if err != nil {
		return nil, err
	}
	if resp.Message != "" || len(lines) == 0 {
		return resp, nil
	}

	var orderID, saleID uuid.UUID
	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		order, err := s.completeOrder(ctx, repos, customer, form.Contact())
		if err != nil {
			return err
		}
		orderID = order.ID

		items := make([]trade.OrderItem, 0, len(lines))
		for _, l := range lines {
			item, err := trade.NewOrderItem(order.ID, l.ProductID, l.Quantity)
			if err != nil {
				return err
			}
			items = append(items, *item)
		}
		if err := repos.OrderRepo().CreateItems(ctx, items); err != nil {
			return err
		}

		sale, err := trade.NewSale(order, form.Delivery())
		if err != nil {
			return err
		}
		if err := repos.SaleRepo().Save(ctx, sale); err != nil {
			return err
		}
		saleID = sale.ID

		for _, l := range lines {
			if err := appinv.ConsumeStock(ctx, repos.StockRepo(), repos.ProductRepo(), l.ProductID, l.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	totals := trade.Summarize(lines)
	s.logger.Info("checkout completed",
		zap.String("order_id", orderID.String()),
		zap.String("sale_id", saleID.String()),
		zap.Int("items", totals.ItemCount),
		zap.String("total", totals.Total.StringFixed(2)),
	)
	return &CheckoutResponse{
		Items:     []CartItemResponse{},
		Order:     toTotals(trade.Summarize(nil)),
		Message:   trade.MsgPaymentSucceeded,
		Warning:   trade.MsgPaymentWarning,
		Cart:      trade.Cart{}.Encode(),
		Completed: true,
		OrderID:   &orderID,
		SaleID:    &saleID,
	}, nil
}

// check resolves the cart and clamps it to the stock on hand. The returned
// lines are the corrected, non-empty lines.
func (s *CheckoutService) check(ctx context.Context, cart trade.Cart) (*CheckoutResponse, []trade.Line, error) {
	lines, err := s.carts.Lines(ctx, cart)
	if err != nil {
		return nil, nil, err
	}

	ids := make([]uuid.UUID, len(lines))
	for i, l := range lines {
		ids[i] = l.ProductID
	}
	available := map[uuid.UUID]int{}
	if len(ids) > 0 {
		if available, err = s.stockRepo.AvailableQuantities(ctx, ids); err != nil {
			return nil, nil, err
		}
	}

	message, checked := trade.CheckStock(lines, available)
	corrected, totals := trade.CorrectCart(checked)

	kept := make([]trade.Line, 0, len(checked))
	for _, l := range checked {
		if l.Quantity > 0 {
			kept = append(kept, l)
		}
	}

	resp := &CheckoutResponse{
		Items:   toCartItems(kept),
		Order:   toTotals(totals),
		Message: message,
		Cart:    cart.Encode(),
	}
	if message != "" {
		resp.Cart = corrected.Encode()
	}
	return resp, kept, nil
}

// completeOrder closes the signed-in buyer's open order, or opens a closed
// order for a new guest buyer, and stores the contact details on the buyer
func (s *CheckoutService) completeOrder(ctx context.Context, repos TransactionalRepositories, customer *Customer, contact partner.Contact) (*trade.Order, error) {
	var (
		buyer *partner.Buyer
		order *trade.Order
		err   error
	)
	if customer != nil {
		if buyer, err = buyerFor(ctx, repos.BuyerRepo(), *customer); err != nil {
			return nil, err
		}
		if err := buyer.UpdateContact(contact); err != nil {
			return nil, err
		}
		if order, err = pendingOrder(ctx, repos.OrderRepo(), buyer.ID); err != nil {
			return nil, err
		}
		if err := repos.OrderRepo().DeleteItems(ctx, order.ID); err != nil {
			return nil, err
		}
	} else {
		if buyer, err = partner.NewGuestBuyer(contact); err != nil {
			return nil, err
		}
		if order, err = trade.NewOrder(buyer.ID); err != nil {
			return nil, err
		}
	}

	if err := repos.BuyerRepo().Save(ctx, buyer); err != nil {
		return nil, err
	}
	order.MarkComplete()
	if err := repos.OrderRepo().Save(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}
