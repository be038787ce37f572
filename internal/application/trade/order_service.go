package trade

import (
	"context"
	"errors"

	"github.com/amunitsiia/shop/internal/domain/catalog"
	"github.com/amunitsiia/shop/internal/domain/partner"
	"github.com/amunitsiia/shop/internal/domain/shared"
	"github.com/amunitsiia/shop/internal/domain/trade"
	"github.com/google/uuid"
)

// OrderService serves order history and the back-office order and sale lists
type OrderService struct {
	orderRepo   trade.OrderRepository
	saleRepo    trade.SaleRepository
	buyerRepo   partner.BuyerRepository
	productRepo catalog.ProductRepository
}

// NewOrderService creates a new OrderService
func NewOrderService(
	orderRepo trade.OrderRepository,
	saleRepo trade.SaleRepository,
	buyerRepo partner.BuyerRepository,
	productRepo catalog.ProductRepository,
) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		saleRepo:    saleRepo,
		buyerRepo:   buyerRepo,
		productRepo: productRepo,
	}
}

// History returns the orders of the user's buyer, newest first. Orders
// without a sale carry the unpaid status.
func (s *OrderService) History(ctx context.Context, userID uuid.UUID) ([]OrderHistoryEntry, error) {
	buyer, err := s.buyerRepo.FindByUserID(ctx, userID)
	if errors.Is(err, shared.ErrNotFound) {
		return []OrderHistoryEntry{}, nil
	}
	if err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.FindByBuyer(ctx, buyer.ID)
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, len(orders))
	for i := range orders {
		ids[i] = orders[i].ID
	}
	sales := map[uuid.UUID]trade.Sale{}
	if len(ids) > 0 {
		if sales, err = s.saleRepo.FindByOrderIDs(ctx, ids); err != nil {
			return nil, err
		}
	}
	products, err := s.productsFor(ctx, orders)
	if err != nil {
		return nil, err
	}

	entries := make([]OrderHistoryEntry, len(orders))
	for i := range orders {
		entries[i] = OrderHistoryEntry{Order: ToOrderResponse(&orders[i], products)}
		if sale, ok := sales[orders[i].ID]; ok {
			resp := ToSaleResponse(&sale)
			entries[i].Sale = &resp
		}
		if !orders[i].Complete {
			entries[i].Status = trade.StatusUnpaid
		}
	}
	return entries, nil
}

// GetOrder retrieves an order with priced lines
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	products, err := s.productsFor(ctx, []trade.Order{*order})
	if err != nil {
		return nil, err
	}
	resp := ToOrderResponse(order, products)
	return &resp, nil
}

// ListOrders lists orders with item counts and totals
func (s *OrderService) ListOrders(ctx context.Context, filter OrderListFilter) ([]OrderResponse, int64, error) {
	f := listFilter(filter.Page, filter.PageSize, filter.OrderBy, filter.OrderDir)
	if filter.Complete != nil {
		f.Filters["complete"] = *filter.Complete
	}
	if filter.BuyerID != nil {
		f.Filters["buyer_id"] = *filter.BuyerID
	}

	orders, err := s.orderRepo.FindAll(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.orderRepo.Count(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	products, err := s.productsFor(ctx, orders)
	if err != nil {
		return nil, 0, err
	}

	items := make([]OrderResponse, len(orders))
	for i := range orders {
		items[i] = ToOrderResponse(&orders[i], products)
	}
	return items, total, nil
}

// GetSale retrieves a sale
func (s *OrderService) GetSale(ctx context.Context, id uuid.UUID) (*SaleResponse, error) {
	sale, err := s.saleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToSaleResponse(sale)
	return &resp, nil
}

// ListSales lists sales, searching region and city
func (s *OrderService) ListSales(ctx context.Context, filter SaleListFilter) ([]SaleResponse, int64, error) {
	f := listFilter(filter.Page, filter.PageSize, filter.OrderBy, filter.OrderDir)
	f.Search = filter.Search

	sales, err := s.saleRepo.FindAll(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.saleRepo.Count(ctx, f)
	if err != nil {
		return nil, 0, err
	}

	items := make([]SaleResponse, len(sales))
	for i := range sales {
		items[i] = ToSaleResponse(&sales[i])
	}
	return items, total, nil
}

func (s *OrderService) productsFor(ctx context.Context, orders []trade.Order) (map[uuid.UUID]catalog.Product, error) {
	seen := map[uuid.UUID]bool{}
	var ids []uuid.UUID
	for _, o := range orders {
		for _, it := range o.Items {
			if !seen[it.ProductID] {
				seen[it.ProductID] = true
				ids = append(ids, it.ProductID)
			}
		}
	}
	out := make(map[uuid.UUID]catalog.Product, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	products, err := s.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		out[p.ID] = p
	}
	return out, nil
}

func listFilter(page, pageSize int, orderBy, orderDir string) shared.Filter {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	return shared.Filter{
		Page:     page,
		PageSize: pageSize,
		OrderBy:  orderBy,
		OrderDir: orderDir,
		Filters:  make(map[string]interface{}),
	}
}
