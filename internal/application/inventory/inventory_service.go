package inventory

import (
	"context"
	"errors"

	"github.com/amunitsiia/shop/internal/domain/catalog"
	"github.com/amunitsiia/shop/internal/domain/inventory"
	"github.com/amunitsiia/shop/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InventoryService handles goods receipts and stock lots
type InventoryService struct {
	scope       TransactionScope
	incomeRepo  inventory.IncomeRepository
	stockRepo   inventory.StockRepository
	productRepo catalog.ProductRepository
	logger      *zap.Logger
}

// NewInventoryService creates a new InventoryService
func NewInventoryService(
	scope TransactionScope,
	incomeRepo inventory.IncomeRepository,
	stockRepo inventory.StockRepository,
	productRepo catalog.ProductRepository,
	logger *zap.Logger,
) *InventoryService {
	return &InventoryService{
		scope:       scope,
		incomeRepo:  incomeRepo,
		stockRepo:   stockRepo,
		productRepo: productRepo,
		logger:      logger.Named("inventory"),
	}
}

// RegisterIncome saves the income, opens its stock lot and marks the product available
func (s *InventoryService) RegisterIncome(ctx context.Context, req RegisterIncomeRequest) (*IncomeResponse, error) {
	var income *inventory.Income
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		if _, err := repos.ProductRepo().FindByID(ctx, req.ProductID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return shared.ErrNotFound.WithMessage("Product not found")
			}
			return err
		}

		var err error
		income, err = inventory.NewIncome(req.ProductID, req.SupplierID, req.Quantity, req.Price)
		if err != nil {
			return err
		}
		if err := repos.IncomeRepo().Save(ctx, income); err != nil {
			return err
		}

		lot, err := inventory.NewStockFromIncome(income)
		if err != nil {
			return err
		}
		if err := repos.StockRepo().Save(ctx, lot); err != nil {
			return err
		}
		return repos.ProductRepo().SetSold(ctx, req.ProductID, false)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("income registered",
		zap.String("income_id", income.ID.String()),
		zap.String("product_id", req.ProductID.String()),
		zap.Int("quantity", income.IncomeQuantity),
	)
	resp := ToIncomeResponse(income)
	return &resp, nil
}

// UpdateIncome edits an income and reconciles its lot with the quantity change
func (s *InventoryService) UpdateIncome(ctx context.Context, id uuid.UUID, req UpdateIncomeRequest) (*IncomeResponse, error) {
	var income *inventory.Income
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		income, err = repos.IncomeRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		dif, err := income.Change(req.Quantity, req.Price, req.SupplierID)
		if err != nil {
			return err
		}
		if err := repos.IncomeRepo().Save(ctx, income); err != nil {
			return err
		}
		return s.reconcileLot(ctx, repos, income, dif)
	})
	if err != nil {
		return nil, err
	}

	resp := ToIncomeResponse(income)
	return &resp, nil
}

func (s *InventoryService) reconcileLot(ctx context.Context, repos TransactionalRepositories, income *inventory.Income, dif int) error {
	stockRepo := repos.StockRepo()
	lot, err := stockRepo.FindByIncomeIDForUpdate(ctx, income.ID)
	switch {
	case errors.Is(err, shared.ErrNotFound):
		// The lot was sold out already. Only a grown income brings goods back.
		if dif >= 0 || income.ProductID == nil {
			return nil
		}
		lot, err = inventory.NewStockFromIncome(income)
		if err != nil {
			return err
		}
		lot.Quantity = -dif
		if err := stockRepo.Save(ctx, lot); err != nil {
			return err
		}
		return repos.ProductRepo().SetSold(ctx, *income.ProductID, false)
	case err != nil:
		return err
	}

	if lot.ApplyIncomeChange(dif, income.IncomePrice, income.SupplierID) {
		if err := stockRepo.Delete(ctx, lot.ID); err != nil {
			return err
		}
		remaining, err := stockRepo.CountByProduct(ctx, lot.ProductID)
		if err != nil {
			return err
		}
		s.logger.Info("stock lot closed by income edit",
			zap.String("income_id", income.ID.String()),
			zap.Int64("remaining_lots", remaining),
		)
		if remaining == 0 {
			return repos.ProductRepo().SetSold(ctx, lot.ProductID, true)
		}
		return nil
	}

	if err := stockRepo.Save(ctx, lot); err != nil {
		return err
	}
	return repos.ProductRepo().SetSold(ctx, lot.ProductID, false)
}

// Consume removes goods from stock in FIFO order
func (s *InventoryService) Consume(ctx context.Context, req ConsumeRequest) error {
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		return ConsumeStock(ctx, repos.StockRepo(), repos.ProductRepo(), req.ProductID, req.Quantity)
	})
	if err != nil {
		return err
	}
	s.logger.Info("stock consumed",
		zap.String("product_id", req.ProductID.String()),
		zap.Int("quantity", req.Quantity),
	)
	return nil
}

// AvailableQuantity returns the units in stock per product
func (s *InventoryService) AvailableQuantity(ctx context.Context, productIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	return s.stockRepo.AvailableQuantities(ctx, productIDs)
}

// GetIncome retrieves an income by ID
func (s *InventoryService) GetIncome(ctx context.Context, id uuid.UUID) (*IncomeResponse, error) {
	income, err := s.incomeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToIncomeResponse(income)
	return &resp, nil
}

// ListIncomes lists incomes, newest delivery first by default
func (s *InventoryService) ListIncomes(ctx context.Context, filter IncomeListFilter) ([]IncomeResponse, int64, error) {
	f := listFilter(filter.Page, filter.PageSize, filter.OrderBy, filter.OrderDir)
	if filter.ProductID != nil {
		f.Filters["product_id"] = *filter.ProductID
	}
	if filter.SupplierID != nil {
		f.Filters["supplier_id"] = *filter.SupplierID
	}

	incomes, err := s.incomeRepo.FindAll(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.incomeRepo.Count(ctx, f)
	if err != nil {
		return nil, 0, err
	}

	items := make([]IncomeResponse, len(incomes))
	for i := range incomes {
		items[i] = ToIncomeResponse(&incomes[i])
	}
	return items, total, nil
}

// ListStock lists stock lots with their value
func (s *InventoryService) ListStock(ctx context.Context, filter StockListFilter) ([]StockResponse, int64, error) {
	f := listFilter(filter.Page, filter.PageSize, filter.OrderBy, filter.OrderDir)
	if filter.ProductID != nil {
		f.Filters["product_id"] = *filter.ProductID
	}
	if filter.SupplierID != nil {
		f.Filters["supplier_id"] = *filter.SupplierID
	}

	lots, err := s.stockRepo.FindAll(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.stockRepo.Count(ctx, f)
	if err != nil {
		return nil, 0, err
	}

	items := make([]StockResponse, len(lots))
	for i := range lots {
		items[i] = ToStockResponse(&lots[i])
	}
	return items, total, nil
}

// StockSummary aggregates lots per product
func (s *InventoryService) StockSummary(ctx context.Context) ([]ProductStockResponse, error) {
	summary, err := s.stockRepo.Summary(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]ProductStockResponse, len(summary))
	for i, ps := range summary {
		items[i] = ProductStockResponse{
			ProductID:  ps.ProductID,
			Quantity:   ps.Quantity,
			PriceTotal: ps.PriceTotal,
			Lots:       ps.Lots,
		}
	}
	return items, nil
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
