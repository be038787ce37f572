package partner

import (
	"context"

	"github.com/amunitsiia/shop/internal/domain/partner"
	"github.com/amunitsiia/shop/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SupplierService manages suppliers
type SupplierService struct {
	supplierRepo partner.SupplierRepository
	logger       *zap.Logger
}

// NewSupplierService creates a new SupplierService
func NewSupplierService(supplierRepo partner.SupplierRepository, logger *zap.Logger) *SupplierService {
	return &SupplierService{supplierRepo: supplierRepo, logger: logger.Named("supplier")}
}

// Create creates a supplier
func (s *SupplierService) Create(ctx context.Context, req SupplierRequest) (*SupplierResponse, error) {
	supplier, err := partner.NewSupplier(req.details())
	if err != nil {
		return nil, err
	}
	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}
	s.logger.Info("supplier created", zap.String("supplier_id", supplier.ID.String()))
	resp := ToSupplierResponse(supplier)
	return &resp, nil
}

// Get returns a supplier by ID
func (s *SupplierService) Get(ctx context.Context, id uuid.UUID) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToSupplierResponse(supplier)
	return &resp, nil
}

// List lists suppliers with search and pagination
func (s *SupplierService) List(ctx context.Context, filter SupplierListFilter) ([]SupplierResponse, int64, error) {
	f := listFilter(filter.Page, filter.PageSize, filter.OrderBy, filter.OrderDir)
	f.Search = filter.Search

	suppliers, err := s.supplierRepo.FindAll(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.supplierRepo.Count(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	items := make([]SupplierResponse, len(suppliers))
	for i := range suppliers {
		items[i] = ToSupplierResponse(&suppliers[i])
	}
	return items, total, nil
}

// Update replaces the supplier attributes
func (s *SupplierService) Update(ctx context.Context, id uuid.UUID, req SupplierRequest) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := supplier.Update(req.details()); err != nil {
		return nil, err
	}
	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}
	resp := ToSupplierResponse(supplier)
	return &resp, nil
}

// Delete removes a supplier. Its incomes are kept without a supplier.
func (s *SupplierService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.supplierRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.supplierRepo.Delete(ctx, id)
}

// BuyerService is the back-office view of buyers
type BuyerService struct {
	buyerRepo partner.BuyerRepository
	logger    *zap.Logger
}

// NewBuyerService creates a new BuyerService
func NewBuyerService(buyerRepo partner.BuyerRepository, logger *zap.Logger) *BuyerService {
	return &BuyerService{buyerRepo: buyerRepo, logger: logger.Named("buyer")}
}

// Get returns a buyer by ID
func (s *BuyerService) Get(ctx context.Context, id uuid.UUID) (*BuyerResponse, error) {
	b, err := s.buyerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToBuyerResponse(b)
	return &resp, nil
}

// List lists buyers with search, the has_user filter and pagination
func (s *BuyerService) List(ctx context.Context, filter BuyerListFilter) ([]BuyerResponse, int64, error) {
	f := listFilter(filter.Page, filter.PageSize, filter.OrderBy, filter.OrderDir)
	f.Search = filter.Search
	switch filter.HasUser {
	case "yes":
		f.Filters["has_user"] = true
	case "no":
		f.Filters["has_user"] = false
	}

	buyers, err := s.buyerRepo.FindAll(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.buyerRepo.Count(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	items := make([]BuyerResponse, len(buyers))
	for i := range buyers {
		items[i] = ToBuyerResponse(&buyers[i])
	}
	return items, total, nil
}

// Update replaces the buyer contact details
func (s *BuyerService) Update(ctx context.Context, id uuid.UUID, req BuyerRequest) (*BuyerResponse, error) {
	b, err := s.buyerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := b.UpdateContact(req.Contact()); err != nil {
		return nil, err
	}
	if err := s.buyerRepo.Save(ctx, b); err != nil {
		return nil, err
	}
	resp := ToBuyerResponse(b)
	return &resp, nil
}

// Delete removes a buyer together with its orders and sales
func (s *BuyerService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.buyerRepo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.buyerRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("buyer deleted", zap.String("buyer_id", id.String()))
	return nil
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
