package inventory

import (
	"time"

	"github.com/amunitsiia/shop/internal/domain/inventory"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RegisterIncomeRequest records a goods receipt
type RegisterIncomeRequest struct {
	ProductID  uuid.UUID       `json:"product_id" binding:"required"`
	SupplierID *uuid.UUID      `json:"supplier_id"`
	Quantity   int             `json:"income_quantity" binding:"required,gt=0,lte=32767"`
	Price      decimal.Decimal `json:"income_price"`
}

// UpdateIncomeRequest edits a goods receipt
type UpdateIncomeRequest struct {
	SupplierID *uuid.UUID      `json:"supplier_id"`
	Quantity   int             `json:"income_quantity" binding:"required,gt=0,lte=32767"`
	Price      decimal.Decimal `json:"income_price"`
}

// ConsumeRequest takes goods out of stock manually
type ConsumeRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,gt=0"`
}

// IncomeListFilter filters the income list
type IncomeListFilter struct {
	ProductID  *uuid.UUID `form:"product_id"`
	SupplierID *uuid.UUID `form:"supplier_id"`
	Page       int        `form:"page" binding:"omitempty,min=1"`
	PageSize   int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy    string     `form:"order_by"`
	OrderDir   string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// StockListFilter filters the stock list
type StockListFilter struct {
	ProductID  *uuid.UUID `form:"product_id"`
	SupplierID *uuid.UUID `form:"supplier_id"`
	Page       int        `form:"page" binding:"omitempty,min=1"`
	PageSize   int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy    string     `form:"order_by"`
	OrderDir   string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// IncomeResponse represents an income in API responses
type IncomeResponse struct {
	ID         uuid.UUID       `json:"id"`
	ProductID  *uuid.UUID      `json:"product_id"`
	SupplierID *uuid.UUID      `json:"supplier_id"`
	Quantity   int             `json:"income_quantity"`
	Price      decimal.Decimal `json:"income_price"`
	IncomeDate time.Time       `json:"income_date"`
}

// StockResponse represents a stock lot
type StockResponse struct {
	ID         uuid.UUID       `json:"id"`
	ProductID  uuid.UUID       `json:"product_id"`
	IncomeID   uuid.UUID       `json:"income_id"`
	SupplierID *uuid.UUID      `json:"supplier_id"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	PriceTotal decimal.Decimal `json:"price_total"`
	CreatedAt  time.Time       `json:"created_at"`
}

// ProductStockResponse is the per-product stock summary
type ProductStockResponse struct {
	ProductID  uuid.UUID       `json:"product_id"`
	Quantity   int             `json:"quantity"`
	PriceTotal decimal.Decimal `json:"price_total"`
	Lots       int             `json:"lots"`
}

// ToIncomeResponse converts a domain income to a response
func ToIncomeResponse(i *inventory.Income) IncomeResponse {
	return IncomeResponse{
		ID:         i.ID,
		ProductID:  i.ProductID,
		SupplierID: i.SupplierID,
		Quantity:   i.IncomeQuantity,
		Price:      i.IncomePrice,
		IncomeDate: i.IncomeDate,
	}
}

// ToStockResponse converts a stock lot to a response
func ToStockResponse(s *inventory.Stock) StockResponse {
	return StockResponse{
		ID:         s.ID,
		ProductID:  s.ProductID,
		IncomeID:   s.IncomeID,
		SupplierID: s.SupplierID,
		Quantity:   s.Quantity,
		Price:      s.Price,
		PriceTotal: s.PriceTotal(),
		CreatedAt:  s.CreatedAt,
	}
}
