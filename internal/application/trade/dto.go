package trade

import (
	"time"

	"github.com/amunitsiia/shop/internal/domain/catalog"
	"github.com/amunitsiia/shop/internal/domain/partner"
	"github.com/amunitsiia/shop/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Customer identifies the signed-in user a cart belongs to
type Customer struct {
	UserID   uuid.UUID
	Username string
	Email    string
}

// CartProductResponse is the product shown on a cart line
type CartProductResponse struct {
	ID    uuid.UUID       `json:"id"`
	Name  string          `json:"name"`
	Slug  string          `json:"slug"`
	Price decimal.Decimal `json:"price"`
	Image string          `json:"image"`
}

// CartItemResponse is one cart line
type CartItemResponse struct {
	Product  CartProductResponse `json:"product"`
	Quantity int                 `json:"quantity"`
	Total    decimal.Decimal     `json:"total"`
}

// OrderTotalsResponse carries the totals of a cart or order
type OrderTotalsResponse struct {
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"item_count"`
}

// CartResponse is the cart view
type CartResponse struct {
	Items []CartItemResponse  `json:"items"`
	Order OrderTotalsResponse `json:"order"`
}

// UpdateItemRequest changes one cart line of a signed-in buyer
type UpdateItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Action    string    `json:"action" binding:"required,oneof=add remove"`
}

// UpdateItemResponse acknowledges a cart change
type UpdateItemResponse struct {
	Message   string `json:"message"`
	ItemCount int    `json:"item_count"`
}

// ContactForm is the buyer part of checkout and account forms
type ContactForm struct {
	Name    string `json:"name" binding:"required,max=50"`
	Email   string `json:"email" binding:"required,email"`
	Tel     string `json:"tel" binding:"required,min=8,max=15,ua_phone"`
	Address string `json:"address" binding:"required,max=30"`
}

// Contact converts the form to a partner contact
func (f ContactForm) Contact() partner.Contact {
	return partner.Contact{Name: f.Name, Email: f.Email, Tel: f.Tel, Address: f.Address}
}

// CheckoutForm is submitted to complete a purchase
type CheckoutForm struct {
	ContactForm
	Region     string `json:"region" binding:"required,max=80"`
	City       string `json:"city" binding:"required,max=80"`
	Department string `json:"department" binding:"required,max=8"`
	// Cart overrides the cart cookie when set
	Cart string `json:"cart"`
}

// Delivery converts the form to a sale destination
func (f CheckoutForm) Delivery() trade.Delivery {
	return trade.Delivery{Region: f.Region, City: f.City, Department: f.Department}
}

// CheckoutResponse is returned by both checkout steps
type CheckoutResponse struct {
	Items     []CartItemResponse  `json:"items"`
	Order     OrderTotalsResponse `json:"order"`
	Message   string              `json:"message,omitempty"`
	Warning   string              `json:"warning,omitempty"`
	Cart      string              `json:"cart"`
	Completed bool                `json:"completed"`
	Form      *ContactForm        `json:"form,omitempty"`
	OrderID   *uuid.UUID          `json:"order_id,omitempty"`
	SaleID    *uuid.UUID          `json:"sale_id,omitempty"`
}

// OrderItemResponse is an order line with its total
type OrderItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Total       decimal.Decimal `json:"total"`
	AddedAt     time.Time       `json:"added_at"`
}

// SaleResponse represents a sale
type SaleResponse struct {
	ID         uuid.UUID `json:"id"`
	OrderID    uuid.UUID `json:"order_id"`
	SaleDate   time.Time `json:"sale_date"`
	Region     string    `json:"region"`
	City       string    `json:"city"`
	Department string    `json:"department"`
}

// OrderResponse represents an order with its lines
type OrderResponse struct {
	ID        uuid.UUID           `json:"id"`
	BuyerID   uuid.UUID           `json:"buyer_id"`
	OrderedAt time.Time           `json:"ordered_at"`
	Complete  bool                `json:"complete"`
	Total     decimal.Decimal     `json:"total"`
	ItemCount int                 `json:"item_count"`
	Items     []OrderItemResponse `json:"items"`
}

// OrderHistoryEntry is one order of the account history
type OrderHistoryEntry struct {
	Order  OrderResponse `json:"order"`
	Sale   *SaleResponse `json:"sale,omitempty"`
	Status string        `json:"status,omitempty"`
}

// OrderListFilter filters the back-office order list
type OrderListFilter struct {
	Complete *bool      `form:"complete"`
	BuyerID  *uuid.UUID `form:"buyer_id"`
	Page     int        `form:"page" binding:"omitempty,min=1"`
	PageSize int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string     `form:"order_by"`
	OrderDir string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// SaleListFilter filters the back-office sale list
type SaleListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToSaleResponse converts a domain sale to a response
func ToSaleResponse(s *trade.Sale) SaleResponse {
	return SaleResponse{
		ID:         s.ID,
		OrderID:    s.OrderID,
		SaleDate:   s.SaleDate,
		Region:     s.Region,
		City:       s.City,
		Department: s.Department,
	}
}

// ToOrderResponse prices the order lines with the given products.
// Lines of products missing from the map are priced at zero.
func ToOrderResponse(o *trade.Order, products map[uuid.UUID]catalog.Product) OrderResponse {
	resp := OrderResponse{
		ID:        o.ID,
		BuyerID:   o.BuyerID,
		OrderedAt: o.OrderedAt,
		Complete:  o.Complete,
		Total:     decimal.Zero,
		Items:     make([]OrderItemResponse, 0, len(o.Items)),
	}
	for _, it := range o.Items {
		p := products[it.ProductID]
		total := p.LineTotal(it.Quantity)
		resp.Items = append(resp.Items, OrderItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: p.Name,
			Price:       p.Price,
			Quantity:    it.Quantity,
			Total:       total,
			AddedAt:     it.AddedAt,
		})
		resp.Total = resp.Total.Add(total)
		resp.ItemCount += it.Quantity
	}
	return resp
}

func toCartItems(lines []trade.Line) []CartItemResponse {
	items := make([]CartItemResponse, 0, len(lines))
	for _, l := range lines {
		items = append(items, CartItemResponse{
			Product: CartProductResponse{
				ID:    l.ProductID,
				Name:  l.Name,
				Slug:  l.Slug,
				Price: l.Price,
				Image: l.Image,
			},
			Quantity: l.Quantity,
			Total:    l.Total(),
		})
	}
	return items
}

func toTotals(t trade.Totals) OrderTotalsResponse {
	return OrderTotalsResponse{Total: t.Total, ItemCount: t.ItemCount}
}
