package partner

import (
	"time"

	"github.com/amunitsiia/shop/internal/domain/partner"
	"github.com/google/uuid"
)

// SupplierRequest creates or updates a supplier
type SupplierRequest struct {
	Name            string `json:"name" binding:"required,max=150"`
	INN             string `json:"inn" binding:"max=15"`
	PDV             string `json:"pdv" binding:"max=15"`
	EGRPOU          string `json:"egrpou" binding:"max=15"`
	Bank            string `json:"bank" binding:"max=50"`
	MFO             string `json:"mfo" binding:"max=8"`
	CheckingAccount string `json:"checking_account" binding:"max=50"`
	Tel             string `json:"tel" binding:"max=15"`
	Email           string `json:"email" binding:"omitempty,email"`
	Person          string `json:"person" binding:"max=20"`
}

func (r SupplierRequest) details() partner.SupplierDetails {
	return partner.SupplierDetails{
		Name:            r.Name,
		INN:             r.INN,
		PDV:             r.PDV,
		EGRPOU:          r.EGRPOU,
		Bank:            r.Bank,
		MFO:             r.MFO,
		CheckingAccount: r.CheckingAccount,
		Tel:             r.Tel,
		Email:           r.Email,
		Person:          r.Person,
	}
}

// SupplierResponse represents a supplier
type SupplierResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	INN             string    `json:"inn,omitempty"`
	PDV             string    `json:"pdv,omitempty"`
	EGRPOU          string    `json:"egrpou,omitempty"`
	Bank            string    `json:"bank,omitempty"`
	MFO             string    `json:"mfo,omitempty"`
	CheckingAccount string    `json:"checking_account,omitempty"`
	Tel             string    `json:"tel,omitempty"`
	Email           string    `json:"email,omitempty"`
	Person          string    `json:"person,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// SupplierListFilter filters the supplier list. Search matches
// name, EGRPOU, email and contact person.
type SupplierListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// BuyerRequest updates buyer contact details
type BuyerRequest struct {
	Name    string `json:"name" binding:"required,max=200"`
	Email   string `json:"email" binding:"required,email"`
	Tel     string `json:"tel" binding:"required,max=200"`
	Address string `json:"address" binding:"required,max=30"`
}

// Contact converts the request to domain contact details
func (r BuyerRequest) Contact() partner.Contact {
	return partner.Contact{Name: r.Name, Email: r.Email, Tel: r.Tel, Address: r.Address}
}

// BuyerResponse represents a buyer
type BuyerResponse struct {
	ID        uuid.UUID  `json:"id"`
	UserID    *uuid.UUID `json:"user_id,omitempty"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Tel       string     `json:"tel"`
	Address   string     `json:"address"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// BuyerListFilter filters the buyer list. HasUser selects registered ("yes")
// or guest ("no") buyers.
type BuyerListFilter struct {
	Search   string `form:"search"`
	HasUser  string `form:"has_user" binding:"omitempty,oneof=yes no"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToSupplierResponse converts a domain supplier to a response
func ToSupplierResponse(s *partner.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:              s.ID,
		Name:            s.Name,
		INN:             s.INN,
		PDV:             s.PDV,
		EGRPOU:          s.EGRPOU,
		Bank:            s.Bank,
		MFO:             s.MFO,
		CheckingAccount: s.CheckingAccount,
		Tel:             s.Tel,
		Email:           s.Email,
		Person:          s.Person,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// ToBuyerResponse converts a domain buyer to a response
func ToBuyerResponse(b *partner.Buyer) BuyerResponse {
	return BuyerResponse{
		ID:        b.ID,
		UserID:    b.UserID,
		Name:      b.Name,
		Email:     b.Email,
		Tel:       b.Tel,
		Address:   b.Address,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
