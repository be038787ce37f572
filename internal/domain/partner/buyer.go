package partner

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/amunitsiia/shop/internal/domain/shared"
	"github.com/google/uuid"
)

// Buyer holds the contact details an order is delivered to.
// Buyers created by anonymous checkout have no UserID.
type Buyer struct {
	shared.BaseEntity
	UserID  *uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Name    string     `gorm:"type:varchar(200)"`
	Email   string     `gorm:"type:varchar(254)"`
	Tel     string     `gorm:"type:varchar(200)"`
	Address string     `gorm:"type:varchar(30)"`
}

// TableName returns the table name for GORM
func (Buyer) TableName() string {
	return "buyers"
}

// Contact is the set of buyer fields filled by checkout and account forms
type Contact struct {
	Name    string
	Email   string
	Tel     string
	Address string
}

// NewBuyerForUser creates the buyer profile of a registered user
func NewBuyerForUser(userID uuid.UUID, name, email string) *Buyer {
	return &Buyer{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     &userID,
		Name:       name,
		Email:      email,
	}
}

// NewGuestBuyer creates a buyer for an anonymous checkout
func NewGuestBuyer(c Contact) (*Buyer, error) {
	b := &Buyer{BaseEntity: shared.NewBaseEntity()}
	if err := b.UpdateContact(c); err != nil {
		return nil, err
	}
	return b, nil
}

// HasUser reports whether the buyer belongs to a registered user
func (b *Buyer) HasUser() bool {
	return b.UserID != nil
}

// UpdateContact replaces the contact details; all of them are required
func (b *Buyer) UpdateContact(c Contact) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	c.Tel = strings.TrimSpace(c.Tel)
	c.Address = strings.TrimSpace(c.Address)
	if c.Name == "" || c.Email == "" || c.Tel == "" || c.Address == "" {
		return shared.NewDomainError("INVALID_CONTACT", "Name, email, phone and address are required")
	}
	if _, err := mail.ParseAddress(c.Email); err != nil {
		return shared.NewDomainError("INVALID_EMAIL", "Email is invalid")
	}
	if utf8.RuneCountInString(c.Address) > 30 {
		return shared.NewDomainError("INVALID_ADDRESS", "Address cannot exceed 30 characters")
	}
	b.Name = c.Name
	b.Email = c.Email
	b.Tel = c.Tel
	b.Address = c.Address
	b.Touch()
	return nil
}

// Contact returns the current contact details
func (b *Buyer) Contact() Contact {
	return Contact{Name: b.Name, Email: b.Email, Tel: b.Tel, Address: b.Address}
}
