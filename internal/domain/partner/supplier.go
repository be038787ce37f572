package partner

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/amunitsiia/shop/internal/domain/shared"
)

// Supplier is a company goods are purchased from.
// INN, PDV and EGRPOU are Ukrainian tax and registry identifiers,
// MFO is the bank routing code.
type Supplier struct {
	shared.BaseEntity
	Name            string `gorm:"type:varchar(150);not null"`
	INN             string `gorm:"column:inn;type:varchar(15)"`
	PDV             string `gorm:"column:pdv;type:varchar(15)"`
	EGRPOU          string `gorm:"column:egrpou;type:varchar(15)"`
	Bank            string `gorm:"type:varchar(50)"`
	MFO             string `gorm:"column:mfo;type:varchar(8)"`
	CheckingAccount string `gorm:"type:varchar(50)"`
	Tel             string `gorm:"type:varchar(15)"`
	Email           string `gorm:"type:varchar(254)"`
	Person          string `gorm:"type:varchar(20)"`
}

// TableName returns the table name for GORM
func (Supplier) TableName() string {
	return "suppliers"
}

// SupplierDetails holds the editable supplier attributes
type SupplierDetails struct {
	Name            string
	INN             string
	PDV             string
	EGRPOU          string
	Bank            string
	MFO             string
	CheckingAccount string
	Tel             string
	Email           string
	Person          string
}

// NewSupplier creates a supplier
func NewSupplier(d SupplierDetails) (*Supplier, error) {
	s := &Supplier{BaseEntity: shared.NewBaseEntity()}
	if err := s.Update(d); err != nil {
		return nil, err
	}
	return s, nil
}

// Update replaces the supplier attributes
func (s *Supplier) Update(d SupplierDetails) error {
	d.Name = strings.TrimSpace(d.Name)
	if d.Name == "" {
		return shared.NewDomainError("INVALID_NAME", "Supplier name cannot be empty")
	}
	limits := []struct {
		field, value string
		max          int
	}{
		{"name", d.Name, 150},
		{"inn", d.INN, 15},
		{"pdv", d.PDV, 15},
		{"egrpou", d.EGRPOU, 15},
		{"bank", d.Bank, 50},
		{"mfo", d.MFO, 8},
		{"checking_account", d.CheckingAccount, 50},
		{"tel", d.Tel, 15},
		{"person", d.Person, 20},
	}
	for _, l := range limits {
		if utf8.RuneCountInString(l.value) > l.max {
			return shared.NewDomainError("INVALID_INPUT", l.field+" is too long")
		}
	}
	if d.Email != "" {
		if _, err := mail.ParseAddress(d.Email); err != nil {
			return shared.NewDomainError("INVALID_EMAIL", "Supplier email is invalid")
		}
	}

	s.Name = d.Name
	s.INN = d.INN
	s.PDV = d.PDV
	s.EGRPOU = d.EGRPOU
	s.Bank = d.Bank
	s.MFO = d.MFO
	s.CheckingAccount = d.CheckingAccount
	s.Tel = d.Tel
	s.Email = d.Email
	s.Person = d.Person
	s.Touch()
	return nil
}
