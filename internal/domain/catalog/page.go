package catalog

import (
	"strings"

	"github.com/amunitsiia/shop/internal/domain/shared"
)

// Static page names served by the storefront
const (
	PageAbout          = "about"
	PageTerms          = "terms"
	PageContacts       = "contacts"
	PageHelp           = "help"
	PageDelivery       = "delivery"
	PageCredit         = "credit"
	PageReturn         = "return"
	PageServiceCenters = "service-centers"
	PagePartners       = "partners"
)

// KnownPages lists the static page names
var KnownPages = []string{
	PageAbout, PageTerms, PageContacts, PageHelp, PageDelivery,
	PageCredit, PageReturn, PageServiceCenters, PagePartners,
}

// PageData is editable content for a static storefront page
type PageData struct {
	shared.BaseEntity
	Name    string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Banner  string `gorm:"type:varchar(500)"`
	Image1  string `gorm:"column:image_1;type:varchar(500)"`
	Image2  string `gorm:"column:image_2;type:varchar(500)"`
	Image3  string `gorm:"column:image_3;type:varchar(500)"`
	Header1 string `gorm:"column:header_1;type:varchar(200)"`
	Header2 string `gorm:"column:header_2;type:varchar(200)"`
	Header3 string `gorm:"column:header_3;type:varchar(200)"`
	Text1   string `gorm:"column:text_1;type:text"`
	Text2   string `gorm:"column:text_2;type:text"`
	Text3   string `gorm:"column:text_3;type:text"`
}

// TableName returns the table name for GORM
func (PageData) TableName() string {
	return "page_data"
}

// NewPageData creates page content under a unique name
func NewPageData(name string) (*PageData, error) {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" || len(name) > 100 {
		return nil, shared.NewDomainError("INVALID_NAME", "Page name must be 1-100 characters")
	}
	return &PageData{BaseEntity: shared.NewBaseEntity(), Name: name}, nil
}
