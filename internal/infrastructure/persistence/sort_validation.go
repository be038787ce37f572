package persistence

import (
	"errors"
	"strings"

	"github.com/amunitsiia/shop/internal/domain/shared"
	"gorm.io/gorm"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	if strings.ToUpper(strings.TrimSpace(orderDir)) == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is empty or not in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" || !allowedFields[trimmed] {
		return defaultField
	}
	return trimmed
}

// ProductSortFields contains allowed sort fields for products
var ProductSortFields = map[string]bool{
	"created_at":     true,
	"name":           true,
	"price":          true,
	"access_number":  true,
	"last_access_at": true,
	"vendor_code":    true,
}

// CatalogSortFields contains allowed sort fields for categories and brands
var CatalogSortFields = map[string]bool{
	"created_at": true,
	"name":       true,
	"slug":       true,
}

// SupplierSortFields contains allowed sort fields for suppliers
var SupplierSortFields = map[string]bool{
	"created_at": true,
	"name":       true,
	"egrpou":     true,
}

// BuyerSortFields contains allowed sort fields for buyers
var BuyerSortFields = map[string]bool{
	"created_at": true,
	"name":       true,
	"email":      true,
}

// IncomeSortFields contains allowed sort fields for incomes
var IncomeSortFields = map[string]bool{
	"created_at":      true,
	"income_date":     true,
	"income_quantity": true,
	"income_price":    true,
}

// StockSortFields contains allowed sort fields for stock lots
var StockSortFields = map[string]bool{
	"created_at": true,
	"quantity":   true,
	"price":      true,
}

// OrderSortFields contains allowed sort fields for orders
var OrderSortFields = map[string]bool{
	"created_at": true,
	"ordered_at": true,
	"complete":   true,
}

// SaleSortFields contains allowed sort fields for sales
var SaleSortFields = map[string]bool{
	"created_at": true,
	"sale_date":  true,
	"region":     true,
	"city":       true,
}

// ReviewSortFields contains allowed sort fields for reviews
var ReviewSortFields = map[string]bool{
	"created_at":  true,
	"review_date": true,
	"grade":       true,
	"like_num":    true,
}

// orderAndPage applies whitelisted ordering and pagination from the filter
func orderAndPage(query *gorm.DB, filter shared.Filter, allowed map[string]bool, defaultField string) *gorm.DB {
	field := ValidateSortField(filter.OrderBy, allowed, defaultField)
	query = query.Order(field + " " + ValidateSortOrder(filter.OrderDir))
	if filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}
	return query
}

// likePattern builds a case-insensitive LIKE pattern, escaping wildcards
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + strings.ToLower(r.Replace(s)) + "%"
}

// notFound maps gorm's missing-record error to the domain sentinel
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shared.ErrNotFound
	}
	return err
}

// ilike returns a portable case-insensitive LIKE condition for column
func ilike(column string) string {
	return "LOWER(" + column + `) LIKE ? ESCAPE '\'`
}
