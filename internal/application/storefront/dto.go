package storefront

import (
	appcatalog "github.com/amunitsiia/shop/internal/application/catalog"
	appreview "github.com/amunitsiia/shop/internal/application/review"
	"github.com/amunitsiia/shop/internal/domain/trade"
	"github.com/google/uuid"
)

// Page titles
const (
	HomeTitle            = "АМУНІЦІЯ ДЛЯ СВОЇХ"
	SearchTitle          = "Пошук"
	GeneralCategoryTitle = "Загальна категорія"
)

// Visitor describes who is browsing and what their cookies carry
type Visitor struct {
	UserID     *uuid.UUID
	CartCookie string
	// RestoreCart is set by the one-shot "flag" cookie after sign-in
	RestoreCart bool
}

// Navigation is the menu shown on every page
type Navigation struct {
	SuperCategories []appcatalog.SuperCategoryResponse `json:"super_categories"`
	Categories      []appcatalog.CategoryResponse      `json:"categories"`
}

// Layout is the data shared by every storefront page
type Layout struct {
	Title      string     `json:"title"`
	CartItems  int        `json:"cart_items"`
	Navigation Navigation `json:"navigation"`
}

// PageMeta describes one page of a list
type PageMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

// ProductCard is a product tile with its first image
type ProductCard struct {
	appcatalog.ProductResponse
	ImageURL string `json:"image_url,omitempty"`
}

// HomeResponse is the shop home page
type HomeResponse struct {
	Layout
	Products  []ProductCard `json:"products"`
	Meta      PageMeta      `json:"meta"`
	PageRange []string      `json:"page_range,omitempty"`
	CartJSON  trade.Cart    `json:"cart_json"`
}

// CategoryFilter narrows a category listing by brand and price
type CategoryFilter struct {
	Brands []string `form:"brand" json:"brands"`
	Low    *int64   `form:"low" json:"low" binding:"omitempty,min=0"`
	High   *int64   `form:"high" json:"high" binding:"omitempty,min=0"`
}

// CategoryPageResponse is a category listing
type CategoryPageResponse struct {
	Layout
	Category   appcatalog.CategoryResponse   `json:"category"`
	Categories []appcatalog.CategoryResponse `json:"categories"`
	Brands     []string                      `json:"brands"`
	Products   []ProductCard                 `json:"products"`
	Meta       PageMeta                      `json:"meta"`
	PageRange  []string                      `json:"page_range,omitempty"`
}

// SuperCategoryPageResponse lists the categories of a super category
type SuperCategoryPageResponse struct {
	Layout
	Categories []appcatalog.CategoryResponse `json:"categories"`
	Meta       PageMeta                      `json:"meta"`
	PageRange  []string                      `json:"page_range,omitempty"`
}

// ProductPageResponse is the product detail page
type ProductPageResponse struct {
	Layout
	Product       appcatalog.ProductResponse          `json:"product"`
	Features      []appcatalog.ProductFeatureResponse `json:"features"`
	Images        []appcatalog.ImageResponse          `json:"images"`
	Reviews       []appreview.ReviewResponse          `json:"reviews"`
	Evaluation    string                              `json:"evaluation"`
	SuperCategory *appcatalog.SuperCategoryResponse   `json:"super_category,omitempty"`
}

// SearchResponse is the product search result page
type SearchResponse struct {
	Layout
	Query     string        `json:"query"`
	Products  []ProductCard `json:"products"`
	Meta      PageMeta      `json:"meta"`
	PageRange []string      `json:"page_range,omitempty"`
}

// StaticPageResponse is an informational page
type StaticPageResponse struct {
	Layout
	Page appcatalog.PageResponse `json:"page"`
}
