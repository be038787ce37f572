package catalog

import (
	"time"

	"github.com/amunitsiia/shop/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SuperCategoryRequest creates or updates a super category
type SuperCategoryRequest struct {
	Name string `json:"name" binding:"required,max=50"`
	Icon string `json:"icon" binding:"max=255"`
}

// SuperCategoryResponse represents a super category
type SuperCategoryResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoryRequest creates or updates a category. An empty slug is derived from the name.
type CategoryRequest struct {
	Name            string    `json:"name" binding:"required,max=100"`
	Slug            string    `json:"slug" binding:"omitempty,slug"`
	SuperCategoryID uuid.UUID `json:"super_category_id" binding:"required"`
	Icon            string    `json:"icon" binding:"max=255"`
}

// CategoryResponse represents a category
type CategoryResponse struct {
	ID              uuid.UUID              `json:"id"`
	Name            string                 `json:"name"`
	Slug            string                 `json:"slug"`
	SuperCategoryID uuid.UUID              `json:"super_category_id"`
	SuperCategory   *SuperCategoryResponse `json:"super_category,omitempty"`
	Icon            string                 `json:"icon,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

// CategoryListFilter filters the category list
type CategoryListFilter struct {
	Search          string     `form:"search"`
	SuperCategoryID *uuid.UUID `form:"super_category_id"`
	Page            int        `form:"page" binding:"omitempty,min=1"`
	PageSize        int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy         string     `form:"order_by"`
	OrderDir        string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// FeatureRequest adds a feature definition to a category
type FeatureRequest struct {
	FeatureName string `json:"feature_name" binding:"required,max=100"`
}

// FeatureResponse represents a category feature definition
type FeatureResponse struct {
	ID          uuid.UUID `json:"id"`
	CategoryID  uuid.UUID `json:"category_id"`
	FeatureName string    `json:"feature_name"`
}

// BrandRequest creates or updates a brand
type BrandRequest struct {
	Name string `json:"name" binding:"required,max=100"`
	Slug string `json:"slug" binding:"omitempty,slug"`
}

// BrandResponse represents a brand
type BrandResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BrandListFilter filters the brand list
type BrandListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ProductRequest creates or updates a product
type ProductRequest struct {
	Name        string          `json:"name" binding:"required,max=150"`
	Model       string          `json:"model" binding:"max=50"`
	Slug        string          `json:"slug" binding:"omitempty,slug"`
	BrandID     *uuid.UUID      `json:"brand_id"`
	Description string          `json:"description"`
	CategoryID  uuid.UUID       `json:"category_id" binding:"required"`
	VendorCode  string          `json:"vendor_code" binding:"max=50"`
	Price       decimal.Decimal `json:"price"`
	Notes       string          `json:"notes" binding:"max=200"`
	SupplierIDs []uuid.UUID     `json:"supplier_ids"`
}

func (r ProductRequest) details() catalog.ProductDetails {
	return catalog.ProductDetails{
		Name:        r.Name,
		Model:       r.Model,
		Slug:        r.Slug,
		BrandID:     r.BrandID,
		Description: r.Description,
		CategoryID:  r.CategoryID,
		VendorCode:  r.VendorCode,
		Price:       r.Price,
		Notes:       r.Notes,
	}
}

// ProductListFilter filters the back-office product list.
// Search matches name, model and vendor code.
type ProductListFilter struct {
	Search     string     `form:"search"`
	CategoryID *uuid.UUID `form:"category_id"`
	BrandID    *uuid.UUID `form:"brand_id"`
	Sold       *bool      `form:"sold"`
	Page       int        `form:"page" binding:"omitempty,min=1"`
	PageSize   int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy    string     `form:"order_by"`
	OrderDir   string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ProductResponse represents a product
type ProductResponse struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	DisplayName  string          `json:"display_name"`
	Model        string          `json:"model,omitempty"`
	Slug         string          `json:"slug"`
	BrandID      *uuid.UUID      `json:"brand_id,omitempty"`
	Description  string          `json:"description,omitempty"`
	CategoryID   uuid.UUID       `json:"category_id"`
	VendorCode   string          `json:"vendor_code,omitempty"`
	Price        decimal.Decimal `json:"price"`
	Sold         bool            `json:"sold"`
	Notes        string          `json:"notes,omitempty"`
	LastAccessAt *time.Time      `json:"last_access_at,omitempty"`
	AccessNumber int64           `json:"access_number"`
	SupplierIDs  []uuid.UUID     `json:"supplier_ids,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProductDetailResponse is a product with its features and images
type ProductDetailResponse struct {
	ProductResponse
	Features []ProductFeatureResponse `json:"features"`
	Images   []ImageResponse          `json:"images"`
}

// SetSuppliersRequest replaces the suppliers of a product
type SetSuppliersRequest struct {
	SupplierIDs []uuid.UUID `json:"supplier_ids"`
}

// FeatureValue is one product characteristic
type FeatureValue struct {
	CategoryFeatureID uuid.UUID `json:"category_feature_id" binding:"required"`
	Feature           string    `json:"feature" binding:"required"`
}

// SetFeaturesRequest replaces the characteristics of a product
type SetFeaturesRequest struct {
	Features []FeatureValue `json:"features" binding:"dive"`
}

// ProductFeatureResponse is a named characteristic value
type ProductFeatureResponse struct {
	ID                uuid.UUID `json:"id"`
	CategoryFeatureID uuid.UUID `json:"category_feature_id"`
	FeatureName       string    `json:"feature_name"`
	Feature           string    `json:"feature"`
}

// UploadURLRequest asks for a presigned image upload
type UploadURLRequest struct {
	Filename    string `json:"filename" binding:"required,max=200"`
	ContentType string `json:"content_type" binding:"required"`
}

// UploadURLResponse carries the presigned URL and the key to register afterwards
type UploadURLResponse struct {
	UploadURL string    `json:"upload_url"`
	Key       string    `json:"key"`
	ExpiresAt time.Time `json:"expires_at"`
}

// RegisterImageRequest attaches an uploaded object to a product
type RegisterImageRequest struct {
	Key string `json:"key" binding:"required,max=500"`
}

// ImageResponse represents a product image
type ImageResponse struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	Key       string    `json:"key"`
	URL       string    `json:"url"`
}

// PageRequest creates or updates static page content
type PageRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Banner  string `json:"banner" binding:"max=500"`
	Image1  string `json:"image_1" binding:"max=500"`
	Image2  string `json:"image_2" binding:"max=500"`
	Image3  string `json:"image_3" binding:"max=500"`
	Header1 string `json:"header_1" binding:"max=200"`
	Header2 string `json:"header_2" binding:"max=200"`
	Header3 string `json:"header_3" binding:"max=200"`
	Text1   string `json:"text_1"`
	Text2   string `json:"text_2"`
	Text3   string `json:"text_3"`
}

func (r PageRequest) apply(p *catalog.PageData) {
	p.Banner = r.Banner
	p.Image1, p.Image2, p.Image3 = r.Image1, r.Image2, r.Image3
	p.Header1, p.Header2, p.Header3 = r.Header1, r.Header2, r.Header3
	p.Text1, p.Text2, p.Text3 = r.Text1, r.Text2, r.Text3
	p.Touch()
}

// PageResponse represents static page content
type PageResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Banner  string    `json:"banner,omitempty"`
	Image1  string    `json:"image_1,omitempty"`
	Image2  string    `json:"image_2,omitempty"`
	Image3  string    `json:"image_3,omitempty"`
	Header1 string    `json:"header_1,omitempty"`
	Header2 string    `json:"header_2,omitempty"`
	Header3 string    `json:"header_3,omitempty"`
	Text1   string    `json:"text_1,omitempty"`
	Text2   string    `json:"text_2,omitempty"`
	Text3   string    `json:"text_3,omitempty"`
}

// ToSuperCategoryResponse converts a domain super category to a response
func ToSuperCategoryResponse(sc *catalog.SuperCategory) SuperCategoryResponse {
	return SuperCategoryResponse{
		ID:        sc.ID,
		Name:      sc.Name,
		Icon:      sc.Icon,
		CreatedAt: sc.CreatedAt,
		UpdatedAt: sc.UpdatedAt,
	}
}

// ToCategoryResponse converts a domain category to a response
func ToCategoryResponse(c *catalog.Category) CategoryResponse {
	resp := CategoryResponse{
		ID:              c.ID,
		Name:            c.Name,
		Slug:            c.Slug,
		SuperCategoryID: c.SuperCategoryID,
		Icon:            c.Icon,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
	if c.SuperCategory != nil {
		sc := ToSuperCategoryResponse(c.SuperCategory)
		resp.SuperCategory = &sc
	}
	return resp
}

// ToFeatureResponse converts a feature definition to a response
func ToFeatureResponse(f *catalog.CategoryFeature) FeatureResponse {
	return FeatureResponse{ID: f.ID, CategoryID: f.CategoryID, FeatureName: f.FeatureName}
}

// ToBrandResponse converts a domain brand to a response
func ToBrandResponse(b *catalog.Brand) BrandResponse {
	return BrandResponse{ID: b.ID, Name: b.Name, Slug: b.Slug, CreatedAt: b.CreatedAt, UpdatedAt: b.UpdatedAt}
}

// ToProductResponse converts a domain product to a response
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		DisplayName:  p.DisplayName(),
		Model:        p.Model,
		Slug:         p.Slug,
		BrandID:      p.BrandID,
		Description:  p.Description,
		CategoryID:   p.CategoryID,
		VendorCode:   p.VendorCode,
		Price:        p.Price,
		Sold:         p.Sold,
		Notes:        p.Notes,
		LastAccessAt: p.LastAccessAt,
		AccessNumber: p.AccessNumber,
		SupplierIDs:  p.SupplierIDs,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// ToProductFeatureResponse converts a feature value to a response
func ToProductFeatureResponse(f *catalog.ProductFeature) ProductFeatureResponse {
	return ProductFeatureResponse{
		ID:                f.ID,
		CategoryFeatureID: f.CategoryFeatureID,
		FeatureName:       f.FeatureName,
		Feature:           f.Feature,
	}
}

// ToPageResponse converts page content to a response
func ToPageResponse(p *catalog.PageData) PageResponse {
	return PageResponse{
		ID:      p.ID,
		Name:    p.Name,
		Banner:  p.Banner,
		Image1:  p.Image1,
		Image2:  p.Image2,
		Image3:  p.Image3,
		Header1: p.Header1,
		Header2: p.Header2,
		Header3: p.Header3,
		Text1:   p.Text1,
		Text2:   p.Text2,
		Text3:   p.Text3,
	}
}
