package handler

import (
	"context"

	appcatalog "github.com/amunitsiia/shop/internal/application/catalog"
	appidentity "github.com/amunitsiia/shop/internal/application/identity"
	appinventory "github.com/amunitsiia/shop/internal/application/inventory"
	apppartner "github.com/amunitsiia/shop/internal/application/partner"
	appreview "github.com/amunitsiia/shop/internal/application/review"
	"github.com/amunitsiia/shop/internal/application/storefront"
	apptrade "github.com/amunitsiia/shop/internal/application/trade"
	"github.com/amunitsiia/shop/internal/domain/trade"
	"github.com/amunitsiia/shop/internal/infrastructure/auth"
	"github.com/google/uuid"
)

// Storefront renders the public shop pages
type Storefront interface {
	Navigation(ctx context.Context) (*storefront.Navigation, error)
	Home(ctx context.Context, page int, visitor storefront.Visitor) (*storefront.HomeResponse, error)
	CategoryPage(ctx context.Context, slug string, filter storefront.CategoryFilter, page int, visitor storefront.Visitor) (*storefront.CategoryPageResponse, error)
	SuperCategoryPage(ctx context.Context, id uuid.UUID, page int, visitor storefront.Visitor) (*storefront.SuperCategoryPageResponse, error)
	ProductPage(ctx context.Context, slug string, visitor storefront.Visitor) (*storefront.ProductPageResponse, error)
	Search(ctx context.Context, q string, page int, visitor storefront.Visitor) (*storefront.SearchResponse, error)
	StaticPage(ctx context.Context, name string, visitor storefront.Visitor) (*storefront.StaticPageResponse, error)
}

// Carts serves the cart view and the signed-in buyer's server cart
type Carts interface {
	GetCart(ctx context.Context, cart trade.Cart) (*apptrade.CartResponse, error)
	UpdateItem(ctx context.Context, userID uuid.UUID, req apptrade.UpdateItemRequest) (*apptrade.UpdateItemResponse, error)
}

// Checkout runs both checkout steps
type Checkout interface {
	Prepare(ctx context.Context, customer *apptrade.Customer, cart trade.Cart) (*apptrade.CheckoutResponse, error)
	Submit(ctx context.Context, customer *apptrade.Customer, form apptrade.CheckoutForm, cart trade.Cart) (*apptrade.CheckoutResponse, error)
	Revise(ctx context.Context, form apptrade.CheckoutForm, cart trade.Cart) (*apptrade.CheckoutResponse, error)
}

// Reviews covers product reviews and their likes
type Reviews interface {
	AddReview(ctx context.Context, productSlug string, authorID *uuid.UUID, req appreview.AddReviewRequest) (*appreview.ReviewResponse, error)
	ToggleLike(ctx context.Context, reviewID, authorID uuid.UUID, like bool) (*appreview.LikeResponse, error)
	List(ctx context.Context, filter appreview.ReviewListFilter) ([]appreview.ReviewResponse, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Auth signs users up and in and manages their tokens
type Auth interface {
	Register(ctx context.Context, req appidentity.RegisterRequest, cart trade.Cart) (*appidentity.AuthResult, error)
	Login(ctx context.Context, req appidentity.LoginRequest, cart trade.Cart) (*appidentity.AuthResult, error)
	AdminLogin(ctx context.Context, req appidentity.LoginRequest, cart trade.Cart) (*appidentity.AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (*appidentity.TokenResult, error)
	Logout(ctx context.Context, claims *auth.Claims) error
	ChangePassword(ctx context.Context, userID uuid.UUID, req appidentity.ChangePasswordRequest) error
	Me(ctx context.Context, userID uuid.UUID) (*appidentity.UserInfo, error)
}

// Accounts serves the account page
type Accounts interface {
	GetAccount(ctx context.Context, userID, accountID uuid.UUID) (*appidentity.AccountResponse, error)
	UpdateAccount(ctx context.Context, userID, accountID uuid.UUID, req apptrade.ContactForm) (*appidentity.AccountResponse, error)
}

// CategoryAdmin manages super categories, categories and their features
type CategoryAdmin interface {
	CreateSuperCategory(ctx context.Context, req appcatalog.SuperCategoryRequest) (*appcatalog.SuperCategoryResponse, error)
	GetSuperCategory(ctx context.Context, id uuid.UUID) (*appcatalog.SuperCategoryResponse, error)
	ListSuperCategories(ctx context.Context) ([]appcatalog.SuperCategoryResponse, error)
	UpdateSuperCategory(ctx context.Context, id uuid.UUID, req appcatalog.SuperCategoryRequest) (*appcatalog.SuperCategoryResponse, error)
	DeleteSuperCategory(ctx context.Context, id uuid.UUID) error

	CreateCategory(ctx context.Context, req appcatalog.CategoryRequest) (*appcatalog.CategoryResponse, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*appcatalog.CategoryResponse, error)
	ListCategories(ctx context.Context, filter appcatalog.CategoryListFilter) ([]appcatalog.CategoryResponse, int64, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, req appcatalog.CategoryRequest) (*appcatalog.CategoryResponse, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	AddFeature(ctx context.Context, categoryID uuid.UUID, req appcatalog.FeatureRequest) (*appcatalog.FeatureResponse, error)
	ListFeatures(ctx context.Context, categoryID uuid.UUID) ([]appcatalog.FeatureResponse, error)
	DeleteFeature(ctx context.Context, categoryID, featureID uuid.UUID) error
}

// BrandAdmin manages brands
type BrandAdmin interface {
	Create(ctx context.Context, req appcatalog.BrandRequest) (*appcatalog.BrandResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*appcatalog.BrandResponse, error)
	List(ctx context.Context, filter appcatalog.BrandListFilter) ([]appcatalog.BrandResponse, int64, error)
	Update(ctx context.Context, id uuid.UUID, req appcatalog.BrandRequest) (*appcatalog.BrandResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProductAdmin manages products with their features, suppliers and images
type ProductAdmin interface {
	Create(ctx context.Context, req appcatalog.ProductRequest) (*appcatalog.ProductResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*appcatalog.ProductDetailResponse, error)
	List(ctx context.Context, filter appcatalog.ProductListFilter) ([]appcatalog.ProductResponse, int64, error)
	Update(ctx context.Context, id uuid.UUID, req appcatalog.ProductRequest) (*appcatalog.ProductResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SetSuppliers(ctx context.Context, productID uuid.UUID, req appcatalog.SetSuppliersRequest) error
	SetFeatures(ctx context.Context, productID uuid.UUID, req appcatalog.SetFeaturesRequest) ([]appcatalog.ProductFeatureResponse, error)
	ListFeatures(ctx context.Context, productID uuid.UUID) ([]appcatalog.ProductFeatureResponse, error)
	RequestImageUpload(ctx context.Context, productID uuid.UUID, req appcatalog.UploadURLRequest) (*appcatalog.UploadURLResponse, error)
	RegisterImage(ctx context.Context, productID uuid.UUID, req appcatalog.RegisterImageRequest) (*appcatalog.ImageResponse, error)
	ListImages(ctx context.Context, productID uuid.UUID) ([]appcatalog.ImageResponse, error)
	DeleteImage(ctx context.Context, productID, imageID uuid.UUID) error
}

// PageAdmin manages the informational page contents
type PageAdmin interface {
	Create(ctx context.Context, req appcatalog.PageRequest) (*appcatalog.PageResponse, error)
	GetByName(ctx context.Context, name string) (*appcatalog.PageResponse, error)
	List(ctx context.Context) ([]appcatalog.PageResponse, error)
	Update(ctx context.Context, id uuid.UUID, req appcatalog.PageRequest) (*appcatalog.PageResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// SupplierAdmin manages suppliers
type SupplierAdmin interface {
	Create(ctx context.Context, req apppartner.SupplierRequest) (*apppartner.SupplierResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*apppartner.SupplierResponse, error)
	List(ctx context.Context, filter apppartner.SupplierListFilter) ([]apppartner.SupplierResponse, int64, error)
	Update(ctx context.Context, id uuid.UUID, req apppartner.SupplierRequest) (*apppartner.SupplierResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// BuyerAdmin manages buyers
type BuyerAdmin interface {
	Get(ctx context.Context, id uuid.UUID) (*apppartner.BuyerResponse, error)
	List(ctx context.Context, filter apppartner.BuyerListFilter) ([]apppartner.BuyerResponse, int64, error)
	Update(ctx context.Context, id uuid.UUID, req apppartner.BuyerRequest) (*apppartner.BuyerResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// InventoryAdmin records incomes and reports stock
type InventoryAdmin interface {
	RegisterIncome(ctx context.Context, req appinventory.RegisterIncomeRequest) (*appinventory.IncomeResponse, error)
	UpdateIncome(ctx context.Context, id uuid.UUID, req appinventory.UpdateIncomeRequest) (*appinventory.IncomeResponse, error)
	GetIncome(ctx context.Context, id uuid.UUID) (*appinventory.IncomeResponse, error)
	ListIncomes(ctx context.Context, filter appinventory.IncomeListFilter) ([]appinventory.IncomeResponse, int64, error)
	ListStock(ctx context.Context, filter appinventory.StockListFilter) ([]appinventory.StockResponse, int64, error)
	StockSummary(ctx context.Context) ([]appinventory.ProductStockResponse, error)
	Consume(ctx context.Context, req appinventory.ConsumeRequest) error
}

// OrderAdmin reads orders and sales
type OrderAdmin interface {
	GetOrder(ctx context.Context, id uuid.UUID) (*apptrade.OrderResponse, error)
	ListOrders(ctx context.Context, filter apptrade.OrderListFilter) ([]apptrade.OrderResponse, int64, error)
	GetSale(ctx context.Context, id uuid.UUID) (*apptrade.SaleResponse, error)
	ListSales(ctx context.Context, filter apptrade.SaleListFilter) ([]apptrade.SaleResponse, int64, error)
}
