package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	appcatalog "github.com/amunitsiia/shop/internal/application/catalog"
	appidentity "github.com/amunitsiia/shop/internal/application/identity"
	appinventory "github.com/amunitsiia/shop/internal/application/inventory"
	appreview "github.com/amunitsiia/shop/internal/application/review"
	"github.com/amunitsiia/shop/internal/application/storefront"
	apptrade "github.com/amunitsiia/shop/internal/application/trade"
	"github.com/amunitsiia/shop/internal/domain/trade"
	"github.com/amunitsiia/shop/internal/infrastructure/auth"
	"github.com/amunitsiia/shop/internal/infrastructure/config"
	"github.com/amunitsiia/shop/internal/interfaces/http/dto"
	"github.com/amunitsiia/shop/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
}

func testCookies() CartCookies {
	return NewCartCookies(
		config.CookieConfig{Path: "/", SameSite: "lax"},
		config.ShopConfig{CartCookie: "cart", FlagCookie: "flag"},
	)
}

// asUser injects claims the way the JWT middleware does
func asUser(id uuid.UUID, staff bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.JWTClaimsKey, &auth.Claims{
			UserID:    id.String(),
			Username:  "buyer",
			Email:     "buyer@example.com",
			IsStaff:   staff,
			TokenType: auth.TokenTypeAccess,
		})
		c.Next()
	}
}

type testRequest struct {
	method  string
	path    string
	body    any
	cookies map[string]string
}

func serve(t *testing.T, engine *gin.Engine, tr testRequest) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	switch b := tr.body.(type) {
	case nil:
	case string:
		body.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&body).Encode(b))
	}
	req := httptest.NewRequest(tr.method, tr.path, &body)
	req.Header.Set("Content-Type", "application/json")
	for name, value := range tr.cookies {
		req.AddCookie(&http.Cookie{Name: name, Value: url.QueryEscape(value)})
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func responseCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// MockStorefront is a mock implementation of Storefront
type MockStorefront struct {
	mock.Mock
}

func (m *MockStorefront) Navigation(ctx context.Context) (*storefront.Navigation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storefront.Navigation), args.Error(1)
}

func (m *MockStorefront) Home(ctx context.Context, page int, visitor storefront.Visitor) (*storefront.HomeResponse, error) {
	args := m.Called(ctx, page, visitor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storefront.HomeResponse), args.Error(1)
}

func (m *MockStorefront) CategoryPage(ctx context.Context, slug string, filter storefront.CategoryFilter, page int, visitor storefront.Visitor) (*storefront.CategoryPageResponse, error) {
	args := m.Called(ctx, slug, filter, page, visitor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storefront.CategoryPageResponse), args.Error(1)
}

func (m *MockStorefront) SuperCategoryPage(ctx context.Context, id uuid.UUID, page int, visitor storefront.Visitor) (*storefront.SuperCategoryPageResponse, error) {
	args := m.Called(ctx, id, page, visitor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storefront.SuperCategoryPageResponse), args.Error(1)
}

func (m *MockStorefront) ProductPage(ctx context.Context, slug string, visitor storefront.Visitor) (*storefront.ProductPageResponse, error) {
	args := m.Called(ctx, slug, visitor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storefront.ProductPageResponse), args.Error(1)
}

func (m *MockStorefront) Search(ctx context.Context, q string, page int, visitor storefront.Visitor) (*storefront.SearchResponse, error) {
	args := m.Called(ctx, q, page, visitor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storefront.SearchResponse), args.Error(1)
}

func (m *MockStorefront) StaticPage(ctx context.Context, name string, visitor storefront.Visitor) (*storefront.StaticPageResponse, error) {
	args := m.Called(ctx, name, visitor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storefront.StaticPageResponse), args.Error(1)
}

// MockCarts is a mock implementation of Carts
type MockCarts struct {
	mock.Mock
}

func (m *MockCarts) GetCart(ctx context.Context, cart trade.Cart) (*apptrade.CartResponse, error) {
	args := m.Called(ctx, cart)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*apptrade.CartResponse), args.Error(1)
}

func (m *MockCarts) UpdateItem(ctx context.Context, userID uuid.UUID, req apptrade.UpdateItemRequest) (*apptrade.UpdateItemResponse, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*apptrade.UpdateItemResponse), args.Error(1)
}

// MockCheckout is a mock implementation of Checkout
type MockCheckout struct {
	mock.Mock
}

func (m *MockCheckout) Prepare(ctx context.Context, customer *apptrade.Customer, cart trade.Cart) (*apptrade.CheckoutResponse, error) {
	args := m.Called(ctx, customer, cart)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*apptrade.CheckoutResponse), args.Error(1)
}

func (m *MockCheckout) Revise(ctx context.Context, form apptrade.CheckoutForm, cart trade.Cart) (*apptrade.CheckoutResponse, error) {
	args := m.Called(ctx, form, cart)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*apptrade.CheckoutResponse), args.Error(1)
}

func (m *MockCheckout) Submit(ctx context.Context, customer *apptrade.Customer, form apptrade.CheckoutForm, cart trade.Cart) (*apptrade.CheckoutResponse, error) {
	args := m.Called(ctx, customer, form, cart)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*apptrade.CheckoutResponse), args.Error(1)
}

// MockReviews is a mock implementation of Reviews
type MockReviews struct {
	mock.Mock
}

func (m *MockReviews) AddReview(ctx context.Context, productSlug string, authorID *uuid.UUID, req appreview.AddReviewRequest) (*appreview.ReviewResponse, error) {
	args := m.Called(ctx, productSlug, authorID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appreview.ReviewResponse), args.Error(1)
}

func (m *MockReviews) ToggleLike(ctx context.Context, reviewID, authorID uuid.UUID, like bool) (*appreview.LikeResponse, error) {
	args := m.Called(ctx, reviewID, authorID, like)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appreview.LikeResponse), args.Error(1)
}

func (m *MockReviews) List(ctx context.Context, filter appreview.ReviewListFilter) ([]appreview.ReviewResponse, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]appreview.ReviewResponse), args.Get(1).(int64), args.Error(2)
}

func (m *MockReviews) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAuth is a mock implementation of Auth
type MockAuth struct {
	mock.Mock
}

func (m *MockAuth) Register(ctx context.Context, req appidentity.RegisterRequest, cart trade.Cart) (*appidentity.AuthResult, error) {
	args := m.Called(ctx, req, cart)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appidentity.AuthResult), args.Error(1)
}

func (m *MockAuth) Login(ctx context.Context, req appidentity.LoginRequest, cart trade.Cart) (*appidentity.AuthResult, error) {
	args := m.Called(ctx, req, cart)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appidentity.AuthResult), args.Error(1)
}

func (m *MockAuth) AdminLogin(ctx context.Context, req appidentity.LoginRequest, cart trade.Cart) (*appidentity.AuthResult, error) {
	args := m.Called(ctx, req, cart)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appidentity.AuthResult), args.Error(1)
}

func (m *MockAuth) Refresh(ctx context.Context, refreshToken string) (*appidentity.TokenResult, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appidentity.TokenResult), args.Error(1)
}

func (m *MockAuth) Logout(ctx context.Context, claims *auth.Claims) error {
	args := m.Called(ctx, claims)
	return args.Error(0)
}

func (m *MockAuth) ChangePassword(ctx context.Context, userID uuid.UUID, req appidentity.ChangePasswordRequest) error {
	args := m.Called(ctx, userID, req)
	return args.Error(0)
}

func (m *MockAuth) Me(ctx context.Context, userID uuid.UUID) (*appidentity.UserInfo, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appidentity.UserInfo), args.Error(1)
}

// MockAccounts is a mock implementation of Accounts
type MockAccounts struct {
	mock.Mock
}

func (m *MockAccounts) GetAccount(ctx context.Context, userID, accountID uuid.UUID) (*appidentity.AccountResponse, error) {
	args := m.Called(ctx, userID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appidentity.AccountResponse), args.Error(1)
}

func (m *MockAccounts) UpdateAccount(ctx context.Context, userID, accountID uuid.UUID, req apptrade.ContactForm) (*appidentity.AccountResponse, error) {
	args := m.Called(ctx, userID, accountID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appidentity.AccountResponse), args.Error(1)
}

// MockProductAdmin is a mock implementation of ProductAdmin
type MockProductAdmin struct {
	mock.Mock
}

func (m *MockProductAdmin) Create(ctx context.Context, req appcatalog.ProductRequest) (*appcatalog.ProductResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appcatalog.ProductResponse), args.Error(1)
}

func (m *MockProductAdmin) Get(ctx context.Context, id uuid.UUID) (*appcatalog.ProductDetailResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appcatalog.ProductDetailResponse), args.Error(1)
}

func (m *MockProductAdmin) List(ctx context.Context, filter appcatalog.ProductListFilter) ([]appcatalog.ProductResponse, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]appcatalog.ProductResponse), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductAdmin) Update(ctx context.Context, id uuid.UUID, req appcatalog.ProductRequest) (*appcatalog.ProductResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appcatalog.ProductResponse), args.Error(1)
}

func (m *MockProductAdmin) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductAdmin) SetSuppliers(ctx context.Context, productID uuid.UUID, req appcatalog.SetSuppliersRequest) error {
	args := m.Called(ctx, productID, req)
	return args.Error(0)
}

func (m *MockProductAdmin) SetFeatures(ctx context.Context, productID uuid.UUID, req appcatalog.SetFeaturesRequest) ([]appcatalog.ProductFeatureResponse, error) {
	args := m.Called(ctx, productID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]appcatalog.ProductFeatureResponse), args.Error(1)
}

func (m *MockProductAdmin) ListFeatures(ctx context.Context, productID uuid.UUID) ([]appcatalog.ProductFeatureResponse, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]appcatalog.ProductFeatureResponse), args.Error(1)
}

func (m *MockProductAdmin) RequestImageUpload(ctx context.Context, productID uuid.UUID, req appcatalog.UploadURLRequest) (*appcatalog.UploadURLResponse, error) {
	args := m.Called(ctx, productID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appcatalog.UploadURLResponse), args.Error(1)
}

func (m *MockProductAdmin) RegisterImage(ctx context.Context, productID uuid.UUID, req appcatalog.RegisterImageRequest) (*appcatalog.ImageResponse, error) {
	args := m.Called(ctx, productID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appcatalog.ImageResponse), args.Error(1)
}

func (m *MockProductAdmin) ListImages(ctx context.Context, productID uuid.UUID) ([]appcatalog.ImageResponse, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]appcatalog.ImageResponse), args.Error(1)
}

func (m *MockProductAdmin) DeleteImage(ctx context.Context, productID, imageID uuid.UUID) error {
	args := m.Called(ctx, productID, imageID)
	return args.Error(0)
}

// MockInventoryAdmin is a mock implementation of InventoryAdmin
type MockInventoryAdmin struct {
	mock.Mock
}

func (m *MockInventoryAdmin) RegisterIncome(ctx context.Context, req appinventory.RegisterIncomeRequest) (*appinventory.IncomeResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appinventory.IncomeResponse), args.Error(1)
}

func (m *MockInventoryAdmin) UpdateIncome(ctx context.Context, id uuid.UUID, req appinventory.UpdateIncomeRequest) (*appinventory.IncomeResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appinventory.IncomeResponse), args.Error(1)
}

func (m *MockInventoryAdmin) GetIncome(ctx context.Context, id uuid.UUID) (*appinventory.IncomeResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appinventory.IncomeResponse), args.Error(1)
}

func (m *MockInventoryAdmin) ListIncomes(ctx context.Context, filter appinventory.IncomeListFilter) ([]appinventory.IncomeResponse, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]appinventory.IncomeResponse), args.Get(1).(int64), args.Error(2)
}

func (m *MockInventoryAdmin) ListStock(ctx context.Context, filter appinventory.StockListFilter) ([]appinventory.StockResponse, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]appinventory.StockResponse), args.Get(1).(int64), args.Error(2)
}

func (m *MockInventoryAdmin) StockSummary(ctx context.Context) ([]appinventory.ProductStockResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]appinventory.ProductStockResponse), args.Error(1)
}

func (m *MockInventoryAdmin) Consume(ctx context.Context, req appinventory.ConsumeRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

// MockOrderAdmin is a mock implementation of OrderAdmin
type MockOrderAdmin struct {
	mock.Mock
}

func (m *MockOrderAdmin) GetOrder(ctx context.Context, id uuid.UUID) (*apptrade.OrderResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*apptrade.OrderResponse), args.Error(1)
}

func (m *MockOrderAdmin) ListOrders(ctx context.Context, filter apptrade.OrderListFilter) ([]apptrade.OrderResponse, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]apptrade.OrderResponse), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderAdmin) GetSale(ctx context.Context, id uuid.UUID) (*apptrade.SaleResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*apptrade.SaleResponse), args.Error(1)
}

func (m *MockOrderAdmin) ListSales(ctx context.Context, filter apptrade.SaleListFilter) ([]apptrade.SaleResponse, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]apptrade.SaleResponse), args.Get(1).(int64), args.Error(2)
}
