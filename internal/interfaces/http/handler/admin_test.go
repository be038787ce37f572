package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	appcatalog "github.com/amunitsiia/shop/internal/application/catalog"
	appinventory "github.com/amunitsiia/shop/internal/application/inventory"
	appreview "github.com/amunitsiia/shop/internal/application/review"
	apptrade "github.com/amunitsiia/shop/internal/application/trade"
	"github.com/amunitsiia/shop/internal/domain/shared"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProductEngine(svc *MockProductAdmin) *gin.Engine {
	h := NewProductHandler(svc)
	engine := gin.New()
	g := engine.Group("/admin/products")
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.DELETE("/:id", h.Delete)
	g.PUT("/:id/features", h.SetFeatures)
	g.POST("/:id/images/upload-url", h.RequestImageUpload)
	g.POST("/:id/images", h.RegisterImage)
	g.DELETE("/:id/images/:imageId", h.DeleteImage)
	return engine
}

func TestProductHandler_Create(t *testing.T) {
	categoryID := uuid.New()
	req := appcatalog.ProductRequest{
		Name:       gofakeit.ProductName(),
		CategoryID: categoryID,
	}

	t.Run("created", func(t *testing.T) {
		svc := new(MockProductAdmin)
		svc.On("Create", mock.Anything, mock.MatchedBy(func(r appcatalog.ProductRequest) bool {
			return r.Name == req.Name && r.CategoryID == categoryID
		})).Return(&appcatalog.ProductResponse{ID: uuid.New(), Name: req.Name}, nil)

		w := serve(t, newProductEngine(svc), testRequest{method: http.MethodPost, path: "/admin/products", body: req})

		assert.Equal(t, http.StatusCreated, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("invalid slug", func(t *testing.T) {
		svc := new(MockProductAdmin)
		w := serve(t, newProductEngine(svc), testRequest{
			method: http.MethodPost,
			path:   "/admin/products",
			body:   map[string]any{"name": "Ніж", "category_id": categoryID, "slug": "Not A Slug"},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "ERR_VALIDATION", decodeResponse(t, w).Error.Code)
	})

	t.Run("duplicate slug", func(t *testing.T) {
		svc := new(MockProductAdmin)
		svc.On("Create", mock.Anything, mock.Anything).Return(nil, shared.ErrAlreadyExists)

		w := serve(t, newProductEngine(svc), testRequest{method: http.MethodPost, path: "/admin/products", body: req})

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestProductHandler_List_Meta(t *testing.T) {
	svc := new(MockProductAdmin)
	items := make([]appcatalog.ProductResponse, 2)
	for i := range items {
		items[i] = appcatalog.ProductResponse{ID: uuid.New(), Name: gofakeit.ProductName()}
	}
	svc.On("List", mock.Anything, mock.MatchedBy(func(f appcatalog.ProductListFilter) bool {
		return f.Search == "fenix" && f.Page == 2 && f.PageSize == 2
	})).Return(items, int64(5), nil)

	w := serve(t, newProductEngine(svc), testRequest{
		method: http.MethodGet,
		path:   "/admin/products?search=fenix&page=2&page_size=2",
	})

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, int64(5), resp.Meta.Total)
	assert.Equal(t, 2, resp.Meta.Page)
	assert.Equal(t, 3, resp.Meta.TotalPages)
}

func TestProductHandler_List_DefaultPage(t *testing.T) {
	svc := new(MockProductAdmin)
	svc.On("List", mock.Anything, appcatalog.ProductListFilter{}).Return([]appcatalog.ProductResponse{}, int64(0), nil)

	w := serve(t, newProductEngine(svc), testRequest{method: http.MethodGet, path: "/admin/products"})

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, 1, resp.Meta.Page)
	assert.Equal(t, 20, resp.Meta.PageSize)
}

func TestProductHandler_Get_NotFound(t *testing.T) {
	svc := new(MockProductAdmin)
	id := uuid.New()
	svc.On("Get", mock.Anything, id).Return(nil, shared.ErrNotFound)

	w := serve(t, newProductEngine(svc), testRequest{method: http.MethodGet, path: "/admin/products/" + id.String()})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProductHandler_SetFeatures_CategoryMismatch(t *testing.T) {
	svc := new(MockProductAdmin)
	id := uuid.New()
	featureID := uuid.New()
	svc.On("SetFeatures", mock.Anything, id, mock.Anything).
		Return(nil, shared.NewDomainError("FEATURE_CATEGORY_MISMATCH", "Feature belongs to another category"))

	w := serve(t, newProductEngine(svc), testRequest{
		method: http.MethodPut,
		path:   "/admin/products/" + id.String() + "/features",
		body: map[string]any{"features": []map[string]any{
			{"category_feature_id": featureID, "feature": "LED"},
		}},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "ERR_FEATURE_CATEGORY_MISMATCH", decodeResponse(t, w).Error.Code)
}

func TestProductHandler_Images(t *testing.T) {
	id := uuid.New()

	t.Run("upload url", func(t *testing.T) {
		svc := new(MockProductAdmin)
		req := appcatalog.UploadURLRequest{Filename: "lamp.jpg", ContentType: "image/jpeg"}
		svc.On("RequestImageUpload", mock.Anything, id, req).
			Return(&appcatalog.UploadURLResponse{UploadURL: "https://s3/lamp.jpg", Key: "products/lamp.jpg"}, nil)

		w := serve(t, newProductEngine(svc), testRequest{
			method: http.MethodPost,
			path:   "/admin/products/" + id.String() + "/images/upload-url",
			body:   req,
		})

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("register missing object", func(t *testing.T) {
		svc := new(MockProductAdmin)
		req := appcatalog.RegisterImageRequest{Key: "products/missing.jpg"}
		svc.On("RegisterImage", mock.Anything, id, req).
			Return(nil, shared.NewDomainError("IMAGE_NOT_UPLOADED", "Object is not in storage"))

		w := serve(t, newProductEngine(svc), testRequest{
			method: http.MethodPost,
			path:   "/admin/products/" + id.String() + "/images",
			body:   req,
		})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("delete", func(t *testing.T) {
		svc := new(MockProductAdmin)
		imageID := uuid.New()
		svc.On("DeleteImage", mock.Anything, id, imageID).Return(nil)

		w := serve(t, newProductEngine(svc), testRequest{
			method: http.MethodDelete,
			path:   "/admin/products/" + id.String() + "/images/" + imageID.String(),
		})

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("invalid image id", func(t *testing.T) {
		svc := new(MockProductAdmin)
		w := serve(t, newProductEngine(svc), testRequest{
			method: http.MethodDelete,
			path:   "/admin/products/" + id.String() + "/images/abc",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestProductHandler_UnexpectedError(t *testing.T) {
	svc := new(MockProductAdmin)
	id := uuid.New()
	svc.On("Delete", mock.Anything, id).Return(errors.New("connection reset"))

	w := serve(t, newProductEngine(svc), testRequest{method: http.MethodDelete, path: "/admin/products/" + id.String()})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, "ERR_INTERNAL", resp.Error.Code)
	assert.NotContains(t, resp.Error.Message, "connection reset")
}

func newInventoryEngine(svc *MockInventoryAdmin) *gin.Engine {
	h := NewInventoryHandler(svc)
	engine := gin.New()
	g := engine.Group("/admin")
	g.POST("/incomes", h.RegisterIncome)
	g.PUT("/incomes/:id", h.UpdateIncome)
	g.GET("/incomes", h.ListIncomes)
	g.GET("/stock", h.ListStock)
	g.GET("/stock/summary", h.StockSummary)
	g.POST("/stock/consume", h.Consume)
	return engine
}

func TestInventoryHandler_RegisterIncome(t *testing.T) {
	productID := uuid.New()

	t.Run("created", func(t *testing.T) {
		svc := new(MockInventoryAdmin)
		svc.On("RegisterIncome", mock.Anything, mock.MatchedBy(func(r appinventory.RegisterIncomeRequest) bool {
			return r.ProductID == productID && r.Quantity == 10 && r.Price.Equal(decimal.NewFromInt(250))
		})).Return(&appinventory.IncomeResponse{ID: uuid.New(), Quantity: 10}, nil)

		w := serve(t, newInventoryEngine(svc), testRequest{
			method: http.MethodPost,
			path:   "/admin/incomes",
			body:   map[string]any{"product_id": productID, "income_quantity": 10, "income_price": "250"},
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("quantity must be positive", func(t *testing.T) {
		svc := new(MockInventoryAdmin)
		w := serve(t, newInventoryEngine(svc), testRequest{
			method: http.MethodPost,
			path:   "/admin/incomes",
			body:   map[string]any{"product_id": productID, "income_quantity": -3, "income_price": "1"},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "RegisterIncome")
	})
}

func TestInventoryHandler_Consume(t *testing.T) {
	productID := uuid.New()
	req := appinventory.ConsumeRequest{ProductID: productID, Quantity: 4}

	t.Run("ok", func(t *testing.T) {
		svc := new(MockInventoryAdmin)
		svc.On("Consume", mock.Anything, req).Return(nil)
		w := serve(t, newInventoryEngine(svc), testRequest{method: http.MethodPost, path: "/admin/stock/consume", body: req})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("shortage", func(t *testing.T) {
		svc := new(MockInventoryAdmin)
		svc.On("Consume", mock.Anything, req).Return(shared.ErrInsufficientStock)
		w := serve(t, newInventoryEngine(svc), testRequest{method: http.MethodPost, path: "/admin/stock/consume", body: req})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestInventoryHandler_StockSummary(t *testing.T) {
	svc := new(MockInventoryAdmin)
	svc.On("StockSummary", mock.Anything).Return([]appinventory.ProductStockResponse{
		{ProductID: uuid.New(), Quantity: 7, Lots: 2},
	}, nil)

	w := serve(t, newInventoryEngine(svc), testRequest{method: http.MethodGet, path: "/admin/stock/summary"})

	assert.Equal(t, http.StatusOK, w.Code)
	data, ok := decodeResponse(t, w).Data.([]any)
	require.True(t, ok)
	assert.Len(t, data, 1)
}

func TestOrderHandler(t *testing.T) {
	newEngine := func(orders *MockOrderAdmin, reviews *MockReviews) *gin.Engine {
		h := NewOrderHandler(orders, reviews)
		engine := gin.New()
		g := engine.Group("/admin")
		g.GET("/orders", h.ListOrders)
		g.GET("/orders/:id", h.GetOrder)
		g.GET("/sales", h.ListSales)
		g.GET("/sales/:id", h.GetSale)
		g.GET("/reviews", h.ListReviews)
		g.DELETE("/reviews/:id", h.DeleteReview)
		return engine
	}

	t.Run("list open orders", func(t *testing.T) {
		orders := new(MockOrderAdmin)
		orders.On("ListOrders", mock.Anything, mock.MatchedBy(func(f apptrade.OrderListFilter) bool {
			return f.Complete != nil && !*f.Complete
		})).Return([]apptrade.OrderResponse{{ID: uuid.New()}}, int64(1), nil)

		w := serve(t, newEngine(orders, new(MockReviews)), testRequest{method: http.MethodGet, path: "/admin/orders?complete=false"})

		assert.Equal(t, http.StatusOK, w.Code)
		orders.AssertExpectations(t)
	})

	t.Run("sale not found", func(t *testing.T) {
		orders := new(MockOrderAdmin)
		id := uuid.New()
		orders.On("GetSale", mock.Anything, id).Return(nil, shared.ErrNotFound)

		w := serve(t, newEngine(orders, new(MockReviews)), testRequest{method: http.MethodGet, path: "/admin/sales/" + id.String()})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("list reviews by grade", func(t *testing.T) {
		reviews := new(MockReviews)
		reviews.On("List", mock.Anything, mock.MatchedBy(func(f appreview.ReviewListFilter) bool {
			return f.Grade != nil && *f.Grade == 1
		})).Return([]appreview.ReviewResponse{}, int64(0), nil)

		w := serve(t, newEngine(new(MockOrderAdmin), reviews), testRequest{method: http.MethodGet, path: "/admin/reviews?grade=1"})

		assert.Equal(t, http.StatusOK, w.Code)
		reviews.AssertExpectations(t)
	})

	t.Run("delete review", func(t *testing.T) {
		reviews := new(MockReviews)
		id := uuid.New()
		reviews.On("Delete", mock.Anything, id).Return(nil)

		w := serve(t, newEngine(new(MockOrderAdmin), reviews), testRequest{method: http.MethodDelete, path: "/admin/reviews/" + id.String()})

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestSystemHandler_Health(t *testing.T) {
	newEngine := func(checks map[string]Pinger) *gin.Engine {
		h := NewSystemHandler("shop", "test", checks)
		engine := gin.New()
		engine.GET("/health", h.Health)
		engine.GET("/system/info", h.GetSystemInfo)
		return engine
	}

	t.Run("healthy", func(t *testing.T) {
		engine := newEngine(map[string]Pinger{
			"database": PingerFunc(func(context.Context) error { return nil }),
			"redis":    nil,
		})
		w := serve(t, engine, testRequest{method: http.MethodGet, path: "/health"})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"database":"ok"`)
		assert.NotContains(t, w.Body.String(), "redis")
	})

	t.Run("database down", func(t *testing.T) {
		engine := newEngine(map[string]Pinger{
			"database": PingerFunc(func(context.Context) error { return errors.New("dial tcp: refused") }),
		})
		w := serve(t, engine, testRequest{method: http.MethodGet, path: "/health"})
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "unhealthy")
	})

	t.Run("info", func(t *testing.T) {
		w := serve(t, newEngine(nil), testRequest{method: http.MethodGet, path: "/system/info"})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"version":"test"`)
	})
}
