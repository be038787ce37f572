package trade

import (
	"context"
	"testing"

	"github.com/amunitsiia/shop/internal/domain/catalog"
	"github.com/amunitsiia/shop/internal/domain/inventory"
	"github.com/amunitsiia/shop/internal/domain/partner"
	"github.com/amunitsiia/shop/internal/domain/shared"
	"github.com/amunitsiia/shop/internal/domain/trade"
	"github.com/amunitsiia/shop/internal/testutil/mockrepo"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type cdnStub struct{}

func (cdnStub) PublicURL(key string) string { return "https://cdn.test/" + key }

type fixture struct {
	products *mockrepo.ProductRepository
	images   *mockrepo.ProductImageRepository
	orders   *mockrepo.OrderRepository
	sales    *mockrepo.SaleRepository
	buyers   *mockrepo.BuyerRepository
	stock    *mockrepo.StockRepository
	carts    *CartService
	checkout *CheckoutService
	history  *OrderService
}

func newFixture() *fixture {
	f := &fixture{
		products: new(mockrepo.ProductRepository),
		images:   new(mockrepo.ProductImageRepository),
		orders:   new(mockrepo.OrderRepository),
		sales:    new(mockrepo.SaleRepository),
		buyers:   new(mockrepo.BuyerRepository),
		stock:    new(mockrepo.StockRepository),
	}
	scope := &NoOpTransactionScope{
		Orders:   f.orders,
		Sales:    f.sales,
		Stock:    f.stock,
		Products: f.products,
		Buyers:   f.buyers,
	}
	log := zap.NewNop()
	f.carts = NewCartService(scope, f.products, f.images, f.orders, f.buyers, cdnStub{}, log)
	f.checkout = NewCheckoutService(scope, f.carts, f.stock, f.buyers, log)
	f.history = NewOrderService(f.orders, f.sales, f.buyers, f.products)
	return f
}

func product(price int64, sold bool) catalog.Product {
	return catalog.Product{
		BaseEntity: shared.NewBaseEntity(),
		Name:       gofakeit.ProductName(),
		Slug:       gofakeit.UUID(),
		Price:      decimal.NewFromInt(price),
		Sold:       sold,
	}
}

func cartOf(entries map[uuid.UUID]int) trade.Cart {
	c := trade.Cart{}
	for id, q := range entries {
		c[id.String()] = trade.CartEntry{Quantity: q}
	}
	return c
}

func customer() Customer {
	return Customer{UserID: uuid.New(), Username: gofakeit.Username(), Email: gofakeit.Email()}
}

func contactForm() CheckoutForm {
	return CheckoutForm{
		ContactForm: ContactForm{
			Name:    gofakeit.FirstName(),
			Email:   gofakeit.Email(),
			Tel:     "+380501234567",
			Address: "вул. Шевченка 1",
		},
		Region:     "Київська",
		City:       "Київ",
		Department: "12",
	}
}

func TestCartService_GetCart(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	p := product(150, false)
	unknown := uuid.New()
	cart := cartOf(map[uuid.UUID]int{p.ID: 2, unknown: 1})

	f.products.On("FindByIDs", ctx, mock.Anything).Return([]catalog.Product{p}, nil)
	f.images.On("FirstImages", ctx, mock.Anything).Return(map[uuid.UUID]string{p.ID: "product_x/a.jpg"}, nil)

	resp, err := f.carts.GetCart(ctx, cart)

	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "https://cdn.test/product_x/a.jpg", resp.Items[0].Product.Image)
	assert.True(t, decimal.NewFromInt(300).Equal(resp.Items[0].Total))
	assert.Equal(t, 2, resp.Order.ItemCount)
	assert.True(t, decimal.NewFromInt(300).Equal(resp.Order.Total))
}

func TestCartService_GetCart_Empty(t *testing.T) {
	f := newFixture()

	resp, err := f.carts.GetCart(context.Background(), trade.Cart{})

	require.NoError(t, err)
	assert.Empty(t, resp.Items)
	assert.Zero(t, resp.Order.ItemCount)
	f.products.AssertNotCalled(t, "FindByIDs", mock.Anything, mock.Anything)
}

func TestCartService_UpdateItem(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	buyer := partner.NewBuyerForUser(userID, "ivan", "ivan@example.com")

	t.Run("sold out product is rejected", func(t *testing.T) {
		f := newFixture()
		p := product(10, true)
		f.products.On("FindByID", ctx, p.ID).Return(&p, nil)

		_, err := f.carts.UpdateItem(ctx, userID, UpdateItemRequest{ProductID: p.ID, Action: "add"})

		assert.ErrorIs(t, err, ErrProductSoldOut)
		f.orders.AssertNotCalled(t, "SaveItem", mock.Anything, mock.Anything)
	})

	t.Run("invalid action", func(t *testing.T) {
		f := newFixture()
		_, err := f.carts.UpdateItem(ctx, userID, UpdateItemRequest{ProductID: uuid.New(), Action: "drop"})
		assert.Error(t, err)
	})

	t.Run("add opens the order and the line", func(t *testing.T) {
		f := newFixture()
		p := product(10, false)
		f.products.On("FindByID", ctx, p.ID).Return(&p, nil)
		f.buyers.On("FindByUserID", ctx, userID).Return(buyer, nil)
		f.orders.On("FindPendingByBuyer", ctx, buyer.ID).Return(nil, shared.ErrNotFound)
		f.orders.On("Save", ctx, mock.AnythingOfType("*trade.Order")).Return(nil)
		f.orders.On("FindItem", ctx, mock.Anything, p.ID).Return(nil, shared.ErrNotFound)
		f.orders.On("SaveItem", ctx, mock.MatchedBy(func(it *trade.OrderItem) bool {
			return it.ProductID == p.ID && it.Quantity == 1
		})).Return(nil)

		resp, err := f.carts.UpdateItem(ctx, userID, UpdateItemRequest{ProductID: p.ID, Action: "add"})

		require.NoError(t, err)
		assert.Equal(t, trade.MsgItemAdded, resp.Message)
		assert.Equal(t, 1, resp.ItemCount)
		f.orders.AssertExpectations(t)
	})

	t.Run("removing the last unit deletes the line", func(t *testing.T) {
		f := newFixture()
		p := product(10, false)
		order, _ := trade.NewOrder(buyer.ID)
		item, _ := trade.NewOrderItem(order.ID, p.ID, 1)
		order.Items = []trade.OrderItem{*item}

		f.products.On("FindByID", ctx, p.ID).Return(&p, nil)
		f.buyers.On("FindByUserID", ctx, userID).Return(buyer, nil)
		f.orders.On("FindPendingByBuyer", ctx, buyer.ID).Return(order, nil)
		f.orders.On("FindItem", ctx, order.ID, p.ID).Return(item, nil)
		f.orders.On("DeleteItem", ctx, item.ID).Return(nil)

		resp, err := f.carts.UpdateItem(ctx, userID, UpdateItemRequest{ProductID: p.ID, Action: "remove"})

		require.NoError(t, err)
		assert.Zero(t, resp.ItemCount)
		f.orders.AssertNotCalled(t, "SaveItem", mock.Anything, mock.Anything)
	})

	t.Run("user without buyer", func(t *testing.T) {
		f := newFixture()
		p := product(10, false)
		f.products.On("FindByID", ctx, p.ID).Return(&p, nil)
		f.buyers.On("FindByUserID", ctx, userID).Return(nil, shared.ErrNotFound)

		_, err := f.carts.UpdateItem(ctx, userID, UpdateItemRequest{ProductID: p.ID, Action: "add"})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestCartService_MergeCartOnLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("empty cookie asks the client to restore", func(t *testing.T) {
		f := newFixture()
		flag, err := f.carts.MergeCartOnLogin(ctx, customer(), trade.Cart{})
		require.NoError(t, err)
		assert.True(t, flag)
		f.buyers.AssertNotCalled(t, "FindByUserID", mock.Anything, mock.Anything)
	})

	t.Run("cookie replaces the open order", func(t *testing.T) {
		f := newFixture()
		c := customer()
		p := product(10, false)
		stale := uuid.New()
		order, _ := trade.NewOrder(uuid.New())

		f.buyers.On("FindByUserID", ctx, c.UserID).Return(nil, shared.ErrNotFound)
		f.buyers.On("Save", ctx, mock.MatchedBy(func(b *partner.Buyer) bool {
			return b.Name == c.Username && b.Email == c.Email && *b.UserID == c.UserID
		})).Return(nil)
		f.orders.On("FindPendingByBuyer", ctx, mock.Anything).Return(order, nil)
		f.orders.On("DeleteItems", ctx, order.ID).Return(nil)
		f.products.On("FindByIDs", ctx, mock.Anything).Return([]catalog.Product{p}, nil)
		f.orders.On("CreateItems", ctx, mock.MatchedBy(func(items []trade.OrderItem) bool {
			return len(items) == 1 && items[0].ProductID == p.ID && items[0].Quantity == 3
		})).Return(nil)

		flag, err := f.carts.MergeCartOnLogin(ctx, c, cartOf(map[uuid.UUID]int{p.ID: 3, stale: 1}))

		require.NoError(t, err)
		assert.False(t, flag)
		f.buyers.AssertExpectations(t)
		f.orders.AssertExpectations(t)
	})
}

func TestCartService_RestoreAndClear(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	buyer := partner.NewBuyerForUser(userID, "olena", "olena@example.com")
	order, _ := trade.NewOrder(buyer.ID)
	a, _ := trade.NewOrderItem(order.ID, uuid.New(), 2)
	b, _ := trade.NewOrderItem(order.ID, uuid.New(), 0)
	order.Items = []trade.OrderItem{*a, *b}

	t.Run("restore open order", func(t *testing.T) {
		f := newFixture()
		f.buyers.On("FindByUserID", ctx, userID).Return(buyer, nil)
		f.orders.On("FindLastByBuyer", ctx, buyer.ID).Return(order, nil)

		cart, err := f.carts.RestoreCart(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, trade.Cart{a.ProductID.String(): {Quantity: 2}}, cart)
	})

	t.Run("nothing to restore without buyer", func(t *testing.T) {
		f := newFixture()
		f.buyers.On("FindByUserID", ctx, userID).Return(nil, shared.ErrNotFound)

		cart, err := f.carts.RestoreCart(ctx, userID)
		require.NoError(t, err)
		assert.Nil(t, cart)
	})

	t.Run("clear deletes open order", func(t *testing.T) {
		f := newFixture()
		f.buyers.On("FindByUserID", ctx, userID).Return(buyer, nil)
		f.orders.On("FindLastByBuyer", ctx, buyer.ID).Return(order, nil)
		f.orders.On("Delete", ctx, order.ID).Return(nil)

		require.NoError(t, f.carts.ClearPendingOrder(ctx, userID))
		f.orders.AssertExpectations(t)
	})

	t.Run("completed order is kept", func(t *testing.T) {
		f := newFixture()
		done, _ := trade.NewOrder(buyer.ID)
		done.MarkComplete()
		f.buyers.On("FindByUserID", ctx, userID).Return(buyer, nil)
		f.orders.On("FindLastByBuyer", ctx, buyer.ID).Return(done, nil)

		require.NoError(t, f.carts.ClearPendingOrder(ctx, userID))
		f.orders.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestCheckoutService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("stock change returns corrected cart and writes nothing", func(t *testing.T) {
		f := newFixture()
		p := product(100, false)
		f.products.On("FindByIDs", ctx, mock.Anything).Return([]catalog.Product{p}, nil)
		f.images.On("FirstImages", ctx, mock.Anything).Return(map[uuid.UUID]string{}, nil)
		f.stock.On("AvailableQuantities", ctx, []uuid.UUID{p.ID}).Return(map[uuid.UUID]int{p.ID: 1}, nil)

		resp, err := f.checkout.Submit(ctx, nil, contactForm(), cartOf(map[uuid.UUID]int{p.ID: 3}))

		require.NoError(t, err)
		assert.False(t, resp.Completed)
		assert.Equal(t, trade.MsgStockChanged, resp.Message)
		assert.Equal(t, cartOf(map[uuid.UUID]int{p.ID: 1}).Encode(), resp.Cart)
		assert.Equal(t, 1, resp.Order.ItemCount)
		f.sales.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("empty cart makes no sale", func(t *testing.T) {
		f := newFixture()
		resp, err := f.checkout.Submit(ctx, nil, contactForm(), trade.Cart{})

		require.NoError(t, err)
		assert.False(t, resp.Completed)
		assert.Equal(t, "{}", resp.Cart)
		f.sales.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("guest checkout completes the sale", func(t *testing.T) {
		f := newFixture()
		p := product(100, false)
		lot := inventory.Stock{BaseEntity: shared.NewBaseEntity(), ProductID: p.ID, Quantity: 2}
		form := contactForm()

		f.products.On("FindByIDs", ctx, mock.Anything).Return([]catalog.Product{p}, nil)
		f.images.On("FirstImages", ctx, mock.Anything).Return(map[uuid.UUID]string{}, nil)
		f.stock.On("AvailableQuantities", ctx, []uuid.UUID{p.ID}).Return(map[uuid.UUID]int{p.ID: 2}, nil)
		f.buyers.On("Save", ctx, mock.MatchedBy(func(b *partner.Buyer) bool {
			return !b.HasUser() && b.Email == form.Email
		})).Return(nil)
		f.orders.On("Save", ctx, mock.MatchedBy(func(o *trade.Order) bool { return o.Complete })).Return(nil)
		f.orders.On("CreateItems", ctx, mock.MatchedBy(func(items []trade.OrderItem) bool {
			return len(items) == 1 && items[0].Quantity == 2
		})).Return(nil)
		f.sales.On("Save", ctx, mock.MatchedBy(func(s *trade.Sale) bool {
			return s.City == "Київ" && s.Department == "12"
		})).Return(nil)
		f.stock.On("FindByProductForUpdate", ctx, p.ID).Return([]inventory.Stock{lot}, nil)
		f.stock.On("Delete", ctx, lot.ID).Return(nil)
		f.products.On("SetSold", ctx, p.ID, true).Return(nil)

		resp, err := f.checkout.Submit(ctx, nil, form, cartOf(map[uuid.UUID]int{p.ID: 2}))

		require.NoError(t, err)
		assert.True(t, resp.Completed)
		assert.Equal(t, trade.MsgPaymentSucceeded, resp.Message)
		assert.Equal(t, trade.MsgPaymentWarning, resp.Warning)
		assert.Equal(t, "{}", resp.Cart)
		assert.True(t, resp.Order.Total.IsZero())
		require.NotNil(t, resp.SaleID)
		f.sales.AssertExpectations(t)
		f.products.AssertExpectations(t)
	})

	t.Run("signed-in checkout completes the open order", func(t *testing.T) {
		f := newFixture()
		c := customer()
		p := product(40, false)
		buyer := partner.NewBuyerForUser(c.UserID, c.Username, c.Email)
		order, _ := trade.NewOrder(buyer.ID)
		lot := inventory.Stock{BaseEntity: shared.NewBaseEntity(), ProductID: p.ID, Quantity: 5}
		form := contactForm()

		f.products.On("FindByIDs", ctx, mock.Anything).Return([]catalog.Product{p}, nil)
		f.images.On("FirstImages", ctx, mock.Anything).Return(map[uuid.UUID]string{}, nil)
		f.stock.On("AvailableQuantities", ctx, []uuid.UUID{p.ID}).Return(map[uuid.UUID]int{p.ID: 5}, nil)
		f.buyers.On("FindByUserID", ctx, c.UserID).Return(buyer, nil)
		f.buyers.On("Save", ctx, mock.MatchedBy(func(b *partner.Buyer) bool {
			return b.ID == buyer.ID && b.Tel == form.Tel && b.Address == form.Address
		})).Return(nil)
		f.orders.On("FindPendingByBuyer", ctx, buyer.ID).Return(order, nil)
		f.orders.On("DeleteItems", ctx, order.ID).Return(nil)
		f.orders.On("Save", ctx, order).Return(nil)
		f.orders.On("CreateItems", ctx, mock.Anything).Return(nil)
		f.sales.On("Save", ctx, mock.AnythingOfType("*trade.Sale")).Return(nil)
		f.stock.On("FindByProductForUpdate", ctx, p.ID).Return([]inventory.Stock{lot}, nil)
		f.stock.On("Save", ctx, mock.MatchedBy(func(s *inventory.Stock) bool { return s.Quantity == 3 })).Return(nil)

		resp, err := f.checkout.Submit(ctx, &c, form, cartOf(map[uuid.UUID]int{p.ID: 2}))

		require.NoError(t, err)
		assert.True(t, resp.Completed)
		assert.Equal(t, order.ID, *resp.OrderID)
		assert.True(t, order.Complete)
		f.products.AssertNotCalled(t, "SetSold", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("stock sold concurrently aborts the transaction", func(t *testing.T) {
		f := newFixture()
		p := product(100, false)

		f.products.On("FindByIDs", ctx, mock.Anything).Return([]catalog.Product{p}, nil)
		f.images.On("FirstImages", ctx, mock.Anything).Return(map[uuid.UUID]string{}, nil)
		f.stock.On("AvailableQuantities", ctx, []uuid.UUID{p.ID}).Return(map[uuid.UUID]int{p.ID: 2}, nil)
		f.buyers.On("Save", ctx, mock.Anything).Return(nil)
		f.orders.On("Save", ctx, mock.Anything).Return(nil)
		f.orders.On("CreateItems", ctx, mock.Anything).Return(nil)
		f.sales.On("Save", ctx, mock.Anything).Return(nil)
		f.stock.On("FindByProductForUpdate", ctx, p.ID).Return([]inventory.Stock{
			{BaseEntity: shared.NewBaseEntity(), ProductID: p.ID, Quantity: 1},
		}, nil)

		_, err := f.checkout.Submit(ctx, nil, contactForm(), cartOf(map[uuid.UUID]int{p.ID: 2}))

		assert.ErrorIs(t, err, shared.ErrInsufficientStock)
	})
}

func TestCheckoutService_Prepare(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	c := customer()
	p := product(100, false)

	f.products.On("FindByIDs", ctx, mock.Anything).Return([]catalog.Product{p}, nil)
	f.images.On("FirstImages", ctx, mock.Anything).Return(map[uuid.UUID]string{}, nil)
	f.stock.On("AvailableQuantities", ctx, []uuid.UUID{p.ID}).Return(map[uuid.UUID]int{p.ID: 9}, nil)
	f.buyers.On("FindByUserID", ctx, c.UserID).Return(nil, shared.ErrNotFound)
	f.buyers.On("Save", ctx, mock.AnythingOfType("*partner.Buyer")).Return(nil)

	resp, err := f.checkout.Prepare(ctx, &c, cartOf(map[uuid.UUID]int{p.ID: 1}))

	require.NoError(t, err)
	assert.Empty(t, resp.Message)
	require.NotNil(t, resp.Form)
	assert.Equal(t, c.Username, resp.Form.Name)
	assert.Equal(t, c.Email, resp.Form.Email)
}

func TestCheckoutService_Revise(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	p := product(100, false)

	f.products.On("FindByIDs", ctx, mock.Anything).Return([]catalog.Product{p}, nil)
	f.images.On("FirstImages", ctx, mock.Anything).Return(map[uuid.UUID]string{}, nil)
	f.stock.On("AvailableQuantities", ctx, []uuid.UUID{p.ID}).Return(map[uuid.UUID]int{p.ID: 1}, nil)

	form := CheckoutForm{ContactForm: ContactForm{Name: "Тарас", Email: "broken"}}
	resp, err := f.checkout.Revise(ctx, form, cartOf(map[uuid.UUID]int{p.ID: 3}))

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Message)
	assert.False(t, resp.Completed)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 1, resp.Items[0].Quantity)
	assert.JSONEq(t, cartOf(map[uuid.UUID]int{p.ID: 1}).Encode(), resp.Cart)
	require.NotNil(t, resp.Form)
	assert.Equal(t, "broken", resp.Form.Email)
	f.buyers.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestOrderService_History(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	userID := uuid.New()
	buyer := partner.NewBuyerForUser(userID, "taras", "taras@example.com")
	p := product(25, false)

	paid, _ := trade.NewOrder(buyer.ID)
	paid.MarkComplete()
	item, _ := trade.NewOrderItem(paid.ID, p.ID, 4)
	paid.Items = []trade.OrderItem{*item}
	open, _ := trade.NewOrder(buyer.ID)
	sale, err := trade.NewSale(paid, trade.Delivery{Region: "Львівська", City: "Львів", Department: "3"})
	require.NoError(t, err)

	f.buyers.On("FindByUserID", ctx, userID).Return(buyer, nil)
	f.orders.On("FindByBuyer", ctx, buyer.ID).Return([]trade.Order{*open, *paid}, nil)
	f.sales.On("FindByOrderIDs", ctx, []uuid.UUID{open.ID, paid.ID}).Return(map[uuid.UUID]trade.Sale{paid.ID: *sale}, nil)
	f.products.On("FindByIDs", ctx, []uuid.UUID{p.ID}).Return([]catalog.Product{p}, nil)

	entries, err := f.history.History(ctx, userID)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, trade.StatusUnpaid, entries[0].Status)
	assert.Nil(t, entries[0].Sale)
	assert.Empty(t, entries[1].Status)
	require.NotNil(t, entries[1].Sale)
	assert.Equal(t, "Львів", entries[1].Sale.City)
	assert.True(t, decimal.NewFromInt(100).Equal(entries[1].Order.Total))
	assert.Equal(t, 4, entries[1].Order.ItemCount)
}
