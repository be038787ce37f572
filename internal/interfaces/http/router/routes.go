package router

import (
	"github.com/amunitsiia/shop/internal/interfaces/http/handler"
	"github.com/gin-gonic/gin"
)

// Handlers bundles the HTTP handlers of every bounded context
type Handlers struct {
	Shop      *handler.ShopHandler
	Auth      *handler.AuthHandler
	Account   *handler.AccountHandler
	Catalog   *handler.CatalogHandler
	Product   *handler.ProductHandler
	Partner   *handler.PartnerHandler
	Inventory *handler.InventoryHandler
	Orders    *handler.OrderHandler
	System    *handler.SystemHandler
}

// Guards are the authentication middlewares applied per group
type Guards struct {
	// Identify reads a bearer token when present and never rejects
	Identify gin.HandlerFunc
	// Authenticate rejects requests without a valid access token
	Authenticate gin.HandlerFunc
	// Staff rejects authenticated users without the staff flag
	Staff gin.HandlerFunc
}

// Groups builds the API route groups
func Groups(h Handlers, g Guards) []*DomainGroup {
	return []*DomainGroup{
		shopGroup(h, g),
		authGroup(h, g),
		accountGroup(h, g),
		adminGroup(h, g),
		systemGroup(h),
	}
}

// Mount registers all groups on the router and mounts them
func Mount(r *Router, h Handlers, g Guards) {
	for _, group := range Groups(h, g) {
		r.Register(group)
	}
	r.Setup()
}

func shopGroup(h Handlers, g Guards) *DomainGroup {
	shop := NewDomainGroup("/shop").Use(g.Identify)
	shop.GET("/navigation", h.Shop.Navigation).
		GET("/home", h.Shop.Home).
		GET("/search", h.Shop.Search).
		GET("/pages/:name", h.Shop.StaticPage).
		GET("/super-categories/:id", h.Shop.SuperCategory).
		GET("/categories/:slug", h.Shop.Category).
		POST("/categories/:slug/filter", h.Shop.FilterCategory).
		GET("/products/:slug", h.Shop.Product).
		POST("/products/:slug/reviews", h.Shop.AddReview).
		POST("/reviews/:id/like", h.Shop.LikeReview).
		GET("/cart", h.Shop.Cart).
		POST("/cart/items", h.Shop.UpdateCartItem).
		GET("/checkout", h.Shop.PrepareCheckout).
		POST("/checkout", h.Shop.Checkout)
	return shop
}

func authGroup(h Handlers, g Guards) *DomainGroup {
	auth := NewDomainGroup("/auth")
	auth.POST("/register", h.Auth.Register).
		POST("/login", h.Auth.Login).
		POST("/admin/login", h.Auth.AdminLogin).
		POST("/refresh", h.Auth.Refresh)

	auth.Group("").Use(g.Authenticate).
		POST("/logout", h.Auth.Logout).
		PUT("/password", h.Auth.ChangePassword).
		GET("/me", h.Auth.Me)
	return auth
}

func accountGroup(h Handlers, g Guards) *DomainGroup {
	return NewDomainGroup("/account").Use(g.Authenticate).
		GET("/:id", h.Account.Get).
		PUT("/:id", h.Account.Update)
}

func adminGroup(h Handlers, g Guards) *DomainGroup {
	admin := NewDomainGroup("/admin").Use(g.Authenticate, g.Staff)

	admin.Group("/super-categories").
		POST("", h.Catalog.CreateSuperCategory).
		GET("", h.Catalog.ListSuperCategories).
		GET("/:id", h.Catalog.GetSuperCategory).
		PUT("/:id", h.Catalog.UpdateSuperCategory).
		DELETE("/:id", h.Catalog.DeleteSuperCategory)

	admin.Group("/categories").
		POST("", h.Catalog.CreateCategory).
		GET("", h.Catalog.ListCategories).
		GET("/:id", h.Catalog.GetCategory).
		PUT("/:id", h.Catalog.UpdateCategory).
		DELETE("/:id", h.Catalog.DeleteCategory).
		POST("/:id/features", h.Catalog.AddFeature).
		GET("/:id/features", h.Catalog.ListFeatures).
		DELETE("/:id/features/:featureId", h.Catalog.DeleteFeature)

	admin.Group("/brands").
		POST("", h.Catalog.CreateBrand).
		GET("", h.Catalog.ListBrands).
		GET("/:id", h.Catalog.GetBrand).
		PUT("/:id", h.Catalog.UpdateBrand).
		DELETE("/:id", h.Catalog.DeleteBrand)

	admin.Group("/pages").
		POST("", h.Catalog.CreatePage).
		GET("", h.Catalog.ListPages).
		GET("/:name", h.Catalog.GetPage).
		PUT("/:id", h.Catalog.UpdatePage).
		DELETE("/:id", h.Catalog.DeletePage)

	admin.Group("/products").
		POST("", h.Product.Create).
		GET("", h.Product.List).
		GET("/:id", h.Product.Get).
		PUT("/:id", h.Product.Update).
		DELETE("/:id", h.Product.Delete).
		PUT("/:id/suppliers", h.Product.SetSuppliers).
		PUT("/:id/features", h.Product.SetFeatures).
		GET("/:id/features", h.Product.ListFeatures).
		POST("/:id/images/upload-url", h.Product.RequestImageUpload).
		POST("/:id/images", h.Product.RegisterImage).
		GET("/:id/images", h.Product.ListImages).
		DELETE("/:id/images/:imageId", h.Product.DeleteImage)

	admin.Group("/suppliers").
		POST("", h.Partner.CreateSupplier).
		GET("", h.Partner.ListSuppliers).
		GET("/:id", h.Partner.GetSupplier).
		PUT("/:id", h.Partner.UpdateSupplier).
		DELETE("/:id", h.Partner.DeleteSupplier)

	admin.Group("/buyers").
		GET("", h.Partner.ListBuyers).
		GET("/:id", h.Partner.GetBuyer).
		PUT("/:id", h.Partner.UpdateBuyer).
		DELETE("/:id", h.Partner.DeleteBuyer)

	admin.Group("/incomes").
		POST("", h.Inventory.RegisterIncome).
		GET("", h.Inventory.ListIncomes).
		GET("/:id", h.Inventory.GetIncome).
		PUT("/:id", h.Inventory.UpdateIncome)

	admin.Group("/stock").
		GET("", h.Inventory.ListStock).
		GET("/summary", h.Inventory.StockSummary).
		POST("/consume", h.Inventory.Consume)

	admin.Group("/orders").
		GET("", h.Orders.ListOrders).
		GET("/:id", h.Orders.GetOrder)

	admin.Group("/sales").
		GET("", h.Orders.ListSales).
		GET("/:id", h.Orders.GetSale)

	admin.Group("/reviews").
		GET("", h.Orders.ListReviews).
		DELETE("/:id", h.Orders.DeleteReview)

	return admin
}

func systemGroup(h Handlers) *DomainGroup {
	return NewDomainGroup("/system").
		GET("/ping", h.System.Ping).
		GET("/info", h.System.GetSystemInfo)
}
