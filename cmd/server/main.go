package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/amunitsiia/shop/docs"
	catalogapp "github.com/amunitsiia/shop/internal/application/catalog"
	identityapp "github.com/amunitsiia/shop/internal/application/identity"
	inventoryapp "github.com/amunitsiia/shop/internal/application/inventory"
	partnerapp "github.com/amunitsiia/shop/internal/application/partner"
	reviewapp "github.com/amunitsiia/shop/internal/application/review"
	"github.com/amunitsiia/shop/internal/application/storefront"
	tradeapp "github.com/amunitsiia/shop/internal/application/trade"
	"github.com/amunitsiia/shop/internal/infrastructure/auth"
	"github.com/amunitsiia/shop/internal/infrastructure/cache"
	"github.com/amunitsiia/shop/internal/infrastructure/config"
	"github.com/amunitsiia/shop/internal/infrastructure/logger"
	"github.com/amunitsiia/shop/internal/infrastructure/persistence"
	"github.com/amunitsiia/shop/internal/infrastructure/storage"
	"github.com/amunitsiia/shop/internal/infrastructure/telemetry"
	"github.com/amunitsiia/shop/internal/interfaces/http/handler"
	"github.com/amunitsiia/shop/internal/interfaces/http/middleware"
	"github.com/amunitsiia/shop/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

//	@title			Shop API
//	@version		1.0
//	@description	Storefront and back-office API of the home appliance shop

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	ctx := context.Background()

	svc := telemetry.Service{Name: cfg.App.Name, Version: version}
	tracer, err := telemetry.NewTracerProvider(ctx, cfg.Telemetry, svc, log)
	if err != nil {
		log.Fatal("Failed to initialize tracing", zap.Error(err))
	}
	defer func() { _ = tracer.Shutdown(context.Background()) }()
	logExport, err := telemetry.NewLoggerProvider(ctx, cfg.Telemetry, svc, log)
	if err != nil {
		log.Fatal("Failed to initialize log export", zap.Error(err))
	}
	defer func() { _ = logExport.Shutdown(context.Background()) }()
	log = telemetry.Bridge(log, logExport, cfg.App.Name, logger.ParseLevel(cfg.Log.Level))

	log.Info("Starting shop backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("version", version),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.Open(&cfg.Database, gormLog, tracer.GormPlugins()...)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	var redisClient *redis.Client
	if cfg.Cache.Type == cache.TypeRedis {
		redisClient, err = cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.Warn("Redis unavailable", zap.Error(err))
			redisClient = nil
		} else {
			defer func() { _ = redisClient.Close() }()
		}
	}

	var (
		sharedCache cache.Cache
		blacklist   auth.TokenBlacklist
	)
	if redisClient != nil {
		sharedCache = cache.New(cfg.Cache, redisClient, log)
		blacklist = auth.NewRedisTokenBlacklist(redisClient)
	} else {
		sharedCache = cache.New(cfg.Cache, nil, log)
		blacklist = auth.NewInMemoryTokenBlacklist()
	}

	objects := newObjectStorage(ctx, cfg, log)

	// Repositories
	superRepo := persistence.NewGormSuperCategoryRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	brandRepo := persistence.NewGormBrandRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	featureRepo := persistence.NewGormProductFeatureRepository(db.DB)
	imageRepo := persistence.NewGormProductImageRepository(db.DB)
	pageRepo := persistence.NewGormPageRepository(db.DB)
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	buyerRepo := persistence.NewGormBuyerRepository(db.DB)
	incomeRepo := persistence.NewGormIncomeRepository(db.DB)
	stockRepo := persistence.NewGormStockRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	saleRepo := persistence.NewGormSaleRepository(db.DB)
	reviewRepo := persistence.NewGormReviewRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)

	// Services
	jwtService := auth.NewJWTService(cfg.JWT)

	categoryService := catalogapp.NewCategoryService(superRepo, categoryRepo, sharedCache, log)
	brandService := catalogapp.NewBrandService(brandRepo, log)
	pageService := catalogapp.NewPageService(pageRepo, log)
	productService := catalogapp.NewProductService(
		productRepo, categoryRepo, brandRepo, supplierRepo, featureRepo, imageRepo, objects, log,
	)
	supplierService := partnerapp.NewSupplierService(supplierRepo, log)
	buyerService := partnerapp.NewBuyerService(buyerRepo, log)
	inventoryService := inventoryapp.NewInventoryService(
		persistence.NewInventoryTransactionScope(db.DB), incomeRepo, stockRepo, productRepo, log,
	)
	reviewService := reviewapp.NewReviewService(
		persistence.NewReviewTransactionScope(db.DB), reviewRepo, productRepo, log,
	)

	checkoutScope := persistence.NewCheckoutTransactionScope(db.DB)
	cartService := tradeapp.NewCartService(checkoutScope, productRepo, imageRepo, orderRepo, buyerRepo, objects, log)
	checkoutService := tradeapp.NewCheckoutService(checkoutScope, cartService, stockRepo, buyerRepo, log)
	orderService := tradeapp.NewOrderService(orderRepo, saleRepo, buyerRepo, productRepo)

	authService := identityapp.NewAuthService(
		persistence.NewRegistrationTransactionScope(db.DB), userRepo, jwtService, blacklist, cartService, log,
	)
	accountService := identityapp.NewAccountService(userRepo, buyerRepo, orderService, log)

	navigation := storefront.NewNavigationService(superRepo, categoryRepo, sharedCache, cfg.Cache.NavigationTTL, log)
	shopService := storefront.NewService(
		navigation, productRepo, categoryRepo, featureRepo, imageRepo, pageRepo,
		reviewService, cartService, objects,
		storefront.Options{
			PageSize:         cfg.Shop.PageSize,
			TopProductsLimit: cfg.Shop.TopProductsLimit,
			PriceCeiling:     cfg.Shop.PriceCeiling,
		},
		log,
	)

	// HTTP
	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		log.Fatal("Invalid trusted proxies", zap.Error(err))
	}

	engine.Use(middleware.RequestID())
	if tracer.IsEnabled() {
		engine.Use(middleware.Tracing(cfg.App.Name)...)
	}
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.Secure(middleware.SecurityConfig{
		HSTSEnabled:  cfg.App.IsProduction(),
		HSTSMaxAge:   middleware.DefaultSecurityConfig().HSTSMaxAge,
		CSPDirective: middleware.DefaultSecurityConfig().CSPDirective,
	}))
	engine.Use(middleware.CORS(middleware.CORSConfigFromHTTP(cfg.HTTP)))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		defer limiter.Stop()
		engine.Use(middleware.RateLimit(limiter))
	}

	if cfg.HTTP.MetricsEnabled {
		metrics := middleware.NewHTTPMetrics("shop")
		engine.Use(metrics.Middleware())
		engine.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	sqlDB, err := db.SQL()
	if err != nil {
		log.Fatal("Failed to get sql.DB", zap.Error(err))
	}
	checks := map[string]handler.Pinger{"database": handler.PingerFunc(sqlDB.PingContext)}
	if redisClient != nil {
		checks["redis"] = handler.PingerFunc(func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		})
	}
	systemHandler := handler.NewSystemHandler(cfg.App.Name, version, checks)
	engine.GET("/health", systemHandler.Health)
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	cookies := handler.NewCartCookies(cfg.Cookie, cfg.Shop)
	handlers := router.Handlers{
		Shop:      handler.NewShopHandler(shopService, reviewService, cartService, checkoutService, cookies),
		Auth:      handler.NewAuthHandler(authService, cookies),
		Account:   handler.NewAccountHandler(accountService),
		Catalog:   handler.NewCatalogHandler(categoryService, brandService, pageService),
		Product:   handler.NewProductHandler(productService),
		Partner:   handler.NewPartnerHandler(supplierService, buyerService),
		Inventory: handler.NewInventoryHandler(inventoryService),
		Orders:    handler.NewOrderHandler(orderService, reviewService),
		System:    systemHandler,
	}
	guards := router.Guards{
		Identify:     middleware.OptionalJWTAuthMiddleware(jwtService, blacklist, log),
		Authenticate: middleware.JWTAuthMiddleware(jwtService, blacklist, log),
		Staff:        middleware.RequireStaff(),
	}
	router.Mount(router.NewRouter(engine), handlers, guards)

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
		return
	}
	log.Info("Server exited gracefully")
}

// newObjectStorage connects to S3 when a bucket is configured and otherwise
// serves image URLs from the public base URL without upload support
func newObjectStorage(ctx context.Context, cfg *config.Config, log *zap.Logger) catalogapp.ObjectStorage {
	if !cfg.Storage.Enabled() {
		log.Warn("Object storage not configured, image uploads are disabled")
		return storage.NewStubObjectStorage(cfg.Storage.PublicBaseURL)
	}

	s3, err := storage.NewS3ObjectStorage(&cfg.Storage,
		storage.WithLogger(log),
		storage.WithPresignExpiration(cfg.Storage.PresignExpiration),
	)
	if err != nil {
		log.Fatal("Failed to initialize object storage", zap.Error(err))
	}

	bucketCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := s3.EnsureBucket(bucketCtx); err != nil {
		log.Warn("Could not verify storage bucket", zap.String("bucket", cfg.Storage.Bucket), zap.Error(err))
	}
	return s3
}
