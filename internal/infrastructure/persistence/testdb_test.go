package persistence

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amunitsiia/shop/internal/domain/catalog"
	"github.com/amunitsiia/shop/internal/domain/identity"
	"github.com/amunitsiia/shop/internal/domain/inventory"
	"github.com/amunitsiia/shop/internal/domain/partner"
	"github.com/amunitsiia/shop/internal/domain/review"
	"github.com/amunitsiia/shop/internal/domain/trade"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database with the shop schema
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every pooled connection would get its own :memory: database
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&catalog.SuperCategory{},
		&catalog.Category{},
		&catalog.CategoryFeature{},
		&catalog.Brand{},
		&catalog.Product{},
		&catalog.ProductFeature{},
		&catalog.ProductImage{},
		&catalog.PageData{},
		&productSupplier{},
		&partner.Supplier{},
		&partner.Buyer{},
		&inventory.Income{},
		&inventory.Stock{},
		&trade.Order{},
		&trade.OrderItem{},
		&trade.Sale{},
		&review.Review{},
		&review.Like{},
		&identity.User{},
	)
	require.NoError(t, err)
	return db
}

// newMockDB opens gorm on top of sqlmock with the PostgreSQL dialect
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})
	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return gormDB, mock, mockDB
}

// seedCategory stores a super category with one category under it
func seedCategory(t *testing.T, db *gorm.DB) *catalog.Category {
	t.Helper()

	super, err := catalog.NewSuperCategory(gofakeit.Word()+" "+gofakeit.LetterN(6), "")
	require.NoError(t, err)
	require.NoError(t, db.Create(super).Error)

	category, err := catalog.NewCategory(gofakeit.Word()+" "+gofakeit.LetterN(6), "", super.ID, "")
	require.NoError(t, err)
	require.NoError(t, db.Omit("SuperCategory").Create(category).Error)
	return category
}

// seedProduct stores a product priced at price in the category
func seedProduct(t *testing.T, db *gorm.DB, categoryID uuid.UUID, name string, price int64) *catalog.Product {
	t.Helper()

	product, err := catalog.NewProduct(catalog.ProductDetails{
		Name:       name,
		Slug:       "p-" + uuid.NewString()[:8],
		CategoryID: categoryID,
		VendorCode: gofakeit.LetterN(8),
		Price:      decimal.NewFromInt(price),
	})
	require.NoError(t, err)
	require.NoError(t, db.Create(product).Error)
	return product
}
