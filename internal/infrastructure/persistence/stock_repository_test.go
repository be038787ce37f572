package persistence

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amunitsiia/shop/internal/domain/inventory"
	"github.com/amunitsiia/shop/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func saveIncomeWithLot(t *testing.T, db *gorm.DB, productID uuid.UUID, supplierID *uuid.UUID, qty int, price string) *inventory.Stock {
	t.Helper()
	ctx := context.Background()

	income, err := inventory.NewIncome(productID, supplierID, qty, decimal.RequireFromString(price))
	require.NoError(t, err)
	require.NoError(t, NewGormIncomeRepository(db).Save(ctx, income))

	lot, err := inventory.NewStockFromIncome(income)
	require.NoError(t, err)
	require.NoError(t, NewGormStockRepository(db).Save(ctx, lot))
	return lot
}

func TestGormStockRepository_AvailableQuantities(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormStockRepository(db)
	ctx := context.Background()

	category := seedCategory(t, db)
	stocked := seedProduct(t, db, category.ID, "Шолом", 4000)
	empty := seedProduct(t, db, category.ID, "Плитоноска", 6000)

	saveIncomeWithLot(t, db, stocked.ID, nil, 3, "2500")
	saveIncomeWithLot(t, db, stocked.ID, nil, 4, "2600")

	t.Run("sums lots and reports zero for products without stock", func(t *testing.T) {
		result, err := repo.AvailableQuantities(ctx, []uuid.UUID{stocked.ID, empty.ID})
		require.NoError(t, err)
		assert.Equal(t, 7, result[stocked.ID])
		assert.Equal(t, 0, result[empty.ID])
	})

	t.Run("no ids", func(t *testing.T) {
		result, err := repo.AvailableQuantities(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, result)
	})
}

func TestGormStockRepository_Summary(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormStockRepository(db)
	ctx := context.Background()

	category := seedCategory(t, db)
	product := seedProduct(t, db, category.ID, "Турнікет", 900)
	saveIncomeWithLot(t, db, product.ID, nil, 2, "500.50")
	saveIncomeWithLot(t, db, product.ID, nil, 1, "600")

	summary, err := repo.Summary(ctx)
	require.NoError(t, err)
	require.Len(t, summary, 1)
	assert.Equal(t, product.ID, summary[0].ProductID)
	assert.Equal(t, 3, summary[0].Quantity)
	assert.Equal(t, 2, summary[0].Lots)
	assert.True(t, decimal.RequireFromString("1601").Equal(summary[0].PriceTotal), summary[0].PriceTotal.String())
}

func TestGormStockRepository_FindAllAndDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormStockRepository(db)
	ctx := context.Background()

	category := seedCategory(t, db)
	first := seedProduct(t, db, category.ID, "Рюкзак", 3000)
	second := seedProduct(t, db, category.ID, "Підсумок", 400)
	lot := saveIncomeWithLot(t, db, first.ID, nil, 5, "2000")
	saveIncomeWithLot(t, db, second.ID, nil, 1, "300")

	filter := shared.DefaultFilter().With("product_id", first.ID)
	lots, err := repo.FindAll(ctx, filter)
	require.NoError(t, err)
	require.Len(t, lots, 1)
	assert.Equal(t, lot.ID, lots[0].ID)

	total, err := repo.Count(ctx, shared.DefaultFilter())
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	found, err := repo.FindByIncomeIDForUpdate(ctx, lot.IncomeID)
	require.NoError(t, err)
	assert.Equal(t, 5, found.Quantity)

	require.NoError(t, repo.Delete(ctx, lot.ID))
	count, err := repo.CountByProduct(ctx, first.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	_, err = repo.FindByIncomeIDForUpdate(ctx, lot.IncomeID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormStockRepository_FindByProductForUpdate(t *testing.T) {
	db, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewGormStockRepository(db)

	productID := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "product_id", "income_id", "quantity", "price"}).
		AddRow(uuid.New(), productID, uuid.New(), 2, "100.00").
		AddRow(uuid.New(), productID, uuid.New(), 5, "120.00")

	mock.ExpectQuery(`SELECT \* FROM "stock" WHERE product_id = \$1 ORDER BY created_at ASC, id ASC FOR UPDATE`).
		WithArgs(productID).
		WillReturnRows(rows)

	lots, err := repo.FindByProductForUpdate(context.Background(), productID)

	require.NoError(t, err)
	require.Len(t, lots, 2)
	assert.Equal(t, 2, lots[0].Quantity)
	assert.Equal(t, 5, lots[1].Quantity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStockRepository_FindByIncomeIDForUpdate(t *testing.T) {
	db, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewGormStockRepository(db)

	incomeID := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "product_id", "income_id", "quantity", "price"}).
		AddRow(uuid.New(), uuid.New(), incomeID, 4, "90.00")

	mock.ExpectQuery(`SELECT \* FROM "stock" WHERE income_id = \$1 ORDER BY .* LIMIT .* FOR UPDATE`).
		WithArgs(incomeID, 1).
		WillReturnRows(rows)

	lot, err := repo.FindByIncomeIDForUpdate(context.Background(), incomeID)

	require.NoError(t, err)
	assert.Equal(t, 4, lot.Quantity)
	assert.Equal(t, incomeID, lot.IncomeID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormIncomeRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormIncomeRepository(db)
	ctx := context.Background()

	category := seedCategory(t, db)
	product := seedProduct(t, db, category.ID, "Берці", 3500)
	supplierID := uuid.New()
	lot := saveIncomeWithLot(t, db, product.ID, &supplierID, 10, "2800")

	income, err := repo.FindByID(ctx, lot.IncomeID)
	require.NoError(t, err)
	assert.Equal(t, 10, income.IncomeQuantity)
	require.NotNil(t, income.SupplierID)
	assert.Equal(t, supplierID, *income.SupplierID)

	_, err = income.Change(8, decimal.NewFromInt(2900), nil)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, income))

	incomes, err := repo.FindAll(ctx, shared.DefaultFilter().With("supplier_id", supplierID))
	require.NoError(t, err)
	assert.Empty(t, incomes)

	total, err := repo.Count(ctx, shared.DefaultFilter().With("product_id", product.ID))
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
