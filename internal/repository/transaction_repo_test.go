package repository

import (
	"testing"
	"time"

	"go-wms-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductFlows(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTransactionRepo(db)

	rice := createProduct(t, db, "Jasmine Rice 5kg", "Food", 150000, 80)
	sauce := createProduct(t, db, "Fish Sauce 500ml", "Condiments", 45000, 200)
	keeper := createEmployee(t, db, "Le Thi Binh")

	supplier := model.Supplier{Name: "Minh Phat Trading"}
	require.NoError(t, db.Create(&supplier).Error)
	customer := model.Customer{Name: "Bach Hoa Xanh"}
	require.NoError(t, db.Create(&customer).Error)

	date := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	createImport(t, db, rice.ID, keeper.ID, supplier.ID, 100, 110000, date)
	createImport(t, db, rice.ID, keeper.ID, supplier.ID, 50, 110000, date)
	createExport(t, db, rice.ID, keeper.ID, customer.ID, 20, 150000, date)
	createImport(t, db, sauce.ID, keeper.ID, supplier.ID, 200, 30000, date)

	flows, err := repo.ProductFlows()
	require.NoError(t, err)
	require.Len(t, flows, 3)

	totals := make(map[string]map[model.TransactionKind]int)
	for _, f := range flows {
		if totals[f.ProductID] == nil {
			totals[f.ProductID] = make(map[model.TransactionKind]int)
		}
		totals[f.ProductID][f.Kind] = f.Total
	}

	assert.Equal(t, 150, totals[rice.ID][model.KindImport])
	assert.Equal(t, 20, totals[rice.ID][model.KindExport])
	assert.Equal(t, 200, totals[sauce.ID][model.KindImport])
}

func TestFindExportsByCustomer(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTransactionRepo(db)

	rice := createProduct(t, db, "Jasmine Rice 5kg", "Food", 150000, 80)
	seller := createEmployee(t, db, "Tran Van An")

	supplier := model.Supplier{Name: "Minh Phat Trading"}
	require.NoError(t, db.Create(&supplier).Error)
	buyer := model.Customer{Name: "Bach Hoa Xanh"}
	require.NoError(t, db.Create(&buyer).Error)
	other := model.Customer{Name: "Coopmart Retail"}
	require.NoError(t, db.Create(&other).Error)

	first := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	second := time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC)
	createExport(t, db, rice.ID, seller.ID, buyer.ID, 5, 150000, second)
	createExport(t, db, rice.ID, seller.ID, buyer.ID, 10, 150000, first)
	createExport(t, db, rice.ID, seller.ID, other.ID, 3, 150000, first)
	createImport(t, db, rice.ID, seller.ID, supplier.ID, 100, 110000, first)

	orders, err := repo.FindExportsByCustomer(buyer.ID)
	require.NoError(t, err)
	require.Len(t, orders, 2)

	// Oldest first.
	assert.Equal(t, 10, orders[0].Quantity)
	assert.Equal(t, 5, orders[1].Quantity)
}

func TestGetDashboardStats(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTransactionRepo(db)

	rice := createProduct(t, db, "Jasmine Rice 5kg", "Food", 100, 10)
	sauce := createProduct(t, db, "Fish Sauce 500ml", "Condiments", 50, 20)
	seller := createEmployee(t, db, "Tran Van An")

	supplier := model.Supplier{Name: "Minh Phat Trading"}
	require.NoError(t, db.Create(&supplier).Error)
	customer := model.Customer{Name: "Bach Hoa Xanh"}
	require.NoError(t, db.Create(&customer).Error)

	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	thisMonth := time.Date(2026, 8, 5, 0, 0, 0, 0, time.UTC)
	lastMonth := time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)

	createExport(t, db, rice.ID, seller.ID, customer.ID, 2, 100, thisMonth)
	createExport(t, db, rice.ID, seller.ID, customer.ID, 4, 100, lastMonth)
	createExport(t, db, sauce.ID, seller.ID, customer.ID, 1, 50, lastMonth)
	createImport(t, db, rice.ID, seller.ID, supplier.ID, 100, 70, thisMonth)

	stats, err := repo.GetDashboardStats(now)
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalProducts)
	// 10*100 + 20*50
	assert.Equal(t, 2000.0, stats.TotalInventoryValue)
	// Exports dated in the month of "now".
	assert.Equal(t, int64(1), stats.NewOrders)
	// 4*100 + 1*50 from July.
	assert.Equal(t, 450.0, stats.TotalRevenueLastMonth)
	assert.Equal(t, int64(4), stats.PendingTransactions)
	assert.Equal(t, "Jasmine Rice 5kg", stats.TopSellingProduct)
}

func TestGetDashboardStatsEmpty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTransactionRepo(db)

	stats, err := repo.GetDashboardStats(time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, int64(0), stats.TotalProducts)
	assert.Equal(t, 0.0, stats.TotalInventoryValue)
	assert.Equal(t, "N/A", stats.TopSellingProduct)
}

func TestTransactionFindAllSearch(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTransactionRepo(db)

	rice := createProduct(t, db, "Jasmine Rice 5kg", "Food", 150000, 80)
	seller := createEmployee(t, db, "Tran Van An")
	customer := model.Customer{Name: "Bach Hoa Xanh"}
	require.NoError(t, db.Create(&customer).Error)

	date := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	created := createExport(t, db, rice.ID, seller.ID, customer.ID, 5, 150000, date)

	results, err := repo.FindAll(created.ID)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, created.ID, results[0].ID)

	results, err = repo.FindAll(rice.ID)
	require.NoError(t, err)
	assert.Len(t, results, 1)

	results, err = repo.FindAll("TXNOPE")
	require.NoError(t, err)
	assert.Empty(t, results)
}
