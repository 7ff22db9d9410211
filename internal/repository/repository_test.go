package repository

import (
	"testing"
	"time"

	"go-wms-backend/internal/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// In-memory sqlite gives each connection its own database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.Department{},
		&model.Employee{},
		&model.Product{},
		&model.Supplier{},
		&model.Customer{},
		&model.Warehouse{},
		&model.Inventory{},
		&model.Transaction{},
		&model.User{},
	))
	return db
}

func createProduct(t *testing.T, db *gorm.DB, name, category string, price float64, stock int) model.Product {
	t.Helper()
	p := model.Product{Name: name, Category: category, Price: price, Stock: stock}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func createEmployee(t *testing.T, db *gorm.DB, name string) model.Employee {
	t.Helper()
	e := model.Employee{Name: name}
	require.NoError(t, db.Create(&e).Error)
	return e
}

func createExport(t *testing.T, db *gorm.DB, productID, employeeID, customerID string, qty int, price float64, date time.Time) model.Transaction {
	t.Helper()
	tx := model.Transaction{
		Kind: model.KindExport, ProductID: productID, EmployeeID: employeeID,
		CustomerID: &customerID, Quantity: qty, UnitPrice: price, Date: date,
	}
	require.NoError(t, db.Create(&tx).Error)
	return tx
}

func createImport(t *testing.T, db *gorm.DB, productID, employeeID, supplierID string, qty int, price float64, date time.Time) model.Transaction {
	t.Helper()
	tx := model.Transaction{
		Kind: model.KindImport, ProductID: productID, EmployeeID: employeeID,
		SupplierID: &supplierID, Quantity: qty, UnitPrice: price, Date: date,
	}
	require.NoError(t, db.Create(&tx).Error)
	return tx
}
