package service

import (
	"testing"
	"time"

	"go-wms-backend/internal/model"
	"go-wms-backend/internal/repository"
	"go-wms-backend/internal/ws"

	"github.com/stretchr/testify/assert"
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

func newTestService(t *testing.T, db *gorm.DB) InventoryService {
	t.Helper()
	hub := ws.NewHub()
	go hub.Run()
	return NewInventoryService(
		repository.NewProductRepo(db),
		repository.NewEmployeeRepo(db),
		repository.NewTransactionRepo(db),
		db,
		hub,
	)
}

func seedFixtures(t *testing.T, db *gorm.DB, stock int) (product model.Product, employee model.Employee, supplier model.Supplier, customer model.Customer) {
	t.Helper()
	product = model.Product{Name: "Jasmine Rice 5kg", Category: "Food", Price: 100, ImportCost: 70, Stock: stock}
	require.NoError(t, db.Create(&product).Error)
	employee = model.Employee{Name: "Tran Van An", Position: "Sales Staff"}
	require.NoError(t, db.Create(&employee).Error)
	supplier = model.Supplier{Name: "Minh Phat Trading"}
	require.NoError(t, db.Create(&supplier).Error)
	customer = model.Customer{Name: "Bach Hoa Xanh"}
	require.NoError(t, db.Create(&customer).Error)
	return
}

func testDate() time.Time {
	return time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
}

func TestRecordTransactionImportIncreasesStock(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db)
	product, employee, supplier, _ := seedFixtures(t, db, 50)

	created, err := svc.RecordTransaction(&model.Transaction{
		Kind:       model.KindImport,
		ProductID:  product.ID,
		EmployeeID: employee.ID,
		SupplierID: &supplier.ID,
		Quantity:   10,
		UnitPrice:  70,
		Date:       testDate(),
	}, "US1", "Tester")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	var fresh model.Product
	require.NoError(t, db.First(&fresh, "id = ?", product.ID).Error)
	assert.Equal(t, 60, fresh.Stock)
}

func TestRecordTransactionExportDecreasesStockAndCreditsRevenue(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db)
	product, employee, _, customer := seedFixtures(t, db, 60)

	_, err := svc.RecordTransaction(&model.Transaction{
		Kind:       model.KindExport,
		ProductID:  product.ID,
		EmployeeID: employee.ID,
		CustomerID: &customer.ID,
		Quantity:   5,
		UnitPrice:  100,
		Date:       testDate(),
	}, "US1", "Tester")
	require.NoError(t, err)

	var freshProduct model.Product
	require.NoError(t, db.First(&freshProduct, "id = ?", product.ID).Error)
	assert.Equal(t, 55, freshProduct.Stock)

	var freshEmployee model.Employee
	require.NoError(t, db.First(&freshEmployee, "id = ?", employee.ID).Error)
	assert.Equal(t, 500.0, freshEmployee.RevenueContribution)
}

func TestRecordTransactionInsufficientStock(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db)
	product, employee, _, customer := seedFixtures(t, db, 5)

	_, err := svc.RecordTransaction(&model.Transaction{
		Kind:       model.KindExport,
		ProductID:  product.ID,
		EmployeeID: employee.ID,
		CustomerID: &customer.ID,
		Quantity:   10,
		UnitPrice:  100,
		Date:       testDate(),
	}, "US1", "Tester")
	require.ErrorIs(t, err, ErrInsufficientStock)

	// Nothing committed: counters and the transaction table are untouched.
	var freshProduct model.Product
	require.NoError(t, db.First(&freshProduct, "id = ?", product.ID).Error)
	assert.Equal(t, 5, freshProduct.Stock)

	var freshEmployee model.Employee
	require.NoError(t, db.First(&freshEmployee, "id = ?", employee.ID).Error)
	assert.Equal(t, 0.0, freshEmployee.RevenueContribution)

	var count int64
	db.Model(&model.Transaction{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestRecordTransactionPartnerMismatch(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db)
	product, employee, supplier, customer := seedFixtures(t, db, 50)

	cases := []struct {
		name string
		tx   model.Transaction
	}{
		{"import without supplier", model.Transaction{
			Kind: model.KindImport, ProductID: product.ID, EmployeeID: employee.ID,
			Quantity: 1, UnitPrice: 1, Date: testDate(),
		}},
		{"export without customer", model.Transaction{
			Kind: model.KindExport, ProductID: product.ID, EmployeeID: employee.ID,
			Quantity: 1, UnitPrice: 1, Date: testDate(),
		}},
		{"import with customer", model.Transaction{
			Kind: model.KindImport, ProductID: product.ID, EmployeeID: employee.ID,
			SupplierID: &supplier.ID, CustomerID: &customer.ID,
			Quantity: 1, UnitPrice: 1, Date: testDate(),
		}},
		{"export with supplier", model.Transaction{
			Kind: model.KindExport, ProductID: product.ID, EmployeeID: employee.ID,
			SupplierID: &supplier.ID, CustomerID: &customer.ID,
			Quantity: 1, UnitPrice: 1, Date: testDate(),
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tx := tc.tx
			_, err := svc.RecordTransaction(&tx, "US1", "Tester")
			assert.Error(t, err)
		})
	}
}

func TestRecordTransactionUnknownProductAndEmployee(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db)
	product, _, supplier, _ := seedFixtures(t, db, 50)

	_, err := svc.RecordTransaction(&model.Transaction{
		Kind: model.KindImport, ProductID: "SPMISSING", EmployeeID: "NVMISSING",
		SupplierID: &supplier.ID, Quantity: 1, UnitPrice: 1, Date: testDate(),
	}, "US1", "Tester")
	assert.ErrorIs(t, err, ErrProductNotFound)

	_, err = svc.RecordTransaction(&model.Transaction{
		Kind: model.KindImport, ProductID: product.ID, EmployeeID: "NVMISSING",
		SupplierID: &supplier.ID, Quantity: 1, UnitPrice: 1, Date: testDate(),
	}, "US1", "Tester")
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestDeleteTransactionReversesImport(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db)
	product, employee, supplier, _ := seedFixtures(t, db, 50)

	created, err := svc.RecordTransaction(&model.Transaction{
		Kind: model.KindImport, ProductID: product.ID, EmployeeID: employee.ID,
		SupplierID: &supplier.ID, Quantity: 10, UnitPrice: 70, Date: testDate(),
	}, "US1", "Tester")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTransaction(created.ID, "US1", "Tester"))

	var fresh model.Product
	require.NoError(t, db.First(&fresh, "id = ?", product.ID).Error)
	assert.Equal(t, 50, fresh.Stock)

	_, err = svc.GetTransactionByID(created.ID)
	assert.ErrorIs(t, err, ErrTransactionNotFound)
}

func TestDeleteTransactionReversesExport(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db)
	product, employee, _, customer := seedFixtures(t, db, 60)

	created, err := svc.RecordTransaction(&model.Transaction{
		Kind: model.KindExport, ProductID: product.ID, EmployeeID: employee.ID,
		CustomerID: &customer.ID, Quantity: 5, UnitPrice: 100, Date: testDate(),
	}, "US1", "Tester")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTransaction(created.ID, "US1", "Tester"))

	var freshProduct model.Product
	require.NoError(t, db.First(&freshProduct, "id = ?", product.ID).Error)
	assert.Equal(t, 60, freshProduct.Stock)

	var freshEmployee model.Employee
	require.NoError(t, db.First(&freshEmployee, "id = ?", employee.ID).Error)
	assert.Equal(t, 0.0, freshEmployee.RevenueContribution)
}

func TestDeleteTransactionMissing(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db)
	seedFixtures(t, db, 50)

	err := svc.DeleteTransaction("TXMISSING", "US1", "Tester")
	assert.ErrorIs(t, err, ErrTransactionNotFound)
}

func TestDeleteTransactionSkipsRemovedProduct(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db)
	product, employee, supplier, _ := seedFixtures(t, db, 50)

	created, err := svc.RecordTransaction(&model.Transaction{
		Kind: model.KindImport, ProductID: product.ID, EmployeeID: employee.ID,
		SupplierID: &supplier.ID, Quantity: 10, UnitPrice: 70, Date: testDate(),
	}, "US1", "Tester")
	require.NoError(t, err)

	require.NoError(t, db.Delete(&model.Product{}, "id = ?", product.ID).Error)

	// The orphaned transaction still deletes cleanly.
	require.NoError(t, svc.DeleteTransaction(created.ID, "US1", "Tester"))

	_, err = svc.GetTransactionByID(created.ID)
	assert.ErrorIs(t, err, ErrTransactionNotFound)
}

func TestStockConservationOverSequence(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db)
	product, employee, supplier, customer := seedFixtures(t, db, 100)

	steps := []struct {
		kind model.TransactionKind
		qty  int
	}{
		{model.KindImport, 30},
		{model.KindExport, 40},
		{model.KindImport, 5},
		{model.KindExport, 25},
	}

	expected := 100
	for _, step := range steps {
		tx := model.Transaction{
			Kind: step.kind, ProductID: product.ID, EmployeeID: employee.ID,
			Quantity: step.qty, UnitPrice: 10, Date: testDate(),
		}
		if step.kind == model.KindImport {
			tx.SupplierID = &supplier.ID
			expected += step.qty
		} else {
			tx.CustomerID = &customer.ID
			expected -= step.qty
		}
		_, err := svc.RecordTransaction(&tx, "US1", "Tester")
		require.NoError(t, err)
	}

	var fresh model.Product
	require.NoError(t, db.First(&fresh, "id = ?", product.ID).Error)
	assert.Equal(t, expected, fresh.Stock)
}

func TestCreateProductRejectsDuplicateName(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db)
	seedFixtures(t, db, 50)

	err := svc.CreateProduct(&model.Product{Name: "Jasmine Rice 5kg"}, "US1")
	assert.ErrorIs(t, err, ErrProductNameTaken)
}

func TestUpdateProductMissing(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db)

	_, err := svc.UpdateProduct("SPMISSING", &model.Product{Name: "Anything"}, "US1")
	assert.ErrorIs(t, err, ErrProductNotFound)
}
