package repository

import (
	"strings"
	"time"

	"go-wms-backend/internal/model"

	"gorm.io/gorm"
)

type TransactionRepository interface {
	Create(tx *gorm.DB, t *model.Transaction) error
	Delete(tx *gorm.DB, id string) error
	FindAll(search string) ([]model.Transaction, error)
	FindByID(id string) (*model.Transaction, error)
	FindExportsByCustomer(customerID string) ([]model.Transaction, error)
	ProductFlows() ([]ProductFlow, error)
	ExportRevenueRows() ([]ExportRevenueRow, error)
	GetDashboardStats(now time.Time) (*DashboardStats, error)
}

// ProductFlow is one aggregate row: total quantity moved for a product
// in one direction.
type ProductFlow struct {
	ProductID string                `json:"product_id"`
	Kind      model.TransactionKind `json:"kind"`
	Total     int                   `json:"total"`
}

// ExportRevenueRow is one export event's date and monetary value,
// bucketed per month by the report service.
type ExportRevenueRow struct {
	Date   time.Time `json:"date"`
	Amount float64   `json:"amount"`
}

// DashboardStats for the overview screen
type DashboardStats struct {
	TotalProducts         int64   `json:"total_products"`
	NewOrders             int64   `json:"new_orders"`
	TotalInventoryValue   float64 `json:"total_inventory_value"`
	TotalRevenueLastMonth float64 `json:"total_revenue_last_month"`
	PendingTransactions   int64   `json:"pending_transactions"`
	TopSellingProduct     string  `json:"top_selling_product"`
}

type transactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepo(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db}
}

// Create and Delete take the enclosing *gorm.DB so the record write
// commits or rolls back together with the stock/revenue updates.
func (r *transactionRepo) Create(tx *gorm.DB, t *model.Transaction) error {
	return tx.Create(t).Error
}

func (r *transactionRepo) Delete(tx *gorm.DB, id string) error {
	return tx.Delete(&model.Transaction{}, "id = ?", id).Error
}

func (r *transactionRepo) FindAll(search string) ([]model.Transaction, error) {
	var transactions []model.Transaction
	q := r.db.Preload("Product").Preload("Employee").Preload("Supplier").Preload("Customer")
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where(
			"LOWER(id) LIKE ? OR LOWER(product_id) LIKE ? OR LOWER(employee_id) LIKE ? OR LOWER(supplier_id) LIKE ? OR LOWER(customer_id) LIKE ?",
			like, like, like, like, like,
		)
	}
	err := q.Order("created_at DESC").Find(&transactions).Error
	return transactions, err
}

func (r *transactionRepo) FindByID(id string) (*model.Transaction, error) {
	var transaction model.Transaction
	err := r.db.Preload("Product").Preload("Employee").First(&transaction, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (r *transactionRepo) FindExportsByCustomer(customerID string) ([]model.Transaction, error) {
	var transactions []model.Transaction
	err := r.db.
		Where("customer_id = ? AND kind = ?", customerID, model.KindExport).
		Order("date ASC").
		Find(&transactions).Error
	return transactions, err
}

// ProductFlows aggregates moved quantities per product and direction in
// a single grouped query.
func (r *transactionRepo) ProductFlows() ([]ProductFlow, error) {
	var flows []ProductFlow
	err := r.db.Model(&model.Transaction{}).
		Select("product_id, kind, COALESCE(SUM(quantity), 0) AS total").
		Group("product_id, kind").
		Scan(&flows).Error
	return flows, err
}

func (r *transactionRepo) ExportRevenueRows() ([]ExportRevenueRow, error) {
	var rows []ExportRevenueRow
	err := r.db.Model(&model.Transaction{}).
		Select("date, quantity * unit_price AS amount").
		Where("kind = ?", model.KindExport).
		Order("date ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *transactionRepo) GetDashboardStats(now time.Time) (*DashboardStats, error) {
	var stats DashboardStats

	if err := r.db.Model(&model.Product{}).Count(&stats.TotalProducts).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&model.Product{}).
		Select("COALESCE(SUM(price * stock), 0)").
		Scan(&stats.TotalInventoryValue).Error; err != nil {
		return nil, err
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	nextMonthStart := monthStart.AddDate(0, 1, 0)
	prevMonthStart := monthStart.AddDate(0, -1, 0)

	if err := r.db.Model(&model.Transaction{}).
		Where("kind = ? AND date >= ? AND date < ?", model.KindExport, monthStart, nextMonthStart).
		Count(&stats.NewOrders).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&model.Transaction{}).
		Where("kind = ? AND date >= ? AND date < ?", model.KindExport, prevMonthStart, monthStart).
		Select("COALESCE(SUM(quantity * unit_price), 0)").
		Scan(&stats.TotalRevenueLastMonth).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&model.Transaction{}).Count(&stats.PendingTransactions).Error; err != nil {
		return nil, err
	}

	var top struct {
		Name  string
		Total int64
	}
	if err := r.db.Model(&model.Transaction{}).
		Select("products.name AS name, SUM(transactions.quantity) AS total").
		Joins("JOIN products ON products.id = transactions.product_id").
		Where("transactions.kind = ?", model.KindExport).
		Group("products.name").
		Order("total DESC").
		Limit(1).
		Scan(&top).Error; err != nil {
		return nil, err
	}
	stats.TopSellingProduct = top.Name
	if stats.TopSellingProduct == "" {
		stats.TopSellingProduct = "N/A"
	}

	return &stats, nil
}
