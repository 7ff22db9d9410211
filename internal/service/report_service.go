package service

import (
	"time"

	"go-wms-backend/internal/model"
	"go-wms-backend/internal/repository"
)

type ReportService interface {
	GetInventoryReport() ([]InventoryReportRow, error)
	GetMonthlyRevenue() ([]MonthlyRevenue, error)
	GetDashboardStats() (*repository.DashboardStats, error)
}

// InventoryReportRow summarizes one product's position: the live
// counter plus cumulative movement in both directions.
type InventoryReportRow struct {
	ProductID    string `json:"product_id"`
	ProductName  string `json:"product_name"`
	CurrentStock int    `json:"current_stock"`
	TotalImports int    `json:"total_imports"`
	TotalExports int    `json:"total_exports"`
}

// MonthlyRevenue is one "YYYY-MM" bucket of summed export revenue.
type MonthlyRevenue struct {
	Month        string  `json:"month"`
	TotalRevenue float64 `json:"total_revenue"`
}

type reportService struct {
	productRepo     repository.ProductRepository
	transactionRepo repository.TransactionRepository
}

func NewReportService(pRepo repository.ProductRepository, tRepo repository.TransactionRepository) ReportService {
	return &reportService{productRepo: pRepo, transactionRepo: tRepo}
}

func (s *reportService) GetInventoryReport() ([]InventoryReportRow, error) {
	products, err := s.productRepo.FindAll("")
	if err != nil {
		return nil, err
	}

	flows, err := s.transactionRepo.ProductFlows()
	if err != nil {
		return nil, err
	}

	imports := make(map[string]int)
	exports := make(map[string]int)
	for _, f := range flows {
		if f.Kind == model.KindImport {
			imports[f.ProductID] = f.Total
		} else {
			exports[f.ProductID] = f.Total
		}
	}

	report := make([]InventoryReportRow, 0, len(products))
	for _, p := range products {
		report = append(report, InventoryReportRow{
			ProductID:    p.ID,
			ProductName:  p.Name,
			CurrentStock: p.Stock,
			TotalImports: imports[p.ID],
			TotalExports: exports[p.ID],
		})
	}
	return report, nil
}

// GetMonthlyRevenue buckets export rows per calendar month in Go so the
// same query runs unchanged on Postgres and the sqlite test driver.
func (s *reportService) GetMonthlyRevenue() ([]MonthlyRevenue, error) {
	rows, err := s.transactionRepo.ExportRevenueRows()
	if err != nil {
		return nil, err
	}

	var report []MonthlyRevenue
	index := make(map[string]int)
	for _, row := range rows {
		month := row.Date.Format("2006-01")
		if i, ok := index[month]; ok {
			report[i].TotalRevenue += row.Amount
			continue
		}
		index[month] = len(report)
		report = append(report, MonthlyRevenue{Month: month, TotalRevenue: row.Amount})
	}
	return report, nil
}

func (s *reportService) GetDashboardStats() (*repository.DashboardStats, error) {
	return s.transactionRepo.GetDashboardStats(time.Now())
}
