package handler

import (
	"go-wms-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	service service.ReportService
}

func NewReportHandler(s service.ReportService) *ReportHandler {
	return &ReportHandler{service: s}
}

// GetInventoryReport returns current stock and cumulative in/out
// quantities per product
func (h *ReportHandler) GetInventoryReport(c *fiber.Ctx) error {
	report, err := h.service.GetInventoryReport()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build inventory report"})
	}
	return c.JSON(report)
}

// GetRevenueReport returns export revenue summed per calendar month
func (h *ReportHandler) GetRevenueReport(c *fiber.Ctx) error {
	report, err := h.service.GetMonthlyRevenue()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build revenue report"})
	}
	return c.JSON(report)
}

// GetDashboardStats returns overview statistics
func (h *ReportHandler) GetDashboardStats(c *fiber.Ctx) error {
	stats, err := h.service.GetDashboardStats()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch dashboard stats"})
	}
	return c.JSON(stats)
}
