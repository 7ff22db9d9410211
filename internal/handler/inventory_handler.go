package handler

import (
	"errors"
	"time"

	"go-wms-backend/internal/model"
	"go-wms-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type InventoryHandler struct {
	service service.InventoryService
}

func NewInventoryHandler(s service.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: s}
}

// Helpers to read user info from the JWT context (set by auth middleware)
func getUserID(c *fiber.Ctx) string {
	userID := c.Locals("user_id")
	if userID == nil {
		return "system"
	}
	return userID.(string)
}

func getUserName(c *fiber.Ctx) string {
	userName := c.Locals("user_name")
	if userName == nil {
		return "Unknown"
	}
	return userName.(string)
}

// statusForError maps service errors onto HTTP statuses.
func statusForError(err error) int {
	switch {
	case errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrEmployeeNotFound),
		errors.Is(err, service.ErrTransactionNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrProductNameTaken):
		return fiber.StatusConflict
	default:
		return fiber.StatusBadRequest
	}
}

func (h *InventoryHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetProducts(c.Query("search"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(products)
}

func (h *InventoryHandler) CreateProduct(c *fiber.Ctx) error {
	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreateProduct(&product, getUserID(c)); err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Product created", "data": product})
}

func (h *InventoryHandler) UpdateProduct(c *fiber.Ctx) error {
	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.UpdateProduct(c.Params("id"), &product, getUserID(c))
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Product updated", "data": updated})
}

func (h *InventoryHandler) DeleteProduct(c *fiber.Ctx) error {
	if err := h.service.DeleteProduct(c.Params("id")); err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// TransactionRequest is the wire shape of a stock event. Date arrives
// as a plain calendar day.
type TransactionRequest struct {
	Kind       string  `json:"kind"`
	ProductID  string  `json:"product_id"`
	EmployeeID string  `json:"employee_id"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	Date       string  `json:"date"`
	SupplierID *string `json:"supplier_id"`
	CustomerID *string `json:"customer_id"`
}

func (h *InventoryHandler) CreateTransaction(c *fiber.Ctx) error {
	var req TransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date, expected YYYY-MM-DD"})
	}

	tx := model.Transaction{
		Kind:       model.TransactionKind(req.Kind),
		ProductID:  req.ProductID,
		EmployeeID: req.EmployeeID,
		Quantity:   req.Quantity,
		UnitPrice:  req.UnitPrice,
		Date:       date,
		SupplierID: req.SupplierID,
		CustomerID: req.CustomerID,
	}

	created, err := h.service.RecordTransaction(&tx, getUserID(c), getUserName(c))
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Transaction recorded", "data": created})
}

func (h *InventoryHandler) DeleteTransaction(c *fiber.Ctx) error {
	if err := h.service.DeleteTransaction(c.Params("id"), getUserID(c), getUserName(c)); err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *InventoryHandler) GetTransactions(c *fiber.Ctx) error {
	transactions, err := h.service.GetTransactions(c.Query("search"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(transactions)
}

func (h *InventoryHandler) GetTransaction(c *fiber.Ctx) error {
	tx, err := h.service.GetTransactionByID(c.Params("id"))
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(tx)
}
