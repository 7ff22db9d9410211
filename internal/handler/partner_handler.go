package handler

import (
	"time"

	"go-wms-backend/internal/model"
	"go-wms-backend/internal/repository"
	"go-wms-backend/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

// PartnerHandler serves the two trading-partner entities: suppliers
// (import side) and customers (export side).
type PartnerHandler struct {
	supplierRepo    repository.SupplierRepository
	customerRepo    repository.CustomerRepository
	transactionRepo repository.TransactionRepository
}

func NewPartnerHandler(
	sRepo repository.SupplierRepository,
	cRepo repository.CustomerRepository,
	tRepo repository.TransactionRepository,
) *PartnerHandler {
	return &PartnerHandler{supplierRepo: sRepo, customerRepo: cRepo, transactionRepo: tRepo}
}

func (h *PartnerHandler) GetSuppliers(c *fiber.Ctx) error {
	suppliers, err := h.supplierRepo.FindAll(c.Query("search"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(suppliers)
}

func (h *PartnerHandler) CreateSupplier(c *fiber.Ctx) error {
	var supplier model.Supplier
	if err := c.BodyParser(&supplier); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if errs := validator.ValidateStruct(&supplier); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Field '" + errs[0].FailedField + "' failed on tag '" + errs[0].Tag + "'"})
	}

	supplier.CreatedBy = getUserID(c)
	supplier.UpdatedBy = getUserID(c)

	if err := h.supplierRepo.Create(&supplier); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Supplier created", "data": supplier})
}

func (h *PartnerHandler) UpdateSupplier(c *fiber.Ctx) error {
	existing, err := h.supplierRepo.FindByID(c.Params("id"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Supplier not found"})
	}

	var req model.Supplier
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	existing.Name = req.Name
	existing.ContactPerson = req.ContactPerson
	existing.Phone = req.Phone
	existing.Email = req.Email
	existing.Address = req.Address
	existing.UpdatedBy = getUserID(c)

	if errs := validator.ValidateStruct(existing); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Field '" + errs[0].FailedField + "' failed on tag '" + errs[0].Tag + "'"})
	}

	if err := h.supplierRepo.Update(existing); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Supplier updated", "data": existing})
}

func (h *PartnerHandler) DeleteSupplier(c *fiber.Ctx) error {
	if _, err := h.supplierRepo.FindByID(c.Params("id")); err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Supplier not found"})
	}
	if err := h.supplierRepo.Delete(c.Params("id")); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *PartnerHandler) GetCustomers(c *fiber.Ctx) error {
	customers, err := h.customerRepo.FindAll(c.Query("search"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(customers)
}

func (h *PartnerHandler) CreateCustomer(c *fiber.Ctx) error {
	var customer model.Customer
	if err := c.BodyParser(&customer); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if errs := validator.ValidateStruct(&customer); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Field '" + errs[0].FailedField + "' failed on tag '" + errs[0].Tag + "'"})
	}

	customer.CreatedBy = getUserID(c)
	customer.UpdatedBy = getUserID(c)

	if err := h.customerRepo.Create(&customer); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Customer created", "data": customer})
}

func (h *PartnerHandler) UpdateCustomer(c *fiber.Ctx) error {
	existing, err := h.customerRepo.FindByID(c.Params("id"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Customer not found"})
	}

	var req model.Customer
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	existing.Name = req.Name
	existing.Phone = req.Phone
	existing.Address = req.Address
	existing.UpdatedBy = getUserID(c)

	if err := h.customerRepo.Update(existing); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Customer updated", "data": existing})
}

func (h *PartnerHandler) DeleteCustomer(c *fiber.Ctx) error {
	if _, err := h.customerRepo.FindByID(c.Params("id")); err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Customer not found"})
	}
	if err := h.customerRepo.Delete(c.Params("id")); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// OrderResponse is one line of a customer's purchase history.
type OrderResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	Quantity    int       `json:"quantity"`
	TotalAmount float64   `json:"total_amount"`
	Date        time.Time `json:"date"`
}

func (h *PartnerHandler) GetCustomerOrders(c *fiber.Ctx) error {
	customerID := c.Params("id")
	if _, err := h.customerRepo.FindByID(customerID); err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Customer not found"})
	}

	orders, err := h.transactionRepo.FindExportsByCustomer(customerID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	response := make([]OrderResponse, 0, len(orders))
	for _, order := range orders {
		response = append(response, OrderResponse{
			ID:          order.ID,
			ProductID:   order.ProductID,
			Quantity:    order.Quantity,
			TotalAmount: order.TotalAmount(),
			Date:        order.Date,
		})
	}
	return c.JSON(response)
}
