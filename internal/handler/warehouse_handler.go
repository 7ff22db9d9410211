package handler

import (
	"go-wms-backend/internal/model"
	"go-wms-backend/internal/repository"
	"go-wms-backend/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

// WarehouseHandler serves warehouses and their per-warehouse inventory
// rows. Inventory.stock is independent of Product.stock by design.
type WarehouseHandler struct {
	warehouseRepo repository.WarehouseRepository
	inventoryRepo repository.InventoryRepository
}

func NewWarehouseHandler(wRepo repository.WarehouseRepository, iRepo repository.InventoryRepository) *WarehouseHandler {
	return &WarehouseHandler{warehouseRepo: wRepo, inventoryRepo: iRepo}
}

func (h *WarehouseHandler) GetWarehouses(c *fiber.Ctx) error {
	warehouses, err := h.warehouseRepo.FindAll(c.Query("search"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(warehouses)
}

func (h *WarehouseHandler) CreateWarehouse(c *fiber.Ctx) error {
	var warehouse model.Warehouse
	if err := c.BodyParser(&warehouse); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if errs := validator.ValidateStruct(&warehouse); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Field '" + errs[0].FailedField + "' failed on tag '" + errs[0].Tag + "'"})
	}

	warehouse.CreatedBy = getUserID(c)
	warehouse.UpdatedBy = getUserID(c)

	if err := h.warehouseRepo.Create(&warehouse); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Warehouse created", "data": warehouse})
}

func (h *WarehouseHandler) UpdateWarehouse(c *fiber.Ctx) error {
	existing, err := h.warehouseRepo.FindByID(c.Params("id"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Warehouse not found"})
	}

	var req model.Warehouse
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	existing.Name = req.Name
	existing.Location = req.Location
	existing.Capacity = req.Capacity
	existing.UpdatedBy = getUserID(c)

	if errs := validator.ValidateStruct(existing); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Field '" + errs[0].FailedField + "' failed on tag '" + errs[0].Tag + "'"})
	}

	if err := h.warehouseRepo.Update(existing); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Warehouse updated", "data": existing})
}

func (h *WarehouseHandler) DeleteWarehouse(c *fiber.Ctx) error {
	if _, err := h.warehouseRepo.FindByID(c.Params("id")); err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Warehouse not found"})
	}
	if err := h.warehouseRepo.Delete(c.Params("id")); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *WarehouseHandler) GetInventory(c *fiber.Ctx) error {
	items, err := h.inventoryRepo.FindAll()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(items)
}

func (h *WarehouseHandler) CreateInventory(c *fiber.Ctx) error {
	var item model.Inventory
	if err := c.BodyParser(&item); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if errs := validator.ValidateStruct(&item); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Field '" + errs[0].FailedField + "' failed on tag '" + errs[0].Tag + "'"})
	}

	if err := h.inventoryRepo.Create(&item); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Inventory item created", "data": item})
}

// InventoryUpdateRequest only carries the stock counter; the composite
// key comes from the path.
type InventoryUpdateRequest struct {
	Stock int `json:"stock"`
}

func (h *WarehouseHandler) UpdateInventory(c *fiber.Ctx) error {
	productID := c.Params("productID")
	warehouseID := c.Params("warehouseID")

	if _, err := h.inventoryRepo.FindByKey(productID, warehouseID); err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Inventory item not found"})
	}

	var req InventoryUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if req.Stock < 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Stock must not be negative"})
	}

	if err := h.inventoryRepo.UpdateStock(productID, warehouseID, req.Stock); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	item, err := h.inventoryRepo.FindByKey(productID, warehouseID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(fiber.Map{"message": "Inventory updated", "data": item})
}

func (h *WarehouseHandler) DeleteInventory(c *fiber.Ctx) error {
	productID := c.Params("productID")
	warehouseID := c.Params("warehouseID")

	if _, err := h.inventoryRepo.FindByKey(productID, warehouseID); err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Inventory item not found"})
	}
	if err := h.inventoryRepo.Delete(productID, warehouseID); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
