package repository

import (
	"go-wms-backend/internal/model"

	"gorm.io/gorm"
)

type InventoryRepository interface {
	Create(item *model.Inventory) error
	FindAll() ([]model.Inventory, error)
	FindByKey(productID, warehouseID string) (*model.Inventory, error)
	UpdateStock(productID, warehouseID string, stock int) error
	Delete(productID, warehouseID string) error
}

type inventoryRepo struct {
	db *gorm.DB
}

func NewInventoryRepo(db *gorm.DB) InventoryRepository {
	return &inventoryRepo{db}
}

func (r *inventoryRepo) Create(item *model.Inventory) error {
	return r.db.Create(item).Error
}

func (r *inventoryRepo) FindAll() ([]model.Inventory, error) {
	var items []model.Inventory
	err := r.db.Preload("Product").Preload("Warehouse").Find(&items).Error
	return items, err
}

func (r *inventoryRepo) FindByKey(productID, warehouseID string) (*model.Inventory, error) {
	var item model.Inventory
	err := r.db.First(&item, "product_id = ? AND warehouse_id = ?", productID, warehouseID).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *inventoryRepo) UpdateStock(productID, warehouseID string, stock int) error {
	return r.db.Model(&model.Inventory{}).
		Where("product_id = ? AND warehouse_id = ?", productID, warehouseID).
		Update("stock", stock).Error
}

func (r *inventoryRepo) Delete(productID, warehouseID string) error {
	return r.db.Delete(&model.Inventory{}, "product_id = ? AND warehouse_id = ?", productID, warehouseID).Error
}
