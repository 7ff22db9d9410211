package repository

import (
	"strings"

	"go-wms-backend/internal/model"

	"gorm.io/gorm"
)

type WarehouseRepository interface {
	Create(warehouse *model.Warehouse) error
	FindAll(search string) ([]model.Warehouse, error)
	FindByID(id string) (*model.Warehouse, error)
	Update(warehouse *model.Warehouse) error
	Delete(id string) error
}

type warehouseRepo struct {
	db *gorm.DB
}

func NewWarehouseRepo(db *gorm.DB) WarehouseRepository {
	return &warehouseRepo{db}
}

func (r *warehouseRepo) Create(warehouse *model.Warehouse) error {
	return r.db.Create(warehouse).Error
}

func (r *warehouseRepo) FindAll(search string) ([]model.Warehouse, error) {
	var warehouses []model.Warehouse
	q := r.db.Model(&model.Warehouse{})
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(id) LIKE ? OR LOWER(name) LIKE ? OR LOWER(location) LIKE ?", like, like, like)
	}
	err := q.Order("created_at DESC").Find(&warehouses).Error
	return warehouses, err
}

func (r *warehouseRepo) FindByID(id string) (*model.Warehouse, error) {
	var warehouse model.Warehouse
	err := r.db.First(&warehouse, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &warehouse, nil
}

func (r *warehouseRepo) Update(warehouse *model.Warehouse) error {
	return r.db.Save(warehouse).Error
}

func (r *warehouseRepo) Delete(id string) error {
	return r.db.Delete(&model.Warehouse{}, "id = ?", id).Error
}
