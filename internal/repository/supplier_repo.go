package repository

import (
	"strings"

	"go-wms-backend/internal/model"

	"gorm.io/gorm"
)

type SupplierRepository interface {
	Create(supplier *model.Supplier) error
	FindAll(search string) ([]model.Supplier, error)
	FindByID(id string) (*model.Supplier, error)
	Update(supplier *model.Supplier) error
	Delete(id string) error
}

type supplierRepo struct {
	db *gorm.DB
}

func NewSupplierRepo(db *gorm.DB) SupplierRepository {
	return &supplierRepo{db}
}

func (r *supplierRepo) Create(supplier *model.Supplier) error {
	return r.db.Create(supplier).Error
}

func (r *supplierRepo) FindAll(search string) ([]model.Supplier, error) {
	var suppliers []model.Supplier
	q := r.db.Model(&model.Supplier{})
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(id) LIKE ? OR LOWER(name) LIKE ? OR LOWER(contact_person) LIKE ?", like, like, like)
	}
	err := q.Order("created_at DESC").Find(&suppliers).Error
	return suppliers, err
}

func (r *supplierRepo) FindByID(id string) (*model.Supplier, error) {
	var supplier model.Supplier
	err := r.db.First(&supplier, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (r *supplierRepo) Update(supplier *model.Supplier) error {
	return r.db.Save(supplier).Error
}

func (r *supplierRepo) Delete(id string) error {
	return r.db.Delete(&model.Supplier{}, "id = ?", id).Error
}
