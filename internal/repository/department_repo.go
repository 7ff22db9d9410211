package repository

import (
	"strings"

	"go-wms-backend/internal/model"

	"gorm.io/gorm"
)

type DepartmentRepository interface {
	Create(department *model.Department) error
	FindAll(search string) ([]model.Department, error)
	FindByID(id string) (*model.Department, error)
	FindByName(name string) (*model.Department, error)
	Update(department *model.Department) error
	Delete(id string) error
}

type departmentRepo struct {
	db *gorm.DB
}

func NewDepartmentRepo(db *gorm.DB) DepartmentRepository {
	return &departmentRepo{db}
}

func (r *departmentRepo) Create(department *model.Department) error {
	return r.db.Create(department).Error
}

func (r *departmentRepo) FindAll(search string) ([]model.Department, error) {
	var departments []model.Department
	q := r.db.Model(&model.Department{})
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(id) LIKE ? OR LOWER(name) LIKE ? OR LOWER(phone) LIKE ?", like, like, like)
	}
	err := q.Order("created_at DESC").Find(&departments).Error
	return departments, err
}

func (r *departmentRepo) FindByID(id string) (*model.Department, error) {
	var department model.Department
	err := r.db.First(&department, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &department, nil
}

func (r *departmentRepo) FindByName(name string) (*model.Department, error) {
	var department model.Department
	err := r.db.First(&department, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &department, nil
}

func (r *departmentRepo) Update(department *model.Department) error {
	return r.db.Save(department).Error
}

func (r *departmentRepo) Delete(id string) error {
	return r.db.Delete(&model.Department{}, "id = ?", id).Error
}
