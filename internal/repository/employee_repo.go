package repository

import (
	"strings"

	"go-wms-backend/internal/model"

	"gorm.io/gorm"
)

type EmployeeRepository interface {
	Create(employee *model.Employee) error
	FindAll(search string) ([]model.Employee, error)
	FindByID(id string) (*model.Employee, error)
	Update(employee *model.Employee) error
	Delete(id string) error
	AddRevenue(tx *gorm.DB, id string, amount float64) error
}

type employeeRepo struct {
	db *gorm.DB
}

func NewEmployeeRepo(db *gorm.DB) EmployeeRepository {
	return &employeeRepo{db}
}

func (r *employeeRepo) Create(employee *model.Employee) error {
	return r.db.Create(employee).Error
}

func (r *employeeRepo) FindAll(search string) ([]model.Employee, error) {
	var employees []model.Employee
	q := r.db.Preload("Department")
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(id) LIKE ? OR LOWER(name) LIKE ? OR LOWER(position) LIKE ?", like, like, like)
	}
	err := q.Order("created_at DESC").Find(&employees).Error
	return employees, err
}

func (r *employeeRepo) FindByID(id string) (*model.Employee, error) {
	var employee model.Employee
	err := r.db.Preload("Department").First(&employee, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepo) Update(employee *model.Employee) error {
	return r.db.Save(employee).Error
}

func (r *employeeRepo) Delete(id string) error {
	return r.db.Delete(&model.Employee{}, "id = ?", id).Error
}

// AddRevenue runs inside the caller's transaction. Amount is negative
// when an export transaction is deleted.
func (r *employeeRepo) AddRevenue(tx *gorm.DB, id string, amount float64) error {
	return tx.Model(&model.Employee{}).
		Where("id = ?", id).
		Update("revenue_contribution", gorm.Expr("revenue_contribution + ?", amount)).Error
}
