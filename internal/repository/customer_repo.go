package repository

import (
	"strings"

	"go-wms-backend/internal/model"

	"gorm.io/gorm"
)

type CustomerRepository interface {
	Create(customer *model.Customer) error
	FindAll(search string) ([]model.Customer, error)
	FindByID(id string) (*model.Customer, error)
	Update(customer *model.Customer) error
	Delete(id string) error
}

type customerRepo struct {
	db *gorm.DB
}

func NewCustomerRepo(db *gorm.DB) CustomerRepository {
	return &customerRepo{db}
}

func (r *customerRepo) Create(customer *model.Customer) error {
	return r.db.Create(customer).Error
}

func (r *customerRepo) FindAll(search string) ([]model.Customer, error) {
	var customers []model.Customer
	q := r.db.Model(&model.Customer{})
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(id) LIKE ? OR LOWER(name) LIKE ? OR LOWER(phone) LIKE ?", like, like, like)
	}
	err := q.Order("created_at DESC").Find(&customers).Error
	return customers, err
}

func (r *customerRepo) FindByID(id string) (*model.Customer, error) {
	var customer model.Customer
	err := r.db.First(&customer, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepo) Update(customer *model.Customer) error {
	return r.db.Save(customer).Error
}

func (r *customerRepo) Delete(id string) error {
	return r.db.Delete(&model.Customer{}, "id = ?", id).Error
}
