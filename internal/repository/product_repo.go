package repository

import (
	"strings"

	"go-wms-backend/internal/model"

	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll(search string) ([]model.Product, error)
	FindByID(id string) (*model.Product, error)
	FindByName(name string) (*model.Product, error)
	Update(product *model.Product) error
	Delete(id string) error
	IncreaseStock(tx *gorm.DB, id string, qty int) error
	DecreaseStock(tx *gorm.DB, id string, qty int) (bool, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) FindAll(search string) ([]model.Product, error) {
	var products []model.Product
	q := r.db.Model(&model.Product{})
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(id) LIKE ? OR LOWER(name) LIKE ? OR LOWER(category) LIKE ?", like, like, like)
	}
	err := q.Order("created_at DESC").Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(id string) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) FindByName(name string) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) Update(product *model.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepo) Delete(id string) error {
	return r.db.Delete(&model.Product{}, "id = ?", id).Error
}

// IncreaseStock runs inside the caller's transaction. Negative qty is
// allowed: transaction deletion reverses imports without a floor check.
func (r *productRepo) IncreaseStock(tx *gorm.DB, id string, qty int) error {
	return tx.Model(&model.Product{}).
		Where("id = ?", id).
		Update("stock", gorm.Expr("stock + ?", qty)).Error
}

// DecreaseStock is a single conditional update: the WHERE clause guards
// the non-negative stock invariant even under concurrent exports. It
// reports false when the product had fewer than qty units.
func (r *productRepo) DecreaseStock(tx *gorm.DB, id string, qty int) (bool, error) {
	res := tx.Model(&model.Product{}).
		Where("id = ? AND stock >= ?", id, qty).
		Update("stock", gorm.Expr("stock - ?", qty))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
