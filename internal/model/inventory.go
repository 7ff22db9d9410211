package model

import "time"

// Inventory is the per-(product, warehouse) stock split. It is an
// independent counter: nothing reconciles it against Product.Stock.
type Inventory struct {
	ProductID   string    `gorm:"type:varchar(64);primaryKey" json:"product_id" validate:"required"`
	WarehouseID string    `gorm:"type:varchar(64);primaryKey" json:"warehouse_id" validate:"required"`
	Stock       int       `gorm:"default:0" json:"stock" validate:"gte=0"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Product   *Product   `gorm:"foreignKey:ProductID" json:"product,omitempty" validate:"-"`
	Warehouse *Warehouse `gorm:"foreignKey:WarehouseID" json:"warehouse,omitempty" validate:"-"`
}

func (Inventory) TableName() string {
	return "inventory"
}
