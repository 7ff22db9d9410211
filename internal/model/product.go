package model

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	BaseModel
	Name            string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"name" validate:"required"`
	Category        string     `gorm:"type:varchar(100)" json:"category"`
	Origin          string     `gorm:"type:varchar(255)" json:"origin"`
	Price           float64    `gorm:"default:0" json:"price" validate:"gte=0"`
	Stock           int        `gorm:"default:0" json:"stock"`
	ImportCost      float64    `gorm:"default:0" json:"import_cost" validate:"gte=0"`
	ManufactureDate *time.Time `gorm:"type:date" json:"manufacture_date,omitempty"`
	ExpiryDate      *time.Time `gorm:"type:date" json:"expiry_date,omitempty"`

	// Relasi
	Transactions   []Transaction `json:"transactions,omitempty"`
	InventoryItems []Inventory   `gorm:"foreignKey:ProductID" json:"inventory_items,omitempty"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = NewID(ProductIDPrefix)
	}
	return
}
