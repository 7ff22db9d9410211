package model

import "gorm.io/gorm"

type Warehouse struct {
	BaseModel
	Name     string `gorm:"type:varchar(255);uniqueIndex;not null" json:"name" validate:"required"`
	Location string `gorm:"type:varchar(255)" json:"location"`
	Capacity int    `gorm:"default:0" json:"capacity" validate:"gte=0"`

	InventoryItems []Inventory `gorm:"foreignKey:WarehouseID" json:"inventory_items,omitempty"`
}

func (w *Warehouse) BeforeCreate(tx *gorm.DB) (err error) {
	if w.ID == "" {
		w.ID = NewID(WarehouseIDPrefix)
	}
	return
}
