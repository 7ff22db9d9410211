package model

import "gorm.io/gorm"

type Customer struct {
	BaseModel
	Name    string `gorm:"type:varchar(255);not null;index" json:"name" validate:"required"`
	Phone   string `gorm:"type:varchar(20)" json:"phone"`
	Address string `gorm:"type:varchar(255)" json:"address"`

	Transactions []Transaction `json:"transactions,omitempty"`
}

func (c *Customer) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = NewID(CustomerIDPrefix)
	}
	return
}
