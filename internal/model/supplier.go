package model

import "gorm.io/gorm"

type Supplier struct {
	BaseModel
	Name          string `gorm:"type:varchar(255);not null;index" json:"name" validate:"required"`
	ContactPerson string `gorm:"type:varchar(255)" json:"contact_person"`
	Phone         string `gorm:"type:varchar(20)" json:"phone"`
	Email         string `gorm:"type:varchar(255)" json:"email" validate:"omitempty,email"`
	Address       string `gorm:"type:varchar(255)" json:"address"`

	Transactions []Transaction `json:"transactions,omitempty"`
}

func (s *Supplier) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = NewID(SupplierIDPrefix)
	}
	return
}
