package model

import "gorm.io/gorm"

type Department struct {
	BaseModel
	Name  string `gorm:"type:varchar(100);not null" json:"name" validate:"required"`
	Phone string `gorm:"type:varchar(20)" json:"phone"`

	Employees []Employee `gorm:"foreignKey:DepartmentID" json:"employees,omitempty"`
}

func (d *Department) BeforeCreate(tx *gorm.DB) (err error) {
	if d.ID == "" {
		d.ID = NewID(DepartmentIDPrefix)
	}
	return
}
