package model

import "gorm.io/gorm"

type Employee struct {
	BaseModel
	Name     string `gorm:"type:varchar(255);not null;index" json:"name" validate:"required"`
	Gender   string `gorm:"type:varchar(10)" json:"gender"`
	Phone    string `gorm:"type:varchar(20)" json:"phone"`
	Address  string `gorm:"type:varchar(255)" json:"address"`
	Position string `gorm:"type:varchar(100)" json:"position"`

	// Derived counter, credited on export transactions.
	RevenueContribution float64 `gorm:"default:0" json:"revenue_contribution"`

	DepartmentID *string     `gorm:"type:varchar(64);index" json:"department_id,omitempty"`
	Department   *Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`

	Transactions []Transaction `json:"transactions,omitempty"`
}

func (e *Employee) BeforeCreate(tx *gorm.DB) (err error) {
	if e.ID == "" {
		e.ID = NewID(EmployeeIDPrefix)
	}
	return
}
