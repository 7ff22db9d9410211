package model

import (
	"time"

	"gorm.io/gorm"
)

type TransactionKind string

const (
	KindImport TransactionKind = "import"
	KindExport TransactionKind = "export"
)

// Transaction is an immutable stock event. Imports carry a supplier,
// exports carry a customer; the validator tags enforce the exclusivity.
type Transaction struct {
	BaseModel
	Kind       TransactionKind `gorm:"type:varchar(10);not null" json:"kind" validate:"required,oneof=import export"`
	ProductID  string          `gorm:"type:varchar(64);not null;index" json:"product_id" validate:"required"`
	Product    *Product        `json:"product,omitempty" validate:"-"`
	EmployeeID string          `gorm:"type:varchar(64);not null;index" json:"employee_id" validate:"required"`
	Employee   *Employee       `json:"employee,omitempty" validate:"-"`
	Quantity   int             `gorm:"not null" json:"quantity" validate:"required,gt=0"`
	UnitPrice  float64         `gorm:"not null" json:"unit_price" validate:"gte=0"`
	Date       time.Time       `gorm:"type:date;not null" json:"date"`

	SupplierID *string   `gorm:"type:varchar(64)" json:"supplier_id,omitempty" validate:"required_if=Kind import,excluded_if=Kind export"`
	Supplier   *Supplier `json:"supplier,omitempty" validate:"-"`
	CustomerID *string   `gorm:"type:varchar(64)" json:"customer_id,omitempty" validate:"required_if=Kind export,excluded_if=Kind import"`
	Customer   *Customer `json:"customer,omitempty" validate:"-"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == "" {
		t.ID = NewID(TransactionIDPrefix)
	}
	return
}

// TotalAmount is the monetary value of the event at recording time.
func (t *Transaction) TotalAmount() float64 {
	return float64(t.Quantity) * t.UnitPrice
}
