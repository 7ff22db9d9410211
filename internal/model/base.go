package model

import (
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ID prefixes, one per record type. The prefix is cosmetic: it makes
// logs and exported spreadsheets readable, clients treat IDs as opaque.
const (
	ProductIDPrefix     = "SP"
	EmployeeIDPrefix    = "NV"
	SupplierIDPrefix    = "NCC"
	CustomerIDPrefix    = "KH"
	DepartmentIDPrefix  = "BP"
	WarehouseIDPrefix   = "WH"
	TransactionIDPrefix = "TX"
	UserIDPrefix        = "US"
)

// NewID returns prefix + 8 uppercase hex chars from a fresh UUID.
func NewID(prefix string) string {
	u := uuid.New()
	return prefix + strings.ToUpper(hex.EncodeToString(u[:4]))
}

// BaseModel handles the prefixed string ID and standard audit trails.
// ID generation lives in per-entity BeforeCreate hooks because the
// prefix differs per record type.
type BaseModel struct {
	ID        string         `gorm:"type:varchar(64);primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at"` // Soft delete support

	// Audit user tracking
	CreatedBy string `json:"created_by"`
	UpdatedBy string `json:"updated_by"`
}
