package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is an actual cost entry against an Expense-kind task
type Expense struct {
	UUID         string          `json:"uuid" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Description  string          `json:"description" gorm:"not null"`
	Cost         decimal.Decimal `json:"cost" gorm:"type:numeric(12,2);not null"`
	Date         time.Time       `json:"date" gorm:"not null"`
	SupplierUUID *string         `json:"supplierUuid" gorm:"type:uuid;default:null;index"`
	TaskUUID     string          `json:"taskUuid" gorm:"type:uuid;not null;index"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`

	// Relations
	Supplier *Supplier `json:"supplier,omitempty" gorm:"foreignKey:SupplierUUID;references:UUID"`
}
