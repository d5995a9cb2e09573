package models

import (
	"time"

	"github.com/gestor-backend/errs"
	"github.com/shopspring/decimal"
)

// TransactionType is the closed kind set for ledger entries
type TransactionType string

const (
	TransactionTypeIncome     TransactionType = "Income"
	TransactionTypeExpense    TransactionType = "Expense"
	TransactionTypeTransfer   TransactionType = "Transfer"
	TransactionTypeLoan       TransactionType = "Loan"
	TransactionTypeAdjustment TransactionType = "Adjustment"
	TransactionTypeRefund     TransactionType = "Refund"
)

// ParseTransactionType validates a transaction type tag, rejecting unknown values
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(s) {
	case TransactionTypeIncome, TransactionTypeExpense, TransactionTypeTransfer,
		TransactionTypeLoan, TransactionTypeAdjustment, TransactionTypeRefund:
		return TransactionType(s), nil
	}
	return "", errs.Validation("invalid transaction type: " + s)
}

// Transaction represents a ledger entry linked to a client and optionally a project
type Transaction struct {
	UUID        string          `json:"uuid" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Type        TransactionType `json:"type" gorm:"type:varchar(12);not null;index"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:numeric(12,2);not null"`
	Date        time.Time       `json:"date" gorm:"not null;index"`
	Description string          `json:"description" gorm:"not null"`
	ClientUUID  string          `json:"clientUuid" gorm:"type:uuid;not null;index"`
	ProjectUUID *string         `json:"projectUuid" gorm:"type:uuid;default:null;index"`
	UserUUID    string          `json:"userUuid" gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`

	// Relations
	Client  Client   `json:"client,omitempty" gorm:"foreignKey:ClientUUID;references:UUID"`
	Project *Project `json:"project,omitempty" gorm:"foreignKey:ProjectUUID;references:UUID"`
	User    User     `json:"user,omitempty" gorm:"foreignKey:UserUUID;references:UUID"`
}
