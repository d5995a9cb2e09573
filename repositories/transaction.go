package repositories

import (
	"time"

	"github.com/gestor-backend/models"
	"github.com/shopspring/decimal"
)

// TransactionRepository handles database operations for ledger entries
type TransactionRepository struct{}

// NewTransactionRepository creates a new transaction repository instance
func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{}
}

// TransactionFilter narrows transaction listing
type TransactionFilter struct {
	UUID        string
	Types       []models.TransactionType
	AmountMin   *decimal.Decimal
	AmountMax   *decimal.Decimal
	DateMin     *time.Time
	DateMax     *time.Time
	Description string
	ClientUUID  string
	ProjectUUID string
	UserUUID    string
}

// Find retrieves transactions matching the filter with related records preloaded
func (r *TransactionRepository) Find(filter TransactionFilter) ([]models.Transaction, error) {
	query := db().Model(&models.Transaction{}).
		Preload("Client").
		Preload("Project").
		Preload("User")

	if filter.UUID != "" {
		query = query.Where("uuid = ?", filter.UUID)
	}
	if len(filter.Types) > 0 {
		query = query.Where("type IN ?", filter.Types)
	}
	if filter.AmountMin != nil {
		query = query.Where("amount >= ?", *filter.AmountMin)
	}
	if filter.AmountMax != nil {
		query = query.Where("amount <= ?", *filter.AmountMax)
	}
	if filter.DateMin != nil {
		query = query.Where("date >= ?", *filter.DateMin)
	}
	if filter.DateMax != nil {
		query = query.Where("date <= ?", *filter.DateMax)
	}
	if filter.Description != "" {
		query = query.Where("description ILIKE ?", "%"+filter.Description+"%")
	}
	if filter.ClientUUID != "" {
		query = query.Where("client_uuid = ?", filter.ClientUUID)
	}
	if filter.ProjectUUID != "" {
		query = query.Where("project_uuid = ?", filter.ProjectUUID)
	}
	if filter.UserUUID != "" {
		query = query.Where("user_uuid = ?", filter.UserUUID)
	}

	var transactions []models.Transaction
	result := query.Order("date desc").Find(&transactions)
	return transactions, result.Error
}

// FindByUUID retrieves a transaction by its UUID
func (r *TransactionRepository) FindByUUID(uuid string) (models.Transaction, error) {
	var transaction models.Transaction
	result := db().First(&transaction, "uuid = ?", uuid)
	return transaction, result.Error
}

// Create inserts a new transaction into the database
func (r *TransactionRepository) Create(transaction models.Transaction) (models.Transaction, error) {
	result := db().Create(&transaction)
	return transaction, result.Error
}

// Update modifies an existing transaction
func (r *TransactionRepository) Update(transaction models.Transaction) error {
	result := db().Save(&transaction)
	return result.Error
}

// Delete removes a transaction from the database
func (r *TransactionRepository) Delete(uuid string) error {
	result := db().Delete(&models.Transaction{}, "uuid = ?", uuid)
	return result.Error
}
