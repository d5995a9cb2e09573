package repositories

import (
	"time"

	"github.com/gestor-backend/models"
	"github.com/shopspring/decimal"
)

// ExpenseRepository handles database operations for actual cost entries
type ExpenseRepository struct{}

// NewExpenseRepository creates a new expense repository instance
func NewExpenseRepository() *ExpenseRepository {
	return &ExpenseRepository{}
}

// ExpenseFilter narrows expense listing
type ExpenseFilter struct {
	UUID         string
	Description  string
	CostMin      *decimal.Decimal
	CostMax      *decimal.Decimal
	DateMin      *time.Time
	DateMax      *time.Time
	SupplierUUID string
	TaskUUID     string
}

// Find retrieves expenses matching the filter
func (r *ExpenseRepository) Find(filter ExpenseFilter) ([]models.Expense, error) {
	query := db().Model(&models.Expense{})

	if filter.UUID != "" {
		query = query.Where("uuid = ?", filter.UUID)
	}
	if filter.Description != "" {
		query = query.Where("description ILIKE ?", "%"+filter.Description+"%")
	}
	if filter.CostMin != nil {
		query = query.Where("cost >= ?", *filter.CostMin)
	}
	if filter.CostMax != nil {
		query = query.Where("cost <= ?", *filter.CostMax)
	}
	if filter.DateMin != nil {
		query = query.Where("date >= ?", *filter.DateMin)
	}
	if filter.DateMax != nil {
		query = query.Where("date <= ?", *filter.DateMax)
	}
	if filter.SupplierUUID != "" {
		query = query.Where("supplier_uuid = ?", filter.SupplierUUID)
	}
	if filter.TaskUUID != "" {
		query = query.Where("task_uuid = ?", filter.TaskUUID)
	}

	var expenses []models.Expense
	result := query.Order("date asc").Find(&expenses)
	return expenses, result.Error
}

// FindByUUID retrieves an expense by its UUID
func (r *ExpenseRepository) FindByUUID(uuid string) (models.Expense, error) {
	var expense models.Expense
	result := db().First(&expense, "uuid = ?", uuid)
	return expense, result.Error
}

// Create inserts a new expense into the database
func (r *ExpenseRepository) Create(expense models.Expense) (models.Expense, error) {
	result := db().Create(&expense)
	return expense, result.Error
}

// Update modifies an existing expense
func (r *ExpenseRepository) Update(expense models.Expense) error {
	result := db().Save(&expense)
	return result.Error
}

// Delete removes an expense from the database
func (r *ExpenseRepository) Delete(uuid string) error {
	result := db().Delete(&models.Expense{}, "uuid = ?", uuid)
	return result.Error
}
