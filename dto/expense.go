package dto

// CreateExpenseRequest represents a new actual cost entry
type CreateExpenseRequest struct {
	Description  string  `json:"description" binding:"required"`
	Cost         string  `json:"cost" binding:"required"`
	Date         string  `json:"date" binding:"required"`
	SupplierUUID *string `json:"supplierUuid"`
	TaskUUID     string  `json:"taskUuid" binding:"required,uuid"`
}

// UpdateExpenseRequest represents changes to an actual cost entry
type UpdateExpenseRequest struct {
	UUID         string  `json:"uuid" binding:"required,uuid"`
	Description  string  `json:"description" binding:"required"`
	Cost         string  `json:"cost" binding:"required"`
	Date         string  `json:"date" binding:"required"`
	SupplierUUID *string `json:"supplierUuid"`
	TaskUUID     string  `json:"taskUuid" binding:"required,uuid"`
}

// ExpenseFilter narrows expense listing
type ExpenseFilter struct {
	Description  string
	CostMin      *string
	CostMax      *string
	DateMin      *string
	DateMax      *string
	SupplierUUID string
	TaskUUID     string
}

// ExpenseView is an actual cost entry rendered for the boundary
type ExpenseView struct {
	UUID         string  `json:"uuid"`
	Description  string  `json:"description"`
	Cost         string  `json:"cost"`
	Date         string  `json:"date"`
	SupplierUUID *string `json:"supplierUuid"`
	TaskUUID     string  `json:"taskUuid"`
}
