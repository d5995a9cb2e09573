package v1

import (
	"net/http"

	"github.com/gestor-backend/dto"
	"github.com/gestor-backend/services"
	"github.com/gin-gonic/gin"
)

// ListExpenses retrieves actual cost entries matching the query filter
func ListExpenses(c *gin.Context) {
	filter := dto.ExpenseFilter{
		Description:  c.Query("description"),
		CostMin:      queryPtr(c, "costMin"),
		CostMax:      queryPtr(c, "costMax"),
		DateMin:      queryPtr(c, "dateMin"),
		DateMax:      queryPtr(c, "dateMax"),
		SupplierUUID: c.Query("supplierUuid"),
		TaskUUID:     c.Query("taskUuid"),
	}

	expenses, err := services.NewExpenseService().ListExpenses(filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"expenses": expenses,
	})
}

// CreateExpense handles recording a new actual cost
func CreateExpense(c *gin.Context) {
	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	expense, err := services.NewExpenseService().CreateExpense(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"expense": expense,
	})
}

// UpdateExpense handles cost entry changes
func UpdateExpense(c *gin.Context) {
	var req dto.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := services.NewExpenseService().UpdateExpense(req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Expense updated successfully",
	})
}

// DeleteExpense handles cost entry removal
func DeleteExpense(c *gin.Context) {
	if err := services.NewExpenseService().DeleteExpense(c.Param("uuid")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Expense deleted successfully",
	})
}
