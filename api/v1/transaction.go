package v1

import (
	"net/http"

	"github.com/gestor-backend/dto"
	"github.com/gestor-backend/services"
	"github.com/gin-gonic/gin"
)

// ListTransactions retrieves ledger entries matching the query filter
func ListTransactions(c *gin.Context) {
	caps, _, ok := callerCapabilities(c)
	if !ok {
		return
	}

	filter := dto.TransactionFilter{
		Types:       c.QueryArray("type"),
		AmountMin:   queryPtr(c, "amountMin"),
		AmountMax:   queryPtr(c, "amountMax"),
		DateMin:     queryPtr(c, "dateMin"),
		DateMax:     queryPtr(c, "dateMax"),
		Description: c.Query("description"),
		ClientUUID:  c.Query("clientUuid"),
		ProjectUUID: c.Query("projectUuid"),
		UserUUID:    c.Query("userUuid"),
	}

	transactions, err := services.NewTransactionService().ListTransactions(filter, caps)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       "success",
		"transactions": transactions,
	})
}

// CreateTransaction handles recording a new ledger entry
func CreateTransaction(c *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	caps, _, ok := callerCapabilities(c)
	if !ok {
		return
	}

	transaction, err := services.NewTransactionService().CreateTransaction(req, caps)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":      "success",
		"transaction": transaction,
	})
}

// UpdateTransaction handles ledger entry changes
func UpdateTransaction(c *gin.Context) {
	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	caps, _, ok := callerCapabilities(c)
	if !ok {
		return
	}

	if err := services.NewTransactionService().UpdateTransaction(req, caps); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Transaction updated successfully",
	})
}

// DeleteTransaction handles ledger entry removal
func DeleteTransaction(c *gin.Context) {
	caps, _, ok := callerCapabilities(c)
	if !ok {
		return
	}

	if err := services.NewTransactionService().DeleteTransaction(c.Param("uuid"), caps); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Transaction deleted successfully",
	})
}
