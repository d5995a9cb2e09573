package v1

import (
	"net/http"

	"github.com/gestor-backend/dto"
	"github.com/gestor-backend/services"
	"github.com/gin-gonic/gin"
)

// ListSuppliers retrieves suppliers matching the query filter
func ListSuppliers(c *gin.Context) {
	suppliers, err := services.NewSupplierService().ListSuppliers(partyFilterFromQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "success",
		"suppliers": suppliers,
	})
}

// CreateSupplier handles supplier registration
func CreateSupplier(c *gin.Context) {
	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	supplier, err := services.NewSupplierService().CreateSupplier(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":   "success",
		"supplier": supplier,
	})
}

// UpdateSupplier handles supplier changes
func UpdateSupplier(c *gin.Context) {
	var req dto.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := services.NewSupplierService().UpdateSupplier(req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Supplier updated successfully",
	})
}

// DeleteSupplier handles supplier removal
func DeleteSupplier(c *gin.Context) {
	if err := services.NewSupplierService().DeleteSupplier(c.Param("uuid")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Supplier deleted successfully",
	})
}
