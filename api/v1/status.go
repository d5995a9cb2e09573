package v1

import (
	"net/http"

	"github.com/gestor-backend/dto"
	"github.com/gestor-backend/services"
	"github.com/gin-gonic/gin"
)

// ListStatuses retrieves workflow statuses matching the query filter
func ListStatuses(c *gin.Context) {
	statuses, err := services.NewStatusService().ListStatuses(c.Query("uuid"), c.Query("name"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"statuses": statuses,
	})
}

// CreateStatus handles status registration
func CreateStatus(c *gin.Context) {
	var req dto.CreateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	status, err := services.NewStatusService().CreateStatus(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   status,
	})
}

// UpdateStatus handles status changes
func UpdateStatus(c *gin.Context) {
	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := services.NewStatusService().UpdateStatus(req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Status updated successfully",
	})
}

// DeleteStatus handles status removal
func DeleteStatus(c *gin.Context) {
	if err := services.NewStatusService().DeleteStatus(c.Param("uuid")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Status deleted successfully",
	})
}
