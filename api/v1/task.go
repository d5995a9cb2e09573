package v1

import (
	"net/http"

	"github.com/gestor-backend/dto"
	"github.com/gestor-backend/services"
	"github.com/gin-gonic/gin"
)

// GetTask retrieves a single task
func GetTask(c *gin.Context) {
	task, err := services.NewTaskService().GetTask(c.Param("uuid"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"task":   task,
	})
}

// CreateTask handles creation of a single live task
func CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	caps, _, ok := callerCapabilities(c)
	if !ok {
		return
	}

	task, err := services.NewTaskService().CreateTask(req, caps)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"task":   task,
	})
}

// UpdateTask handles task changes
func UpdateTask(c *gin.Context) {
	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	caps, _, ok := callerCapabilities(c)
	if !ok {
		return
	}

	if err := services.NewTaskService().UpdateTask(req, caps); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Task updated successfully",
	})
}

// DeleteTask handles task removal
func DeleteTask(c *gin.Context) {
	caps, _, ok := callerCapabilities(c)
	if !ok {
		return
	}

	if err := services.NewTaskService().DeleteTask(c.Param("uuid"), caps); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Task deleted successfully",
	})
}
