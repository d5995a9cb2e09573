package v1

import (
	"net/http"

	"github.com/gestor-backend/dto"
	"github.com/gestor-backend/services"
	"github.com/gin-gonic/gin"
)

// queryPtr returns a pointer to the query value, or nil when absent
func queryPtr(c *gin.Context, key string) *string {
	if value := c.Query(key); value != "" {
		return &value
	}
	return nil
}

// ListActivities retrieves logged work intervals matching the query filter
func ListActivities(c *gin.Context) {
	filter := dto.ActivityFilter{
		Description:   c.Query("description"),
		BeginDate:     queryPtr(c, "beginDate"),
		EndDate:       queryPtr(c, "endDate"),
		HourlyRateMin: queryPtr(c, "hourlyRateMin"),
		HourlyRateMax: queryPtr(c, "hourlyRateMax"),
		UserUUID:      c.Query("userUuid"),
		TaskUUID:      c.Query("taskUuid"),
	}

	activities, err := services.NewActivityService().ListActivities(filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "success",
		"activities": activities,
	})
}

// CreateActivity handles logging a new work interval
func CreateActivity(c *gin.Context) {
	var req dto.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	activity, err := services.NewActivityService().CreateActivity(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":   "success",
		"activity": activity,
	})
}

// UpdateActivity handles work interval changes
func UpdateActivity(c *gin.Context) {
	var req dto.UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := services.NewActivityService().UpdateActivity(req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Activity updated successfully",
	})
}

// DeleteActivity handles work interval removal
func DeleteActivity(c *gin.Context) {
	if err := services.NewActivityService().DeleteActivity(c.Param("uuid")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Activity deleted successfully",
	})
}
