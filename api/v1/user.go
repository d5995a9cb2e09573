package v1

import (
	"net/http"
	"strconv"

	"github.com/gestor-backend/dto"
	"github.com/gestor-backend/repositories"
	"github.com/gestor-backend/services"
	"github.com/gestor-backend/utils"
	"github.com/gin-gonic/gin"
)

// ListUsers retrieves users matching the query filter, projected by the
// caller's capability set
func ListUsers(c *gin.Context) {
	caps, viewerUUID, ok := callerCapabilities(c)
	if !ok {
		return
	}

	filter := repositories.UserFilter{
		CPF:       c.Query("cpf"),
		Name:      c.Query("name"),
		Username:  c.Query("username"),
		Email:     c.Query("email"),
		Phone:     c.Query("phone"),
		AuthUUIDs: c.QueryArray("authUuid"),
	}
	if raw := c.Query("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err == nil {
			filter.Active = &active
		}
	}
	if raw := c.Query("hourlyRateMin"); raw != "" {
		min, err := utils.ParseBRL(raw)
		if err != nil {
			respondError(c, err)
			return
		}
		filter.HourlyRateMin = &min
	}
	if raw := c.Query("hourlyRateMax"); raw != "" {
		max, err := utils.ParseBRL(raw)
		if err != nil {
			respondError(c, err)
			return
		}
		filter.HourlyRateMax = &max
	}

	users, err := services.NewUserService().ListUsers(filter, caps, viewerUUID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"users":  users,
	})
}

// GetUser retrieves a single user. The literal uuid "this" resolves to the
// caller's own record, which always exposes its personal and financial fields.
func GetUser(c *gin.Context) {
	caps, viewerUUID, ok := callerCapabilities(c)
	if !ok {
		return
	}

	uuid := c.Param("uuid")
	if uuid == "this" {
		uuid = viewerUUID
	}

	user, err := services.NewUserService().GetUser(uuid, caps, viewerUUID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"user":   user,
	})
}

// CreateUser handles user registration
func CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	caps, _, ok := callerCapabilities(c)
	if !ok {
		return
	}

	user, err := services.NewUserService().CreateUser(req, caps)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"user":   services.BuildUserView(user, caps, c.GetString("uuid")),
	})
}

// UpdateUser handles user changes
func UpdateUser(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	caps, viewerUUID, ok := callerCapabilities(c)
	if !ok {
		return
	}

	if err := services.NewUserService().UpdateUser(req, caps, viewerUUID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User updated successfully",
	})
}

// UpdatePassword handles password changes
func UpdatePassword(c *gin.Context) {
	var req dto.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	caps, viewerUUID, ok := callerCapabilities(c)
	if !ok {
		return
	}

	if err := services.NewUserService().UpdatePassword(req, caps, viewerUUID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Password updated successfully",
	})
}

// DeleteUser handles user removal
func DeleteUser(c *gin.Context) {
	caps, _, ok := callerCapabilities(c)
	if !ok {
		return
	}

	if err := services.NewUserService().DeleteUser(c.Param("uuid"), caps); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User deleted successfully",
	})
}
