package v1

import (
	"net/http"

	"github.com/gestor-backend/dto"
	"github.com/gestor-backend/repositories"
	"github.com/gestor-backend/services"
	"github.com/gin-gonic/gin"
)

// Login handles user authentication
func Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	authResponse, err := services.Login(req)
	if err != nil {
		respondError(c, err)
		return
	}

	// Set token as HttpOnly cookie (expires in 24 hours)
	c.SetCookie(
		"token",            // name
		authResponse.Token, // value
		86400,              // max age (24 hours in seconds)
		"/",                // path
		"",                 // domain
		true,               // secure (HTTPS only)
		true,               // httpOnly (not accessible via JS)
	)

	// Also return token in response body for clients that prefer Bearer auth
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   authResponse,
	})
}

// Logout handles user logout
func Logout(c *gin.Context) {
	// Clear the cookie by setting max-age to -1 (expired)
	c.SetCookie("token", "", -1, "/", "", true, true)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Logged out successfully",
	})
}

// CheckPermissions verifies the caller holds every requested capability
func CheckPermissions(c *gin.Context) {
	var requested map[string]bool
	if err := c.ShouldBindJSON(&requested); err != nil {
		respondBindError(c, err)
		return
	}

	caps, _, ok := callerCapabilities(c)
	if !ok {
		return
	}

	if err := services.CheckPermissions(caps, requested); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
	})
}

// ListRoles retrieves roles matching the query filter
func ListRoles(c *gin.Context) {
	filter := repositories.AuthFilter{
		Types: c.QueryArray("type"),
	}

	roles, err := services.NewAuthService().ListRoles(filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"roles":  roles,
	})
}

// CreateRole handles role creation
func CreateRole(c *gin.Context) {
	var req dto.CreateAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	caps, _, ok := callerCapabilities(c)
	if !ok {
		return
	}

	role, err := services.NewAuthService().CreateRole(req, caps)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"role":   role,
	})
}

// UpdateRole handles role changes
func UpdateRole(c *gin.Context) {
	var req dto.UpdateAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	caps, _, ok := callerCapabilities(c)
	if !ok {
		return
	}

	if err := services.NewAuthService().UpdateRole(req, caps); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Role updated successfully",
	})
}

// DeleteRole handles role removal
func DeleteRole(c *gin.Context) {
	caps, _, ok := callerCapabilities(c)
	if !ok {
		return
	}

	if err := services.NewAuthService().DeleteRole(c.Param("uuid"), caps); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Role deleted successfully",
	})
}
