package v1

import (
	"net/http"
	"strconv"

	"github.com/gestor-backend/dto"
	"github.com/gestor-backend/services"
	"github.com/gin-gonic/gin"
)

// partyFilterFromQuery builds the shared client/supplier filter from query params
func partyFilterFromQuery(c *gin.Context) dto.ClientFilter {
	filter := dto.ClientFilter{
		Types:   c.QueryArray("type"),
		CPF:     c.Query("cpf"),
		CNPJ:    c.Query("cnpj"),
		Name:    c.Query("name"),
		Fantasy: c.Query("fantasy"),
		Email:   c.Query("email"),
		Phone:   c.Query("phone"),
	}
	if raw := c.Query("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err == nil {
			filter.Active = &active
		}
	}
	return filter
}

// ListClients retrieves clients matching the query filter
func ListClients(c *gin.Context) {
	clients, err := services.NewClientService().ListClients(partyFilterFromQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"clients": clients,
	})
}

// CreateClient handles client registration
func CreateClient(c *gin.Context) {
	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	client, err := services.NewClientService().CreateClient(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"client": client,
	})
}

// UpdateClient handles client changes
func UpdateClient(c *gin.Context) {
	var req dto.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := services.NewClientService().UpdateClient(req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Client updated successfully",
	})
}

// DeleteClient handles client removal
func DeleteClient(c *gin.Context) {
	if err := services.NewClientService().DeleteClient(c.Param("uuid")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Client deleted successfully",
	})
}
