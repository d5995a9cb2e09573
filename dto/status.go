package dto

// CreateStatusRequest represents a new workflow status
type CreateStatusRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// UpdateStatusRequest represents changes to an existing workflow status
type UpdateStatusRequest struct {
	UUID        string `json:"uuid" binding:"required,uuid"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}
