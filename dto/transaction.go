package dto

// CreateTransactionRequest represents a new ledger entry
type CreateTransactionRequest struct {
	Type        string  `json:"type" binding:"required"`
	Amount      string  `json:"amount" binding:"required"`
	Date        string  `json:"date" binding:"required"`
	Description string  `json:"description" binding:"required"`
	ClientUUID  string  `json:"clientUuid" binding:"required,uuid"`
	ProjectUUID *string `json:"projectUuid"`
	UserUUID    string  `json:"userUuid" binding:"required,uuid"`
}

// UpdateTransactionRequest represents changes to an existing ledger entry
type UpdateTransactionRequest struct {
	UUID        string  `json:"uuid" binding:"required,uuid"`
	Type        string  `json:"type" binding:"required"`
	Amount      string  `json:"amount" binding:"required"`
	Date        string  `json:"date" binding:"required"`
	Description string  `json:"description" binding:"required"`
	ClientUUID  string  `json:"clientUuid" binding:"required,uuid"`
	ProjectUUID *string `json:"projectUuid"`
	UserUUID    string  `json:"userUuid" binding:"required,uuid"`
}

// TransactionFilter narrows transaction listing
type TransactionFilter struct {
	Types       []string
	AmountMin   *string
	AmountMax   *string
	DateMin     *string
	DateMax     *string
	Description string
	ClientUUID  string
	ProjectUUID string
	UserUUID    string
}

// TransactionView is a ledger entry rendered for the boundary
type TransactionView struct {
	UUID        string  `json:"uuid"`
	Type        string  `json:"type"`
	Amount      string  `json:"amount"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	ClientUUID  string  `json:"clientUuid"`
	ClientName  string  `json:"clientName"`
	ProjectUUID *string `json:"projectUuid"`
	ProjectName *string `json:"projectName,omitempty"`
	UserUUID    string  `json:"userUuid"`
	Username    string  `json:"username"`
}
