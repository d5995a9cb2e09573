package dto

// CreateClientRequest represents a new client or supplier. Person rows carry
// a CPF, Enterprise rows a CNPJ plus an optional trade name.
type CreateClientRequest struct {
	Type    string `json:"type" binding:"required"`
	CPF     string `json:"cpf"`
	CNPJ    string `json:"cnpj"`
	Name    string `json:"name" binding:"required"`
	Fantasy string `json:"fantasy"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Active  bool   `json:"active"`
}

// UpdateClientRequest represents changes to an existing client or supplier
type UpdateClientRequest struct {
	UUID    string `json:"uuid" binding:"required,uuid"`
	Type    string `json:"type" binding:"required"`
	CPF     string `json:"cpf"`
	CNPJ    string `json:"cnpj"`
	Name    string `json:"name" binding:"required"`
	Fantasy string `json:"fantasy"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Active  bool   `json:"active"`
}

// ClientFilter narrows client/supplier listing
type ClientFilter struct {
	Types   []string
	CPF     string
	CNPJ    string
	Name    string
	Fantasy string
	Email   string
	Phone   string
	Active  *bool
}
