package dto

// CreateUserRequest represents registration data for a new user.
// Monetary values arrive as BRL display strings and are parsed at the boundary.
type CreateUserRequest struct {
	CPF           string  `json:"cpf" binding:"required"`
	Name          string  `json:"name" binding:"required"`
	Username      string  `json:"username" binding:"required"`
	Email         string  `json:"email" binding:"required,email"`
	PasswordNew   string  `json:"passwordNew" binding:"required,min=6"`
	PasswordCheck string  `json:"passwordCheck" binding:"required"`
	Phone         string  `json:"phone"`
	Active        bool    `json:"active"`
	HourlyRate    *string `json:"hourlyRate"`
	AuthUUID      string  `json:"authUuid" binding:"required,uuid"`
}

// UpdateUserRequest represents changes to an existing user
type UpdateUserRequest struct {
	UUID       string  `json:"uuid" binding:"required,uuid"`
	Name       string  `json:"name" binding:"required"`
	Username   string  `json:"username" binding:"required"`
	Email      string  `json:"email" binding:"required,email"`
	Phone      string  `json:"phone"`
	Active     bool    `json:"active"`
	HourlyRate *string `json:"hourlyRate"`
	AuthUUID   string  `json:"authUuid" binding:"required,uuid"`
}

// UpdatePasswordRequest represents a password change
type UpdatePasswordRequest struct {
	UUID          string `json:"uuid" binding:"required,uuid"`
	PasswordOld   string `json:"passwordOld"`
	PasswordNew   string `json:"passwordNew" binding:"required,min=6"`
	PasswordCheck string `json:"passwordCheck" binding:"required"`
}

// UserView is the projected user record. Personal fields (cpf, name, phone)
// require the personal capability; hourlyRate requires the financial
// capability. Absent fields are omitted entirely, never zeroed.
type UserView struct {
	UUID       string  `json:"uuid"`
	CPF        *string `json:"cpf,omitempty"`
	Name       *string `json:"name,omitempty"`
	Username   string  `json:"username"`
	Email      string  `json:"email"`
	Phone      *string `json:"phone,omitempty"`
	Active     bool    `json:"active"`
	HourlyRate *string `json:"hourlyRate,omitempty"`
	AuthUUID   string  `json:"authUuid"`
	Type       string  `json:"type"`
}
