package dto

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims represents our custom JWT claims
type TokenClaims struct {
	UUID     string `json:"uuid"`
	AuthUUID string `json:"authUuid"`
	jwt.RegisteredClaims
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents the response after authentication
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// CreateAuthRequest represents a new role with its capability flags
type CreateAuthRequest struct {
	Type      string `json:"type" binding:"required"`
	Admin     bool   `json:"admin"`
	Project   bool   `json:"project"`
	Personal  bool   `json:"personal"`
	Financial bool   `json:"financial"`
}

// UpdateAuthRequest represents changes to an existing role
type UpdateAuthRequest struct {
	UUID      string `json:"uuid" binding:"required,uuid"`
	Type      string `json:"type" binding:"required"`
	Admin     bool   `json:"admin"`
	Project   bool   `json:"project"`
	Personal  bool   `json:"personal"`
	Financial bool   `json:"financial"`
}

// AuthFilter narrows role listing
type AuthFilter struct {
	Types     []string
	Admin     bool
	Project   bool
	Personal  bool
	Financial bool
}
