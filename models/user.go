package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// User represents a user in the system
type User struct {
	UUID       string           `json:"uuid" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CPF        string           `json:"cpf" gorm:"uniqueIndex;not null"`
	Name       string           `json:"name" gorm:"not null"`
	Username   string           `json:"username" gorm:"not null"`
	Email      string           `json:"email" gorm:"uniqueIndex;not null"`
	Password   string           `json:"-" gorm:"not null"` // Password is not exposed in JSON
	Phone      string           `json:"phone" gorm:"default:null"`
	Active     bool             `json:"active" gorm:"default:true"`
	HourlyRate *decimal.Decimal `json:"hourlyRate" gorm:"type:numeric(12,2);default:null"`
	AuthUUID   string           `json:"authUuid" gorm:"type:uuid;not null;index"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`

	// Relations
	Auth Auth `json:"auth,omitempty" gorm:"foreignKey:AuthUUID;references:UUID"`
}
