package models

import (
	"time"
)

// Supplier represents a goods/services provider linked to expenses
type Supplier struct {
	UUID      string     `json:"uuid" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Type      ClientType `json:"type" gorm:"type:varchar(10);not null"`
	CPF       string     `json:"cpf" gorm:"default:null;uniqueIndex"`
	CNPJ      string     `json:"cnpj" gorm:"default:null;uniqueIndex"`
	Name      string     `json:"name" gorm:"not null"`
	Fantasy   string     `json:"fantasy" gorm:"default:null"`
	Email     string     `json:"email" gorm:"default:null"`
	Phone     string     `json:"phone" gorm:"default:null"`
	Active    bool       `json:"active" gorm:"default:true"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}
