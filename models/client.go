package models

import (
	"time"

	"github.com/gestor-backend/errs"
)

// ClientType represents the two legal forms a client can take
type ClientType string

const (
	ClientTypePerson     ClientType = "Person"
	ClientTypeEnterprise ClientType = "Enterprise"
)

// ParseClientType validates a client type tag, rejecting unknown values
func ParseClientType(s string) (ClientType, error) {
	switch ClientType(s) {
	case ClientTypePerson, ClientTypeEnterprise:
		return ClientType(s), nil
	}
	return "", errs.Validation("invalid client type: " + s)
}

// Client represents a billing client, either a person (CPF) or an enterprise (CNPJ)
type Client struct {
	UUID      string     `json:"uuid" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Type      ClientType `json:"type" gorm:"type:varchar(10);not null"`
	CPF       string     `json:"cpf" gorm:"default:null;uniqueIndex"`
	CNPJ      string     `json:"cnpj" gorm:"default:null;uniqueIndex"`
	Name      string     `json:"name" gorm:"not null"`
	Fantasy   string     `json:"fantasy" gorm:"default:null"` // Trade name, enterprises only
	Email     string     `json:"email" gorm:"default:null"`
	Phone     string     `json:"phone" gorm:"default:null"`
	Active    bool       `json:"active" gorm:"default:true"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}
