package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCPF(t *testing.T) {
	tests := []struct {
		name  string
		cpf   string
		valid bool
	}{
		{name: "valid with punctuation", cpf: "529.982.247-25", valid: true},
		{name: "valid digits only", cpf: "52998224725", valid: true},
		{name: "wrong check digit", cpf: "529.982.247-26", valid: false},
		{name: "repeated digits", cpf: "111.111.111-11", valid: false},
		{name: "too short", cpf: "1234567890", valid: false},
		{name: "empty", cpf: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidateCPF(tt.cpf))
		})
	}
}

func TestValidateCNPJ(t *testing.T) {
	tests := []struct {
		name  string
		cnpj  string
		valid bool
	}{
		{name: "valid with punctuation", cnpj: "11.222.333/0001-81", valid: true},
		{name: "valid digits only", cnpj: "11222333000181", valid: true},
		{name: "wrong check digit", cnpj: "11.222.333/0001-82", valid: false},
		{name: "repeated digits", cnpj: "11.111.111/1111-11", valid: false},
		{name: "too short", cnpj: "1122233300018", valid: false},
		{name: "empty", cnpj: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidateCNPJ(tt.cnpj))
		})
	}
}
