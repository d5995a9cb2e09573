package services

import (
	"testing"

	"github.com/gestor-backend/errs"
	"github.com/gestor-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePartyDocuments_Person(t *testing.T) {
	kind, err := validatePartyDocuments("Person", "529.982.247-25", "")
	require.NoError(t, err)
	assert.Equal(t, models.ClientTypePerson, kind)
}

func TestValidatePartyDocuments_Enterprise(t *testing.T) {
	kind, err := validatePartyDocuments("Enterprise", "", "11.222.333/0001-81")
	require.NoError(t, err)
	assert.Equal(t, models.ClientTypeEnterprise, kind)
}

func TestValidatePartyDocuments_Rejections(t *testing.T) {
	cases := []struct {
		name string
		kind string
		cpf  string
		cnpj string
	}{
		{"unknown kind", "Partnership", "529.982.247-25", ""},
		{"person without cpf", "Person", "", ""},
		{"person with bad cpf", "Person", "111.111.111-11", ""},
		{"person with cnpj", "Person", "529.982.247-25", "11.222.333/0001-81"},
		{"enterprise without cnpj", "Enterprise", "", ""},
		{"enterprise with bad cnpj", "Enterprise", "", "11.222.333/0001-00"},
		{"enterprise with cpf", "Enterprise", "529.982.247-25", "11.222.333/0001-81"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := validatePartyDocuments(tc.kind, tc.cpf, tc.cnpj)
			require.Error(t, err)

			var appErr *errs.AppError
			require.ErrorAs(t, err, &appErr)
			assert.True(t, appErr.IsType(errs.ErrorTypeValidation))
		})
	}
}
