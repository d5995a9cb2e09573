package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		expected string
	}{
		{name: "zero", amount: "0", expected: "R$ 0,00"},
		{name: "cents only", amount: "0.5", expected: "R$ 0,50"},
		{name: "no grouping", amount: "400", expected: "R$ 400,00"},
		{name: "thousands grouping", amount: "1234.56", expected: "R$ 1.234,56"},
		{name: "millions grouping", amount: "1234567.89", expected: "R$ 1.234.567,89"},
		{name: "negative", amount: "-1234.5", expected: "-R$ 1.234,50"},
		{name: "rounds to two places", amount: "10.005", expected: "R$ 10,01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := decimal.NewFromString(tt.amount)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, FormatBRL(amount))
		})
	}
}

func TestParseBRL(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected string
		wantErr  bool
	}{
		{name: "full format", value: "R$ 1.234,56", expected: "1234.56"},
		{name: "no symbol", value: "1234,56", expected: "1234.56"},
		{name: "no space after symbol", value: "R$400,00", expected: "400"},
		{name: "integer only", value: "R$ 400", expected: "400"},
		{name: "negative", value: "-R$ 10,50", expected: "-10.5"},
		{name: "empty is zero", value: "", expected: "0"},
		{name: "garbage", value: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBRL(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			expected, err := decimal.NewFromString(tt.expected)
			require.NoError(t, err)
			assert.True(t, expected.Equal(got), "expected %s, got %s", expected, got)
		})
	}
}

func TestParseBRL_RoundTrip(t *testing.T) {
	amount := decimal.RequireFromString("98765.43")

	parsed, err := ParseBRL(FormatBRL(amount))

	require.NoError(t, err)
	assert.True(t, amount.Equal(parsed))
}
