package utils

import (
	"strings"
)

// onlyDigits strips everything but decimal digits
func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// allSameDigit reports whether the string repeats a single digit
func allSameDigit(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}

// ValidateCPF checks a Brazilian CPF number against its two check digits
func ValidateCPF(cpf string) bool {
	cpf = onlyDigits(cpf)
	if len(cpf) != 11 || allSameDigit(cpf) {
		return false
	}

	calcDigit := func(length int) int {
		sum := 0
		weight := length + 1
		for i := 0; i < length; i++ {
			sum += int(cpf[i]-'0') * weight
			weight--
		}
		remainder := sum % 11
		if remainder < 2 {
			return 0
		}
		return 11 - remainder
	}

	if calcDigit(9) != int(cpf[9]-'0') {
		return false
	}
	return calcDigit(10) == int(cpf[10]-'0')
}

// ValidateCNPJ checks a Brazilian CNPJ number against its two check digits
func ValidateCNPJ(cnpj string) bool {
	cnpj = onlyDigits(cnpj)
	if len(cnpj) != 14 || allSameDigit(cnpj) {
		return false
	}

	calcDigit := func(length int, weights []int) int {
		sum := 0
		for i := 0; i < length; i++ {
			sum += int(cnpj[i]-'0') * weights[i]
		}
		remainder := sum % 11
		if remainder < 2 {
			return 0
		}
		return 11 - remainder
	}

	firstWeights := []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	if calcDigit(12, firstWeights) != int(cnpj[12]-'0') {
		return false
	}

	secondWeights := []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	return calcDigit(13, secondWeights) == int(cnpj[13]-'0')
}
