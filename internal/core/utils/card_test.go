package utils_test

import (
	"testing"
	"time"

	"github.com/avekrasnov/checkout/internal/core/utils"
	"github.com/stretchr/testify/assert"
)

func TestIsValidLuhn(t *testing.T) {
	tests := []struct {
		name   string
		number string
		valid  bool
	}{
		{"valid visa", "4111111111111111", true},
		{"single digit corruption", "4111111111111112", false},
		{"valid with spaces", "4111 1111 1111 1111", true},
		{"valid with dashes", "4111-1111-1111-1111", true},
		{"valid amex", "378282246310005", true},
		{"too short", "411111111111", false},
		{"too long", "41111111111111111111", false},
		{"empty", "", false},
		{"letters only", "abcdefghijklmn", false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.valid, utils.IsValidLuhn(test.number))
		})
	}
}

func TestIsValidExpiry(t *testing.T) {
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		expiry string
		valid  bool
	}{
		{"future year", "12/30", true},
		{"next month", "07/25", true},
		{"current month is expired", "06/25", false},
		{"past month", "05/25", false},
		{"past year", "12/24", false},
		{"invalid month", "13/25", false},
		{"zero month", "00/30", false},
		{"missing slash", "1230", false},
		{"one digit month", "1/30", false},
		{"empty", "", false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.valid, utils.IsValidExpiry(test.expiry, now))
		})
	}
}

func TestIsValidCVV(t *testing.T) {
	tests := []struct {
		cvv   string
		valid bool
	}{
		{"123", true},
		{"1234", true},
		{"12", false},
		{"12345", false},
		{"12a", false},
		{"", false},
	}

	for _, test := range tests {
		t.Run(test.cvv, func(t *testing.T) {
			assert.Equal(t, test.valid, utils.IsValidCVV(test.cvv))
		})
	}
}

func TestSanitizeCardNumber(t *testing.T) {
	assert.Equal(t, "4111111111111111", utils.SanitizeCardNumber("4111-1111 1111\t1111"))
}
