package utils_test

import (
	"testing"

	"github.com/avekrasnov/checkout/internal/core/utils"
	"github.com/stretchr/testify/assert"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		expError string
	}{
		{"good", "Str0ng!pass", ""},
		{"too short", "S1!a", "password must be at least 8 characters"},
		{"no uppercase", "weak1pass!", "password must contain at least one uppercase letter"},
		{"no lowercase", "WEAK1PASS!", "password must contain at least one lowercase letter"},
		{"no digit", "Weakpass!", "password must contain at least one number"},
		{"no special", "Weak1pass", "password must contain at least one special character"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := utils.ValidatePassword(test.password)
			if test.expError == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, test.expError)
			}
		})
	}
}

func TestHashAndComparePassword(t *testing.T) {
	hash, err := utils.HashPassword("Str0ng!pass")
	assert.NoError(t, err)
	assert.NotEqual(t, "Str0ng!pass", hash)

	assert.NoError(t, utils.ComparePassword("Str0ng!pass", hash))
	assert.Error(t, utils.ComparePassword("wrong", hash))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, utils.IsValidEmail("user@example.com"))
	assert.False(t, utils.IsValidEmail("user@example"))
	assert.False(t, utils.IsValidEmail("not an email"))
	assert.False(t, utils.IsValidEmail(""))
}

func TestIsValidPhone(t *testing.T) {
	assert.True(t, utils.IsValidPhone("+1 (555) 123-4567"))
	assert.True(t, utils.IsValidPhone("5551234567"))
	assert.False(t, utils.IsValidPhone("12345"))
	assert.False(t, utils.IsValidPhone("call me maybe"))
}
