package utils

import "regexp"

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[\d\s\-()]{10,}$`)
)

func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func IsValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}
