package utils

import (
	"regexp"
	"strings"
	"time"
	"unicode"
)

var expiryPattern = regexp.MustCompile(`^(\d{2})/(\d{2})$`)

// IsValidLuhn checks the card number with the mod-10 checksum. Non-digit
// characters are stripped first; the remaining length must be 13 to 19.
func IsValidLuhn(cardNumber string) bool {
	digits := SanitizeCardNumber(cardNumber)
	if len(digits) < 13 || len(digits) > 19 {
		return false
	}

	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}

	return sum%10 == 0
}

// SanitizeCardNumber strips everything but digits.
func SanitizeCardNumber(cardNumber string) string {
	var b strings.Builder
	for _, r := range cardNumber {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsValidExpiry checks the MM/YY expiry against now. An expiry equal to the
// current month is already expired.
func IsValidExpiry(expiry string, now time.Time) bool {
	groups := expiryPattern.FindStringSubmatch(expiry)
	if groups == nil {
		return false
	}

	month := int(groups[1][0]-'0')*10 + int(groups[1][1]-'0')
	year := 2000 + int(groups[2][0]-'0')*10 + int(groups[2][1]-'0')

	if month < 1 || month > 12 {
		return false
	}

	if year != now.Year() {
		return year > now.Year()
	}
	return month > int(now.Month())
}

// IsValidCVV requires exactly three or four digits.
func IsValidCVV(cvv string) bool {
	if len(cvv) != 3 && len(cvv) != 4 {
		return false
	}
	for _, r := range cvv {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
