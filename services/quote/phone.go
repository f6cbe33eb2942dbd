package quote

import "strings"

const maxPhoneDigits = 11

// PhoneDigits strips everything but ASCII digits.
func PhoneDigits(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidatePhoneNumber accepts 10 digits (area code + landline) or 11 digits (area code + mobile).
func ValidatePhoneNumber(phone string) bool {
	n := len(PhoneDigits(phone))
	return n == 10 || n == 11
}

// FormatPhoneNumber applies the "DD NNNNN-NNNN" input mask, truncating to 11 digits.
func FormatPhoneNumber(value string) string {
	digits := PhoneDigits(value)
	if len(digits) > maxPhoneDigits {
		digits = digits[:maxPhoneDigits]
	}
	switch {
	case len(digits) <= 2:
		return digits
	case len(digits) <= 7:
		return digits[:2] + " " + digits[2:]
	default:
		return digits[:2] + " " + digits[2:7] + "-" + digits[7:]
	}
}
