package util

import (
	"regexp"
)

func ValidateEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}

// ValidateIBAN checks shape only (length and charset); the vendor does
// the real verification.
func ValidateIBAN(iban string) bool {
	re := regexp.MustCompile(`^[A-Z]{2}[0-9]{2}[A-Za-z0-9]{11,30}$`)
	return re.MatchString(iban)
}

func ValidateBIC(bic string) bool {
	return len(bic) == 8 || len(bic) == 11
}
