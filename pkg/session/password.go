package session

import (
	"errors"
	"strings"
	"unicode"
)

const specialRunes = `!@#$%^&*(),.?":{}|<>`

// ValidatePassword enforces the signup policy: at least five letters, one
// digit, one special character, and seven characters overall.
func ValidatePassword(pwd string) error {
	letters := 0
	hasDigit := false
	hasSpecial := false
	for _, r := range pwd {
		switch {
		case unicode.IsLetter(r):
			letters++
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(specialRunes, r):
			hasSpecial = true
		}
	}
	if letters < 5 || !hasDigit || !hasSpecial || len(pwd) < 7 {
		return errors.New("password must contain at least five letters, one number, and one special character")
	}
	return nil
}
