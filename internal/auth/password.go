package auth

import (
	"strings"

	"alumnihub_backend/pkg/apperrors"

	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

// commonPasswords is a small denylist of passwords seen at the top of
// every breach corpus. Checked case-insensitively.
var commonPasswords = map[string]struct{}{
	"password":    {},
	"password1":   {},
	"password123": {},
	"12345678":    {},
	"123456789":   {},
	"1234567890":  {},
	"qwerty123":   {},
	"qwertyuiop":  {},
	"iloveyou":    {},
	"sunshine1":   {},
	"letmein123":  {},
	"admin123":    {},
	"welcome1":    {},
	"abc12345":    {},
}

// HashPassword creates a bcrypt hash. The salt is generated per hash by
// bcrypt itself.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash verifies a password against a stored hash. The
// comparison inside bcrypt is constant-time.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// ValidatePassword enforces the minimum-strength policy.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLength {
		return apperrors.ErrWeakPassword.WithDetails("password must be at least 8 characters long")
	}
	if _, banned := commonPasswords[strings.ToLower(password)]; banned {
		return apperrors.ErrWeakPassword.WithDetails("password is too common")
	}
	return nil
}
