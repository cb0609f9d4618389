package services

import (
	"errors"
	"net/mail"
	"regexp"
	"strings"
)

var (
	ErrAuthCredentialsInvalid = errors.New("invalid credentials input")
	ErrAuthPasswordWeak       = errors.New("password does not meet requirements")
)

var passwordLengthRegex = regexp.MustCompile(`^.{8,}$`)
var passwordUpperRegex = regexp.MustCompile(`\p{Lu}`)
var passwordLowerRegex = regexp.MustCompile(`\p{Ll}`)
var passwordDigitRegex = regexp.MustCompile(`\d`)

// NormalizeAuthEmail lowercases and trims the address; anything that does
// not parse as an RFC 5322 address comes back empty.
func NormalizeAuthEmail(raw string) string {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return ""
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ""
	}
	return email
}

func NormalizeCredentialsInput(rawEmail string, rawPassword string) (string, string, error) {
	email := NormalizeAuthEmail(rawEmail)
	password := strings.TrimSpace(rawPassword)
	if email == "" || password == "" {
		return "", "", ErrAuthCredentialsInvalid
	}
	return email, password, nil
}

func ValidatePasswordStrength(password string) error {
	if !passwordLengthRegex.MatchString(password) {
		return ErrAuthPasswordWeak
	}
	if passwordUpperRegex.MatchString(password) &&
		passwordLowerRegex.MatchString(password) &&
		passwordDigitRegex.MatchString(password) {
		return nil
	}
	return ErrAuthPasswordWeak
}
