package auth

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

const passwordHashCost = 14

var ErrEmptyPassword = errors.New("password empty")

// HashPassword produces the value expected in FITTRACK_ADMIN_PASSWORD_HASH.
// Passwords longer than 72 bytes are rejected by bcrypt.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (a *Admin) matches(credentials Credentials) bool {
	if a == nil || a.Username == "" || a.PasswordHash == "" {
		return false
	}
	usernameOK := subtle.ConstantTimeCompare([]byte(credentials.Username), []byte(a.Username)) == 1
	passwordOK := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(credentials.Password)) == nil
	return usernameOK && passwordOK
}
