package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// sessionSecretBytes is the entropy of a generated session signing key.
const sessionSecretBytes = 32

// LoginPasswordHash turns the configured owner password into the bcrypt hash
// logins are checked against. A value that already is a bcrypt hash is used
// as is, and an empty value yields an empty hash that matches nothing.
func LoginPasswordHash(configured string) (string, error) {
	if configured == "" {
		return "", nil
	}
	if _, err := bcrypt.Cost([]byte(configured)); err == nil {
		return configured, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(configured), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}

// PasswordMatches reports whether password is the one behind hash.
func PasswordMatches(password, hash string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// NewSessionSecret returns a random hex-encoded key for signing session tokens.
func NewSessionSecret() (string, error) {
	b := make([]byte, sessionSecretBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}
