package service

import (
	"crypto/rand"
	"encoding/hex"
)

// NewRandomToken returns a 64-character hex token backed by 32 bytes of
// cryptographic randomness. Used for activation and password reset links.
func NewRandomToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
