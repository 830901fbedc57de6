package service

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"regexp"
)

// instanceIDBytes random bytes give the fixed 8-character hex instance id.
const instanceIDBytes = 4

var instanceIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// NewInstanceID returns a random 8-character hex id.
func NewInstanceID() (string, error) {
	b := make([]byte, instanceIDBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate instance id: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// ValidInstanceID reports whether id can name an instance and its storage key.
func ValidInstanceID(id string) bool {
	return instanceIDPattern.MatchString(id)
}
