package token

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
)

// Generate returns a crypto-secure random string of length n
// The random string is contains the following characters:
// ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_
func Generate(n int) (string, error) {
	if n <= 0 {
		return "", errors.New("length must be > 0")
	}

	// base64 turns every 3 bytes into 4 characters
	b := make([]byte, (n*3+3)/4)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(b)[0:n], nil
}
