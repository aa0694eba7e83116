package lib

import (
	"crypto/subtle"
)

// SecureCompare performs a constant-time comparison of two secrets.
// An empty expected value never matches.
func SecureCompare(given, expected string) bool {
	if expected == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(given), []byte(expected)) == 1
}
