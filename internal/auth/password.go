// Package auth hashes and verifies group passwords.
//
// Digests are unsalted SHA-256 hex strings so that documents written by earlier
// versions of the app keep verifying. The secrets protected here are short-lived
// and low value (who drew whom), not account credentials.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"math/big"
)

// TemporaryPasswordAlphabet omits characters that are easy to misread (0/O, 1/I/L).
const TemporaryPasswordAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// TemporaryPasswordLength is the number of characters in an issued password.
const TemporaryPasswordLength = 8

// Hash returns the hex SHA-256 digest of password.
func Hash(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Verify reports whether password hashes to digest.
func Verify(password, digest string) bool {
	if digest == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(Hash(password)), []byte(digest)) == 1
}

// GenerateTemporaryPassword returns a random token short enough to retype.
func GenerateTemporaryPassword() (string, error) {
	return newToken(TemporaryPasswordLength, cryptoRandomIndex)
}

func newToken(length int, randomIndex func(int) (int, error)) (string, error) {
	buf := make([]byte, length)
	for i := range buf {
		n, err := randomIndex(len(TemporaryPasswordAlphabet))
		if err != nil {
			return "", fmt.Errorf("failed to generate temporary password: %w", err)
		}
		buf[i] = TemporaryPasswordAlphabet[n]
	}
	return string(buf), nil
}

func cryptoRandomIndex(max int) (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		return 0, err
	}
	return int(n.Int64()), nil
}
