// Package cryptox holds the key-derivation helpers used to keep password
// verifiers for locally registered accounts.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"

	"golang.org/x/crypto/argon2"
)

// SaltSize is the length of salts generated for new accounts.
const SaltSize = 32

// DeriveMasterKey stretches password with salt using Argon2id.
func DeriveMasterKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// MakeVerifier returns the value stored in place of the password.
func MakeVerifier(masterKey []byte) []byte {
	hash := sha256.Sum256(masterKey)
	return hash[:]
}

// CheckPassword derives a verifier from password and salt and compares it
// with stored in constant time.
func CheckPassword(password, salt, stored []byte) bool {
	candidate := MakeVerifier(DeriveMasterKey(password, salt))
	return subtle.ConstantTimeCompare(candidate, stored) == 1
}
