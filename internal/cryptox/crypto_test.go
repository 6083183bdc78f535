package cryptox

import (
	"bytes"
	"testing"
)

func TestDeriveMasterKey_Deterministic(t *testing.T) {
	password := []byte("secret-password")
	salt := []byte("fixed-salt")

	key1 := DeriveMasterKey(password, salt)
	key2 := DeriveMasterKey(password, salt)

	if !bytes.Equal(key1, key2) {
		t.Errorf("expected same result for same inputs, got different")
	}
	if len(key1) != 32 {
		t.Errorf("expected 32-byte key, got %d", len(key1))
	}
}

func TestDeriveMasterKey_DifferentSalts(t *testing.T) {
	password := []byte("secret-password")

	key1 := DeriveMasterKey(password, []byte("salt-1"))
	key2 := DeriveMasterKey(password, []byte("salt-2"))

	if bytes.Equal(key1, key2) {
		t.Errorf("expected different results for different salts, got same")
	}
}

func TestCheckPassword(t *testing.T) {
	salt := []byte("salty")
	stored := MakeVerifier(DeriveMasterKey([]byte("correct"), salt))

	if !CheckPassword([]byte("correct"), salt, stored) {
		t.Errorf("expected matching password to verify")
	}
	if CheckPassword([]byte("wrong"), salt, stored) {
		t.Errorf("expected wrong password to be rejected")
	}
	if CheckPassword([]byte("correct"), []byte("other"), stored) {
		t.Errorf("expected wrong salt to be rejected")
	}
}
