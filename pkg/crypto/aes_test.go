package crypto

import (
	"strings"
	"testing"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	key, err := KeyFromHex(strings.Repeat("ab", 32))
	if err != nil {
		t.Fatalf("KeyFromHex: %v", err)
	}

	plaintext := "+98-912-555-0142"
	enc, err := Encrypt(key, plaintext)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if enc == plaintext {
		t.Fatal("ciphertext equals plaintext")
	}

	dec, err := Decrypt(key, enc)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if dec != plaintext {
		t.Fatalf("round trip = %q, want %q", dec, plaintext)
	}

	// Random nonce means two encryptions of the same value differ.
	enc2, err := Encrypt(key, plaintext)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if enc == enc2 {
		t.Error("expected distinct ciphertexts for repeated encryption")
	}
}

func TestDecryptWrongKey(t *testing.T) {
	key1, _ := KeyFromHex(strings.Repeat("ab", 32))
	key2, _ := KeyFromHex(strings.Repeat("cd", 32))

	enc, err := Encrypt(key1, "secret")
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if _, err := Decrypt(key2, enc); err == nil {
		t.Fatal("expected decryption failure with wrong key")
	}
}

func TestKeyFromHexValidation(t *testing.T) {
	if _, err := KeyFromHex("zz"); err == nil {
		t.Error("expected error for invalid hex")
	}
	if _, err := KeyFromHex("abcd"); err == nil {
		t.Error("expected error for short key")
	}
}

func TestHashDeterministic(t *testing.T) {
	a := Hash("0912555")
	b := Hash("0912555")
	if a != b {
		t.Error("hash is not deterministic")
	}
	if a == Hash("0912556") {
		t.Error("distinct inputs collided")
	}
	if len(a) != 64 {
		t.Errorf("digest length = %d, want 64", len(a))
	}
}
