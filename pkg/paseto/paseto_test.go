package pasetotoken

import (
	"testing"
	"time"

	paseto "aidanwoods.dev/go-paseto"
	"github.com/google/uuid"
)

func newLocalManager(t *testing.T) *Manager {
	t.Helper()

	keys, err := LoadKeys(KeyStrings{
		Mode:         ModeLocal,
		SymmetricHex: paseto.NewV4SymmetricKey().ExportHex(),
	})
	if err != nil {
		t.Fatalf("LoadKeys: %v", err)
	}

	m, err := New(Config{
		Mode:      ModeLocal,
		Issuer:    "hospital-test",
		Audience:  "hospital-api",
		AccessTTL: time.Minute,
	}, keys)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

func TestIssueAndVerifyAccess(t *testing.T) {
	m := newLocalManager(t)

	userID := uuid.New()
	sessionID := uuid.New()

	tok, err := m.IssueAccess(userID, "doctor", &sessionID)
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}

	claims, err := m.Verify(tok)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}

	if claims.Type != TokenTypeAccess {
		t.Errorf("Type = %q, want access", claims.Type)
	}
	if claims.UserID != userID {
		t.Errorf("UserID = %v, want %v", claims.UserID, userID)
	}
	if claims.Role != "doctor" {
		t.Errorf("Role = %q, want doctor", claims.Role)
	}
	if claims.SessionID == nil || *claims.SessionID != sessionID {
		t.Errorf("SessionID = %v, want %v", claims.SessionID, sessionID)
	}
	if claims.IsExpired() {
		t.Error("fresh token reported expired")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m := newLocalManager(t)

	if _, err := m.Verify("v4.local.not-a-token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}

func TestVerifyRejectsForeignKey(t *testing.T) {
	a := newLocalManager(t)
	b := newLocalManager(t)

	tok, err := a.IssueAccess(uuid.New(), "patient", nil)
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}
	if _, err := b.Verify(tok); err == nil {
		t.Fatal("expected verification failure with a different key")
	}
}

func TestLoadKeysValidation(t *testing.T) {
	if _, err := LoadKeys(KeyStrings{Mode: ModeLocal}); err == nil {
		t.Fatal("expected error for missing symmetric key")
	}
	if _, err := LoadKeys(KeyStrings{Mode: Mode("paper")}); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}
