package auth

import (
	"testing"
	"time"

	"github.com/jkrv/billdesk/internal/models"
)

func TestJWTManager(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)
	user := &models.User{ID: 42, Email: "alice@example.com", FullName: "Alice"}

	t.Run("generate and validate round trip", func(t *testing.T) {
		token, err := manager.Generate(user)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}

		claims, err := manager.Validate(token)
		if err != nil {
			t.Fatalf("Validate failed: %v", err)
		}

		if claims.UserID != user.ID {
			t.Errorf("UserID mismatch: got %d, want %d", claims.UserID, user.ID)
		}
		if claims.Email != user.Email {
			t.Errorf("Email mismatch: got %s, want %s", claims.Email, user.Email)
		}
		if claims.FullName != user.FullName {
			t.Errorf("FullName mismatch: got %s, want %s", claims.FullName, user.FullName)
		}
		if claims.ExpiresAt == nil {
			t.Error("Expected expiry claim to be set")
		}
	})

	t.Run("rejects token signed with different secret", func(t *testing.T) {
		other := NewJWTManager("other-secret", time.Hour)
		token, err := other.Generate(user)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}

		if _, err := manager.Validate(token); err == nil {
			t.Error("Expected error for foreign-secret token, got nil")
		}
	})

	t.Run("rejects malformed token", func(t *testing.T) {
		if _, err := manager.Validate("not.a.token"); err == nil {
			t.Error("Expected error for malformed token, got nil")
		}
	})

	t.Run("rejects expired token", func(t *testing.T) {
		expired := NewJWTManager("test-secret", -time.Minute)
		token, err := expired.Generate(user)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}

		if _, err := manager.Validate(token); err == nil {
			t.Error("Expected error for expired token, got nil")
		}
	})
}
