package auth

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/jkrv/billdesk/internal/models"
	"github.com/jkrv/billdesk/internal/storage"
)

// memoryUserStorage is an in-memory UserStorage for authenticator tests.
type memoryUserStorage struct {
	users  map[string]*models.User
	nextID int64
}

func newMemoryUserStorage() *memoryUserStorage {
	return &memoryUserStorage{users: make(map[string]*models.User)}
}

func (m *memoryUserStorage) CreateUser(_ context.Context, user *models.User) error {
	if _, ok := m.users[user.Email]; ok {
		return storage.ErrConflict
	}
	m.nextID++
	user.ID = m.nextID
	m.users[user.Email] = user
	return nil
}

func (m *memoryUserStorage) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := m.users[email]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return user, nil
}

func (m *memoryUserStorage) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	for _, user := range m.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, storage.ErrNotFound
}

func TestPasswordAuthenticator(t *testing.T) {
	ctx := context.Background()

	t.Run("register hashes password and normalizes email", func(t *testing.T) {
		authenticator := NewPasswordAuthenticator(newMemoryUserStorage())

		user, err := authenticator.Register(ctx, "  Alice@Example.COM ", "Alice", "p1")
		if err != nil {
			t.Fatalf("Register failed: %v", err)
		}

		if user.ID <= 0 {
			t.Errorf("Expected positive user ID, got %d", user.ID)
		}
		if user.Email != "alice@example.com" {
			t.Errorf("Expected normalized email, got %q", user.Email)
		}
		if user.PasswordHash == "p1" {
			t.Error("Password stored in plain text")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("p1")); err != nil {
			t.Errorf("Stored hash does not match password: %v", err)
		}
	})

	t.Run("register rejects duplicate email", func(t *testing.T) {
		authenticator := NewPasswordAuthenticator(newMemoryUserStorage())

		if _, err := authenticator.Register(ctx, "bob@example.com", "Bob", "p1"); err != nil {
			t.Fatalf("Register failed: %v", err)
		}
		_, err := authenticator.Register(ctx, "BOB@example.com", "Bobby", "p2")
		if !errors.Is(err, ErrEmailExists) {
			t.Errorf("Expected ErrEmailExists, got %v", err)
		}
	})

	t.Run("register rejects empty password", func(t *testing.T) {
		authenticator := NewPasswordAuthenticator(newMemoryUserStorage())

		_, err := authenticator.Register(ctx, "carol@example.com", "Carol", "")
		if !errors.Is(err, ErrMissingPassword) {
			t.Errorf("Expected ErrMissingPassword, got %v", err)
		}
	})

	t.Run("authenticate succeeds with correct credentials", func(t *testing.T) {
		authenticator := NewPasswordAuthenticator(newMemoryUserStorage())

		registered, err := authenticator.Register(ctx, "dave@example.com", "Dave", "secret")
		if err != nil {
			t.Fatalf("Register failed: %v", err)
		}

		user, err := authenticator.Authenticate(ctx, "Dave@Example.com", "secret")
		if err != nil {
			t.Fatalf("Authenticate failed: %v", err)
		}
		if user.ID != registered.ID {
			t.Errorf("ID mismatch: got %d, want %d", user.ID, registered.ID)
		}
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		authenticator := NewPasswordAuthenticator(newMemoryUserStorage())

		if _, err := authenticator.Register(ctx, "erin@example.com", "Erin", "secret"); err != nil {
			t.Fatalf("Register failed: %v", err)
		}

		_, wrongPass := authenticator.Authenticate(ctx, "erin@example.com", "wrong")
		_, unknown := authenticator.Authenticate(ctx, "nobody@example.com", "secret")

		if !errors.Is(wrongPass, ErrInvalidCredentials) {
			t.Errorf("Expected ErrInvalidCredentials for wrong password, got %v", wrongPass)
		}
		if !errors.Is(unknown, ErrInvalidCredentials) {
			t.Errorf("Expected ErrInvalidCredentials for unknown email, got %v", unknown)
		}
		if wrongPass.Error() != unknown.Error() {
			t.Error("Expected identical errors for wrong password and unknown email")
		}
	})
}
