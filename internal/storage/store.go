// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/jkrv/billdesk/internal/models"
)

// Sentinel errors returned by Store implementations. Handlers map these to
// HTTP statuses; everything else is an internal error.
var (
	// ErrNotFound indicates a referenced record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrConflict indicates an insert violated a uniqueness constraint
	// (duplicate email, duplicate group ID, duplicate membership).
	ErrConflict = errors.New("record already exists")
)

// Store defines the interface for billdesk storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the handler layer.
type Store interface {
	// CreateUser persists a new user and populates user.ID.
	// Returns ErrConflict if the email is already registered.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves a user by normalized email.
	// Returns ErrNotFound if no such user exists.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves a user by ID.
	// Returns ErrNotFound if no such user exists.
	GetUserByID(ctx context.Context, id int64) (*models.User, error)

	// CreateGroup persists a new group with its caller-supplied ID.
	// Returns ErrConflict if the ID is already taken.
	CreateGroup(ctx context.Context, group *models.Group) error

	// GetGroup retrieves a group by ID.
	// Returns ErrNotFound if no such group exists.
	GetGroup(ctx context.Context, id int64) (*models.Group, error)

	// ListGroupsForUser returns the groups the user belongs to, joined
	// through the accounts relation. Order is store-defined.
	ListGroupsForUser(ctx context.Context, userID int64) ([]models.Group, error)

	// ListGroupNamesForUser returns just the names of the user's groups.
	ListGroupNamesForUser(ctx context.Context, userID int64) ([]string, error)

	// CreateAccount records the user's membership in a group.
	// Returns ErrConflict if the membership already exists and ErrNotFound
	// if the group (or user) does not exist. The underlying constraints,
	// not a pre-check, are the authority, so concurrent joins cannot both
	// succeed.
	CreateAccount(ctx context.Context, account *models.Account) error

	// CreateBill persists a new bill and populates bill.ID.
	// The group is not required to exist.
	CreateBill(ctx context.Context, bill *models.Bill) error

	// ListBillsByGroup returns all bills attached to the group.
	ListBillsByGroup(ctx context.Context, groupID int64) ([]models.Bill, error)

	// Close releases any resources held by the store.
	Close() error
}
