package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/jkrv/billdesk/internal/models"
)

// CreateAccount records a user's membership in a group.
//
// The insert leans on the table constraints rather than a check-then-insert
// sequence: the (users_id, my_groups_id) primary key turns a duplicate join
// into storage.ErrConflict, and the foreign keys turn a missing group or
// user into storage.ErrNotFound.
func (s *SQLiteStore) CreateAccount(ctx context.Context, account *models.Account) error {
	if account.CreatedAt == 0 {
		account.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO accounts (users_id, my_groups_id, created_at) VALUES (?, ?, ?)",
		account.UserID, account.GroupID, account.CreatedAt,
	)
	if err != nil {
		if mapped := translateErr(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("failed to create account: %w", err)
	}

	return nil
}
