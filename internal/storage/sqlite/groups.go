package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jkrv/billdesk/internal/models"
	"github.com/jkrv/billdesk/internal/storage"
)

// CreateGroup inserts a group with its caller-supplied ID.
func (s *SQLiteStore) CreateGroup(ctx context.Context, group *models.Group) error {
	if group.CreatedAt == 0 {
		group.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO my_groups (id, name, created_at) VALUES (?, ?, ?)",
		group.ID, group.Name, group.CreatedAt,
	)
	if err != nil {
		if mapped := translateErr(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("failed to create group: %w", err)
	}

	return nil
}

// GetGroup retrieves a group by ID.
func (s *SQLiteStore) GetGroup(ctx context.Context, id int64) (*models.Group, error) {
	group := &models.Group{}
	var name sql.NullString
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, created_at FROM my_groups WHERE id = ?",
		id,
	).Scan(&group.ID, &name, &group.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	group.Name = name.String

	return group, nil
}

// ListGroupsForUser returns the groups the user belongs to, joined through
// the accounts relation.
func (s *SQLiteStore) ListGroupsForUser(ctx context.Context, userID int64) ([]models.Group, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT my_groups.id, my_groups.name, my_groups.created_at
		 FROM accounts
		 JOIN my_groups ON accounts.my_groups_id = my_groups.id
		 WHERE accounts.users_id = ?`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	defer rows.Close()

	groups := []models.Group{}
	for rows.Next() {
		var group models.Group
		var name sql.NullString
		if err := rows.Scan(&group.ID, &name, &group.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		group.Name = name.String
		groups = append(groups, group)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate groups: %w", err)
	}

	return groups, nil
}

// ListGroupNamesForUser returns just the names of the user's groups.
func (s *SQLiteStore) ListGroupNamesForUser(ctx context.Context, userID int64) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT my_groups.name
		 FROM accounts
		 JOIN my_groups ON accounts.my_groups_id = my_groups.id
		 WHERE accounts.users_id = ?`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list group names: %w", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name sql.NullString
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan group name: %w", err)
		}
		names = append(names, name.String)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate group names: %w", err)
	}

	return names, nil
}
