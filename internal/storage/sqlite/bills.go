package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/jkrv/billdesk/internal/models"
)

// CreateBill inserts a bill and populates the store-assigned ID.
// The referenced group is not required to exist.
func (s *SQLiteStore) CreateBill(ctx context.Context, bill *models.Bill) error {
	if bill.CreatedAt == 0 {
		bill.CreatedAt = time.Now().Unix()
	}

	result, err := s.db.ExecContext(ctx,
		"INSERT INTO bills (my_groups_id, amount, description, created_at) VALUES (?, ?, ?, ?)",
		bill.GroupID, bill.Amount, bill.Description, bill.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create bill: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read bill id: %w", err)
	}
	bill.ID = id

	return nil
}

// ListBillsByGroup returns all bills attached to the group.
func (s *SQLiteStore) ListBillsByGroup(ctx context.Context, groupID int64) ([]models.Bill, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, my_groups_id, amount, description, created_at FROM bills WHERE my_groups_id = ?",
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	defer rows.Close()

	bills := []models.Bill{}
	for rows.Next() {
		var bill models.Bill
		if err := rows.Scan(&bill.ID, &bill.GroupID, &bill.Amount, &bill.Description, &bill.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan bill: %w", err)
		}
		bills = append(bills, bill)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bills: %w", err)
	}

	return bills, nil
}
