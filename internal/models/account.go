package models

// Account represents a user's membership in a group.
//
// The (UserID, GroupID) pair is unique: a user may join a given group at
// most once. The store enforces this with a primary key constraint.
type Account struct {
	// UserID is the member's user ID.
	UserID int64 `json:"user_id"`

	// GroupID is the joined group's ID.
	GroupID int64 `json:"group_id"`

	// CreatedAt is the Unix timestamp when the membership was created.
	CreatedAt int64 `json:"-"`
}
