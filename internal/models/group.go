package models

// Group represents a named collection that bills belong to.
//
// Group IDs are chosen by the caller on creation rather than assigned by the
// store; a duplicate ID is a conflict.
type Group struct {
	// ID is the caller-supplied identifier for the group.
	ID int64 `json:"id"`

	// Name is the display name of the group. May be empty.
	Name string `json:"name"`

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64 `json:"-"`
}
