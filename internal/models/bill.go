package models

// Bill represents a monetary line item attached to exactly one group.
//
// Bills carry no payer or owner attribution; they belong to the group as a
// whole.
type Bill struct {
	// ID is the store-assigned identifier for the bill.
	ID int64 `json:"id"`

	// GroupID is the group this bill belongs to.
	GroupID int64 `json:"group_id"`

	// Amount is the bill amount. No currency or range is enforced.
	Amount float64 `json:"amount"`

	// Description is the human-readable description (e.g. "lunch").
	Description string `json:"description"`

	// CreatedAt is the Unix timestamp when the bill was created.
	CreatedAt int64 `json:"-"`
}
