// Package models defines the core domain models for billdesk.
//
// The data model is deliberately small:
//   - User: a registered account, looked up by normalized email
//   - Group: a named collection that bills belong to
//   - Account: the membership relation between a User and a Group
//   - Bill: a monetary line item scoped to a Group
//
// Identifiers are integers. User and Bill IDs are assigned by the store;
// Group IDs are supplied by the caller on creation.
//
// Relationships are expressed through ID fields rather than pointers to
// avoid circular references between models.
package models
