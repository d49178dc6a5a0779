package sqlite

import "database/sql"

// schema contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
//
// Table names (users, my_groups, accounts, bills) are fixed by the persisted
// schema this service replaces. Group IDs are caller-supplied, so my_groups.id
// has no AUTOINCREMENT. bills.my_groups_id carries no foreign key: bill
// creation performs no group-existence validation.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    full_name TEXT,
    email TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS my_groups (
    id INTEGER PRIMARY KEY,
    name TEXT,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS accounts (
    users_id INTEGER NOT NULL,
    my_groups_id INTEGER NOT NULL,
    created_at INTEGER NOT NULL,
    PRIMARY KEY (users_id, my_groups_id),
    FOREIGN KEY (users_id) REFERENCES users(id) ON DELETE CASCADE,
    FOREIGN KEY (my_groups_id) REFERENCES my_groups(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS bills (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    my_groups_id INTEGER NOT NULL,
    amount REAL NOT NULL,
    description TEXT NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_accounts_my_groups_id ON accounts(my_groups_id);
CREATE INDEX IF NOT EXISTS idx_bills_my_groups_id ON bills(my_groups_id);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
