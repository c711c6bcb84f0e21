package repository

import "database/sql"

// EnsureSchema creates the two tables backing the service. Emails are written
// pre-normalized, so the plain UNIQUE constraint is enough to make duplicate
// registration race-safe at the store.
func EnsureSchema(db *sql.DB) error {
	query := `
CREATE TABLE IF NOT EXISTS accounts (
    id SERIAL PRIMARY KEY,
    name VARCHAR(255) NOT NULL,
    email VARCHAR(255) NOT NULL UNIQUE,
    password VARCHAR(255) NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS todos (
    id SERIAL PRIMARY KEY,
    user_id INT NOT NULL REFERENCES accounts (id),
    todo TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

	_, err := db.Exec(query)
	return err
}

// DropSchema removes both tables. Used to reset the test database.
func DropSchema(db *sql.DB) error {
	query := `
DROP TABLE IF EXISTS todos;
DROP TABLE IF EXISTS accounts;
`

	_, err := db.Exec(query)
	return err
}
