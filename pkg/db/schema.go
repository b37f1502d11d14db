package db

import (
	"context"
	"database/sql"
	"fmt"
)

const schema = `
CREATE TABLE IF NOT EXISTS categories (
    id  SERIAL PRIMARY KEY,
    nom VARCHAR(255) NOT NULL
);

CREATE TABLE IF NOT EXISTS produits (
    id           SERIAL PRIMARY KEY,
    nom          VARCHAR(255)   NOT NULL,
    prix         NUMERIC(10, 2) NOT NULL CHECK (prix >= 0),
    categorie_id INTEGER REFERENCES categories (id)
);

CREATE INDEX IF NOT EXISTS idx_produits_categorie_id ON produits (categorie_id);
`

// EnsureSchema creates the categories and produits tables when they are missing.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
