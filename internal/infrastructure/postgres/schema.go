package postgres

import (
	"context"
	"fmt"
)

// schemaStatements crean las tablas si no existen; se ejecutan en cada arranque.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS products (
		id          BIGSERIAL PRIMARY KEY,
		name        VARCHAR(100)  NOT NULL DEFAULT 'Sérum visage anti-tâches',
		price       NUMERIC(10,2) NOT NULL DEFAULT 429,
		stock       INTEGER       NOT NULL DEFAULT 100 CHECK (stock >= 0),
		description TEXT          NOT NULL DEFAULT '',
		image       VARCHAR(200)  NOT NULL DEFAULT '',
		ingredients TEXT          NOT NULL DEFAULT '',
		usage       TEXT          NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id         BIGSERIAL PRIMARY KEY,
		last_name  TEXT        NOT NULL,
		first_name TEXT        NOT NULL,
		address    TEXT        NOT NULL,
		phone      TEXT        NOT NULL,
		email      TEXT        NOT NULL,
		quantity   INTEGER     NOT NULL CHECK (quantity > 0),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		status     VARCHAR(20) NOT NULL DEFAULT 'pending',
		number     VARCHAR(20) UNIQUE
	)`,
	// Bases creadas con límites VARCHAR: el formulario solo exige longitudes mínimas.
	`ALTER TABLE orders
		ALTER COLUMN last_name  TYPE TEXT,
		ALTER COLUMN first_name TYPE TEXT,
		ALTER COLUMN address    TYPE TEXT,
		ALTER COLUMN phone      TYPE TEXT,
		ALTER COLUMN email      TYPE TEXT`,
	`CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders (created_at DESC, id DESC)`,
	`CREATE TABLE IF NOT EXISTS admins (
		id            BIGSERIAL PRIMARY KEY,
		username      VARCHAR(80)  NOT NULL UNIQUE,
		password_hash VARCHAR(200) NOT NULL
	)`,
}

// EnsureSchema crea el esquema de forma idempotente.
func EnsureSchema(ctx context.Context, q Querier) error {
	for _, stmt := range schemaStatements {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
