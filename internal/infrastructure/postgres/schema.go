package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate crea las tablas e índices si no existen. No hay versionado de
// migraciones: el esquema es pequeño y solo crece de forma aditiva.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS stores (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			address TEXT NOT NULL DEFAULT '',
			phone TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL DEFAULT '',
			pin_hash TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS customers (
			id TEXT PRIMARY KEY,
			store_id TEXT NOT NULL REFERENCES stores (id),
			name TEXT NOT NULL,
			phone TEXT NOT NULL,
			email TEXT NOT NULL DEFAULT '',
			address TEXT NOT NULL DEFAULT '',
			date_of_birth TEXT NOT NULL DEFAULT '',
			remarks TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			UNIQUE (store_id, phone)
		)`,
		`CREATE TABLE IF NOT EXISTS checkups (
			id TEXT PRIMARY KEY,
			store_id TEXT NOT NULL REFERENCES stores (id),
			customer_id TEXT NOT NULL,
			date TEXT NOT NULL,
			right_eye_spherical_dv TEXT NOT NULL DEFAULT '',
			right_eye_cylindrical_dv TEXT NOT NULL DEFAULT '',
			right_eye_axis_dv TEXT NOT NULL DEFAULT '',
			right_eye_spherical_nv TEXT NOT NULL DEFAULT '',
			right_eye_cylindrical_nv TEXT NOT NULL DEFAULT '',
			right_eye_axis_nv TEXT NOT NULL DEFAULT '',
			left_eye_spherical_dv TEXT NOT NULL DEFAULT '',
			left_eye_cylindrical_dv TEXT NOT NULL DEFAULT '',
			left_eye_axis_dv TEXT NOT NULL DEFAULT '',
			left_eye_spherical_nv TEXT NOT NULL DEFAULT '',
			left_eye_cylindrical_nv TEXT NOT NULL DEFAULT '',
			left_eye_axis_nv TEXT NOT NULL DEFAULT '',
			bifocal_details TEXT NOT NULL DEFAULT '',
			ipd_bridge TEXT NOT NULL DEFAULT '',
			tested_by TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id TEXT NOT NULL,
			store_id TEXT NOT NULL REFERENCES stores (id),
			customer_id TEXT NOT NULL,
			checkup_id TEXT NOT NULL DEFAULT '',
			order_date TEXT NOT NULL,
			expected_delivery_date TEXT NOT NULL DEFAULT '',
			delivered_date TEXT NOT NULL DEFAULT '',
			frame TEXT NOT NULL DEFAULT '',
			lenses TEXT NOT NULL DEFAULT '',
			total_amount NUMERIC(12,2) NOT NULL DEFAULT 0,
			advance_amount NUMERIC(12,2) NOT NULL DEFAULT 0,
			balance_amount NUMERIC(12,2) NOT NULL DEFAULT 0,
			status TEXT NOT NULL DEFAULT 'pending',
			notes TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			PRIMARY KEY (store_id, id)
		)`,
		// Contador durable del número corto de pedido por tienda.
		`CREATE TABLE IF NOT EXISTS order_sequences (
			store_id TEXT PRIMARY KEY REFERENCES stores (id),
			next_value INTEGER NOT NULL DEFAULT 1
		)`,
		`CREATE INDEX IF NOT EXISTS idx_customers_store ON customers (store_id)`,
		`CREATE INDEX IF NOT EXISTS idx_checkups_store ON checkups (store_id)`,
		`CREATE INDEX IF NOT EXISTS idx_checkups_customer ON checkups (store_id, customer_id)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_customer ON orders (store_id, customer_id)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_checkup ON orders (store_id, checkup_id)`,
	}
	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrar esquema: %w", err)
		}
	}
	return nil
}
