package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// migration es un paso de esquema embebido, aplicado una sola vez y en orden.
type migration struct {
	name string
	sql  string
}

var migrations = []migration{
	{
		name: "001_schema",
		sql: `
CREATE TABLE IF NOT EXISTS categories (
	id   BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS promotions (
	id                  BIGSERIAL PRIMARY KEY,
	description         TEXT NOT NULL DEFAULT '',
	discount_percentage NUMERIC(5,2) NOT NULL DEFAULT 0,
	start_date          DATE NOT NULL,
	end_date            DATE NOT NULL
);

CREATE TABLE IF NOT EXISTS products (
	id           BIGSERIAL PRIMARY KEY,
	name         TEXT NOT NULL UNIQUE,
	description  TEXT NOT NULL DEFAULT '',
	price        NUMERIC(10,2) NOT NULL,
	stock        INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
	image        TEXT NOT NULL DEFAULT '',
	category_id  BIGINT REFERENCES categories(id) ON DELETE SET NULL,
	promotion_id BIGINT REFERENCES promotions(id) ON DELETE SET NULL,
	active       BOOLEAN NOT NULL DEFAULT TRUE
);

CREATE TABLE IF NOT EXISTS states (
	id   BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS orders (
	id             BIGSERIAL PRIMARY KEY,
	amount         NUMERIC(10,2) NOT NULL DEFAULT 0,
	state_id       BIGINT NOT NULL REFERENCES states(id),
	ip             TEXT NOT NULL DEFAULT '',
	initial_time   TIMESTAMPTZ NOT NULL DEFAULT now(),
	end_time       TIMESTAMPTZ NOT NULL DEFAULT now(),
	order_date     DATE NOT NULL DEFAULT CURRENT_DATE,
	customer_name  TEXT NOT NULL DEFAULT '',
	customer_email TEXT NOT NULL DEFAULT '',
	table_number   INTEGER NOT NULL,
	preference_id  TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_orders_state ON orders(state_id);
CREATE INDEX IF NOT EXISTS idx_orders_date  ON orders(order_date);

CREATE TABLE IF NOT EXISTS order_items (
	id         BIGSERIAL PRIMARY KEY,
	order_id   BIGINT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
	product_id BIGINT NOT NULL REFERENCES products(id),
	sugerencia TEXT NOT NULL DEFAULT '',
	quantity   INTEGER NOT NULL CHECK (quantity > 0),
	price      NUMERIC(10,2) NOT NULL,
	subtotal   NUMERIC(10,2) NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id);

CREATE TABLE IF NOT EXISTS payment_methods (
	id   BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS payment_statuses (
	id   BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS payments (
	id           BIGSERIAL PRIMARY KEY,
	order_id     BIGINT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
	method_id    BIGINT NOT NULL REFERENCES payment_methods(id),
	status_id    BIGINT NOT NULL REFERENCES payment_statuses(id),
	amount       NUMERIC(10,2) NOT NULL,
	payment_date TIMESTAMPTZ NOT NULL DEFAULT now(),
	motive       TEXT NOT NULL DEFAULT '',
	token        TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS users (
	id            UUID PRIMARY KEY,
	username      TEXT NOT NULL UNIQUE,
	email         TEXT NOT NULL DEFAULT '',
	password_hash TEXT NOT NULL,
	role          TEXT NOT NULL,
	active        BOOLEAN NOT NULL DEFAULT TRUE,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);
`,
	},
	{
		// Datos de referencia: el registro de estados y los catálogos de pago
		// son un invariante de configuración del despliegue (ver ErrMissingState).
		name: "002_reference_data",
		sql: `
INSERT INTO states (name) VALUES
	('Pendiente'), ('En Preparación'), ('Listo'), ('Pagado'), ('Cancelado')
ON CONFLICT (name) DO NOTHING;

INSERT INTO payment_methods (name) VALUES
	('Mercado Pago'), ('Billetera Electrónica'), ('Efectivo')
ON CONFLICT (name) DO NOTHING;

INSERT INTO payment_statuses (name) VALUES
	('Aprobado'), ('Pendiente'), ('Rechazado'), ('Cancelado')
ON CONFLICT (name) DO NOTHING;
`,
	},
}

// RunMigrations aplica las migraciones pendientes en orden, registrándolas en
// schema_migrations para no repetirlas.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			id         SERIAL PRIMARY KEY,
			name       TEXT NOT NULL UNIQUE,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("crear tabla de migraciones: %w", err)
	}

	applied := make(map[string]bool)
	rows, err := pool.Query(ctx, `SELECT name FROM schema_migrations`)
	if err != nil {
		return fmt.Errorf("leer migraciones aplicadas: %w", err)
	}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			rows.Close()
			return fmt.Errorf("scan migración: %w", err)
		}
		applied[name] = true
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	for _, m := range migrations {
		if applied[m.name] {
			continue
		}
		tx, err := pool.Begin(ctx)
		if err != nil {
			return fmt.Errorf("begin migración %s: %w", m.name, err)
		}
		if _, err := tx.Exec(ctx, m.sql); err != nil {
			_ = tx.Rollback(ctx)
			return fmt.Errorf("aplicar migración %s: %w", m.name, err)
		}
		if _, err := tx.Exec(ctx, `INSERT INTO schema_migrations (name) VALUES ($1)`, m.name); err != nil {
			_ = tx.Rollback(ctx)
			return fmt.Errorf("registrar migración %s: %w", m.name, err)
		}
		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf("commit migración %s: %w", m.name, err)
		}
	}
	return nil
}
