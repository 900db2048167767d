package repository

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
)

const schema = `
CREATE TABLE IF NOT EXISTS coupons (
	id             SERIAL PRIMARY KEY,
	code           TEXT NOT NULL UNIQUE,
	min_subtotal   NUMERIC(12,2) NOT NULL,
	description    TEXT NOT NULL DEFAULT '',
	discount_type  TEXT NOT NULL CHECK (discount_type IN ('percentage', 'fixed_amount')),
	discount_value NUMERIC(12,2) NOT NULL,
	is_active      BOOLEAN NOT NULL DEFAULT TRUE,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS shipping_rates (
	country_code      CHAR(2) PRIMARY KEY,
	shipping_cost     NUMERIC(12,2) NOT NULL,
	min_delivery_days INT NOT NULL,
	max_delivery_days INT NOT NULL,
	updated_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// EnsureSchema creates the tables this service reads if they are missing.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return errors.Wrap(err, "ensure schema")
	}
	return nil
}
