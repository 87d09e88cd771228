package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// schema contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist. All money columns are
// NUMERIC(20,2); per_share keeps full float precision on purpose.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    user_id    UUID PRIMARY KEY,
    name       VARCHAR NOT NULL,
    email      VARCHAR NOT NULL UNIQUE,
    role       VARCHAR NOT NULL DEFAULT 'investor',
    is_active  BOOLEAN NOT NULL DEFAULT TRUE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS wallets (
    wallet_id  UUID PRIMARY KEY,
    user_id    UUID NOT NULL UNIQUE,
    balance    NUMERIC(20,2) NOT NULL DEFAULT 0,
    currency   VARCHAR NOT NULL DEFAULT 'USD',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS transactions (
    transaction_id UUID PRIMARY KEY,
    user_id        UUID NOT NULL,
    kind           VARCHAR NOT NULL,
    amount         NUMERIC(20,2) NOT NULL,
    reference_id   VARCHAR,
    meta           JSONB,
    created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS offerings (
    offering_id  UUID PRIMARY KEY,
    title        VARCHAR NOT NULL,
    description  TEXT,
    cars_count   INT NOT NULL,
    shares_total INT NOT NULL,
    share_price  NUMERIC(20,2) NOT NULL,
    term_months  INT NOT NULL,
    status       VARCHAR NOT NULL DEFAULT 'open',
    created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS investments (
    investment_id      UUID PRIMARY KEY,
    user_id            UUID NOT NULL,
    offering_id        UUID NOT NULL,
    shares             INT NOT NULL,
    pledge_amount      NUMERIC(20,2) NOT NULL,
    monthly_instalment NUMERIC(20,2) NOT NULL,
    months             INT NOT NULL,
    status             VARCHAR NOT NULL DEFAULT 'active',
    created_at         TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at         TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS instalments (
    instalment_id UUID PRIMARY KEY,
    user_id       UUID NOT NULL,
    investment_id UUID NOT NULL,
    amount        NUMERIC(20,2) NOT NULL,
    due_month     INT NOT NULL,
    paid          BOOLEAN NOT NULL DEFAULT FALSE,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS distributions (
    distribution_id UUID PRIMARY KEY,
    offering_id     UUID NOT NULL,
    month           INT NOT NULL,
    total_amount    NUMERIC(20,2) NOT NULL,
    per_share       DOUBLE PRECISION NOT NULL,
    created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    UNIQUE (offering_id, month)
);

CREATE TABLE IF NOT EXISTS notifications (
    notification_id UUID PRIMARY KEY,
    user_id         UUID NOT NULL,
    title           VARCHAR NOT NULL,
    message         TEXT NOT NULL,
    read            BOOLEAN NOT NULL DEFAULT FALSE,
    created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS secondary_orders (
    order_id        UUID PRIMARY KEY,
    user_id         UUID NOT NULL,
    offering_id     UUID NOT NULL,
    side            VARCHAR NOT NULL,
    shares          INT NOT NULL,
    price_per_share NUMERIC(20,2) NOT NULL,
    status          VARCHAR NOT NULL DEFAULT 'open',
    created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_transactions_user_created ON transactions(user_id, created_at DESC);
CREATE INDEX IF NOT EXISTS idx_investments_user ON investments(user_id);
CREATE INDEX IF NOT EXISTS idx_investments_offering_status ON investments(offering_id, status);
CREATE INDEX IF NOT EXISTS idx_instalments_investment ON instalments(investment_id);
CREATE INDEX IF NOT EXISTS idx_notifications_user ON notifications(user_id);
CREATE INDEX IF NOT EXISTS idx_secondary_orders_offering_status ON secondary_orders(offering_id, status);
`

// RunMigrations executes the schema setup.
func RunMigrations(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}
