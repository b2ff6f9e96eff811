package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS repo_snapshots (
	id             uuid PRIMARY KEY,
	owner          text NOT NULL,
	name           text NOT NULL,
	default_branch text NOT NULL DEFAULT '',
	private        boolean NOT NULL DEFAULT false,
	branches       jsonb NOT NULL DEFAULT '[]',
	tags           jsonb NOT NULL DEFAULT '[]',
	languages      jsonb NOT NULL DEFAULT '{}',
	collected_at   timestamptz NOT NULL
);

CREATE INDEX IF NOT EXISTS repo_snapshots_owner_name_idx
	ON repo_snapshots (owner, name, collected_at DESC);
`

// LoadSchema applies the snapshot schema to the given database.
func LoadSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
