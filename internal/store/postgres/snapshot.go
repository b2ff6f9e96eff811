package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/repolens/repolens/internal/collector"
)

var ErrSnapshotNotFound = errors.New("snapshot not found")

var _ collector.SnapshotStore = (*SnapshotStore)(nil)

// SnapshotStore persists repository snapshots in Postgres. The collection
// fields (branches, tags, languages) are stored as jsonb.
type SnapshotStore struct {
	pool *pgxpool.Pool
}

func NewSnapshotStore(pool *pgxpool.Pool) *SnapshotStore {
	return &SnapshotStore{pool: pool}
}

func (s *SnapshotStore) SaveSnapshot(ctx context.Context, snap collector.Snapshot) error {
	branches, err := json.Marshal(snap.Branches)
	if err != nil {
		return fmt.Errorf("encode branches: %w", err)
	}
	tags, err := json.Marshal(snap.Tags)
	if err != nil {
		return fmt.Errorf("encode tags: %w", err)
	}
	languages, err := json.Marshal(snap.Languages)
	if err != nil {
		return fmt.Errorf("encode languages: %w", err)
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO repo_snapshots (id, owner, name, default_branch, private, branches, tags, languages, collected_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, snap.ID, snap.Owner, snap.Name, snap.DefaultBranch, snap.Private, branches, tags, languages, snap.CollectedAt)
	if err != nil {
		return fmt.Errorf("insert snapshot %s/%s: %w", snap.Owner, snap.Name, err)
	}
	return nil
}

// LatestSnapshot returns the most recent snapshot of owner/name.
func (s *SnapshotStore) LatestSnapshot(ctx context.Context, owner, name string) (*collector.Snapshot, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT id, owner, name, default_branch, private, branches, tags, languages, collected_at
		FROM repo_snapshots
		WHERE owner = $1 AND name = $2
		ORDER BY collected_at DESC
		LIMIT 1
	`, owner, name)

	var (
		snap      collector.Snapshot
		branches  []byte
		tags      []byte
		languages []byte
	)
	err := row.Scan(&snap.ID, &snap.Owner, &snap.Name, &snap.DefaultBranch, &snap.Private,
		&branches, &tags, &languages, &snap.CollectedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("query latest snapshot %s/%s: %w", owner, name, err)
	}

	if err := json.Unmarshal(branches, &snap.Branches); err != nil {
		return nil, fmt.Errorf("decode branches: %w", err)
	}
	if err := json.Unmarshal(tags, &snap.Tags); err != nil {
		return nil, fmt.Errorf("decode tags: %w", err)
	}
	if err := json.Unmarshal(languages, &snap.Languages); err != nil {
		return nil, fmt.Errorf("decode languages: %w", err)
	}
	return &snap, nil
}
