package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/codescan-io/sonarqube-sub000/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	selectSnapshotQuery = `SELECT payload FROM store_snapshots WHERE name = $1`
	upsertSnapshotQuery = `
INSERT INTO store_snapshots (name, payload, version, updated_at)
VALUES ($1, $2, 1, now())
ON CONFLICT (name) DO UPDATE
SET payload = EXCLUDED.payload,
    version = store_snapshots.version + 1,
    updated_at = now()
RETURNING version`
	insertSnapshotEventQuery = `INSERT INTO store_snapshot_events (name, version, size_bytes) VALUES ($1, $2, $3)`

	undefinedTableCode = "42P01"
)

// LoadSnapshot returns the payload saved under name.
func (p *Postgres) LoadSnapshot(ctx context.Context, name string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, p.cfg.QueryTimeout)
	defer cancel()

	var payload []byte
	if err := p.db.QueryRow(ctx, selectSnapshotQuery, name).Scan(&payload); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrSnapshotNotFound
		}
		p.log.Errorw("failed to load snapshot", "error", err, "snapshot", name)
		return nil, fmt.Errorf("load snapshot: %w", wrapPgError(err))
	}
	return payload, nil
}

// SaveSnapshot upserts the payload under name and records the write.
func (p *Postgres) SaveSnapshot(ctx context.Context, name string, payload []byte) error {
	ctx, cancel := context.WithTimeout(ctx, p.cfg.QueryTimeout)
	defer cancel()

	tx, err := p.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var version int64
	if err := tx.QueryRow(ctx, upsertSnapshotQuery, name, payload).Scan(&version); err != nil {
		p.log.Errorw("failed to upsert snapshot", "error", err, "snapshot", name)
		return fmt.Errorf("upsert snapshot: %w", wrapPgError(err))
	}
	if _, err := tx.Exec(ctx, insertSnapshotEventQuery, name, version, len(payload)); err != nil {
		return fmt.Errorf("insert snapshot event: %w", wrapPgError(err))
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	p.log.Debugw("snapshot saved", "snapshot", name, "version", version, "bytes", len(payload))
	return nil
}

// SnapshotVersion returns how many times name has been saved.
func (p *Postgres) SnapshotVersion(ctx context.Context, name string) (int64, error) {
	var version int64
	err := p.db.QueryRow(ctx, `SELECT version FROM store_snapshots WHERE name = $1`, name).Scan(&version)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, entities.ErrSnapshotNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("snapshot version: %w", err)
	}
	return version, nil
}

func wrapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == undefinedTableCode {
		return fmt.Errorf("snapshot tables missing, run migrations: %w", err)
	}
	return err
}
