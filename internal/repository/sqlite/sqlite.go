// Package sqlite persists store snapshots in a local SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/codescan-io/sonarqube-sub000/config"
	"github.com/codescan-io/sonarqube-sub000/internal/entities"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

type migration struct {
	version int
	sql     string
}

var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS store_snapshots (
	name       TEXT PRIMARY KEY,
	payload    TEXT NOT NULL,
	version    INTEGER NOT NULL DEFAULT 1,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

INSERT INTO schema_version (version) VALUES (1);
`,
	},
}

// SQLite is a snapshot store backed by a single database file.
type SQLite struct {
	log *zap.SugaredLogger
	cfg config.SQLiteConfig
	db  *sqlx.DB
}

// New creates a SQLite snapshot store. The database is opened on start.
func New(log *zap.SugaredLogger, cfg *config.Config) *SQLite {
	return &SQLite{
		log: log.Named("repo.sqlite"),
		cfg: cfg.SQLite,
	}
}

// OnStart opens the database, enables WAL mode and applies pending migrations.
func (s *SQLite) OnStart(ctx context.Context) error {
	db, err := sqlx.Open("sqlite", s.cfg.Path)
	if err != nil {
		return fmt.Errorf("opening sqlite db: %w", err)
	}
	// A second connection to ":memory:" would see an empty database.
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{"PRAGMA journal_mode=WAL", "PRAGMA foreign_keys=ON"} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return fmt.Errorf("%s: %w", pragma, err)
		}
	}

	s.db = db
	if err := s.runMigrations(ctx); err != nil {
		_ = db.Close()
		s.db = nil
		return fmt.Errorf("running migrations: %w", err)
	}

	s.log.Infow("sqlite ready", "path", s.cfg.Path)
	return nil
}

// OnStop closes the database.
func (s *SQLite) OnStop(_ context.Context) error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLite) runMigrations(ctx context.Context) error {
	current := 0

	var tables int
	err := s.db.GetContext(ctx, &tables,
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'")
	if err != nil {
		return fmt.Errorf("checking schema_version table: %w", err)
	}
	if tables > 0 {
		if err := s.db.GetContext(ctx, &current, "SELECT COALESCE(MAX(version), 0) FROM schema_version"); err != nil {
			return fmt.Errorf("reading schema version: %w", err)
		}
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		if _, err := s.db.ExecContext(ctx, m.sql); err != nil {
			return fmt.Errorf("applying migration v%d: %w", m.version, err)
		}
		s.log.Debugw("migration applied", "version", m.version)
	}
	return nil
}

// LoadSnapshot returns the payload saved under name.
func (s *SQLite) LoadSnapshot(ctx context.Context, name string) ([]byte, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var payload string
	err := s.db.GetContext(ctx, &payload, "SELECT payload FROM store_snapshots WHERE name = ?", name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entities.ErrSnapshotNotFound
	}
	if err != nil {
		s.log.Errorw("failed to load snapshot", "error", err, "snapshot", name)
		return nil, fmt.Errorf("load snapshot %s: %w", name, err)
	}
	return []byte(payload), nil
}

// SaveSnapshot upserts the payload under name.
func (s *SQLite) SaveSnapshot(ctx context.Context, name string, payload []byte) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO store_snapshots (name, payload, version, updated_at)
		VALUES (?, ?, 1, ?)
		ON CONFLICT (name) DO UPDATE SET
			payload = excluded.payload,
			version = store_snapshots.version + 1,
			updated_at = excluded.updated_at`,
		name, string(payload), time.Now().UTC(),
	)
	if err != nil {
		s.log.Errorw("failed to save snapshot", "error", err, "snapshot", name)
		return fmt.Errorf("save snapshot %s: %w", name, err)
	}
	return nil
}

// SnapshotVersion returns how many times name has been saved.
func (s *SQLite) SnapshotVersion(ctx context.Context, name string) (int64, error) {
	var version int64
	err := s.db.GetContext(ctx, &version, "SELECT version FROM store_snapshots WHERE name = ?", name)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, entities.ErrSnapshotNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("snapshot version %s: %w", name, err)
	}
	return version, nil
}

func (s *SQLite) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg.QueryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.cfg.QueryTimeout)
}
