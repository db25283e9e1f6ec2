// Package repository provides factory for repositories.
package repository

import (
	"context"
	"fmt"

	"github.com/codescan-io/sonarqube-sub000/config"
	"github.com/codescan-io/sonarqube-sub000/internal/fixtures"
	"github.com/codescan-io/sonarqube-sub000/internal/repository/memory"
	"github.com/codescan-io/sonarqube-sub000/internal/repository/postgres"
	"github.com/codescan-io/sonarqube-sub000/internal/repository/sqlite"

	"go.uber.org/zap"
)

// Repository aggregates all persistence interfaces.
type Repository interface {
	LifecycleInterface
	IssueInterface
	RuleInterface
	UserInterface
	QualityGateInterface
	HotspotInterface
	AdminInterface
}

var _ Repository = (*memory.Store)(nil)

// New builds the in-memory store seeded from seed and, for the postgres and
// sqlite backends, persisting its state there.
func New(ctx context.Context, name string, log *zap.SugaredLogger, cfg *config.Config, seed fixtures.Snapshot) (Repository, error) {
	cutoff, err := cfg.Store.Cutoff()
	if err != nil {
		return nil, err
	}
	opts := []memory.Option{
		memory.WithPageSize(cfg.Store.PageSize),
		memory.WithNewCodeCutoff(cutoff),
	}

	switch name {
	case config.BackendMemory:
	case config.BackendPostgres:
		opts = append(opts, memory.WithSnapshotter(postgres.New(ctx, log, cfg), cfg.Store.SnapshotName))
	case config.BackendSQLite:
		opts = append(opts, memory.WithSnapshotter(sqlite.New(log, cfg), cfg.Store.SnapshotName))
	default:
		return nil, fmt.Errorf("unknown repo backend: %s", name)
	}
	return memory.New(log, seed, opts...), nil
}
