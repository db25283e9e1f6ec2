package postgres

import (
	"context"
	"database/sql"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/codescan-io/sonarqube-sub000/config"
	"github.com/codescan-io/sonarqube-sub000/internal/entities"
	"github.com/codescan-io/sonarqube-sub000/internal/fixtures"
	"github.com/codescan-io/sonarqube-sub000/internal/repository/memory"

	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSnapshotRoundTripIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	_, err := repo.LoadSnapshot(ctx, "it")
	require.ErrorIs(t, err, entities.ErrSnapshotNotFound)

	require.NoError(t, repo.SaveSnapshot(ctx, "it", []byte(`{"isAdmin":true}`)))
	require.NoError(t, repo.SaveSnapshot(ctx, "it", []byte(`{"isAdmin":false}`)))

	payload, err := repo.LoadSnapshot(ctx, "it")
	require.NoError(t, err)
	require.JSONEq(t, `{"isAdmin":false}`, string(payload))

	version, err := repo.SnapshotVersion(ctx, "it")
	require.NoError(t, err)
	require.Equal(t, int64(2), version)
}

func TestStoreSurvivesRestartIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	store := memory.New(testLogger(t), fixtures.Default(), memory.WithSnapshotter(New(ctx, testLogger(t), cfg), "restart"))
	require.NoError(t, store.OnStart(ctx))

	_, err := store.CreateQualityGate(ctx, "Persisted gate")
	require.NoError(t, err)
	_, err = store.SetIssueSeverity(ctx, "issue2", entities.SeverityBlocker)
	require.NoError(t, err)
	require.NoError(t, store.OnStop(ctx))

	restarted := memory.New(testLogger(t), fixtures.Default(), memory.WithSnapshotter(New(ctx, testLogger(t), cfg), "restart"))
	require.NoError(t, restarted.OnStart(ctx))
	t.Cleanup(func() { _ = restarted.OnStop(ctx) })

	gate, err := restarted.ShowQualityGate(ctx, "Persisted gate")
	require.NoError(t, err)
	require.Len(t, gate.Conditions, 4)

	res, err := restarted.SearchIssues(ctx, entities.IssueQuery{Severities: []entities.IssueSeverity{entities.SeverityBlocker}})
	require.NoError(t, err)
	require.Equal(t, 1, res.Paging.Total)

	require.NoError(t, restarted.Reset(ctx))
	_, err = restarted.ShowQualityGate(ctx, "Persisted gate")
	require.ErrorIs(t, err, entities.ErrQualityGateNotFound)
}

func setupPostgres(t *testing.T) (*config.Config, func()) {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=postgres",
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=quality_mock_db",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
	})
	require.NoError(t, err)

	hostPort := resource.GetPort("5432/tcp")

	port, err := strconv.Atoi(hostPort)
	require.NoError(t, err)
	migrationsDir, err := filepath.Abs(filepath.Join("..", "..", "..", "db", "migrations"))
	require.NoError(t, err)
	require.DirExists(t, migrationsDir)

	cfg := &config.Config{
		Server: config.ServerConfig{Host: "0.0.0.0", Port: 8080, ShutdownTimeout: 5 * time.Second},
		HTTP:   config.HTTPConfig{RequestTimeout: 5 * time.Second},
		Store:  config.StoreConfig{Backend: config.BackendPostgres, PageSize: 7, NewCodeCutoff: "2023-01-10"},
		Postgres: config.PostgresConfig{
			Host:           "localhost",
			Port:           port,
			User:           "postgres",
			Password:       "postgres",
			DBName:         "quality_mock_db",
			SSLMode:        "disable",
			MigrationsDir:  migrationsDir,
			QueryTimeout:   10 * time.Second,
			MigrateTimeout: 20 * time.Second,
			MaxConns:       4,
			MinConns:       1,
		},
	}

	require.NoError(t, pool.Retry(func() error {
		db, err := sql.Open("postgres", cfg.Postgres.DSN())
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		return db.Ping()
	}))

	cleanup := func() {
		_ = pool.Purge(resource)
	}

	return cfg, cleanup
}

func testLogger(t *testing.T) *zap.SugaredLogger {
	t.Helper()

	l, _ := zap.NewDevelopment()
	t.Cleanup(func() { _ = l.Sync() })
	return l.Sugar()
}
