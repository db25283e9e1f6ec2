package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/codescan-io/sonarqube-sub000/config"
	"github.com/codescan-io/sonarqube-sub000/internal/entities"
	"github.com/codescan-io/sonarqube-sub000/internal/fixtures"
	"github.com/codescan-io/sonarqube-sub000/internal/repository/memory"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig(path string) *config.Config {
	return &config.Config{SQLite: config.SQLiteConfig{Path: path, QueryTimeout: time.Second}}
}

func newTestSQLite(t *testing.T) *SQLite {
	t.Helper()

	s := New(zap.NewNop().Sugar(), testConfig(":memory:"))
	require.NoError(t, s.OnStart(context.Background()))
	t.Cleanup(func() { _ = s.OnStop(context.Background()) })
	return s
}

func TestSnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestSQLite(t)

	_, err := s.LoadSnapshot(ctx, "default")
	require.ErrorIs(t, err, entities.ErrSnapshotNotFound)

	require.NoError(t, s.SaveSnapshot(ctx, "default", []byte(`{"a":1}`)))
	require.NoError(t, s.SaveSnapshot(ctx, "default", []byte(`{"a":2}`)))
	require.NoError(t, s.SaveSnapshot(ctx, "other", []byte(`{}`)))

	payload, err := s.LoadSnapshot(ctx, "default")
	require.NoError(t, err)
	require.JSONEq(t, `{"a":2}`, string(payload))

	version, err := s.SnapshotVersion(ctx, "default")
	require.NoError(t, err)
	require.Equal(t, int64(2), version)

	_, err = s.SnapshotVersion(ctx, "missing")
	require.ErrorIs(t, err, entities.ErrSnapshotNotFound)
}

func TestMigrationsAreIdempotent(t *testing.T) {
	ctx := context.Background()
	s := newTestSQLite(t)

	require.NoError(t, s.runMigrations(ctx))

	var versions int
	require.NoError(t, s.db.GetContext(ctx, &versions, "SELECT COUNT(*) FROM schema_version"))
	require.Equal(t, 1, versions)
}

func TestStoreStateSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "store.db")

	first := memory.New(zap.NewNop().Sugar(), fixtures.Default(),
		memory.WithSnapshotter(New(zap.NewNop().Sugar(), testConfig(path)), "it"))
	require.NoError(t, first.OnStart(ctx))
	require.NoError(t, first.DismissNotice(ctx, entities.NoticeEducationPrinciples))
	require.NoError(t, first.AssociateProject(ctx, "Sonar way", "test1"))
	require.NoError(t, first.OnStop(ctx))

	second := memory.New(zap.NewNop().Sugar(), fixtures.Default(),
		memory.WithSnapshotter(New(zap.NewNop().Sugar(), testConfig(path)), "it"))
	require.NoError(t, second.OnStart(ctx))
	t.Cleanup(func() { _ = second.OnStop(ctx) })

	user, err := second.GetCurrentUser(ctx)
	require.NoError(t, err)
	require.True(t, user.DismissedNotices[entities.NoticeEducationPrinciples])

	selected, err := second.SearchProjects(ctx, entities.ProjectQuery{Selected: entities.SelectionSelected})
	require.NoError(t, err)
	require.Equal(t, 3, selected.Paging.Total)
}
