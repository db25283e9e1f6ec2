package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/codescan-io/sonarqube-sub000/internal/entities"
	"github.com/codescan-io/sonarqube-sub000/internal/fixtures"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()

	s := New(zap.NewNop().Sugar(), fixtures.Default(), opts...)
	require.NoError(t, s.OnStart(context.Background()))
	t.Cleanup(func() { _ = s.OnStop(context.Background()) })
	return s
}

type snapshotterMock struct{ mock.Mock }

var _ Snapshotter = (*snapshotterMock)(nil)

func (m *snapshotterMock) OnStart(ctx context.Context) error { return m.Called(ctx).Error(0) }
func (m *snapshotterMock) OnStop(ctx context.Context) error  { return m.Called(ctx).Error(0) }

func (m *snapshotterMock) LoadSnapshot(ctx context.Context, name string) ([]byte, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *snapshotterMock) SaveSnapshot(ctx context.Context, name string, payload []byte) error {
	return m.Called(ctx, name, payload).Error(0)
}

func TestResetRestoresSeed(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.SetIssueSeverity(ctx, "issue2", entities.SeverityBlocker)
	require.NoError(t, err)
	require.NoError(t, s.DeleteQualityGate(ctx, "Sonar way"))
	require.NoError(t, s.SetAdmin(ctx, true))
	require.NoError(t, s.SetHotspotStatusPermission(ctx, false))
	require.NoError(t, s.AssociateProject(ctx, "Sonar way", "test1"))

	require.NoError(t, s.Reset(ctx))

	res, err := s.SearchIssues(ctx, entities.IssueQuery{Severities: []entities.IssueSeverity{entities.SeverityBlocker}})
	require.NoError(t, err)
	require.Zero(t, res.Paging.Total)

	_, err = s.ShowQualityGate(ctx, "Sonar way")
	require.NoError(t, err)

	list, err := s.ListQualityGates(ctx)
	require.NoError(t, err)
	require.False(t, list.Actions.Create)

	h, err := s.ShowHotspot(ctx, "test-1")
	require.NoError(t, err)
	require.True(t, h.CanChangeStatus)

	projects, err := s.SearchProjects(ctx, entities.ProjectQuery{Selected: entities.SelectionSelected})
	require.NoError(t, err)
	require.Equal(t, 2, projects.Paging.Total)
}

func TestReadsAreIsolatedFromStore(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	res, err := s.SearchIssues(ctx, entities.IssueQuery{})
	require.NoError(t, err)
	res.Issues[0].Tags = append(res.Issues[0].Tags, "mutated")
	res.Issues[0].TextRange.StartLine = 999
	res.Rules[0].Name = "mutated"

	again, err := s.SearchIssues(ctx, entities.IssueQuery{})
	require.NoError(t, err)
	require.NotContains(t, again.Issues[0].Tags, "mutated")
	require.Equal(t, 10, again.Issues[0].TextRange.StartLine)
	require.NotEqual(t, "mutated", again.Rules[0].Name)

	gate, err := s.ShowQualityGate(ctx, "Sonar way")
	require.NoError(t, err)
	gate.Conditions[0].Error = "0"

	gate, err = s.ShowQualityGate(ctx, "Sonar way")
	require.NoError(t, err)
	require.Equal(t, "1", gate.Conditions[0].Error)
}

func TestSeedIsNotAliased(t *testing.T) {
	ctx := context.Background()
	seed := fixtures.Default()
	s := New(zap.NewNop().Sugar(), seed)

	seed.Issues[0].Issue.Message = "changed after construction"

	res, err := s.SearchIssues(ctx, entities.IssueQuery{})
	require.NoError(t, err)
	require.Equal(t, "Issue with no location message", res.Issues[0].Message)
}

func TestSnapshotPersistedWhenMissing(t *testing.T) {
	ctx := context.Background()

	var saved []byte
	snap := &snapshotterMock{}
	snap.On("OnStart", mock.Anything).Return(nil)
	snap.On("OnStop", mock.Anything).Return(nil)
	snap.On("LoadSnapshot", mock.Anything, "demo").Return(nil, entities.ErrSnapshotNotFound).Once()
	snap.On("SaveSnapshot", mock.Anything, "demo", mock.Anything).
		Run(func(args mock.Arguments) { saved = args.Get(2).([]byte) }).
		Return(nil)

	s := New(zap.NewNop().Sugar(), fixtures.Default(), WithSnapshotter(snap, "demo"))
	require.NoError(t, s.OnStart(ctx))

	_, err := s.SetIssueType(ctx, "issue2", entities.TypeBug)
	require.NoError(t, err)
	require.NoError(t, s.OnStop(ctx))
	require.NotEmpty(t, saved)

	restoredSnap := &snapshotterMock{}
	restoredSnap.On("OnStart", mock.Anything).Return(nil)
	restoredSnap.On("LoadSnapshot", mock.Anything, "demo").Return(saved, nil)

	restored := New(zap.NewNop().Sugar(), fixtures.Default(), WithSnapshotter(restoredSnap, "demo"))
	require.NoError(t, restored.OnStart(ctx))

	res, err := restored.SearchIssues(ctx, entities.IssueQuery{Types: []entities.IssueType{entities.TypeBug}})
	require.NoError(t, err)
	require.Len(t, res.Issues, 1)
	require.Equal(t, "issue2", res.Issues[0].Key)

	snap.AssertExpectations(t)
	restoredSnap.AssertExpectations(t)
}

func TestSnapshotLoadFailure(t *testing.T) {
	ctx := context.Background()

	snap := &snapshotterMock{}
	snap.On("OnStart", mock.Anything).Return(nil)
	snap.On("LoadSnapshot", mock.Anything, DefaultSnapshotName).Return(nil, errors.New("boom"))

	s := New(zap.NewNop().Sugar(), fixtures.Default(), WithSnapshotter(snap, ""))
	require.Error(t, s.OnStart(ctx))
}

func TestSaveFailureKeepsMutation(t *testing.T) {
	ctx := context.Background()

	snap := &snapshotterMock{}
	snap.On("OnStart", mock.Anything).Return(nil)
	snap.On("OnStop", mock.Anything).Return(nil)
	snap.On("LoadSnapshot", mock.Anything, mock.Anything).Return([]byte(`{}`), nil)
	snap.On("SaveSnapshot", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("disk full"))

	s := New(zap.NewNop().Sugar(), fixtures.Default(), WithSnapshotter(snap, "x"))
	require.NoError(t, s.OnStart(ctx))
	require.NoError(t, s.Reset(ctx))

	_, err := s.SetIssueSeverity(ctx, "issue2", entities.SeverityInfo)
	require.NoError(t, err)

	res, err := s.SearchIssues(ctx, entities.IssueQuery{Severities: []entities.IssueSeverity{entities.SeverityInfo}})
	require.NoError(t, err)
	require.Equal(t, 1, res.Paging.Total)
}

func TestOptions(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t,
		WithPageSize(3),
		WithNewCodeCutoff(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)),
	)

	res, err := s.SearchIssues(ctx, entities.IssueQuery{InNewCodePeriod: true})
	require.NoError(t, err)
	require.Equal(t, 8, res.Paging.Total)
	require.Equal(t, 3, res.Paging.PageSize)
	require.Len(t, res.Issues, 3)
}
