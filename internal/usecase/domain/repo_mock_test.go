package domain

import (
	"context"

	"github.com/codescan-io/sonarqube-sub000/internal/entities"
	"github.com/codescan-io/sonarqube-sub000/internal/repository"

	"github.com/stretchr/testify/mock"
)

type repoMock struct{ mock.Mock }

var _ repository.Repository = (*repoMock)(nil)

// result unpacks a (value, error) pair, tolerating a nil value.
func result[T any](args mock.Arguments) (T, error) {
	var zero T
	if v, ok := args.Get(0).(T); ok {
		return v, args.Error(1)
	}
	return zero, args.Error(1)
}

func (m *repoMock) OnStart(_ context.Context) error { return nil }
func (m *repoMock) OnStop(_ context.Context) error  { return nil }

func (m *repoMock) SearchIssues(ctx context.Context, q entities.IssueQuery) (entities.IssuesSearchResponse, error) {
	return result[entities.IssuesSearchResponse](m.Called(ctx, q))
}

func (m *repoMock) SetIssueType(ctx context.Context, key string, t entities.IssueType) (*entities.IssueResponse, error) {
	return result[*entities.IssueResponse](m.Called(ctx, key, t))
}

func (m *repoMock) SetIssueSeverity(ctx context.Context, key string, s entities.IssueSeverity) (*entities.IssueResponse, error) {
	return result[*entities.IssueResponse](m.Called(ctx, key, s))
}

func (m *repoMock) SetIssueAssignee(ctx context.Context, key, assignee string) (*entities.IssueResponse, error) {
	return result[*entities.IssueResponse](m.Called(ctx, key, assignee))
}

func (m *repoMock) SetIssueTags(ctx context.Context, key string, tags []string) (*entities.IssueResponse, error) {
	return result[*entities.IssueResponse](m.Called(ctx, key, tags))
}

func (m *repoMock) DoIssueTransition(
	ctx context.Context,
	key string,
	transition entities.IssueTransition,
	resolution entities.IssueResolution,
) (*entities.IssueResponse, error) {
	return result[*entities.IssueResponse](m.Called(ctx, key, transition, resolution))
}

func (m *repoMock) AddIssueComment(ctx context.Context, key, text string) (*entities.IssueResponse, error) {
	return result[*entities.IssueResponse](m.Called(ctx, key, text))
}

func (m *repoMock) EditIssueComment(ctx context.Context, commentKey, text string) (*entities.IssueResponse, error) {
	return result[*entities.IssueResponse](m.Called(ctx, commentKey, text))
}

func (m *repoMock) DeleteIssueComment(ctx context.Context, commentKey string) (*entities.IssueResponse, error) {
	return result[*entities.IssueResponse](m.Called(ctx, commentKey))
}

func (m *repoMock) BulkChangeIssues(ctx context.Context, change entities.BulkChange) (entities.BulkChangeResult, error) {
	return result[entities.BulkChangeResult](m.Called(ctx, change))
}

func (m *repoMock) GetIssueFlowSnippets(ctx context.Context, key string) (map[string]entities.SnippetsByComponent, error) {
	return result[map[string]entities.SnippetsByComponent](m.Called(ctx, key))
}

func (m *repoMock) GetIssueChangelog(ctx context.Context, key string) (entities.ChangelogResponse, error) {
	return result[entities.ChangelogResponse](m.Called(ctx, key))
}

func (m *repoMock) SearchIssueTags(ctx context.Context, q entities.TagsQuery) (entities.TagsResponse, error) {
	return result[entities.TagsResponse](m.Called(ctx, q))
}

func (m *repoMock) SearchRules(ctx context.Context, q entities.RuleQuery) (entities.RulesSearchResponse, error) {
	return result[entities.RulesSearchResponse](m.Called(ctx, q))
}

func (m *repoMock) GetRuleDetails(ctx context.Context, key string) (entities.RuleDetailsResponse, error) {
	return result[entities.RuleDetailsResponse](m.Called(ctx, key))
}

func (m *repoMock) GetCurrentUser(ctx context.Context) (entities.LoggedInUser, error) {
	return result[entities.LoggedInUser](m.Called(ctx))
}

func (m *repoMock) SetCurrentUser(ctx context.Context, user entities.LoggedInUser) error {
	return m.Called(ctx, user).Error(0)
}

func (m *repoMock) DismissNotice(ctx context.Context, notice string) error {
	return m.Called(ctx, notice).Error(0)
}

func (m *repoMock) SearchUsers(ctx context.Context, q entities.UserQuery) (entities.UsersResponse, error) {
	return result[entities.UsersResponse](m.Called(ctx, q))
}

func (m *repoMock) SetAdmin(ctx context.Context, isAdmin bool) error {
	return m.Called(ctx, isAdmin).Error(0)
}

func (m *repoMock) ListQualityGates(ctx context.Context) (entities.QualityGateList, error) {
	return result[entities.QualityGateList](m.Called(ctx))
}

func (m *repoMock) ShowQualityGate(ctx context.Context, name string) (entities.QualityGate, error) {
	return result[entities.QualityGate](m.Called(ctx, name))
}

func (m *repoMock) CreateQualityGate(ctx context.Context, name string) (entities.QualityGateName, error) {
	return result[entities.QualityGateName](m.Called(ctx, name))
}

func (m *repoMock) CopyQualityGate(ctx context.Context, sourceName, name string) (entities.QualityGateName, error) {
	return result[entities.QualityGateName](m.Called(ctx, sourceName, name))
}

func (m *repoMock) RenameQualityGate(ctx context.Context, currentName, name string) (entities.QualityGateName, error) {
	return result[entities.QualityGateName](m.Called(ctx, currentName, name))
}

func (m *repoMock) DeleteQualityGate(ctx context.Context, name string) error {
	return m.Called(ctx, name).Error(0)
}

func (m *repoMock) SetQualityGateAsDefault(ctx context.Context, name string) error {
	return m.Called(ctx, name).Error(0)
}

func (m *repoMock) CreateCondition(ctx context.Context, gateName string, cond entities.Condition) (entities.Condition, error) {
	return result[entities.Condition](m.Called(ctx, gateName, cond))
}

func (m *repoMock) UpdateCondition(ctx context.Context, cond entities.Condition) (entities.Condition, error) {
	return result[entities.Condition](m.Called(ctx, cond))
}

func (m *repoMock) DeleteCondition(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *repoMock) SearchProjects(ctx context.Context, q entities.ProjectQuery) (entities.ProjectsSearchResponse, error) {
	return result[entities.ProjectsSearchResponse](m.Called(ctx, q))
}

func (m *repoMock) AssociateProject(ctx context.Context, gateName, projectKey string) error {
	return m.Called(ctx, gateName, projectKey).Error(0)
}

func (m *repoMock) DissociateProject(ctx context.Context, gateName, projectKey string) error {
	return m.Called(ctx, gateName, projectKey).Error(0)
}

func (m *repoMock) GetGateForProject(ctx context.Context, projectKey string) (entities.QualityGate, error) {
	return result[entities.QualityGate](m.Called(ctx, projectKey))
}

func (m *repoMock) SetGateForProject(ctx context.Context, name string) error {
	return m.Called(ctx, name).Error(0)
}

func (m *repoMock) AddGateUser(ctx context.Context, gateName, login string) error {
	return m.Called(ctx, gateName, login).Error(0)
}

func (m *repoMock) RemoveGateUser(ctx context.Context, gateName, login string) error {
	return m.Called(ctx, gateName, login).Error(0)
}

func (m *repoMock) AddGateGroup(ctx context.Context, gateName, group string) error {
	return m.Called(ctx, gateName, group).Error(0)
}

func (m *repoMock) RemoveGateGroup(ctx context.Context, gateName, group string) error {
	return m.Called(ctx, gateName, group).Error(0)
}

func (m *repoMock) SearchGateUsers(ctx context.Context, q entities.PermissionQuery) (entities.UsersResponse, error) {
	return result[entities.UsersResponse](m.Called(ctx, q))
}

func (m *repoMock) SearchGateGroups(ctx context.Context, q entities.PermissionQuery) (entities.GroupsResponse, error) {
	return result[entities.GroupsResponse](m.Called(ctx, q))
}

func (m *repoMock) SearchHotspots(ctx context.Context, q entities.HotspotQuery) (entities.HotspotsSearchResponse, error) {
	return result[entities.HotspotsSearchResponse](m.Called(ctx, q))
}

func (m *repoMock) ShowHotspot(ctx context.Context, key string) (entities.Hotspot, error) {
	return result[entities.Hotspot](m.Called(ctx, key))
}

func (m *repoMock) AssignHotspot(ctx context.Context, key, assignee string) error {
	return m.Called(ctx, key, assignee).Error(0)
}

func (m *repoMock) SetHotspotStatus(
	ctx context.Context,
	key string,
	status entities.HotspotStatus,
	resolution entities.HotspotResolution,
	comment string,
) error {
	return m.Called(ctx, key, status, resolution, comment).Error(0)
}

func (m *repoMock) CommentHotspot(ctx context.Context, key, text string) (entities.HotspotComment, error) {
	return result[entities.HotspotComment](m.Called(ctx, key, text))
}

func (m *repoMock) EditHotspotComment(ctx context.Context, commentKey, text string) (entities.HotspotComment, error) {
	return result[entities.HotspotComment](m.Called(ctx, commentKey, text))
}

func (m *repoMock) DeleteHotspotComment(ctx context.Context, commentKey string) error {
	return m.Called(ctx, commentKey).Error(0)
}

func (m *repoMock) SetHotspotStatusPermission(ctx context.Context, canChange bool) error {
	return m.Called(ctx, canChange).Error(0)
}

func (m *repoMock) Reset(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
