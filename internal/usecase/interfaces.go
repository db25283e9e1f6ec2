package usecase

import (
	"context"

	"github.com/codescan-io/sonarqube-sub000/internal/entities"
)

// IssueUsecaseInterface abstracts issue search and edits for the delivery layer.
type IssueUsecaseInterface interface {
	SearchIssues(ctx context.Context, q entities.IssueQuery) (entities.IssuesSearchResponse, error)
	SetType(ctx context.Context, key string, issueType entities.IssueType) (*entities.IssueResponse, error)
	SetSeverity(ctx context.Context, key string, severity entities.IssueSeverity) (*entities.IssueResponse, error)
	Assign(ctx context.Context, key, assignee string) (*entities.IssueResponse, error)
	SetTags(ctx context.Context, key string, tags []string) (*entities.IssueResponse, error)
	DoTransition(ctx context.Context, key string, transition entities.IssueTransition, resolution entities.IssueResolution) (*entities.IssueResponse, error)
	AddComment(ctx context.Context, key, text string) (*entities.IssueResponse, error)
	EditComment(ctx context.Context, commentKey, text string) (*entities.IssueResponse, error)
	DeleteComment(ctx context.Context, commentKey string) (*entities.IssueResponse, error)
	BulkChange(ctx context.Context, change entities.BulkChange) (entities.BulkChangeResult, error)
	FlowSnippets(ctx context.Context, key string) (map[string]entities.SnippetsByComponent, error)
	Changelog(ctx context.Context, key string) (entities.ChangelogResponse, error)
	SearchTags(ctx context.Context, q entities.TagsQuery) (entities.TagsResponse, error)
}

// RuleUsecaseInterface abstracts the rule catalogue.
type RuleUsecaseInterface interface {
	SearchRules(ctx context.Context, q entities.RuleQuery) (entities.RulesSearchResponse, error)
	RuleDetails(ctx context.Context, key string) (entities.RuleDetailsResponse, error)
}

// UserUsecaseInterface abstracts the current user and the user directory.
type UserUsecaseInterface interface {
	CurrentUser(ctx context.Context) (entities.LoggedInUser, error)
	SetCurrentUser(ctx context.Context, user entities.LoggedInUser) error
	DismissNotice(ctx context.Context, notice string) error
	SearchUsers(ctx context.Context, q entities.UserQuery) (entities.UsersResponse, error)
	SetAdmin(ctx context.Context, isAdmin bool) error
}

// QualityGateUsecaseInterface abstracts quality gate management.
type QualityGateUsecaseInterface interface {
	ListGates(ctx context.Context) (entities.QualityGateList, error)
	ShowGate(ctx context.Context, name string) (entities.QualityGate, error)
	CreateGate(ctx context.Context, name string) (entities.QualityGateName, error)
	CopyGate(ctx context.Context, sourceName, name string) (entities.QualityGateName, error)
	RenameGate(ctx context.Context, currentName, name string) (entities.QualityGateName, error)
	DeleteGate(ctx context.Context, name string) error
	SetDefaultGate(ctx context.Context, name string) error
	CreateCondition(ctx context.Context, gateName string, cond entities.Condition) (entities.Condition, error)
	UpdateCondition(ctx context.Context, cond entities.Condition) (entities.Condition, error)
	DeleteCondition(ctx context.Context, id string) error
	SearchProjects(ctx context.Context, q entities.ProjectQuery) (entities.ProjectsSearchResponse, error)
	AssociateProject(ctx context.Context, gateName, projectKey string) error
	DissociateProject(ctx context.Context, gateName, projectKey string) error
	GateForProject(ctx context.Context, projectKey string) (entities.QualityGate, error)
	SetGateForProject(ctx context.Context, name string) error
	AddGateUser(ctx context.Context, gateName, login string) error
	RemoveGateUser(ctx context.Context, gateName, login string) error
	AddGateGroup(ctx context.Context, gateName, group string) error
	RemoveGateGroup(ctx context.Context, gateName, group string) error
	SearchGateUsers(ctx context.Context, q entities.PermissionQuery) (entities.UsersResponse, error)
	SearchGateGroups(ctx context.Context, q entities.PermissionQuery) (entities.GroupsResponse, error)
}

// HotspotUsecaseInterface abstracts security hotspot review.
type HotspotUsecaseInterface interface {
	SearchHotspots(ctx context.Context, q entities.HotspotQuery) (entities.HotspotsSearchResponse, error)
	ShowHotspot(ctx context.Context, key string) (entities.Hotspot, error)
	AssignHotspot(ctx context.Context, key, assignee string) error
	SetHotspotStatus(ctx context.Context, key string, status entities.HotspotStatus, resolution entities.HotspotResolution, comment string) error
	CommentHotspot(ctx context.Context, key, text string) (entities.HotspotComment, error)
	EditHotspotComment(ctx context.Context, commentKey, text string) (entities.HotspotComment, error)
	DeleteHotspotComment(ctx context.Context, commentKey string) error
	SetHotspotStatusPermission(ctx context.Context, canChange bool) error
}

// AdminUsecaseInterface abstracts test-harness controls.
type AdminUsecaseInterface interface {
	Reset(ctx context.Context) error
}
