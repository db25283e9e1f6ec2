// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"github.com/codescan-io/sonarqube-sub000/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// IssueInterface exposes issue search and mutations.
type IssueInterface interface {
	SearchIssues(ctx context.Context, q entities.IssueQuery) (entities.IssuesSearchResponse, error)
	SetIssueType(ctx context.Context, key string, issueType entities.IssueType) (*entities.IssueResponse, error)
	SetIssueSeverity(ctx context.Context, key string, severity entities.IssueSeverity) (*entities.IssueResponse, error)
	SetIssueAssignee(ctx context.Context, key, assignee string) (*entities.IssueResponse, error)
	SetIssueTags(ctx context.Context, key string, tags []string) (*entities.IssueResponse, error)
	DoIssueTransition(ctx context.Context, key string, transition entities.IssueTransition, resolution entities.IssueResolution) (*entities.IssueResponse, error)
	AddIssueComment(ctx context.Context, key, text string) (*entities.IssueResponse, error)
	EditIssueComment(ctx context.Context, commentKey, text string) (*entities.IssueResponse, error)
	DeleteIssueComment(ctx context.Context, commentKey string) (*entities.IssueResponse, error)
	BulkChangeIssues(ctx context.Context, change entities.BulkChange) (entities.BulkChangeResult, error)
	GetIssueFlowSnippets(ctx context.Context, key string) (map[string]entities.SnippetsByComponent, error)
	GetIssueChangelog(ctx context.Context, key string) (entities.ChangelogResponse, error)
	SearchIssueTags(ctx context.Context, q entities.TagsQuery) (entities.TagsResponse, error)
}

// RuleInterface exposes the rule catalogue.
type RuleInterface interface {
	SearchRules(ctx context.Context, q entities.RuleQuery) (entities.RulesSearchResponse, error)
	GetRuleDetails(ctx context.Context, key string) (entities.RuleDetailsResponse, error)
}

// UserInterface exposes the current user and the user directory.
type UserInterface interface {
	GetCurrentUser(ctx context.Context) (entities.LoggedInUser, error)
	SetCurrentUser(ctx context.Context, user entities.LoggedInUser) error
	DismissNotice(ctx context.Context, notice string) error
	SearchUsers(ctx context.Context, q entities.UserQuery) (entities.UsersResponse, error)
	SetAdmin(ctx context.Context, isAdmin bool) error
}

// QualityGateInterface exposes quality gates, their conditions and associations.
type QualityGateInterface interface {
	ListQualityGates(ctx context.Context) (entities.QualityGateList, error)
	ShowQualityGate(ctx context.Context, name string) (entities.QualityGate, error)
	CreateQualityGate(ctx context.Context, name string) (entities.QualityGateName, error)
	CopyQualityGate(ctx context.Context, sourceName, name string) (entities.QualityGateName, error)
	RenameQualityGate(ctx context.Context, currentName, name string) (entities.QualityGateName, error)
	DeleteQualityGate(ctx context.Context, name string) error
	SetQualityGateAsDefault(ctx context.Context, name string) error
	CreateCondition(ctx context.Context, gateName string, cond entities.Condition) (entities.Condition, error)
	UpdateCondition(ctx context.Context, cond entities.Condition) (entities.Condition, error)
	DeleteCondition(ctx context.Context, id string) error
	SearchProjects(ctx context.Context, q entities.ProjectQuery) (entities.ProjectsSearchResponse, error)
	AssociateProject(ctx context.Context, gateName, projectKey string) error
	DissociateProject(ctx context.Context, gateName, projectKey string) error
	GetGateForProject(ctx context.Context, projectKey string) (entities.QualityGate, error)
	SetGateForProject(ctx context.Context, name string) error
	AddGateUser(ctx context.Context, gateName, login string) error
	RemoveGateUser(ctx context.Context, gateName, login string) error
	AddGateGroup(ctx context.Context, gateName, group string) error
	RemoveGateGroup(ctx context.Context, gateName, group string) error
	SearchGateUsers(ctx context.Context, q entities.PermissionQuery) (entities.UsersResponse, error)
	SearchGateGroups(ctx context.Context, q entities.PermissionQuery) (entities.GroupsResponse, error)
}

// HotspotInterface exposes security hotspot review.
type HotspotInterface interface {
	SearchHotspots(ctx context.Context, q entities.HotspotQuery) (entities.HotspotsSearchResponse, error)
	ShowHotspot(ctx context.Context, key string) (entities.Hotspot, error)
	AssignHotspot(ctx context.Context, key, assignee string) error
	SetHotspotStatus(ctx context.Context, key string, status entities.HotspotStatus, resolution entities.HotspotResolution, comment string) error
	CommentHotspot(ctx context.Context, key, text string) (entities.HotspotComment, error)
	EditHotspotComment(ctx context.Context, commentKey, text string) (entities.HotspotComment, error)
	DeleteHotspotComment(ctx context.Context, commentKey string) error
	SetHotspotStatusPermission(ctx context.Context, canChange bool) error
}

// AdminInterface exposes test-harness controls.
type AdminInterface interface {
	Reset(ctx context.Context) error
}
