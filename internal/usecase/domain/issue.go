// Package domain contains application services orchestrating the store.
package domain

import (
	"context"
	"fmt"

	"github.com/codescan-io/sonarqube-sub000/internal/entities"
)

// SearchIssues runs a filtered, faceted issue search.
func (u *Usecase) SearchIssues(ctx context.Context, q entities.IssueQuery) (entities.IssuesSearchResponse, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if q.Page < 0 || q.PageSize < 0 {
		return entities.IssuesSearchResponse{}, fmt.Errorf("%w: paging must not be negative", entities.ErrInvalidArgument)
	}
	if q.CreatedAfter != nil && q.CreatedBefore != nil && q.CreatedAfter.After(*q.CreatedBefore) {
		return entities.IssuesSearchResponse{}, fmt.Errorf("%w: createdAfter is after createdBefore", entities.ErrInvalidArgument)
	}
	return u.repo.SearchIssues(ctx, q)
}

// SetType changes an issue's type.
func (u *Usecase) SetType(ctx context.Context, key string, issueType entities.IssueType) (*entities.IssueResponse, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if key == "" {
		return nil, fmt.Errorf("%w: issue is required", entities.ErrInvalidArgument)
	}
	if !issueType.Valid() {
		return nil, fmt.Errorf("%w: unknown type %q", entities.ErrInvalidArgument, issueType)
	}
	res, err := u.repo.SetIssueType(ctx, key, issueType)
	if err != nil {
		return nil, err
	}
	u.log.Infow("issue type set", "issue", key, "type", issueType)
	return res, nil
}

// SetSeverity changes an issue's severity.
func (u *Usecase) SetSeverity(ctx context.Context, key string, severity entities.IssueSeverity) (*entities.IssueResponse, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if key == "" {
		return nil, fmt.Errorf("%w: issue is required", entities.ErrInvalidArgument)
	}
	if !severity.Valid() {
		return nil, fmt.Errorf("%w: unknown severity %q", entities.ErrInvalidArgument, severity)
	}
	res, err := u.repo.SetIssueSeverity(ctx, key, severity)
	if err != nil {
		return nil, err
	}
	u.log.Infow("issue severity set", "issue", key, "severity", severity)
	return res, nil
}

// Assign assigns or, with an empty assignee, unassigns an issue.
func (u *Usecase) Assign(ctx context.Context, key, assignee string) (*entities.IssueResponse, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if key == "" {
		return nil, fmt.Errorf("%w: issue is required", entities.ErrInvalidArgument)
	}
	return u.repo.SetIssueAssignee(ctx, key, assignee)
}

// SetTags replaces an issue's tags.
func (u *Usecase) SetTags(ctx context.Context, key string, tags []string) (*entities.IssueResponse, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if key == "" {
		return nil, fmt.Errorf("%w: issue is required", entities.ErrInvalidArgument)
	}
	return u.repo.SetIssueTags(ctx, key, tags)
}

// DoTransition moves an issue through the workflow.
func (u *Usecase) DoTransition(
	ctx context.Context,
	key string,
	transition entities.IssueTransition,
	resolution entities.IssueResolution,
) (*entities.IssueResponse, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if key == "" || transition == "" {
		return nil, fmt.Errorf("%w: issue and transition are required", entities.ErrInvalidArgument)
	}
	res, err := u.repo.DoIssueTransition(ctx, key, transition, resolution)
	if err != nil {
		return nil, err
	}
	u.log.Infow("issue transition", "issue", key, "transition", transition, "status", res.Issue.Status)
	return res, nil
}

// AddComment comments an issue.
func (u *Usecase) AddComment(ctx context.Context, key, text string) (*entities.IssueResponse, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if key == "" || text == "" {
		return nil, fmt.Errorf("%w: issue and text are required", entities.ErrInvalidArgument)
	}
	return u.repo.AddIssueComment(ctx, key, text)
}

// EditComment rewrites a comment.
func (u *Usecase) EditComment(ctx context.Context, commentKey, text string) (*entities.IssueResponse, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if commentKey == "" || text == "" {
		return nil, fmt.Errorf("%w: comment and text are required", entities.ErrInvalidArgument)
	}
	return u.repo.EditIssueComment(ctx, commentKey, text)
}

// DeleteComment removes a comment.
func (u *Usecase) DeleteComment(ctx context.Context, commentKey string) (*entities.IssueResponse, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if commentKey == "" {
		return nil, fmt.Errorf("%w: comment is required", entities.ErrInvalidArgument)
	}
	return u.repo.DeleteIssueComment(ctx, commentKey)
}

// BulkChange applies one edit to many issues.
func (u *Usecase) BulkChange(ctx context.Context, change entities.BulkChange) (entities.BulkChangeResult, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if len(change.IssueKeys) == 0 {
		return entities.BulkChangeResult{}, fmt.Errorf("%w: issues are required", entities.ErrInvalidArgument)
	}
	if change.SetSeverity != "" && !change.SetSeverity.Valid() {
		return entities.BulkChangeResult{}, fmt.Errorf("%w: unknown severity %q", entities.ErrInvalidArgument, change.SetSeverity)
	}
	if change.SetType != "" && !change.SetType.Valid() {
		return entities.BulkChangeResult{}, fmt.Errorf("%w: unknown type %q", entities.ErrInvalidArgument, change.SetType)
	}
	res, err := u.repo.BulkChangeIssues(ctx, change)
	if err != nil {
		return entities.BulkChangeResult{}, err
	}
	u.log.Infow("bulk change", "total", res.Total, "success", res.Success, "failures", res.Failures)
	return res, nil
}

// FlowSnippets returns the code the flows of an issue visit.
func (u *Usecase) FlowSnippets(ctx context.Context, key string) (map[string]entities.SnippetsByComponent, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if key == "" {
		return nil, fmt.Errorf("%w: issueKey is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetIssueFlowSnippets(ctx, key)
}

// Changelog returns an issue's history.
func (u *Usecase) Changelog(ctx context.Context, key string) (entities.ChangelogResponse, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if key == "" {
		return entities.ChangelogResponse{}, fmt.Errorf("%w: issue is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetIssueChangelog(ctx, key)
}

// SearchTags lists known issue tags.
func (u *Usecase) SearchTags(ctx context.Context, q entities.TagsQuery) (entities.TagsResponse, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.SearchIssueTags(ctx, q)
}
