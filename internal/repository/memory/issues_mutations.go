package memory

import (
	"context"
	"fmt"
	"slices"

	"github.com/codescan-io/sonarqube-sub000/internal/entities"

	"github.com/google/uuid"
)

type transitionOutcome struct {
	status     entities.IssueStatus
	resolution entities.IssueResolution
}

var transitionOutcomes = map[entities.IssueTransition]transitionOutcome{
	entities.TransitionConfirm:       {entities.StatusConfirmed, entities.ResolutionUnresolved},
	entities.TransitionUnConfirm:     {entities.StatusReopened, entities.ResolutionUnresolved},
	entities.TransitionResolve:       {entities.StatusResolved, entities.ResolutionUnresolved},
	entities.TransitionWontFix:       {entities.StatusResolved, entities.ResolutionWontFix},
	entities.TransitionFalsePositive: {entities.StatusResolved, entities.ResolutionFalsePositive},
	entities.TransitionReopen:        {entities.StatusReopened, entities.ResolutionUnresolved},
}

var availableTransitions = map[entities.IssueStatus][]entities.IssueTransition{
	entities.StatusOpen: {
		entities.TransitionConfirm, entities.TransitionResolve,
		entities.TransitionFalsePositive, entities.TransitionWontFix,
	},
	entities.StatusReopened: {
		entities.TransitionConfirm, entities.TransitionResolve,
		entities.TransitionFalsePositive, entities.TransitionWontFix,
	},
	entities.StatusConfirmed: {
		entities.TransitionResolve, entities.TransitionUnConfirm,
		entities.TransitionFalsePositive, entities.TransitionWontFix,
	},
	entities.StatusResolved: {entities.TransitionReopen},
}

func issueNotFound(key string) error {
	return fmt.Errorf("%w: No issue has been found for id %s", entities.ErrIssueNotFound, key)
}

func (s *Store) issueIndex(key string) int {
	return slices.IndexFunc(s.st.Issues, func(d entities.IssueData) bool { return d.Issue.Key == key })
}

// patchIssue applies patch to the stored issue and returns a copy of the result.
func (s *Store) patchIssue(ctx context.Context, key string, patch func(*entities.Issue) error) (*entities.IssueResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.issueIndex(key)
	if idx < 0 {
		return nil, issueNotFound(key)
	}
	updated := clone(s.st.Issues[idx].Issue)
	if err := patch(&updated); err != nil {
		return nil, err
	}
	s.st.Issues[idx].Issue = updated
	s.persist(ctx)

	return &entities.IssueResponse{Issue: clone(updated)}, nil
}

// SetIssueType changes the type of an issue.
func (s *Store) SetIssueType(ctx context.Context, key string, issueType entities.IssueType) (*entities.IssueResponse, error) {
	return s.patchIssue(ctx, key, func(i *entities.Issue) error {
		i.Type = issueType
		return nil
	})
}

// SetIssueSeverity changes the severity of an issue.
func (s *Store) SetIssueSeverity(ctx context.Context, key string, severity entities.IssueSeverity) (*entities.IssueResponse, error) {
	return s.patchIssue(ctx, key, func(i *entities.Issue) error {
		i.Severity = severity
		return nil
	})
}

// SetIssueAssignee assigns an issue. "_me" resolves to the current user and
// an empty assignee unassigns.
func (s *Store) SetIssueAssignee(ctx context.Context, key, assignee string) (*entities.IssueResponse, error) {
	return s.patchIssue(ctx, key, func(i *entities.Issue) error {
		i.Assignee = s.resolveAssignee(assignee)
		return nil
	})
}

func (s *Store) resolveAssignee(assignee string) string {
	if assignee == entities.AssignToMe {
		return s.st.CurrentUser.Login
	}
	return assignee
}

// SetIssueTags replaces the tags of an issue.
func (s *Store) SetIssueTags(ctx context.Context, key string, tags []string) (*entities.IssueResponse, error) {
	return s.patchIssue(ctx, key, func(i *entities.Issue) error {
		i.Tags = append([]string{}, tags...)
		return nil
	})
}

// DoIssueTransition moves an issue through the workflow. The resolution is
// only honoured by the resolve transition.
func (s *Store) DoIssueTransition(
	ctx context.Context,
	key string,
	transition entities.IssueTransition,
	resolution entities.IssueResolution,
) (*entities.IssueResponse, error) {
	return s.patchIssue(ctx, key, func(i *entities.Issue) error {
		return applyTransition(i, transition, resolution)
	})
}

func applyTransition(i *entities.Issue, transition entities.IssueTransition, resolution entities.IssueResolution) error {
	outcome, ok := transitionOutcomes[transition]
	if !ok {
		return fmt.Errorf("%w: %s", entities.ErrUnknownTransition, transition)
	}
	if !slices.Contains(availableTransitions[i.Status], transition) {
		return fmt.Errorf("%w: %s is not available for an issue with status %s", entities.ErrUnknownTransition, transition, i.Status)
	}
	if transition == entities.TransitionResolve {
		outcome.resolution = resolution
	}
	i.Status = outcome.status
	i.Resolution = outcome.resolution
	i.Transitions = append([]entities.IssueTransition{}, availableTransitions[outcome.status]...)
	return nil
}

// AddIssueComment appends a comment to an issue.
func (s *Store) AddIssueComment(ctx context.Context, key, text string) (*entities.IssueResponse, error) {
	return s.patchIssue(ctx, key, func(i *entities.Issue) error {
		i.Comments = append(i.Comments, entities.IssueComment{
			Key:       uuid.NewString(),
			Login:     commentAuthor,
			HTMLText:  text,
			Markdown:  text,
			CreatedAt: commentCreatedAt,
			Updatable: true,
		})
		return nil
	})
}

// commentOwner returns the key of the issue holding commentKey. It only holds
// the read lock, so callers must look the comment up again inside patchIssue.
func (s *Store) commentOwner(commentKey string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, d := range s.st.Issues {
		for _, c := range d.Issue.Comments {
			if c.Key == commentKey {
				return d.Issue.Key, true
			}
		}
	}
	return "", false
}

func commentNotFound(key string) error {
	return fmt.Errorf("%w: No comment has been found for id %s", entities.ErrCommentNotFound, key)
}

// EditIssueComment replaces the text of a comment.
func (s *Store) EditIssueComment(ctx context.Context, commentKey, text string) (*entities.IssueResponse, error) {
	owner, ok := s.commentOwner(commentKey)
	if !ok {
		return nil, commentNotFound(commentKey)
	}
	return s.patchIssue(ctx, owner, func(i *entities.Issue) error {
		idx := slices.IndexFunc(i.Comments, func(c entities.IssueComment) bool { return c.Key == commentKey })
		if idx < 0 {
			return commentNotFound(commentKey)
		}
		i.Comments[idx].HTMLText = text
		i.Comments[idx].Markdown = text
		return nil
	})
}

// DeleteIssueComment removes a comment.
func (s *Store) DeleteIssueComment(ctx context.Context, commentKey string) (*entities.IssueResponse, error) {
	owner, ok := s.commentOwner(commentKey)
	if !ok {
		return nil, commentNotFound(commentKey)
	}
	return s.patchIssue(ctx, owner, func(i *entities.Issue) error {
		before := len(i.Comments)
		i.Comments = slices.DeleteFunc(i.Comments, func(c entities.IssueComment) bool { return c.Key == commentKey })
		if len(i.Comments) == before {
			return commentNotFound(commentKey)
		}
		return nil
	})
}

// BulkChangeIssues applies the same edit to every listed issue. Unknown keys
// are ignored and issues the transition does not apply to count as failures.
func (s *Store) BulkChangeIssues(ctx context.Context, change entities.BulkChange) (entities.BulkChangeResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := entities.BulkChangeResult{Total: len(change.IssueKeys)}
	for _, key := range change.IssueKeys {
		idx := s.issueIndex(key)
		if idx < 0 {
			res.Ignored++
			continue
		}
		updated := clone(s.st.Issues[idx].Issue)
		if err := s.applyBulkChange(&updated, change); err != nil {
			s.log.Warnw("bulk change skipped issue", "issue", key, "error", err)
			res.Failures++
			continue
		}
		s.st.Issues[idx].Issue = updated
		res.Success++
	}
	if res.Success > 0 {
		s.persist(ctx)
	}
	return res, nil
}

func (s *Store) applyBulkChange(i *entities.Issue, change entities.BulkChange) error {
	if change.SetSeverity != "" {
		i.Severity = change.SetSeverity
	}
	if change.SetType != "" {
		i.Type = change.SetType
	}
	if change.Assign != nil {
		i.Assignee = s.resolveAssignee(*change.Assign)
	}
	if len(change.AddTags) > 0 || len(change.RemoveTags) > 0 {
		tags := slices.DeleteFunc(append([]string{}, i.Tags...), func(t string) bool {
			return slices.Contains(change.RemoveTags, t)
		})
		for _, t := range change.AddTags {
			if !slices.Contains(tags, t) {
				tags = append(tags, t)
			}
		}
		i.Tags = tags
	}
	if change.DoTransition != "" {
		return applyTransition(i, change.DoTransition, entities.ResolutionUnresolved)
	}
	return nil
}
