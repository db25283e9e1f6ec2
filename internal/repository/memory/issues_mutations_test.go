package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/codescan-io/sonarqube-sub000/internal/entities"

	"github.com/stretchr/testify/require"
)

func TestSetIssueFields(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	res, err := s.SetIssueType(ctx, "issue2", entities.TypeBug)
	require.NoError(t, err)
	require.Equal(t, entities.TypeBug, res.Issue.Type)

	res, err = s.SetIssueSeverity(ctx, "issue2", entities.SeverityCritical)
	require.NoError(t, err)
	require.Equal(t, entities.SeverityCritical, res.Issue.Severity)
	require.Equal(t, entities.TypeBug, res.Issue.Type)

	res, err = s.SetIssueTags(ctx, "issue2", []string{"a", "b"})
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, res.Issue.Tags)

	res, err = s.SetIssueTags(ctx, "issue2", []string{"c"})
	require.NoError(t, err)
	require.Equal(t, []string{"c"}, res.Issue.Tags)

	_, err = s.SetIssueType(ctx, "nope", entities.TypeBug)
	require.ErrorIs(t, err, entities.ErrIssueNotFound)
	require.Contains(t, err.Error(), "No issue has been found for id nope")
}

func TestSetIssueAssignee(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	res, err := s.SetIssueAssignee(ctx, "issue2", entities.AssignToMe)
	require.NoError(t, err)
	require.Equal(t, "luke", res.Issue.Assignee)

	res, err = s.SetIssueAssignee(ctx, "issue2", "user.john")
	require.NoError(t, err)
	require.Equal(t, "user.john", res.Issue.Assignee)

	res, err = s.SetIssueAssignee(ctx, "issue2", "")
	require.NoError(t, err)
	require.Empty(t, res.Issue.Assignee)
}

func TestIssueWorkflow(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	res, err := s.DoIssueTransition(ctx, "issue2", entities.TransitionConfirm, "")
	require.NoError(t, err)
	require.Equal(t, entities.StatusConfirmed, res.Issue.Status)
	require.Equal(t, []entities.IssueTransition{
		entities.TransitionResolve, entities.TransitionUnConfirm,
		entities.TransitionFalsePositive, entities.TransitionWontFix,
	}, res.Issue.Transitions)

	res, err = s.DoIssueTransition(ctx, "issue2", entities.TransitionResolve, entities.ResolutionFixed)
	require.NoError(t, err)
	require.Equal(t, entities.StatusResolved, res.Issue.Status)
	require.Equal(t, entities.ResolutionFixed, res.Issue.Resolution)
	require.Equal(t, []entities.IssueTransition{entities.TransitionReopen}, res.Issue.Transitions)

	res, err = s.DoIssueTransition(ctx, "issue2", entities.TransitionReopen, "")
	require.NoError(t, err)
	require.Equal(t, entities.StatusReopened, res.Issue.Status)
	require.Empty(t, res.Issue.Resolution)

	res, err = s.DoIssueTransition(ctx, "issue2", entities.TransitionFalsePositive, "")
	require.NoError(t, err)
	require.Equal(t, entities.StatusResolved, res.Issue.Status)
	require.Equal(t, entities.ResolutionFalsePositive, res.Issue.Resolution)
}

func TestIssueWorkflowRejections(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.DoIssueTransition(ctx, "issue2", "explode", "")
	require.ErrorIs(t, err, entities.ErrUnknownTransition)

	_, err = s.DoIssueTransition(ctx, "issue2", entities.TransitionReopen, "")
	require.ErrorIs(t, err, entities.ErrUnknownTransition)

	_, err = s.DoIssueTransition(ctx, "issue2", entities.TransitionUnConfirm, "")
	require.ErrorIs(t, err, entities.ErrUnknownTransition)

	res, err := s.SearchIssues(ctx, entities.IssueQuery{Statuses: []entities.IssueStatus{entities.StatusOpen}})
	require.NoError(t, err)
	require.Contains(t, issueKeys(res.Issues), "issue2")
}

func TestResolvedIssueOnlyReopens(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	res, err := s.DoIssueTransition(ctx, "issue2", entities.TransitionWontFix, "")
	require.NoError(t, err)
	require.Equal(t, entities.StatusResolved, res.Issue.Status)

	for _, tr := range []entities.IssueTransition{
		entities.TransitionConfirm, entities.TransitionUnConfirm, entities.TransitionResolve,
		entities.TransitionFalsePositive, entities.TransitionWontFix,
	} {
		_, err := s.DoIssueTransition(ctx, "issue2", tr, "")
		require.ErrorIs(t, err, entities.ErrUnknownTransition, string(tr))
	}

	search, err := s.SearchIssues(ctx, entities.IssueQuery{Statuses: []entities.IssueStatus{entities.StatusResolved}})
	require.NoError(t, err)
	require.Contains(t, issueKeys(search.Issues), "issue2")

	res, err = s.DoIssueTransition(ctx, "issue2", entities.TransitionReopen, "")
	require.NoError(t, err)
	require.Equal(t, entities.StatusReopened, res.Issue.Status)
}

func TestConcurrentCommentDeletesRemoveOnce(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	res, err := s.AddIssueComment(ctx, "issue2", "racy")
	require.NoError(t, err)
	key := res.Issue.Comments[0].Key

	const workers = 8
	errs := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.DeleteIssueComment(ctx, key)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	deleted := 0
	for err := range errs {
		if err == nil {
			deleted++
			continue
		}
		require.ErrorIs(t, err, entities.ErrCommentNotFound)
	}
	require.Equal(t, 1, deleted)
}

func TestIssueComments(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	res, err := s.AddIssueComment(ctx, "issue2", "first")
	require.NoError(t, err)
	res, err = s.AddIssueComment(ctx, "issue2", "second")
	require.NoError(t, err)
	require.Len(t, res.Issue.Comments, 2)

	first := res.Issue.Comments[0]
	require.NotEmpty(t, first.Key)
	require.NotEqual(t, first.Key, res.Issue.Comments[1].Key)
	require.Equal(t, commentAuthor, first.Login)
	require.Equal(t, "first", first.Markdown)
	require.Equal(t, "first", first.HTMLText)
	require.True(t, first.Updatable)

	res, err = s.EditIssueComment(ctx, first.Key, "edited")
	require.NoError(t, err)
	require.Equal(t, "edited", res.Issue.Comments[0].Markdown)
	require.Equal(t, "second", res.Issue.Comments[1].Markdown)

	res, err = s.DeleteIssueComment(ctx, first.Key)
	require.NoError(t, err)
	require.Len(t, res.Issue.Comments, 1)
	require.Equal(t, "second", res.Issue.Comments[0].Markdown)

	_, err = s.EditIssueComment(ctx, first.Key, "again")
	require.ErrorIs(t, err, entities.ErrCommentNotFound)
	_, err = s.DeleteIssueComment(ctx, "missing")
	require.ErrorIs(t, err, entities.ErrCommentNotFound)
	_, err = s.AddIssueComment(ctx, "missing", "text")
	require.ErrorIs(t, err, entities.ErrIssueNotFound)
}

func TestBulkChangeIssues(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	me := entities.AssignToMe
	res, err := s.BulkChangeIssues(ctx, entities.BulkChange{
		IssueKeys:   []string{"issue2", "issue3", "ghost"},
		SetSeverity: entities.SeverityInfo,
		AddTags:     []string{"bulk"},
		RemoveTags:  []string{"unused"},
		Assign:      &me,
	})
	require.NoError(t, err)
	require.Equal(t, entities.BulkChangeResult{Total: 3, Success: 2, Ignored: 1}, res)

	search, err := s.SearchIssues(ctx, entities.IssueQuery{Severities: []entities.IssueSeverity{entities.SeverityInfo}})
	require.NoError(t, err)
	require.Equal(t, []string{"issue2", "issue3"}, issueKeys(search.Issues))
	for _, i := range search.Issues {
		require.Equal(t, "luke", i.Assignee)
		require.Contains(t, i.Tags, "bulk")
	}
}

func TestBulkChangeTransitionFailures(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	res, err := s.BulkChangeIssues(ctx, entities.BulkChange{
		IssueKeys:    []string{"issue2", "issue4"},
		SetType:      entities.TypeBug,
		DoTransition: entities.TransitionReopen,
	})
	require.NoError(t, err)
	require.Equal(t, entities.BulkChangeResult{Total: 2, Failures: 2}, res)

	search, err := s.SearchIssues(ctx, entities.IssueQuery{Types: []entities.IssueType{entities.TypeBug}})
	require.NoError(t, err)
	require.Zero(t, search.Paging.Total)
}

func TestIssueReads(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	snippets, err := s.GetIssueFlowSnippets(ctx, "issue11")
	require.NoError(t, err)
	require.Contains(t, snippets, "foo:test1.js")
	require.Contains(t, snippets, "foo:test2.js")
	require.Len(t, snippets["foo:test1.js"].Sources, 40)

	_, err = s.GetIssueFlowSnippets(ctx, "ghost")
	require.ErrorIs(t, err, entities.ErrIssueNotFound)

	changelog, err := s.GetIssueChangelog(ctx, "issue2")
	require.NoError(t, err)
	require.Len(t, changelog.Changelog, 2)
	require.Equal(t, "status", changelog.Changelog[0].Diffs[0].Key)

	_, err = s.GetIssueChangelog(ctx, "ghost")
	require.ErrorIs(t, err, entities.ErrIssueNotFound)

	tags, err := s.SearchIssueTags(ctx, entities.TagsQuery{})
	require.NoError(t, err)
	require.Equal(t, []string{"accessibility", "android", "tag0", "tag1", "unused"}, tags.Tags)

	tags, err = s.SearchIssueTags(ctx, entities.TagsQuery{Q: "AN", PageSize: 1})
	require.NoError(t, err)
	require.Equal(t, []string{"android"}, tags.Tags)
}
