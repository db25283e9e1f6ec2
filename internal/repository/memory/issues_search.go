package memory

import (
	"context"
	"slices"
	"time"

	"github.com/codescan-io/sonarqube-sub000/internal/entities"
)

var dateLayouts = []string{
	"2006-01-02T15:04:05-0700",
	time.RFC3339,
	"2006-01-02",
}

func parseDate(v string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

type issuePredicate func(entities.Issue) bool

// issueFilters returns one predicate per active filter of q. An issue matches
// the query when every predicate holds.
func (s *Store) issueFilters(q entities.IssueQuery) []issuePredicate {
	var preds []issuePredicate

	if len(q.Assignees) > 0 {
		assignees := make([]string, 0, len(q.Assignees))
		for _, a := range q.Assignees {
			if a == entities.AssigneeMe {
				a = s.st.CurrentUser.Login
			}
			assignees = append(assignees, a)
		}
		preds = append(preds, func(i entities.Issue) bool {
			return slices.Contains(assignees, i.Assignee)
		})
	}
	if len(q.Tags) > 0 {
		preds = append(preds, func(i entities.Issue) bool {
			return slices.ContainsFunc(i.Tags, func(t string) bool { return slices.Contains(q.Tags, t) })
		})
	}
	if q.CreatedAfter != nil {
		after := *q.CreatedAfter
		preds = append(preds, func(i entities.Issue) bool {
			created, ok := parseDate(i.CreationDate)
			return ok && !created.Before(after)
		})
	}
	if q.CreatedBefore != nil {
		before := *q.CreatedBefore
		preds = append(preds, func(i entities.Issue) bool {
			created, ok := parseDate(i.CreationDate)
			return ok && !created.After(before)
		})
	}
	if len(q.Characteristics) > 0 {
		preds = append(preds, func(i entities.Issue) bool { return slices.Contains(q.Characteristics, i.Characteristic) })
	}
	if len(q.Types) > 0 {
		preds = append(preds, func(i entities.Issue) bool { return slices.Contains(q.Types, i.Type) })
	}
	if len(q.Severities) > 0 {
		preds = append(preds, func(i entities.Issue) bool { return slices.Contains(q.Severities, i.Severity) })
	}
	if len(q.Scopes) > 0 {
		preds = append(preds, func(i entities.Issue) bool { return slices.Contains(q.Scopes, i.Scope) })
	}
	if len(q.Statuses) > 0 {
		preds = append(preds, func(i entities.Issue) bool { return slices.Contains(q.Statuses, i.Status) })
	}
	if len(q.Projects) > 0 {
		preds = append(preds, func(i entities.Issue) bool { return slices.Contains(q.Projects, i.Project) })
	}
	if len(q.Rules) > 0 {
		preds = append(preds, func(i entities.Issue) bool { return slices.Contains(q.Rules, i.Rule) })
	}
	if len(q.Resolutions) > 0 {
		preds = append(preds, func(i entities.Issue) bool { return slices.Contains(q.Resolutions, i.Resolution) })
	}
	if q.InNewCodePeriod {
		cutoff := s.newCodeCutoff
		preds = append(preds, func(i entities.Issue) bool {
			created, ok := parseDate(i.CreationDate)
			return ok && created.After(cutoff)
		})
	}
	return preds
}

func matchAll(i entities.Issue, preds []issuePredicate) bool {
	for _, p := range preds {
		if !p(i) {
			return false
		}
	}
	return true
}

// SearchIssues filters, facets and paginates the issue list. Pages hold the
// store's page size whatever the query asks for.
func (s *Store) SearchIssues(_ context.Context, q entities.IssueQuery) (entities.IssuesSearchResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	preds := s.issueFilters(q)
	filtered := make([]entities.Issue, 0, len(s.st.Issues))
	for _, d := range s.st.Issues {
		if matchAll(d.Issue, preds) {
			filtered = append(filtered, d.Issue)
		}
	}

	page := pageOrFirst(q.Page)
	size := s.pageSize

	resp := entities.IssuesSearchResponse{
		Components:  referenceComponents(filtered),
		EffortTotal: effortTotal,
		Facets:      s.facets(q.Facets, filtered),
		Issues:      paginate(filtered, page, size),
		Languages:   s.st.Languages,
		Paging:      entities.Paging{PageIndex: page, PageSize: size, Total: len(filtered)},
		Rules:       s.st.Rules,
		Users:       s.st.ReferencedUsers,
	}
	return clone(resp), nil
}

// referenceComponents lists each distinct component of issues once, in
// first-seen order.
func referenceComponents(issues []entities.Issue) []entities.ReferenceComponent {
	seen := make(map[string]struct{}, len(issues))
	out := make([]entities.ReferenceComponent, 0)
	for _, i := range issues {
		if _, ok := seen[i.Component]; ok {
			continue
		}
		seen[i.Component] = struct{}{}
		out = append(out, entities.ReferenceComponent{
			Key:     i.Component,
			Name:    i.Component,
			UUID:    i.Component,
			Enabled: true,
		})
	}
	return out
}
