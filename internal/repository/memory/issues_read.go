package memory

import (
	"context"
	"slices"
	"strings"

	"github.com/codescan-io/sonarqube-sub000/internal/entities"
	"github.com/codescan-io/sonarqube-sub000/internal/fixtures"
)

const defaultTagsPageSize = 10

// GetIssueFlowSnippets returns the code snippets the flows of an issue visit.
func (s *Store) GetIssueFlowSnippets(_ context.Context, key string) (map[string]entities.SnippetsByComponent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.issueIndex(key)
	if idx < 0 {
		return nil, issueNotFound(key)
	}
	snippets := s.st.Issues[idx].Snippets
	if snippets == nil {
		return map[string]entities.SnippetsByComponent{}, nil
	}
	return clone(snippets), nil
}

// GetIssueChangelog returns the history of an issue.
func (s *Store) GetIssueChangelog(_ context.Context, key string) (entities.ChangelogResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.issueIndex(key) < 0 {
		return entities.ChangelogResponse{}, issueNotFound(key)
	}
	return entities.ChangelogResponse{Changelog: []entities.Changelog{
		fixtures.MockChangelog(func(c *entities.Changelog) {
			c.CreationDate = "2018-09-01"
			c.Diffs = []entities.ChangelogDiff{{
				Key:      "status",
				NewValue: string(entities.StatusReopened),
				OldValue: string(entities.StatusConfirmed),
			}}
		}),
		fixtures.MockChangelog(),
	}}, nil
}

// SearchIssueTags lists the tags of the catalogue and of every issue that
// contain q, sorted and capped at the page size.
func (s *Store) SearchIssueTags(_ context.Context, q entities.TagsQuery) (entities.TagsResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(q.Q)
	tags := make([]string, 0)
	add := func(t string) {
		if strings.Contains(strings.ToLower(t), needle) && !slices.Contains(tags, t) {
			tags = append(tags, t)
		}
	}
	for _, t := range s.st.TagCatalog {
		add(t)
	}
	for _, d := range s.st.Issues {
		for _, t := range d.Issue.Tags {
			add(t)
		}
	}
	slices.Sort(tags)

	size := sizeOr(q.PageSize, defaultTagsPageSize)
	if len(tags) > size {
		tags = tags[:size]
	}
	return entities.TagsResponse{Tags: tags}, nil
}
