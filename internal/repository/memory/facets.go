package memory

import (
	"cmp"
	"slices"

	"github.com/codescan-io/sonarqube-sub000/internal/entities"
)

// Supported facet names.
const (
	FacetTags        = "tags"
	FacetProjects    = "projects"
	FacetAssignees   = "assignees"
	FacetAuthor      = "author"
	FacetRules       = "rules"
	FacetLanguages   = "languages"
	FacetOwaspTop10  = "owaspTop10-2021"
	FacetTypes       = "types"
	FacetSeverities  = "severities"
	FacetStatuses    = "statuses"
	FacetScopes      = "scopes"
	FacetResolutions = "resolutions"

	FacetCharacteristics = "characteristics"
)

// facets computes the requested facets over the filtered issues. Unknown
// names yield a facet with no values.
func (s *Store) facets(names []string, issues []entities.Issue) []entities.Facet {
	out := make([]entities.Facet, 0, len(names))
	if len(names) == 0 {
		return out
	}

	langByRule := make(map[string]string, len(s.st.Rules))
	for _, r := range s.st.Rules {
		langByRule[r.Key] = r.Lang
	}

	for _, name := range names {
		var values func(entities.Issue) []string
		switch name {
		case FacetTags:
			values = func(i entities.Issue) []string { return i.Tags }
		case FacetProjects:
			values = func(i entities.Issue) []string { return []string{i.Project} }
		case FacetAssignees:
			values = func(i entities.Issue) []string { return []string{i.Assignee} }
		case FacetAuthor:
			values = func(i entities.Issue) []string { return []string{i.Author} }
		case FacetRules:
			values = func(i entities.Issue) []string { return []string{i.Rule} }
		case FacetLanguages:
			values = func(i entities.Issue) []string { return []string{langByRule[i.Rule]} }
		case FacetTypes:
			values = func(i entities.Issue) []string { return []string{string(i.Type)} }
		case FacetSeverities:
			values = func(i entities.Issue) []string { return []string{string(i.Severity)} }
		case FacetStatuses:
			values = func(i entities.Issue) []string { return []string{string(i.Status)} }
		case FacetScopes:
			values = func(i entities.Issue) []string { return []string{string(i.Scope)} }
		case FacetResolutions:
			values = func(i entities.Issue) []string { return []string{string(i.Resolution)} }
		case FacetCharacteristics:
			values = func(i entities.Issue) []string { return []string{string(i.Characteristic)} }
		case FacetOwaspTop10:
			out = append(out, entities.Facet{Property: name, Values: []entities.FacetValue{{Val: "a1", Count: 0}}})
			continue
		default:
			out = append(out, entities.Facet{Property: name, Values: []entities.FacetValue{}})
			continue
		}
		out = append(out, entities.Facet{Property: name, Values: countValues(issues, values)})
	}
	return out
}

// countValues buckets the non-empty values of issues, largest bucket first
// and ties broken by value.
func countValues(issues []entities.Issue, values func(entities.Issue) []string) []entities.FacetValue {
	counts := make(map[string]int)
	for _, i := range issues {
		for _, v := range values(i) {
			if v != "" {
				counts[v]++
			}
		}
	}

	out := make([]entities.FacetValue, 0, len(counts))
	for v, c := range counts {
		out = append(out, entities.FacetValue{Val: v, Count: c})
	}
	slices.SortFunc(out, func(a, b entities.FacetValue) int {
		if a.Count != b.Count {
			return cmp.Compare(b.Count, a.Count)
		}
		return cmp.Compare(a.Val, b.Val)
	})
	return out
}
