package mapper

import (
	"testing"
	"time"

	"github.com/codescan-io/sonarqube-sub000/internal/entities"

	"github.com/stretchr/testify/require"
)

func TestParseIssueQuery(t *testing.T) {
	q, err := ParseIssueQuery(Params{
		"assignees":       "__me__,luke",
		"tags":            "tag0, tag1,",
		"types":           "BUG,VULNERABILITY",
		"severities":      "MINOR",
		"resolutions":     "WONTFIX",
		"createdAfter":    "2022-12-31",
		"createdBefore":   "2023-01-15T09:36:01+0100",
		"inNewCodePeriod": "true",
		"facets":          "tags,owaspTop10-2021",
		"p":               "2",
	})
	require.NoError(t, err)

	require.Equal(t, []string{"__me__", "luke"}, q.Assignees)
	require.Equal(t, []string{"tag0", "tag1"}, q.Tags)
	require.Equal(t, []entities.IssueType{entities.TypeBug, entities.TypeVulnerability}, q.Types)
	require.Equal(t, []entities.IssueSeverity{entities.SeverityMinor}, q.Severities)
	require.Equal(t, []entities.IssueResolution{entities.ResolutionWontFix}, q.Resolutions)
	require.Equal(t, time.Date(2022, 12, 31, 0, 0, 0, 0, time.UTC), *q.CreatedAfter)
	require.True(t, q.CreatedBefore.Equal(time.Date(2023, 1, 15, 8, 36, 1, 0, time.UTC)))
	require.True(t, q.InNewCodePeriod)
	require.Equal(t, []string{"tags", "owaspTop10-2021"}, q.Facets)
	require.Equal(t, 2, q.Page)
	require.Zero(t, q.PageSize)
	require.Nil(t, q.Statuses)
}

func TestParseIssueQueryRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		params Params
	}{
		{name: "date", params: Params{"createdAfter": "yesterday"}},
		{name: "bool", params: Params{"inNewCodePeriod": "maybe"}},
		{name: "page", params: Params{"p": "two"}},
		{name: "negative size", params: Params{"ps": "-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseIssueQuery(tt.params)
			require.ErrorIs(t, err, entities.ErrInvalidArgument)
		})
	}
}

func TestIssueQueryEncodesBackToSameBag(t *testing.T) {
	in := Params{
		"assignees":       "luke",
		"tags":            "tag0,tag1",
		"statuses":        "OPEN,CONFIRMED",
		"scopes":          "TEST",
		"projects":        "org.project2",
		"rules":           "simpleRuleId",
		"characteristics": "SECURE",
		"createdAfter":    "2023-01-01",
		"createdBefore":   "2023-01-15T09:36:01+0100",
		"inNewCodePeriod": "true",
		"facets":          "projects",
		"p":               "3",
		"ps":              "5",
	}

	q, err := ParseIssueQuery(in)
	require.NoError(t, err)
	require.Equal(t, in, EncodeIssueQuery(q))
	require.Empty(t, EncodeIssueQuery(entities.IssueQuery{}))
}

func TestParseHotspotQuery(t *testing.T) {
	q, err := ParseHotspotQuery(Params{
		"projectKey": "benflix",
		"branch":     "b1",
		"hotspots":   "b1-test-1,b1-test-2",
		"status":     "TO_REVIEW",
		"onlyMine":   "true",
		"ps":         "500",
	})
	require.NoError(t, err)
	require.Equal(t, entities.HotspotQuery{
		ProjectKey: "benflix",
		Branch:     "b1",
		Keys:       []string{"b1-test-1", "b1-test-2"},
		Status:     entities.HotspotToReview,
		OnlyMine:   true,
		PageSize:   500,
	}, q)

	_, err = ParseHotspotQuery(Params{"onlyMine": "x"})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}

func TestParseBulkChangeAssign(t *testing.T) {
	change := ParseBulkChange(Params{"issues": "issue1,issue2", "assign": "", "add_tags": "a,b"})
	require.Equal(t, []string{"issue1", "issue2"}, change.IssueKeys)
	require.NotNil(t, change.Assign)
	require.Empty(t, *change.Assign)
	require.Equal(t, []string{"a", "b"}, change.AddTags)

	change = ParseBulkChange(Params{"issues": "issue1", "set_severity": "MAJOR"})
	require.Nil(t, change.Assign)
	require.Equal(t, entities.SeverityMajor, change.SetSeverity)
}

func TestParseGateQueries(t *testing.T) {
	pq, err := ParseProjectQuery(Params{"gateName": "Sonar way", "selected": "all", "query": "proj", "p": "1"})
	require.NoError(t, err)
	require.Equal(t, entities.ProjectQuery{GateName: "Sonar way", Selected: "all", Query: "proj", Page: 1}, pq)

	perm := ParsePermissionQuery(Params{"gateName": "Sonar way", "selected": "deselected", "q": "jo"})
	require.Equal(t, entities.PermissionQuery{GateName: "Sonar way", Selected: "deselected", Query: "jo"}, perm)

	cond := ParseCondition(Params{"id": "c1", "metric": "coverage", "op": "LT", "error": "80"})
	require.Equal(t, entities.Condition{ID: "c1", Metric: "coverage", Op: "LT", Error: "80"}, cond)
}
