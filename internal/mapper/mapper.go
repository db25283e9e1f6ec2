// Package mapper converts between wire parameters and domain queries.
package mapper

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/codescan-io/sonarqube-sub000/internal/entities"
)

// Params is the flat parameter bag of a web API call.
type Params map[string]string

// Issue search parameter names.
const (
	ParamAssignees       = "assignees"
	ParamTags            = "tags"
	ParamCreatedAfter    = "createdAfter"
	ParamCreatedBefore   = "createdBefore"
	ParamCharacteristics = "characteristics"
	ParamTypes           = "types"
	ParamSeverities      = "severities"
	ParamScopes          = "scopes"
	ParamStatuses        = "statuses"
	ParamProjects        = "projects"
	ParamRules           = "rules"
	ParamResolutions     = "resolutions"
	ParamInNewCodePeriod = "inNewCodePeriod"
	ParamFacets          = "facets"
	ParamPage            = "p"
	ParamPageSize        = "ps"
)

// wireDateTime is the timestamp format the platform emits.
const wireDateTime = "2006-01-02T15:04:05-0700"

var dateLayouts = []string{wireDateTime, time.RFC3339, time.DateOnly}

// ParseIssueQuery turns an issues search bag into a typed query.
func ParseIssueQuery(p Params) (entities.IssueQuery, error) {
	var (
		q   entities.IssueQuery
		err error
	)
	q.Assignees = SplitList(p[ParamAssignees])
	q.Tags = SplitList(p[ParamTags])
	q.Characteristics = splitAs[entities.IssueCharacteristic](p[ParamCharacteristics])
	q.Types = splitAs[entities.IssueType](p[ParamTypes])
	q.Severities = splitAs[entities.IssueSeverity](p[ParamSeverities])
	q.Scopes = splitAs[entities.IssueScope](p[ParamScopes])
	q.Statuses = splitAs[entities.IssueStatus](p[ParamStatuses])
	q.Projects = SplitList(p[ParamProjects])
	q.Rules = SplitList(p[ParamRules])
	q.Resolutions = splitAs[entities.IssueResolution](p[ParamResolutions])
	q.Facets = SplitList(p[ParamFacets])

	if q.CreatedAfter, err = parseDate(ParamCreatedAfter, p[ParamCreatedAfter]); err != nil {
		return entities.IssueQuery{}, err
	}
	if q.CreatedBefore, err = parseDate(ParamCreatedBefore, p[ParamCreatedBefore]); err != nil {
		return entities.IssueQuery{}, err
	}
	if q.InNewCodePeriod, err = parseBool(ParamInNewCodePeriod, p[ParamInNewCodePeriod]); err != nil {
		return entities.IssueQuery{}, err
	}
	if q.Page, q.PageSize, err = parsePaging(p); err != nil {
		return entities.IssueQuery{}, err
	}
	return q, nil
}

// EncodeIssueQuery is the inverse of ParseIssueQuery. Unset filters are omitted.
func EncodeIssueQuery(q entities.IssueQuery) Params {
	p := Params{}
	putList(p, ParamAssignees, q.Assignees)
	putList(p, ParamTags, q.Tags)
	putList(p, ParamCharacteristics, joinAs(q.Characteristics))
	putList(p, ParamTypes, joinAs(q.Types))
	putList(p, ParamSeverities, joinAs(q.Severities))
	putList(p, ParamScopes, joinAs(q.Scopes))
	putList(p, ParamStatuses, joinAs(q.Statuses))
	putList(p, ParamProjects, q.Projects)
	putList(p, ParamRules, q.Rules)
	putList(p, ParamResolutions, joinAs(q.Resolutions))
	putList(p, ParamFacets, q.Facets)
	if q.CreatedAfter != nil {
		p[ParamCreatedAfter] = formatDate(*q.CreatedAfter)
	}
	if q.CreatedBefore != nil {
		p[ParamCreatedBefore] = formatDate(*q.CreatedBefore)
	}
	if q.InNewCodePeriod {
		p[ParamInNewCodePeriod] = "true"
	}
	if q.Page > 0 {
		p[ParamPage] = strconv.Itoa(q.Page)
	}
	if q.PageSize > 0 {
		p[ParamPageSize] = strconv.Itoa(q.PageSize)
	}
	return p
}

// ParseHotspotQuery reads the hotspots search bag.
func ParseHotspotQuery(p Params) (entities.HotspotQuery, error) {
	q := entities.HotspotQuery{
		ProjectKey: p["projectKey"],
		Branch:     p["branch"],
		Keys:       SplitList(p["hotspots"]),
		Status:     entities.HotspotStatus(p["status"]),
		Resolution: entities.HotspotResolution(p["resolution"]),
	}
	var err error
	if q.OnlyMine, err = parseBool("onlyMine", p["onlyMine"]); err != nil {
		return entities.HotspotQuery{}, err
	}
	if q.InNewCodePeriod, err = parseBool(ParamInNewCodePeriod, p[ParamInNewCodePeriod]); err != nil {
		return entities.HotspotQuery{}, err
	}
	if q.Page, q.PageSize, err = parsePaging(p); err != nil {
		return entities.HotspotQuery{}, err
	}
	return q, nil
}

// ParseProjectQuery reads the gate projects search bag.
func ParseProjectQuery(p Params) (entities.ProjectQuery, error) {
	page, size, err := parsePaging(p)
	if err != nil {
		return entities.ProjectQuery{}, err
	}
	return entities.ProjectQuery{
		GateName: p["gateName"],
		Selected: p["selected"],
		Query:    p["query"],
		Page:     page,
		PageSize: size,
	}, nil
}

// ParsePermissionQuery reads the gate delegation search bag.
func ParsePermissionQuery(p Params) entities.PermissionQuery {
	return entities.PermissionQuery{
		GateName: p["gateName"],
		Selected: p["selected"],
		Query:    p["q"],
	}
}

// ParseUserQuery reads the users search bag.
func ParseUserQuery(p Params) (entities.UserQuery, error) {
	page, size, err := parsePaging(p)
	if err != nil {
		return entities.UserQuery{}, err
	}
	return entities.UserQuery{Q: p["q"], Page: page, PageSize: size}, nil
}

// ParseTagsQuery reads the issue tags bag.
func ParseTagsQuery(p Params) (entities.TagsQuery, error) {
	size, err := parseInt(ParamPageSize, p[ParamPageSize])
	if err != nil {
		return entities.TagsQuery{}, err
	}
	return entities.TagsQuery{Q: p["q"], PageSize: size}, nil
}

// ParseRuleQuery reads the rules search bag.
func ParseRuleQuery(p Params) entities.RuleQuery {
	return entities.RuleQuery{Q: p["q"], Types: splitAs[entities.IssueType](p[ParamTypes])}
}

// ParseBulkChange reads the bulk change bag. An assign key that is present
// but empty unassigns.
func ParseBulkChange(p Params) entities.BulkChange {
	change := entities.BulkChange{
		IssueKeys:    SplitList(p["issues"]),
		SetSeverity:  entities.IssueSeverity(p["set_severity"]),
		SetType:      entities.IssueType(p["set_type"]),
		AddTags:      SplitList(p["add_tags"]),
		RemoveTags:   SplitList(p["remove_tags"]),
		DoTransition: entities.IssueTransition(p["do_transition"]),
	}
	if assignee, ok := p["assign"]; ok {
		change.Assign = &assignee
	}
	return change
}

// ParseCondition reads a gate condition.
func ParseCondition(p Params) entities.Condition {
	return entities.Condition{
		ID:     p["id"],
		Metric: p["metric"],
		Op:     p["op"],
		Error:  p["error"],
	}
}

// SplitList splits a comma-joined value, dropping blanks.
func SplitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, v := range parts {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func splitAs[T ~string](s string) []T {
	parts := SplitList(s)
	if parts == nil {
		return nil
	}
	out := make([]T, len(parts))
	for i, v := range parts {
		out[i] = T(v)
	}
	return out
}

func joinAs[T ~string](vals []T) []string {
	if len(vals) == 0 {
		return nil
	}
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = string(v)
	}
	return out
}

func putList(p Params, key string, vals []string) {
	if len(vals) > 0 {
		p[key] = strings.Join(vals, ",")
	}
}

func parseDate(name, s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("%w: %s: unparseable date %q", entities.ErrInvalidArgument, name, s)
}

// formatDate keeps calendar dates short so a parsed bag encodes back unchanged.
func formatDate(t time.Time) string {
	if t.Location() == time.UTC && t.Equal(t.Truncate(24*time.Hour)) {
		return t.Format(time.DateOnly)
	}
	return t.Format(wireDateTime)
}

func parseBool(name, s string) (bool, error) {
	if s == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("%w: %s must be a boolean", entities.ErrInvalidArgument, name)
	}
	return b, nil
}

func parseInt(name, s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s must be a non-negative integer", entities.ErrInvalidArgument, name)
	}
	return n, nil
}

func parsePaging(p Params) (page, size int, err error) {
	if page, err = parseInt(ParamPage, p[ParamPage]); err != nil {
		return 0, 0, err
	}
	if size, err = parseInt(ParamPageSize, p[ParamPageSize]); err != nil {
		return 0, 0, err
	}
	return page, size, nil
}
