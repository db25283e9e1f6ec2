package entities

import "time"

// Paging describes the page a list response covers.
type Paging struct {
	PageIndex int `json:"pageIndex" yaml:"pageIndex"`
	PageSize  int `json:"pageSize" yaml:"pageSize"`
	Total     int `json:"total" yaml:"total"`
}

// IssueQuery is the typed form of the issues search parameters.
// Empty slices and nil bounds leave the matching filter disabled.
type IssueQuery struct {
	Assignees       []string
	Tags            []string
	CreatedAfter    *time.Time
	CreatedBefore   *time.Time
	Characteristics []IssueCharacteristic
	Types           []IssueType
	Severities      []IssueSeverity
	Scopes          []IssueScope
	Statuses        []IssueStatus
	Projects        []string
	Rules           []string
	Resolutions     []IssueResolution
	InNewCodePeriod bool
	Facets          []string
	Page            int
	PageSize        int
}

// FacetValue is a single bucket of a facet.
type FacetValue struct {
	Val   string `json:"val"`
	Count int    `json:"count"`
}

// Facet is an aggregate count over one issue property.
type Facet struct {
	Property string       `json:"property"`
	Values   []FacetValue `json:"values"`
}

// ReferenceComponent is a component referenced by search results.
type ReferenceComponent struct {
	Key     string `json:"key"`
	Name    string `json:"name"`
	UUID    string `json:"uuid"`
	Enabled bool   `json:"enabled"`
}

// Language is a language known to the platform.
type Language struct {
	Name string `json:"name"`
}

// IssuesSearchResponse is the issues search envelope.
type IssuesSearchResponse struct {
	Components  []ReferenceComponent `json:"components"`
	EffortTotal int                  `json:"effortTotal"`
	Facets      []Facet              `json:"facets"`
	Issues      []Issue              `json:"issues"`
	Languages   []Language           `json:"languages"`
	Paging      Paging               `json:"paging"`
	Rules       []Rule               `json:"rules"`
	Users       []User               `json:"users"`
}

// TagsQuery filters known issue tags.
type TagsQuery struct {
	Q        string
	PageSize int
}

// TagsResponse lists issue tags.
type TagsResponse struct {
	Tags []string `json:"tags"`
}
