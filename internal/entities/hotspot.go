package entities

// HotspotStatus enumerates review states.
type HotspotStatus string

const (
	HotspotToReview HotspotStatus = "TO_REVIEW"
	HotspotReviewed HotspotStatus = "REVIEWED"
)

// Valid reports whether s is a known review state.
func (s HotspotStatus) Valid() bool {
	return s == HotspotToReview || s == HotspotReviewed
}

// HotspotResolution enumerates review outcomes.
type HotspotResolution string

const (
	HotspotFixed        HotspotResolution = "FIXED"
	HotspotSafe         HotspotResolution = "SAFE"
	HotspotAcknowledged HotspotResolution = "ACKNOWLEDGED"
)

// Valid reports whether r is a known review outcome.
func (r HotspotResolution) Valid() bool {
	switch r {
	case HotspotFixed, HotspotSafe, HotspotAcknowledged:
		return true
	}
	return false
}

// HotspotRule is the rule that raised a hotspot.
type HotspotRule struct {
	Key                      string `json:"key" yaml:"key"`
	Name                     string `json:"name" yaml:"name"`
	SecurityCategory         string `json:"securityCategory" yaml:"securityCategory"`
	VulnerabilityProbability string `json:"vulnerabilityProbability" yaml:"vulnerabilityProbability"`
}

// HotspotComment is a comment on a hotspot.
type HotspotComment struct {
	Key       string `json:"key" yaml:"key"`
	Login     string `json:"login" yaml:"login"`
	HTMLText  string `json:"htmlText" yaml:"htmlText"`
	Markdown  string `json:"markdown" yaml:"markdown"`
	CreatedAt string `json:"createdAt" yaml:"createdAt"`
	Updatable bool   `json:"updatable" yaml:"updatable"`
}

// Hotspot is the detailed view of a security hotspot.
type Hotspot struct {
	Key             string            `json:"key" yaml:"key"`
	Component       string            `json:"component" yaml:"component"`
	Project         string            `json:"project" yaml:"project"`
	Branch          string            `json:"branch,omitempty" yaml:"branch,omitempty"`
	Rule            HotspotRule       `json:"rule" yaml:"rule"`
	Status          HotspotStatus     `json:"status" yaml:"status"`
	Resolution      HotspotResolution `json:"resolution,omitempty" yaml:"resolution,omitempty"`
	Message         string            `json:"message" yaml:"message"`
	Line            int               `json:"line,omitempty" yaml:"line,omitempty"`
	TextRange       *TextRange        `json:"textRange,omitempty" yaml:"textRange,omitempty"`
	Author          string            `json:"author,omitempty" yaml:"author,omitempty"`
	Assignee        string            `json:"assignee,omitempty" yaml:"assignee,omitempty"`
	AssigneeUser    *User             `json:"assigneeUser,omitempty" yaml:"assigneeUser,omitempty"`
	CreationDate    string            `json:"creationDate" yaml:"creationDate"`
	UpdateDate      string            `json:"updateDate" yaml:"updateDate"`
	Comment         []HotspotComment  `json:"comment" yaml:"comment"`
	Changelog       []Changelog       `json:"changelog" yaml:"changelog"`
	CanChangeStatus bool              `json:"canChangeStatus" yaml:"canChangeStatus"`
}

// RawHotspot is a hotspot as listed by the search API.
type RawHotspot struct {
	Key                      string            `json:"key"`
	Component                string            `json:"component"`
	Project                  string            `json:"project"`
	RuleKey                  string            `json:"ruleKey"`
	SecurityCategory         string            `json:"securityCategory"`
	VulnerabilityProbability string            `json:"vulnerabilityProbability"`
	Status                   HotspotStatus     `json:"status"`
	Resolution               HotspotResolution `json:"resolution,omitempty"`
	Message                  string            `json:"message"`
	Line                     int               `json:"line,omitempty"`
	TextRange                *TextRange        `json:"textRange,omitempty"`
	Author                   string            `json:"author,omitempty"`
	Assignee                 string            `json:"assignee,omitempty"`
	CreationDate             string            `json:"creationDate"`
	UpdateDate               string            `json:"updateDate"`
}

// Raw projects a hotspot onto its search-list shape.
func (h Hotspot) Raw() RawHotspot {
	return RawHotspot{
		Key:                      h.Key,
		Component:                h.Component,
		Project:                  h.Project,
		RuleKey:                  h.Rule.Key,
		SecurityCategory:         h.Rule.SecurityCategory,
		VulnerabilityProbability: h.Rule.VulnerabilityProbability,
		Status:                   h.Status,
		Resolution:               h.Resolution,
		Message:                  h.Message,
		Line:                     h.Line,
		TextRange:                h.TextRange,
		Author:                   h.Author,
		Assignee:                 h.Assignee,
		CreationDate:             h.CreationDate,
		UpdateDate:               h.UpdateDate,
	}
}

// HotspotQuery filters hotspots of a project.
type HotspotQuery struct {
	ProjectKey      string
	Branch          string
	Keys            []string
	Status          HotspotStatus
	Resolution      HotspotResolution
	OnlyMine        bool
	InNewCodePeriod bool
	Page            int
	PageSize        int
}

// HotspotComponent is a component referenced by hotspot search results.
type HotspotComponent struct {
	Key       string `json:"key"`
	Qualifier string `json:"qualifier"`
	Name      string `json:"name"`
	LongName  string `json:"longName"`
	Path      string `json:"path,omitempty"`
}

// HotspotsSearchResponse is the hotspot search envelope.
type HotspotsSearchResponse struct {
	Paging     Paging             `json:"paging"`
	Hotspots   []RawHotspot       `json:"hotspots"`
	Components []HotspotComponent `json:"components"`
}
