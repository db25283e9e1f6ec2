package entities

// IssueType enumerates finding kinds.
type IssueType string

const (
	// TypeBug marks reliability findings.
	TypeBug IssueType = "BUG"
	// TypeVulnerability marks security findings.
	TypeVulnerability IssueType = "VULNERABILITY"
	// TypeCodeSmell marks maintainability findings.
	TypeCodeSmell IssueType = "CODE_SMELL"
	// TypeSecurityHotspot marks code that needs a security review.
	TypeSecurityHotspot IssueType = "SECURITY_HOTSPOT"
)

// Valid reports whether t is a known issue type.
func (t IssueType) Valid() bool {
	switch t {
	case TypeBug, TypeVulnerability, TypeCodeSmell, TypeSecurityHotspot:
		return true
	}
	return false
}

// IssueSeverity enumerates issue severities.
type IssueSeverity string

const (
	SeverityBlocker  IssueSeverity = "BLOCKER"
	SeverityCritical IssueSeverity = "CRITICAL"
	SeverityMajor    IssueSeverity = "MAJOR"
	SeverityMinor    IssueSeverity = "MINOR"
	SeverityInfo     IssueSeverity = "INFO"
)

// Valid reports whether s is a known severity.
func (s IssueSeverity) Valid() bool {
	switch s {
	case SeverityBlocker, SeverityCritical, SeverityMajor, SeverityMinor, SeverityInfo:
		return true
	}
	return false
}

// IssueStatus enumerates workflow states.
type IssueStatus string

const (
	StatusOpen      IssueStatus = "OPEN"
	StatusConfirmed IssueStatus = "CONFIRMED"
	StatusReopened  IssueStatus = "REOPENED"
	StatusResolved  IssueStatus = "RESOLVED"
	StatusClosed    IssueStatus = "CLOSED"
)

// IssueResolution enumerates how a resolved issue was closed.
type IssueResolution string

const (
	// ResolutionUnresolved is the empty resolution of an open issue.
	ResolutionUnresolved    IssueResolution = ""
	ResolutionFixed         IssueResolution = "FIXED"
	ResolutionWontFix       IssueResolution = "WONTFIX"
	ResolutionFalsePositive IssueResolution = "FALSE-POSITIVE"
	ResolutionRemoved       IssueResolution = "REMOVED"
)

// IssueScope tells whether an issue sits in main or test code.
type IssueScope string

const (
	ScopeMain IssueScope = "MAIN"
	ScopeTest IssueScope = "TEST"
)

// IssueCharacteristic is the clean-code attribute an issue breaks.
type IssueCharacteristic string

const (
	CharacteristicClear      IssueCharacteristic = "CLEAR"
	CharacteristicTested     IssueCharacteristic = "TESTED"
	CharacteristicRobust     IssueCharacteristic = "ROBUST"
	CharacteristicSecure     IssueCharacteristic = "SECURE"
	CharacteristicPortable   IssueCharacteristic = "PORTABLE"
	CharacteristicStructured IssueCharacteristic = "STRUCTURED"
	CharacteristicConsistent IssueCharacteristic = "CONSISTENT"
	CharacteristicCompliant  IssueCharacteristic = "COMPLIANT"
)

// IssueTransition names a workflow action.
type IssueTransition string

const (
	TransitionConfirm       IssueTransition = "confirm"
	TransitionUnConfirm     IssueTransition = "unconfirm"
	TransitionResolve       IssueTransition = "resolve"
	TransitionWontFix       IssueTransition = "wontfix"
	TransitionFalsePositive IssueTransition = "falsepositive"
	TransitionReopen        IssueTransition = "reopen"
)

// Issue actions granted to the current user.
const (
	ActionSetType     = "set_type"
	ActionSetTags     = "set_tags"
	ActionComment     = "comment"
	ActionSetSeverity = "set_severity"
	ActionAssign      = "assign"
)

// AllIssueActions lists every action verb an issue may grant.
var AllIssueActions = []string{ActionSetType, ActionSetTags, ActionComment, ActionSetSeverity, ActionAssign}

// AssigneeMe is the search sentinel for "issues assigned to the current user".
const AssigneeMe = "__me__"

// AssignToMe is the assign sentinel resolved to the current user's login.
const AssignToMe = "_me"

// TextRange is a line/offset span inside a file.
type TextRange struct {
	StartLine   int `json:"startLine" yaml:"startLine"`
	EndLine     int `json:"endLine" yaml:"endLine"`
	StartOffset int `json:"startOffset" yaml:"startOffset"`
	EndOffset   int `json:"endOffset" yaml:"endOffset"`
}

// FlowType distinguishes data and execution flows.
type FlowType string

const (
	FlowData      FlowType = "DATA"
	FlowExecution FlowType = "EXECUTION"
)

// FlowLocation is one secondary location of an issue.
type FlowLocation struct {
	Component string     `json:"component" yaml:"component"`
	Msg       string     `json:"msg,omitempty" yaml:"msg,omitempty"`
	TextRange *TextRange `json:"textRange,omitempty" yaml:"textRange,omitempty"`
}

// Flow is an ordered group of locations.
type Flow struct {
	Type        FlowType       `json:"type,omitempty" yaml:"type,omitempty"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Locations   []FlowLocation `json:"locations" yaml:"locations"`
}

// IssueComment is a markdown comment left on an issue.
type IssueComment struct {
	Key       string `json:"key" yaml:"key"`
	Login     string `json:"login" yaml:"login"`
	HTMLText  string `json:"htmlText" yaml:"htmlText"`
	Markdown  string `json:"markdown" yaml:"markdown"`
	CreatedAt string `json:"createdAt" yaml:"createdAt"`
	Updatable bool   `json:"updatable" yaml:"updatable"`
}

// Issue is a single static-analysis finding as returned by the issues API.
type Issue struct {
	Key                       string              `json:"key" yaml:"key"`
	Component                 string              `json:"component" yaml:"component"`
	Project                   string              `json:"project" yaml:"project"`
	Rule                      string              `json:"rule" yaml:"rule"`
	RuleStatus                string              `json:"ruleStatus,omitempty" yaml:"ruleStatus,omitempty"`
	RuleDescriptionContextKey string              `json:"ruleDescriptionContextKey,omitempty" yaml:"ruleDescriptionContextKey,omitempty"`
	Type                      IssueType           `json:"type" yaml:"type"`
	Severity                  IssueSeverity       `json:"severity" yaml:"severity"`
	Status                    IssueStatus         `json:"status" yaml:"status"`
	Resolution                IssueResolution     `json:"resolution,omitempty" yaml:"resolution,omitempty"`
	Scope                     IssueScope          `json:"scope" yaml:"scope"`
	Characteristic            IssueCharacteristic `json:"characteristic,omitempty" yaml:"characteristic,omitempty"`
	Message                   string              `json:"message" yaml:"message"`
	Tags                      []string            `json:"tags" yaml:"tags"`
	Assignee                  string              `json:"assignee,omitempty" yaml:"assignee,omitempty"`
	Author                    string              `json:"author,omitempty" yaml:"author,omitempty"`
	CreationDate              string              `json:"creationDate" yaml:"creationDate"`
	Line                      int                 `json:"line,omitempty" yaml:"line,omitempty"`
	TextRange                 *TextRange          `json:"textRange,omitempty" yaml:"textRange,omitempty"`
	Flows                     []Flow              `json:"flows" yaml:"flows"`
	Comments                  []IssueComment      `json:"comments,omitempty" yaml:"comments,omitempty"`
	Actions                   []string            `json:"actions" yaml:"actions"`
	Transitions               []IssueTransition   `json:"transitions" yaml:"transitions"`
	QuickFixAvailable         bool                `json:"quickFixAvailable,omitempty" yaml:"quickFixAvailable,omitempty"`
}

// IssueData pairs an issue with the code snippets its flows point at.
type IssueData struct {
	Issue    Issue                          `json:"issue" yaml:"issue"`
	Snippets map[string]SnippetsByComponent `json:"snippets" yaml:"snippets"`
}

// IssueResponse is the envelope of single-issue mutations.
type IssueResponse struct {
	Issue Issue `json:"issue"`
}

// BulkChange describes a bulk edit applied to a list of issues.
type BulkChange struct {
	IssueKeys    []string
	SetSeverity  IssueSeverity
	SetType      IssueType
	AddTags      []string
	RemoveTags   []string
	DoTransition IssueTransition
	Assign       *string
}

// BulkChangeResult reports how many issues a bulk change touched.
type BulkChangeResult struct {
	Total    int `json:"total"`
	Success  int `json:"success"`
	Ignored  int `json:"ignored"`
	Failures int `json:"failures"`
}

// ChangelogDiff is one field change of a changelog entry.
type ChangelogDiff struct {
	Key      string `json:"key" yaml:"key"`
	NewValue string `json:"newValue,omitempty" yaml:"newValue,omitempty"`
	OldValue string `json:"oldValue,omitempty" yaml:"oldValue,omitempty"`
}

// Changelog is one entry of an issue history.
type Changelog struct {
	CreationDate string          `json:"creationDate" yaml:"creationDate"`
	IsUserActive bool            `json:"isUserActive" yaml:"isUserActive"`
	User         string          `json:"user" yaml:"user"`
	UserName     string          `json:"userName" yaml:"userName"`
	Diffs        []ChangelogDiff `json:"diffs" yaml:"diffs"`
}

// ChangelogResponse wraps an issue history.
type ChangelogResponse struct {
	Changelog []Changelog `json:"changelog"`
}

// SourceComponent describes the file a snippet belongs to.
type SourceComponent struct {
	Key       string `json:"key" yaml:"key"`
	Path      string `json:"path" yaml:"path"`
	Name      string `json:"name" yaml:"name"`
	LongName  string `json:"longName" yaml:"longName"`
	Project   string `json:"project" yaml:"project"`
	Qualifier string `json:"q" yaml:"q"`
}

// SourceLine is a single rendered line of code.
type SourceLine struct {
	Line int    `json:"line" yaml:"line"`
	Code string `json:"code" yaml:"code"`
}

// SnippetsByComponent holds the source lines of a component a flow visits.
type SnippetsByComponent struct {
	Component SourceComponent    `json:"component" yaml:"component"`
	Sources   map[int]SourceLine `json:"sources" yaml:"sources"`
}
