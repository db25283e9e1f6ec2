package entities

// Rule is the compact rule projection referenced by issues.
type Rule struct {
	Key      string    `json:"key" yaml:"key"`
	Name     string    `json:"name" yaml:"name"`
	Lang     string    `json:"lang" yaml:"lang"`
	LangName string    `json:"langName" yaml:"langName"`
	Type     IssueType `json:"type" yaml:"type"`
	Status   string    `json:"status,omitempty" yaml:"status,omitempty"`
	SysTags  []string  `json:"sysTags,omitempty" yaml:"sysTags,omitempty"`
}

// Rule description section keys.
const (
	SectionDefault      = "default"
	SectionIntroduction = "introduction"
	SectionRootCause    = "root_cause"
	SectionHowToFix     = "how_to_fix"
	SectionResources    = "resources"
)

// DescriptionContext names the framework a description section targets.
type DescriptionContext struct {
	Key         string `json:"key" yaml:"key"`
	DisplayName string `json:"displayName" yaml:"displayName"`
}

// DescriptionSection is one HTML block of a rule description.
type DescriptionSection struct {
	Key     string              `json:"key" yaml:"key"`
	Content string              `json:"content" yaml:"content"`
	Context *DescriptionContext `json:"context,omitempty" yaml:"context,omitempty"`
}

// RuleDetails is the full rule as returned by the rule details API.
type RuleDetails struct {
	Key                 string               `json:"key" yaml:"key"`
	Repo                string               `json:"repo" yaml:"repo"`
	Name                string               `json:"name" yaml:"name"`
	CreatedAt           string               `json:"createdAt" yaml:"createdAt"`
	HTMLNote            string               `json:"htmlNote,omitempty" yaml:"htmlNote,omitempty"`
	Severity            IssueSeverity        `json:"severity" yaml:"severity"`
	Status              string               `json:"status" yaml:"status"`
	IsTemplate          bool                 `json:"isTemplate" yaml:"isTemplate"`
	Tags                []string             `json:"tags" yaml:"tags"`
	SysTags             []string             `json:"sysTags" yaml:"sysTags"`
	Lang                string               `json:"lang" yaml:"lang"`
	LangName            string               `json:"langName" yaml:"langName"`
	Scope               string               `json:"scope" yaml:"scope"`
	Type                IssueType            `json:"type" yaml:"type"`
	DescriptionSections []DescriptionSection `json:"descriptionSections" yaml:"descriptionSections"`
	EducationPrinciples []string             `json:"educationPrinciples,omitempty" yaml:"educationPrinciples,omitempty"`
}

// RuleDetailsResponse wraps a rule detail lookup.
type RuleDetailsResponse struct {
	Rule RuleDetails `json:"rule"`
}

// RuleQuery filters the rule catalogue.
type RuleQuery struct {
	Q     string
	Types []IssueType
}

// RulesSearchResponse is the rules search envelope.
type RulesSearchResponse struct {
	P     int    `json:"p"`
	PS    int    `json:"ps"`
	Rules []Rule `json:"rules"`
	Total int    `json:"total"`
}
