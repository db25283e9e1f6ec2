package entities

// CaycStatus tells how a gate relates to the "clean as you code" baseline.
type CaycStatus string

const (
	CaycCompliant     CaycStatus = "compliant"
	CaycNonCompliant  CaycStatus = "non-compliant"
	CaycOverCompliant CaycStatus = "over-compliant"
)

// Condition is one metric/operator/threshold triple of a gate.
type Condition struct {
	ID     string `json:"id" yaml:"id"`
	Metric string `json:"metric" yaml:"metric"`
	Op     string `json:"op" yaml:"op"`
	Error  string `json:"error" yaml:"error"`
}

// QualityGateActions lists what the current user may do with a gate.
type QualityGateActions struct {
	Rename            bool `json:"rename"`
	SetAsDefault      bool `json:"setAsDefault"`
	Copy              bool `json:"copy"`
	AssociateProjects bool `json:"associateProjects"`
	Delete            bool `json:"delete"`
	ManageConditions  bool `json:"manageConditions"`
	Delegate          bool `json:"delegate"`
}

// QualityGate is a named pass/fail policy. Its name is its identifier.
type QualityGate struct {
	ID         string              `json:"id,omitempty" yaml:"id,omitempty"`
	Name       string              `json:"name" yaml:"name"`
	IsDefault  bool                `json:"isDefault" yaml:"isDefault"`
	IsBuiltIn  bool                `json:"isBuiltIn" yaml:"isBuiltIn"`
	CaycStatus CaycStatus          `json:"caycStatus" yaml:"caycStatus"`
	Conditions []Condition         `json:"conditions" yaml:"conditions"`
	Actions    *QualityGateActions `json:"actions,omitempty" yaml:"-"`
}

// GatePermissions lists the users and groups delegated on a gate.
type GatePermissions struct {
	Users  []string `json:"users" yaml:"users"`
	Groups []string `json:"groups" yaml:"groups"`
}

// QualityGateSummary is a gate as listed, without its conditions.
type QualityGateSummary struct {
	ID         string             `json:"id,omitempty"`
	Name       string             `json:"name"`
	IsDefault  bool               `json:"isDefault"`
	IsBuiltIn  bool               `json:"isBuiltIn"`
	CaycStatus CaycStatus         `json:"caycStatus"`
	Actions    QualityGateActions `json:"actions"`
}

// QualityGateListActions lists global gate permissions.
type QualityGateListActions struct {
	Create bool `json:"create"`
}

// QualityGateList is the gate listing envelope.
type QualityGateList struct {
	QualityGates []QualityGateSummary   `json:"qualitygates"`
	Default      string                 `json:"default"`
	Actions      QualityGateListActions `json:"actions"`
}

// QualityGateName echoes the name of a created, copied or renamed gate.
type QualityGateName struct {
	Name string `json:"name"`
}

// Project is a project as seen from the gate association screen.
type Project struct {
	Key      string `json:"key" yaml:"key"`
	Name     string `json:"name" yaml:"name"`
	Selected bool   `json:"selected" yaml:"selected"`
}

// Project selection filters.
const (
	SelectionSelected   = "selected"
	SelectionDeselected = "deselected"
	SelectionAll        = "all"
)

// ProjectQuery filters projects that may be associated with a gate.
type ProjectQuery struct {
	GateName string
	Selected string
	Query    string
	Page     int
	PageSize int
}

// ProjectsSearchResponse is the project association search envelope.
type ProjectsSearchResponse struct {
	Paging  Paging    `json:"paging"`
	Results []Project `json:"results"`
}

// PermissionQuery filters users or groups delegated on a gate.
type PermissionQuery struct {
	GateName string
	Selected string
	Query    string
}
