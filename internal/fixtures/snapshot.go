package fixtures

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/codescan-io/sonarqube-sub000/internal/entities"

	"gopkg.in/yaml.v3"
)

// Snapshot is the complete seed a store is built from and reset to.
type Snapshot struct {
	CurrentUser     entities.LoggedInUser               `yaml:"currentUser"`
	Issues          []entities.IssueData                `yaml:"issues"`
	Rules           []entities.Rule                     `yaml:"rules"`
	RuleDetails     map[string]entities.RuleDetails     `yaml:"ruleDetails"`
	ReferencedUsers []entities.User                     `yaml:"referencedUsers"`
	Languages       []entities.Language                 `yaml:"languages"`
	TagCatalog      []string                            `yaml:"tagCatalog"`
	Users           []entities.User                     `yaml:"users"`
	Groups          []entities.Group                    `yaml:"groups"`
	QualityGates    []entities.QualityGate              `yaml:"qualityGates"`
	GatePermissions map[string]entities.GatePermissions `yaml:"gatePermissions"`
	GateForProject  string                              `yaml:"gateForProject"`
	Projects        []entities.Project                  `yaml:"projects"`
	Hotspots        []entities.Hotspot                  `yaml:"hotspots"`
}

// Default returns the built-in seed.
func Default() Snapshot {
	return Snapshot{
		CurrentUser:     MockLoggedInUser(),
		Issues:          DefaultIssues(),
		Rules:           DefaultRules(),
		RuleDetails:     DefaultRuleDetails(),
		ReferencedUsers: DefaultReferencedUsers(),
		Languages:       DefaultLanguages(),
		TagCatalog:      DefaultTagCatalog(),
		Users:           DefaultUsers(),
		Groups:          DefaultGroups(),
		QualityGates:    DefaultQualityGates(),
		GatePermissions: map[string]entities.GatePermissions{},
		GateForProject:  DefaultGateForProject,
		Projects:        DefaultProjects(),
		Hotspots:        DefaultHotspots(),
	}
}

// Load decodes a YAML seed. Sections missing from the document keep their
// built-in value.
func Load(r io.Reader) (Snapshot, error) {
	var doc Snapshot
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return Snapshot{}, fmt.Errorf("decode fixtures: %w", err)
	}

	out := Default()
	if doc.CurrentUser.Login != "" {
		out.CurrentUser = doc.CurrentUser
		if out.CurrentUser.DismissedNotices == nil {
			out.CurrentUser.DismissedNotices = map[string]bool{}
		}
	}
	if doc.Issues != nil {
		out.Issues = doc.Issues
	}
	if doc.Rules != nil {
		out.Rules = doc.Rules
	}
	if doc.RuleDetails != nil {
		out.RuleDetails = doc.RuleDetails
	}
	if doc.ReferencedUsers != nil {
		out.ReferencedUsers = doc.ReferencedUsers
	}
	if doc.Languages != nil {
		out.Languages = doc.Languages
	}
	if doc.TagCatalog != nil {
		out.TagCatalog = doc.TagCatalog
	}
	if doc.Users != nil {
		out.Users = doc.Users
	}
	if doc.Groups != nil {
		out.Groups = doc.Groups
	}
	if doc.QualityGates != nil {
		out.QualityGates = doc.QualityGates
	}
	if doc.GatePermissions != nil {
		out.GatePermissions = doc.GatePermissions
	}
	if doc.GateForProject != "" {
		out.GateForProject = doc.GateForProject
	}
	if doc.Projects != nil {
		out.Projects = doc.Projects
	}
	if doc.Hotspots != nil {
		out.Hotspots = doc.Hotspots
	}
	return out, nil
}

// LoadFile reads a YAML seed from path.
func LoadFile(path string) (Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("open fixtures: %w", err)
	}
	defer func() { _ = f.Close() }()
	return Load(f)
}

// Dump writes s as YAML.
func Dump(w io.Writer, s Snapshot) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode fixtures: %w", err)
	}
	return enc.Close()
}
