package fixtures

import (
	"github.com/codescan-io/sonarqube-sub000/internal/entities"
)

// DefaultGateForProject is the gate every project reports by default.
const DefaultGateForProject = "SonarSource way"

func cond(id, metric, op, errorThreshold string) entities.Condition {
	return entities.Condition{ID: id, Metric: metric, Op: op, Error: errorThreshold}
}

// DefaultQualityGates returns the seeded gates. "SonarSource way" is the default.
func DefaultQualityGates() []entities.QualityGate {
	return []entities.QualityGate{
		MockQualityGate(func(q *entities.QualityGate) {
			q.Name = "SonarSource way"
			q.Conditions = []entities.Condition{
				cond("AXJMbIUGPAOIsUIE3eNC", "new_coverage", "LT", "85"),
				cond("AXJMbIUGPAOIsUIE3eNE", "reliability_rating", "GT", "4"),
				cond("AXJMbIUGPAOIsUIE3eND", "security_rating", "GT", "4"),
				cond("AXJMbIUGPAOIsUIE3eNT", "new_maintainability_rating", "GT", "1"),
				cond("AXJMbIUGPAOIsUIE3eNU", "new_reliability_rating", "GT", "1"),
				cond("AXJMbIUGPAOIsUIE3eNV", "new_security_rating", "GT", "1"),
				cond("AXJMbIUHPAOIsUIE3eNc", "new_duplicated_lines_density", "GT", "3"),
				cond("AXJMbIUHPAOIsUIE3eOi", "new_security_hotspots_reviewed", "LT", "100"),
			}
			q.IsDefault = true
			q.CaycStatus = entities.CaycCompliant
		}),
		MockQualityGate(func(q *entities.QualityGate) {
			q.Name = "SonarSource way - CFamily"
			q.Conditions = []entities.Condition{
				cond("AXJMbIUHPAOIsUIE3eOu", "new_coverage", "LT", "0"),
				cond("AXJMbIUHPAOIsUIE3eOubis", "new_coverage", "LT", "1"),
				cond("deprecated", "function_complexity", "LT", "1"),
			}
			q.CaycStatus = entities.CaycNonCompliant
		}),
		MockQualityGate(func(q *entities.QualityGate) {
			q.Name = "Sonar way"
			q.Conditions = []entities.Condition{
				cond("AXJMbIUHPAOIsUIE3eNs", "new_security_rating", "GT", "1"),
				cond("AXJMbIUHPAOIsUIE3eOD", "new_reliability_rating", "GT", "1"),
				cond("AXJMbIUHPAOIsUIE3eOE", "new_maintainability_rating", "GT", "1"),
				cond("AXJMbIUHPAOIsUIE3eOF", "new_coverage", "LT", "80"),
				cond("AXJMbIUHPAOIsUIE3eOG", "new_duplicated_lines_density", "GT", "3"),
				cond("AXJMbIUHPAOIsUIE3eOk", "new_security_hotspots_reviewed", "LT", "100"),
			}
			q.IsBuiltIn = true
			q.CaycStatus = entities.CaycCompliant
		}),
		MockQualityGate(func(q *entities.QualityGate) {
			q.Name = "Non Cayc QG"
			q.Conditions = []entities.Condition{
				cond("AXJMbIUHPAOIsUIE3eNs", "new_security_rating", "GT", "1"),
				cond("AXJMbIUHPAOIsUIE3eOD", "new_reliability_rating", "GT", "1"),
				cond("AXJMbIUHPAOIsUIE3eOF", "new_coverage", "LT", "80"),
			}
			q.CaycStatus = entities.CaycNonCompliant
		}),
		MockQualityGate(func(q *entities.QualityGate) {
			q.ID = "AWBWEMe4qGAMGEYPjJlruitoc"
			q.Name = "Over Compliant CAYC QG"
			q.Conditions = []entities.Condition{
				cond("deprecatedoc", "function_complexity", "LT", "1"),
				cond("AXJMbIUHPAOIsUIE3eOFoc", "new_coverage", "LT", "80"),
				cond("AXJMbIUHPAOIsUIE3eNsoc", "new_security_rating", "GT", "1"),
				cond("AXJMbIUHPAOIsUIE3eODoc", "new_reliability_rating", "GT", "1"),
				cond("AXJMbIUHPAOIsUIE3eOEoc", "new_maintainability_rating", "GT", "1"),
				cond("AXJMbIUHPAOIsUIE3eOFocdl", "new_coverage", "LT", "80"),
				cond("AXJMbIUHPAOIsUIE3eOGoc", "new_duplicated_lines_density", "GT", "3"),
				cond("AXJMbIUHPAOIsUIE3eOkoc", "new_security_hotspots_reviewed", "LT", "100"),
			}
			q.CaycStatus = entities.CaycOverCompliant
		}),
		MockQualityGate(func(q *entities.QualityGate) {
			q.Name = "QG without conditions"
			q.Conditions = []entities.Condition{}
		}),
		MockQualityGate(func(q *entities.QualityGate) {
			q.Name = "QG without new code conditions"
			q.Conditions = []entities.Condition{
				cond("AXJMbIUHPAOIsUIE3eNs", "security_rating", "GT", "1"),
			}
		}),
	}
}

// StarterConditions are the conditions of a freshly created gate.
func StarterConditions() []entities.Condition {
	starter := []struct{ metric, errorThreshold string }{
		{"new_reliability_rating", "1"},
		{"new_maintainability_rating", "1"},
		{"new_security_rating", "1"},
		{"new_security_hotspots_reviewed", "100"},
	}
	out := make([]entities.Condition, 0, len(starter))
	for _, s := range starter {
		out = append(out, MockCondition(func(c *entities.Condition) {
			c.ID = s.metric + "1"
			c.Metric = s.metric
			c.Error = s.errorThreshold
		}))
	}
	return out
}

// DefaultProjects returns the projects shown on the gate association screen.
func DefaultProjects() []entities.Project {
	return []entities.Project{
		{Key: "test1", Name: "test1", Selected: false},
		{Key: "test2", Name: "test2", Selected: false},
		{Key: "test3", Name: "test3", Selected: true},
		{Key: "test4", Name: "test4", Selected: true},
	}
}
