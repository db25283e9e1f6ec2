package memory

import (
	"context"
	"slices"
	"strings"

	"github.com/codescan-io/sonarqube-sub000/internal/entities"
	"github.com/codescan-io/sonarqube-sub000/internal/fixtures"
)

const rulesPageSize = 30

// SearchRules filters the rule catalogue by type and by name or key.
func (s *Store) SearchRules(_ context.Context, q entities.RuleQuery) (entities.RulesSearchResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(q.Q)
	rules := make([]entities.Rule, 0, len(s.st.Rules))
	for _, r := range s.st.Rules {
		if len(q.Types) > 0 && !slices.Contains(q.Types, r.Type) {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(r.Name), needle) &&
			!strings.Contains(strings.ToLower(r.Key), needle) {
			continue
		}
		rules = append(rules, r)
	}

	return clone(entities.RulesSearchResponse{
		P:     1,
		PS:    rulesPageSize,
		Rules: rules,
		Total: len(rules),
	}), nil
}

// GetRuleDetails returns the full description of a rule. Rules without a
// dedicated description get a generic one.
func (s *Store) GetRuleDetails(_ context.Context, key string) (entities.RuleDetailsResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	details, ok := s.st.RuleDetails[key]
	if !ok {
		details = fixtures.GenericRuleDetails(key)
	}
	return entities.RuleDetailsResponse{Rule: clone(details)}, nil
}
