package fixtures

import (
	"github.com/codescan-io/sonarqube-sub000/internal/entities"
)

func textRange(startLine, endLine, startOffset, endOffset int) *entities.TextRange {
	return &entities.TextRange{StartLine: startLine, EndLine: endLine, StartOffset: startOffset, EndOffset: endOffset}
}

func location(component, msg string, line int) entities.FlowLocation {
	return entities.FlowLocation{Component: component, Msg: msg, TextRange: textRange(line, line, 0, 1)}
}

var openTransitions = []entities.IssueTransition{
	entities.TransitionConfirm,
	entities.TransitionResolve,
	entities.TransitionFalsePositive,
	entities.TransitionWontFix,
}

// DefaultIssues returns the seeded issues with their flow snippets.
func DefaultIssues() []entities.IssueData {
	test1And2 := func(count int) map[string]entities.SnippetsByComponent {
		return KeyBySnippetComponent(
			MockSnippetsByComponent("test1.js", "foo", Lines(1, count)),
			MockSnippetsByComponent("test2.js", "foo", Lines(1, count)),
		)
	}

	return []entities.IssueData{
		{
			Issue: MockIssue(func(i *entities.Issue) {
				i.Key = "issue101"
				i.Component = "foo:test1.js"
				i.CreationDate = "2023-01-05T09:36:01+0100"
				i.Message = "Issue with no location message"
				i.Characteristic = entities.CharacteristicSecure
				i.Type = entities.TypeVulnerability
				i.Rule = "simpleRuleId"
				i.TextRange = textRange(10, 10, 0, 2)
				i.Flows = []entities.Flow{
					{Locations: []entities.FlowLocation{location("foo:test1.js", "", 1)}},
					{Locations: []entities.FlowLocation{location("foo:test2.js", "", 20)}},
				}
				i.Resolution = entities.ResolutionWontFix
				i.Scope = entities.ScopeMain
				i.Tags = []string{"tag0", "tag1"}
			}),
			Snippets: test1And2(40),
		},
		{
			Issue: MockIssue(func(i *entities.Issue) {
				i.Key = "issue11"
				i.Component = "foo:test1.js"
				i.CreationDate = "2022-01-01T09:36:01+0100"
				i.Message = "FlowIssue"
				i.Characteristic = entities.CharacteristicClear
				i.Type = entities.TypeCodeSmell
				i.Severity = entities.SeverityMinor
				i.Rule = "simpleRuleId"
				i.TextRange = textRange(10, 10, 0, 2)
				i.Flows = []entities.Flow{
					{
						Type:        entities.FlowData,
						Description: "Backtracking 1",
						Locations: []entities.FlowLocation{
							location("foo:test1.js", "Data location 1", 20),
							location("foo:test1.js", "Data location 2", 21),
						},
					},
					{
						Type: entities.FlowExecution,
						Locations: []entities.FlowLocation{
							location("foo:test2.js", "Execution location 1", 20),
							location("foo:test2.js", "Execution location 2", 22),
							location("foo:test2.js", "Execution location 3", 5),
						},
					},
				}
				i.Tags = []string{"tag1"}
			}),
			Snippets: test1And2(40),
		},
		{
			Issue: MockIssue(func(i *entities.Issue) {
				i.Key = "issue0"
				i.Component = "foo:test1.js"
				i.Message = "Issue on file"
				i.Assignee = MockLoggedInUser().Login
				i.Characteristic = entities.CharacteristicClear
				i.Type = entities.TypeCodeSmell
				i.Rule = "simpleRuleId"
				i.TextRange = nil
				i.Line = 0
				i.Scope = entities.ScopeTest
			}),
			Snippets: map[string]entities.SnippetsByComponent{},
		},
		{
			Issue: MockIssue(func(i *entities.Issue) {
				i.Key = "issue1"
				i.Component = "foo:huge.js"
				i.Message = "Fix this"
				i.Characteristic = entities.CharacteristicSecure
				i.Type = entities.TypeVulnerability
				i.Rule = "simpleRuleId"
				i.TextRange = textRange(10, 10, 0, 2)
				i.Flows = []entities.Flow{
					{Locations: []entities.FlowLocation{location("foo:huge.js", "location 1", 1)}},
					{Locations: []entities.FlowLocation{location("foo:huge.js", "location 2", 50)}},
				}
			}),
			Snippets: KeyBySnippetComponent(MockSnippetsByComponent("huge.js", "foo", Lines(1, 80))),
		},
		{
			Issue: MockIssue(func(i *entities.Issue) {
				i.Actions = append([]string{}, entities.AllIssueActions...)
				i.Transitions = append([]entities.IssueTransition{}, openTransitions...)
				i.Key = "issue2"
				i.Component = "foo:test2.js"
				i.Message = "Fix that"
				i.Rule = "advancedRuleId"
				i.TextRange = textRange(25, 25, 0, 1)
				i.RuleDescriptionContextKey = "spring"
				i.Resolution = entities.ResolutionUnresolved
				i.Status = entities.StatusOpen
			}),
			Snippets: KeyBySnippetComponent(MockSnippetsByComponent("test2.js", "foo", Lines(20, 40))),
		},
		{
			Issue: MockIssue(func(i *entities.Issue) {
				i.Key = "issue3"
				i.Component = "foo:test2.js"
				i.Message = "Second issue"
				i.Rule = "other"
				i.TextRange = textRange(28, 28, 0, 1)
				i.Resolution = entities.ResolutionFixed
				i.Status = entities.StatusConfirmed
			}),
			Snippets: KeyBySnippetComponent(MockSnippetsByComponent("test2.js", "foo", Lines(20, 40))),
		},
		{
			Issue: MockIssue(func(i *entities.Issue) {
				i.Actions = append([]string{}, entities.AllIssueActions...)
				i.Transitions = append([]entities.IssueTransition{}, openTransitions...)
				i.Key = "issue4"
				i.Component = "foo:test2.js"
				i.Message = "Issue with tags"
				i.Rule = "other"
				i.TextRange = textRange(25, 25, 0, 1)
				i.RuleDescriptionContextKey = "spring"
				i.RuleStatus = "DEPRECATED"
				i.QuickFixAvailable = true
				i.Tags = []string{"unused"}
				i.Project = "org.project2"
				i.Assignee = "email1@sonarsource.com"
				i.Author = "email3@sonarsource.com"
			}),
			Snippets: KeyBySnippetComponent(MockSnippetsByComponent("test2.js", "foo", Lines(20, 40))),
		},
		{
			Issue: MockIssue(func(i *entities.Issue) {
				i.Key = "issue1101"
				i.Component = "foo:test5.js"
				i.Message = "Issue on page 2"
				i.Rule = "simpleRuleId"
				i.TextRange = nil
				i.Line = 0
			}),
			Snippets: map[string]entities.SnippetsByComponent{},
		},
	}
}

// DefaultRules returns the rules referenced by the seeded issues.
func DefaultRules() []entities.Rule {
	return []entities.Rule{
		MockRule(func(r *entities.Rule) {
			r.Key = "simpleRuleId"
			r.Name = "Simple rule"
			r.Lang = "java"
			r.LangName = "Java"
			r.Type = entities.TypeCodeSmell
		}),
		MockRule(func(r *entities.Rule) {
			r.Key = "advancedRuleId"
			r.Name = "Advanced rule"
			r.Lang = "web"
			r.LangName = "HTML"
			r.Type = entities.TypeVulnerability
		}),
		MockRule(func(r *entities.Rule) {
			r.Key = "cpp:S6069"
			r.Lang = "cpp"
			r.LangName = "C++"
			r.Name = "Security hotspot rule"
			r.Type = entities.TypeSecurityHotspot
		}),
		MockRule(func(r *entities.Rule) {
			r.Key = "tsql:S131"
			r.Name = `"CASE" expressions should end with "ELSE" clauses`
			r.Lang = "tsql"
			r.LangName = "T-SQL"
		}),
	}
}

// DefaultRuleDetails returns the detailed descriptions of rules that have one.
// Rules absent from the map get a generic description.
func DefaultRuleDetails() map[string]entities.RuleDetails {
	return map[string]entities.RuleDetails{
		"advancedRuleId": MockRuleDetails(func(r *entities.RuleDetails) {
			r.Key = "advancedRuleId"
			r.Name = "Advanced rule"
			r.HTMLNote = "<h1>Extended Description</h1>"
			r.EducationPrinciples = []string{"defense_in_depth"}
			r.DescriptionSections = []entities.DescriptionSection{
				{Key: entities.SectionIntroduction, Content: "<h1>Into</h1>"},
				{Key: entities.SectionRootCause, Content: "<h1>Because</h1>"},
				{Key: entities.SectionHowToFix, Content: "<h1>Fix with</h1>"},
				{
					Key:     entities.SectionHowToFix,
					Content: "<p> Context 1 content<p>",
					Context: &entities.DescriptionContext{Key: "spring", DisplayName: "Spring"},
				},
				{
					Key:     entities.SectionHowToFix,
					Content: "<p> Context 2 content<p>",
					Context: &entities.DescriptionContext{Key: "context_2", DisplayName: "Context 2"},
				},
				{
					Key:     entities.SectionHowToFix,
					Content: "<p> Context 3 content<p>",
					Context: &entities.DescriptionContext{Key: "context_3", DisplayName: "Context 3"},
				},
				{Key: entities.SectionResources, Content: "<h1>Link</h1>"},
			}
		}),
	}
}

// GenericRuleDetails describes a rule without a dedicated description.
func GenericRuleDetails(key string) entities.RuleDetails {
	return MockRuleDetails(func(r *entities.RuleDetails) {
		r.Key = key
		r.Name = "Simple rule"
		r.HTMLNote = "<h1>Note</h1>"
		r.DescriptionSections = []entities.DescriptionSection{
			{Key: entities.SectionDefault, Content: "<h1>Default</h1> Default description"},
		}
	})
}

// DefaultReferencedUsers returns the users echoed by every issue search.
func DefaultReferencedUsers() []entities.User {
	return []entities.User{
		{Login: "login0"},
		{Login: "login1", Name: "Login 1"},
		{Login: "login2", Name: "Login 2"},
	}
}

// DefaultLanguages returns the languages echoed by every issue search.
func DefaultLanguages() []entities.Language {
	return []entities.Language{{Name: "java"}, {Name: "python"}, {Name: "ts"}}
}

// DefaultUsers returns the user directory.
func DefaultUsers() []entities.User {
	return []entities.User{
		MockUser(func(u *entities.User) { u.Login = "luke"; u.Name = "Skywalker"; u.Email = "luke@example.com" }),
		MockUser(func(u *entities.User) { u.Login = "user.john"; u.Name = "User John"; u.Email = "" }),
		MockUser(func(u *entities.User) { u.Login = "user.doe"; u.Name = "User Doe"; u.Email = "" }),
		MockUser(func(u *entities.User) { u.Login = "user.foo"; u.Name = "User Foo"; u.Email = "" }),
		MockUser(func(u *entities.User) {
			u.Login = "email1@sonarsource.com"
			u.Name = "Email 1"
			u.Email = "email1@sonarsource.com"
		}),
		MockUser(),
	}
}

// DefaultGroups returns the group directory.
func DefaultGroups() []entities.Group {
	return []entities.Group{
		MockGroup(),
		MockGroup(func(g *entities.Group) { g.Name = "sonar-administrators"; g.Description = "System administrators" }),
	}
}

// DefaultTagCatalog returns tags known to the platform beyond those on issues.
func DefaultTagCatalog() []string {
	return []string{"accessibility", "android"}
}
