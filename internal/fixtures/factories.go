// Package fixtures builds default-valued domain records and the seed data
// the in-memory store starts from.
//
// Every MockX factory returns a fully populated record and then applies the
// caller's overrides in order, so an override only has to touch the fields
// it cares about.
package fixtures

import (
	"fmt"

	"github.com/codescan-io/sonarqube-sub000/internal/entities"
)

// MockIssue returns a default open code smell.
func MockIssue(overrides ...func(*entities.Issue)) entities.Issue {
	issue := entities.Issue{
		Key:          "AVsae-CQS-9G3txfbFN2",
		Component:    "main.js",
		Project:      "myproject",
		Rule:         "javascript:S1067",
		Type:         entities.TypeCodeSmell,
		Severity:     entities.SeverityMajor,
		Status:       entities.StatusOpen,
		Scope:        entities.ScopeMain,
		Message:      "Reduce the number of conditional operators (4) used in the expression",
		Tags:         []string{},
		CreationDate: "2023-01-15T09:36:01+0100",
		Line:         25,
		TextRange:    &entities.TextRange{StartLine: 25, EndLine: 26, StartOffset: 0, EndOffset: 15},
		Flows:        []entities.Flow{},
		Actions:      []string{},
		Transitions:  []entities.IssueTransition{},
	}
	for _, o := range overrides {
		o(&issue)
	}
	return issue
}

// MockRule returns a default JavaScript rule.
func MockRule(overrides ...func(*entities.Rule)) entities.Rule {
	rule := entities.Rule{
		Key:      "javascript:S1067",
		Name:     "Use foo",
		Lang:     "js",
		LangName: "JavaScript",
		Type:     entities.TypeCodeSmell,
		Status:   "READY",
	}
	for _, o := range overrides {
		o(&rule)
	}
	return rule
}

// MockRuleDetails returns a default rule with a single description section.
func MockRuleDetails(overrides ...func(*entities.RuleDetails)) entities.RuleDetails {
	rule := entities.RuleDetails{
		Key:       "squid:S1337",
		Repo:      "squid",
		Name:      `".equals()" should not be used to test the values of "Atomic" classes`,
		CreatedAt: "2014-12-16T17:26:54+0100",
		Severity:  entities.SeverityMajor,
		Status:    "READY",
		Tags:      []string{},
		SysTags:   []string{"multi-threading"},
		Lang:      "java",
		LangName:  "Java",
		Scope:     "MAIN",
		Type:      entities.TypeCodeSmell,
		DescriptionSections: []entities.DescriptionSection{
			{Key: entities.SectionDefault, Content: "<b>Why</b> Because"},
		},
	}
	for _, o := range overrides {
		o(&rule)
	}
	return rule
}

// MockQualityGate returns an empty, non-default gate.
func MockQualityGate(overrides ...func(*entities.QualityGate)) entities.QualityGate {
	gate := entities.QualityGate{
		ID:         "1",
		Name:       "qualitygate",
		CaycStatus: entities.CaycNonCompliant,
		Conditions: []entities.Condition{},
	}
	for _, o := range overrides {
		o(&gate)
	}
	return gate
}

// MockCondition returns a coverage condition.
func MockCondition(overrides ...func(*entities.Condition)) entities.Condition {
	cond := entities.Condition{
		ID:     "1",
		Metric: "coverage",
		Op:     "LT",
		Error:  "10",
	}
	for _, o := range overrides {
		o(&cond)
	}
	return cond
}

// MockHotspot returns a hotspot waiting for review.
func MockHotspot(overrides ...func(*entities.Hotspot)) entities.Hotspot {
	hotspot := entities.Hotspot{
		Key:       "01fc972e-2a3c-433e-bcae-0bd7f88f5123",
		Component: "guillaume-peoch-sonarsource_benflix_AYGpXq2bd8qy4i0eO9ed:index.php",
		Project:   "guillaume-peoch-sonarsource_benflix_AYGpXq2bd8qy4i0eO9ed",
		Rule: entities.HotspotRule{
			Key:                      "squid:S2077",
			Name:                     "That rule",
			SecurityCategory:         "sql-injection",
			VulnerabilityProbability: "HIGH",
		},
		Status:          entities.HotspotToReview,
		Message:         "'3' is a magic number.",
		Line:            142,
		TextRange:       &entities.TextRange{StartLine: 142, EndLine: 142, StartOffset: 26, EndOffset: 83},
		Author:          "Developer 1",
		Assignee:        "assignee",
		AssigneeUser:    &entities.User{Login: "assignee", Name: "John Doe", Active: true},
		CreationDate:    "2013-05-13T17:55:41+0200",
		UpdateDate:      "2013-05-13T17:55:42+0200",
		Comment:         []entities.HotspotComment{},
		Changelog:       []entities.Changelog{},
		CanChangeStatus: true,
	}
	for _, o := range overrides {
		o(&hotspot)
	}
	return hotspot
}

// MockHotspotComment returns a read-only hotspot comment.
func MockHotspotComment(overrides ...func(*entities.HotspotComment)) entities.HotspotComment {
	comment := entities.HotspotComment{
		Key:       "comment-1",
		Login:     "dude-1",
		HTMLText:  "This is a comment from john doe",
		Markdown:  "This is a comment from john doe",
		CreatedAt: "2018-10-01",
	}
	for _, o := range overrides {
		o(&comment)
	}
	return comment
}

// MockUser returns an active user.
func MockUser(overrides ...func(*entities.User)) entities.User {
	user := entities.User{
		Login:  "john.doe",
		Name:   "John Doe",
		Email:  "john.doe@example.com",
		Active: true,
	}
	for _, o := range overrides {
		o(&user)
	}
	return user
}

// MockLoggedInUser returns the default current user.
func MockLoggedInUser(overrides ...func(*entities.LoggedInUser)) entities.LoggedInUser {
	user := entities.LoggedInUser{
		Login:       "luke",
		Name:        "Skywalker",
		IsLoggedIn:  true,
		Groups:      []string{},
		ScmAccounts: []string{},
		DismissedNotices: map[string]bool{
			entities.NoticeEducationPrinciples: false,
		},
	}
	for _, o := range overrides {
		o(&user)
	}
	return user
}

// MockGroup returns a user group.
func MockGroup(overrides ...func(*entities.Group)) entities.Group {
	group := entities.Group{Name: "Foo", Description: "Foo group"}
	for _, o := range overrides {
		o(&group)
	}
	return group
}

// MockPaging returns the first page of an empty list.
func MockPaging(overrides ...func(*entities.Paging)) entities.Paging {
	paging := entities.Paging{PageIndex: 1, PageSize: 100, Total: 0}
	for _, o := range overrides {
		o(&paging)
	}
	return paging
}

// MockChangelog returns an assignment change.
func MockChangelog(overrides ...func(*entities.Changelog)) entities.Changelog {
	entry := entities.Changelog{
		CreationDate: "2018-10-01",
		IsUserActive: true,
		User:         "luke.skywalker",
		UserName:     "Luke Skywalker",
		Diffs: []entities.ChangelogDiff{
			{Key: "assign", NewValue: "darth.vader", OldValue: "luke.skywalker"},
		},
	}
	for _, o := range overrides {
		o(&entry)
	}
	return entry
}

// MockReferenceComponent returns an enabled component reference.
func MockReferenceComponent(overrides ...func(*entities.ReferenceComponent)) entities.ReferenceComponent {
	comp := entities.ReferenceComponent{
		Key:     "component1",
		Name:    "Component1",
		UUID:    "id1",
		Enabled: true,
	}
	for _, o := range overrides {
		o(&comp)
	}
	return comp
}

// MockSnippetsByComponent returns the given lines of project:file.
func MockSnippetsByComponent(file, project string, lines []int) entities.SnippetsByComponent {
	sources := make(map[int]entities.SourceLine, len(lines))
	for _, l := range lines {
		sources[l] = entities.SourceLine{
			Line: l,
			Code: `<span class="k">import</span> java.util.<span class="sym-9 sym">ArrayList</span>;`,
		}
	}
	return entities.SnippetsByComponent{
		Component: entities.SourceComponent{
			Key:       fmt.Sprintf("%s:%s", project, file),
			Path:      file,
			Name:      file,
			LongName:  file,
			Project:   project,
			Qualifier: "FIL",
		},
		Sources: sources,
	}
}

// Lines returns count consecutive line numbers starting at from.
func Lines(from, count int) []int {
	out := make([]int, count)
	for i := range out {
		out[i] = from + i
	}
	return out
}

// KeyBySnippetComponent indexes snippets by their component key.
func KeyBySnippetComponent(snippets ...entities.SnippetsByComponent) map[string]entities.SnippetsByComponent {
	out := make(map[string]entities.SnippetsByComponent, len(snippets))
	for _, s := range snippets {
		out[s.Component.Key] = s
	}
	return out
}
