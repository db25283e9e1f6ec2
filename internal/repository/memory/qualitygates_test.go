package memory

import (
	"context"
	"testing"

	"github.com/codescan-io/sonarqube-sub000/internal/entities"

	"github.com/stretchr/testify/require"
)

func gateNames(list entities.QualityGateList) []string {
	out := make([]string, 0, len(list.QualityGates))
	for _, g := range list.QualityGates {
		out = append(out, g.Name)
	}
	return out
}

func TestListQualityGates(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	list, err := s.ListQualityGates(ctx)
	require.NoError(t, err)
	require.Len(t, list.QualityGates, 7)
	require.Equal(t, "SonarSource way", list.Default)
	require.False(t, list.Actions.Create)
	require.False(t, list.QualityGates[0].Actions.Copy)

	require.NoError(t, s.SetAdmin(ctx, true))
	list, err = s.ListQualityGates(ctx)
	require.NoError(t, err)
	require.True(t, list.Actions.Create)

	byName := map[string]entities.QualityGateActions{}
	for _, g := range list.QualityGates {
		byName[g.Name] = g.Actions
	}
	require.Equal(t, entities.QualityGateActions{
		Rename: false, SetAsDefault: true, Copy: true, AssociateProjects: true,
		Delete: false, ManageConditions: true, Delegate: true,
	}, byName["Sonar way"])
	require.False(t, byName["SonarSource way"].SetAsDefault)
	require.True(t, byName["SonarSource way"].Rename)
}

func TestQualityGateLifecycle(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	created, err := s.CreateQualityGate(ctx, "Mine")
	require.NoError(t, err)
	require.Equal(t, "Mine", created.Name)

	gate, err := s.ShowQualityGate(ctx, "Mine")
	require.NoError(t, err)
	require.Len(t, gate.Conditions, 4)
	require.False(t, gate.IsDefault)
	require.NotNil(t, gate.Actions)

	_, err = s.CopyQualityGate(ctx, "Sonar way", "Sonar way copy")
	require.NoError(t, err)
	cp, err := s.ShowQualityGate(ctx, "Sonar way copy")
	require.NoError(t, err)
	require.False(t, cp.IsBuiltIn)
	require.False(t, cp.IsDefault)
	require.Len(t, cp.Conditions, 6)

	_, err = s.RenameQualityGate(ctx, "Mine", "Ours")
	require.NoError(t, err)
	_, err = s.ShowQualityGate(ctx, "Mine")
	require.ErrorIs(t, err, entities.ErrQualityGateNotFound)

	require.NoError(t, s.SetQualityGateAsDefault(ctx, "Ours"))
	list, err := s.ListQualityGates(ctx)
	require.NoError(t, err)
	require.Equal(t, "Ours", list.Default)
	defaults := 0
	for _, g := range list.QualityGates {
		if g.IsDefault {
			defaults++
		}
	}
	require.Equal(t, 1, defaults)

	require.NoError(t, s.DeleteQualityGate(ctx, "Ours"))
	list, err = s.ListQualityGates(ctx)
	require.NoError(t, err)
	require.NotContains(t, gateNames(list), "Ours")
}

func TestQualityGateNotFound(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.ShowQualityGate(ctx, "ghost")
	require.ErrorIs(t, err, entities.ErrQualityGateNotFound)
	require.Contains(t, err.Error(), "No quality gate has been found for name ghost")

	_, err = s.CopyQualityGate(ctx, "ghost", "x")
	require.ErrorIs(t, err, entities.ErrQualityGateNotFound)
	_, err = s.RenameQualityGate(ctx, "ghost", "x")
	require.ErrorIs(t, err, entities.ErrQualityGateNotFound)
	require.ErrorIs(t, s.DeleteQualityGate(ctx, "ghost"), entities.ErrQualityGateNotFound)
	require.ErrorIs(t, s.SetQualityGateAsDefault(ctx, "ghost"), entities.ErrQualityGateNotFound)
	_, err = s.CreateCondition(ctx, "ghost", entities.Condition{Metric: "coverage"})
	require.ErrorIs(t, err, entities.ErrQualityGateNotFound)

	list, err := s.ListQualityGates(ctx)
	require.NoError(t, err)
	require.Equal(t, "SonarSource way", list.Default)
}

func TestConditions(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	cond, err := s.CreateCondition(ctx, "QG without conditions", entities.Condition{Metric: "coverage", Op: "LT", Error: "80"})
	require.NoError(t, err)
	require.Equal(t, "condIdQG without conditions0", cond.ID)

	updated, err := s.UpdateCondition(ctx, entities.Condition{ID: cond.ID, Metric: "coverage", Op: "LT", Error: "90"})
	require.NoError(t, err)
	require.Equal(t, "90", updated.Error)

	gate, err := s.ShowQualityGate(ctx, "QG without conditions")
	require.NoError(t, err)
	require.Equal(t, []entities.Condition{{ID: cond.ID, Metric: "coverage", Op: "LT", Error: "90"}}, gate.Conditions)

	_, err = s.UpdateCondition(ctx, entities.Condition{ID: "ghost"})
	require.ErrorIs(t, err, entities.ErrConditionNotFound)

	// Shared by "Sonar way" and "Non Cayc QG".
	require.NoError(t, s.DeleteCondition(ctx, "AXJMbIUHPAOIsUIE3eNs"))
	for _, name := range []string{"Sonar way", "Non Cayc QG", "QG without new code conditions"} {
		g, err := s.ShowQualityGate(ctx, name)
		require.NoError(t, err)
		for _, c := range g.Conditions {
			require.NotEqual(t, "AXJMbIUHPAOIsUIE3eNs", c.ID)
		}
	}
	require.ErrorIs(t, s.DeleteCondition(ctx, "AXJMbIUHPAOIsUIE3eNs"), entities.ErrConditionNotFound)
}

func TestCreateConditionAfterDeleteKeepsIDsUnique(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	const gateName = "QG without conditions"
	cond := entities.Condition{Metric: "coverage", Op: "LT", Error: "80"}

	first, err := s.CreateCondition(ctx, gateName, cond)
	require.NoError(t, err)
	second, err := s.CreateCondition(ctx, gateName, cond)
	require.NoError(t, err)
	require.Equal(t, "condIdQG without conditions1", second.ID)

	require.NoError(t, s.DeleteCondition(ctx, first.ID))
	third, err := s.CreateCondition(ctx, gateName, cond)
	require.NoError(t, err)
	require.Equal(t, "condIdQG without conditions2", third.ID)

	gate, err := s.ShowQualityGate(ctx, gateName)
	require.NoError(t, err)
	require.Len(t, gate.Conditions, 2)
	require.NotEqual(t, gate.Conditions[0].ID, gate.Conditions[1].ID)

	require.NoError(t, s.DeleteCondition(ctx, second.ID))
	gate, err = s.ShowQualityGate(ctx, gateName)
	require.NoError(t, err)
	require.Equal(t, []entities.Condition{third}, gate.Conditions)
}

func TestUpdateConditionTouchesFirstMatchOnly(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.UpdateCondition(ctx, entities.Condition{ID: "AXJMbIUHPAOIsUIE3eNs", Metric: "new_security_rating", Op: "GT", Error: "3"})
	require.NoError(t, err)

	sonarWay, err := s.ShowQualityGate(ctx, "Sonar way")
	require.NoError(t, err)
	require.Equal(t, "3", sonarWay.Conditions[0].Error)

	nonCayc, err := s.ShowQualityGate(ctx, "Non Cayc QG")
	require.NoError(t, err)
	require.Equal(t, "1", nonCayc.Conditions[0].Error)
}

func TestProjectAssociation(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	all, err := s.SearchProjects(ctx, entities.ProjectQuery{GateName: "Sonar way", Selected: entities.SelectionAll})
	require.NoError(t, err)
	require.Equal(t, 4, all.Paging.Total)

	require.NoError(t, s.AssociateProject(ctx, "Sonar way", "test1"))
	require.NoError(t, s.DissociateProject(ctx, "Sonar way", "test4"))
	require.NoError(t, s.AssociateProject(ctx, "Sonar way", "ghost"))

	selected, err := s.SearchProjects(ctx, entities.ProjectQuery{Selected: entities.SelectionSelected})
	require.NoError(t, err)
	require.Equal(t, []entities.Project{
		{Key: "test1", Name: "test1", Selected: true},
		{Key: "test3", Name: "test3", Selected: true},
	}, selected.Results)

	deselected, err := s.SearchProjects(ctx, entities.ProjectQuery{Selected: entities.SelectionDeselected, Query: "4"})
	require.NoError(t, err)
	require.Len(t, deselected.Results, 1)
	require.Equal(t, "test4", deselected.Results[0].Key)
}

func TestGateForProject(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	gate, err := s.GetGateForProject(ctx, "any")
	require.NoError(t, err)
	require.Equal(t, "SonarSource way", gate.Name)

	require.NoError(t, s.SetGateForProject(ctx, "Sonar way"))
	gate, err = s.GetGateForProject(ctx, "any")
	require.NoError(t, err)
	require.Equal(t, "Sonar way", gate.Name)

	require.ErrorIs(t, s.SetGateForProject(ctx, "ghost"), entities.ErrQualityGateNotFound)

	_, err = s.RenameQualityGate(ctx, "Sonar way", "Renamed")
	require.NoError(t, err)
	gate, err = s.GetGateForProject(ctx, "any")
	require.NoError(t, err)
	require.Equal(t, "Renamed", gate.Name)

	require.NoError(t, s.DeleteQualityGate(ctx, "Renamed"))
	_, err = s.GetGateForProject(ctx, "any")
	require.ErrorIs(t, err, entities.ErrQualityGateNotFound)
}

func TestGatePermissions(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.AddGateUser(ctx, "Sonar way", "luke"))
	require.NoError(t, s.AddGateUser(ctx, "Sonar way", "luke"))
	require.NoError(t, s.AddGateGroup(ctx, "Sonar way", "Foo"))

	users, err := s.SearchGateUsers(ctx, entities.PermissionQuery{GateName: "Sonar way", Selected: entities.SelectionSelected})
	require.NoError(t, err)
	require.Len(t, users.Users, 1)
	require.Equal(t, "luke", users.Users[0].Login)

	others, err := s.SearchGateUsers(ctx, entities.PermissionQuery{GateName: "Sonar way", Selected: entities.SelectionDeselected, Query: "user"})
	require.NoError(t, err)
	require.Len(t, others.Users, 3)

	groups, err := s.SearchGateGroups(ctx, entities.PermissionQuery{GateName: "Sonar way", Selected: entities.SelectionSelected})
	require.NoError(t, err)
	require.Equal(t, []entities.Group{{Name: "Foo", Description: "Foo group"}}, groups.Groups)

	_, err = s.RenameQualityGate(ctx, "Sonar way", "Renamed")
	require.NoError(t, err)
	users, err = s.SearchGateUsers(ctx, entities.PermissionQuery{GateName: "Renamed", Selected: entities.SelectionSelected})
	require.NoError(t, err)
	require.Len(t, users.Users, 1)

	require.NoError(t, s.RemoveGateUser(ctx, "Renamed", "luke"))
	require.NoError(t, s.RemoveGateGroup(ctx, "Renamed", "Foo"))
	users, err = s.SearchGateUsers(ctx, entities.PermissionQuery{GateName: "Renamed", Selected: entities.SelectionSelected})
	require.NoError(t, err)
	require.Empty(t, users.Users)

	require.ErrorIs(t, s.AddGateUser(ctx, "ghost", "luke"), entities.ErrQualityGateNotFound)
	_, err = s.SearchGateGroups(ctx, entities.PermissionQuery{GateName: "ghost"})
	require.ErrorIs(t, err, entities.ErrQualityGateNotFound)
}
