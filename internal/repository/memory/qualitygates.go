package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/codescan-io/sonarqube-sub000/internal/entities"
	"github.com/codescan-io/sonarqube-sub000/internal/fixtures"
)

const defaultProjectsPageSize = 100

func gateNotFound(name string) error {
	return fmt.Errorf("%w: No quality gate has been found for name %s", entities.ErrQualityGateNotFound, name)
}

func conditionNotFound(id string) error {
	return fmt.Errorf("%w: No condition has been found for id %s", entities.ErrConditionNotFound, id)
}

func (s *Store) gateIndex(name string) int {
	return slices.IndexFunc(s.st.QualityGates, func(g entities.QualityGate) bool { return g.Name == name })
}

func (s *Store) gateActions(g entities.QualityGate) entities.QualityGateActions {
	admin := s.st.IsAdmin
	return entities.QualityGateActions{
		Rename:            !g.IsBuiltIn && admin,
		SetAsDefault:      !g.IsDefault && admin,
		Copy:              admin,
		AssociateProjects: admin,
		Delete:            !g.IsBuiltIn && admin,
		ManageConditions:  admin,
		Delegate:          admin,
	}
}

// ListQualityGates lists every gate without its conditions.
func (s *Store) ListQualityGates(_ context.Context) (entities.QualityGateList, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := entities.QualityGateList{
		QualityGates: make([]entities.QualityGateSummary, 0, len(s.st.QualityGates)),
		Actions:      entities.QualityGateListActions{Create: s.st.IsAdmin},
	}
	for _, g := range s.st.QualityGates {
		if g.IsDefault && list.Default == "" {
			list.Default = g.Name
		}
		list.QualityGates = append(list.QualityGates, entities.QualityGateSummary{
			ID:         g.ID,
			Name:       g.Name,
			IsDefault:  g.IsDefault,
			IsBuiltIn:  g.IsBuiltIn,
			CaycStatus: g.CaycStatus,
			Actions:    s.gateActions(g),
		})
	}
	return list, nil
}

// ShowQualityGate returns a gate with its conditions and actions.
func (s *Store) ShowQualityGate(_ context.Context, name string) (entities.QualityGate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.gateIndex(name)
	if idx < 0 {
		return entities.QualityGate{}, gateNotFound(name)
	}
	return s.withActions(s.st.QualityGates[idx]), nil
}

func (s *Store) withActions(g entities.QualityGate) entities.QualityGate {
	out := clone(g)
	actions := s.gateActions(g)
	out.Actions = &actions
	return out
}

// CreateQualityGate adds a gate holding the starter conditions.
func (s *Store) CreateQualityGate(ctx context.Context, name string) (entities.QualityGateName, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.st.QualityGates = append(s.st.QualityGates, fixtures.MockQualityGate(func(g *entities.QualityGate) {
		g.ID = ""
		g.Name = name
		g.Conditions = fixtures.StarterConditions()
		g.CaycStatus = entities.CaycCompliant
	}))
	s.persist(ctx)
	s.log.Infow("quality gate created", "name", name)
	return entities.QualityGateName{Name: name}, nil
}

// CopyQualityGate duplicates a gate's conditions under a new name. The copy
// is neither default nor built-in.
func (s *Store) CopyQualityGate(ctx context.Context, sourceName, name string) (entities.QualityGateName, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.gateIndex(sourceName)
	if idx < 0 {
		return entities.QualityGateName{}, gateNotFound(sourceName)
	}
	source := s.st.QualityGates[idx]
	s.st.QualityGates = append(s.st.QualityGates, fixtures.MockQualityGate(func(g *entities.QualityGate) {
		g.ID = ""
		g.Name = name
		g.Conditions = clone(source.Conditions)
		g.CaycStatus = source.CaycStatus
	}))
	s.persist(ctx)
	s.log.Infow("quality gate copied", "source", sourceName, "name", name)
	return entities.QualityGateName{Name: name}, nil
}

// RenameQualityGate renames a gate and carries its delegations along.
func (s *Store) RenameQualityGate(ctx context.Context, currentName, name string) (entities.QualityGateName, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.gateIndex(currentName)
	if idx < 0 {
		return entities.QualityGateName{}, gateNotFound(currentName)
	}
	s.st.QualityGates[idx].Name = name
	if perms, ok := s.st.GatePermissions[currentName]; ok {
		delete(s.st.GatePermissions, currentName)
		s.st.GatePermissions[name] = perms
	}
	if s.st.GateForProject == currentName {
		s.st.GateForProject = name
	}
	s.persist(ctx)
	return entities.QualityGateName{Name: name}, nil
}

// DeleteQualityGate removes a gate.
func (s *Store) DeleteQualityGate(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.gateIndex(name)
	if idx < 0 {
		return gateNotFound(name)
	}
	s.st.QualityGates = slices.Delete(s.st.QualityGates, idx, idx+1)
	delete(s.st.GatePermissions, name)
	s.persist(ctx)
	s.log.Infow("quality gate deleted", "name", name)
	return nil
}

// SetQualityGateAsDefault makes name the only default gate.
func (s *Store) SetQualityGateAsDefault(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.gateIndex(name)
	if idx < 0 {
		return gateNotFound(name)
	}
	for i := range s.st.QualityGates {
		s.st.QualityGates[i].IsDefault = i == idx
	}
	s.persist(ctx)
	return nil
}

// CreateCondition appends a condition to a gate. Its id is derived from the
// gate name and its condition count, bumped until no gate uses it.
func (s *Store) CreateCondition(ctx context.Context, gateName string, cond entities.Condition) (entities.Condition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.gateIndex(gateName)
	if idx < 0 {
		return entities.Condition{}, gateNotFound(gateName)
	}
	gate := &s.st.QualityGates[idx]
	for n := len(gate.Conditions); ; n++ {
		cond.ID = fmt.Sprintf("condId%s%d", gate.Name, n)
		if !s.conditionExists(cond.ID) {
			break
		}
	}
	gate.Conditions = append(gate.Conditions, cond)
	s.persist(ctx)
	return cond, nil
}

func (s *Store) conditionExists(id string) bool {
	for _, g := range s.st.QualityGates {
		if slices.ContainsFunc(g.Conditions, func(c entities.Condition) bool { return c.ID == id }) {
			return true
		}
	}
	return false
}

// UpdateCondition rewrites the first condition with the same id, searching
// gates in order.
func (s *Store) UpdateCondition(ctx context.Context, cond entities.Condition) (entities.Condition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for gi := range s.st.QualityGates {
		conds := s.st.QualityGates[gi].Conditions
		ci := slices.IndexFunc(conds, func(c entities.Condition) bool { return c.ID == cond.ID })
		if ci < 0 {
			continue
		}
		conds[ci].Metric = cond.Metric
		conds[ci].Op = cond.Op
		conds[ci].Error = cond.Error
		s.persist(ctx)
		return conds[ci], nil
	}
	return entities.Condition{}, conditionNotFound(cond.ID)
}

// DeleteCondition removes every condition with the id, in every gate.
func (s *Store) DeleteCondition(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for gi := range s.st.QualityGates {
		g := &s.st.QualityGates[gi]
		before := len(g.Conditions)
		g.Conditions = slices.DeleteFunc(g.Conditions, func(c entities.Condition) bool { return c.ID == id })
		removed += before - len(g.Conditions)
	}
	if removed == 0 {
		return conditionNotFound(id)
	}
	s.persist(ctx)
	return nil
}

// SearchProjects filters projects by association state and name.
func (s *Store) SearchProjects(_ context.Context, q entities.ProjectQuery) (entities.ProjectsSearchResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(q.Query)
	projects := make([]entities.Project, 0, len(s.st.Projects))
	for _, p := range s.st.Projects {
		switch q.Selected {
		case entities.SelectionSelected:
			if !p.Selected {
				continue
			}
		case entities.SelectionDeselected:
			if p.Selected {
				continue
			}
		}
		if needle != "" && !strings.Contains(strings.ToLower(p.Name), needle) {
			continue
		}
		projects = append(projects, p)
	}

	page := pageOrFirst(q.Page)
	size := sizeOr(q.PageSize, defaultProjectsPageSize)
	return entities.ProjectsSearchResponse{
		Paging:  entities.Paging{PageIndex: page, PageSize: size, Total: len(projects)},
		Results: paginate(projects, page, size),
	}, nil
}

// AssociateProject marks a project as using a gate. Unknown projects are
// ignored.
func (s *Store) AssociateProject(ctx context.Context, _, projectKey string) error {
	return s.setProjectSelected(ctx, projectKey, true)
}

// DissociateProject marks a project as not using a gate. Unknown projects
// are ignored.
func (s *Store) DissociateProject(ctx context.Context, _, projectKey string) error {
	return s.setProjectSelected(ctx, projectKey, false)
}

func (s *Store) setProjectSelected(ctx context.Context, projectKey string, selected bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.st.Projects, func(p entities.Project) bool { return p.Key == projectKey })
	if idx < 0 {
		return nil
	}
	s.st.Projects[idx].Selected = selected
	s.persist(ctx)
	return nil
}

// GetGateForProject returns the gate every project currently reports.
func (s *Store) GetGateForProject(_ context.Context, _ string) (entities.QualityGate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.gateIndex(s.st.GateForProject)
	if idx < 0 {
		return entities.QualityGate{}, gateNotFound(s.st.GateForProject)
	}
	return s.withActions(s.st.QualityGates[idx]), nil
}

// SetGateForProject changes the gate every project reports.
func (s *Store) SetGateForProject(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gateIndex(name) < 0 {
		return gateNotFound(name)
	}
	s.st.GateForProject = name
	s.persist(ctx)
	return nil
}

// AddGateUser delegates a gate to a user.
func (s *Store) AddGateUser(ctx context.Context, gateName, login string) error {
	return s.updatePermissions(ctx, gateName, func(p *entities.GatePermissions) {
		if !slices.Contains(p.Users, login) {
			p.Users = append(p.Users, login)
		}
	})
}

// RemoveGateUser revokes a user delegation.
func (s *Store) RemoveGateUser(ctx context.Context, gateName, login string) error {
	return s.updatePermissions(ctx, gateName, func(p *entities.GatePermissions) {
		p.Users = slices.DeleteFunc(p.Users, func(u string) bool { return u == login })
	})
}

// AddGateGroup delegates a gate to a group.
func (s *Store) AddGateGroup(ctx context.Context, gateName, group string) error {
	return s.updatePermissions(ctx, gateName, func(p *entities.GatePermissions) {
		if !slices.Contains(p.Groups, group) {
			p.Groups = append(p.Groups, group)
		}
	})
}

// RemoveGateGroup revokes a group delegation.
func (s *Store) RemoveGateGroup(ctx context.Context, gateName, group string) error {
	return s.updatePermissions(ctx, gateName, func(p *entities.GatePermissions) {
		p.Groups = slices.DeleteFunc(p.Groups, func(g string) bool { return g == group })
	})
}

func (s *Store) updatePermissions(ctx context.Context, gateName string, update func(*entities.GatePermissions)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gateIndex(gateName) < 0 {
		return gateNotFound(gateName)
	}
	if s.st.GatePermissions == nil {
		s.st.GatePermissions = map[string]entities.GatePermissions{}
	}
	perms := s.st.GatePermissions[gateName]
	update(&perms)
	s.st.GatePermissions[gateName] = perms
	s.persist(ctx)
	return nil
}

// selectionFilter keeps members according to a selected/deselected/all
// selection against the delegated set.
func selectionFilter(selection string, delegated []string) func(string) bool {
	return func(name string) bool {
		switch selection {
		case entities.SelectionSelected:
			return slices.Contains(delegated, name)
		case entities.SelectionDeselected:
			return !slices.Contains(delegated, name)
		default:
			return true
		}
	}
}

// SearchGateUsers lists users by delegation state on a gate.
func (s *Store) SearchGateUsers(_ context.Context, q entities.PermissionQuery) (entities.UsersResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.gateIndex(q.GateName) < 0 {
		return entities.UsersResponse{}, gateNotFound(q.GateName)
	}
	keep := selectionFilter(q.Selected, s.st.GatePermissions[q.GateName].Users)
	users := filterUsers(s.st.Users, q.Query, func(u entities.User) bool { return keep(u.Login) })
	return clone(entities.UsersResponse{Users: users}), nil
}

// SearchGateGroups lists groups by delegation state on a gate.
func (s *Store) SearchGateGroups(_ context.Context, q entities.PermissionQuery) (entities.GroupsResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.gateIndex(q.GateName) < 0 {
		return entities.GroupsResponse{}, gateNotFound(q.GateName)
	}
	keep := selectionFilter(q.Selected, s.st.GatePermissions[q.GateName].Groups)
	needle := strings.ToLower(q.Query)
	groups := make([]entities.Group, 0, len(s.st.Groups))
	for _, g := range s.st.Groups {
		if keep(g.Name) && strings.Contains(strings.ToLower(g.Name), needle) {
			groups = append(groups, g)
		}
	}
	return entities.GroupsResponse{Groups: groups}, nil
}
