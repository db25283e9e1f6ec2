package domain

import (
	"context"
	"fmt"

	"github.com/codescan-io/sonarqube-sub000/internal/entities"
)

var gateOperators = map[string]bool{"LT": true, "GT": true}

// ListGates lists quality gates.
func (u *Usecase) ListGates(ctx context.Context) (entities.QualityGateList, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListQualityGates(ctx)
}

// ShowGate returns one gate with its conditions.
func (u *Usecase) ShowGate(ctx context.Context, name string) (entities.QualityGate, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if name == "" {
		return entities.QualityGate{}, fmt.Errorf("%w: name is required", entities.ErrInvalidArgument)
	}
	return u.repo.ShowQualityGate(ctx, name)
}

// CreateGate creates a gate with starter conditions.
func (u *Usecase) CreateGate(ctx context.Context, name string) (entities.QualityGateName, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if name == "" {
		return entities.QualityGateName{}, fmt.Errorf("%w: name is required", entities.ErrInvalidArgument)
	}
	return u.repo.CreateQualityGate(ctx, name)
}

// CopyGate duplicates a gate.
func (u *Usecase) CopyGate(ctx context.Context, sourceName, name string) (entities.QualityGateName, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if sourceName == "" || name == "" {
		return entities.QualityGateName{}, fmt.Errorf("%w: sourceName and name are required", entities.ErrInvalidArgument)
	}
	return u.repo.CopyQualityGate(ctx, sourceName, name)
}

// RenameGate renames a gate.
func (u *Usecase) RenameGate(ctx context.Context, currentName, name string) (entities.QualityGateName, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if currentName == "" || name == "" {
		return entities.QualityGateName{}, fmt.Errorf("%w: currentName and name are required", entities.ErrInvalidArgument)
	}
	res, err := u.repo.RenameQualityGate(ctx, currentName, name)
	if err != nil {
		return entities.QualityGateName{}, err
	}
	u.log.Infow("quality gate renamed", "from", currentName, "to", name)
	return res, nil
}

// DeleteGate removes a gate.
func (u *Usecase) DeleteGate(ctx context.Context, name string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if name == "" {
		return fmt.Errorf("%w: name is required", entities.ErrInvalidArgument)
	}
	return u.repo.DeleteQualityGate(ctx, name)
}

// SetDefaultGate makes a gate the default.
func (u *Usecase) SetDefaultGate(ctx context.Context, name string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if name == "" {
		return fmt.Errorf("%w: name is required", entities.ErrInvalidArgument)
	}
	return u.repo.SetQualityGateAsDefault(ctx, name)
}

// CreateCondition adds a condition to a gate.
func (u *Usecase) CreateCondition(ctx context.Context, gateName string, cond entities.Condition) (entities.Condition, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if gateName == "" || cond.Metric == "" || cond.Error == "" {
		return entities.Condition{}, fmt.Errorf("%w: gateName, metric and error are required", entities.ErrInvalidArgument)
	}
	if cond.Op != "" && !gateOperators[cond.Op] {
		return entities.Condition{}, fmt.Errorf("%w: unknown operator %q", entities.ErrInvalidArgument, cond.Op)
	}
	return u.repo.CreateCondition(ctx, gateName, cond)
}

// UpdateCondition rewrites a condition.
func (u *Usecase) UpdateCondition(ctx context.Context, cond entities.Condition) (entities.Condition, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if cond.ID == "" || cond.Metric == "" || cond.Error == "" {
		return entities.Condition{}, fmt.Errorf("%w: id, metric and error are required", entities.ErrInvalidArgument)
	}
	if cond.Op != "" && !gateOperators[cond.Op] {
		return entities.Condition{}, fmt.Errorf("%w: unknown operator %q", entities.ErrInvalidArgument, cond.Op)
	}
	return u.repo.UpdateCondition(ctx, cond)
}

// DeleteCondition removes a condition from every gate.
func (u *Usecase) DeleteCondition(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return fmt.Errorf("%w: id is required", entities.ErrInvalidArgument)
	}
	return u.repo.DeleteCondition(ctx, id)
}

// SearchProjects lists projects by association state.
func (u *Usecase) SearchProjects(ctx context.Context, q entities.ProjectQuery) (entities.ProjectsSearchResponse, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	switch q.Selected {
	case "", entities.SelectionSelected, entities.SelectionDeselected, entities.SelectionAll:
	default:
		return entities.ProjectsSearchResponse{}, fmt.Errorf("%w: unknown selection %q", entities.ErrInvalidArgument, q.Selected)
	}
	return u.repo.SearchProjects(ctx, q)
}

// AssociateProject makes a project use a gate.
func (u *Usecase) AssociateProject(ctx context.Context, gateName, projectKey string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if projectKey == "" {
		return fmt.Errorf("%w: projectKey is required", entities.ErrInvalidArgument)
	}
	return u.repo.AssociateProject(ctx, gateName, projectKey)
}

// DissociateProject stops a project using a gate.
func (u *Usecase) DissociateProject(ctx context.Context, gateName, projectKey string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if projectKey == "" {
		return fmt.Errorf("%w: projectKey is required", entities.ErrInvalidArgument)
	}
	return u.repo.DissociateProject(ctx, gateName, projectKey)
}

// GateForProject returns the gate a project reports.
func (u *Usecase) GateForProject(ctx context.Context, projectKey string) (entities.QualityGate, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if projectKey == "" {
		return entities.QualityGate{}, fmt.Errorf("%w: project is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetGateForProject(ctx, projectKey)
}

// SetGateForProject changes the gate projects report.
func (u *Usecase) SetGateForProject(ctx context.Context, name string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if name == "" {
		return fmt.Errorf("%w: name is required", entities.ErrInvalidArgument)
	}
	return u.repo.SetGateForProject(ctx, name)
}

// AddGateUser delegates a gate to a user.
func (u *Usecase) AddGateUser(ctx context.Context, gateName, login string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if gateName == "" || login == "" {
		return fmt.Errorf("%w: gateName and login are required", entities.ErrInvalidArgument)
	}
	return u.repo.AddGateUser(ctx, gateName, login)
}

// RemoveGateUser revokes a user delegation.
func (u *Usecase) RemoveGateUser(ctx context.Context, gateName, login string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if gateName == "" || login == "" {
		return fmt.Errorf("%w: gateName and login are required", entities.ErrInvalidArgument)
	}
	return u.repo.RemoveGateUser(ctx, gateName, login)
}

// AddGateGroup delegates a gate to a group.
func (u *Usecase) AddGateGroup(ctx context.Context, gateName, group string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if gateName == "" || group == "" {
		return fmt.Errorf("%w: gateName and groupName are required", entities.ErrInvalidArgument)
	}
	return u.repo.AddGateGroup(ctx, gateName, group)
}

// RemoveGateGroup revokes a group delegation.
func (u *Usecase) RemoveGateGroup(ctx context.Context, gateName, group string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if gateName == "" || group == "" {
		return fmt.Errorf("%w: gateName and groupName are required", entities.ErrInvalidArgument)
	}
	return u.repo.RemoveGateGroup(ctx, gateName, group)
}

// SearchGateUsers lists users by delegation state.
func (u *Usecase) SearchGateUsers(ctx context.Context, q entities.PermissionQuery) (entities.UsersResponse, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if q.GateName == "" {
		return entities.UsersResponse{}, fmt.Errorf("%w: gateName is required", entities.ErrInvalidArgument)
	}
	return u.repo.SearchGateUsers(ctx, q)
}

// SearchGateGroups lists groups by delegation state.
func (u *Usecase) SearchGateGroups(ctx context.Context, q entities.PermissionQuery) (entities.GroupsResponse, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if q.GateName == "" {
		return entities.GroupsResponse{}, fmt.Errorf("%w: gateName is required", entities.ErrInvalidArgument)
	}
	return u.repo.SearchGateGroups(ctx, q)
}
