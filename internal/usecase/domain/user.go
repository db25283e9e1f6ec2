package domain

import (
	"context"
	"fmt"

	"github.com/codescan-io/sonarqube-sub000/internal/entities"
)

// SearchRules filters the rule catalogue.
func (u *Usecase) SearchRules(ctx context.Context, q entities.RuleQuery) (entities.RulesSearchResponse, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	for _, t := range q.Types {
		if !t.Valid() {
			return entities.RulesSearchResponse{}, fmt.Errorf("%w: unknown type %q", entities.ErrInvalidArgument, t)
		}
	}
	return u.repo.SearchRules(ctx, q)
}

// RuleDetails returns the description of a rule.
func (u *Usecase) RuleDetails(ctx context.Context, key string) (entities.RuleDetailsResponse, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if key == "" {
		return entities.RuleDetailsResponse{}, fmt.Errorf("%w: key is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetRuleDetails(ctx, key)
}

// CurrentUser returns the user the store acts for.
func (u *Usecase) CurrentUser(ctx context.Context) (entities.LoggedInUser, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.GetCurrentUser(ctx)
}

// SetCurrentUser switches the user the store acts for.
func (u *Usecase) SetCurrentUser(ctx context.Context, user entities.LoggedInUser) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if user.Login == "" {
		return fmt.Errorf("%w: login is required", entities.ErrInvalidArgument)
	}
	if err := u.repo.SetCurrentUser(ctx, user); err != nil {
		return err
	}
	u.log.Infow("current user set", "login", user.Login)
	return nil
}

// DismissNotice hides a notice for the current user.
func (u *Usecase) DismissNotice(ctx context.Context, notice string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if notice == "" {
		return fmt.Errorf("%w: notice is required", entities.ErrInvalidArgument)
	}
	return u.repo.DismissNotice(ctx, notice)
}

// SearchUsers filters the user directory.
func (u *Usecase) SearchUsers(ctx context.Context, q entities.UserQuery) (entities.UsersResponse, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.SearchUsers(ctx, q)
}

// SetAdmin toggles gate administration rights of the current user.
func (u *Usecase) SetAdmin(ctx context.Context, isAdmin bool) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := u.repo.SetAdmin(ctx, isAdmin); err != nil {
		return err
	}
	u.log.Infow("admin flag set", "is_admin", isAdmin)
	return nil
}

// Reset restores the store to its seed.
func (u *Usecase) Reset(ctx context.Context) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := u.repo.Reset(ctx); err != nil {
		u.log.Errorw("reset failed", "error", err)
		return err
	}
	return nil
}
