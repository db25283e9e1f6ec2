package memory

import (
	"context"
	"fmt"
	"strings"

	"github.com/codescan-io/sonarqube-sub000/internal/entities"
)

const defaultUsersPageSize = 50

// GetCurrentUser returns the user the store acts for.
func (s *Store) GetCurrentUser(_ context.Context) (entities.LoggedInUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return clone(s.st.CurrentUser), nil
}

// SetCurrentUser replaces the user the store acts for.
func (s *Store) SetCurrentUser(ctx context.Context, user entities.LoggedInUser) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user.DismissedNotices == nil {
		user.DismissedNotices = map[string]bool{}
	}
	s.st.CurrentUser = clone(user)
	s.persist(ctx)
	return nil
}

// DismissNotice marks a notice as seen by the current user.
func (s *Store) DismissNotice(ctx context.Context, notice string) error {
	if notice != entities.NoticeEducationPrinciples {
		return fmt.Errorf("%w: unknown notice %s", entities.ErrInvalidArgument, notice)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.st.CurrentUser.DismissedNotices == nil {
		s.st.CurrentUser.DismissedNotices = map[string]bool{}
	}
	s.st.CurrentUser.DismissedNotices[notice] = true
	s.persist(ctx)
	return nil
}

// SearchUsers filters the user directory by login or name.
func (s *Store) SearchUsers(_ context.Context, q entities.UserQuery) (entities.UsersResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := filterUsers(s.st.Users, q.Q, nil)
	page := pageOrFirst(q.Page)
	size := sizeOr(q.PageSize, defaultUsersPageSize)

	return clone(entities.UsersResponse{
		Paging: &entities.Paging{PageIndex: page, PageSize: size, Total: len(users)},
		Users:  paginate(users, page, size),
	}), nil
}

// SetAdmin toggles whether the current user administers quality gates.
func (s *Store) SetAdmin(ctx context.Context, isAdmin bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.st.IsAdmin = isAdmin
	s.persist(ctx)
	return nil
}

// filterUsers keeps users whose login or name contains q and, when keep is
// set, that keep accepts.
func filterUsers(users []entities.User, q string, keep func(entities.User) bool) []entities.User {
	needle := strings.ToLower(q)
	out := make([]entities.User, 0, len(users))
	for _, u := range users {
		if keep != nil && !keep(u) {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(u.Login), needle) &&
			!strings.Contains(strings.ToLower(u.Name), needle) {
			continue
		}
		out = append(out, u)
	}
	return out
}
