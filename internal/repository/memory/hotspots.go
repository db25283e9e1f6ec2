package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/codescan-io/sonarqube-sub000/internal/entities"

	"github.com/google/uuid"
)

const defaultHotspotsPageSize = 100

func hotspotNotFound(key string) error {
	return fmt.Errorf("%w: No security hotspot for key %s", entities.ErrHotspotNotFound, key)
}

func (s *Store) hotspotIndex(key string) int {
	return slices.IndexFunc(s.st.Hotspots, func(h entities.Hotspot) bool { return h.Key == key })
}

func (s *Store) hotspotMatches(h entities.Hotspot, q entities.HotspotQuery) bool {
	switch {
	case q.ProjectKey != "" && h.Project != q.ProjectKey:
		return false
	case h.Branch != q.Branch:
		return false
	case len(q.Keys) > 0 && !slices.Contains(q.Keys, h.Key):
		return false
	case q.Status != "" && h.Status != q.Status:
		return false
	case q.Resolution != "" && h.Resolution != q.Resolution:
		return false
	case q.OnlyMine && h.Assignee != s.st.CurrentUser.Login:
		return false
	}
	if q.InNewCodePeriod {
		created, ok := parseDate(h.CreationDate)
		return ok && created.After(s.newCodeCutoff)
	}
	return true
}

// SearchHotspots lists the hotspots of a project branch.
func (s *Store) SearchHotspots(_ context.Context, q entities.HotspotQuery) (entities.HotspotsSearchResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]entities.Hotspot, 0, len(s.st.Hotspots))
	for _, h := range s.st.Hotspots {
		if s.hotspotMatches(h, q) {
			matched = append(matched, h)
		}
	}

	page := pageOrFirst(q.Page)
	size := sizeOr(q.PageSize, defaultHotspotsPageSize)
	paged := paginate(matched, page, size)

	raw := make([]entities.RawHotspot, 0, len(paged))
	for _, h := range paged {
		raw = append(raw, h.Raw())
	}
	return clone(entities.HotspotsSearchResponse{
		Paging:     entities.Paging{PageIndex: page, PageSize: size, Total: len(matched)},
		Hotspots:   raw,
		Components: hotspotComponents(paged),
	}), nil
}

// hotspotComponents lists the files and projects hotspots sit in.
func hotspotComponents(hotspots []entities.Hotspot) []entities.HotspotComponent {
	seen := make(map[string]struct{})
	out := make([]entities.HotspotComponent, 0)
	add := func(c entities.HotspotComponent) {
		if _, ok := seen[c.Key]; ok {
			return
		}
		seen[c.Key] = struct{}{}
		out = append(out, c)
	}
	for _, h := range hotspots {
		path := h.Component
		if i := strings.Index(path, ":"); i >= 0 {
			path = path[i+1:]
		}
		add(entities.HotspotComponent{Key: h.Component, Qualifier: "FIL", Name: path, LongName: path, Path: path})
		add(entities.HotspotComponent{Key: h.Project, Qualifier: "TRK", Name: h.Project, LongName: h.Project})
	}
	return out
}

// ShowHotspot returns the detail of a hotspot.
func (s *Store) ShowHotspot(_ context.Context, key string) (entities.Hotspot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.hotspotIndex(key)
	if idx < 0 {
		return entities.Hotspot{}, hotspotNotFound(key)
	}
	h := clone(s.st.Hotspots[idx])
	h.CanChangeStatus = s.st.CanChangeStatus
	return h, nil
}

func (s *Store) patchHotspot(ctx context.Context, key string, patch func(*entities.Hotspot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.hotspotIndex(key)
	if idx < 0 {
		return hotspotNotFound(key)
	}
	updated := clone(s.st.Hotspots[idx])
	if err := patch(&updated); err != nil {
		return err
	}
	s.st.Hotspots[idx] = updated
	s.persist(ctx)
	return nil
}

// AssignHotspot assigns a hotspot. An empty assignee unassigns it.
func (s *Store) AssignHotspot(ctx context.Context, key, assignee string) error {
	return s.patchHotspot(ctx, key, func(h *entities.Hotspot) error {
		assignee = s.resolveAssignee(assignee)
		h.Assignee = assignee
		if assignee == "" {
			h.AssigneeUser = nil
			return nil
		}
		user := entities.User{Login: assignee, Name: assignee, Active: true}
		if idx := slices.IndexFunc(s.st.Users, func(u entities.User) bool { return u.Login == assignee }); idx >= 0 {
			user = s.st.Users[idx]
		}
		h.AssigneeUser = &user
		return nil
	})
}

// SetHotspotStatus reviews a hotspot, optionally leaving a comment. Moving
// back to review clears the resolution.
func (s *Store) SetHotspotStatus(
	ctx context.Context,
	key string,
	status entities.HotspotStatus,
	resolution entities.HotspotResolution,
	comment string,
) error {
	return s.patchHotspot(ctx, key, func(h *entities.Hotspot) error {
		if !s.st.CanChangeStatus {
			return fmt.Errorf("%w: cannot change the status of hotspot %s", entities.ErrPermissionDenied, key)
		}
		h.Status = status
		h.Resolution = resolution
		if status == entities.HotspotToReview {
			h.Resolution = ""
		}
		if comment != "" {
			h.Comment = append(h.Comment, s.newHotspotComment(comment))
		}
		return nil
	})
}

func (s *Store) newHotspotComment(text string) entities.HotspotComment {
	return entities.HotspotComment{
		Key:       uuid.NewString(),
		Login:     s.st.CurrentUser.Login,
		HTMLText:  text,
		Markdown:  text,
		CreatedAt: commentCreatedAt,
		Updatable: true,
	}
}

// CommentHotspot adds a comment authored by the current user.
func (s *Store) CommentHotspot(ctx context.Context, key, text string) (entities.HotspotComment, error) {
	var added entities.HotspotComment
	err := s.patchHotspot(ctx, key, func(h *entities.Hotspot) error {
		added = s.newHotspotComment(text)
		h.Comment = append(h.Comment, added)
		return nil
	})
	return added, err
}

// hotspotCommentOwner finds the hotspot holding commentKey under the read
// lock; patchHotspot callbacks must find the comment again.
func (s *Store) hotspotCommentOwner(commentKey string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, h := range s.st.Hotspots {
		if slices.ContainsFunc(h.Comment, func(c entities.HotspotComment) bool { return c.Key == commentKey }) {
			return h.Key, true
		}
	}
	return "", false
}

// EditHotspotComment replaces the text of a hotspot comment.
func (s *Store) EditHotspotComment(ctx context.Context, commentKey, text string) (entities.HotspotComment, error) {
	owner, ok := s.hotspotCommentOwner(commentKey)
	if !ok {
		return entities.HotspotComment{}, commentNotFound(commentKey)
	}
	var edited entities.HotspotComment
	err := s.patchHotspot(ctx, owner, func(h *entities.Hotspot) error {
		idx := slices.IndexFunc(h.Comment, func(c entities.HotspotComment) bool { return c.Key == commentKey })
		if idx < 0 {
			return commentNotFound(commentKey)
		}
		h.Comment[idx].HTMLText = text
		h.Comment[idx].Markdown = text
		edited = h.Comment[idx]
		return nil
	})
	return edited, err
}

// DeleteHotspotComment removes a hotspot comment.
func (s *Store) DeleteHotspotComment(ctx context.Context, commentKey string) error {
	owner, ok := s.hotspotCommentOwner(commentKey)
	if !ok {
		return commentNotFound(commentKey)
	}
	return s.patchHotspot(ctx, owner, func(h *entities.Hotspot) error {
		before := len(h.Comment)
		h.Comment = slices.DeleteFunc(h.Comment, func(c entities.HotspotComment) bool { return c.Key == commentKey })
		if len(h.Comment) == before {
			return commentNotFound(commentKey)
		}
		return nil
	})
}

// SetHotspotStatusPermission toggles whether hotspot statuses may change.
func (s *Store) SetHotspotStatusPermission(ctx context.Context, canChange bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.st.CanChangeStatus = canChange
	s.persist(ctx)
	return nil
}
