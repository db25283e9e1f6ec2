package domain

import (
	"context"
	"fmt"

	"github.com/codescan-io/sonarqube-sub000/internal/entities"
)

// SearchHotspots lists the hotspots of a project.
func (u *Usecase) SearchHotspots(ctx context.Context, q entities.HotspotQuery) (entities.HotspotsSearchResponse, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if q.ProjectKey == "" && len(q.Keys) == 0 {
		return entities.HotspotsSearchResponse{}, fmt.Errorf("%w: projectKey or hotspots is required", entities.ErrInvalidArgument)
	}
	if q.Status != "" && !q.Status.Valid() {
		return entities.HotspotsSearchResponse{}, fmt.Errorf("%w: unknown status %q", entities.ErrInvalidArgument, q.Status)
	}
	return u.repo.SearchHotspots(ctx, q)
}

// ShowHotspot returns a hotspot's detail.
func (u *Usecase) ShowHotspot(ctx context.Context, key string) (entities.Hotspot, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if key == "" {
		return entities.Hotspot{}, fmt.Errorf("%w: hotspot is required", entities.ErrInvalidArgument)
	}
	return u.repo.ShowHotspot(ctx, key)
}

// AssignHotspot assigns a hotspot.
func (u *Usecase) AssignHotspot(ctx context.Context, key, assignee string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if key == "" {
		return fmt.Errorf("%w: hotspot is required", entities.ErrInvalidArgument)
	}
	return u.repo.AssignHotspot(ctx, key, assignee)
}

// SetHotspotStatus reviews a hotspot. A reviewed hotspot needs a resolution.
func (u *Usecase) SetHotspotStatus(
	ctx context.Context,
	key string,
	status entities.HotspotStatus,
	resolution entities.HotspotResolution,
	comment string,
) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if key == "" {
		return fmt.Errorf("%w: hotspot is required", entities.ErrInvalidArgument)
	}
	if !status.Valid() {
		return fmt.Errorf("%w: unknown status %q", entities.ErrInvalidArgument, status)
	}
	if status == entities.HotspotReviewed && !resolution.Valid() {
		return fmt.Errorf("%w: a reviewed hotspot needs a resolution", entities.ErrInvalidArgument)
	}
	if err := u.repo.SetHotspotStatus(ctx, key, status, resolution, comment); err != nil {
		return err
	}
	u.log.Infow("hotspot status set", "hotspot", key, "status", status, "resolution", resolution)
	return nil
}

// CommentHotspot comments a hotspot.
func (u *Usecase) CommentHotspot(ctx context.Context, key, text string) (entities.HotspotComment, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if key == "" || text == "" {
		return entities.HotspotComment{}, fmt.Errorf("%w: hotspot and comment are required", entities.ErrInvalidArgument)
	}
	return u.repo.CommentHotspot(ctx, key, text)
}

// EditHotspotComment rewrites a hotspot comment.
func (u *Usecase) EditHotspotComment(ctx context.Context, commentKey, text string) (entities.HotspotComment, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if commentKey == "" || text == "" {
		return entities.HotspotComment{}, fmt.Errorf("%w: comment and text are required", entities.ErrInvalidArgument)
	}
	return u.repo.EditHotspotComment(ctx, commentKey, text)
}

// DeleteHotspotComment removes a hotspot comment.
func (u *Usecase) DeleteHotspotComment(ctx context.Context, commentKey string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if commentKey == "" {
		return fmt.Errorf("%w: comment is required", entities.ErrInvalidArgument)
	}
	return u.repo.DeleteHotspotComment(ctx, commentKey)
}

// SetHotspotStatusPermission toggles whether hotspot statuses may change.
func (u *Usecase) SetHotspotStatusPermission(ctx context.Context, canChange bool) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.SetHotspotStatusPermission(ctx, canChange)
}
