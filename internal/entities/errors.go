// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrIssueNotFound signals missing issue.
	ErrIssueNotFound = errors.New("issue not found")
	// ErrCommentNotFound signals that no issue owns the comment.
	ErrCommentNotFound = errors.New("comment not found")
	// ErrQualityGateNotFound signals missing quality gate.
	ErrQualityGateNotFound = errors.New("quality gate not found")
	// ErrConditionNotFound signals missing gate condition.
	ErrConditionNotFound = errors.New("condition not found")
	// ErrHotspotNotFound signals missing security hotspot.
	ErrHotspotNotFound = errors.New("hotspot not found")
	// ErrUnknownTransition signals a transition outside the workflow table.
	ErrUnknownTransition = errors.New("unknown transition")
	// ErrPermissionDenied signals a mutation the current user may not perform.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrSnapshotNotFound signals that no persisted store state exists yet.
	ErrSnapshotNotFound = errors.New("snapshot not found")
)
