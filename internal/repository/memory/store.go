// Package memory implements the repository as an in-process store seeded from
// fixtures. Every value handed out is a deep copy, so callers can never reach
// the live state. A Snapshotter may be attached to persist the state between
// restarts.
package memory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/codescan-io/sonarqube-sub000/internal/entities"
	"github.com/codescan-io/sonarqube-sub000/internal/fixtures"

	"go.uber.org/zap"
)

const (
	// DefaultPageSize is the issue search page size.
	DefaultPageSize = 7
	// DefaultSnapshotName is the key the state is persisted under.
	DefaultSnapshotName = "default"

	effortTotal      = 199629
	commentAuthor    = "admin"
	commentCreatedAt = "2022-07-28T11:30:04+0200"
)

// DefaultNewCodeCutoff is the start of the new code period.
var DefaultNewCodeCutoff = time.Date(2023, time.January, 10, 0, 0, 0, 0, time.UTC)

// Snapshotter persists the serialized store state under a name.
type Snapshotter interface {
	OnStart(ctx context.Context) error
	OnStop(ctx context.Context) error
	LoadSnapshot(ctx context.Context, name string) ([]byte, error)
	SaveSnapshot(ctx context.Context, name string, payload []byte) error
}

// state is everything a reset restores.
type state struct {
	fixtures.Snapshot
	IsAdmin         bool `json:"isAdmin"`
	CanChangeStatus bool `json:"canChangeStatus"`
}

// Store is the in-memory repository.
type Store struct {
	mu  sync.RWMutex
	log *zap.SugaredLogger

	seed          fixtures.Snapshot
	pageSize      int
	newCodeCutoff time.Time
	snap          Snapshotter
	snapName      string

	st state
}

// Option customizes a Store.
type Option func(*Store)

// WithPageSize overrides the issue search page size.
func WithPageSize(size int) Option {
	return func(s *Store) {
		if size > 0 {
			s.pageSize = size
		}
	}
}

// WithNewCodeCutoff overrides the start of the new code period.
func WithNewCodeCutoff(t time.Time) Option {
	return func(s *Store) {
		if !t.IsZero() {
			s.newCodeCutoff = t
		}
	}
}

// WithSnapshotter persists the state through snap under name.
func WithSnapshotter(snap Snapshotter, name string) Option {
	return func(s *Store) {
		s.snap = snap
		if name != "" {
			s.snapName = name
		}
	}
}

// New builds a store holding a copy of seed.
func New(log *zap.SugaredLogger, seed fixtures.Snapshot, opts ...Option) *Store {
	s := &Store{
		log:           log.Named("repo.memory"),
		seed:          clone(seed),
		pageSize:      DefaultPageSize,
		newCodeCutoff: DefaultNewCodeCutoff,
		snapName:      DefaultSnapshotName,
	}
	for _, o := range opts {
		o(s)
	}
	s.st = s.freshState()
	return s
}

func (s *Store) freshState() state {
	return state{
		Snapshot:        clone(s.seed),
		IsAdmin:         false,
		CanChangeStatus: true,
	}
}

// OnStart restores persisted state, or persists the seed when none exists yet.
func (s *Store) OnStart(ctx context.Context) error {
	if s.snap == nil {
		s.log.Infow("memory store ready", "issues", len(s.st.Issues), "quality_gates", len(s.st.QualityGates))
		return nil
	}
	if err := s.snap.OnStart(ctx); err != nil {
		return fmt.Errorf("start snapshotter: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	payload, err := s.snap.LoadSnapshot(ctx, s.snapName)
	switch {
	case errors.Is(err, entities.ErrSnapshotNotFound):
		s.log.Infow("no snapshot found, persisting seed", "snapshot", s.snapName)
		return s.save(ctx)
	case err != nil:
		return fmt.Errorf("load snapshot: %w", err)
	}

	var restored state
	if err := json.Unmarshal(payload, &restored); err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}
	s.st = restored
	s.log.Infow("snapshot restored", "snapshot", s.snapName, "issues", len(s.st.Issues))
	return nil
}

// OnStop releases the snapshotter.
func (s *Store) OnStop(ctx context.Context) error {
	if s.snap == nil {
		return nil
	}
	return s.snap.OnStop(ctx)
}

// Reset restores the seed, clears the admin flag and re-enables hotspot
// status changes.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.st = s.freshState()
	s.persist(ctx)
	s.log.Infow("store reset")
	return nil
}

// persist saves the state after a mutation. Failures are logged only: the
// in-memory state stays authoritative. Callers hold the write lock.
func (s *Store) persist(ctx context.Context) {
	if s.snap == nil {
		return
	}
	if err := s.save(ctx); err != nil {
		s.log.Errorw("failed to persist snapshot", "error", err, "snapshot", s.snapName)
	}
}

func (s *Store) save(ctx context.Context) error {
	payload, err := json.Marshal(s.st)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := s.snap.SaveSnapshot(ctx, s.snapName, payload); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}
