// Package jobs runs scheduled maintenance of the store.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type resetter interface {
	Reset(ctx context.Context) error
}

// Cron periodically restores the store to its seed.
type Cron struct {
	log     *zap.SugaredLogger
	store   resetter
	timeout time.Duration
	c       *cron.Cron
}

// NewCron schedules a reset on spec, a five-field cron expression or a
// descriptor such as "@hourly" or "@every 30m".
func NewCron(log *zap.SugaredLogger, spec string, store resetter, timeout time.Duration) (*Cron, error) {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	c := cron.New(cron.WithLocation(time.UTC), cron.WithParser(parser))
	cr := &Cron{log: log.Named("jobs.reset"), store: store, timeout: timeout, c: c}
	if _, err := c.AddFunc(spec, cr.reset); err != nil {
		return nil, fmt.Errorf("store.reset_cron %q: %w", spec, err)
	}
	return cr, nil
}

// Start runs the scheduler in its own goroutine.
func (cr *Cron) Start() { cr.c.Start() }

// Stop halts scheduling and waits for a running reset to finish.
func (cr *Cron) Stop() { <-cr.c.Stop().Done() }

// Next reports when the next reset fires.
func (cr *Cron) Next() time.Time {
	entries := cr.c.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	return entries[0].Next
}

func (cr *Cron) reset() {
	ctx, cancel := context.WithTimeout(context.Background(), cr.timeout)
	defer cancel()

	if err := cr.store.Reset(ctx); err != nil {
		cr.log.Errorw("scheduled reset failed", "error", err)
		return
	}
	cr.log.Infow("store reset to seed")
}
