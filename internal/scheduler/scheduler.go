// Package scheduler implements the deferred-send facility: one lightweight
// background timer per scheduled call, polling at a coarse interval until
// the due time passes, then invoking the bound operation exactly once.
//
// Timers live only in this process. A restart silently drops anything still
// pending, and no cancellation is exposed once a send is scheduled; that is
// the documented at-most-once-if-process-survives contract.
package scheduler

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

// ErrPastDue is returned when the due time is not in the future. It is
// reported before any timer starts, so a rejected schedule leaves no trace.
var ErrPastDue = errors.New("due time is in the past")

// Scheduler starts independent polling timers for deferred operations.
type Scheduler struct {
	interval time.Duration
	now      func() time.Time
	log      *zap.Logger
}

// New creates a Scheduler polling at the given interval.
func New(interval time.Duration, logger *zap.Logger) *Scheduler {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	return &Scheduler{
		interval: interval,
		now:      time.Now,
		log:      logger,
	}
}

// Schedule registers op to run once the due time is reached. It rejects due
// times that are not strictly in the future and otherwise spawns one
// goroutine that polls until the deadline passes. The goroutine does not
// block shutdown; pending work is lost if the process exits first.
func (s *Scheduler) Schedule(id string, due time.Time, op func(context.Context)) error {
	if !due.After(s.now()) {
		return ErrPastDue
	}

	s.log.Info("send scheduled",
		zap.String("job_id", id),
		zap.Time("due", due),
	)
	go s.wait(id, due, op)
	return nil
}

func (s *Scheduler) wait(id string, due time.Time, op func(context.Context)) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for range ticker.C {
		if s.now().Before(due) {
			continue
		}
		s.log.Info("scheduled send firing", zap.String("job_id", id))
		s.run(id, op)
		return
	}
}

// run invokes the bound operation, absorbing a panic so a bad dispatch path
// cannot take the process down; there is no request handler above this
// goroutine to recover it.
func (s *Scheduler) run(id string, op func(context.Context)) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("scheduled operation panicked",
				zap.String("job_id", id),
				zap.Any("panic", r),
			)
		}
	}()
	op(context.Background())
}
