package appctx

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
	"github.com/jsamuelsen11/taskflow-service/internal/platform/logging"
)

// step is one entry of the commit queue. A step of several actions runs
// them concurrently, at most limit at a time when limit is positive. The
// first failure cancels the rest and the actions that did succeed are
// rolled back before the step reports the error.
type step struct {
	actions []domain.Action
	limit   int
	applied []domain.Action
}

func (s *step) execute(ctx context.Context) error {
	if len(s.actions) == 1 {
		if err := s.actions[0].Execute(ctx); err != nil {
			return err
		}
		s.applied = s.actions
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	if s.limit > 0 {
		g.SetLimit(s.limit)
	}
	ok := make([]bool, len(s.actions))
	for i, a := range s.actions {
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			if err := a.Execute(gctx); err != nil {
				return err
			}
			ok[i] = true
			return nil
		})
	}
	err := g.Wait()

	s.applied = nil
	for i, a := range s.actions {
		if ok[i] {
			s.applied = append(s.applied, a)
		}
	}
	if err != nil {
		rbCtx, cancel := rollbackContext(ctx)
		defer cancel()
		_ = s.rollback(rbCtx)
		return err
	}
	return nil
}

// rollback undoes the applied actions in reverse. A single action reports
// its own rollback error; failures inside a concurrent step are logged.
func (s *step) rollback(ctx context.Context) error {
	applied := s.applied
	s.applied = nil
	if len(s.actions) == 1 {
		if len(applied) == 0 {
			return nil
		}
		return applied[0].Rollback(ctx)
	}
	for i := len(applied) - 1; i >= 0; i-- {
		if err := applied[i].Rollback(ctx); err != nil {
			logging.FromContext(ctx).WarnContext(ctx, "rollback failed",
				slog.String("action", applied[i].Description()),
				slog.String("step", s.description()),
				slog.Any("error", err),
			)
		}
	}
	return nil
}

func (s *step) description() string {
	if len(s.actions) == 1 {
		return s.actions[0].Description()
	}
	return fmt.Sprintf("group of %d (%s, ...)", len(s.actions), s.actions[0].Description())
}

// AddAction queues a single action for Commit.
func (rc *RequestContext) AddAction(action domain.Action) error {
	if action == nil {
		return ErrNilAction
	}
	return rc.enqueue(&step{actions: []domain.Action{action}})
}

// AddGroup queues actions that Commit runs concurrently as one step.
func (rc *RequestContext) AddGroup(actions ...domain.Action) error {
	return rc.AddLimitedGroup(0, actions...)
}

// AddLimitedGroup is AddGroup with at most limit actions in flight. A limit
// of zero or less means no bound. An empty group is not queued.
func (rc *RequestContext) AddLimitedGroup(limit int, actions ...domain.Action) error {
	for _, a := range actions {
		if a == nil {
			return ErrNilAction
		}
	}
	if len(actions) == 0 {
		return nil
	}
	return rc.enqueue(&step{actions: actions, limit: limit})
}

func (rc *RequestContext) enqueue(s *step) error {
	rc.queueMu.Lock()
	defer rc.queueMu.Unlock()
	if rc.committed {
		return ErrAlreadyCommitted
	}
	rc.items = append(rc.items, s)
	return nil
}
