package appctx

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/taskflow-service/internal/platform/logging"
)

// Commit runs the queued items in order. When one fails, the items before it
// are rolled back in reverse order and the failure is returned. Rollback
// errors are logged only. The queue is closed after the first call, and
// later calls return ErrAlreadyCommitted.
func (rc *RequestContext) Commit(ctx context.Context) error {
	items, err := rc.seal()
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}

	log := logging.FromContext(ctx).With(slog.Int("staged", len(items)))
	start := time.Now()

	for i, item := range items {
		if err := item.execute(ctx); err != nil {
			rbCtx, cancel := rollbackContext(ctx)
			failed := undo(rbCtx, log, items[:i])
			cancel()
			log.ErrorContext(ctx, "commit aborted",
				slog.String("action", item.description()),
				slog.Int("applied", i),
				slog.Int("rollback_failures", failed),
				slog.Any("error", err),
			)
			return fmt.Errorf("%s: %w", item.description(), err)
		}
		log.DebugContext(ctx, "staged action applied", slog.String("action", item.description()))
	}

	log.DebugContext(ctx, "commit complete", slog.Duration("elapsed", time.Since(start)))
	return nil
}

// Discard closes the queue and returns the descriptions of actions that
// were staged but never committed. Staged actions have no effect until
// Commit, so nothing is rolled back.
func (rc *RequestContext) Discard() []string {
	items, err := rc.seal()
	if err != nil {
		return nil
	}
	descs := make([]string, len(items))
	for i, item := range items {
		descs[i] = item.description()
	}
	return descs
}

// seal closes the queue and hands back what was on it. Items run outside
// the lock; enqueue refuses new work once sealed.
func (rc *RequestContext) seal() ([]*step, error) {
	rc.queueMu.Lock()
	defer rc.queueMu.Unlock()
	if rc.committed {
		return nil, ErrAlreadyCommitted
	}
	rc.committed = true
	items := rc.items
	rc.items = nil
	return items, nil
}

// rollbackTimeout bounds compensation once the request context is gone.
const rollbackTimeout = 30 * time.Second

// rollbackContext keeps the values of ctx but not its cancellation, so a
// request that timed out or was abandoned still gets its side effects undone.
func rollbackContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), rollbackTimeout)
}

// undo rolls back applied in reverse and reports how many rollbacks failed.
func undo(ctx context.Context, log *slog.Logger, applied []*step) int {
	failed := 0
	for i := len(applied) - 1; i >= 0; i-- {
		if err := applied[i].rollback(ctx); err != nil {
			failed++
			log.WarnContext(ctx, "rollback failed",
				slog.String("action", applied[i].description()),
				slog.Any("error", err),
			)
		}
	}
	return failed
}
