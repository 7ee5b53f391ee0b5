// Package health runs the readiness checks behind /health/ready.
package health

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen11/taskflow-service/internal/ports"
)

const defaultCheckTimeout = 2 * time.Second

var _ ports.HealthRegistry = (*Registry)(nil)

// Registry holds the service's health checkers keyed by name. Registering a
// second checker under an existing name replaces the first.
type Registry struct {
	timeout time.Duration

	mu       sync.RWMutex
	checkers map[string]ports.HealthChecker
}

// Option configures a Registry.
type Option func(*Registry)

// WithCheckTimeout bounds each individual check. Non-positive values keep the
// default of two seconds.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// New returns an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		timeout:  defaultCheckTimeout,
		checkers: make(map[string]ports.HealthChecker),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds checker under checker.Name().
func (r *Registry) Register(checker ports.HealthChecker) {
	name := checker.Name()
	r.mu.Lock()
	r.checkers[name] = checker
	r.mu.Unlock()
}

// Names returns the registered checker names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.checkers))
	for name := range r.checkers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// CheckAll runs every checker concurrently, each under its own deadline, and
// returns the outcome keyed by name. A nil value means healthy. A checker
// that outlives its deadline is reported as timed out even if it ignores ctx.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	snapshot := make(map[string]ports.HealthChecker, len(r.checkers))
	for name, c := range r.checkers {
		snapshot[name] = c
	}
	r.mu.RUnlock()

	var (
		mu      sync.Mutex
		results = make(map[string]error, len(snapshot))
		g       errgroup.Group
	)
	for name, checker := range snapshot {
		g.Go(func() error {
			err := r.run(ctx, name, checker)
			mu.Lock()
			results[name] = err
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func (r *Registry) run(ctx context.Context, name string, checker ports.HealthChecker) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- checker.HealthCheck(ctx)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("%s: check did not finish: %w", name, ctx.Err())
	}
}
