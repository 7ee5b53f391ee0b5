package ports

import "context"

// HealthChecker is a dependency the readiness probe asks about, such as the
// sqlite store or the object-store transport.
type HealthChecker interface {
	// Name labels the check in readiness output and must be unique.
	Name() string
	HealthCheck(ctx context.Context) error
}

// HealthRegistry runs the registered checks for the readiness endpoint.
type HealthRegistry interface {
	Register(checker HealthChecker)
	// CheckAll maps each check name to its error, nil when healthy.
	CheckAll(ctx context.Context) map[string]error
}

// CheckFunc turns a function into a named HealthChecker.
func CheckFunc(name string, fn func(ctx context.Context) error) HealthChecker {
	return checkFunc{name: name, fn: fn}
}

type checkFunc struct {
	name string
	fn   func(ctx context.Context) error
}

func (c checkFunc) Name() string                          { return c.name }
func (c checkFunc) HealthCheck(ctx context.Context) error { return c.fn(ctx) }
