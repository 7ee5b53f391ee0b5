package domain

import "context"

// Action is a side effect staged during a write request and applied on
// commit. Rollback undoes a successful Execute and is never called for an
// Execute that failed.
type Action interface {
	Execute(ctx context.Context) error
	Rollback(ctx context.Context) error
	// Description names the action in logs, e.g. "upload 1f2e-report.pdf".
	Description() string
}

// Step is an Action built from functions. Without Undo its rollback does
// nothing, which suits a database write staged last: a failed transaction
// has already rolled itself back.
type Step struct {
	Name string
	Run  func(ctx context.Context) error
	Undo func(ctx context.Context) error
}

func (s Step) Execute(ctx context.Context) error { return s.Run(ctx) }

func (s Step) Rollback(ctx context.Context) error {
	if s.Undo == nil {
		return nil
	}
	return s.Undo(ctx)
}

func (s Step) Description() string { return s.Name }
