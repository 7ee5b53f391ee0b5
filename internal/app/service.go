// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port
// interfaces. Multi-step writes that touch object storage are staged on the
// request's appctx.RequestContext and run by Commit, which deletes uploaded
// objects when the database write fails.
package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	appctx "github.com/jsamuelsen11/taskflow-service/internal/app/context"
	"github.com/jsamuelsen11/taskflow-service/internal/domain"
	"github.com/jsamuelsen11/taskflow-service/internal/ports"
)

func orDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}

// noMetrics is used when a service is built without a recorder.
type noMetrics struct{}

func (noMetrics) TaskTransition(context.Context, domain.RecStatus) {}
func (noMetrics) AccessDecision(context.Context, bool, string)     {}

func orNoMetrics(m ports.WorkflowMetrics) ports.WorkflowMetrics {
	if m == nil {
		return noMetrics{}
	}
	return m
}

func systemNow() time.Time { return time.Now() }

func newUUID() string { return uuid.NewString() }

// orgOf returns the principal's organization, or fallback for tokens issued
// without one.
func orgOf(p domain.Principal, fallback string) string {
	if p.OrgID != "" {
		return p.OrgID
	}
	return fallback
}

// activeUser loads a user once per request.
func activeUser(ctx context.Context, users ports.UserRepository, id string) (*domain.User, error) {
	rc := appctx.Ensure(ctx)
	return appctx.GetOrFetch(rc, "user:"+id, func(ctx context.Context) (*domain.User, error) {
		return users.UserByID(ctx, id)
	})
}

// currentTask loads the current version of a task once per request.
func currentTask(ctx context.Context, tasks ports.TaskRepository, id string) (*domain.Task, error) {
	rc := appctx.Ensure(ctx)
	return appctx.GetOrFetch(rc, "task:"+id, func(ctx context.Context) (*domain.Task, error) {
		return tasks.CurrentTask(ctx, id)
	})
}
