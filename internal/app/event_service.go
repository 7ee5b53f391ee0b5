package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
	"github.com/jsamuelsen11/taskflow-service/internal/ports"
)

var _ ports.EventService = (*EventService)(nil)

// EventService serves process and event lookups and checks the time and
// geo fences that guard events.
type EventService struct {
	events       ports.EventRepository
	radiusMeters float64
	location     *time.Location
	metrics      ports.WorkflowMetrics
	logger       *slog.Logger
	now          func() time.Time
}

// NewEventService creates an EventService. Shift hours are read on the
// wall clock of location; a nil location means UTC. metrics may be nil.
func NewEventService(events ports.EventRepository, radiusMeters float64, location *time.Location, metrics ports.WorkflowMetrics, logger *slog.Logger) *EventService {
	if location == nil {
		location = time.UTC
	}
	return &EventService{
		events:       events,
		radiusMeters: radiusMeters,
		location:     location,
		metrics:      orNoMetrics(metrics),
		logger:       orDiscard(logger),
		now:          systemNow,
	}
}

// ActiveProcesses lists the active processes.
func (s *EventService) ActiveProcesses(ctx context.Context) ([]domain.Process, error) {
	return s.events.ActiveProcesses(ctx)
}

// EventsForRole lists the events open to role.
func (s *EventService) EventsForRole(ctx context.Context, role domain.Role) ([]domain.Event, error) {
	if !role.IsValid() {
		return nil, fmt.Errorf("role %q: %w", role, domain.ErrForbidden)
	}
	return s.events.EventsForRole(ctx, role)
}

// VerifyAccess checks each requested event against the principal's fence
// profile and returns one result per event in request order.
func (s *EventService) VerifyAccess(ctx context.Context, principal domain.Principal, check domain.AccessCheck) ([]domain.AccessResult, error) {
	if err := check.Validate(); err != nil {
		return nil, err
	}

	profile, err := s.events.FenceProfile(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}
	rules, err := s.events.AccessRules(ctx, check.EventIDs)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load access rules",
			slog.String("operation", "VerifyAccess"),
			slog.String("user_id", principal.UserID),
			slog.Any("error", err),
		)
		return nil, err
	}
	byEvent := make(map[string]*domain.AccessRule, len(rules))
	for i := range rules {
		byEvent[rules[i].EventID] = &rules[i]
	}

	now := s.now().In(s.location)
	results := make([]domain.AccessResult, len(check.EventIDs))
	for i, id := range check.EventIDs {
		results[i] = domain.EvaluateAccess(id, byEvent[id], profile, check.Location, now, s.radiusMeters)
		s.metrics.AccessDecision(ctx, results[i].Access, results[i].Reason)
	}
	return results, nil
}
