package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
)

var roleAccessColumns = map[domain.Role]string{
	domain.RoleAdmin:    "e.is_admin",
	domain.RoleManager:  "e.is_manager",
	domain.RoleEmployee: "e.is_employee",
}

// ActiveProcesses implements ports.EventRepository.
func (s *Store) ActiveProcesses(ctx context.Context) ([]domain.Process, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT process_id, process_name FROM org_processes
		WHERE rec_status = 'A'
		ORDER BY process_name, process_id`)
	if err != nil {
		return nil, fmt.Errorf("select processes: %w", err)
	}
	defer rows.Close()

	out := []domain.Process{}
	for rows.Next() {
		var p domain.Process
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, fmt.Errorf("scan process: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// EventsForRole implements ports.EventRepository. Roles without an access
// column are forbidden.
func (s *Store) EventsForRole(ctx context.Context, role domain.Role) ([]domain.Event, error) {
	col, ok := roleAccessColumns[role]
	if !ok {
		return nil, fmt.Errorf("events for role %q: %w", role, domain.ErrForbidden)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT e.event_id, el.event_name, e.rec_status, e.process_id
		FROM org_process_access e
		JOIN event_list el ON el.event_id = e.event_id
		WHERE `+col+` = 1
		ORDER BY el.event_name, e.event_id`)
	if err != nil {
		return nil, fmt.Errorf("select events for role: %w", err)
	}
	defer rows.Close()

	out := []domain.Event{}
	for rows.Next() {
		var e domain.Event
		if err := rows.Scan(&e.ID, &e.Name, &e.RecStatus, &e.ProcessID); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// FenceProfile implements ports.EventRepository.
func (s *Store) FenceProfile(ctx context.Context, userID string) (*domain.FenceProfile, error) {
	var (
		p                    domain.FenceProfile
		shiftStart, shiftEnd sql.NullString
		lat, lng             sql.NullFloat64
		days                 sql.NullString
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT shift_start, shift_end, latitude, longitude, active_days
		FROM users WHERE user_id = ? AND data_status = 'A'`, userID,
	).Scan(&shiftStart, &shiftEnd, &lat, &lng, &days)
	if err != nil {
		return nil, wrapErr("select fence profile", err)
	}

	p.ShiftStart = shiftStart.String
	p.ShiftEnd = shiftEnd.String
	if lat.Valid {
		p.Latitude = &lat.Float64
	}
	if lng.Valid {
		p.Longitude = &lng.Float64
	}
	p.ActiveDays = []int{}
	if days.Valid && days.String != "" {
		if err := json.Unmarshal([]byte(days.String), &p.ActiveDays); err != nil {
			return nil, fmt.Errorf("decode active days for user %s: %w", userID, err)
		}
	}
	return &p, nil
}

// AccessRules implements ports.EventRepository.
func (s *Store) AccessRules(ctx context.Context, eventIDs []string) ([]domain.AccessRule, error) {
	if len(eventIDs) == 0 {
		return []domain.AccessRule{}, nil
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT event_id, time_fenced, geo_fenced FROM org_process_access
		WHERE event_id IN (`+placeholders(len(eventIDs))+`)`,
		stringArgs(eventIDs)...)
	if err != nil {
		return nil, fmt.Errorf("select access rules: %w", err)
	}
	defer rows.Close()

	out := []domain.AccessRule{}
	for rows.Next() {
		var r domain.AccessRule
		if err := rows.Scan(&r.EventID, &r.TimeFenced, &r.GeoFenced); err != nil {
			return nil, fmt.Errorf("scan access rule: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
