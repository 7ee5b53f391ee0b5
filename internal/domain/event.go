package domain

import (
	"slices"
	"time"
)

// Access denial reasons reported by EvaluateAccess.
const (
	ReasonWrongDay        = "Not available on this day."
	ReasonOutsideShift    = "Outside of shift hours."
	ReasonNoLocation      = "Location not provided."
	ReasonOutsideGeofence = "Not within location fence."
)

// Process is an organization process that groups events.
type Process struct {
	ID   string
	Name string
}

// Event is an action inside a process that a role may perform.
type Event struct {
	ID        string
	Name      string
	RecStatus RecStatus
	ProcessID string
}

// AccessRule says which fences guard an event.
type AccessRule struct {
	EventID    string
	TimeFenced bool
	GeoFenced  bool
}

// FenceProfile is the per-user data the fences are checked against.
type FenceProfile struct {
	ShiftStart string
	ShiftEnd   string
	Latitude   *float64
	Longitude  *float64
	// ActiveDays holds weekdays with Sunday as 0.
	ActiveDays []int
}

// Location is a caller-reported position. Nil coordinates mean the caller did
// not send one.
type Location struct {
	Latitude  *float64
	Longitude *float64
}

// AccessResult is the outcome of checking one event.
type AccessResult struct {
	EventID string
	Access  bool
	Reason  string
}

// AccessCheck is the input to a bulk access verification.
type AccessCheck struct {
	EventIDs []string
	Location Location
}

// Validate checks that at least one event was requested.
func (c *AccessCheck) Validate() error {
	if len(c.EventIDs) == 0 {
		return NewValidationError("eventIds", "must contain at least one event")
	}
	return nil
}

// EvaluateAccess applies the time fence and then the geo fence of rule to the
// user's profile. A nil rule, or a rule with neither fence, grants access.
// now must already be in the location whose wall clock the shift refers to.
func EvaluateAccess(
	eventID string, rule *AccessRule, profile *FenceProfile, loc Location, now time.Time, radiusMeters float64,
) AccessResult {
	deny := func(reason string) AccessResult {
		return AccessResult{EventID: eventID, Access: false, Reason: reason}
	}

	if rule == nil || (!rule.TimeFenced && !rule.GeoFenced) {
		return AccessResult{EventID: eventID, Access: true}
	}

	if rule.TimeFenced {
		if !slices.Contains(profile.ActiveDays, int(now.Weekday())) {
			return deny(ReasonWrongDay)
		}
		if !withinShift(profile.ShiftStart, profile.ShiftEnd, now) {
			return deny(ReasonOutsideShift)
		}
	}

	if rule.GeoFenced {
		if loc.Latitude == nil || loc.Longitude == nil {
			return deny(ReasonNoLocation)
		}
		if profile.Latitude == nil || profile.Longitude == nil {
			return deny(ReasonOutsideGeofence)
		}
		d := Haversine(*loc.Latitude, *loc.Longitude, *profile.Latitude, *profile.Longitude)
		if d > radiusMeters {
			return deny(ReasonOutsideGeofence)
		}
	}

	return AccessResult{EventID: eventID, Access: true}
}

// withinShift reports whether now falls inside [start, end]. When end is
// before start the shift spans midnight. Unparseable bounds deny access.
func withinShift(start, end string, now time.Time) bool {
	s, okStart := ParseClock(start)
	e, okEnd := ParseClock(end)
	if !okStart || !okEnd {
		return false
	}
	clock := time.Duration(now.Hour())*time.Hour +
		time.Duration(now.Minute())*time.Minute +
		time.Duration(now.Second())*time.Second

	if e >= s {
		return clock >= s && clock <= e
	}
	return clock >= s || clock <= e
}
