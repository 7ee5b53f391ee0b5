package domain

import (
	"math"
	"testing"
	"time"
)

func ptr[T any](v T) *T { return &v }

func TestHaversine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		want, tolerance        float64
	}{
		{"same point", 12.97, 77.59, 12.97, 77.59, 0, 1e-9},
		// One degree of latitude is ~111.2 km.
		{"one degree north", 0, 0, 1, 0, 111195, 5},
		{"london to paris", 51.5074, -0.1278, 48.8566, 2.3522, 343556, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Haversine(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("Haversine() = %.1f, want %.1f ± %.1f", got, tt.want, tt.tolerance)
			}
		})
	}
}

func TestEvaluateAccess(t *testing.T) {
	t.Parallel()

	// Tuesday 10:00.
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	profile := &FenceProfile{
		ShiftStart: "09:00",
		ShiftEnd:   "17:00",
		Latitude:   ptr(12.9716),
		Longitude:  ptr(77.5946),
		ActiveDays: []int{1, 2, 3, 4, 5},
	}
	near := Location{Latitude: ptr(12.9720), Longitude: ptr(77.5950)}
	far := Location{Latitude: ptr(13.0827), Longitude: ptr(80.2707)}

	tests := []struct {
		name       string
		rule       *AccessRule
		profile    *FenceProfile
		loc        Location
		now        time.Time
		wantAccess bool
		wantReason string
	}{
		{name: "no rule", rule: nil, profile: profile, now: now, wantAccess: true},
		{name: "no fences", rule: &AccessRule{}, profile: profile, now: now, wantAccess: true},
		{name: "time fence inside shift", rule: &AccessRule{TimeFenced: true}, profile: profile, now: now, wantAccess: true},
		{
			name: "time fence wrong day", rule: &AccessRule{TimeFenced: true}, profile: profile,
			now: time.Date(2026, 3, 8, 10, 0, 0, 0, time.UTC), wantReason: ReasonWrongDay,
		},
		{
			name: "time fence after shift", rule: &AccessRule{TimeFenced: true}, profile: profile,
			now: time.Date(2026, 3, 10, 17, 0, 1, 0, time.UTC), wantReason: ReasonOutsideShift,
		},
		{
			name: "overnight shift after midnight", rule: &AccessRule{TimeFenced: true},
			profile: &FenceProfile{ShiftStart: "22:00", ShiftEnd: "06:00", ActiveDays: []int{2}},
			now:     time.Date(2026, 3, 10, 2, 30, 0, 0, time.UTC), wantAccess: true,
		},
		{
			name: "overnight shift midday", rule: &AccessRule{TimeFenced: true},
			profile: &FenceProfile{ShiftStart: "22:00", ShiftEnd: "06:00", ActiveDays: []int{2}},
			now:     now, wantReason: ReasonOutsideShift,
		},
		{name: "geo fence near", rule: &AccessRule{GeoFenced: true}, profile: profile, loc: near, now: now, wantAccess: true},
		{name: "geo fence far", rule: &AccessRule{GeoFenced: true}, profile: profile, loc: far, now: now, wantReason: ReasonOutsideGeofence},
		{name: "geo fence no location", rule: &AccessRule{GeoFenced: true}, profile: profile, now: now, wantReason: ReasonNoLocation},
		{
			name: "zero coordinates are a location", rule: &AccessRule{GeoFenced: true},
			profile: &FenceProfile{Latitude: ptr(0.0), Longitude: ptr(0.0)},
			loc:     Location{Latitude: ptr(0.0), Longitude: ptr(0.001)}, now: now, wantAccess: true,
		},
		{
			name: "time fence checked before geo", rule: &AccessRule{TimeFenced: true, GeoFenced: true}, profile: profile,
			now: time.Date(2026, 3, 10, 20, 0, 0, 0, time.UTC), wantReason: ReasonOutsideShift,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := EvaluateAccess("ev-1", tt.rule, tt.profile, tt.loc, tt.now, 500)
			if got.EventID != "ev-1" {
				t.Errorf("EventID = %q, want ev-1", got.EventID)
			}
			if got.Access != tt.wantAccess {
				t.Errorf("Access = %v, want %v (reason %q)", got.Access, tt.wantAccess, got.Reason)
			}
			if got.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", got.Reason, tt.wantReason)
			}
		})
	}
}

func TestAccessCheck_Validate(t *testing.T) {
	t.Parallel()

	c := AccessCheck{}
	if err := c.Validate(); err == nil {
		t.Error("Validate() with no events = nil, want error")
	}
}
