// Copyright (c) 2026 Starting Out OK. All rights reserved.

package casting

import (
	"strings"
	"time"

	"github.com/mickey-farmer/startingOutOK/pkg/pointer"
	"github.com/mickey-farmer/startingOutOK/pkg/slice"
)

// # Filter Engine

// Filter holds the visitor's filter selections. Empty fields impose no
// constraint; a zero Filter matches every entry.
type Filter struct {
	Age       string
	Location  string
	Pay       string
	Type      string
	Union     string
	Under18   string // "yes" or "no"
	Gender    string
	Ethnicity string // "all" selects entries open to all ethnicities
	Expiring  string // "soon"
}

// IsZero reports whether no filter is set.
func (f Filter) IsZero() bool {
	return f == Filter{}
}

/*
Matches reports whether an entry satisfies every set filter field. Checks
run cheapest-first:

 1. Under-18 eligibility (entry level).
 2. Expiring-soon window, evaluated against now.
 3. Gender, then ethnicity: some role must satisfy each, independently.
 4. Location: exact match against the entry's location.
 5. Age, type, union and pay: a single role must satisfy all of the set
    constraints together. A role matching only on age and a different
    role matching only on union do not add up to a match.

Legacy flat entries synthesize a one-element role list from their own
attributes, so the role-scoped checks have one code path.
*/
func Matches(e *Entry, f Filter, now time.Time) bool {
	if f.Under18 == "yes" && !e.Under18 {
		return false
	}
	if f.Under18 == "no" && e.Under18 {
		return false
	}

	if f.Expiring == "soon" && !ExpiresWithinWeek(e.AuditionDeadline, now) {
		return false
	}

	roles := e.filterRoles()

	if f.Gender != "" && !slice.Any(roles, func(r Role) bool { return roleMatchesGender(r, f.Gender) }) {
		return false
	}
	if f.Ethnicity != "" && !slice.Any(roles, func(r Role) bool { return roleMatchesEthnicity(r, f.Ethnicity) }) {
		return false
	}

	if f.Location != "" && pointer.Val(e.Location) != f.Location {
		return false
	}

	if f.Age != "" || f.Type != "" || f.Union != "" || f.Pay != "" {
		return slice.Any(roles, func(r Role) bool { return roleMatchesProfile(r, f) })
	}
	return true
}

// FilterEntries applies f to every entry, preserving order. A zero filter
// returns a copy of the input.
func FilterEntries(list []Entry, f Filter, now time.Time) []Entry {
	return slice.Filter(list, func(e Entry) bool { return Matches(&e, f, now) })
}

// filterRoles returns the entry's roles, or a single role synthesized from
// the entry's flat attributes when no roles array exists. Union status is
// kept raw here: the Non-Union default belongs to display labeling, not to
// filter matching.
func (e *Entry) filterRoles() []Role {
	if len(e.Roles) > 0 {
		return e.Roles
	}
	return []Role{{
		Pay:       pointer.Val(e.Pay),
		PayMin:    e.PayMin,
		PayMax:    e.PayMax,
		AgeRange:  e.AgeRange,
		AgeMin:    e.AgeMin,
		AgeMax:    e.AgeMax,
		Type:      pointer.Val(e.Type),
		Union:     pointer.Val(e.Union),
		Gender:    e.Gender,
		Ethnicity: e.Ethnicity,
	}}
}

// roleMatchesProfile checks a single role against the age, type, union and
// pay constraints together.
func roleMatchesProfile(r Role, f Filter) bool {
	if f.Age != "" && !RoleMatchesAge(r, f.Age) {
		return false
	}
	if f.Type != "" && r.Type != f.Type {
		return false
	}
	if f.Union != "" && r.Union != f.Union {
		return false
	}
	if f.Pay != "" && string(r.PayCategory()) != f.Pay {
		return false
	}
	return true
}

// roleMatchesGender is case-insensitive equality. A role with no stated
// gender does not match a gender selection.
func roleMatchesGender(r Role, want string) bool {
	return strings.EqualFold(r.Gender, want)
}

// roleMatchesEthnicity implements the "open to all ethnicities" toggle:
// a role qualifies when it states no ethnicity or describes itself as
// open ("all", "any", "open", case-insensitive substring).
func roleMatchesEthnicity(r Role, _ string) bool {
	e := strings.ToLower(r.Ethnicity)
	return e == "" || strings.Contains(e, "all") || strings.Contains(e, "any") || strings.Contains(e, "open")
}
