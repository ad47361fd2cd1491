// Copyright (c) 2026 Starting Out OK. All rights reserved.

package casting

import (
	"strconv"
	"strings"
	"time"

	"github.com/mickey-farmer/startingOutOK/pkg/pointer"
)

// # Pay Classification

// PayCategory buckets a pay description into one of three compensation
// classes used for filtering and badges.
type PayCategory string

const (
	PayPaid      PayCategory = "paid"
	PayDeferred  PayCategory = "deferred"
	PayVolunteer PayCategory = "volunteer"
)

/*
ClassifyPay derives the compensation class from numeric bounds and free
text, in priority order:

 1. Both numeric bounds present and both zero: volunteer.
 2. Either numeric bound present and positive: paid.
 3. Text mentioning "deferred" or "copy" (credit/copy arrangements): deferred.
 4. Text mentioning "volunteer", "no pay" or "unpaid": volunteer.
 5. Text containing "$", "scale" or "paid": paid.
 6. Anything else, including empty: paid.

The default is deliberate: an unknown pay description must stay visible
under the most common filter rather than vanish into a niche bucket.
*/
func ClassifyPay(payMin, payMax *int, payText string) PayCategory {
	if payMin != nil && payMax != nil && *payMin == 0 && *payMax == 0 {
		return PayVolunteer
	}
	if (payMin != nil && *payMin > 0) || (payMax != nil && *payMax > 0) {
		return PayPaid
	}

	text := strings.ToLower(payText)
	switch {
	case strings.Contains(text, "deferred") || strings.Contains(text, "copy"):
		return PayDeferred
	case strings.Contains(text, "volunteer") || strings.Contains(text, "no pay") || strings.Contains(text, "unpaid"):
		return PayVolunteer
	default:
		return PayPaid
	}
}

// PayCategoryOf classifies a single role.
func (r Role) PayCategory() PayCategory {
	return ClassifyPay(r.PayMin, r.PayMax, r.Pay)
}

// PayCategoryOf classifies an entry from its flat pay attributes. Per-role
// pay is classified through [Role.PayCategory] during filtering.
func PayCategoryOf(e *Entry) PayCategory {
	return ClassifyPay(e.PayMin, e.PayMax, pointer.Val(e.Pay))
}

// # Expiry Classification

const deadlineDateLayout = "2006-01-02"

/*
ExpiresWithinWeek reports whether a submission deadline falls inside the
next seven calendar days, inclusive on both ends.

The deadline date counts through its final second (23:59:59), so a deadline
of today is still expiring, a deadline exactly seven days out is expiring,
and a deadline that passed yesterday is not. A missing or unparseable
deadline is never expiring. The calendar arithmetic uses now's location.
*/
func ExpiresWithinWeek(deadline *string, now time.Time) bool {
	raw := strings.TrimSpace(pointer.Val(deadline))
	if raw == "" {
		return false
	}
	dayStart, err := time.ParseInLocation(deadlineDateLayout, raw, now.Location())
	if err != nil {
		return false
	}

	dayEnd := dayStart.Add(24*time.Hour - time.Second)
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekEnd := todayStart.Add(7 * 24 * time.Hour)

	return !dayEnd.Before(todayStart) && !dayStart.After(weekEnd)
}

// DeadlinePassed reports whether the deadline date is strictly before the
// current day. Used by the nightly archiver; entries whose deadline is
// today are still open.
func DeadlinePassed(deadline *string, now time.Time) bool {
	raw := strings.TrimSpace(pointer.Val(deadline))
	if raw == "" {
		return false
	}
	dayStart, err := time.ParseInLocation(deadlineDateLayout, raw, now.Location())
	if err != nil {
		return false
	}
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dayStart.Before(todayStart)
}

// # Union Classification

// DefaultUnionStatus labels roles that do not state a union status.
const DefaultUnionStatus = "Non-Union"

// UnionLabel summarizes an entry's union status for list badges.
//
// Multi-role entries collapse to the single status shared by every role
// (absent statuses default to Non-Union), or to "Mixed" when roles
// disagree. Flat entries report their own status, defaulting to Non-Union.
func UnionLabel(e *Entry) string {
	if len(e.Roles) == 0 {
		if u := strings.TrimSpace(pointer.Val(e.Union)); u != "" {
			return u
		}
		return DefaultUnionStatus
	}

	distinct := make(map[string]struct{}, 2)
	label := ""
	for _, role := range e.Roles {
		u := strings.TrimSpace(role.Union)
		if u == "" {
			u = DefaultUnionStatus
		}
		if _, seen := distinct[u]; !seen {
			distinct[u] = struct{}{}
			label = u
		}
	}
	if len(distinct) > 1 {
		return "Mixed"
	}
	return label
}

// # Age Matching

/*
RoleMatchesAge reports whether a role's age range overlaps the age filter
text.

The filter parses as "min-max", "min-" (open-ended upward) or a bare
minimum. The role's bounds come from its numeric ageMin/ageMax fields, or
failing those, from parsing its free-text ageRange the same way. Two closed
ranges match when they overlap; an open-ended filter matches when the
role's maximum reaches the filter minimum.

When the role has no usable numeric bounds the comparison falls back to
exact string equality between the role's ageRange and the filter text. A
filter whose minimum does not parse imposes no constraint at all.
*/
func RoleMatchesAge(role Role, filter string) bool {
	filterMin, filterMax, hasMax, ok := parseAgeRange(filter)
	if !ok {
		return true
	}

	roleMin, roleMax := roleAgeBounds(role)
	if roleMin == nil || roleMax == nil {
		return strings.TrimSpace(role.AgeRange) == strings.TrimSpace(filter)
	}

	if !hasMax {
		return *roleMax >= filterMin
	}
	return *roleMax >= filterMin && *roleMin <= filterMax
}

// roleAgeBounds resolves a role's numeric age window, preferring the
// explicit fields over the free-text ageRange.
func roleAgeBounds(role Role) (minAge, maxAge *int) {
	minAge, maxAge = role.AgeMin, role.AgeMax
	if minAge != nil && maxAge != nil {
		return minAge, maxAge
	}
	textMin, textMax, hasMax, ok := parseAgeRange(role.AgeRange)
	if minAge == nil && ok {
		minAge = &textMin
	}
	if maxAge == nil && ok && hasMax {
		maxAge = &textMax
	}
	return minAge, maxAge
}

// parseAgeRange parses "min-max", "min-" or "min". ok is false when no
// numeric minimum can be read.
func parseAgeRange(text string) (minAge, maxAge int, hasMax, ok bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, 0, false, false
	}
	parts := strings.SplitN(text, "-", 2)
	minAge, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, false, false
	}
	if len(parts) == 2 {
		if maxAge, err = strconv.Atoi(strings.TrimSpace(parts[1])); err == nil {
			return minAge, maxAge, true, true
		}
	}
	return minAge, 0, false, true
}
