// Copyright (c) 2026 Starting Out OK. All rights reserved.

package casting_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mickey-farmer/startingOutOK/internal/casting"
	"github.com/mickey-farmer/startingOutOK/pkg/pointer"
)

/*
TestClassifyPay verifies the pay bucket priority: numeric bounds first,
then text signals, defaulting to paid.
*/
func TestClassifyPay(t *testing.T) {
	tests := []struct {
		name   string
		payMin *int
		payMax *int
		text   string
		want   casting.PayCategory
	}{
		{"both_bounds_zero", pointer.To(0), pointer.To(0), "", casting.PayVolunteer},
		{"zero_bounds_beat_paid_text", pointer.To(0), pointer.To(0), "$100/day", casting.PayVolunteer},
		{"positive_min", pointer.To(100), nil, "volunteer", casting.PayPaid},
		{"positive_max_only", nil, pointer.To(500), "", casting.PayPaid},
		{"deferred_text", nil, nil, "Deferred pay", casting.PayDeferred},
		{"copy_text", nil, nil, "Copy and credit", casting.PayDeferred},
		{"volunteer_text", nil, nil, "Volunteer", casting.PayVolunteer},
		{"no_pay_text", nil, nil, "No pay, meals provided", casting.PayVolunteer},
		{"unpaid_text", nil, nil, "Unpaid student film", casting.PayVolunteer},
		{"dollar_sign", nil, nil, "$500/day", casting.PayPaid},
		{"scale_text", nil, nil, "SAG scale", casting.PayPaid},
		{"paid_text", nil, nil, "Paid, rate TBD", casting.PayPaid},
		{"empty_defaults_paid", nil, nil, "", casting.PayPaid},
		{"unknown_defaults_paid", nil, nil, "Negotiable", casting.PayPaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, casting.ClassifyPay(tt.payMin, tt.payMax, tt.text))
		})
	}
}

/*
TestExpiresWithinWeek pins the seven-day window boundaries: inclusive of
today and of a deadline exactly seven days out, exclusive beyond.
*/
func TestExpiresWithinWeek(t *testing.T) {
	// Mid-afternoon, so end-of-day deadline handling actually matters.
	now := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		deadline *string
		want     bool
	}{
		{"today", pointer.To("2026-03-10"), true},
		{"tomorrow", pointer.To("2026-03-11"), true},
		{"exactly_seven_days_out", pointer.To("2026-03-17"), true},
		{"eight_days_out", pointer.To("2026-03-18"), false},
		{"yesterday", pointer.To("2026-03-09"), false},
		{"missing", nil, false},
		{"empty", pointer.To(""), false},
		{"malformed", pointer.To("next Tuesday"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, casting.ExpiresWithinWeek(tt.deadline, now))
		})
	}
}

/*
TestDeadlinePassed verifies the archiver cutoff: strictly before today.
*/
func TestDeadlinePassed(t *testing.T) {
	now := time.Date(2026, 3, 10, 2, 0, 0, 0, time.UTC)

	assert.True(t, casting.DeadlinePassed(pointer.To("2026-03-09"), now))
	assert.False(t, casting.DeadlinePassed(pointer.To("2026-03-10"), now))
	assert.False(t, casting.DeadlinePassed(pointer.To("2026-03-11"), now))
	assert.False(t, casting.DeadlinePassed(nil, now))
	assert.False(t, casting.DeadlinePassed(pointer.To("soon"), now))
}

/*
TestUnionLabel covers the flat default, the single shared status, and the
Mixed collapse.
*/
func TestUnionLabel(t *testing.T) {
	tests := []struct {
		name  string
		entry casting.Entry
		want  string
	}{
		{
			"flat_with_status",
			casting.Entry{Union: pointer.To("SAG-AFTRA")},
			"SAG-AFTRA",
		},
		{
			"flat_without_status",
			casting.Entry{},
			"Non-Union",
		},
		{
			"roles_all_same",
			casting.Entry{Roles: []casting.Role{{Union: "Union"}, {Union: "Union"}}},
			"Union",
		},
		{
			"roles_all_unstated",
			casting.Entry{Roles: []casting.Role{{}, {}}},
			"Non-Union",
		},
		{
			"roles_disagree",
			casting.Entry{Roles: []casting.Role{{Union: "Union"}, {Union: "Non-Union"}}},
			"Mixed",
		},
		{
			"stated_vs_defaulted",
			casting.Entry{Roles: []casting.Role{{Union: "Union"}, {}}},
			"Mixed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, casting.UnionLabel(&tt.entry))
		})
	}
}

/*
TestRoleMatchesAge covers range overlap, the open-ended filter, the
free-text fallback, and the no-constraint fallback for unparseable input.
*/
func TestRoleMatchesAge(t *testing.T) {
	tests := []struct {
		name   string
		role   casting.Role
		filter string
		want   bool
	}{
		{"overlap_inside", casting.Role{AgeMin: pointer.To(20), AgeMax: pointer.To(30)}, "25-35", true},
		{"overlap_boundary", casting.Role{AgeMin: pointer.To(20), AgeMax: pointer.To(30)}, "30-40", true},
		{"disjoint_above", casting.Role{AgeMin: pointer.To(20), AgeMax: pointer.To(30)}, "31-40", false},
		{"disjoint_below", casting.Role{AgeMin: pointer.To(20), AgeMax: pointer.To(30)}, "10-19", false},
		{"open_ended_reaches", casting.Role{AgeMin: pointer.To(18), AgeMax: pointer.To(99)}, "21-", true},
		{"open_ended_too_young", casting.Role{AgeMin: pointer.To(5), AgeMax: pointer.To(12)}, "21-", false},
		{"bare_minimum", casting.Role{AgeMin: pointer.To(18), AgeMax: pointer.To(25)}, "21", true},
		{"bounds_from_range_text", casting.Role{AgeRange: "18-25"}, "20-30", true},
		{"text_fallback_equal", casting.Role{AgeRange: "teens"}, "teens", true},
		{"text_fallback_unequal", casting.Role{AgeRange: "teens"}, "20-30", false},
		{"unparseable_filter_is_open", casting.Role{AgeRange: "teens"}, "any age", true},
		{"empty_filter_is_open", casting.Role{AgeMin: pointer.To(20), AgeMax: pointer.To(30)}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, casting.RoleMatchesAge(tt.role, tt.filter))
		})
	}
}
