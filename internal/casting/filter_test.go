// Copyright (c) 2026 Starting Out OK. All rights reserved.

package casting_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mickey-farmer/startingOutOK/internal/casting"
	"github.com/mickey-farmer/startingOutOK/pkg/pointer"
)

// A fixed clock keeps the expiring-soon checks deterministic.
var filterNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

/*
TestMatches_ZeroFilter verifies that an empty filter matches anything.
*/
func TestMatches_ZeroFilter(t *testing.T) {
	entry := casting.Entry{Slug: "anything", Title: "Anything"}
	assert.True(t, casting.Matches(&entry, casting.Filter{}, filterNow))
}

/*
TestMatches_Under18 verifies both directions of the minors toggle.
*/
func TestMatches_Under18(t *testing.T) {
	minors := casting.Entry{Under18: true}
	adults := casting.Entry{}

	assert.True(t, casting.Matches(&minors, casting.Filter{Under18: "yes"}, filterNow))
	assert.False(t, casting.Matches(&adults, casting.Filter{Under18: "yes"}, filterNow))
	assert.True(t, casting.Matches(&adults, casting.Filter{Under18: "no"}, filterNow))
	assert.False(t, casting.Matches(&minors, casting.Filter{Under18: "no"}, filterNow))
}

/*
TestMatches_Expiring verifies the expiring-soon gate.
*/
func TestMatches_Expiring(t *testing.T) {
	soon := casting.Entry{AuditionDeadline: pointer.To("2026-03-13")}
	far := casting.Entry{AuditionDeadline: pointer.To("2026-04-20")}
	undated := casting.Entry{}

	f := casting.Filter{Expiring: "soon"}
	assert.True(t, casting.Matches(&soon, f, filterNow))
	assert.False(t, casting.Matches(&far, f, filterNow))
	assert.False(t, casting.Matches(&undated, f, filterNow))
}

/*
TestMatches_GenderAnyRole verifies gender matches when any single role
seeks it, case-insensitively, and that unstated role genders do not match.
*/
func TestMatches_GenderAnyRole(t *testing.T) {
	entry := casting.Entry{Roles: []casting.Role{
		{Gender: "Women", AgeMin: pointer.To(20), AgeMax: pointer.To(30)},
		{Gender: "Men", AgeMin: pointer.To(40), AgeMax: pointer.To(50)},
	}}

	assert.True(t, casting.Matches(&entry, casting.Filter{Gender: "women"}, filterNow))
	assert.True(t, casting.Matches(&entry, casting.Filter{Gender: "Men"}, filterNow))
	assert.False(t, casting.Matches(&entry, casting.Filter{Gender: "Non-binary"}, filterNow))

	unstated := casting.Entry{Roles: []casting.Role{{}}}
	assert.False(t, casting.Matches(&unstated, casting.Filter{Gender: "Women"}, filterNow))
}

/*
TestMatches_OpenEthnicity verifies the "open to all ethnicities" toggle.
*/
func TestMatches_OpenEthnicity(t *testing.T) {
	open := casting.Entry{Roles: []casting.Role{{Ethnicity: "Open to all ethnicities"}}}
	unstated := casting.Entry{Roles: []casting.Role{{}}}
	specific := casting.Entry{Roles: []casting.Role{{Ethnicity: "Latino"}}}

	f := casting.Filter{Ethnicity: "all"}
	assert.True(t, casting.Matches(&open, f, filterNow))
	assert.True(t, casting.Matches(&unstated, f, filterNow))
	assert.False(t, casting.Matches(&specific, f, filterNow))
}

/*
TestMatches_Location verifies exact location matching.
*/
func TestMatches_Location(t *testing.T) {
	entry := casting.Entry{Location: pointer.To("Tulsa")}

	assert.True(t, casting.Matches(&entry, casting.Filter{Location: "Tulsa"}, filterNow))
	assert.False(t, casting.Matches(&entry, casting.Filter{Location: "Oklahoma City"}, filterNow))
	assert.False(t, casting.Matches(&entry, casting.Filter{Location: "tulsa"}, filterNow))
}

/*
TestMatches_JointRoleConstraint pins the core multi-role rule: age, type,
union and pay must all be satisfied by one and the same role.
*/
func TestMatches_JointRoleConstraint(t *testing.T) {
	entry := casting.Entry{Roles: []casting.Role{
		{AgeMin: pointer.To(25), AgeMax: pointer.To(30), Union: "Non-Union", Pay: "volunteer"},
		{AgeMin: pointer.To(45), AgeMax: pointer.To(55), Union: "Union", Pay: "$500/day"},
	}}

	// One role matches the age, the other matches the union. No single
	// role matches both.
	assert.False(t, casting.Matches(&entry, casting.Filter{Age: "25-30", Union: "Union"}, filterNow))

	// Same constraints satisfied by the second role alone.
	assert.True(t, casting.Matches(&entry, casting.Filter{Age: "45-55", Union: "Union"}, filterNow))

	// Pay joins the joint check.
	assert.True(t, casting.Matches(&entry, casting.Filter{Age: "45-55", Pay: "paid"}, filterNow))
	assert.False(t, casting.Matches(&entry, casting.Filter{Age: "45-55", Pay: "volunteer"}, filterNow))
}

/*
TestMatches_Scenarios replays the end-to-end filter scenarios the site
depends on.
*/
func TestMatches_Scenarios(t *testing.T) {
	indieFeature := casting.Entry{
		Title:            "Indie Feature",
		AuditionDeadline: pointer.To("2026-03-13"), // three days out
		Roles: []casting.Role{
			{AgeMin: pointer.To(20), AgeMax: pointer.To(30), Union: "Union", Pay: "$500/day"},
		},
	}

	included := casting.Filter{Expiring: "soon", Age: "25-30", Union: "Union", Pay: "paid"}
	assert.True(t, casting.Matches(&indieFeature, included, filterNow))

	// The role's "$" signal resolves to paid, so the volunteer filter
	// excludes it.
	assert.False(t, casting.Matches(&indieFeature, casting.Filter{Pay: "volunteer"}, filterNow))
}

/*
TestMatches_LegacyFlatEntry verifies that entries without a roles array
filter through their own flat attributes.
*/
func TestMatches_LegacyFlatEntry(t *testing.T) {
	entry := casting.Entry{
		Title:    "Student Short",
		Location: pointer.To("Norman"),
		Type:     pointer.To("Student Film"),
		Union:    pointer.To("Non-Union"),
		Pay:      pointer.To("Unpaid, copy provided"),
		AgeMin:   pointer.To(18),
		AgeMax:   pointer.To(24),
		Gender:   "Men",
	}

	assert.True(t, casting.Matches(&entry, casting.Filter{Type: "Student Film", Age: "20-25"}, filterNow))
	assert.False(t, casting.Matches(&entry, casting.Filter{Age: "30-40"}, filterNow))
	assert.True(t, casting.Matches(&entry, casting.Filter{Gender: "men"}, filterNow))
	assert.False(t, casting.Matches(&entry, casting.Filter{Union: "Union"}, filterNow))

	// "copy" outranks "unpaid" in the text priority order.
	assert.True(t, casting.Matches(&entry, casting.Filter{Pay: "deferred"}, filterNow))
}

/*
TestFilterEntries verifies order preservation and that a zero filter
returns everything.
*/
func TestFilterEntries(t *testing.T) {
	list := []casting.Entry{
		{Slug: "a", Location: pointer.To("Tulsa")},
		{Slug: "b", Location: pointer.To("Oklahoma City")},
		{Slug: "c", Location: pointer.To("Tulsa")},
	}

	all := casting.FilterEntries(list, casting.Filter{}, filterNow)
	assert.Len(t, all, 3)

	tulsa := casting.FilterEntries(list, casting.Filter{Location: "Tulsa"}, filterNow)
	assert.Equal(t, []string{"a", "c"}, []string{tulsa[0].Slug, tulsa[1].Slug})
}
