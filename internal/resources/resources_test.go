// Copyright (c) 2026 Starting Out OK. All rights reserved.

package resources_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mickey-farmer/startingOutOK/internal/resources"
)

/*
TestGroupBySection_AgenciesByCity verifies the Agencies city grouping:
cities alphabetical, titles alphabetical within each, missing locations
under "Other".
*/
func TestGroupBySection_AgenciesByCity(t *testing.T) {
	entries := []resources.Entry{
		{ID: "1", Section: "Agencies", Title: "Zenith Talent", Location: "Tulsa"},
		{ID: "2", Section: "Agencies", Title: "Apex Agency", Location: "Tulsa"},
		{ID: "3", Section: "Agencies", Title: "Metro Casting", Location: "Oklahoma City"},
		{ID: "4", Section: "Agencies", Title: "Remote Reps"},
	}

	sections := resources.GroupBySection(entries)
	require.Len(t, sections, 1)
	require.Len(t, sections[0].CityGroups, 3)

	groups := sections[0].CityGroups
	assert.Equal(t, "Oklahoma City", groups[0].City)
	assert.Equal(t, "Other", groups[1].City)
	assert.Equal(t, "Tulsa", groups[2].City)

	assert.Equal(t, "Apex Agency", groups[2].Entries[0].Title)
	assert.Equal(t, "Zenith Talent", groups[2].Entries[1].Title)
}

/*
TestGroupBySection_ClassesSubcategoryOrder verifies the fixed subcategory
sequence with title tiebreaks and unlisted subcategories last.
*/
func TestGroupBySection_ClassesSubcategoryOrder(t *testing.T) {
	entries := []resources.Entry{
		{ID: "1", Section: "Classes & Workshops", Title: "Voice Basics", Subcategory: "Voice Over"},
		{ID: "2", Section: "Classes & Workshops", Title: "Scene Study", Subcategory: "Stage"},
		{ID: "3", Section: "Classes & Workshops", Title: "Taxes for Actors", Subcategory: "Business"},
		{ID: "4", Section: "Classes & Workshops", Title: "Mystery Class", Subcategory: "Improv"},
		{ID: "5", Section: "Classes & Workshops", Title: "Audition Reels", Subcategory: "Business"},
	}

	sections := resources.GroupBySection(entries)
	require.Len(t, sections, 1)

	titles := make([]string, 0, len(sections[0].Entries))
	for _, e := range sections[0].Entries {
		titles = append(titles, e.Title)
	}
	assert.Equal(t, []string{
		"Audition Reels", "Taxes for Actors", "Scene Study", "Voice Basics", "Mystery Class",
	}, titles)
}

/*
TestGroupBySection_FallbackSections verifies sectionless entries land in
Vendors when flagged, otherwise in a trailing Resources section.
*/
func TestGroupBySection_FallbackSections(t *testing.T) {
	entries := []resources.Entry{
		{ID: "1", Title: "Prop Rentals", Vendor: true},
		{ID: "2", Title: "Misc Listing"},
		{ID: "3", Section: "Theaters", Title: "Circle Cinema"},
	}

	sections := resources.GroupBySection(entries)
	require.Len(t, sections, 3)
	assert.Equal(t, "Theaters", sections[0].Name)
	assert.Equal(t, "Vendors", sections[1].Name)
	assert.Equal(t, "Resources", sections[2].Name) // non-canonical, appended
}

/*
TestFilter_Matches covers the dependent subcategory filter and location
exactness.
*/
func TestFilter_Matches(t *testing.T) {
	class := resources.Entry{Section: "Classes & Workshops", Title: "Scene Study", Subcategory: "Stage", Location: "Tulsa"}
	agency := resources.Entry{Section: "Agencies", Title: "Apex Agency", Location: "Tulsa"}

	tests := []struct {
		name   string
		entry  resources.Entry
		filter resources.Filter
		want   bool
	}{
		{"zero_filter", class, resources.Filter{}, true},
		{"section_match", class, resources.Filter{Section: "Classes & Workshops"}, true},
		{"section_mismatch", agency, resources.Filter{Section: "Classes & Workshops"}, false},
		{"subcategory_with_classes", class, resources.Filter{Section: "Classes & Workshops", Subcategory: "Stage"}, true},
		{"subcategory_mismatch", class, resources.Filter{Section: "Classes & Workshops", Subcategory: "Business"}, false},
		{"subcategory_ignored_without_classes_section", agency, resources.Filter{Subcategory: "Stage"}, true},
		{"location_match", class, resources.Filter{Location: "Tulsa"}, true},
		{"location_mismatch", class, resources.Filter{Location: "Norman"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(&tt.entry))
		})
	}
}
