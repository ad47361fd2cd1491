// Copyright (c) 2026 Starting Out OK. All rights reserved.

package directory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mickey-farmer/startingOutOK/internal/directory"
)

/*
TestGroupBySection verifies canonical ordering, within-section sorting,
and that unknown sections append after the canonical ones.
*/
func TestGroupBySection(t *testing.T) {
	entries := []directory.Entry{
		{ID: "1", Section: "Writers", Name: "zoe"},
		{ID: "2", Section: "Writers", Name: "Adam"},
		{ID: "3", Section: "Talent", Name: "Blair"},
		{ID: "4", Section: "Sound", Name: "Casey", SortOrder: 2},
		{ID: "5", Section: "Sound", Name: "Drew", SortOrder: 1},
		{ID: "6", Section: "Locations", Name: "Scout"}, // not canonical
	}

	sections := directory.GroupBySection(entries)

	require.Len(t, sections, 4)
	assert.Equal(t, "Sound", sections[0].Name)
	assert.Equal(t, "Talent", sections[1].Name)
	assert.Equal(t, "Writers", sections[2].Name)
	assert.Equal(t, "Locations", sections[3].Name)

	// Crew respects manual sort order before name.
	assert.Equal(t, "Drew", sections[0].Entries[0].Name)
	assert.Equal(t, "Casey", sections[0].Entries[1].Name)

	// Names compare case-insensitively.
	assert.Equal(t, "Adam", sections[2].Entries[0].Name)
	assert.Equal(t, "zoe", sections[2].Entries[1].Name)
}

/*
TestFilter_Matches covers section and location exactness plus the
free-text search over name, description and section.
*/
func TestFilter_Matches(t *testing.T) {
	entry := directory.Entry{
		Section:     "Hair & Make-Up",
		Name:        "Jordan Reyes",
		Description: "SFX makeup for indie features",
		Location:    "Tulsa",
	}

	tests := []struct {
		name   string
		filter directory.Filter
		want   bool
	}{
		{"zero_filter", directory.Filter{}, true},
		{"section_match", directory.Filter{Section: "Hair & Make-Up"}, true},
		{"section_mismatch", directory.Filter{Section: "Sound"}, false},
		{"location_match", directory.Filter{Location: "Tulsa"}, true},
		{"location_mismatch", directory.Filter{Location: "Norman"}, false},
		{"search_name", directory.Filter{Search: "jordan"}, true},
		{"search_description", directory.Filter{Search: "sfx"}, true},
		{"search_section", directory.Filter{Search: "make-up"}, true},
		{"search_miss", directory.Filter{Search: "gaffer"}, false},
		{"search_and_section", directory.Filter{Section: "Hair & Make-Up", Search: "indie"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(&entry))
		})
	}
}

/*
TestJSONRepository_RoundTrip verifies section-keyed file storage: reads
take the section from the map key, upserts move entries between sections,
deletes prune them.
*/
func TestJSONRepository_RoundTrip(t *testing.T) {
	repository, err := directory.NewJSONRepository(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	entry := &directory.Entry{ID: "p1", Section: "Talent", Name: "Blair"}
	require.NoError(t, repository.Upsert(ctx, entry))

	found, err := repository.FindByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Talent", found.Section)

	// Moving sections must not leave a copy behind.
	entry.Section = "Writers"
	require.NoError(t, repository.Upsert(ctx, entry))

	entries, err := repository.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Writers", entries[0].Section)

	require.NoError(t, repository.Delete(ctx, "p1"))
	_, err = repository.FindByID(ctx, "p1")
	assert.Error(t, err)

	err = repository.Delete(ctx, "p1")
	assert.Error(t, err)
}
