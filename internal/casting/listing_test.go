// Copyright (c) 2026 Starting Out OK. All rights reserved.

package casting_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mickey-farmer/startingOutOK/internal/casting"
	"github.com/mickey-farmer/startingOutOK/pkg/pointer"
)

/*
TestPartition verifies totality: every entry lands in exactly one bucket,
in input order.
*/
func TestPartition(t *testing.T) {
	list := []casting.Entry{
		{Slug: "a"},
		{Slug: "b", Archived: true},
		{Slug: "c"},
		{Slug: "d", Archived: true},
	}

	active, archived := casting.Partition(list)

	assert.Equal(t, len(list), len(active)+len(archived))
	assert.Equal(t, []string{"a", "c"}, []string{active[0].Slug, active[1].Slug})
	assert.Equal(t, []string{"b", "d"}, []string{archived[0].Slug, archived[1].Slug})
}

/*
TestLegacyFlags verifies the historical string encodings: archived as the
string "true" and deleted as the string "yes".
*/
func TestLegacyFlags(t *testing.T) {
	tests := []struct {
		name         string
		payload      string
		wantArchived bool
		wantDeleted  bool
	}{
		{"native_bools", `{"slug":"x","archived":true,"deleted":true}`, true, true},
		{"archived_string_true", `{"slug":"x","archived":"true"}`, true, false},
		{"archived_other_string", `{"slug":"x","archived":"1"}`, false, false},
		{"deleted_string_yes", `{"slug":"x","deleted":"yes"}`, false, true},
		{"deleted_string_true_ignored", `{"slug":"x","deleted":"true"}`, false, false},
		{"absent_flags", `{"slug":"x"}`, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var entry casting.Entry
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &entry))
			assert.Equal(t, tt.wantArchived, entry.Archived.Bool())
			assert.Equal(t, tt.wantDeleted, entry.Deleted.Bool())
		})
	}
}

/*
TestExcludeDeleted verifies soft-deleted entries drop out of a snapshot.
*/
func TestExcludeDeleted(t *testing.T) {
	list := []casting.Entry{
		{Slug: "keep"},
		{Slug: "drop", Deleted: true},
	}

	kept := casting.ExcludeDeleted(list)
	require.Len(t, kept, 1)
	assert.Equal(t, "keep", kept[0].Slug)
}

/*
TestSortByDateDesc verifies newest-first ordering with missing dates last,
and that the input slice is left untouched.
*/
func TestSortByDateDesc(t *testing.T) {
	list := []casting.Entry{
		{Slug: "old", Date: pointer.To("2024-01-01")},
		{Slug: "undated"},
		{Slug: "new", Date: pointer.To("2024-06-01")},
	}

	sorted := casting.SortByDateDesc(list)

	assert.Equal(t, "new", sorted[0].Slug)
	assert.Equal(t, "old", sorted[1].Slug)
	assert.Equal(t, "undated", sorted[2].Slug)

	// Input order is preserved.
	assert.Equal(t, "old", list[0].Slug)
}

/*
TestSortByDeadlineAsc verifies soonest-first ordering with undeadlined
entries surfacing first.
*/
func TestSortByDeadlineAsc(t *testing.T) {
	list := []casting.Entry{
		{Slug: "later", AuditionDeadline: pointer.To("2026-04-01")},
		{Slug: "sooner", AuditionDeadline: pointer.To("2026-03-12")},
		{Slug: "none"},
	}

	sorted := casting.SortByDeadlineAsc(list)

	assert.Equal(t, "none", sorted[0].Slug)
	assert.Equal(t, "sooner", sorted[1].Slug)
	assert.Equal(t, "later", sorted[2].Slug)
}

/*
TestSummaryOf verifies the derived list-view labels.
*/
func TestSummaryOf(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	entry := casting.Entry{
		Slug:             "indie-feature",
		Title:            "Indie Feature",
		AuditionDeadline: pointer.To("2026-03-13"),
		Roles: []casting.Role{
			{Union: "Union"},
			{Union: "Non-Union"},
		},
	}

	summary := casting.SummaryOf(&entry, now)

	assert.Equal(t, "indie-feature", summary.Slug)
	assert.Equal(t, 2, summary.RoleCount)
	assert.Equal(t, "Mixed", summary.UnionLabel)
	assert.True(t, summary.Expiring)
	assert.Equal(t, casting.PayPaid, summary.PayCategory)
}
