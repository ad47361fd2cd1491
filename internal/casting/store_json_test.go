// Copyright (c) 2026 Starting Out OK. All rights reserved.

package casting_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mickey-farmer/startingOutOK/internal/casting"
	"github.com/mickey-farmer/startingOutOK/internal/platform/apperr"
	"github.com/mickey-farmer/startingOutOK/pkg/pointer"
)

func newTestJSONRepository(t *testing.T) (*casting.JSONRepository, string) {
	t.Helper()
	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repository, err := casting.NewJSONRepository(dir, logger)
	require.NoError(t, err)
	return repository, dir
}

/*
TestJSONRepository_UpsertAndFind verifies the write/read round-trip
through content files.
*/
func TestJSONRepository_UpsertAndFind(t *testing.T) {
	repository, dir := newTestJSONRepository(t)
	ctx := context.Background()

	entry := &casting.Entry{
		Slug:             "indie-feature",
		Title:            "Indie Feature",
		Date:             pointer.To("2026-03-01"),
		AuditionDeadline: pointer.To("2026-03-20"),
		Location:         pointer.To("Tulsa"),
		Roles: []casting.Role{
			{RoleTitle: "Lead", AgeMin: pointer.To(25), AgeMax: pointer.To(35), Union: "Non-Union"},
		},
	}
	require.NoError(t, repository.Upsert(ctx, entry))

	found, err := repository.FindBySlug(ctx, "indie-feature")
	require.NoError(t, err)
	assert.Equal(t, "Indie Feature", found.Title)
	require.Len(t, found.Roles, 1)
	assert.Equal(t, "Lead", found.Roles[0].RoleTitle)

	// Content files end with a newline, like the historical editor wrote them.
	data, err := os.ReadFile(filepath.Join(dir, "indie-feature.json"))
	require.NoError(t, err)
	assert.True(t, len(data) > 0 && data[len(data)-1] == '\n')
}

/*
TestJSONRepository_FindMissing verifies absent slugs surface as NotFound.
*/
func TestJSONRepository_FindMissing(t *testing.T) {
	repository, _ := newTestJSONRepository(t)

	_, err := repository.FindBySlug(context.Background(), "nope")
	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)
}

/*
TestJSONRepository_RejectsPathEscapes verifies slugs cannot reach outside
the content directory.
*/
func TestJSONRepository_RejectsPathEscapes(t *testing.T) {
	repository, _ := newTestJSONRepository(t)

	for _, slug := range []string{"", "../etc/passwd", "a/b", `a\b`} {
		_, err := repository.FindBySlug(context.Background(), slug)
		assert.Error(t, err, "slug %q", slug)
	}
}

/*
TestJSONRepository_List verifies ordering, deleted exclusion, and that one
corrupt file does not poison the listing.
*/
func TestJSONRepository_List(t *testing.T) {
	repository, dir := newTestJSONRepository(t)
	ctx := context.Background()

	require.NoError(t, repository.Upsert(ctx, &casting.Entry{Slug: "old", Title: "Old", Date: pointer.To("2024-01-01")}))
	require.NoError(t, repository.Upsert(ctx, &casting.Entry{Slug: "new", Title: "New", Date: pointer.To("2024-06-01")}))
	require.NoError(t, repository.Upsert(ctx, &casting.Entry{Slug: "gone", Title: "Gone", Deleted: true}))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "corrupt.json"), []byte("{not json"), 0o644))

	entries, err := repository.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "new", entries[0].Slug)
	assert.Equal(t, "old", entries[1].Slug)
}

/*
TestJSONRepository_LegacyEncodings verifies files written by the older
tooling, with string flags, still read correctly.
*/
func TestJSONRepository_LegacyEncodings(t *testing.T) {
	repository, dir := newTestJSONRepository(t)
	ctx := context.Background()

	legacyArchived := `{"slug":"legacy-archived","title":"Legacy","archived":"true"}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "legacy-archived.json"), []byte(legacyArchived), 0o644))
	legacyDeleted := `{"slug":"legacy-deleted","title":"Legacy","deleted":"yes"}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "legacy-deleted.json"), []byte(legacyDeleted), 0o644))

	entries, err := repository.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Archived.Bool())

	_, err = repository.FindBySlug(ctx, "legacy-deleted")
	assert.Error(t, err)
}

/*
TestJSONRepository_SoftDelete verifies the record disappears from reads
but the file stays on disk.
*/
func TestJSONRepository_SoftDelete(t *testing.T) {
	repository, dir := newTestJSONRepository(t)
	ctx := context.Background()

	require.NoError(t, repository.Upsert(ctx, &casting.Entry{Slug: "short-film", Title: "Short Film"}))
	require.NoError(t, repository.SoftDelete(ctx, "short-film"))

	_, err := repository.FindBySlug(ctx, "short-film")
	assert.Error(t, err)

	_, statErr := os.Stat(filepath.Join(dir, "short-film.json"))
	assert.NoError(t, statErr)
}

/*
TestJSONRepository_SetArchived verifies the flag flip round-trips.
*/
func TestJSONRepository_SetArchived(t *testing.T) {
	repository, _ := newTestJSONRepository(t)
	ctx := context.Background()

	require.NoError(t, repository.Upsert(ctx, &casting.Entry{Slug: "pilot", Title: "Pilot"}))
	require.NoError(t, repository.SetArchived(ctx, "pilot", true))

	found, err := repository.FindBySlug(ctx, "pilot")
	require.NoError(t, err)
	assert.True(t, found.Archived.Bool())

	require.NoError(t, repository.SetArchived(ctx, "pilot", false))
	found, err = repository.FindBySlug(ctx, "pilot")
	require.NoError(t, err)
	assert.False(t, found.Archived.Bool())

	err = repository.SetArchived(ctx, "missing", true)
	assert.Error(t, err)
}

/*
TestJSONRepository_ArchivePastDeadline verifies the sweep archives only
active entries whose deadline date has passed.
*/
func TestJSONRepository_ArchivePastDeadline(t *testing.T) {
	repository, _ := newTestJSONRepository(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 3, 0, 0, 0, time.UTC)

	require.NoError(t, repository.Upsert(ctx, &casting.Entry{Slug: "expired", AuditionDeadline: pointer.To("2026-03-09")}))
	require.NoError(t, repository.Upsert(ctx, &casting.Entry{Slug: "due-today", AuditionDeadline: pointer.To("2026-03-10")}))
	require.NoError(t, repository.Upsert(ctx, &casting.Entry{Slug: "open", AuditionDeadline: pointer.To("2026-04-01")}))
	require.NoError(t, repository.Upsert(ctx, &casting.Entry{Slug: "undated"}))
	require.NoError(t, repository.Upsert(ctx, &casting.Entry{Slug: "already", AuditionDeadline: pointer.To("2026-01-01"), Archived: true}))

	count, err := repository.ArchivePastDeadline(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	expired, err := repository.FindBySlug(ctx, "expired")
	require.NoError(t, err)
	assert.True(t, expired.Archived.Bool())

	dueToday, err := repository.FindBySlug(ctx, "due-today")
	require.NoError(t, err)
	assert.False(t, dueToday.Archived.Bool())
}
