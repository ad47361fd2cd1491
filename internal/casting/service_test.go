// Copyright (c) 2026 Starting Out OK. All rights reserved.

package casting_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mickey-farmer/startingOutOK/internal/casting"
	"github.com/mickey-farmer/startingOutOK/internal/platform/apperr"
	"github.com/mickey-farmer/startingOutOK/pkg/pointer"
)

// stubRepository serves a fixed snapshot and records mutations.
type stubRepository struct {
	entries  []casting.Entry
	upserted []*casting.Entry
}

func (s *stubRepository) List(ctx context.Context) ([]casting.Entry, error) {
	return s.entries, nil
}

func (s *stubRepository) FindBySlug(ctx context.Context, slug string) (*casting.Entry, error) {
	for i := range s.entries {
		if s.entries[i].Slug == slug {
			return &s.entries[i], nil
		}
	}
	return nil, apperr.NotFound("Casting call")
}

func (s *stubRepository) Upsert(ctx context.Context, entry *casting.Entry) error {
	s.upserted = append(s.upserted, entry)
	return nil
}

func (s *stubRepository) SetArchived(ctx context.Context, slug string, archived bool) error {
	return nil
}

func (s *stubRepository) SoftDelete(ctx context.Context, slug string) error { return nil }

func (s *stubRepository) ArchivePastDeadline(ctx context.Context, now time.Time) (int, error) {
	return 0, nil
}

func newTestService(t *testing.T, repository casting.Repository, now time.Time) *casting.Service {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := casting.NewService(repository, logger)
	service.SetNow(func() time.Time { return now })
	return service
}

/*
TestService_List verifies the assembled listing: archived entries
partitioned out and counted, active entries filtered newest-first, and the
expiring rail sorted soonest-first.
*/
func TestService_List(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	repository := &stubRepository{entries: []casting.Entry{
		{Slug: "closing-later", Date: pointer.To("2026-03-01"), AuditionDeadline: pointer.To("2026-03-15")},
		{Slug: "closing-soon", Date: pointer.To("2026-03-05"), AuditionDeadline: pointer.To("2026-03-11")},
		{Slug: "no-rush", Date: pointer.To("2026-02-20"), AuditionDeadline: pointer.To("2026-05-01")},
		{Slug: "in-archive", Date: pointer.To("2026-01-01"), Archived: true},
	}}

	listing, err := newTestService(t, repository, now).List(context.Background(), casting.Filter{})
	require.NoError(t, err)

	require.Len(t, listing.Calls, 3)
	assert.Equal(t, "closing-soon", listing.Calls[0].Slug) // newest first
	assert.Equal(t, 1, listing.ArchivedCount)

	require.Len(t, listing.ExpiringSoon, 2)
	assert.Equal(t, "closing-soon", listing.ExpiringSoon[0].Slug) // soonest deadline first
	assert.Equal(t, "closing-later", listing.ExpiringSoon[1].Slug)
}

/*
TestService_List_FilterNarrowsExpiringRail verifies the expiring rail is
derived from the filtered set, not the raw one.
*/
func TestService_List_FilterNarrowsExpiringRail(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	repository := &stubRepository{entries: []casting.Entry{
		{Slug: "tulsa-soon", Location: pointer.To("Tulsa"), AuditionDeadline: pointer.To("2026-03-12")},
		{Slug: "okc-soon", Location: pointer.To("Oklahoma City"), AuditionDeadline: pointer.To("2026-03-12")},
	}}

	listing, err := newTestService(t, repository, now).List(context.Background(), casting.Filter{Location: "Tulsa"})
	require.NoError(t, err)

	require.Len(t, listing.Calls, 1)
	require.Len(t, listing.ExpiringSoon, 1)
	assert.Equal(t, "tulsa-soon", listing.ExpiringSoon[0].Slug)
}

/*
TestService_ListArchived verifies the archive comes back newest-first.
*/
func TestService_ListArchived(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	repository := &stubRepository{entries: []casting.Entry{
		{Slug: "active"},
		{Slug: "archived-old", Date: pointer.To("2025-01-01"), Archived: true},
		{Slug: "archived-new", Date: pointer.To("2025-06-01"), Archived: true},
	}}

	archived, err := newTestService(t, repository, now).ListArchived(context.Background())
	require.NoError(t, err)

	require.Len(t, archived, 2)
	assert.Equal(t, "archived-new", archived[0].Slug)
	assert.Equal(t, "archived-old", archived[1].Slug)
}

/*
TestService_Save verifies slug derivation and field validation.
*/
func TestService_Save(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("derives_slug_from_title", func(t *testing.T) {
		repository := &stubRepository{}
		saved, err := newTestService(t, repository, now).Save(context.Background(), &casting.Entry{
			Title: "Néo-Noir Short: Midnight Run!",
		})
		require.NoError(t, err)
		assert.Equal(t, "neo-noir-short-midnight-run", saved.Slug)
		require.Len(t, repository.upserted, 1)
	})

	t.Run("rejects_missing_title", func(t *testing.T) {
		repository := &stubRepository{}
		_, err := newTestService(t, repository, now).Save(context.Background(), &casting.Entry{})
		assert.Error(t, err)
		assert.Empty(t, repository.upserted)
	})

	t.Run("rejects_bad_dates_and_links", func(t *testing.T) {
		repository := &stubRepository{}
		_, err := newTestService(t, repository, now).Save(context.Background(), &casting.Entry{
			Title:            "Valid Title",
			Date:             pointer.To("03/10/2026"),
			AuditionDeadline: pointer.To("whenever"),
			SubmissionLink:   "not-a-url",
		})
		assert.Error(t, err)
		assert.Empty(t, repository.upserted)
	})
}
