// Copyright (c) 2026 Starting Out OK. All rights reserved.

package casting

import (
	"context"
	"time"
)

// Repository defines the data access contract for casting-call entries.
//
// # Architecture
//
// Two implementations exist: [PostgresRepository] backed by the
// content.casting_call table, and [JSONRepository] backed by per-entry
// content files, so the same API serves both the hosted deployment and the
// static-content one. [CacheRepository] decorates either with Redis.
//
// Soft-deleted entries never cross this boundary: every read behaves as if
// they do not exist.
type Repository interface {
	// List returns the full non-deleted snapshot, active and archived
	// alike, ordered newest-first by posting date.
	List(ctx context.Context) ([]Entry, error)

	// FindBySlug returns one entry.
	//
	// It returns apperr.NotFound if the entry is absent or soft-deleted.
	FindBySlug(ctx context.Context, slug string) (*Entry, error)

	// Upsert creates or replaces the entry stored under entry.Slug.
	Upsert(ctx context.Context, entry *Entry) error

	// SetArchived flips the archived flag on one entry.
	//
	// It returns apperr.NotFound if the entry is absent or soft-deleted.
	SetArchived(ctx context.Context, slug string, archived bool) error

	// SoftDelete marks an entry deleted without removing the record.
	SoftDelete(ctx context.Context, slug string) error

	// ArchivePastDeadline archives every active entry whose submission
	// deadline is strictly before now's calendar day.
	//
	// Returns:
	//   - int: Number of entries archived.
	//   - error: Storage errors.
	ArchivePastDeadline(ctx context.Context, now time.Time) (int, error)
}
