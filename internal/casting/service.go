// Copyright (c) 2026 Starting Out OK. All rights reserved.

package casting

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mickey-farmer/startingOutOK/internal/platform/validate"
	"github.com/mickey-farmer/startingOutOK/pkg/pointer"
	"github.com/mickey-farmer/startingOutOK/pkg/slug"
)

// # Service Layer

// Service orchestrates the casting-call catalogue: it assembles listings
// through the partition/filter pipeline, serves details, and handles the
// admin mutations.
//
// now is injectable so listing assembly is deterministic under test; the
// wired instance uses time.Now.
type Service struct {
	repository Repository
	logger     *slog.Logger
	now        func() time.Time
}

// NewService constructs a new [Service].
func NewService(repository Repository, logger *slog.Logger) *Service {
	return &Service{
		repository: repository,
		logger:     logger,
		now:        time.Now,
	}
}

// SetNow overrides the service clock. Tests use it to pin listing
// assembly to a fixed instant.
func (service *Service) SetNow(now func() time.Time) {
	service.now = now
}

// Listing is the assembled front-page payload: filtered active calls
// newest-first, the expiring-soon subset soonest-deadline-first, and the
// size of the archive for the "view archive" link.
type Listing struct {
	Calls         []Summary `json:"calls"`
	ExpiringSoon  []Summary `json:"expiringSoon"`
	ArchivedCount int       `json:"archivedCount"`
}

/*
List assembles the active listing.

Description: Takes the full non-deleted snapshot, partitions out archived
entries, applies the visitor's filter to the active set, and derives the
expiring-soon rail from the filtered result.

Parameters:
  - ctx: context.Context
  - filter: Filter (zero value lists everything)

Returns:
  - *Listing: Filtered summaries plus the expiring rail and archive count
  - error: Storage failures
*/
func (service *Service) List(ctx context.Context, filter Filter) (*Listing, error) {
	entries, err := service.repository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("casting_service_list_failed: %w", err)
	}

	now := service.now()
	active, archived := Partition(entries)
	filtered := FilterEntries(SortByDateDesc(active), filter, now)

	expiring := SortByDeadlineAsc(FilterEntries(filtered, Filter{Expiring: "soon"}, now))

	return &Listing{
		Calls:         Summaries(filtered, now),
		ExpiringSoon:  Summaries(expiring, now),
		ArchivedCount: len(archived),
	}, nil
}

/*
ListArchived returns archived entries newest-first.

Returns:
  - []Summary: The archive, ready for pagination by the handler
  - error: Storage failures
*/
func (service *Service) ListArchived(ctx context.Context) ([]Summary, error) {
	entries, err := service.repository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("casting_service_list_archived_failed: %w", err)
	}

	_, archived := Partition(entries)
	return Summaries(SortByDateDesc(archived), service.now()), nil
}

// Get returns one full entry by slug. Archived entries stay reachable;
// only soft-deleted ones 404.
func (service *Service) Get(ctx context.Context, entrySlug string) (*Entry, error) {
	entry, err := service.repository.FindBySlug(ctx, entrySlug)
	if err != nil {
		return nil, fmt.Errorf("casting_service_get_failed: %w", err)
	}
	return entry, nil
}

// FeedEntries returns the active entries newest-first for the RSS feed.
func (service *Service) FeedEntries(ctx context.Context) ([]Entry, error) {
	entries, err := service.repository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("casting_service_feed_failed: %w", err)
	}
	active, _ := Partition(entries)
	return SortByDateDesc(active), nil
}

// # Admin Operations

/*
Save validates and persists an entry from the admin editor.

Description: The editor submits complete entries. A missing slug is
derived from the title; dates must be ISO (2006-01-02); links must be
absolute URLs.

Returns:
  - *Entry: The persisted entry, slug populated
  - error: Validation or storage failures
*/
func (service *Service) Save(ctx context.Context, entry *Entry) (*Entry, error) {
	if strings.TrimSpace(entry.Slug) == "" {
		entry.Slug = slug.From(entry.Title)
	}

	v := &validate.Validator{}
	v.Required(FieldTitle, entry.Title).
		Required(FieldSlug, entry.Slug).
		Slug(FieldSlug, entry.Slug).
		MaxLen(FieldTitle, entry.Title, 200).
		Date(FieldDate, pointer.Val(entry.Date)).
		Date(FieldAuditionDeadline, pointer.Val(entry.AuditionDeadline)).
		URL(FieldSubmissionLink, entry.SubmissionLink).
		URL(FieldSourceLink, entry.SourceLink)
	if v.HasErrors() {
		return nil, v.Err()
	}

	if err := service.repository.Upsert(ctx, entry); err != nil {
		return nil, fmt.Errorf("casting_service_save_failed: %w", err)
	}

	service.logger.Info("casting call saved", slog.String("slug", entry.Slug))
	return entry, nil
}

// SetArchived moves one entry between the active listing and the archive.
func (service *Service) SetArchived(ctx context.Context, entrySlug string, archived bool) error {
	if err := service.repository.SetArchived(ctx, entrySlug, archived); err != nil {
		return fmt.Errorf("casting_service_set_archived_failed: %w", err)
	}
	service.logger.Info("casting call archive flag changed",
		slog.String("slug", entrySlug),
		slog.Bool("archived", archived),
	)
	return nil
}

// Delete soft-deletes one entry.
func (service *Service) Delete(ctx context.Context, entrySlug string) error {
	if err := service.repository.SoftDelete(ctx, entrySlug); err != nil {
		return fmt.Errorf("casting_service_delete_failed: %w", err)
	}
	service.logger.Info("casting call deleted", slog.String("slug", entrySlug))
	return nil
}

// ArchiveExpired archives every active entry whose deadline has passed.
// Called by the nightly sweep and exposed to admins for a manual run.
func (service *Service) ArchiveExpired(ctx context.Context) (int, error) {
	count, err := service.repository.ArchivePastDeadline(ctx, service.now())
	if err != nil {
		return count, fmt.Errorf("casting_service_archive_expired_failed: %w", err)
	}
	if count > 0 {
		service.logger.Info("expired casting calls archived", slog.Int("count", count))
	}
	return count, nil
}
