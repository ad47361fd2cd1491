// Copyright (c) 2026 Starting Out OK. All rights reserved.

package directory

import "context"

// Repository defines the data access contract for directory profiles.
//
// Implementations route Talent entries to the cast store and everything
// else to the crew store, so callers see one directory.
type Repository interface {
	// List returns every profile across all sections, unordered;
	// [GroupBySection] owns presentation order.
	List(ctx context.Context) ([]Entry, error)

	// FindByID returns one profile.
	//
	// It returns apperr.NotFound if no profile has that ID.
	FindByID(ctx context.Context, id string) (*Entry, error)

	// Upsert creates or replaces the profile stored under entry.ID.
	Upsert(ctx context.Context, entry *Entry) error

	// Delete removes a profile.
	//
	// It returns apperr.NotFound if no profile has that ID.
	Delete(ctx context.Context, id string) error
}
