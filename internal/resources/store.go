// Copyright (c) 2026 Starting Out OK. All rights reserved.

package resources

import "context"

// Repository defines the data access contract for community resources.
type Repository interface {
	// List returns every resource, unordered; [GroupBySection] owns
	// presentation order.
	List(ctx context.Context) ([]Entry, error)

	// FindByID returns one resource.
	//
	// It returns apperr.NotFound if no resource has that ID.
	FindByID(ctx context.Context, id string) (*Entry, error)

	// Upsert creates or replaces the resource stored under entry.ID.
	Upsert(ctx context.Context, entry *Entry) error

	// Delete removes a resource.
	//
	// It returns apperr.NotFound if no resource has that ID.
	Delete(ctx context.Context, id string) error
}
