// Copyright (c) 2026 Starting Out OK. All rights reserved.

package resources

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mickey-farmer/startingOutOK/internal/platform/validate"
	"github.com/mickey-farmer/startingOutOK/pkg/slice"
	"github.com/mickey-farmer/startingOutOK/pkg/uuidv7"
)

// # Service Layer

// Service orchestrates the community resources page.
type Service struct {
	repository Repository
	logger     *slog.Logger
}

// NewService constructs a new [Service].
func NewService(repository Repository, logger *slog.Logger) *Service {
	return &Service{repository: repository, logger: logger}
}

/*
Resources returns the filtered resources grouped into canonical section
order, with the Agencies city grouping applied.

Parameters:
  - ctx: context.Context
  - filter: Filter (zero value lists everything)

Returns:
  - []Section: Sections in canonical order
  - error: Storage failures
*/
func (service *Service) Resources(ctx context.Context, filter Filter) ([]Section, error) {
	entries, err := service.repository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("resources_service_list_failed: %w", err)
	}

	filtered := slice.Filter(entries, func(e Entry) bool { return filter.Matches(&e) })
	return GroupBySection(filtered), nil
}

// Get returns one resource by ID.
func (service *Service) Get(ctx context.Context, id string) (*Entry, error) {
	entry, err := service.repository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("resources_service_get_failed: %w", err)
	}
	return entry, nil
}

// Save validates and persists a resource, minting an ID for new ones.
func (service *Service) Save(ctx context.Context, entry *Entry) (*Entry, error) {
	if entry.ID == "" {
		entry.ID = uuidv7.New()
	}

	v := &validate.Validator{}
	v.Required("title", entry.Title).
		MaxLen("title", entry.Title, 200).
		URL("link", entry.Link).
		URL("imdbLink", entry.IMDBLink)
	if entry.Subcategory != "" {
		v.OneOf("subcategory", entry.Subcategory, SubcategoryOrder...)
	}
	if v.HasErrors() {
		return nil, v.Err()
	}

	if err := service.repository.Upsert(ctx, entry); err != nil {
		return nil, fmt.Errorf("resources_service_save_failed: %w", err)
	}

	service.logger.Info("resource saved",
		slog.String("id", entry.ID),
		slog.String("section", entry.EffectiveSection()),
	)
	return entry, nil
}

// Delete removes one resource.
func (service *Service) Delete(ctx context.Context, id string) error {
	if err := service.repository.Delete(ctx, id); err != nil {
		return fmt.Errorf("resources_service_delete_failed: %w", err)
	}
	service.logger.Info("resource deleted", slog.String("id", id))
	return nil
}
