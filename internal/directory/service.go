// Copyright (c) 2026 Starting Out OK. All rights reserved.

package directory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mickey-farmer/startingOutOK/internal/platform/validate"
	"github.com/mickey-farmer/startingOutOK/pkg/slice"
	"github.com/mickey-farmer/startingOutOK/pkg/uuidv7"
)

// # Service Layer

// Service orchestrates the cast & crew directory.
type Service struct {
	repository Repository
	logger     *slog.Logger
}

// NewService constructs a new [Service].
func NewService(repository Repository, logger *slog.Logger) *Service {
	return &Service{repository: repository, logger: logger}
}

/*
Directory returns the filtered directory grouped into canonical section
order.

Parameters:
  - ctx: context.Context
  - filter: Filter (zero value lists everything)

Returns:
  - []Section: Sections in canonical order, entries sorted within each
  - error: Storage failures
*/
func (service *Service) Directory(ctx context.Context, filter Filter) ([]Section, error) {
	entries, err := service.repository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("directory_service_list_failed: %w", err)
	}

	filtered := slice.Filter(entries, func(e Entry) bool { return filter.Matches(&e) })
	return GroupBySection(filtered), nil
}

// Get returns one profile by ID.
func (service *Service) Get(ctx context.Context, id string) (*Entry, error) {
	entry, err := service.repository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("directory_service_get_failed: %w", err)
	}
	return entry, nil
}

// Save validates and persists a profile, minting an ID for new ones.
func (service *Service) Save(ctx context.Context, entry *Entry) (*Entry, error) {
	if entry.ID == "" {
		entry.ID = uuidv7.New()
	}

	v := &validate.Validator{}
	v.Required("name", entry.Name).
		Required("section", entry.Section).
		MaxLen("name", entry.Name, 120).
		URL("link", entry.Link).
		URL("contactLink", entry.ContactLink)
	if v.HasErrors() {
		return nil, v.Err()
	}

	if err := service.repository.Upsert(ctx, entry); err != nil {
		return nil, fmt.Errorf("directory_service_save_failed: %w", err)
	}

	service.logger.Info("directory entry saved",
		slog.String("id", entry.ID),
		slog.String("section", entry.Section),
	)
	return entry, nil
}

// Delete removes one profile.
func (service *Service) Delete(ctx context.Context, id string) error {
	if err := service.repository.Delete(ctx, id); err != nil {
		return fmt.Errorf("directory_service_delete_failed: %w", err)
	}
	service.logger.Info("directory entry deleted", slog.String("id", id))
	return nil
}
