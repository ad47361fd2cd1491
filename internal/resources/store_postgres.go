// Copyright (c) 2026 Starting Out OK. All rights reserved.

/*
Package resources (Postgres) implements the storage layer for community
resources.

# Schema Table Mapping
  - content.resource: All resource entries, one row per listing.
*/
package resources

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mickey-farmer/startingOutOK/internal/platform/apperr"
	"github.com/mickey-farmer/startingOutOK/internal/platform/database/schema"
	"github.com/mickey-farmer/startingOutOK/internal/platform/dberr"
)

// # Repository Implementation

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates the Postgres implementation.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// List returns every resource ordered by manual sort order then title.
func (repository *PostgresRepository) List(ctx context.Context) ([]Entry, error) {
	t := schema.ContentResource
	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM %s
		ORDER BY %s ASC, %s ASC`,
		strings.Join(t.Columns(), ", "), t.SortOrder,
		t.Table, t.SortOrder, t.Title,
	)

	rows, err := repository.pool.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(fmt.Errorf("resources_list_failed: %w", err), "list")
	}
	defer rows.Close()

	entries := make([]Entry, 0, 64)
	for rows.Next() {
		var entry Entry
		if err := scanResource(rows, &entry); err != nil {
			return nil, fmt.Errorf("resources_list_scan_failed: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// FindByID returns one resource, or apperr.NotFound.
func (repository *PostgresRepository) FindByID(ctx context.Context, id string) (*Entry, error) {
	t := schema.ContentResource
	query := fmt.Sprintf(`
		SELECT %s, %s FROM %s WHERE %s = $1`,
		strings.Join(t.Columns(), ", "), t.SortOrder, t.Table, t.ID,
	)

	entry := &Entry{}
	if err := scanResource(repository.pool.QueryRow(ctx, query, id), entry); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Resource")
		}
		return nil, dberr.Wrap(fmt.Errorf("resources_find_by_id_failed: %w", err), "find")
	}
	return entry, nil
}

// Upsert creates or replaces the resource stored under entry.ID.
func (repository *PostgresRepository) Upsert(ctx context.Context, entry *Entry) error {
	t := schema.ContentResource
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (%s) DO UPDATE SET
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s`,
		t.Table, strings.Join(t.Columns(), ", "), t.SortOrder,
		t.ID,
		t.Section, t.Section, t.Title, t.Title, t.Type, t.Type, t.Subcategory, t.Subcategory,
		t.Description, t.Description, t.Location, t.Location, t.Link, t.Link, t.IMDBLink, t.IMDBLink,
		t.Vendor, t.Vendor, t.Pills, t.Pills, t.Schedule, t.Schedule, t.SortOrder, t.SortOrder,
	)

	_, err := repository.pool.Exec(ctx, query,
		entry.ID, entry.Section, entry.Title, entry.Type, entry.Subcategory,
		entry.Description, entry.Location, entry.Link, entry.IMDBLink,
		entry.Vendor, entry.Pills, entry.Schedule, entry.SortOrder,
	)
	if err != nil {
		return dberr.Wrap(fmt.Errorf("resources_upsert_failed: %w", err), "upsert")
	}
	return nil
}

// Delete removes a resource.
func (repository *PostgresRepository) Delete(ctx context.Context, id string) error {
	t := schema.ContentResource
	tag, err := repository.pool.Exec(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID), id)
	if err != nil {
		return dberr.Wrap(fmt.Errorf("resources_delete_failed: %w", err), "delete")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Resource")
	}
	return nil
}

// scanResource hydrates one row in Columns()+sort_order order.
func scanResource(row pgx.Row, entry *Entry) error {
	return row.Scan(
		&entry.ID, &entry.Section, &entry.Title, &entry.Type, &entry.Subcategory,
		&entry.Description, &entry.Location, &entry.Link, &entry.IMDBLink,
		&entry.Vendor, &entry.Pills, &entry.Schedule, &entry.SortOrder,
	)
}
