// Copyright (c) 2026 Starting Out OK. All rights reserved.

/*
Package directory (Postgres) implements the storage layer for cast & crew
profiles.

# Schema Table Mapping
  - content.cast: Talent profiles with contact and credit metadata.
  - content.crew: Section-grouped crew profiles with manual sort order.
*/
package directory

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

// PostgresRepository implements [Repository] using pgx across the cast
// and crew tables.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates the Postgres implementation.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// List merges the cast table (as the Talent section) with the crew table.
func (repository *PostgresRepository) List(ctx context.Context) ([]Entry, error) {
	talent, err := repository.listCast(ctx)
	if err != nil {
		return nil, err
	}
	crew, err := repository.listCrew(ctx)
	if err != nil {
		return nil, err
	}
	return append(talent, crew...), nil
}

func (repository *PostgresRepository) listCast(ctx context.Context) ([]Entry, error) {
	t := schema.ContentCast
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		ORDER BY %s ASC`,
		strings.Join(t.Columns(), ", "), t.Table, t.Name,
	)

	rows, err := repository.pool.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(fmt.Errorf("directory_list_cast_failed: %w", err), "list")
	}
	defer rows.Close()

	entries := make([]Entry, 0, 32)
	for rows.Next() {
		entry := Entry{Section: TalentSection}
		err := rows.Scan(
			&entry.ID, &entry.Name, &entry.Pronouns, &entry.Description,
			&entry.Location, &entry.Link, &entry.ContactLink, &entry.ContactLabel,
			&entry.Email, &entry.Instagram, &entry.Pills, &entry.TMDBPersonID,
			&entry.PhotoURL, &entry.Credits,
		)
		if err != nil {
			return nil, fmt.Errorf("directory_list_cast_scan_failed: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (repository *PostgresRepository) listCrew(ctx context.Context) ([]Entry, error) {
	t := schema.ContentCrew
	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM %s
		ORDER BY %s ASC, %s ASC`,
		strings.Join(t.Columns(), ", "), t.SortOrder,
		t.Table, t.SortOrder, t.Name,
	)

	rows, err := repository.pool.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(fmt.Errorf("directory_list_crew_failed: %w", err), "list")
	}
	defer rows.Close()

	entries := make([]Entry, 0, 32)
	for rows.Next() {
		var entry Entry
		err := rows.Scan(
			&entry.ID, &entry.Section, &entry.Name, &entry.Pronouns,
			&entry.Description, &entry.Location, &entry.Link,
			&entry.ContactLink, &entry.ContactLabel, &entry.Pills,
			&entry.SortOrder,
		)
		if err != nil {
			return nil, fmt.Errorf("directory_list_crew_scan_failed: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// FindByID checks the cast table first, then crew.
func (repository *PostgresRepository) FindByID(ctx context.Context, id string) (*Entry, error) {
	cast := schema.ContentCast
	query := fmt.Sprintf(`
		SELECT %s FROM %s WHERE %s = $1`,
		strings.Join(cast.Columns(), ", "), cast.Table, cast.ID,
	)
	entry := Entry{Section: TalentSection}
	err := repository.pool.QueryRow(ctx, query, id).Scan(
		&entry.ID, &entry.Name, &entry.Pronouns, &entry.Description,
		&entry.Location, &entry.Link, &entry.ContactLink, &entry.ContactLabel,
		&entry.Email, &entry.Instagram, &entry.Pills, &entry.TMDBPersonID,
		&entry.PhotoURL, &entry.Credits,
	)
	if err == nil {
		return &entry, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, dberr.Wrap(fmt.Errorf("directory_find_cast_failed: %w", err), "find")
	}

	crew := schema.ContentCrew
	query = fmt.Sprintf(`
		SELECT %s, %s FROM %s WHERE %s = $1`,
		strings.Join(crew.Columns(), ", "), crew.SortOrder, crew.Table, crew.ID,
	)
	entry = Entry{}
	err = repository.pool.QueryRow(ctx, query, id).Scan(
		&entry.ID, &entry.Section, &entry.Name, &entry.Pronouns,
		&entry.Description, &entry.Location, &entry.Link,
		&entry.ContactLink, &entry.ContactLabel, &entry.Pills,
		&entry.SortOrder,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Directory entry")
		}
		return nil, dberr.Wrap(fmt.Errorf("directory_find_crew_failed: %w", err), "find")
	}
	return &entry, nil
}

// Upsert routes Talent entries to the cast table, everything else to crew.
func (repository *PostgresRepository) Upsert(ctx context.Context, entry *Entry) error {
	if entry.IsTalent() {
		return repository.upsertCast(ctx, entry)
	}
	return repository.upsertCrew(ctx, entry)
}

func (repository *PostgresRepository) upsertCast(ctx context.Context, entry *Entry) error {
	t := schema.ContentCast
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (%s) DO UPDATE SET
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s`,
		t.Table, strings.Join(t.Columns(), ", "),
		t.ID,
		t.Name, t.Name, t.Pronouns, t.Pronouns, t.Description, t.Description, t.Location, t.Location,
		t.Link, t.Link, t.ContactLink, t.ContactLink, t.ContactLabel, t.ContactLabel, t.Email, t.Email,
		t.Instagram, t.Instagram, t.Pills, t.Pills, t.TMDBPersonID, t.TMDBPersonID, t.PhotoURL, t.PhotoURL,
		t.Credits, t.Credits,
	)

	_, err := repository.pool.Exec(ctx, query,
		entry.ID, entry.Name, entry.Pronouns, entry.Description, entry.Location,
		entry.Link, entry.ContactLink, entry.ContactLabel, entry.Email,
		entry.Instagram, entry.Pills, entry.TMDBPersonID, entry.PhotoURL, entry.Credits,
	)
	if err != nil {
		return dberr.Wrap(fmt.Errorf("directory_upsert_cast_failed: %w", err), "upsert")
	}
	return nil
}

func (repository *PostgresRepository) upsertCrew(ctx context.Context, entry *Entry) error {
	t := schema.ContentCrew
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (%s) DO UPDATE SET
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = EXCLUDED.%s`,
		t.Table, strings.Join(t.Columns(), ", "), t.SortOrder,
		t.ID,
		t.Section, t.Section, t.Name, t.Name, t.Pronouns, t.Pronouns, t.Description, t.Description,
		t.Location, t.Location, t.Link, t.Link, t.ContactLink, t.ContactLink, t.ContactLabel, t.ContactLabel,
		t.Pills, t.Pills, t.SortOrder, t.SortOrder,
	)

	_, err := repository.pool.Exec(ctx, query,
		entry.ID, entry.Section, entry.Name, entry.Pronouns, entry.Description,
		entry.Location, entry.Link, entry.ContactLink, entry.ContactLabel,
		entry.Pills, entry.SortOrder,
	)
	if err != nil {
		return dberr.Wrap(fmt.Errorf("directory_upsert_crew_failed: %w", err), "upsert")
	}
	return nil
}

// Delete removes the profile from whichever table holds it.
func (repository *PostgresRepository) Delete(ctx context.Context, id string) error {
	cast := schema.ContentCast
	tag, err := repository.pool.Exec(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, cast.Table, cast.ID), id)
	if err != nil {
		return dberr.Wrap(fmt.Errorf("directory_delete_cast_failed: %w", err), "delete")
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	crew := schema.ContentCrew
	tag, err = repository.pool.Exec(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, crew.Table, crew.ID), id)
	if err != nil {
		return dberr.Wrap(fmt.Errorf("directory_delete_crew_failed: %w", err), "delete")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Directory entry")
	}
	return nil
}
