// Copyright (c) 2026 Starting Out OK. All rights reserved.

package casting

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mickey-farmer/startingOutOK/internal/platform/apperr"
	"github.com/mickey-farmer/startingOutOK/internal/platform/database/schema"
	"github.com/mickey-farmer/startingOutOK/internal/platform/dberr"
)

// # Postgres Repository

// PostgresRepository implements [Repository] against the
// content.casting_call table using pgx. Roles are stored as a JSONB
// document; the deleted flag is a column filtered out of every read.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates the Postgres implementation.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

/*
List returns every non-deleted entry ordered newest-first by posting date,
undated entries last.

Returns:
  - []Entry: Full records, roles hydrated from JSONB.
  - error: Wrapped database execution failures.
*/
func (repository *PostgresRepository) List(ctx context.Context) ([]Entry, error) {
	t := schema.ContentCastingCall
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = FALSE
		ORDER BY %s DESC NULLS LAST, %s ASC`,
		strings.Join(t.Columns(), ", "),
		t.Table, t.Deleted, t.Date, t.Slug,
	)

	rows, err := repository.pool.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(fmt.Errorf("casting_list_failed: %w", err), "list")
	}
	defer rows.Close()

	entries := make([]Entry, 0, 64)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("casting_list_scan_failed: %w", err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(fmt.Errorf("casting_list_rows_failed: %w", err), "list")
	}
	return entries, nil
}

// FindBySlug returns one entry, or apperr.NotFound when the slug is absent
// or points at a soft-deleted record.
func (repository *PostgresRepository) FindBySlug(ctx context.Context, slug string) (*Entry, error) {
	t := schema.ContentCastingCall
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1 AND %s = FALSE`,
		strings.Join(t.Columns(), ", "),
		t.Table, t.Slug, t.Deleted,
	)

	entry, err := scanEntry(repository.pool.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Casting call")
		}
		return nil, dberr.Wrap(fmt.Errorf("casting_find_by_slug_failed: %w", err), "find")
	}
	return entry, nil
}

/*
Upsert creates or replaces the record stored under entry.Slug.

The whole row is written on conflict: the admin editor submits complete
entries, never partial patches.
*/
func (repository *PostgresRepository) Upsert(ctx context.Context, entry *Entry) error {
	rolesJSON, err := json.Marshal(entry.Roles)
	if err != nil {
		return fmt.Errorf("casting_upsert_marshal_roles_failed: %w", err)
	}

	t := schema.ContentCastingCall
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25)
		ON CONFLICT (%s) DO UPDATE SET
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = NOW()`,
		t.Table, strings.Join(t.Columns(), ", "),
		t.Slug,
		t.Title, t.Title, t.Date, t.Date, t.AuditionDeadline, t.AuditionDeadline, t.Location, t.Location,
		t.Pay, t.Pay, t.Type, t.Type, t.Union, t.Union, t.Under18, t.Under18,
		t.PayMin, t.PayMin, t.PayMax, t.PayMax, t.AgeRange, t.AgeRange, t.AgeMin, t.AgeMin,
		t.AgeMax, t.AgeMax, t.Gender, t.Gender, t.Ethnicity, t.Ethnicity, t.Archived, t.Archived,
		t.Director, t.Director, t.FilmingDates, t.FilmingDates, t.Description, t.Description, t.SubmissionDetails, t.SubmissionDetails,
		t.SubmissionLink, t.SubmissionLink, t.SourceLink, t.SourceLink, t.Exclusive, t.Exclusive, t.Roles, t.Roles,
		t.UpdatedAt,
	)

	_, err = repository.pool.Exec(ctx, query,
		entry.Slug, entry.Title, entry.Date, entry.AuditionDeadline, entry.Location, entry.Pay,
		entry.Type, entry.Union, entry.Under18, entry.PayMin, entry.PayMax, entry.AgeRange,
		entry.AgeMin, entry.AgeMax, entry.Gender, entry.Ethnicity, entry.Archived.Bool(),
		entry.Director, entry.FilmingDates, entry.Description, entry.SubmissionDetails,
		entry.SubmissionLink, entry.SourceLink, entry.Exclusive, rolesJSON,
	)
	if err != nil {
		return dberr.Wrap(fmt.Errorf("casting_upsert_failed: %w", err), "upsert")
	}
	return nil
}

// SetArchived flips the archived flag on one live entry.
func (repository *PostgresRepository) SetArchived(ctx context.Context, slug string, archived bool) error {
	t := schema.ContentCastingCall
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = NOW()
		WHERE %s = $1 AND %s = FALSE`,
		t.Table, t.Archived, t.UpdatedAt, t.Slug, t.Deleted,
	)

	tag, err := repository.pool.Exec(ctx, query, slug, archived)
	if err != nil {
		return dberr.Wrap(fmt.Errorf("casting_set_archived_failed: %w", err), "archive")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Casting call")
	}
	return nil
}

// SoftDelete marks an entry deleted; the row stays for audit.
func (repository *PostgresRepository) SoftDelete(ctx context.Context, slug string) error {
	t := schema.ContentCastingCall
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = TRUE, %s = NOW()
		WHERE %s = $1 AND %s = FALSE`,
		t.Table, t.Deleted, t.UpdatedAt, t.Slug, t.Deleted,
	)

	tag, err := repository.pool.Exec(ctx, query, slug)
	if err != nil {
		return dberr.Wrap(fmt.Errorf("casting_soft_delete_failed: %w", err), "delete")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Casting call")
	}
	return nil
}

/*
ArchivePastDeadline archives every active entry whose deadline date is
strictly before now's calendar day. Deadlines are compared as "2006-01-02"
strings, which order the same as the dates they encode.

Returns:
  - int: Number of rows archived.
  - error: Wrapped database execution failures.
*/
func (repository *PostgresRepository) ArchivePastDeadline(ctx context.Context, now time.Time) (int, error) {
	today := now.Format(deadlineDateLayout)

	t := schema.ContentCastingCall
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = TRUE, %s = NOW()
		WHERE %s = FALSE AND %s = FALSE
		  AND %s IS NOT NULL AND %s <> '' AND %s < $1`,
		t.Table, t.Archived, t.UpdatedAt,
		t.Archived, t.Deleted,
		t.AuditionDeadline, t.AuditionDeadline, t.AuditionDeadline,
	)

	tag, err := repository.pool.Exec(ctx, query, today)
	if err != nil {
		return 0, dberr.Wrap(fmt.Errorf("casting_archive_past_deadline_failed: %w", err), "archive")
	}
	return int(tag.RowsAffected()), nil
}

// scanEntry hydrates one row in Columns() order.
func scanEntry(row pgx.Row) (*Entry, error) {
	entry := &Entry{}
	var archived bool
	var rolesJSON []byte

	err := row.Scan(
		&entry.Slug,
		&entry.Title,
		&entry.Date,
		&entry.AuditionDeadline,
		&entry.Location,
		&entry.Pay,
		&entry.Type,
		&entry.Union,
		&entry.Under18,
		&entry.PayMin,
		&entry.PayMax,
		&entry.AgeRange,
		&entry.AgeMin,
		&entry.AgeMax,
		&entry.Gender,
		&entry.Ethnicity,
		&archived,
		&entry.Director,
		&entry.FilmingDates,
		&entry.Description,
		&entry.SubmissionDetails,
		&entry.SubmissionLink,
		&entry.SourceLink,
		&entry.Exclusive,
		&rolesJSON,
	)
	if err != nil {
		return nil, err
	}

	entry.Archived = ArchivedFlag(archived)
	if len(rolesJSON) > 0 {
		if err := json.Unmarshal(rolesJSON, &entry.Roles); err != nil {
			return nil, fmt.Errorf("casting_scan_roles_failed: %w", err)
		}
	}
	return entry, nil
}
