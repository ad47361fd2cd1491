// Copyright (c) 2026 Starting Out OK. All rights reserved.

package casting

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/mickey-farmer/startingOutOK/internal/platform/apperr"
)

// # JSON Content Repository

// JSONRepository implements [Repository] over a directory of per-entry
// content files (<slug>.json), the storage shape used when no database is
// configured. Writes go through a temp-file rename so a crash never leaves
// a half-written entry, and a mutex serializes them; reads re-scan the
// directory on every call, which is fine at this catalogue's size.
type JSONRepository struct {
	dir    string
	logger *slog.Logger
	mu     sync.Mutex
}

// NewJSONRepository creates the content-file implementation rooted at dir.
// The directory is created if absent.
func NewJSONRepository(dir string, logger *slog.Logger) (*JSONRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("casting_content_dir_failed: %w", err)
	}
	return &JSONRepository{dir: dir, logger: logger}, nil
}

// List reads every content file, skips unreadable ones with a warning, and
// returns the non-deleted entries newest-first by posting date.
func (repository *JSONRepository) List(ctx context.Context) ([]Entry, error) {
	files, err := os.ReadDir(repository.dir)
	if err != nil {
		return nil, fmt.Errorf("casting_content_scan_failed: %w", err)
	}

	entries := make([]Entry, 0, len(files))
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".json") {
			continue
		}
		entry, err := repository.readFile(file.Name())
		if err != nil {
			// One corrupt file must not take the whole listing down.
			repository.logger.Warn("skipping unreadable content file",
				slog.String("file", file.Name()),
				slog.String("error", err.Error()),
			)
			continue
		}
		if entry.Deleted.Bool() {
			continue
		}
		entries = append(entries, *entry)
	}
	return SortByDateDesc(entries), nil
}

// FindBySlug returns one entry, or apperr.NotFound when the file is absent
// or carries the deleted marker.
func (repository *JSONRepository) FindBySlug(ctx context.Context, slug string) (*Entry, error) {
	filename, err := contentFilename(slug)
	if err != nil {
		return nil, err
	}
	entry, err := repository.readFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperr.NotFound("Casting call")
		}
		return nil, fmt.Errorf("casting_content_read_failed: %w", err)
	}
	if entry.Deleted.Bool() {
		return nil, apperr.NotFound("Casting call")
	}
	return entry, nil
}

// Upsert writes the entry to <slug>.json, replacing any existing file.
func (repository *JSONRepository) Upsert(ctx context.Context, entry *Entry) error {
	filename, err := contentFilename(entry.Slug)
	if err != nil {
		return err
	}

	repository.mu.Lock()
	defer repository.mu.Unlock()
	return repository.writeFile(filename, entry)
}

// SetArchived rewrites one entry with the archived flag flipped.
func (repository *JSONRepository) SetArchived(ctx context.Context, slug string, archived bool) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	entry, err := repository.FindBySlug(ctx, slug)
	if err != nil {
		return err
	}
	entry.Archived = ArchivedFlag(archived)

	filename, err := contentFilename(slug)
	if err != nil {
		return err
	}
	return repository.writeFile(filename, entry)
}

// SoftDelete rewrites one entry with the deleted marker set. The file
// stays on disk so the record survives for audit.
func (repository *JSONRepository) SoftDelete(ctx context.Context, slug string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	entry, err := repository.FindBySlug(ctx, slug)
	if err != nil {
		return err
	}
	entry.Deleted = DeletedFlag(true)

	filename, err := contentFilename(slug)
	if err != nil {
		return err
	}
	return repository.writeFile(filename, entry)
}

// ArchivePastDeadline rewrites every active entry whose deadline has
// passed, returning how many were archived.
func (repository *JSONRepository) ArchivePastDeadline(ctx context.Context, now time.Time) (int, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	files, err := os.ReadDir(repository.dir)
	if err != nil {
		return 0, fmt.Errorf("casting_content_scan_failed: %w", err)
	}

	archived := 0
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".json") {
			continue
		}
		entry, err := repository.readFile(file.Name())
		if err != nil {
			repository.logger.Warn("skipping unreadable content file",
				slog.String("file", file.Name()),
				slog.String("error", err.Error()),
			)
			continue
		}
		if entry.Deleted.Bool() || entry.Archived.Bool() {
			continue
		}
		if !DeadlinePassed(entry.AuditionDeadline, now) {
			continue
		}

		entry.Archived = ArchivedFlag(true)
		if err := repository.writeFile(file.Name(), entry); err != nil {
			return archived, err
		}
		archived++
	}
	return archived, nil
}

// readFile loads and decodes one content file by base name.
func (repository *JSONRepository) readFile(filename string) (*Entry, error) {
	data, err := os.ReadFile(filepath.Join(repository.dir, filename))
	if err != nil {
		return nil, err
	}
	entry := &Entry{}
	if err := json.Unmarshal(data, entry); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filename, err)
	}
	return entry, nil
}

// writeFile encodes and atomically replaces one content file.
func (repository *JSONRepository) writeFile(filename string, entry *Entry) error {
	data, err := EncodeContentFile(entry)
	if err != nil {
		return fmt.Errorf("casting_content_encode_failed: %w", err)
	}

	path := filepath.Join(repository.dir, filename)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("casting_content_write_failed: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("casting_content_rename_failed: %w", err)
	}
	return nil
}

// contentFilename maps a slug to its content file, rejecting anything that
// could escape the content directory.
func contentFilename(slug string) (string, error) {
	if slug == "" || strings.ContainsAny(slug, "/\\") || strings.Contains(slug, "..") {
		return "", apperr.ValidationError("Invalid slug")
	}
	return slug + ".json", nil
}
