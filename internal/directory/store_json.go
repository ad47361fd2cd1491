// Copyright (c) 2026 Starting Out OK. All rights reserved.

package directory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/mickey-farmer/startingOutOK/internal/platform/apperr"
)

// directoryFile is the content file name under the content directory.
const directoryFile = "directory.json"

// # JSON Content Repository

// JSONRepository implements [Repository] over a single directory.json
// content file keyed by section name. The section key is authoritative:
// it overrides whatever section field an entry carries, so files written
// by the older tooling (entries without a section field) read correctly.
type JSONRepository struct {
	path string
	mu   sync.Mutex
}

// NewJSONRepository creates the content-file implementation rooted at dir.
func NewJSONRepository(dir string) (*JSONRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("directory_content_dir_failed: %w", err)
	}
	return &JSONRepository{path: filepath.Join(dir, directoryFile)}, nil
}

// List flattens the section map. A missing file is an empty directory.
func (repository *JSONRepository) List(ctx context.Context) ([]Entry, error) {
	bySection, err := repository.load()
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, 64)
	for section, list := range bySection {
		for _, entry := range list {
			entry.Section = section
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

// FindByID scans all sections for the profile.
func (repository *JSONRepository) FindByID(ctx context.Context, id string) (*Entry, error) {
	entries, err := repository.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		if entries[i].ID == id {
			return &entries[i], nil
		}
	}
	return nil, apperr.NotFound("Directory entry")
}

// Upsert replaces the profile under entry.ID, moving it between sections
// when the section changed.
func (repository *JSONRepository) Upsert(ctx context.Context, entry *Entry) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	bySection, err := repository.load()
	if err != nil {
		return err
	}

	removeByID(bySection, entry.ID)
	bySection[entry.Section] = append(bySection[entry.Section], *entry)
	return repository.save(bySection)
}

// Delete removes the profile wherever it lives.
func (repository *JSONRepository) Delete(ctx context.Context, id string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	bySection, err := repository.load()
	if err != nil {
		return err
	}
	if !removeByID(bySection, id) {
		return apperr.NotFound("Directory entry")
	}
	return repository.save(bySection)
}

func (repository *JSONRepository) load() (map[string][]Entry, error) {
	data, err := os.ReadFile(repository.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string][]Entry{}, nil
		}
		return nil, fmt.Errorf("directory_content_read_failed: %w", err)
	}

	bySection := map[string][]Entry{}
	if err := json.Unmarshal(data, &bySection); err != nil {
		return nil, fmt.Errorf("directory_content_decode_failed: %w", err)
	}
	return bySection, nil
}

func (repository *JSONRepository) save(bySection map[string][]Entry) error {
	for section, list := range bySection {
		for i := range list {
			list[i].Section = section
		}
		if len(list) == 0 {
			delete(bySection, section)
		}
	}

	data, err := json.MarshalIndent(bySection, "", "  ")
	if err != nil {
		return fmt.Errorf("directory_content_encode_failed: %w", err)
	}
	data = append(data, '\n')

	tmp := repository.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("directory_content_write_failed: %w", err)
	}
	if err := os.Rename(tmp, repository.path); err != nil {
		return fmt.Errorf("directory_content_rename_failed: %w", err)
	}
	return nil
}

// removeByID drops the entry with the given ID from whichever section
// holds it, reporting whether anything was removed.
func removeByID(bySection map[string][]Entry, id string) bool {
	for section, list := range bySection {
		for i := range list {
			if list[i].ID == id {
				bySection[section] = append(list[:i], list[i+1:]...)
				return true
			}
		}
	}
	return false
}
