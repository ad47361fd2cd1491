// Copyright (c) 2026 Starting Out OK. All rights reserved.

package resources

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

// resourcesFile is the content file name under the content directory.
const resourcesFile = "resources.json"

// # JSON Content Repository

// JSONRepository implements [Repository] over a single resources.json
// content file keyed by section name. The section key overrides any
// section field inside an entry.
type JSONRepository struct {
	path string
	mu   sync.Mutex
}

// NewJSONRepository creates the content-file implementation rooted at dir.
func NewJSONRepository(dir string) (*JSONRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("resources_content_dir_failed: %w", err)
	}
	return &JSONRepository{path: filepath.Join(dir, resourcesFile)}, nil
}

// List flattens the section map. A missing file is an empty page.
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

// FindByID scans all sections for the resource.
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
	return nil, apperr.NotFound("Resource")
}

// Upsert replaces the resource under entry.ID, moving it between sections
// when the section changed.
func (repository *JSONRepository) Upsert(ctx context.Context, entry *Entry) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	bySection, err := repository.load()
	if err != nil {
		return err
	}

	removeByID(bySection, entry.ID)
	section := entry.EffectiveSection()
	bySection[section] = append(bySection[section], *entry)
	return repository.save(bySection)
}

// Delete removes the resource wherever it lives.
func (repository *JSONRepository) Delete(ctx context.Context, id string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	bySection, err := repository.load()
	if err != nil {
		return err
	}
	if !removeByID(bySection, id) {
		return apperr.NotFound("Resource")
	}
	return repository.save(bySection)
}

func (repository *JSONRepository) load() (map[string][]Entry, error) {
	data, err := os.ReadFile(repository.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string][]Entry{}, nil
		}
		return nil, fmt.Errorf("resources_content_read_failed: %w", err)
	}

	bySection := map[string][]Entry{}
	if err := json.Unmarshal(data, &bySection); err != nil {
		return nil, fmt.Errorf("resources_content_decode_failed: %w", err)
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
		return fmt.Errorf("resources_content_encode_failed: %w", err)
	}
	data = append(data, '\n')

	tmp := repository.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("resources_content_write_failed: %w", err)
	}
	if err := os.Rename(tmp, repository.path); err != nil {
		return fmt.Errorf("resources_content_rename_failed: %w", err)
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
