// Copyright (c) 2026 Starting Out OK. All rights reserved.

/*
Package directory implements the cast & crew directory: local talent and
crew profiles grouped into a fixed canonical section order, searchable by
name, section and location.

Talent profiles live in their own store table with richer fields (contact
email, Instagram, screen credits); crew profiles carry a section and a
manual sort order. Both surface through one [Entry] shape — Talent is just
the section the cast store feeds.
*/
package directory

import (
	"encoding/json"
	"sort"
	"strings"
)

// TalentSection is the section name the cast store populates.
const TalentSection = "Talent"

// SectionOrder is the canonical section sequence for the directory page.
// Sections absent from a snapshot are skipped; unknown sections append
// after the canonical ones, alphabetically.
var SectionOrder = []string{
	"Camera Operators", "Costume", "Directors", "Editors", "Gaffer", "Grips",
	"Hair & Make-Up", "Intimacy Coordinators", "PAs", "Photographers", "Production Design",
	"Props", "Script Supervisor", "Sound", "Stunt Coordinators", "Talent", "Writers",
}

// Entry is one directory profile.
//
// Email, Instagram, TMDBPersonID, PhotoURL and Credits are populated only
// for Talent entries; SortOrder only for crew.
type Entry struct {
	ID           string          `json:"id"`
	Section      string          `json:"section"`
	Name         string          `json:"name"`
	Pronouns     string          `json:"pronouns,omitempty"`
	Description  string          `json:"description,omitempty"`
	Location     string          `json:"location,omitempty"`
	Link         string          `json:"link,omitempty"`
	ContactLink  string          `json:"contactLink,omitempty"`
	ContactLabel string          `json:"contactLabel,omitempty"`
	Email        string          `json:"email,omitempty"`
	Instagram    string          `json:"instagram,omitempty"`
	Pills        []string        `json:"pills,omitempty"`
	TMDBPersonID *int            `json:"tmdbPersonId,omitempty"`
	PhotoURL     string          `json:"photoUrl,omitempty"`
	Credits      json.RawMessage `json:"credits,omitempty"`
	SortOrder    int             `json:"sortOrder,omitempty"`
}

// IsTalent reports whether the entry belongs to the cast store.
func (e *Entry) IsTalent() bool { return e.Section == TalentSection }

// Section is one rendered directory section.
type Section struct {
	Name    string  `json:"name"`
	Entries []Entry `json:"entries"`
}

// Filter holds the visitor's directory filters. Empty fields impose no
// constraint.
type Filter struct {
	Section  string
	Location string
	Search   string
}

// Matches applies the directory predicates: exact section, exact
// location, and a case-insensitive substring search over name,
// description and section.
func (f Filter) Matches(e *Entry) bool {
	if f.Section != "" && e.Section != f.Section {
		return false
	}
	if f.Location != "" && e.Location != f.Location {
		return false
	}
	if q := strings.ToLower(strings.TrimSpace(f.Search)); q != "" {
		if !strings.Contains(strings.ToLower(e.Name), q) &&
			!strings.Contains(strings.ToLower(e.Description), q) &&
			!strings.Contains(strings.ToLower(e.Section), q) {
			return false
		}
	}
	return true
}

// GroupBySection arranges entries into the canonical section order.
// Within a section, crew sorts by sort order then name, talent by name;
// name comparisons are case-insensitive.
func GroupBySection(entries []Entry) []Section {
	bySection := make(map[string][]Entry)
	for _, e := range entries {
		bySection[e.Section] = append(bySection[e.Section], e)
	}

	known := make(map[string]bool, len(SectionOrder))
	ordered := make([]Section, 0, len(bySection))
	for _, name := range SectionOrder {
		known[name] = true
		if list, ok := bySection[name]; ok {
			ordered = append(ordered, Section{Name: name, Entries: sortSection(list)})
		}
	}

	extras := make([]string, 0)
	for name := range bySection {
		if !known[name] {
			extras = append(extras, name)
		}
	}
	sort.Strings(extras)
	for _, name := range extras {
		ordered = append(ordered, Section{Name: name, Entries: sortSection(bySection[name])})
	}
	return ordered
}

func sortSection(list []Entry) []Entry {
	sorted := make([]Entry, len(list))
	copy(sorted, list)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].SortOrder != sorted[j].SortOrder {
			return sorted[i].SortOrder < sorted[j].SortOrder
		}
		return strings.ToLower(sorted[i].Name) < strings.ToLower(sorted[j].Name)
	})
	return sorted
}
