// Copyright (c) 2026 Starting Out OK. All rights reserved.

/*
Package resources implements the community resources page: agencies,
classes, studios and vendors grouped into a fixed section order.

Two sections get special treatment: "Agencies" sub-groups by city (cities
alphabetical, agencies by title within each), and "Classes & Workshops"
orders by a fixed subcategory sequence before title.
*/
package resources

import (
	"sort"
	"strings"
)

// SectionOrder is the canonical section sequence for the resources page.
var SectionOrder = []string{
	"Agencies", "Classes & Workshops", "Networking", "Photographers", "Props",
	"Stunts", "Studios & Sound Stages", "Theaters", "Vendors",
}

// SubcategoryOrder sequences "Classes & Workshops" subcategories;
// unlisted subcategories sort last, then title breaks ties.
var SubcategoryOrder = []string{"Business", "On-Camera Film", "Stage", "Stunts", "Voice Over"}

const (
	sectionAgencies = "Agencies"
	sectionClasses  = "Classes & Workshops"
)

// Entry is one community resource.
type Entry struct {
	ID          string   `json:"id"`
	Section     string   `json:"section"`
	Title       string   `json:"title"`
	Type        string   `json:"type,omitempty"`
	Subcategory string   `json:"subcategory,omitempty"`
	Description string   `json:"description,omitempty"`
	Location    string   `json:"location,omitempty"`
	Link        string   `json:"link,omitempty"`
	IMDBLink    string   `json:"imdbLink,omitempty"`
	Vendor      bool     `json:"vendor,omitempty"`
	Pills       []string `json:"pills,omitempty"`
	Schedule    string   `json:"schedule,omitempty"`
	SortOrder   int      `json:"sortOrder,omitempty"`
}

// EffectiveSection resolves the grouping section: an entry without one
// falls into "Vendors" when flagged as a vendor, else "Resources".
func (e *Entry) EffectiveSection() string {
	if e.Section != "" {
		return e.Section
	}
	if e.Vendor {
		return "Vendors"
	}
	return "Resources"
}

// Section is one rendered resources section. CityGroups is populated only
// for "Agencies"; other sections use the flat Entries slice.
type Section struct {
	Name       string      `json:"name"`
	Entries    []Entry     `json:"entries,omitempty"`
	CityGroups []CityGroup `json:"cityGroups,omitempty"`
}

// CityGroup is the per-city sub-grouping inside the Agencies section.
type CityGroup struct {
	City    string  `json:"city"`
	Entries []Entry `json:"entries"`
}

// Filter holds the visitor's resource filters. The subcategory filter
// only applies when the section filter selects "Classes & Workshops",
// matching the page's dependent dropdown.
type Filter struct {
	Section     string
	Subcategory string
	Location    string
}

// Matches applies the resource predicates.
func (f Filter) Matches(e *Entry) bool {
	if f.Section != "" && e.EffectiveSection() != f.Section {
		return false
	}
	if f.Section == sectionClasses && f.Subcategory != "" && e.Subcategory != f.Subcategory {
		return false
	}
	if f.Location != "" && e.Location != f.Location {
		return false
	}
	return true
}

// GroupBySection arranges entries into the canonical section order,
// applying the Agencies city grouping and the Classes subcategory order.
// Sections with no entries are omitted; unknown sections append after the
// canonical ones, alphabetically.
func GroupBySection(entries []Entry) []Section {
	bySection := make(map[string][]Entry)
	for _, e := range entries {
		section := e.EffectiveSection()
		bySection[section] = append(bySection[section], e)
	}

	known := make(map[string]bool, len(SectionOrder))
	names := make([]string, 0, len(bySection))
	for _, name := range SectionOrder {
		known[name] = true
		if _, ok := bySection[name]; ok {
			names = append(names, name)
		}
	}
	extras := make([]string, 0)
	for name := range bySection {
		if !known[name] {
			extras = append(extras, name)
		}
	}
	sort.Strings(extras)
	names = append(names, extras...)

	sections := make([]Section, 0, len(names))
	for _, name := range names {
		list := bySection[name]
		if name == sectionAgencies {
			sections = append(sections, Section{Name: name, CityGroups: groupByCity(list)})
			continue
		}
		sections = append(sections, Section{Name: name, Entries: sortSection(name, list)})
	}
	return sections
}

// groupByCity splits agencies by location ("Other" when unset), cities
// alphabetical, titles alphabetical within each.
func groupByCity(list []Entry) []CityGroup {
	byCity := make(map[string][]Entry)
	for _, e := range list {
		city := e.Location
		if city == "" {
			city = "Other"
		}
		byCity[city] = append(byCity[city], e)
	}

	cities := make([]string, 0, len(byCity))
	for city := range byCity {
		cities = append(cities, city)
	}
	sort.Strings(cities)

	groups := make([]CityGroup, 0, len(cities))
	for _, city := range cities {
		items := byCity[city]
		sort.SliceStable(items, func(i, j int) bool {
			return strings.ToLower(items[i].Title) < strings.ToLower(items[j].Title)
		})
		groups = append(groups, CityGroup{City: city, Entries: items})
	}
	return groups
}

func sortSection(name string, list []Entry) []Entry {
	sorted := make([]Entry, len(list))
	copy(sorted, list)
	sort.SliceStable(sorted, func(i, j int) bool {
		if name == sectionClasses {
			if a, b := subcategoryRank(sorted[i].Subcategory), subcategoryRank(sorted[j].Subcategory); a != b {
				return a < b
			}
		}
		return strings.ToLower(sorted[i].Title) < strings.ToLower(sorted[j].Title)
	})
	return sorted
}

func subcategoryRank(subcategory string) int {
	for i, name := range SubcategoryOrder {
		if name == subcategory {
			return i
		}
	}
	return len(SubcategoryOrder)
}
