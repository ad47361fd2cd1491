// Copyright (c) 2026 Starting Out OK. All rights reserved.

package casting

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/mickey-farmer/startingOutOK/pkg/pointer"
)

// # Listing Normalizer

// Partition splits a snapshot into active and archived entries. Every
// entry lands in exactly one bucket; the relative order within each bucket
// is the input order.
func Partition(list []Entry) (active, archived []Entry) {
	active = make([]Entry, 0, len(list))
	archived = make([]Entry, 0)
	for _, e := range list {
		if e.Archived.Bool() {
			archived = append(archived, e)
		} else {
			active = append(active, e)
		}
	}
	return active, archived
}

// ExcludeDeleted drops soft-deleted entries. Storage backends already
// filter these at the read boundary; this exists for snapshots assembled
// from raw content files.
func ExcludeDeleted(list []Entry) []Entry {
	kept := make([]Entry, 0, len(list))
	for _, e := range list {
		if !e.Deleted.Bool() {
			kept = append(kept, e)
		}
	}
	return kept
}

// SortByDateDesc returns a copy sorted newest-first by posting date.
// Entries with a missing or unparseable date sort as the epoch and land at
// the end; ties keep their input order.
func SortByDateDesc(list []Entry) []Entry {
	sorted := make([]Entry, len(list))
	copy(sorted, list)
	sort.SliceStable(sorted, func(i, j int) bool {
		return dateSortKey(sorted[i].Date) > dateSortKey(sorted[j].Date)
	})
	return sorted
}

// SortByDeadlineAsc returns a copy sorted soonest-first by submission
// deadline. Entries without a deadline sort first; ties keep their input
// order.
func SortByDeadlineAsc(list []Entry) []Entry {
	sorted := make([]Entry, len(list))
	copy(sorted, list)
	sort.SliceStable(sorted, func(i, j int) bool {
		return deadlineSortKey(sorted[i].AuditionDeadline) < deadlineSortKey(sorted[j].AuditionDeadline)
	})
	return sorted
}

// dateSortKey maps a posting date to epoch milliseconds; missing or
// malformed dates map to zero.
func dateSortKey(date *string) int64 {
	raw := strings.TrimSpace(pointer.Val(date))
	if raw == "" {
		return 0
	}
	for _, layout := range []string{deadlineDateLayout, time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UnixMilli()
		}
	}
	return 0
}

// deadlineSortKey maps "2006-01-02" to the integer 20060102; missing or
// malformed deadlines map to zero so undated entries surface first, where
// an editor will notice them.
func deadlineSortKey(deadline *string) int {
	raw := strings.ReplaceAll(strings.TrimSpace(pointer.Val(deadline)), "-", "")
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}

// # Summaries

// SummaryOf projects an entry to its list-view shape, deriving the badge
// labels. Expiry is evaluated against now.
func SummaryOf(e *Entry, now time.Time) Summary {
	return Summary{
		Slug:             e.Slug,
		Title:            e.Title,
		Date:             e.Date,
		AuditionDeadline: e.AuditionDeadline,
		Location:         e.Location,
		Pay:              e.Pay,
		Type:             e.Type,
		Union:            e.Union,
		Under18:          e.Under18,
		RoleCount:        len(e.Roles),
		Archived:         e.Archived.Bool(),
		UnionLabel:       UnionLabel(e),
		PayCategory:      PayCategoryOf(e),
		Expiring:         ExpiresWithinWeek(e.AuditionDeadline, now),
	}
}

// Summaries projects a slice of entries, preserving order.
func Summaries(list []Entry, now time.Time) []Summary {
	out := make([]Summary, len(list))
	for i := range list {
		out[i] = SummaryOf(&list[i], now)
	}
	return out
}
