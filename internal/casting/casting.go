// Copyright (c) 2026 Starting Out OK. All rights reserved.

/*
Package casting implements the casting-call catalogue: the listing
normalizer, the classification rules, and the filter engine, together with
the HTTP delivery layer and the storage backends (PostgreSQL or JSON
content files, optionally fronted by a Redis cache).

# Architecture

The engine itself (listing.go, classify.go, filter.go) is a set of pure
functions over in-memory snapshots. Records arrive read-only from a
[Repository]; the engine never mutates them — it only derives labels and
filters the working set. Malformed data degrades into a conservative,
visible classification (unknown pay reads as paid, unknown union as
Non-Union, unparseable dates sort as undated) rather than hiding the record
or failing the request.
*/
package casting

import (
	"bytes"
	"encoding/json"
)

// # Legacy Flags

// ArchivedFlag is a bool that tolerates the legacy string encoding "true"
// produced by one of the historical data paths. Any other value reads as
// not archived.
type ArchivedFlag bool

// UnmarshalJSON implements [json.Unmarshaler].
func (f *ArchivedFlag) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*f = ArchivedFlag(b)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = s == "true"
		return nil
	}
	// Unknown shape: treat as not archived, never fail the record.
	*f = false
	return nil
}

// MarshalJSON always emits a native boolean; the string form is read-only
// compatibility.
func (f ArchivedFlag) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(f))
}

// Bool returns the flag as a plain bool.
func (f ArchivedFlag) Bool() bool { return bool(f) }

// DeletedFlag is a bool that tolerates the legacy string encoding "yes"
// used as a soft-delete marker by one of the historical data paths.
type DeletedFlag bool

// UnmarshalJSON implements [json.Unmarshaler].
func (f *DeletedFlag) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*f = DeletedFlag(b)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = s == "yes"
		return nil
	}
	*f = false
	return nil
}

// MarshalJSON always emits a native boolean.
func (f DeletedFlag) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(f))
}

// Bool returns the flag as a plain bool.
func (f DeletedFlag) Bool() bool { return bool(f) }

// # Domain Entities

// Role is one seeking profile within a casting-call entry.
//
// Numeric pay and age bounds are optional; when absent, classification and
// filtering fall back to the free-text pay and ageRange fields.
type Role struct {
	RoleTitle   string `json:"roleTitle,omitempty"`
	Description string `json:"description,omitempty"`
	Pay         string `json:"pay,omitempty"`
	PayMin      *int   `json:"payMin,omitempty"`
	PayMax      *int   `json:"payMax,omitempty"`
	AgeRange    string `json:"ageRange,omitempty"`
	AgeMin      *int   `json:"ageMin,omitempty"`
	AgeMax      *int   `json:"ageMax,omitempty"`
	Type        string `json:"type,omitempty"`
	Union       string `json:"union,omitempty"`
	Gender      string `json:"gender,omitempty"`
	Ethnicity   string `json:"ethnicity,omitempty"`
}

// Entry is a full casting-call record.
//
// Legacy single-role records store role attributes (pay bounds, age range,
// gender, ethnicity) directly on the entry with an empty Roles slice. The
// filter engine normalizes that shape into a one-element role list so all
// role-scoped predicates have a single code path.
type Entry struct {
	Slug             string  `json:"slug"`
	Title            string  `json:"title"`
	Date             *string `json:"date"`
	AuditionDeadline *string `json:"auditionDeadline"`
	Location         *string `json:"location"`
	Pay              *string `json:"pay"`
	Type             *string `json:"type"`
	Union            *string `json:"union"`
	Under18          bool    `json:"under18,omitempty"`

	// Legacy flat role attributes (entries without a roles array).
	PayMin    *int   `json:"payMin,omitempty"`
	PayMax    *int   `json:"payMax,omitempty"`
	AgeRange  string `json:"ageRange,omitempty"`
	AgeMin    *int   `json:"ageMin,omitempty"`
	AgeMax    *int   `json:"ageMax,omitempty"`
	Gender    string `json:"gender,omitempty"`
	Ethnicity string `json:"ethnicity,omitempty"`

	Archived ArchivedFlag `json:"archived,omitempty"`
	Deleted  DeletedFlag  `json:"deleted,omitempty"`

	Director          string `json:"director,omitempty"`
	FilmingDates      string `json:"filmingDates,omitempty"`
	Description       string `json:"description,omitempty"`
	SubmissionDetails string `json:"submissionDetails,omitempty"`
	SubmissionLink    string `json:"submissionLink,omitempty"`
	SourceLink        string `json:"sourceLink,omitempty"`
	Exclusive         bool   `json:"exclusive,omitempty"`
	Roles             []Role `json:"roles,omitempty"`
}

// Summary is one casting call as shown in a list view.
type Summary struct {
	Slug             string  `json:"slug"`
	Title            string  `json:"title"`
	Date             *string `json:"date"`
	AuditionDeadline *string `json:"auditionDeadline"`
	Location         *string `json:"location"`
	Pay              *string `json:"pay"`
	Type             *string `json:"type"`
	Union            *string `json:"union"`
	Under18          bool    `json:"under18"`
	RoleCount        int     `json:"roleCount"`
	Archived         bool    `json:"archived"`

	// Derived labels for list badges.
	UnionLabel  string      `json:"unionLabel"`
	PayCategory PayCategory `json:"payCategory"`
	Expiring    bool        `json:"expiring"`
}

// # Field Identifiers

// Field names used in validation errors for the admin editor.
const (
	FieldSlug             = "slug"
	FieldTitle            = "title"
	FieldDate             = "date"
	FieldAuditionDeadline = "auditionDeadline"
	FieldSubmissionLink   = "submissionLink"
	FieldSourceLink       = "sourceLink"
)

// EncodeContentFile renders an entry the way the content tree stores it:
// two-space indented JSON with a trailing newline, so admin writes produce
// the same bytes as the historical editor.
func EncodeContentFile(entry *Entry) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(entry); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
