// Copyright (c) 2026 Starting Out OK. All rights reserved.

// Package query provides small helpers for comma-separated string values
// (query parameters, environment variables).
package query

import (
	"strings"
)

// StringSlice parses a single comma-separated string into a trimmed slice.
// Empty segments are dropped; an empty input returns nil.
func StringSlice(val string) []string {
	if val == "" {
		return nil
	}
	var res []string
	for _, v := range strings.Split(val, ",") {
		clean := strings.TrimSpace(v)
		if clean != "" {
			res = append(res, clean)
		}
	}
	return res
}
