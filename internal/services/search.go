package services

import "strings"

// containsFold reports whether sub occurs in s, case-insensitively. Every
// list screen filters with this predicate over its designated fields.
func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// matchesAny applies containsFold across a record's searchable fields.
func matchesAny(search string, fields ...string) bool {
	if search == "" {
		return true
	}
	for _, f := range fields {
		if containsFold(f, search) {
			return true
		}
	}
	return false
}
