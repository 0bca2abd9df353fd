package service

import "strings"

// Slugify maps a title to its URL identifier: each whitespace-delimited
// token lowercased, joined with hyphens. Pure and idempotent; it does not
// attempt uniqueness, the slug column's unique index handles collisions.
func Slugify(title string) string {
	return strings.ToLower(strings.Join(strings.Fields(title), "-"))
}
