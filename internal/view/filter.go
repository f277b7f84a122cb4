// Package view derives the displayed subset of a collection. Everything
// here is pure and synchronous: callable on every change to the collection
// or the search term, no I/O, no hidden scheduling.
package view

import "strings"

type Named interface {
	DisplayName() string
}

// Filter keeps the entities whose display name contains the term,
// case-insensitively. An empty term keeps everything; an empty result is a
// valid displayable state.
func Filter[E Named](items []E, term string) []E {
	needle := strings.ToLower(term)
	out := make([]E, 0, len(items))
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.DisplayName()), needle) {
			out = append(out, it)
		}
	}
	return out
}

// Reverse returns a reversed copy of the already-sorted sequence. It does
// not re-sort, and applying it twice restores the input.
func Reverse[E any](items []E) []E {
	out := make([]E, len(items))
	for i, it := range items {
		out[len(items)-1-i] = it
	}
	return out
}
