package core

import (
	"slices"
	"strings"
)

// DistinctTags returns every tag used by notes, each once, in the order it is
// first seen walking the collection.
func DistinctTags(notes []Note) []string {
	seen := make(map[string]struct{})
	tags := []string{}
	for _, n := range notes {
		for _, t := range n.Tags {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			tags = append(tags, t)
		}
	}
	return tags
}

// Visible returns the notes matching both the search query and the selected
// tags, in input order.
//
// A note matches the query when the query is empty or is found,
// case-insensitively, in its title or content. It matches the selection when
// the selection is empty or every selected tag is on the note.
func Visible(notes []Note, query string, selectedTags []string) []Note {
	q := strings.ToLower(query)
	out := []Note{}
	for _, n := range notes {
		if matchesQuery(n, q) && matchesTags(n, selectedTags) {
			out = append(out, n)
		}
	}
	return out
}

func matchesQuery(n Note, lowered string) bool {
	if lowered == "" {
		return true
	}
	return strings.Contains(strings.ToLower(n.Title), lowered) ||
		strings.Contains(strings.ToLower(n.Content), lowered)
}

func matchesTags(n Note, selected []string) bool {
	for _, t := range selected {
		if !n.HasTag(t) {
			return false
		}
	}
	return true
}

// Filter is the ephemeral view state driving Visible: the search text and
// the tags currently selected. It is never persisted.
type Filter struct {
	Query string
	Tags  []string
}

// Toggle selects tag if it is not selected and deselects it otherwise.
func (f *Filter) Toggle(tag string) {
	if i := slices.Index(f.Tags, tag); i >= 0 {
		f.Tags = slices.Delete(f.Tags, i, i+1)
		return
	}
	f.Tags = append(f.Tags, tag)
}

// Selected reports whether tag is part of the selection.
func (f Filter) Selected(tag string) bool {
	return slices.Contains(f.Tags, tag)
}

// Clear drops the tag selection. The search text is kept.
func (f *Filter) Clear() {
	f.Tags = nil
}

// Apply runs Visible with the filter's state.
func (f Filter) Apply(notes []Note) []Note {
	return Visible(notes, f.Query, f.Tags)
}
