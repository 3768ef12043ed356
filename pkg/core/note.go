// Package core holds the note domain: the Note entity, the owned Store that
// mutates and persists the collection, and the pure query functions that
// derive tag sets and filtered views from it.
package core

import (
	"slices"
	"strings"
	"time"
)

// Note is the central entity of the domain.
// It is agnostic to storage format; the json/yaml tags describe the record
// layout used by the blob codecs.
type Note struct {
	ID        string    `json:"id" yaml:"id"`
	Title     string    `json:"title" yaml:"title"`
	Content   string    `json:"content" yaml:"content"`
	Tags      []string  `json:"tags" yaml:"tags"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" yaml:"updatedAt"`
}

// Clone returns a copy of n that shares no memory with it.
func (n Note) Clone() Note {
	c := n
	c.Tags = slices.Clone(n.Tags)
	if c.Tags == nil {
		c.Tags = []string{}
	}
	return c
}

// Equal reports whether two notes carry the same data.
func (n Note) Equal(o Note) bool {
	return n.ID == o.ID &&
		n.Title == o.Title &&
		n.Content == o.Content &&
		slices.Equal(n.Tags, o.Tags) &&
		n.CreatedAt.Equal(o.CreatedAt) &&
		n.UpdatedAt.Equal(o.UpdatedAt)
}

// HasTag reports whether the note carries tag (exact, case-sensitive match).
func (n Note) HasTag(tag string) bool {
	return slices.Contains(n.Tags, tag)
}

// ValidTitle reports whether title is acceptable for a stored note.
func ValidTitle(title string) bool {
	return strings.TrimSpace(title) != ""
}

// ParseTags turns the comma separated text typed by a user into a tag list.
// Pieces are trimmed and empty pieces dropped. Duplicates are kept as typed.
func ParseTags(raw string) []string {
	tags := []string{}
	for _, piece := range strings.Split(raw, ",") {
		if t := strings.TrimSpace(piece); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// FormatTags is the inverse of ParseTags for display and edit prefill.
func FormatTags(tags []string) string {
	return strings.Join(tags, ", ")
}

func cloneNotes(notes []Note) []Note {
	out := make([]Note, len(notes))
	for i, n := range notes {
		out[i] = n.Clone()
	}
	return out
}
