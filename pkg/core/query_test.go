package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/jot/pkg/core"
)

func sampleNotes() []core.Note {
	return []core.Note{
		{ID: "1", Title: "Foo fighters", Content: "", Tags: []string{"music"}},
		{ID: "2", Title: "Standup", Content: "discuss FOOBAR rollout", Tags: []string{"work", "urgent"}},
		{ID: "3", Title: "Retro", Content: "went fine", Tags: []string{"work"}},
		{ID: "4", Title: "Taxes", Content: "", Tags: []string{"urgent", "home", "work"}},
		{ID: "5", Title: "Untagged", Content: "food", Tags: []string{}},
	}
}

func TestDistinctTags(t *testing.T) {
	assert.Equal(t, []string{"music", "work", "urgent", "home"}, core.DistinctTags(sampleNotes()))
	assert.Equal(t, []string{}, core.DistinctTags(nil))

	dupes := []core.Note{{Tags: []string{"a", "a", "b"}}, {Tags: []string{"b", "c"}}}
	assert.Equal(t, []string{"a", "b", "c"}, core.DistinctTags(dupes))
}

func TestVisible(t *testing.T) {
	notes := sampleNotes()

	tests := []struct {
		name     string
		query    string
		selected []string
		want     []string
	}{
		{"Empty Filter Returns All In Order", "", nil, []string{"1", "2", "3", "4", "5"}},
		{"Search Is Case Insensitive Over Title And Content", "Foo", nil, []string{"1", "2", "5"}},
		{"Search Upper Case Query", "FOOD", nil, []string{"5"}},
		{"Search Without Match", "nothing here", nil, []string{}},
		{"Single Tag", "", []string{"urgent"}, []string{"2", "4"}},
		{"Tag Intersection", "", []string{"work", "urgent"}, []string{"2", "4"}},
		{"Tag Intersection Order Independent", "", []string{"urgent", "home"}, []string{"4"}},
		{"Unknown Tag", "", []string{"nope"}, []string{}},
		{"Tags Are Case Sensitive", "", []string{"Work"}, []string{}},
		{"Search And Tags Combine", "retro", []string{"work"}, []string{"3"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ids(core.Visible(notes, tc.query, tc.selected)))
		})
	}
}

func TestFilter(t *testing.T) {
	f := core.Filter{Query: "standup"}

	f.Toggle("work")
	f.Toggle("urgent")
	assert.True(t, f.Selected("work"))
	assert.Equal(t, []string{"work", "urgent"}, f.Tags)

	f.Toggle("work")
	assert.False(t, f.Selected("work"))
	assert.Equal(t, []string{"urgent"}, f.Tags)

	assert.Equal(t, []string{"2"}, ids(f.Apply(sampleNotes())))

	f.Clear()
	assert.Empty(t, f.Tags)
	assert.Equal(t, "standup", f.Query, "clear keeps the search text")
}
