package core_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/jot/pkg/core"
)

func TestParseTags(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"", []string{}},
		{" , ,", []string{}},
		{"a", []string{"a"}},
		{" a, b ,, a ", []string{"a", "b", "a"}},
		{"two words, x", []string{"two words", "x"}},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, core.ParseTags(tc.raw), "raw %q", tc.raw)
	}
}

func TestFormatTags(t *testing.T) {
	assert.Equal(t, "a, b", core.FormatTags([]string{"a", "b"}))
	assert.Equal(t, []string{"a", "b"}, core.ParseTags(core.FormatTags([]string{"a", "b"})))
}

func TestNote_CloneAndEqual(t *testing.T) {
	now := time.Now()
	n := core.Note{ID: "x", Title: "t", Tags: []string{"a"}, CreatedAt: now, UpdatedAt: now}

	c := n.Clone()
	assert.True(t, n.Equal(c))

	c.Tags[0] = "b"
	assert.Equal(t, "a", n.Tags[0])
	assert.False(t, n.Equal(c))

	utc := n.Clone()
	utc.CreatedAt = now.UTC()
	assert.True(t, n.Equal(utc), "equal instants in different locations")
}

func TestValidTitle(t *testing.T) {
	assert.True(t, core.ValidTitle("x"))
	assert.True(t, core.ValidTitle("  x "))
	assert.False(t, core.ValidTitle(""))
	assert.False(t, core.ValidTitle(" \t\n"))
}

func TestEvent_String(t *testing.T) {
	assert.Equal(t, "CREATE abc", core.Event{Type: core.EventCreate, ID: "abc"}.String())
	assert.Equal(t, "RELOAD", core.Event{Type: core.EventReload}.String())
}
