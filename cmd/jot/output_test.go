package main

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/jot/pkg/core"
)

func testNotes() []core.Note {
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return []core.Note{
		{ID: "b", Title: "Standup", Content: "demo", Tags: []string{"work", "urgent"}, CreatedAt: ts, UpdatedAt: ts},
		{ID: "a", Title: "Plain", Tags: []string{}, CreatedAt: ts, UpdatedAt: ts},
	}
}

func TestWriteNotes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeNotes(&buf, testNotes(), false))
	assert.Equal(t, "b  Standup  #work #urgent\na  Plain\n", buf.String())

	buf.Reset()
	require.NoError(t, writeNotes(&buf, nil, false))
	assert.Equal(t, "No notes yet\n", buf.String())
}

func TestWriteNotes_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeNotes(&buf, testNotes(), true))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "b", decoded[0]["id"])
	assert.Equal(t, "2024-05-01T12:00:00Z", decoded[0]["createdAt"])
	assert.Equal(t, []any{"work", "urgent"}, decoded[0]["tags"])
}

func TestWriteNote(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeNote(&buf, testNotes()[0], false))
	out := buf.String()
	assert.Contains(t, out, "Standup\n\ndemo\n")
	assert.Contains(t, out, "tags: work, urgent\n")
	assert.Contains(t, out, "updated: ")
}

func TestFormatTagLine(t *testing.T) {
	assert.Equal(t, "-", formatTagLine(nil))
	assert.Equal(t, "#a #b", formatTagLine([]string{"a", "b"}))
}

func TestPrefill(t *testing.T) {
	current := core.Note{ID: "x", Title: "Old", Content: "old body", Tags: []string{"a", "b"}}

	cmd := &cobra.Command{}
	cmd.Flags().String("title", "", "")
	cmd.Flags().String("content", "", "")
	cmd.Flags().String("tags", "", "")

	gotTitle, gotContent, gotTags := prefill(current, cmd)
	assert.Equal(t, "Old", gotTitle)
	assert.Equal(t, "old body", gotContent)
	assert.Equal(t, "a, b", gotTags)

	require.NoError(t, cmd.Flags().Set("content", ""))
	require.NoError(t, cmd.Flags().Set("tags", "c"))

	gotTitle, gotContent, gotTags = prefill(current, cmd)
	assert.Equal(t, "Old", gotTitle)
	assert.Equal(t, "", gotContent, "explicitly cleared content")
	assert.Equal(t, "c", gotTags)
}
