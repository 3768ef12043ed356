package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aretw0/jot/pkg/core"
)

const timeLayout = "2006-01-02 15:04:05"

func writeNotes(w io.Writer, notes []core.Note, asJSON bool) error {
	if asJSON {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(notes)
	}

	if len(notes) == 0 {
		_, err := fmt.Fprintln(w, "No notes yet")
		return err
	}

	for _, n := range notes {
		line := fmt.Sprintf("%s  %s", n.ID, n.Title)
		if len(n.Tags) > 0 {
			line += "  " + formatTagLine(n.Tags)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func writeNote(w io.Writer, n core.Note, asJSON bool) error {
	if asJSON {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(n)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", n.Title)
	if n.Content != "" {
		fmt.Fprintf(&b, "\n%s\n", n.Content)
	}
	if len(n.Tags) > 0 {
		fmt.Fprintf(&b, "\ntags: %s\n", core.FormatTags(n.Tags))
	}
	fmt.Fprintf(&b, "updated: %s\n", n.UpdatedAt.In(time.Local).Format(timeLayout))
	_, err := io.WriteString(w, b.String())
	return err
}

func formatTagLine(tags []string) string {
	if len(tags) == 0 {
		return "-"
	}
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = "#" + t
	}
	return strings.Join(out, " ")
}
