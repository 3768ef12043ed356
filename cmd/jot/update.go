package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/jot/pkg/core"
	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Edit a note",
	Long: `Replace the title, content and tags of a note. Flags left out keep the
note's current value, the way an edit form starts prefilled.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := args[0]
		ctx := context.Background()
		v := openVault(ctx)

		current, ok := v.Store.Get(id)
		if !ok {
			fatal("Error updating note", fmt.Errorf("%w: %s", errNoteNotFound, id))
		}

		title, content, tags := prefill(current, cmd)
		if _, ok := v.Store.Update(ctx, id, title, content, tags); !ok {
			fmt.Fprintln(os.Stderr, "Error: title must not be blank")
			os.Exit(1)
		}
		checkSaved(v)

		fmt.Printf("Note updated: %s\n", id)
	},
}

// prefill merges the flags that were set with the note's current values.
func prefill(current core.Note, cmd *cobra.Command) (title, content, tags string) {
	title, content, tags = current.Title, current.Content, core.FormatTags(current.Tags)
	flags := cmd.Flags()
	if flags.Changed("title") {
		title, _ = flags.GetString("title")
	}
	if flags.Changed("content") {
		content, _ = flags.GetString("content")
	}
	if flags.Changed("tags") {
		tags, _ = flags.GetString("tags")
	}
	return title, content, tags
}

func init() {
	rootCmd.AddCommand(updateCmd)
	updateCmd.Flags().StringP("title", "t", "", "New title")
	updateCmd.Flags().StringP("content", "c", "", "New content")
	updateCmd.Flags().String("tags", "", "New comma separated tags")
}
