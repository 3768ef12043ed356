package main

import (
	"context"
	"os"

	"github.com/aretw0/jot/pkg/core"
	"github.com/spf13/cobra"
)

var (
	listJSON   bool
	listSearch string
	listTags   []string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes, newest first",
	Long: `List the notes matching --search (case-insensitive, title or content) and
carrying every --tag given.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		v := openVault(context.Background())

		filter := core.Filter{Query: listSearch}
		for _, t := range listTags {
			if !filter.Selected(t) {
				filter.Toggle(t)
			}
		}

		if err := writeNotes(os.Stdout, v.Store.Visible(filter), listJSON); err != nil {
			fatal("Error writing notes", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Only notes whose title or content contains this text")
	listCmd.Flags().StringArrayVar(&listTags, "tag", nil, "Only notes with this tag (repeatable, all must match)")
}
