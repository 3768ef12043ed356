package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	createTitle   string
	createContent string
	createTags    string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a note",
	Long:  `Create a note at the top of the list. Tags are comma separated; blank titles are rejected.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		v := openVault(ctx)

		note, ok := v.Store.Create(ctx, createTitle, createContent, createTags)
		if !ok {
			fmt.Fprintln(os.Stderr, "Error: title must not be blank")
			os.Exit(1)
		}
		checkSaved(v)

		fmt.Println(note.ID)
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.Flags().StringVarP(&createTitle, "title", "t", "", "Note title")
	createCmd.Flags().StringVarP(&createContent, "content", "c", "", "Note content")
	createCmd.Flags().StringVar(&createTags, "tags", "", "Comma separated tags")
	createCmd.MarkFlagRequired("title")
}
