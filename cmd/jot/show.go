package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	showJSON bool
)

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a note",
	Long:  `Show a note by its ID. Outputs a readable summary by default, or a JSON object with --json.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := args[0]
		v := openVault(context.Background())

		note, ok := v.Store.Get(id)
		if !ok {
			fatal("Error reading note", fmt.Errorf("%w: %s", errNoteNotFound, id))
		}

		if err := writeNote(os.Stdout, note, showJSON); err != nil {
			fatal("Error writing note", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output in JSON format")
}
