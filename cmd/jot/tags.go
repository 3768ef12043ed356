package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List the tags in use",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		v := openVault(context.Background())
		for _, t := range v.Store.Tags() {
			fmt.Println(t)
		}
	},
}

func init() {
	rootCmd.AddCommand(tagsCmd)
}
