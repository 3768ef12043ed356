package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/aretw0/jot/pkg/adapters/fs"
	"github.com/spf13/cobra"
)

var statusKeys string

type statusReport struct {
	State any      `json:"state"`
	Keys  []string `json:"stored_keys,omitempty"`
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the vault's internal state as JSON",
	Long: `Print the state of the store, the blob adapter and the storage backend.
For filesystem vaults the keys stored in .jot/ matching --keys are listed too.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		v := openVault(context.Background())

		report := statusReport{State: v.State()}
		if s, ok := v.KeyValue.(*fs.Store); ok {
			keys, err := s.Keys(statusKeys)
			if err != nil {
				fatal("Error listing keys", err)
			}
			report.Keys = keys
		}

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(report); err != nil {
			fatal("Error encoding JSON", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().StringVar(&statusKeys, "keys", "**", "Glob selecting the stored keys to list")
}
