package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/jot"
	"github.com/spf13/cobra"
)

var (
	initFormat string
	initKey    string
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a jot vault",
	Long:  `Initialize a new vault in the current directory (or --dir) by creating .jot/config.yaml.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		root := dataDir
		if root == "" {
			cwd, err := os.Getwd()
			if err != nil {
				fatal("Failed to get CWD", err)
			}
			root = cwd
		}

		dir, err := jot.Init(root, jot.FileConfig{Key: initKey, Format: initFormat}, jot.WithLogger(slog.Default()))
		if err != nil {
			fatal("Failed to initialize vault", err)
		}

		fmt.Println("Initialized empty jot vault in", dir)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().StringVar(&initFormat, "format", "", "Blob format: json or yaml (default json)")
	initCmd.Flags().StringVar(&initKey, "key", "", "Key the notes are stored under (default notes)")
}
