package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/jot"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	dataDir string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "jot",
	Short: "Take short tagged notes from the terminal",
	Long: `jot keeps a list of short notes with tags in a local vault.
The whole collection is stored as one file under .jot/ and rewritten on every change.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&dataDir, "dir", "", "Vault root (defaults to the nearest directory holding .jot)")
}

// vaultRoot returns --dir, or the nearest vault root above the working directory.
func vaultRoot() (string, error) {
	if dataDir != "" {
		return dataDir, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}
	root, err := jot.FindVaultRoot(wd)
	if err != nil {
		return "", fmt.Errorf("not a jot vault (run 'jot init'): %w", err)
	}
	return root, nil
}

// openVault opens the existing vault the command operates on, or exits.
func openVault(ctx context.Context) *jot.Vault {
	root, err := vaultRoot()
	if err != nil {
		fatal("Error", err)
	}

	v, err := jot.Open(ctx, root,
		jot.WithMustExist(true),
		jot.WithLogger(slog.Default()),
	)
	if err != nil {
		fatal("Failed to open vault", err)
	}
	return v
}

// checkSaved exits if the last mutation could not be persisted.
func checkSaved(v *jot.Vault) {
	if err := v.Store.LastError(); err != nil {
		fatal("Failed to save notes", err)
	}
}

var errNoteNotFound = errors.New("note not found")
