package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	jotlifecycle "github.com/aretw0/jot/pkg/adapters/lifecycle"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print changes as other jot processes make them",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		v := openVault(ctx)
		source := jotlifecycle.NewSource(v.Store.Watch(ctx))
		if err := source.Start(ctx); err != nil {
			fatal("Failed to start event source", err)
		}
		if err := v.Watch(ctx); err != nil {
			fatal("Failed to watch vault", err)
		}

		fmt.Printf("Watching %s (%d notes). Press Ctrl+C to stop.\n", v.DataDir, v.Store.Len())
		for e := range source.Events() {
			fmt.Printf("%s: %d notes, tags: %s\n", e, v.Store.Len(), formatTagLine(v.Store.Tags()))
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
