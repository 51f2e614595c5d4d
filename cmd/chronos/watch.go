package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/chronos/pkg/adapters/lifecycle"
	"github.com/aretw0/chronos/pkg/core"
)

var (
	watchOnly []string
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print an event each time the notes file changes on disk",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		var types []core.EventType
		for _, name := range watchOnly {
			switch t := core.EventType(strings.ToUpper(name)); t {
			case core.EventReload, core.EventRemove:
				types = append(types, t)
			default:
				fatal("Invalid --only value", fmt.Errorf("%q (want reload or remove)", name))
			}
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		store := openStore()
		events, err := store.Watch(ctx)
		if err != nil {
			fatal("Failed to watch notes", err)
		}

		source := lifecycle.NewSource(events, types...)
		if err := source.Start(ctx); err != nil {
			fatal("Failed to start event source", err)
		}

		fmt.Fprintf(os.Stderr, "Watching %d notes. Press Ctrl+C to stop.\n", store.Len())
		for e := range source.Events() {
			fmt.Printf("%s (%d notes)\n", e, store.Len())
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringSliceVar(&watchOnly, "only", nil, "Only print these event types (reload, remove)")
}
