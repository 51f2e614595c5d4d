package main

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/aretw0/chronos/internal/tui"
)

var (
	clockTick    time.Duration
	clockWatch   bool
	clockNoColor bool
)

var clockCmd = &cobra.Command{
	Use:   "clock",
	Short: "Open the interactive clock",
	Long: `Open the clock face. Select an hour with the arrow keys, press enter to
write its note and ctrl+s to secure the file. Every keystroke is saved.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		if clockNoColor {
			lipgloss.SetColorProfile(termenv.Ascii)
		}

		store := openStore()

		if clockWatch {
			events, err := store.Watch(ctx)
			if err != nil {
				slog.Warn("live reload disabled", "error", err)
			} else {
				go func() {
					for e := range events {
						slog.Debug("notes reloaded", "event", e.String())
					}
				}()
			}
		}

		model := tui.New(store,
			tui.WithContext(ctx),
			tui.WithTickInterval(clockTick),
		)
		if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
			fatal("Clock failed", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(clockCmd)
	clockCmd.Flags().DurationVar(&clockTick, "tick", tui.DefaultTickInterval, "Redraw interval")
	clockCmd.Flags().BoolVar(&clockWatch, "watch", true, "Reload notes when the file changes on disk")
	clockCmd.Flags().BoolVar(&clockNoColor, "no-color", false, "Render without colors")
}
