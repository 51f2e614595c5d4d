package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/chronos/pkg/core"
)

var (
	putHour    int
	putKey     string
	putContent string
)

var putCmd = &cobra.Command{
	Use:   "put",
	Short: "Write a note",
	Long: `Create or overwrite the note for an hour of today (--hour) or for an
explicit key (--key). The notes file is rewritten immediately.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		hourSet := cmd.Flags().Changed("hour")
		if hourSet == (putKey != "") {
			fmt.Fprintln(os.Stderr, "Error: exactly one of --hour or --key is required")
			cmd.Usage()
			os.Exit(1)
		}

		store := openStore()

		key := putKey
		if hourSet {
			k, err := store.KeyForHour(putHour)
			if err != nil {
				fatal("Invalid hour", err)
			}
			key = k
		} else if _, _, err := core.ParseKey(key, time.Local); err != nil {
			fatal("Invalid key", err)
		}

		store.Put(context.Background(), key, putContent)

		if readOnly {
			fmt.Printf("Note '%s' not written (read-only).\n", key)
			return
		}
		fmt.Printf("Note '%s' saved.\n", key)
	},
}

func init() {
	rootCmd.AddCommand(putCmd)
	putCmd.Flags().IntVar(&putHour, "hour", 0, "Hour of today (0-23)")
	putCmd.Flags().StringVar(&putKey, "key", "", "Explicit note key (YYYY-MM-DD-H)")
	putCmd.Flags().StringVarP(&putContent, "content", "c", "", "Note content")
}
