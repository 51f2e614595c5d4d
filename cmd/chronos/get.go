package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/chronos"
	"github.com/aretw0/chronos/pkg/core"
)

var (
	getJSON bool
)

var getCmd = &cobra.Command{
	Use:   "get [hour|key]",
	Short: "Print a note",
	Long: `Print the note for an hour of today (0-23) or for an explicit key such as
2024-01-01-17. Outputs the raw content by default, or the record with --json.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store := openStore()

		key, err := resolveKey(store, args[0])
		if err != nil {
			fatal("Invalid note reference", err)
		}

		note, ok := store.Get(key)
		if !ok {
			fmt.Fprintf(os.Stderr, "No note for %s\n", key)
			os.Exit(1)
		}

		if getJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(keyedNote{Key: key, Note: note}); err != nil {
				fatal("Error encoding JSON", err)
			}
			return
		}

		fmt.Println(note.Content)
	},
}

type keyedNote struct {
	Key string `json:"key"`
	core.Note
}

// resolveKey accepts either an hour of today or a full note key.
func resolveKey(store *chronos.Store, ref string) (string, error) {
	if hour, err := strconv.Atoi(ref); err == nil {
		return store.KeyForHour(hour)
	}
	if _, _, err := core.ParseKey(ref, time.Local); err != nil {
		return "", err
	}
	return ref, nil
}

func init() {
	rootCmd.AddCommand(getCmd)
	getCmd.Flags().BoolVar(&getJSON, "json", false, "Output in JSON format")
}
