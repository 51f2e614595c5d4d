package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/chronos/pkg/core"
)

var (
	listJSON  bool
	listMatch string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List note keys",
	Long: `List every note key in lexical order. Keys whose note has content are
marked with '*'. Use --match with a glob such as "2024-01-*" to filter.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		store := openStore()

		keys := store.Keys()
		if listMatch != "" {
			matched, err := store.Match(listMatch)
			if err != nil {
				fatal("Invalid --match pattern", err)
			}
			keys = matched
		}

		if listJSON {
			out := make(core.Notes, len(keys))
			for _, k := range keys {
				out[k], _ = store.Get(k)
			}
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(out); err != nil {
				fatal("Error encoding JSON", err)
			}
			return
		}

		for _, k := range keys {
			note, _ := store.Get(k)
			marker := " "
			if strings.TrimSpace(note.Content) != "" {
				marker = "*"
			}
			fmt.Printf("%s %s\n", marker, k)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVar(&listMatch, "match", "", "Only keys matching this glob")
}
