package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/chronos/internal/markdown"
	"github.com/aretw0/chronos/pkg/adapters/fs"
)

var (
	exportFormat string
	exportOutput string
	exportTitle  string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all notes",
	Long: `Render every note to stdout (or --output). Formats: html (a standalone
page with notes rendered from markdown), yaml and json.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		store := openStore()
		notes := store.Snapshot()

		var out io.Writer = os.Stdout
		if exportOutput != "" {
			f, err := os.Create(exportOutput)
			if err != nil {
				fatal("Failed to create output file", err)
			}
			defer f.Close()
			out = f
		}

		switch exportFormat {
		case "html":
			if err := markdown.WriteDocument(out, exportTitle, notes); err != nil {
				fatal("Failed to render HTML", err)
			}
		case "yaml", "yml", "json":
			var s fs.Serializer = fs.NewJSONSerializer()
			if exportFormat != "json" {
				s = fs.NewYAMLSerializer()
			}
			data, err := s.Encode(notes)
			if err != nil {
				fatal("Failed to encode notes", err)
			}
			if _, err := out.Write(data); err != nil {
				fatal("Failed to write output", err)
			}
		default:
			fatal("Unknown format", fmt.Errorf("%q (want html, yaml or json)", exportFormat))
		}
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportFormat, "format", "html", "Output format: html, yaml or json")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to this file instead of stdout")
	exportCmd.Flags().StringVar(&exportTitle, "title", "Chronos", "Page title for html output")
}
