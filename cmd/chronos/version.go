package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/chronos"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of chronos",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("chronos version %s\n", strings.TrimSpace(chronos.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
