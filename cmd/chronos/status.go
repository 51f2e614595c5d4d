package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/aretw0/introspection"
	"github.com/spf13/cobra"

	"github.com/aretw0/chronos/pkg/adapters/fs"
	"github.com/aretw0/chronos/pkg/core"
)

var (
	statusDiagram bool
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the state of the store and its notes file",
	Long: `Print the store's introspection state as JSON, or a Mermaid diagram of
the store and its repository with --diagram.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		store := openStore()
		state, ok := store.State().(core.StoreState)
		if !ok {
			fatal("Unexpected state", fmt.Errorf("%T", store.State()))
		}

		if statusDiagram {
			config := introspection.DefaultDiagramConfig()
			config.SecondaryID = "chronos"
			config.SecondaryLabel = "Chronos Topology"
			fmt.Println(introspection.TreeDiagram(buildStatusTree(state), config))
			return
		}

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(state); err != nil {
			fatal("Error encoding JSON", err)
		}
	},
}

type statusNode struct {
	Name     string
	Status   string
	Metadata map[string]string
	Children []statusNode
}

// buildStatusTree maps the store state onto introspection diagram nodes.
// Status values must be classes known to introspection.DefaultStyles().
func buildStatusTree(state core.StoreState) statusNode {
	storeStatus := "running"
	if state.PersistFailures > 0 {
		storeStatus = "failed"
	}

	root := statusNode{
		Name:   "Store",
		Status: storeStatus,
		Metadata: map[string]string{
			"type":     "container",
			"notes":    strconv.Itoa(state.Notes),
			"persists": strconv.Itoa(state.PersistCount),
			"failures": strconv.Itoa(state.PersistFailures),
		},
	}

	repo, ok := state.Repository.(fs.RepositoryState)
	if !ok {
		return root
	}

	watcherStatus := "suspended"
	if repo.WatcherActive {
		watcherStatus = "running"
	}
	repoStatus := "running"
	if repo.ReadOnly {
		repoStatus = "suspended"
	}

	root.Children = []statusNode{{
		Name:   "Repository",
		Status: repoStatus,
		Metadata: map[string]string{
			"type":    "process",
			"path":    repo.Path,
			"corrupt": strconv.Itoa(repo.CorruptLoads),
		},
		Children: []statusNode{{
			Name:   "Watcher",
			Status: watcherStatus,
			Metadata: map[string]string{
				"type": "goroutine",
			},
		}},
	}}
	return root
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().BoolVar(&statusDiagram, "diagram", false, "Print a Mermaid diagram instead of JSON")
}
