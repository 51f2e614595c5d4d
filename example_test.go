package chronos_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/aretw0/chronos"
)

// Example_basic demonstrates storing a note for an hour and reading it back
// after a restart.
func Example_basic() {
	tmpDir, err := os.MkdirTemp("", "chronos-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	path := filepath.Join(tmpDir, "chronos_notes.json")
	today := func() time.Time { return time.Date(2024, 1, 1, 5, 0, 0, 0, time.UTC) }

	store, err := chronos.New(path, chronos.WithClock(today))
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	key, err := store.KeyForHour(5)
	if err != nil {
		log.Fatal(err)
	}
	store.Put(ctx, key, "Morning reflection")

	restarted, err := chronos.New(path)
	if err != nil {
		log.Fatal(err)
	}
	note, ok := restarted.Get(key)
	fmt.Println(key, ok, note.Content, note.IsLocked)

	// Output:
	// 2024-01-01-5 true Morning reflection false
}

// Example_malformed shows that unreadable files start an empty store.
func Example_malformed() {
	tmpDir, err := os.MkdirTemp("", "chronos-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	path := filepath.Join(tmpDir, "chronos_notes.json")
	if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
		log.Fatal(err)
	}

	store, err := chronos.New(path)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(store.Len())

	// Output:
	// 0
}
