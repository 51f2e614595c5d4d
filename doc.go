// Package chronos is the Composition Root for the Chronos note store.
//
// It connects the core note mapping (pkg/core) with the storage adapters
// (pkg/adapters) and exposes a small functional-options API.
//
// Chronos keeps one free-text note per hour of the day, addressed by a
// "YYYY-MM-DD-H" key and persisted to a single pretty-printed JSON file.
// Every edit rewrites the whole file; a missing or unreadable file simply
// starts an empty store.
//
// Usage:
//
//	store, err := chronos.New("chronos_notes.json", chronos.WithLogger(logger))
//	key, _ := store.KeyForHour(9)
//	store.Put(ctx, key, "standup")
//	store.Save(ctx)
package chronos
