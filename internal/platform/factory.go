package platform

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/chronos/pkg/adapters/fs"
	"github.com/aretw0/chronos/pkg/core"
)

// New builds a store on top of the configured repository and loads it.
//
//	store, err := chronos.New("chronos_notes.json", chronos.WithReadOnly(true))
//
// The URI argument is adapter-specific (a file path for "fs").
// Load failures never surface here: a missing or malformed file yields an
// empty store.
func New(uri string, opts ...Option) (*core.Store, error) {
	repo, err := Init(uri, opts...)
	if err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	storeOpts := []core.StoreOption{core.WithStoreLogger(o.logger)}
	if o.clock != nil {
		storeOpts = append(storeOpts, core.WithClock(o.clock))
	}

	store := core.NewStore(repo, storeOpts...)
	store.Load(context.Background())
	return store, nil
}

// Init returns the repository described by uri and opts without loading it.
func Init(uri string, opts ...Option) (core.Repository, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if o.repository != nil {
		return o.repository, nil
	}

	switch o.adapter {
	case "fs":
		return initFS(uri, o)
	default:
		return nil, fmt.Errorf("unknown adapter: %s", o.adapter)
	}
}

// initFS handles the initialization logic for the filesystem adapter.
func initFS(path string, o *options) (core.Repository, error) {
	readOnly, _ := o.config["read_only"].(bool)
	debounce, _ := o.config["debounce"].(time.Duration)
	errorHandler, _ := o.config["watcher_error_handler"].(func(error))

	serializers := fs.DefaultSerializers()
	for ext, s := range o.serializers {
		fsSerializer, ok := s.(fs.Serializer)
		if !ok {
			return nil, fmt.Errorf("serializer for %s does not implement fs.Serializer", ext)
		}
		serializers[ext] = fsSerializer
	}

	logger := o.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	resolved, err := ResolvePath(path)
	if err != nil {
		return nil, err
	}

	return fs.NewRepository(fs.Config{
		Path:         resolved,
		Logger:       logger,
		ReadOnly:     readOnly,
		Serializers:  serializers,
		Debounce:     debounce,
		ErrorHandler: errorHandler,
	}), nil
}
