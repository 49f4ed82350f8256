// Package storage persists the modified blocks of a world.
package storage

import (
	"fmt"
	"log/slog"

	"github.com/go-theft-craft/tilefill/internal/world"
)

// Store loads and saves world overrides.
type Store interface {
	LoadWorld(w *world.World) error
	SaveWorld(w *world.World) error
	Close() error
}

// Open returns the store for backend ("file", "badger" or "none") rooted at dir.
func Open(backend, dir string, log *slog.Logger) (Store, error) {
	switch backend {
	case "file":
		return NewFileStore(dir, log)
	case "badger":
		return NewBadgerStore(dir, log)
	case "none":
		return nopStore{}, nil
	}
	return nil, fmt.Errorf("unknown storage backend %q", backend)
}

type nopStore struct{}

func (nopStore) LoadWorld(*world.World) error { return nil }
func (nopStore) SaveWorld(*world.World) error { return nil }
func (nopStore) Close() error                 { return nil }
