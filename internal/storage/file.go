package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-theft-craft/tilefill/internal/world"
)

// FileStore keeps all overrides in a single JSON file, world/overrides.json.
type FileStore struct {
	dir string
	log *slog.Logger
}

// NewFileStore creates a FileStore rooted at dir, creating subdirectories as needed.
func NewFileStore(dir string, log *slog.Logger) (*FileStore, error) {
	if log == nil {
		log = slog.Default()
	}
	if err := os.MkdirAll(filepath.Join(dir, "world"), 0o755); err != nil {
		return nil, fmt.Errorf("create directory %s: %w", dir, err)
	}
	return &FileStore{dir: dir, log: log}, nil
}

func (s *FileStore) path() string {
	return filepath.Join(s.dir, "world", "overrides.json")
}

// LoadWorld reads overrides.json and bulk-loads block overrides into the world.
// A missing file leaves the world unchanged.
func (s *FileStore) LoadWorld(w *world.World) error {
	data, err := os.ReadFile(s.path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read world overrides: %w", err)
	}

	var wd WorldData
	if err := json.Unmarshal(data, &wd); err != nil {
		return fmt.Errorf("parse world overrides: %w", err)
	}

	overrides := make(map[world.BlockPos]int32, len(wd.Overrides))
	toOverrideMap(wd.Overrides, overrides)

	w.LoadOverrides(overrides)
	s.log.Info("loaded world overrides", "count", len(overrides), "path", s.path())
	return nil
}

// SaveWorld writes all block overrides to overrides.json atomically.
func (s *FileStore) SaveWorld(w *world.World) error {
	wd := WorldData{Overrides: []BlockOverride{}}
	w.ForEachOverride(func(pos world.BlockPos, stateID int32) {
		wd.Overrides = append(wd.Overrides, BlockOverride{
			X: pos.X, Y: pos.Y, Z: pos.Z, StateID: stateID,
		})
	})

	if err := atomicWriteJSON(s.path(), &wd); err != nil {
		return err
	}
	s.log.Info("saved world overrides", "count", len(wd.Overrides))
	return nil
}

func (s *FileStore) Close() error { return nil }

// atomicWriteJSON marshals v to JSON and writes it atomically using a temp file + rename.
func atomicWriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	data = append(data, '\n')

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
