package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-craft/tilefill/internal/world"
	"github.com/go-theft-craft/tilefill/internal/world/gen"
)

func newWorld() *world.World {
	return world.NewWorld(gen.NewFlatGenerator(0))
}

func backends(t *testing.T) map[string]func(dir string) Store {
	return map[string]func(dir string) Store{
		"file": func(dir string) Store {
			s, err := NewFileStore(dir, nil)
			require.NoError(t, err)
			return s
		},
		"badger": func(dir string) Store {
			s, err := NewBadgerStore(dir, nil)
			require.NoError(t, err)
			return s
		},
	}
}

func TestSaveAndLoadWorld(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()

			src := newWorld()
			src.SetBlock(1, 10, 1, 35<<4|14)
			src.SetBlock(-17, 4, 40, 0)
			src.SetBlock(100, 64, -100, 1<<4)

			s := open(dir)
			require.NoError(t, s.SaveWorld(src))
			require.NoError(t, s.Close())

			s = open(dir)
			defer s.Close()
			dst := newWorld()
			require.NoError(t, s.LoadWorld(dst))

			assert.Equal(t, src.Overrides(), dst.Overrides())
			assert.Equal(t, int32(0), dst.GetBlock(-17, 4, 40))
		})
	}
}

func TestSaveDropsClearedChunks(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := open(t.TempDir())
			defer s.Close()

			w := newWorld()
			w.SetBlock(0, 10, 0, 1<<4)
			w.SetBlock(40, 10, 40, 1<<4)
			require.NoError(t, s.SaveWorld(w))

			// Restoring the generated state removes the override.
			w.SetBlock(40, 10, 40, 0)
			require.NoError(t, s.SaveWorld(w))

			loaded := newWorld()
			require.NoError(t, s.LoadWorld(loaded))
			assert.Equal(t, 1, loaded.OverrideCount())
			assert.Equal(t, int32(0), loaded.GetBlock(40, 10, 40))
		})
	}
}

func TestLoadWorldEmpty(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := open(t.TempDir())
			defer s.Close()

			w := newWorld()
			require.NoError(t, s.LoadWorld(w))
			assert.Zero(t, w.OverrideCount())
		})
	}
}

func TestFileStoreCorruptFile(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir, nil)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "world", "overrides.json"), []byte("{"), 0o644))

	assert.Error(t, s.LoadWorld(newWorld()))
}

func TestFileStoreLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir, nil)
	require.NoError(t, err)
	require.NoError(t, s.SaveWorld(newWorld()))

	_, err = os.Stat(filepath.Join(dir, "world", "overrides.json.tmp"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOpen(t *testing.T) {
	s, err := Open("none", t.TempDir(), nil)
	require.NoError(t, err)
	assert.NoError(t, s.SaveWorld(newWorld()))
	assert.NoError(t, s.Close())

	_, err = Open("s3", t.TempDir(), nil)
	assert.Error(t, err)
}
