// Package world is an in-memory voxel world: generated base terrain plus
// the blocks that were changed on top of it.
package world

import (
	"sync"

	"github.com/go-theft-craft/tilefill/internal/world/gen"
)

// BlockPos represents a block position in the world.
type BlockPos struct {
	X, Y, Z int
}

// World tracks block state with a generator for base terrain and overrides
// for modifications. It is safe for concurrent use; each call is atomic on
// its own, nothing spans calls.
type World struct {
	mu        sync.RWMutex
	blocks    map[BlockPos]int32
	generator gen.Generator
	chunks    map[gen.ChunkPos]*gen.ChunkData
}

// NewWorld creates a new World with the given generator.
func NewWorld(generator gen.Generator) *World {
	return &World{
		blocks:    make(map[BlockPos]int32),
		generator: generator,
		chunks:    make(map[gen.ChunkPos]*gen.ChunkData),
	}
}

func inBounds(y int) bool {
	return y >= 0 && y < gen.Height
}

// GetOrGenerateChunk returns the ChunkData for the given chunk coordinates,
// generating and caching it if needed.
func (w *World) GetOrGenerateChunk(cx, cz int) *gen.ChunkData {
	pos := gen.ChunkPos{X: cx, Z: cz}

	w.mu.RLock()
	c, ok := w.chunks[pos]
	w.mu.RUnlock()
	if ok {
		return c
	}

	c = w.generator.Generate(cx, cz)

	w.mu.Lock()
	defer w.mu.Unlock()
	// Double-check after acquiring write lock.
	if existing, ok := w.chunks[pos]; ok {
		return existing
	}
	w.chunks[pos] = c
	return c
}

// PreGenerateRadius generates every chunk within radius of the origin chunk
// and returns how many chunks that covers.
func (w *World) PreGenerateRadius(radius int) int {
	n := 0
	for cx := -radius; cx <= radius; cx++ {
		for cz := -radius; cz <= radius; cz++ {
			w.GetOrGenerateChunk(cx, cz)
			n++
		}
	}
	return n
}

// baseState is the generated state at a position, y already bounds-checked.
func (w *World) baseState(x, y, z int) int32 {
	c := w.GetOrGenerateChunk(x>>4, z>>4)
	return int32(c.GetBlock(x&0xF, y, z&0xF))
}

// Contains reports whether y lies inside the world's height range.
func (w *World) Contains(_, y, _ int) bool {
	return inBounds(y)
}

// GetBlock returns the block state ID at the given position.
// Checks overrides first, then falls back to the generated chunk.
// Positions outside the height range read as air.
func (w *World) GetBlock(x, y, z int) int32 {
	if !inBounds(y) {
		return 0
	}

	w.mu.RLock()
	s, ok := w.blocks[BlockPos{x, y, z}]
	w.mu.RUnlock()
	if ok {
		return s
	}
	return w.baseState(x, y, z)
}

// SetBlock stores a block state override. Writes outside the height range
// are dropped. Writing the generated state back removes the override.
func (w *World) SetBlock(x, y, z int, stateID int32) {
	if !inBounds(y) {
		return
	}
	base := w.baseState(x, y, z)

	w.mu.Lock()
	defer w.mu.Unlock()

	bpos := BlockPos{x, y, z}
	if stateID == base {
		delete(w.blocks, bpos)
	} else {
		w.blocks[bpos] = stateID
	}
}

// ForEachOverride calls fn for every block override under a read lock.
func (w *World) ForEachOverride(fn func(pos BlockPos, stateID int32)) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	for pos, state := range w.blocks {
		fn(pos, state)
	}
}

// Overrides returns a copy of all block overrides.
func (w *World) Overrides() map[BlockPos]int32 {
	w.mu.RLock()
	defer w.mu.RUnlock()

	cp := make(map[BlockPos]int32, len(w.blocks))
	for pos, state := range w.blocks {
		cp[pos] = state
	}
	return cp
}

// OverrideCount returns the number of modified blocks.
func (w *World) OverrideCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.blocks)
}

// LoadOverrides replaces all overrides with the given set.
func (w *World) LoadOverrides(overrides map[BlockPos]int32) {
	blocks := make(map[BlockPos]int32, len(overrides))
	for pos, state := range overrides {
		if inBounds(pos.Y) {
			blocks[pos] = state
		}
	}

	w.mu.Lock()
	w.blocks = blocks
	w.mu.Unlock()
}

// SpawnHeight returns the terrain height at (0, 0) + 1 so a player stands on it.
func (w *World) SpawnHeight() int {
	return w.generator.HeightAt(0, 0) + 1
}
