package fill

// World is the voxel world a fill reads from and writes to. Reads must
// observe the caller's own earlier writes.
type World interface {
	Block(x, y, z int) Block
	SetBlock(x, y, z int, b Block)
}

// Bounded is implemented by worlds with a finite extent. A fill never
// enters a coordinate the world does not contain.
type Bounded interface {
	Contains(x, y, z int) bool
}

// StateStore is a world addressed by packed 1.8 block states.
type StateStore interface {
	GetBlock(x, y, z int) int32
	SetBlock(x, y, z int, state int32)
}

// States adapts a StateStore to World. The result is Bounded when s is.
func States(s StateStore) World {
	return stateWorld{s}
}

type stateWorld struct {
	s StateStore
}

func (w stateWorld) Block(x, y, z int) Block {
	return FromState(w.s.GetBlock(x, y, z))
}

func (w stateWorld) SetBlock(x, y, z int, b Block) {
	w.s.SetBlock(x, y, z, b.State())
}

func (w stateWorld) Contains(x, y, z int) bool {
	if b, ok := w.s.(Bounded); ok {
		return b.Contains(x, y, z)
	}
	return true
}
