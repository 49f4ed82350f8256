package fill

import (
	"errors"
	"fmt"
	"strings"
)

// Pos is a voxel coordinate. Y is world height.
type Pos struct {
	X, Y, Z int
}

func (p Pos) add(dx, dy, dz int) Pos {
	return Pos{p.X + dx, p.Y + dy, p.Z + dz}
}

func (p Pos) String() string {
	return fmt.Sprintf("%d %d %d", p.X, p.Y, p.Z)
}

// Block identifies a block type and its auxiliary data value. The 1.8
// state format holds ids 0-4095 and data 0-15; fills store every block in
// that form, see Canonical.
type Block struct {
	ID   int
	Data int
}

var (
	Air   = Block{ID: 0}
	Stone = Block{ID: 1}
)

// Largest id and data value a 1.8 block state can carry.
const (
	MaxID   = 0xFFF
	MaxData = 0xF
)

// State packs the block into a 1.8 block state: id<<4 | data. Out of range
// fields are masked.
func (b Block) State() int32 {
	return int32((b.ID&MaxID)<<4 | b.Data&MaxData)
}

// Canonical returns the block a 1.8 state round trip yields.
func (b Block) Canonical() Block {
	return Block{ID: b.ID & MaxID, Data: b.Data & MaxData}
}

// FromState unpacks a 1.8 block state.
func FromState(state int32) Block {
	return Block{ID: int(state >> 4), Data: int(state & 0xF)}
}

func (b Block) String() string {
	return fmt.Sprintf("%d:%d", b.ID, b.Data)
}

// Plane is the 2-D slice a fill searches in. The remaining axis is fixed.
type Plane uint8

const (
	PlaneXY Plane = iota // z fixed
	PlaneXZ              // y fixed
	PlaneYZ              // x fixed
)

// ErrUnknownPlane is returned by ParsePlane.
var ErrUnknownPlane = errors.New("unknown plane")

func (p Plane) String() string {
	switch p {
	case PlaneXY:
		return "xy"
	case PlaneXZ:
		return "xz"
	case PlaneYZ:
		return "yz"
	default:
		return fmt.Sprintf("plane(%d)", uint8(p))
	}
}

// ParsePlane accepts "xy", "xz" or "yz" in any case and axis order.
func ParsePlane(s string) (Plane, error) {
	switch strings.ToLower(s) {
	case "xy", "yx":
		return PlaneXY, nil
	case "xz", "zx":
		return PlaneXZ, nil
	case "yz", "zy":
		return PlaneYZ, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPlane, s)
}

// vertical reports whether Y is one of the plane's free axes.
func (p Plane) vertical() bool {
	return p == PlaneXY || p == PlaneYZ
}

// steps returns the four in-plane unit offsets.
func (p Plane) steps() [4]Pos {
	switch p {
	case PlaneXY:
		return [4]Pos{{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}}
	case PlaneXZ:
		return [4]Pos{{1, 0, 0}, {-1, 0, 0}, {0, 0, 1}, {0, 0, -1}}
	default:
		return [4]Pos{{0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1}}
	}
}

// Face is a block face as reported by a block placement.
type Face int8

const (
	FaceBottom Face = iota // -Y
	FaceTop                // +Y
	FaceNorth              // -Z
	FaceSouth              // +Z
	FaceWest               // -X
	FaceEast               // +X
)

// Plane maps a face to the plane a replace runs in. Faces on the Y axis
// select XZ, faces on the Z axis select XY and faces on the X axis select YZ.
func (f Face) Plane() (Plane, bool) {
	switch f {
	case FaceBottom, FaceTop:
		return PlaneXZ, true
	case FaceNorth, FaceSouth:
		return PlaneXY, true
	case FaceWest, FaceEast:
		return PlaneYZ, true
	}
	return 0, false
}
