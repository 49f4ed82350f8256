// Package fill replaces contiguous regions of identical blocks in a voxel
// world. A region is searched in one axis-aligned plane through the origin
// using 4-connectivity and is capped in size, so a fill on an open area
// degrades into a partial fill instead of running away.
package fill

// Result describes a completed fill.
type Result struct {
	Plane       Plane
	Origin      Pos
	Target      Block
	Replacement Block

	// Tiles holds every written coordinate in discovery order. The origin
	// is always first.
	Tiles []Pos

	// Truncated is set when a matching neighbour was left out because the
	// region reached its size cap.
	Truncated bool
}

// Count returns the number of written blocks.
func (r Result) Count() int {
	return len(r.Tiles)
}

// Fill discovers the region of blocks equal to the target that is connected
// to origin within plane, then overwrites it with the replacement.
//
// The origin is part of the region whether or not it matches the target.
// Defaults: replacement Stone, target Air, DefaultMaxTiles,
// DefaultHeightLimit (XY and YZ only).
func Fill(w World, plane Plane, origin Pos, opts ...Option) Result {
	return fill(w, plane, origin, newParams(opts))
}

// FillXY fills in the plane of constant z.
func FillXY(w World, origin Pos, opts ...Option) Result {
	return Fill(w, PlaneXY, origin, opts...)
}

// FillXZ fills in the plane of constant y.
func FillXZ(w World, origin Pos, opts ...Option) Result {
	return Fill(w, PlaneXZ, origin, opts...)
}

// FillYZ fills in the plane of constant x.
func FillYZ(w World, origin Pos, opts ...Option) Result {
	return Fill(w, PlaneYZ, origin, opts...)
}

func fill(w World, plane Plane, origin Pos, p params) Result {
	res := Result{
		Plane:       plane,
		Origin:      origin,
		Target:      p.target,
		Replacement: p.replacement,
	}
	res.Tiles, res.Truncated = discover(w, plane, origin, p)

	// All matching happened above, so write order does not matter.
	for _, t := range res.Tiles {
		w.SetBlock(t.X, t.Y, t.Z, p.replacement)
	}
	return res
}

// discover walks the region depth first with an explicit stack.
func discover(w World, plane Plane, origin Pos, p params) ([]Pos, bool) {
	steps := plane.steps()
	bounded := plane.vertical()
	extent, finite := w.(Bounded)

	tiles := []Pos{origin}
	visited := map[Pos]struct{}{origin: {}}
	stack := []Pos{origin}
	truncated := false

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, s := range steps {
			n := cur.add(s.X, s.Y, s.Z)
			if _, seen := visited[n]; seen {
				continue
			}
			if bounded && n.Y >= p.heightLimit {
				continue
			}
			if finite && !extent.Contains(n.X, n.Y, n.Z) {
				continue
			}
			if w.Block(n.X, n.Y, n.Z) != p.target {
				continue
			}
			if len(tiles) >= p.maxTiles {
				truncated = true
				continue
			}
			visited[n] = struct{}{}
			tiles = append(tiles, n)
			stack = append(stack, n)
		}
	}
	return tiles, truncated
}
