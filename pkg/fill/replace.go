package fill

// Interaction is a block placement reported by the host: the block at Pos
// was touched on Face and had identity Touched.
type Interaction struct {
	Pos     Pos
	Face    Face
	Touched Block
}

// Replace fills the region around an interaction. The face picks the plane
// (see Face.Plane). Without WithReplacement the touched block is written.
//
// Unless given explicitly, the target is guessed from the four in-plane
// neighbours of the interaction point: when all four share an id it becomes
// the target id, and independently when all four share a data value it
// becomes the target data. A field with no agreement stays 0. The guess is
// approximate and will misjudge irregular edges.
//
// It returns false and writes nothing when the face is not one of the six
// canonical faces.
func Replace(w World, in Interaction, opts ...Option) (Result, bool) {
	plane, ok := in.Face.Plane()
	if !ok {
		return Result{}, false
	}
	p := newParams(opts)
	if !p.replacementSet {
		p.replacement = in.Touched.Canonical()
	}
	detectTarget(w, plane, in.Pos, &p)
	return fill(w, plane, in.Pos, p), true
}

func detectTarget(w World, plane Plane, at Pos, p *params) {
	if p.idSet && p.dataSet {
		return
	}

	var around [4]Block
	for i, s := range plane.steps() {
		n := at.add(s.X, s.Y, s.Z)
		around[i] = w.Block(n.X, n.Y, n.Z)
	}

	sameID, sameData := true, true
	for _, b := range around[1:] {
		sameID = sameID && b.ID == around[0].ID
		sameData = sameData && b.Data == around[0].Data
	}
	if !p.idSet && sameID {
		p.target.ID = around[0].ID
	}
	if !p.dataSet && sameData {
		p.target.Data = around[0].Data
	}
}
