package fill

import "testing"

// patch fills a square of side 2r+1 around c in the XZ plane.
func patch(w *mapWorld, c Pos, r int, b Block) {
	for dx := -r; dx <= r; dx++ {
		for dz := -r; dz <= r; dz++ {
			w.carve(b, Pos{c.X + dx, c.Y, c.Z + dz})
		}
	}
}

func TestReplaceDetectsTargetFromNeighbours(t *testing.T) {
	w := newMapWorld(Stone)
	wool := Block{ID: 3, Data: 1}
	center := Pos{10, 10, 10}
	patch(w, center, 2, wool)

	res, ok := Replace(w, Interaction{Pos: center, Face: FaceBottom, Touched: wool},
		WithReplacement(Block{ID: 4}))

	if !ok {
		t.Fatal("Replace() ok = false, want true")
	}
	if res.Plane != PlaneXZ {
		t.Errorf("Plane = %v, want xz", res.Plane)
	}
	if res.Target != wool {
		t.Errorf("Target = %v, want %v", res.Target, wool)
	}
	if res.Count() != 25 {
		t.Errorf("Count() = %d, want 25", res.Count())
	}
	if b := w.Block(12, 10, 12); b != (Block{ID: 4}) {
		t.Errorf("Block(12,10,12) = %v, want 4:0", b)
	}
	if b := w.Block(13, 10, 10); b != Stone {
		t.Errorf("Block(13,10,10) = %v, want stone outside the patch", b)
	}
}

func TestReplaceDetectsFieldsIndependently(t *testing.T) {
	w := newMapWorld(Stone)
	c := Pos{0, 50, 0}
	// Same data, different ids: only the data value is agreed on.
	w.carve(Block{ID: 35, Data: 2}, Pos{1, 50, 0}, Pos{-1, 50, 0})
	w.carve(Block{ID: 95, Data: 2}, Pos{0, 50, 1}, Pos{0, 50, -1})

	res, _ := Replace(w, Interaction{Pos: c, Face: FaceTop}, WithReplacement(Stone))

	if want := (Block{ID: 0, Data: 2}); res.Target != want {
		t.Errorf("Target = %v, want %v", res.Target, want)
	}
}

func TestReplaceExplicitTargetSkipsDetection(t *testing.T) {
	w := newMapWorld(Stone)
	c := Pos{0, 50, 0}
	patch(w, c, 1, Block{ID: 3})

	res, _ := Replace(w, Interaction{Pos: c, Face: FaceTop},
		WithTarget(Air), WithReplacement(Block{ID: 7}))

	if res.Target != Air {
		t.Errorf("Target = %v, want air", res.Target)
	}
	if res.Count() != 1 {
		t.Errorf("Count() = %d, want 1", res.Count())
	}
}

func TestReplacePartialExplicitTarget(t *testing.T) {
	w := newMapWorld(Block{ID: 35, Data: 5})

	res, _ := Replace(w, Interaction{Pos: Pos{0, 60, 0}, Face: FaceTop},
		WithTargetID(1), WithReplacement(Stone), WithMaxTiles(4))

	if want := (Block{ID: 1, Data: 5}); res.Target != want {
		t.Errorf("Target = %v, want %v", res.Target, want)
	}
}

func TestReplaceDefaultsToTouchedBlock(t *testing.T) {
	w := newMapWorld(Stone)
	c := Pos{5, 40, 5}
	patch(w, c, 1, Air)
	touched := Block{ID: 17, Data: 2}

	res, ok := Replace(w, Interaction{Pos: c, Face: FaceTop, Touched: touched})

	if !ok {
		t.Fatal("Replace() ok = false")
	}
	if res.Replacement != touched {
		t.Errorf("Replacement = %v, want %v", res.Replacement, touched)
	}
	if b := w.Block(6, 40, 6); b != touched {
		t.Errorf("Block(6,40,6) = %v, want %v", b, touched)
	}
}

func TestReplaceFacePicksPlane(t *testing.T) {
	tests := []struct {
		face Face
		want Plane
	}{
		{FaceBottom, PlaneXZ},
		{FaceTop, PlaneXZ},
		{FaceNorth, PlaneXY},
		{FaceSouth, PlaneXY},
		{FaceWest, PlaneYZ},
		{FaceEast, PlaneYZ},
	}
	for _, tt := range tests {
		w := newMapWorld(Stone)
		res, ok := Replace(w, Interaction{Pos: Pos{0, 10, 0}, Face: tt.face}, WithReplacement(Air))
		if !ok || res.Plane != tt.want {
			t.Errorf("face %d: plane = %v, %v, want %v", tt.face, res.Plane, ok, tt.want)
		}
	}
}

func TestReplaceInvalidFace(t *testing.T) {
	w := newMapWorld(Air)

	_, ok := Replace(w, Interaction{Pos: Pos{0, 10, 0}, Face: 9}, WithReplacement(Stone))

	if ok {
		t.Error("Replace() ok = true, want false")
	}
	if w.writes != 0 {
		t.Errorf("writes = %d, want 0", w.writes)
	}
}
