package blocks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-craft/tilefill/pkg/fill"
)

func TestParse(t *testing.T) {
	r := Builtin()

	tests := []struct {
		in   string
		want fill.Block
	}{
		{"stone", fill.Block{ID: 1}},
		{"Wool:14", fill.Block{ID: 35, Data: 14}},
		{"minecraft:planks:5", fill.Block{ID: 5, Data: 5}},
		{"35:3", fill.Block{ID: 35, Data: 3}},
		{"0", fill.Air},
		{"4000", fill.Block{ID: 4000}},
	}
	for _, tt := range tests {
		got, err := r.Parse(tt.in)
		if assert.NoError(t, err, tt.in) {
			assert.Equal(t, tt.want, got, tt.in)
		}
	}
}

func TestParseErrors(t *testing.T) {
	r := Builtin()

	_, err := r.Parse("unobtainium")
	assert.ErrorIs(t, err, ErrUnknownBlock)

	_, err = r.Parse("-1")
	assert.ErrorIs(t, err, ErrUnknownBlock)

	_, err = r.Parse("wool:16")
	assert.Error(t, err)

	_, err = r.Parse("wool:red")
	assert.Error(t, err)
}

func TestFormatAndDescribe(t *testing.T) {
	r := Builtin()

	assert.Equal(t, "stone", r.Format(fill.Stone))
	assert.Equal(t, "wool:14", r.Format(fill.Block{ID: 35, Data: 14}))
	assert.Equal(t, "3000:2", r.Format(fill.Block{ID: 3000, Data: 2}))

	assert.Equal(t, "Red Wool", r.Describe(fill.Block{ID: 35, Data: 14}))
	assert.Equal(t, "Grass Block", r.Describe(fill.Block{ID: 2, Data: 3}))
	assert.Equal(t, "3000:0", r.Describe(fill.Block{ID: 3000}))
}

func TestNamesOrderedByID(t *testing.T) {
	names := Builtin().Names()
	require.NotEmpty(t, names)
	assert.Equal(t, "air", names[0])
	assert.Equal(t, "stone", names[1])
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blocks.json")
	data := `[
  {"id":1,"displayName":"Stone","name":"stone","hardness":1.5,"diggable":true,
   "variations":[{"metadata":0,"displayName":"Stone"},{"metadata":1,"displayName":"Granite"}]},
  {"id":35,"displayName":"Wool","name":"wool","hardness":0.8}
]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	r, err := LoadFile(path)
	require.NoError(t, err)

	assert.Len(t, r.All(), 2)
	assert.Equal(t, "Granite", r.Describe(fill.Block{ID: 1, Data: 1}))
	b, err := r.Parse("wool:2")
	require.NoError(t, err)
	assert.Equal(t, fill.Block{ID: 35, Data: 2}, b)
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o644))
	_, err = LoadFile(bad)
	assert.Error(t, err)
}
