package gen

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	blockAir     = 0
	blockStone   = 1
	blockGrass   = 2
	blockDirt    = 3
	blockBedrock = 7
	blockWater   = 9 // stationary water
	blockSand    = 12
)

// Layer is a run of identical blocks in a flat world, bottom up.
type Layer struct {
	State uint16
	Count int
}

// DefaultLayers is the classic superflat stack:
// bedrock at y=0, stone y=1..2, dirt y=3, grass y=4.
var DefaultLayers = []Layer{
	{State: blockBedrock << 4, Count: 1},
	{State: blockStone << 4, Count: 2},
	{State: blockDirt << 4, Count: 1},
	{State: blockGrass << 4, Count: 1},
}

// ParseLayers parses a comma separated layer list such as "7,1*2,3,2" or
// "35:14*3". Each entry is id[:data][*count], bottom layer first.
func ParseLayers(s string) ([]Layer, error) {
	var layers []Layer
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		count := 1
		if spec, n, ok := strings.Cut(part, "*"); ok {
			v, err := strconv.Atoi(n)
			if err != nil || v <= 0 {
				return nil, fmt.Errorf("layer %q: bad count", part)
			}
			count, part = v, spec
		}
		idStr, dataStr, hasData := strings.Cut(part, ":")
		id, err := strconv.Atoi(idStr)
		if err != nil || id < 0 || id > 4095 {
			return nil, fmt.Errorf("layer %q: bad block id", part)
		}
		data := 0
		if hasData {
			data, err = strconv.Atoi(dataStr)
			if err != nil || data < 0 || data > 15 {
				return nil, fmt.Errorf("layer %q: bad data value", part)
			}
		}
		layers = append(layers, Layer{State: uint16(id<<4 | data), Count: count})
	}
	return layers, nil
}

// FlatGenerator generates a superflat world from a fixed layer stack.
type FlatGenerator struct {
	layers []Layer
	top    int
}

// NewFlatGenerator creates a FlatGenerator with DefaultLayers.
func NewFlatGenerator(_ int64) *FlatGenerator {
	return NewFlatGeneratorLayers(DefaultLayers)
}

// NewFlatGeneratorLayers creates a FlatGenerator with custom layers.
// Layers beyond the world height are cut off.
func NewFlatGeneratorLayers(layers []Layer) *FlatGenerator {
	total := 0
	for _, l := range layers {
		total += l.Count
	}
	if total > Height {
		total = Height
	}
	return &FlatGenerator{layers: layers, top: total - 1}
}

func (g *FlatGenerator) Generate(_, _ int) *ChunkData {
	c := &ChunkData{}

	y := 0
	for _, l := range g.layers {
		for i := 0; i < l.Count && y < Height; i++ {
			for x := 0; x < 16; x++ {
				for z := 0; z < 16; z++ {
					c.SetBlock(x, y, z, l.State)
				}
			}
			y++
		}
	}
	return c
}

// HeightAt returns the Y of the topmost layer, or -1 for an empty stack.
func (g *FlatGenerator) HeightAt(_, _ int) int {
	return g.top
}
