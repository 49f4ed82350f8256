package gen

import (
	"math"

	"github.com/aquilax/go-perlin"
)

const (
	seaLevel   = 62
	hillsBase  = 64.0
	hillsRange = 24.0
	hillsScale = 1.0 / 64.0
)

// HillsGenerator produces rolling terrain from 2-D Perlin noise:
// bedrock floor, stone body, three layers of dirt under grass, and water
// filling every column up to sea level. Shores below sea level get sand.
type HillsGenerator struct {
	noise *perlin.Perlin
}

// NewHillsGenerator creates a HillsGenerator from a seed.
func NewHillsGenerator(seed int64) *HillsGenerator {
	return &HillsGenerator{
		// alpha 2 (smoothing), beta 2 (frequency), 3 octaves.
		noise: perlin.NewPerlin(2, 2, 3, seed),
	}
}

func (g *HillsGenerator) Generate(chunkX, chunkZ int) *ChunkData {
	c := &ChunkData{}

	for x := 0; x < 16; x++ {
		for z := 0; z < 16; z++ {
			h := g.HeightAt(chunkX*16+x, chunkZ*16+z)
			c.SetBlock(x, 0, z, blockBedrock<<4)
			for y := 1; y <= h; y++ {
				var state uint16
				switch {
				case y == h && h < seaLevel:
					state = blockSand << 4
				case y == h:
					state = blockGrass << 4
				case y >= h-3:
					state = blockDirt << 4
				default:
					state = blockStone << 4
				}
				c.SetBlock(x, y, z, state)
			}
			for y := h + 1; y <= seaLevel; y++ {
				c.SetBlock(x, y, z, blockWater<<4)
			}
		}
	}
	return c
}

func (g *HillsGenerator) HeightAt(blockX, blockZ int) int {
	n := g.noise.Noise2D(float64(blockX)*hillsScale, float64(blockZ)*hillsScale)
	h := int(math.Round(hillsBase + n*hillsRange))
	if h < 1 {
		h = 1
	}
	if h > Height-1 {
		h = Height - 1
	}
	return h
}
