package storage

import "github.com/go-theft-craft/tilefill/internal/world"

// WorldData is the serializable set of block overrides.
type WorldData struct {
	Overrides []BlockOverride `json:"overrides"`
}

// BlockOverride is a single modified block.
type BlockOverride struct {
	X       int   `json:"x"`
	Y       int   `json:"y"`
	Z       int   `json:"z"`
	StateID int32 `json:"state_id"`
}

func toOverrideMap(list []BlockOverride, into map[world.BlockPos]int32) {
	for _, o := range list {
		into[world.BlockPos{X: o.X, Y: o.Y, Z: o.Z}] = o.StateID
	}
}
