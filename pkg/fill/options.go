package fill

const (
	// DefaultMaxTiles caps the number of blocks a single fill may touch.
	DefaultMaxTiles = 4096
	// DefaultHeightLimit is the exclusive Y bound for the XY and YZ planes.
	DefaultHeightLimit = 128
)

// Option configures a single Fill or Replace call.
//
// Options only record what the caller actually passed, so an explicit zero
// (for example WithReplacement(Air)) is never mistaken for "use the default".
// Blocks are reduced with Block.Canonical, so a result names exactly what
// a state-backed world stores.
type Option func(*params)

type params struct {
	replacement    Block
	replacementSet bool

	target  Block
	idSet   bool
	dataSet bool

	maxTiles    int
	heightLimit int
}

func defaultParams() params {
	return params{
		replacement: Stone,
		target:      Air,
		maxTiles:    DefaultMaxTiles,
		heightLimit: DefaultHeightLimit,
	}
}

func newParams(opts []Option) params {
	p := defaultParams()
	for _, o := range opts {
		o(&p)
	}
	if p.maxTiles <= 0 {
		p.maxTiles = DefaultMaxTiles
	}
	return p
}

// WithReplacement sets the block written into the region.
func WithReplacement(b Block) Option {
	return func(p *params) {
		p.replacement = b.Canonical()
		p.replacementSet = true
	}
}

// WithTarget sets the block identity the region is made of.
func WithTarget(b Block) Option {
	return func(p *params) {
		p.target = b.Canonical()
		p.idSet = true
		p.dataSet = true
	}
}

// WithTargetID sets only the target block id. For Replace the data value is
// still detected from the surroundings.
func WithTargetID(id int) Option {
	return func(p *params) {
		p.target.ID = id & MaxID
		p.idSet = true
	}
}

// WithTargetData sets only the target data value.
func WithTargetData(data int) Option {
	return func(p *params) {
		p.target.Data = data & MaxData
		p.dataSet = true
	}
}

// WithMaxTiles caps the region size. Non-positive values mean the default.
func WithMaxTiles(n int) Option {
	return func(p *params) {
		p.maxTiles = n
	}
}

// WithHeightLimit sets the exclusive upper Y bound used by the XY and YZ planes.
func WithHeightLimit(y int) Option {
	return func(p *params) {
		p.heightLimit = y
	}
}
