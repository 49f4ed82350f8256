package interact

import (
	"log/slog"
	"sync"

	"github.com/go-theft-craft/tilefill/pkg/fill"
)

// Tracker remembers the most recent event, so a replace issued later
// without a face can reuse the face and block the user last touched.
type Tracker struct {
	mu   sync.Mutex
	last Event
	seen bool
}

func (t *Tracker) HandleUse(ev Event) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.last = ev
	t.seen = true
}

// Last returns the most recent event, false before the first one.
func (t *Tracker) Last() (Event, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.last, t.seen
}

// Replacer schedules a replace; *fill.Runner implements it.
type Replacer interface {
	Replace(in fill.Interaction, opts ...fill.Option) string
}

// Wand replaces the touched region with the brush block whenever the wand
// item is used. Other items are ignored.
type Wand struct {
	item     int
	replacer Replacer
	log      *slog.Logger

	mu    sync.Mutex
	brush fill.Block
}

// NewWand creates a Wand triggered by item id, painting brush.
func NewWand(item int, brush fill.Block, r Replacer, log *slog.Logger) *Wand {
	if log == nil {
		log = slog.Default()
	}
	return &Wand{item: item, brush: brush, replacer: r, log: log}
}

// SetBrush changes the block the wand paints with.
func (w *Wand) SetBrush(b fill.Block) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.brush = b
}

// Brush returns the block the wand paints with.
func (w *Wand) Brush() fill.Block {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.brush
}

func (w *Wand) HandleUse(ev Event) {
	if ev.Item.ID != w.item {
		return
	}
	brush := w.Brush()
	id := w.replacer.Replace(ev.Interaction(), fill.WithReplacement(brush))
	w.log.Debug("wand replace scheduled", "job", id, "pos", ev.Pos, "face", ev.Face, "brush", brush)
}
