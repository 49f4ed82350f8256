// Package blocks resolves block names to block identities.
package blocks

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/go-theft-craft/tilefill/pkg/fill"
)

// ErrUnknownBlock is returned by Parse for names the registry does not know.
var ErrUnknownBlock = errors.New("unknown block")

// Block is one entry of a minecraft-data blocks.json.
type Block struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	DisplayName string      `json:"displayName"`
	Variations  []Variation `json:"variations,omitempty"`
}

type Variation struct {
	Metadata    int    `json:"metadata"`
	DisplayName string `json:"displayName"`
}

// Registry indexes blocks by id and by name.
type Registry struct {
	byID   map[int]Block
	byName map[string]Block
}

// New builds a registry. Later entries win on duplicate ids or names.
func New(list []Block) *Registry {
	r := &Registry{
		byID:   make(map[int]Block, len(list)),
		byName: make(map[string]Block, len(list)),
	}
	for _, b := range list {
		r.byID[b.ID] = b
		r.byName[strings.ToLower(b.Name)] = b
	}
	return r
}

// LoadFile reads a minecraft-data blocks.json (see cmd/dmd).
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read blocks: %w", err)
	}
	var list []Block
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("parse blocks %s: %w", path, err)
	}
	return New(list), nil
}

func (r *Registry) ByID(id int) (Block, bool) {
	b, ok := r.byID[id]
	return b, ok
}

func (r *Registry) ByName(name string) (Block, bool) {
	b, ok := r.byName[strings.ToLower(strings.TrimPrefix(name, "minecraft:"))]
	return b, ok
}

// All returns every block ordered by id.
func (r *Registry) All() []Block {
	out := make([]Block, 0, len(r.byID))
	for _, b := range r.byID {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Names returns every block name in id order.
func (r *Registry) Names() []string {
	all := r.All()
	names := make([]string, len(all))
	for i, b := range all {
		names[i] = b.Name
	}
	return names
}

// Parse resolves "stone", "minecraft:wool:14", "35" or "35:14".
// Numeric ids need not be in the registry.
func (r *Registry) Parse(s string) (fill.Block, error) {
	s = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "minecraft:")
	name, dataStr, hasData := strings.Cut(s, ":")

	var b fill.Block
	if id, err := strconv.Atoi(name); err == nil {
		if id < 0 || id > 4095 {
			return fill.Block{}, fmt.Errorf("%w: id %d out of range", ErrUnknownBlock, id)
		}
		b.ID = id
	} else {
		entry, ok := r.ByName(name)
		if !ok {
			return fill.Block{}, fmt.Errorf("%w: %q", ErrUnknownBlock, name)
		}
		b.ID = entry.ID
	}

	if hasData {
		data, err := strconv.Atoi(dataStr)
		if err != nil || data < 0 || data > 15 {
			return fill.Block{}, fmt.Errorf("block %q: bad data value %q", s, dataStr)
		}
		b.Data = data
	}
	return b, nil
}

// Format renders a block as name[:data], falling back to the numeric id.
func (r *Registry) Format(b fill.Block) string {
	name := strconv.Itoa(b.ID)
	if entry, ok := r.ByID(b.ID); ok {
		name = entry.Name
	}
	if b.Data != 0 {
		return fmt.Sprintf("%s:%d", name, b.Data)
	}
	return name
}

// Describe returns the display name of a block, including its variation
// when the registry knows one.
func (r *Registry) Describe(b fill.Block) string {
	entry, ok := r.ByID(b.ID)
	if !ok {
		return b.String()
	}
	for _, v := range entry.Variations {
		if v.Metadata == b.Data {
			return v.DisplayName
		}
	}
	return entry.DisplayName
}
