package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable consulted when no -config flag is given.
const EnvPath = "TILEFILL_CONFIG"

// Config holds the tool configuration.
type Config struct {
	DataDir     string `yaml:"data_dir"`
	Generator   string `yaml:"generator"`   // "flat" or "hills"
	FlatLayers  string `yaml:"flat_layers"` // e.g. "7,1*2,3,2"; empty = default stack
	Seed        int64  `yaml:"seed"`
	PreGenerate int    `yaml:"pregenerate_radius"` // chunks around the origin generated at startup
	BlocksFile  string `yaml:"blocks_file"`        // minecraft-data blocks.json; empty = builtin table

	Fill    FillConfig    `yaml:"fill"`
	Storage StorageConfig `yaml:"storage"`
	Metrics MetricsConfig `yaml:"metrics"`
	Events  EventsConfig  `yaml:"events"`
	Log     LogConfig     `yaml:"log"`
}

type FillConfig struct {
	MaxTiles    int    `yaml:"max_tiles"`
	HeightLimit int    `yaml:"height_limit"`
	WandItem    int    `yaml:"wand_item"` // item id that triggers a replace on use
	Brush       string `yaml:"brush"`     // block the wand paints with
}

type StorageConfig struct {
	Backend string `yaml:"backend"` // "file", "badger" or "none"
}

type MetricsConfig struct {
	Addr string `yaml:"addr"` // empty disables the /metrics listener
}

type EventsConfig struct {
	NATSURL string `yaml:"nats_url"` // empty disables publishing
	Subject string `yaml:"subject"`
}

type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		DataDir:   "./data",
		Generator: "flat",
		Fill: FillConfig{
			MaxTiles:    4096,
			HeightLimit: 128,
			WandItem:    280, // stick
			Brush:       "stone",
		},
		Storage: StorageConfig{Backend: "file"},
		Events:  EventsConfig{Subject: "tilefill.fills"},
		Log:     LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads a YAML file on top of DefaultConfig. An empty path falls back
// to $TILEFILL_CONFIG; if that is empty too, the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		path = os.Getenv(EnvPath)
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error
	if c.Fill.MaxTiles <= 0 {
		errs = append(errs, fmt.Errorf("fill.max_tiles must be positive, got %d", c.Fill.MaxTiles))
	}
	if c.Fill.HeightLimit <= 0 {
		errs = append(errs, fmt.Errorf("fill.height_limit must be positive, got %d", c.Fill.HeightLimit))
	}
	switch c.Generator {
	case "flat", "hills":
	default:
		errs = append(errs, fmt.Errorf("unknown generator %q", c.Generator))
	}
	switch c.Storage.Backend {
	case "file", "badger", "none":
	default:
		errs = append(errs, fmt.Errorf("unknown storage backend %q", c.Storage.Backend))
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.Log.Format))
	}
	return errors.Join(errs...)
}

// Merge applies file-loaded config values into cfg, but only for fields
// that were NOT explicitly set via CLI flags. explicitFlags contains the
// flag names that were explicitly provided on the command line.
func Merge(cfg *Config, fromFile *Config, explicitFlags map[string]bool) {
	if !explicitFlags["data-dir"] {
		cfg.DataDir = fromFile.DataDir
	}
	if !explicitFlags["generator"] {
		cfg.Generator = fromFile.Generator
	}
	if !explicitFlags["seed"] {
		cfg.Seed = fromFile.Seed
	}
	if !explicitFlags["max-tiles"] {
		cfg.Fill.MaxTiles = fromFile.Fill.MaxTiles
	}
	if !explicitFlags["height-limit"] {
		cfg.Fill.HeightLimit = fromFile.Fill.HeightLimit
	}
	if !explicitFlags["storage"] {
		cfg.Storage.Backend = fromFile.Storage.Backend
	}
	if !explicitFlags["metrics-addr"] {
		cfg.Metrics.Addr = fromFile.Metrics.Addr
	}
	if !explicitFlags["log-level"] {
		cfg.Log.Level = fromFile.Log.Level
	}

	// File-only settings.
	cfg.FlatLayers = fromFile.FlatLayers
	cfg.PreGenerate = fromFile.PreGenerate
	cfg.BlocksFile = fromFile.BlocksFile
	cfg.Fill.WandItem = fromFile.Fill.WandItem
	cfg.Fill.Brush = fromFile.Fill.Brush
	cfg.Events = fromFile.Events
	cfg.Log.Format = fromFile.Log.Format
}
