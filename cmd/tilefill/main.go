package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-theft-craft/tilefill/internal/blocks"
	"github.com/go-theft-craft/tilefill/internal/config"
	"github.com/go-theft-craft/tilefill/internal/console"
	"github.com/go-theft-craft/tilefill/internal/events"
	"github.com/go-theft-craft/tilefill/internal/interact"
	"github.com/go-theft-craft/tilefill/internal/metrics"
	"github.com/go-theft-craft/tilefill/internal/storage"
	"github.com/go-theft-craft/tilefill/internal/world"
	"github.com/go-theft-craft/tilefill/internal/world/gen"
	"github.com/go-theft-craft/tilefill/pkg/fill"
)

func main() {
	cfg := config.DefaultConfig()

	configPath := flag.String("config", "", "YAML config file (default $"+config.EnvPath+")")
	flag.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "directory for saved worlds")
	flag.StringVar(&cfg.Generator, "generator", cfg.Generator, "world generator: flat or hills")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "world seed")
	flag.IntVar(&cfg.Fill.MaxTiles, "max-tiles", cfg.Fill.MaxTiles, "maximum blocks changed by one fill")
	flag.IntVar(&cfg.Fill.HeightLimit, "height-limit", cfg.Fill.HeightLimit, "fills on vertical planes stay below this y")
	flag.StringVar(&cfg.Storage.Backend, "storage", cfg.Storage.Backend, "storage backend: file, badger or none")
	flag.StringVar(&cfg.Metrics.Addr, "metrics-addr", cfg.Metrics.Addr, "address for the Prometheus /metrics listener")
	flag.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "log level: debug, info, warn or error")
	flag.Parse()

	explicit := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	fromFile, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	config.Merge(cfg, fromFile, explicit)

	log := cfg.Log.NewLogger(os.Stderr)
	if err := cfg.Validate(); err != nil {
		log.Error("invalid config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("tilefill error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	reg := blocks.Builtin()
	if cfg.BlocksFile != "" {
		var err error
		if reg, err = blocks.LoadFile(cfg.BlocksFile); err != nil {
			return err
		}
		log.Info("loaded block table", "path", cfg.BlocksFile, "blocks", len(reg.All()))
	}
	brush, err := reg.Parse(cfg.Fill.Brush)
	if err != nil {
		return fmt.Errorf("fill.brush: %w", err)
	}

	var layers []gen.Layer
	if cfg.FlatLayers != "" {
		if layers, err = gen.ParseLayers(cfg.FlatLayers); err != nil {
			return fmt.Errorf("flat_layers: %w", err)
		}
	}
	generator, ok := gen.New(cfg.Generator, cfg.Seed, layers)
	if !ok {
		return fmt.Errorf("unknown generator %q", cfg.Generator)
	}
	w := world.NewWorld(generator)
	if cfg.PreGenerate > 0 {
		n := w.PreGenerateRadius(cfg.PreGenerate)
		log.Info("pre-generated chunks", "count", n, "radius", cfg.PreGenerate)
	}

	store, err := storage.Open(cfg.Storage.Backend, cfg.DataDir, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error("close storage", "error", err)
		}
	}()
	if err := store.LoadWorld(w); err != nil {
		return err
	}

	fills := metrics.NewFills()
	observers := []fill.Observer{fills}
	if cfg.Metrics.Addr != "" {
		go func() {
			if err := fills.Serve(ctx, cfg.Metrics.Addr, log); err != nil {
				log.Error("metrics server", "error", err)
			}
		}()
	}
	if cfg.Events.NATSURL != "" {
		notifier, err := events.ConnectNATS(cfg.Events.NATSURL, cfg.Events.Subject, log)
		if err != nil {
			return err
		}
		defer notifier.Close()
		observers = append(observers, notifier)
		log.Info("publishing fill completions", "url", cfg.Events.NATSURL, "subject", cfg.Events.Subject)
	}

	defaults := []fill.Option{
		fill.WithMaxTiles(cfg.Fill.MaxTiles),
		fill.WithHeightLimit(cfg.Fill.HeightLimit),
	}
	runner := fill.NewRunner(fill.States(w), log, defaults, observers...)

	tracker := &interact.Tracker{}
	wand := interact.NewWand(cfg.Fill.WandItem, brush, runner, log)
	dispatcher := &interact.Dispatcher{}
	dispatcher.Register(tracker)
	dispatcher.Register(wand)

	con := console.New(console.Deps{
		World:      w,
		Blocks:     reg,
		Runner:     runner,
		Dispatcher: dispatcher,
		Tracker:    tracker,
		Wand:       wand,
		Store:      store,
		Log:        log,
	}, os.Stdout)

	log.Info("tilefill ready",
		"generator", cfg.Generator,
		"seed", cfg.Seed,
		"storage", cfg.Storage.Backend,
		"spawn_y", w.SpawnHeight(),
		"overrides", w.OverrideCount(),
	)

	if err := con.Run(ctx, os.Stdin); err != nil {
		return err
	}

	// Run waits for in-flight fills before returning.
	if err := store.SaveWorld(w); err != nil {
		return fmt.Errorf("save world: %w", err)
	}
	log.Info("shutdown complete")
	return nil
}
