// Command dmd downloads a minecraft-data block table for tilefill's
// blocks_file setting.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	get "github.com/hashicorp/go-getter"

	"github.com/go-theft-craft/tilefill/internal/blocks"
)

func main() {
	var (
		base     = flag.String("base", "https://github.com/PrismarineJS/minecraft-data.git", "base url")
		platform = flag.String("platform", "pc", "platform of the data")
		ver      = flag.String("version", "1.8", "game version")
		out      = flag.String("o", "./data/blocks", "output dir path")
	)
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := download(*base, *platform, *ver, *out, log); err != nil {
		log.Error("download failed", "error", err)
		os.Exit(1)
	}
}

func download(base, platform, ver, out string, log *slog.Logger) error {
	switch {
	case out == "":
		return fmt.Errorf("output dir path required")
	case platform == "":
		return fmt.Errorf("platform required")
	case ver == "":
		return fmt.Errorf("version required")
	}

	path := filepath.Join(out, platform+"-"+ver)
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("clear %s: %w", path, err)
	}

	// https://github.com/PrismarineJS/minecraft-data/tree/master/data/pc/1.8
	url := fmt.Sprintf("git::%s//data/%s/%s", base, platform, ver)
	log.Info("downloading", "url", url, "dir", path)
	if err := get.Get(path, url); err != nil {
		return fmt.Errorf("get %s: %w", url, err)
	}

	blocksFile := filepath.Join(path, "blocks.json")
	reg, err := blocks.LoadFile(blocksFile)
	if err != nil {
		return err
	}
	log.Info("done", "blocks_file", blocksFile, "blocks", len(reg.All()))
	return nil
}
