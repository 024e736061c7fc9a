package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/xlab/closer"

	"tilefall/internal/config"
	"tilefall/internal/preview"
	"tilefall/internal/profiling"
	"tilefall/internal/tile"
	"tilefall/internal/world"
	"tilefall/internal/worldgen"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(); err != nil {
		closer.Fatalln("fatal:", err)
	}
	closer.Close()
}

func run() error {
	var (
		seed        = flag.Int64("seed", 1, "world seed")
		width       = flag.Int("width", 0, "world width in tiles (overrides config)")
		height      = flag.Int("height", 0, "world height in tiles (overrides config)")
		configPath  = flag.String("config", "config/tilefall.yaml", "config file path")
		outDir      = flag.String("out", "world", "chunk output directory")
		previewPath = flag.String("preview", "", "write a PNG snapshot of the world to this path")
		scale       = flag.Int("scale", 2, "preview scale factor in pixels per tile")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *width > 0 && *height > 0 {
		cfg.World = config.DefaultWorldGen(*width, *height)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	slog.Info("generating world",
		"seed", *seed,
		"width", cfg.World.Width,
		"height", cfg.World.Height,
	)

	grid := world.NewGrid(cfg.World.Width, cfg.World.Height, tile.Default())
	grid.SetStreamingDistances(cfg.Streaming.LoadDistance, cfg.Streaming.UnloadDistance)

	store, err := world.NewFileStore(*outDir)
	if err != nil {
		return err
	}
	grid.SetStorage(store)

	// Flush modified chunks on any exit path, including SIGINT mid-run.
	closer.Bind(func() {
		n, err := grid.PersistDirty()
		if err != nil {
			slog.Error("persisting chunks", "err", err)
			return
		}
		if n > 0 {
			slog.Info("persisted chunks", "count", n, "dir", *outDir)
		}
	})

	worldgen.GenerateWorld(grid, cfg.World, *seed)

	spawn := grid.FindSpawnPoint()
	if err := grid.UpdateStreaming(spawn); err != nil {
		return fmt.Errorf("streaming around spawn: %w", err)
	}

	slog.Info("world ready",
		"spawn_x", spawn.X(),
		"spawn_y", spawn.Y(),
		"loaded_chunks", grid.LoadedCount(),
	)

	if *previewPath != "" {
		if err := preview.WritePNG(*previewPath, grid, *scale); err != nil {
			return err
		}
		slog.Info("preview written", "path", *previewPath, "scale", *scale)
	}

	slog.Info("timings", "top", profiling.TopN(8))
	return nil
}
