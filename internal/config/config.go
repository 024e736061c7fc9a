package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration for world generation and streaming.
type Config struct {
	World     WorldGen  `yaml:"world"`
	Streaming Streaming `yaml:"streaming"`
}

// WorldGen holds the generation inputs: world dimensions, the fixed level
// boundaries (tile rows, growing downward), and optional extensions.
type WorldGen struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	SurfaceLevel     int `yaml:"surface_level"`
	UndergroundLevel int `yaml:"underground_level"`
	CavernLevel      int `yaml:"cavern_level"`
	UnderworldLevel  int `yaml:"underworld_level"`

	// UndergroundBiomes wires in the experimental underground biome overlay
	// and crystal/mushroom cave decoration. Off by default.
	UndergroundBiomes bool `yaml:"underground_biomes"`
}

// Streaming holds the chunk load/unload radii in chunks.
type Streaming struct {
	LoadDistance   int `yaml:"load_distance"`
	UnloadDistance int `yaml:"unload_distance"`
}

// Default returns the configuration for a medium world.
func Default() Config {
	return Config{
		World:     DefaultWorldGen(1200, 400),
		Streaming: Streaming{LoadDistance: 4, UnloadDistance: 6},
	}
}

// DefaultWorldGen derives level boundaries proportional to the world height.
func DefaultWorldGen(width, height int) WorldGen {
	return WorldGen{
		Width:            width,
		Height:           height,
		SurfaceLevel:     height / 4,
		UndergroundLevel: height * 2 / 5,
		CavernLevel:      height * 5 / 8,
		UnderworldLevel:  height * 9 / 10,
	}
}

// Load reads configuration from a YAML file, layered over defaults.
// A missing file is not an error; defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks invariants that generation and streaming rely on.
func (c Config) Validate() error {
	w := c.World
	if w.Width <= 0 || w.Height <= 0 {
		return fmt.Errorf("world size %dx%d must be positive", w.Width, w.Height)
	}
	if !(w.SurfaceLevel < w.UndergroundLevel &&
		w.UndergroundLevel < w.CavernLevel &&
		w.CavernLevel < w.UnderworldLevel &&
		w.UnderworldLevel < w.Height) {
		return fmt.Errorf("level boundaries must increase: surface %d < underground %d < cavern %d < underworld %d < height %d",
			w.SurfaceLevel, w.UndergroundLevel, w.CavernLevel, w.UnderworldLevel, w.Height)
	}
	if c.Streaming.UnloadDistance <= c.Streaming.LoadDistance {
		return fmt.Errorf("unload distance %d must exceed load distance %d",
			c.Streaming.UnloadDistance, c.Streaming.LoadDistance)
	}
	return nil
}
