package core

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config for the engine run.
type Config struct {
	Title      string     `toml:"title"`
	Width      int        `toml:"width"`
	Height     int        `toml:"height"`
	VSync      bool       `toml:"vsync"`
	ClearColor [4]float32 `toml:"clear_color"` // RGBA
	AssetRoot  string     `toml:"asset_root"`  // base dir for shaders/textures
}

// DefaultConfig returns a 1280x720 vsynced window over dark gray.
func DefaultConfig() Config {
	return Config{
		Title:      "Aeon",
		Width:      1280,
		Height:     720,
		VSync:      true,
		ClearColor: [4]float32{0.08, 0.10, 0.12, 1},
		AssetRoot:  "assets",
	}
}

// LoadConfig reads a TOML config file over DefaultConfig. A missing
// file is not an error: the defaults are returned as-is.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	return cfg, nil
}
