// Package config loads the JSON configuration that parameterizes a
// Translator: its geometry and where its swap file lives. The loader is
// grounded on the teacher's CargarConfiguracion[T any] generic pattern
// (utils/modulo.go), adapted to return an error instead of calling
// os.Exit -- this package is a library import, not a main package, so
// it must let the caller decide how to react to a bad config file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tp-go-memoria/vmemoria/geometry"
)

// Config is the on-disk shape of a translator's parameters.
type Config struct {
	OffsetWidth  int    `json:"offset_width"`
	TableDepth   int    `json:"table_depth"`
	FrameCount   int    `json:"frame_count"`
	SwapfilePath string `json:"swapfile_path"`
	LogLevel     string `json:"log_level"`
}

// Geometry extracts the geometry.Geometry this config describes.
func (c Config) Geometry() geometry.Geometry {
	return geometry.Geometry{W: c.OffsetWidth, D: c.TableDepth, F: c.FrameCount}
}

// Load reads and decodes the JSON configuration at path, then validates
// the geometry it describes.
func Load(path string) (Config, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: resolving path %q: %w", path, err)
	}

	file, err := os.Open(absPath)
	if err != nil {
		return Config{}, fmt.Errorf("config: opening %q: %w", absPath, err)
	}
	defer file.Close()

	var cfg Config
	if err := json.NewDecoder(file).Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decoding %q: %w", absPath, err)
	}

	if err := cfg.Geometry().Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %q describes an invalid geometry: %w", absPath, err)
	}

	return cfg, nil
}

// LogLevelOrDefault parses LogLevel the way the teacher's logger.go does
// (utils/logger.go switch over debug/info/warn/error), defaulting to
// "info" for anything else or empty.
func (c Config) LogLevelOrDefault() string {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
		return c.LogLevel
	default:
		return "info"
	}
}
