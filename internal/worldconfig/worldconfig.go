package worldconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jinzhu/copier"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"cube-world/internal/logger"
	"cube-world/internal/mapgen"
)

// ConfigPath is the default config file, relative to the process working directory.
const ConfigPath = "config/world.yaml"

// WorldPrefs holds world size, viewer, and tooling preferences. Persisted across runs.
// Zero values in a loaded file fall back to Default, so every toggle defaults to false.
type WorldPrefs struct {
	Width uint32 `yaml:"width"`
	Depth uint32 `yaml:"depth"`

	WireframeHidden bool  `yaml:"wireframe_hidden,omitempty"`
	ShowFPS         bool  `yaml:"show_fps,omitempty"`
	WindowWidth     int32 `yaml:"window_width"`
	WindowHeight    int32 `yaml:"window_height"`

	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`

	CacheEntries int `yaml:"cache_entries"`

	PreviewPixelsPerUnit int `yaml:"preview_pixels_per_unit"`
	PreviewScale         int `yaml:"preview_scale"`
}

// Default returns default preferences: a 16×16 world in a 1280×720 window.
func Default() WorldPrefs {
	return WorldPrefs{
		Width:                16,
		Depth:                16,
		WindowWidth:          1280,
		WindowHeight:         720,
		LogLevel:             "info",
		LogFile:              logger.LogFilePath,
		CacheEntries:         8,
		PreviewPixelsPerUnit: 48,
		PreviewScale:         1,
	}
}

// Load reads preferences from path and merges them over Default. A missing file
// returns Default() and nil. An unreadable or invalid file returns Default() with the error.
func Load(path string) (WorldPrefs, error) {
	prefs := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return prefs, nil
	}
	if err != nil {
		return prefs, fmt.Errorf("worldconfig: %w", err)
	}
	var file WorldPrefs
	if err := yaml.Unmarshal(data, &file); err != nil {
		return prefs, fmt.Errorf("worldconfig: parse %s: %w", path, err)
	}
	if err := copier.CopyWithOption(&prefs, &file, copier.Option{IgnoreEmpty: true}); err != nil {
		return Default(), fmt.Errorf("worldconfig: merge %s: %w", path, err)
	}
	return prefs, nil
}

// Save writes preferences to path as YAML, creating the directory if needed.
func Save(path string, p WorldPrefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports preferences that cannot be used.
func (p WorldPrefs) Validate() error {
	if tiles := uint64(p.Width) * uint64(p.Depth); tiles > mapgen.MaxTiles {
		return fmt.Errorf("worldconfig: %dx%d world: %w", p.Width, p.Depth, mapgen.ErrTooManyTiles)
	}
	if p.WindowWidth <= 0 || p.WindowHeight <= 0 {
		return fmt.Errorf("worldconfig: window size %dx%d must be positive", p.WindowWidth, p.WindowHeight)
	}
	if p.CacheEntries < 0 {
		return fmt.Errorf("worldconfig: cache_entries %d is negative", p.CacheEntries)
	}
	if p.PreviewPixelsPerUnit <= 0 || p.PreviewScale <= 0 {
		return fmt.Errorf("worldconfig: preview resolution must be positive")
	}
	if _, err := logrus.ParseLevel(p.LogLevel); err != nil {
		return fmt.Errorf("worldconfig: %w", err)
	}
	return nil
}
