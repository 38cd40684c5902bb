// Package config handles terrainctl configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/crispyDyne/Capstone-Vehicle-Sim-Project-Team3/pkg/layouts"
	"github.com/crispyDyne/Capstone-Vehicle-Sim-Project-Team3/pkg/noise"
	"github.com/crispyDyne/Capstone-Vehicle-Sim-Project-Team3/pkg/terrain"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// DefaultSeed is the noise seed used when none is configured.
const DefaultSeed = 2348956

// Config holds all terrainctl settings.
type Config struct {
	Terrain TerrainConfig `yaml:"terrain"`
	Noise   noise.Config  `yaml:"noise"`
	Export  ExportConfig  `yaml:"export"`
	Logging LoggingConfig `yaml:"logging"`
}

// TerrainConfig selects a layout and its parameters.
type TerrainConfig struct {
	Layout       string    `yaml:"layout"`
	Size         float64   `yaml:"size"`       // tile edge length
	Height       float64   `yaml:"height"`     // table top rise, wave amplitude
	Heights      []float64 `yaml:"heights"`    // one per staircase row
	Wavelength   float64   `yaml:"wavelength"` // wave layout only
	Subdivisions int       `yaml:"subdivisions"`
	Normals      string    `yaml:"normals"` // "fixed" or "gradient"
}

// ExportConfig controls which artifacts terrainctl writes.
type ExportConfig struct {
	Dir           string  `yaml:"dir"`
	CSV           bool    `yaml:"csv"`
	JSON          bool    `yaml:"json"`
	PNG           bool    `yaml:"png"`
	Merged        bool    `yaml:"merged"`         // add a joined world-space mesh to the JSON
	ProbeStep     float64 `yaml:"probe_step"`     // CSV sample spacing
	PNGResolution int     `yaml:"png_resolution"` // pixels along the longer side
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Terrain: TerrainConfig{
			Layout:       layouts.LayoutTableTop,
			Size:         10,
			Height:       1,
			Heights:      []float64{0.5, 1, 1.5},
			Wavelength:   5,
			Subdivisions: 4,
			Normals:      terrain.NormalFixed.String(),
		},
		Noise: noise.DefaultConfig(DefaultSeed),
		Export: ExportConfig{
			Dir:           "out",
			CSV:           true,
			JSON:          true,
			PNG:           false,
			Merged:        false,
			ProbeStep:     0.5,
			PNGResolution: 256,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks the settings a layout build or export depends on.
func (c *Config) Validate() error {
	t := c.Terrain
	if !slices.Contains(layouts.Names(), t.Layout) {
		return fmt.Errorf("%w: terrain.layout %q, want one of %v", ErrInvalid, t.Layout, layouts.Names())
	}
	if !(t.Size > 0) {
		return fmt.Errorf("%w: terrain.size must be positive, got %g", ErrInvalid, t.Size)
	}
	if t.Subdivisions < 0 {
		return fmt.Errorf("%w: terrain.subdivisions must not be negative, got %d", ErrInvalid, t.Subdivisions)
	}
	if t.Normals != "fixed" && t.Normals != "gradient" {
		return fmt.Errorf("%w: terrain.normals %q, want fixed or gradient", ErrInvalid, t.Normals)
	}
	if t.Layout == layouts.LayoutSteps && len(t.Heights) == 0 {
		return fmt.Errorf("%w: terrain.heights is empty", ErrInvalid)
	}
	if t.Layout == layouts.LayoutWave && !(t.Wavelength > 0) {
		return fmt.Errorf("%w: terrain.wavelength must be positive, got %g", ErrInvalid, t.Wavelength)
	}
	if t.Layout == layouts.LayoutPerlin && c.Noise.Kind != noise.KindPerlin && c.Noise.Kind != noise.KindSimplex {
		return fmt.Errorf("%w: noise.kind %q", ErrInvalid, c.Noise.Kind)
	}
	if c.Export.CSV && !(c.Export.ProbeStep > 0) {
		return fmt.Errorf("%w: export.probe_step must be positive, got %g", ErrInvalid, c.Export.ProbeStep)
	}
	if c.Export.PNG && c.Export.PNGResolution < 2 {
		return fmt.Errorf("%w: export.png_resolution must be at least 2, got %d", ErrInvalid, c.Export.PNGResolution)
	}
	return nil
}

// LayoutParams converts the terrain and noise sections into a layout request.
func (c *Config) LayoutParams() layouts.Params {
	return layouts.Params{
		Layout:       c.Terrain.Layout,
		Size:         c.Terrain.Size,
		Height:       c.Terrain.Height,
		Heights:      slices.Clone(c.Terrain.Heights),
		Wavelength:   c.Terrain.Wavelength,
		Subdivisions: c.Terrain.Subdivisions,
		Normals:      terrain.ParseNormalMode(c.Terrain.Normals),
		Noise:        c.Noise,
	}
}
