// Package export writes terrain artifacts: probed surface samples as CSV,
// placed meshes as JSON, a height map PNG and a YAML run manifest.
package export

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/crispyDyne/Capstone-Vehicle-Sim-Project-Team3/internal/config"
	"github.com/crispyDyne/Capstone-Vehicle-Sim-Project-Team3/internal/logger"
	"github.com/crispyDyne/Capstone-Vehicle-Sim-Project-Team3/internal/world"
)

// Output file names inside the export directory.
const (
	SamplesFile  = "samples.csv"
	MeshFile     = "mesh.json"
	HeightFile   = "height.png"
	ManifestFile = "manifest.yaml"
)

// Manifest records what a run produced and how to reproduce it.
type Manifest struct {
	RunID     string               `yaml:"run_id"`
	Created   time.Time            `yaml:"created"`
	Terrain   config.TerrainConfig `yaml:"terrain"`
	Seed      int64                `yaml:"seed"`
	NoiseKind string               `yaml:"noise_kind"`
	Bounds    world.Bounds         `yaml:"bounds"`
	Samples   int                  `yaml:"samples,omitempty"`
	Vertices  int                  `yaml:"vertices,omitempty"`
	Triangles int                  `yaml:"triangles,omitempty"`
	Files     []string             `yaml:"files"`
}

// WriteManifest writes m as YAML to dir/manifest.yaml.
func WriteManifest(dir string, m *Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("export: encode manifest: %w", err)
	}
	return os.WriteFile(filepath.Join(dir, ManifestFile), data, 0644)
}

// ReadManifest loads a manifest written by WriteManifest.
func ReadManifest(dir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("export: decode manifest: %w", err)
	}
	return &m, nil
}

// Run writes every artifact cfg.Export enables into cfg.Export.Dir, then
// the manifest.
func Run(ctx context.Context, w *world.World, cfg *config.Config) (*Manifest, error) {
	log := logger.Named("export")
	dir := cfg.Export.Dir
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("export: create %s: %w", dir, err)
	}

	m := &Manifest{
		RunID:     uuid.NewString(),
		Created:   time.Now().UTC().Truncate(time.Second),
		Terrain:   cfg.Terrain,
		Seed:      cfg.Noise.Seed,
		NoiseKind: string(cfg.Noise.Kind),
		Bounds:    w.Bounds(),
	}

	if cfg.Export.CSV {
		err := writeFile(dir, SamplesFile, func(f io.Writer) (err error) {
			m.Samples, err = WriteSamplesCSV(ctx, f, w, cfg.Export.ProbeStep)
			return err
		})
		if err != nil {
			return nil, err
		}
		m.Files = append(m.Files, SamplesFile)
		log.Info("wrote samples", zap.String("file", SamplesFile), zap.Int("rows", m.Samples))
	}

	if cfg.Export.JSON {
		err := writeFile(dir, MeshFile, func(f io.Writer) error {
			doc, err := WriteMeshJSON(f, cfg.Terrain.Layout, w, cfg.Export.Merged)
			m.Vertices, m.Triangles = doc.Vertices, doc.Triangles
			return err
		})
		if err != nil {
			return nil, err
		}
		m.Files = append(m.Files, MeshFile)
		log.Info("wrote meshes", zap.String("file", MeshFile),
			zap.Int("vertices", m.Vertices), zap.Int("triangles", m.Triangles))
	}

	if cfg.Export.PNG {
		err := writeFile(dir, HeightFile, func(f io.Writer) error {
			return WriteHeightPNG(ctx, f, w, cfg.Export.PNGResolution)
		})
		if err != nil {
			return nil, err
		}
		m.Files = append(m.Files, HeightFile)
		log.Info("wrote height map", zap.String("file", HeightFile), zap.Int("resolution", cfg.Export.PNGResolution))
	}

	if err := WriteManifest(dir, m); err != nil {
		return nil, err
	}
	log.Debug("manifest written", zap.String("run_id", m.RunID), zap.Strings("files", m.Files))
	return m, nil
}

func writeFile(dir, name string, write func(io.Writer) error) error {
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
