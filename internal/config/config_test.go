package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"testing"

	"github.com/crispyDyne/Capstone-Vehicle-Sim-Project-Team3/pkg/noise"
	"github.com/crispyDyne/Capstone-Vehicle-Sim-Project-Team3/pkg/terrain"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test terrain defaults
	if cfg.Terrain.Layout != "table_top" {
		t.Errorf("expected layout table_top, got %s", cfg.Terrain.Layout)
	}
	if cfg.Terrain.Size != 10 {
		t.Errorf("expected size 10, got %g", cfg.Terrain.Size)
	}
	if cfg.Terrain.Subdivisions != 4 {
		t.Errorf("expected subdivisions 4, got %d", cfg.Terrain.Subdivisions)
	}
	if cfg.Terrain.Normals != "fixed" {
		t.Errorf("expected fixed normals, got %s", cfg.Terrain.Normals)
	}

	// Test noise defaults
	if cfg.Noise.Seed != DefaultSeed {
		t.Errorf("expected seed %d, got %d", DefaultSeed, cfg.Noise.Seed)
	}
	if cfg.Noise.Kind != noise.KindPerlin {
		t.Errorf("expected perlin noise, got %s", cfg.Noise.Kind)
	}

	// Test export defaults
	if cfg.Export.Dir != "out" {
		t.Errorf("expected export dir 'out', got %s", cfg.Export.Dir)
	}
	if !cfg.Export.CSV || !cfg.Export.JSON {
		t.Error("expected csv and json export to be enabled by default")
	}
	if cfg.Export.PNG {
		t.Error("expected png export to be disabled by default")
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
terrain:
  layout: steps
  size: 4
  heights: [1, 2, 3]
  subdivisions: 2
  normals: gradient

noise:
  kind: simplex
  seed: 99
  octaves: 3

export:
  dir: "/tmp/terrain"
  png: true
  png_resolution: 64

logging:
  level: "debug"
  log_file: "terrain.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Terrain.Layout != "steps" {
		t.Errorf("expected layout steps, got %s", cfg.Terrain.Layout)
	}
	if cfg.Terrain.Size != 4 {
		t.Errorf("expected size 4, got %g", cfg.Terrain.Size)
	}
	if !reflect.DeepEqual(cfg.Terrain.Heights, []float64{1, 2, 3}) {
		t.Errorf("expected heights [1 2 3], got %v", cfg.Terrain.Heights)
	}
	if cfg.Terrain.Normals != "gradient" {
		t.Errorf("expected gradient normals, got %s", cfg.Terrain.Normals)
	}

	// Untouched keys keep their defaults
	if cfg.Terrain.Wavelength != 5 {
		t.Errorf("expected default wavelength 5, got %g", cfg.Terrain.Wavelength)
	}
	if cfg.Noise.Amplitude != 0.5 {
		t.Errorf("expected default amplitude 0.5, got %g", cfg.Noise.Amplitude)
	}

	if cfg.Noise.Kind != noise.KindSimplex || cfg.Noise.Seed != 99 || cfg.Noise.Octaves != 3 {
		t.Errorf("unexpected noise section %+v", cfg.Noise)
	}
	if cfg.Export.Dir != "/tmp/terrain" || !cfg.Export.PNG || cfg.Export.PNGResolution != 64 {
		t.Errorf("unexpected export section %+v", cfg.Export)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "terrain.log" {
		t.Errorf("expected log file 'terrain.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
terrain:
  size: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileUnknownKey(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "typo.yaml")
	if err := os.WriteFile(configPath, []byte("terrain:\n  sise: 3\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if err := loadFromFile(Default(), configPath); err == nil {
		t.Error("expected error for unknown key, got nil")
	}
}

func TestLoadFromFileEmpty(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(configPath, nil, 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("empty file should load, got %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Error("empty file changed the defaults")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.yaml")
	if err := os.WriteFile(good, []byte("terrain:\n  layout: wave\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFile(good)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Terrain.Layout != "wave" {
		t.Errorf("expected layout wave, got %s", cfg.Terrain.Layout)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("terrain:\n  layout: moon\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(bad); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"unknown layout", func(c *Config) { c.Terrain.Layout = "moon" }},
		{"zero size", func(c *Config) { c.Terrain.Size = 0 }},
		{"negative subdivisions", func(c *Config) { c.Terrain.Subdivisions = -1 }},
		{"bad normals", func(c *Config) { c.Terrain.Normals = "sideways" }},
		{"steps without heights", func(c *Config) {
			c.Terrain.Layout = "steps"
			c.Terrain.Heights = nil
		}},
		{"wave without wavelength", func(c *Config) {
			c.Terrain.Layout = "wave"
			c.Terrain.Wavelength = 0
		}},
		{"unknown noise", func(c *Config) {
			c.Terrain.Layout = "perlin"
			c.Noise.Kind = "worley"
		}},
		{"zero probe step", func(c *Config) { c.Export.ProbeStep = 0 }},
		{"tiny png", func(c *Config) {
			c.Export.PNG = true
			c.Export.PNGResolution = 1
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestLayoutParams(t *testing.T) {
	cfg := Default()
	cfg.Terrain.Normals = "gradient"
	cfg.Noise.Seed = 7

	p := cfg.LayoutParams()
	if p.Layout != cfg.Terrain.Layout || p.Size != cfg.Terrain.Size {
		t.Errorf("unexpected params %+v", p)
	}
	if p.Normals != terrain.NormalGradient {
		t.Errorf("expected gradient normals, got %v", p.Normals)
	}
	if p.Noise.Seed != 7 {
		t.Errorf("expected seed 7, got %d", p.Noise.Seed)
	}

	p.Heights[0] = 100
	if cfg.Terrain.Heights[0] == 100 {
		t.Error("params share the heights slice with the config")
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Terrain.Layout = "perlin"
	cfg.Noise.Seed = 1234
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if !reflect.DeepEqual(cfg, loaded) {
		t.Errorf("saved config %+v loaded back as %+v", cfg, loaded)
	}
}

func TestSaveToConfigDir(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME only applies on linux")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := Default()
	cfg.Terrain.Layout = "wave"
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := LoadFile(filepath.Join(ConfigDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if loaded.Terrain.Layout != "wave" {
		t.Errorf("layout = %q, want wave", loaded.Terrain.Layout)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	// Just verify it returns a non-empty path
	// Actual path depends on OS
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}

	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	// No config file exists - should return empty
	path := findConfigFile()
	if path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("terrain:\n  size: 8\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	path = findConfigFile()
	if path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "layout flag",
			setup: func() { *flagLayout = "wave" },
			verify: func(cfg *Config) {
				if cfg.Terrain.Layout != "wave" {
					t.Errorf("expected layout wave, got %s", cfg.Terrain.Layout)
				}
			},
			teardown: func() { *flagLayout = "" },
		},
		{
			name:  "seed flag",
			setup: func() { *flagSeed = 0 },
			verify: func(cfg *Config) {
				if cfg.Noise.Seed != 0 {
					t.Errorf("expected seed 0, got %d", cfg.Noise.Seed)
				}
			},
			teardown: func() { *flagSeed = unsetSeed },
		},
		{
			name:  "seed flag unset",
			setup: func() {},
			verify: func(cfg *Config) {
				if cfg.Noise.Seed != DefaultSeed {
					t.Errorf("expected default seed, got %d", cfg.Noise.Seed)
				}
			},
			teardown: func() {},
		},
		{
			name: "out and normals flags",
			setup: func() {
				*flagOut = "/tmp/out"
				*flagNormals = "gradient"
			},
			verify: func(cfg *Config) {
				if cfg.Export.Dir != "/tmp/out" {
					t.Errorf("expected export dir /tmp/out, got %s", cfg.Export.Dir)
				}
				if cfg.Terrain.Normals != "gradient" {
					t.Errorf("expected gradient normals, got %s", cfg.Terrain.Normals)
				}
			},
			teardown: func() {
				*flagOut = ""
				*flagNormals = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
terrain:
  layout: flat
  size: 6
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagLayout = "perlin"
	defer func() {
		*flagConfig = ""
		*flagLayout = ""
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Layout should be from flag, not file
	if cfg.Terrain.Layout != "perlin" {
		t.Errorf("expected layout perlin from flag, got %s", cfg.Terrain.Layout)
	}

	// Size should be from file since no flag override
	if cfg.Terrain.Size != 6 {
		t.Errorf("expected size 6 from file, got %g", cfg.Terrain.Size)
	}
}
