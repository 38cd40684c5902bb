package config

import "flag"

// unsetSeed marks the -seed flag as not given.
const unsetSeed = -1

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagLayout  = flag.String("layout", "", "Terrain layout (flat, table_top, steps, wave, perlin)")
	flagSeed    = flag.Int64("seed", unsetSeed, "Noise seed (-1 keeps the configured seed)")
	flagOut     = flag.String("out", "", "Export directory")
	flagNormals = flag.String("normals", "", "Contact normals for sloped tiles (fixed, gradient)")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagLayout != "" {
		cfg.Terrain.Layout = *flagLayout
	}
	if *flagSeed != unsetSeed {
		cfg.Noise.Seed = *flagSeed
	}
	if *flagOut != "" {
		cfg.Export.Dir = *flagOut
	}
	if *flagNormals != "" {
		cfg.Terrain.Normals = *flagNormals
	}
}
