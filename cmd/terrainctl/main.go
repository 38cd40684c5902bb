// Package main is the entry point for terrainctl, which builds a terrain
// layout, optionally probes it and exports its artifacts.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/crispyDyne/Capstone-Vehicle-Sim-Project-Team3/internal/config"
	"github.com/crispyDyne/Capstone-Vehicle-Sim-Project-Team3/internal/export"
	"github.com/crispyDyne/Capstone-Vehicle-Sim-Project-Team3/internal/logger"
	"github.com/crispyDyne/Capstone-Vehicle-Sim-Project-Team3/internal/world"
)

var (
	flagProbe    = flag.String("probe", "", "World point x,y,z to test for contact")
	flagNoExport = flag.Bool("no-export", false, "Skip writing artifacts")
	flagSave     = flag.Bool("save-config", false, "Write the effective config to the user config directory")
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== terrainctl ===", zap.String("layout", cfg.Terrain.Layout))
	logger.Sugar.Debugf("Config: %+v", cfg)

	if *flagSave {
		if err := cfg.Save(); err != nil {
			logger.Error("could not save config", zap.Error(err))
		} else {
			logger.Info("config saved", zap.String("dir", config.ConfigDir()))
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	w, err := world.Build(cfg)
	if err != nil {
		logger.Fatal("failed to build terrain", zap.Error(err))
	}

	if *flagProbe != "" {
		p, err := parsePoint(*flagProbe)
		if err != nil {
			logger.Fatal("bad probe", zap.String("probe", *flagProbe), zap.Error(err))
		}
		probe(w, p)
	}

	if *flagNoExport {
		return
	}
	m, err := export.Run(ctx, w, cfg)
	if err != nil {
		logger.Fatal("export failed", zap.Error(err))
	}
	if len(m.Files) == 0 {
		logger.Warn("no artifacts enabled; wrote manifest only", zap.String("dir", cfg.Export.Dir))
	}
	logger.Info("export complete",
		zap.String("dir", cfg.Export.Dir),
		zap.String("run_id", m.RunID),
		zap.Strings("files", m.Files))
}

func probe(w *world.World, p r3.Vec) {
	if i, j, lx, ly, ok := w.Locate(p.X, p.Y); ok {
		logger.Debug("probe tile", zap.Int("row", i), zap.Int("col", j),
			zap.Float64("local_x", lx), zap.Float64("local_y", ly))
	}
	in, ok := w.Interference(p)
	if !ok {
		logger.Info("probe clear", zap.Float64("x", p.X), zap.Float64("y", p.Y), zap.Float64("z", p.Z))
		return
	}
	logger.Info("probe contact",
		zap.Float64("depth", in.Magnitude),
		zap.Float64("surface_z", in.Position.Z),
		zap.Float64s("normal", []float64{in.Normal.X, in.Normal.Y, in.Normal.Z}))
}

// parsePoint reads "x,y,z".
func parsePoint(s string) (r3.Vec, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return r3.Vec{}, fmt.Errorf("want x,y,z, got %q", s)
	}
	var v [3]float64
	for k, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return r3.Vec{}, fmt.Errorf("coordinate %d: %w", k, err)
		}
		v[k] = f
	}
	return r3.Vec{X: v[0], Y: v[1], Z: v[2]}, nil
}
