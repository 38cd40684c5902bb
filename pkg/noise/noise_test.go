package noise

import (
	"errors"
	"math"
	"testing"
)

func TestNewKinds(t *testing.T) {
	for _, kind := range []Kind{KindPerlin, KindSimplex, ""} {
		cfg := DefaultConfig(7)
		cfg.Kind = kind
		if _, err := New(cfg); err != nil {
			t.Errorf("New(%q) error = %v", kind, err)
		}
	}

	cfg := DefaultConfig(7)
	cfg.Kind = "worley"
	if _, err := New(cfg); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("New(worley) error = %v, want ErrUnknownKind", err)
	}
}

func TestSourcesDeterministic(t *testing.T) {
	for _, kind := range []Kind{KindPerlin, KindSimplex} {
		cfg := DefaultConfig(2348956)
		cfg.Kind = kind
		a, _ := New(cfg)
		b, _ := New(cfg)
		for i := 0; i < 100; i++ {
			x := float64(i)*0.173 - 3
			y := float64(i)*0.291 - 5
			if a.Noise2D(x, y) != b.Noise2D(x, y) {
				t.Fatalf("%s noise not deterministic at (%f, %f)", kind, x, y)
			}
		}
	}
}

func TestSeedsDiffer(t *testing.T) {
	for _, kind := range []Kind{KindPerlin, KindSimplex} {
		a, _ := New(Config{Kind: kind, Seed: 1, Octaves: 4})
		b, _ := New(Config{Kind: kind, Seed: 2, Octaves: 4})
		same := true
		for i := 0; i < 50 && same; i++ {
			x := float64(i)*0.37 + 0.11
			y := float64(i)*0.53 + 0.07
			same = a.Noise2D(x, y) == b.Noise2D(x, y)
		}
		if same {
			t.Errorf("%s noise identical for different seeds", kind)
		}
	}
}

func TestSourcesFinite(t *testing.T) {
	for _, kind := range []Kind{KindPerlin, KindSimplex} {
		src, _ := New(Config{Kind: kind, Seed: 42, Octaves: 5})
		lo, hi := math.Inf(1), math.Inf(-1)
		for i := 0; i < 2000; i++ {
			v := src.Noise2D(float64(i)*0.37-300, float64(i)*0.53-300)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("%s Noise2D = %v, want finite", kind, v)
			}
			lo, hi = math.Min(lo, v), math.Max(hi, v)
		}
		if hi-lo < 0.1 {
			t.Errorf("%s noise spans only [%g, %g]", kind, lo, hi)
		}
	}
}

type planeSource struct{}

func (planeSource) Noise2D(x, y float64) float64 { return x + 10*y }

func TestBuildPlaneMapLattice(t *testing.T) {
	m := BuildPlaneMap(planeSource{}, 3, 5, UnitBounds, Bounds{Lo: 0, Hi: 4}, 0)
	if m.Width != 3 || m.Height != 5 {
		t.Fatalf("dims = %dx%d, want 3x5", m.Width, m.Height)
	}
	tests := []struct {
		x, y int
		want float64
	}{
		{0, 0, -1},
		{2, 0, 1},
		{1, 2, 20},
		{2, 4, 41},
	}
	for _, tt := range tests {
		if got := m.Get(tt.x, tt.y); got != tt.want {
			t.Errorf("Get(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}

	scaled := m.Scaled(0.5)
	if scaled[2][4] != 20.5 {
		t.Errorf("Scaled(0.5)[2][4] = %v, want 20.5", scaled[2][4])
	}
}

func TestBuildPlaneMapFrequency(t *testing.T) {
	m := BuildPlaneMap(planeSource{}, 2, 2, UnitBounds, UnitBounds, 3)
	if got := m.Get(1, 0); got != 3-30 {
		t.Errorf("Get(1,0) = %v, want -27", got)
	}
}
