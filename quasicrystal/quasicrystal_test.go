package quasicrystal

import (
	"errors"
	"math"
	"testing"

	"github.com/jbeda/geom"
)

func countKinds(ts []Tile) (red, blue int) {
	for _, t := range ts {
		if t.Kind == Red {
			red++
		} else {
			blue++
		}
	}
	return red, blue
}

func TestWheel(t *testing.T) {
	ts, err := Wheel(10, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(ts) != 10 {
		t.Fatalf("got %d tiles", len(ts))
	}
	red, blue := countKinds(ts)
	if red != 5 || blue != 5 {
		t.Errorf("wheel kinds %d red, %d blue", red, blue)
	}
	for i, tile := range ts {
		if tile.A != (geom.Coord{}) {
			t.Errorf("tile %d apex %v, want origin", i, tile.A)
		}
	}
}

// Red triangles split into two children, blue into three.
func TestSubdivideCounts(t *testing.T) {
	seed := []Tile{{Kind: Red, B: geom.Coord{X: 1}, C: geom.Coord{X: math.Cos(math.Pi / 5), Y: math.Sin(math.Pi / 5)}}}
	one, err := Subdivide(seed, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(one) != 2 {
		t.Fatalf("red subdivided into %d", len(one))
	}

	seed[0].Kind = Blue
	one, _ = Subdivide(seed, 1)
	if len(one) != 3 {
		t.Fatalf("blue subdivided into %d", len(one))
	}
}

func TestPenroseGrowth(t *testing.T) {
	prev := 10
	for it := 1; it <= 5; it++ {
		ts, err := Penrose(it, 1)
		if err != nil {
			t.Fatal(err)
		}
		if len(ts) <= prev {
			t.Fatalf("iteration %d: %d tiles, not growing past %d", it, len(ts), prev)
		}
		t.Logf("iteration %d: %d tiles", it, len(ts))
		prev = len(ts)
	}
}

// Subdivision must preserve coverage: child vertices stay within the
// parent wheel's bounds.
func TestSubdivideBounded(t *testing.T) {
	ts, err := Penrose(4, 1)
	if err != nil {
		t.Fatal(err)
	}
	bounds := geom.Rect{Min: geom.Coord{X: -1.001, Y: -1.001}, Max: geom.Coord{X: 1.001, Y: 1.001}}
	for i, tile := range ts {
		if !bounds.ContainsRect(tile.Bounds()) {
			t.Fatalf("tile %d escapes the seed decagon: %v", i, tile.Bounds())
		}
	}
}

func TestCull(t *testing.T) {
	ts, err := Penrose(3, 1)
	if err != nil {
		t.Fatal(err)
	}
	half := geom.Rect{Min: geom.Coord{X: 0, Y: 0}, Max: geom.Coord{X: 1, Y: 1}}
	kept := Cull(ts, half)
	if len(kept) == 0 || len(kept) >= len(ts) {
		t.Fatalf("cull kept %d of %d", len(kept), len(ts))
	}
}

func TestCutProject(t *testing.T) {
	pr, err := CutProject(math.Phi, 2000, 0.3)
	if err != nil {
		t.Fatal(err)
	}
	if len(pr.Lattice) == 0 || len(pr.Accepted) == 0 {
		t.Fatal("empty projection")
	}
	if len(pr.Accepted) != len(pr.Projected) {
		t.Fatalf("%d accepted, %d projected", len(pr.Accepted), len(pr.Projected))
	}
	theta := math.Atan(math.Phi)
	sin, cos := math.Sincos(theta)
	for i, p := range pr.Accepted {
		if perp := -p.X*sin + p.Y*cos; math.Abs(perp) >= 0.3 {
			t.Fatalf("accepted point %v outside window: %v", p, perp)
		}
		if want := p.X*cos + p.Y*sin; pr.Projected[i] != want {
			t.Fatalf("projected[%d] = %v, want %v", i, pr.Projected[i], want)
		}
	}
	t.Logf("%d lattice, %d accepted", len(pr.Lattice), len(pr.Accepted))
}

func TestDiffractionSymmetry(t *testing.T) {
	g, err := Diffraction(5, 101, 2)
	if err != nil {
		t.Fatal(err)
	}
	c, r := g.Dims()
	if c != 101 || r != 101 {
		t.Fatalf("Dims = %d, %d", c, r)
	}
	if g.Min() < 0 {
		t.Errorf("negative intensity %v", g.Min())
	}
	// Intensity is maximal at the origin where all waves align.
	center := g.Z(50, 50)
	if math.Abs(center-25) > 1e-9 {
		t.Errorf("center intensity %v, want 25", center)
	}
	if g.Max() > 25+1e-9 {
		t.Errorf("max intensity %v exceeds wave-count bound", g.Max())
	}
}

func TestQuasiperiodic1D(t *testing.T) {
	xs := []float64{0, 0.5, 1}
	f := Quasiperiodic1D(xs, []float64{1, math.Sqrt2})
	if len(f) != 3 {
		t.Fatalf("got %d values", len(f))
	}
	if math.Abs(f[0]-2) > 1e-12 {
		t.Errorf("f(0) = %v, want 2", f[0])
	}
}

func TestQuasiperiodic2D(t *testing.T) {
	g, err := Quasiperiodic2D(PentagonalFreqs(), 10, 64)
	if err != nil {
		t.Fatal(err)
	}
	if g.Max() > 3+1e-9 || g.Min() < -3-1e-9 {
		t.Errorf("range [%v, %v] outside [-3, 3]", g.Min(), g.Max())
	}
	// All three waves align at the origin.
	if v := g.Z(31, 31); v < 2 {
		t.Logf("near-origin value %v", v)
	}
}

func TestInvalid(t *testing.T) {
	if _, err := Wheel(0, 1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Wheel(0): %v", err)
	}
	if _, err := Subdivide(nil, -1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Subdivide(-1): %v", err)
	}
	if _, err := CutProject(math.NaN(), 100, 0.1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("CutProject NaN: %v", err)
	}
	if _, err := Diffraction(0, 10, 1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Diffraction(0): %v", err)
	}
	if _, err := Quasiperiodic2D(nil, 1, 10); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Quasiperiodic2D(nil): %v", err)
	}
}

func BenchmarkSubdivide(b *testing.B) {
	seed, _ := Wheel(10, 1)
	for n := 0; n < b.N; n++ {
		_, _ = Subdivide(seed, 6)
	}
}
