package render

import (
	"math"
	"testing"

	"quasilab.cc/torus/flattorus"
)

func TestDensityGrid(t *testing.T) {
	ln, err := flattorus.Generate(flattorus.Point{}, flattorus.SlopeOf(math.Sqrt2), 50, 50000)
	if err != nil {
		t.Fatal(err)
	}
	g, err := NewDensityGrid(ln, 32)
	if err != nil {
		t.Fatal(err)
	}
	c, r := g.Dims()
	if c != 32 || r != 32 {
		t.Fatalf("Dims = %d, %d", c, r)
	}
	var max, filled float64
	for iy := 0; iy < r; iy++ {
		for ix := 0; ix < c; ix++ {
			z := g.Z(ix, iy)
			if z < 0 || z > 1 {
				t.Fatalf("Z(%d,%d) = %v outside [0, 1]", ix, iy, z)
			}
			if z > max {
				max = z
			}
			if z > 0 {
				filled++
			}
		}
	}
	if max != 1 {
		t.Errorf("max bin %v, want 1 after normalization", max)
	}
	// A dense orbit run long enough touches most of the square.
	if frac := filled / float64(c*r); frac < 0.9 {
		t.Errorf("only %.0f%% of bins filled", 100*frac)
	}
	if g.X(0) <= 0 || g.X(c-1) >= 1 || g.Y(0) <= 0 || g.Y(r-1) >= 1 {
		t.Errorf("bin centers outside unit square: X [%v, %v] Y [%v, %v]",
			g.X(0), g.X(c-1), g.Y(0), g.Y(r-1))
	}
}

func TestDensityGridInvalid(t *testing.T) {
	if _, err := NewDensityGrid(flattorus.Line{}, 1); err == nil {
		t.Error("bins 1 accepted")
	}
}
