package quasicrystal

import (
	"fmt"
	"math"

	"github.com/jbeda/geom"
	"gonum.org/v1/gonum/floats"
)

// Projection is the result of the cut-and-project construction: the
// square lattice, the subset accepted by the window, and the accepted
// points projected onto the cut line.
type Projection struct {
	Slope     float64
	Width     float64
	Lattice   []geom.Coord
	Accepted  []geom.Coord
	Projected []float64
}

// CutProject builds a 1D quasicrystal by cutting a strip of the given
// width along the line of the given slope through the 2D integer
// lattice and projecting the captured points onto it. Irrational
// slopes yield aperiodic point sets. nPoints bounds the lattice size;
// the lattice spans [-n, n)^2 for n = floor(sqrt(nPoints)).
func CutProject(slope float64, nPoints int, width float64) (*Projection, error) {
	if math.IsNaN(slope) || math.IsInf(slope, 0) {
		return nil, fmt.Errorf("%w: slope %v", ErrInvalidArgument, slope)
	}
	if nPoints < 1 || !(width > 0) {
		return nil, fmt.Errorf("%w: nPoints %d width %v", ErrInvalidArgument, nPoints, width)
	}

	n := int(math.Sqrt(float64(nPoints)))
	if n < 1 {
		n = 1
	}
	theta := math.Atan(slope)
	sin, cos := math.Sincos(theta)

	pr := &Projection{Slope: slope, Width: width}
	for y := -n; y < n; y++ {
		for x := -n; x < n; x++ {
			p := geom.Coord{X: float64(x), Y: float64(y)}
			pr.Lattice = append(pr.Lattice, p)
			if perp := -p.X*sin + p.Y*cos; math.Abs(perp) < width {
				pr.Accepted = append(pr.Accepted, p)
				pr.Projected = append(pr.Projected, p.X*cos+p.Y*sin)
			}
		}
	}
	return pr, nil
}

// Grid is a scalar field sampled on a size^2 grid over
// [-extent, extent]^2, row-major with x fastest. It implements the
// GridXYZ interface of gonum/plot's heat map and contour plotters.
type Grid struct {
	xs, ys []float64
	v      []float64
}

func newGrid(extent float64, size int) *Grid {
	return &Grid{
		xs: floats.Span(make([]float64, size), -extent, extent),
		ys: floats.Span(make([]float64, size), -extent, extent),
		v:  make([]float64, size*size),
	}
}

func (g *Grid) Dims() (c, r int)   { return len(g.xs), len(g.ys) }
func (g *Grid) X(c int) float64    { return g.xs[c] }
func (g *Grid) Y(r int) float64    { return g.ys[r] }
func (g *Grid) Z(c, r int) float64 { return g.v[r*len(g.xs)+c] }

// Max returns the largest sampled value.
func (g *Grid) Max() float64 { return floats.Max(g.v) }

// Min returns the smallest sampled value.
func (g *Grid) Min() float64 { return floats.Min(g.v) }

// Diffraction samples the squared interference intensity of folds
// plane waves spread evenly over the half-circle. For folds 5 or 8 the
// pattern shows the rotational symmetry forbidden to periodic
// crystals.
func Diffraction(folds, size int, extent float64) (*Grid, error) {
	if folds < 1 || size < 2 || !(extent > 0) {
		return nil, fmt.Errorf("%w: folds %d size %d extent %v", ErrInvalidArgument, folds, size, extent)
	}

	type wave struct{ kx, ky float64 }
	ws := make([]wave, folds)
	for i := range ws {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(folds))
		ws[i] = wave{kx: cos, ky: sin}
	}

	g := newGrid(extent, size)
	for iy, y := range g.ys {
		for ix, x := range g.xs {
			var sum float64
			for _, w := range ws {
				sum += math.Cos(2 * math.Pi * (w.kx*x + w.ky*y))
			}
			g.v[iy*size+ix] = sum * sum
		}
	}
	return g, nil
}

// Quasiperiodic1D evaluates f(x) = sum_i cos(2 pi w_i x) over xs.
// Incommensurable frequencies make f quasiperiodic: almost-repeating,
// never exactly.
func Quasiperiodic1D(xs, freqs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		var sum float64
		for _, w := range freqs {
			sum += math.Cos(2 * math.Pi * w * x)
		}
		out[i] = sum
	}
	return out
}

// Quasiperiodic2D samples f(x, y) = sum_i cos(2 pi (wx_i x + wy_i y)).
func Quasiperiodic2D(freqs [][2]float64, extent float64, size int) (*Grid, error) {
	if len(freqs) == 0 || size < 2 || !(extent > 0) {
		return nil, fmt.Errorf("%w: %d freqs size %d extent %v", ErrInvalidArgument, len(freqs), size, extent)
	}

	g := newGrid(extent, size)
	for iy, y := range g.ys {
		for ix, x := range g.xs {
			var sum float64
			for _, w := range freqs {
				sum += math.Cos(2 * math.Pi * (w[0]*x + w[1]*y))
			}
			g.v[iy*size+ix] = sum
		}
	}
	return g, nil
}

// PentagonalFreqs returns three pairwise incommensurate wave vectors
// spread at pentagonal angles, the default for Quasiperiodic2D.
func PentagonalFreqs() [][2]float64 {
	return [][2]float64{
		{1, 0},
		{math.Cos(2 * math.Pi / 5), math.Sin(2 * math.Pi / 5)},
		{math.Cos(4 * math.Pi / 5), math.Sin(4 * math.Pi / 5)},
	}
}

// Irrational is a named constant commonly used as a winding number.
type Irrational struct {
	Name  string
	Value float64
}

// Irrationals returns the stock set of irrational slopes used across
// the figure generators.
func Irrationals() []Irrational {
	return []Irrational{
		{"sqrt(2)", math.Sqrt2},
		{"sqrt(3)", math.Sqrt(3)},
		{"sqrt(5)", math.Sqrt(5)},
		{"phi", math.Phi},
		{"pi", math.Pi},
		{"e", math.E},
		{"sqrt(2)/2", math.Sqrt2 / 2},
		{"phi-1", math.Phi - 1},
		{"1/phi", 1 / math.Phi},
	}
}
