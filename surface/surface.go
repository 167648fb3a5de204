// Package surface evaluates triply periodic minimal surface
// approximants as scalar fields over sampled grids. The zero level set
// of each field approximates the named minimal surface.
package surface

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ErrInvalidArgument reports a caller error in sampling parameters.
var ErrInvalidArgument = errors.New("surface: invalid argument")

// Kind selects one of the classical triply periodic surfaces.
type Kind int

const (
	SchoenIWP Kind = iota
	Gyroid
	SchwarzP
	SchwarzD
)

var kindNames = map[Kind]string{
	SchoenIWP: "schoen-iwp",
	Gyroid:    "gyroid",
	SchwarzP:  "schwarz-p",
	SchwarzD:  "schwarz-d",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a surface name to its Kind.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown surface %q", ErrInvalidArgument, s)
}

// Kinds lists all surfaces in declaration order.
func Kinds() []Kind { return []Kind{SchoenIWP, Gyroid, SchwarzP, SchwarzD} }

// Eval returns the field value at (x, y, z).
func Eval(k Kind, x, y, z float64) float64 {
	sx, cx := math.Sincos(x)
	sy, cy := math.Sincos(y)
	sz, cz := math.Sincos(z)
	switch k {
	case SchoenIWP:
		return cx*cy + cy*cz + cz*cx
	case Gyroid:
		return sx*cy + sy*cz + sz*cx
	case SchwarzP:
		return cx + cy + cz
	case SchwarzD:
		return sx*sy*sz + sx*cy*cz + cx*sy*cz + cx*cy*sz
	}
	panic("surface: unknown kind")
}

// Field is a scalar field sampled on a cubic res^3 grid over
// [Min, Max]^3, row-major with x fastest.
type Field struct {
	Kind     Kind
	Res      int
	Min, Max float64
	Axis     []float64
	V        []float64
}

// Grid3 samples the field of k on a res^3 grid.
func Grid3(k Kind, min, max float64, res int) (*Field, error) {
	if !(max > min) {
		return nil, fmt.Errorf("%w: bounds [%v, %v]", ErrInvalidArgument, min, max)
	}
	if res < 2 {
		return nil, fmt.Errorf("%w: res %d", ErrInvalidArgument, res)
	}

	f := &Field{
		Kind: k, Res: res, Min: min, Max: max,
		Axis: floats.Span(make([]float64, res), min, max),
		V:    make([]float64, res*res*res),
	}
	for iz, z := range f.Axis {
		for iy, y := range f.Axis {
			for ix, x := range f.Axis {
				f.V[(iz*res+iy)*res+ix] = Eval(k, x, y, z)
			}
		}
	}
	return f, nil
}

// At returns the sampled value at grid indices (ix, iy, iz).
func (f *Field) At(ix, iy, iz int) float64 {
	return f.V[(iz*f.Res+iy)*f.Res+ix]
}

// Point3 is a sample location in the field's domain.
type Point3 struct {
	X, Y, Z float64
}

// LevelPoints returns the grid points whose field value lies within
// thickness of level, a point-cloud stand-in for the level set surface.
func (f *Field) LevelPoints(level, thickness float64) []Point3 {
	var ps []Point3
	for iz, z := range f.Axis {
		for iy, y := range f.Axis {
			for ix, x := range f.Axis {
				if math.Abs(f.At(ix, iy, iz)-level) < thickness {
					ps = append(ps, Point3{x, y, z})
				}
			}
		}
	}
	return ps
}

// SliceGrid is a 2D slice of a field at fixed z. It implements the
// GridXYZ interface of gonum/plot's heat map and contour plotters.
type SliceGrid struct {
	xs, ys []float64
	v      []float64
}

// Slice samples the field of k on the plane at height z over
// [min, max]^2 at res points per axis.
func Slice(k Kind, z, min, max float64, res int) (*SliceGrid, error) {
	if !(max > min) {
		return nil, fmt.Errorf("%w: bounds [%v, %v]", ErrInvalidArgument, min, max)
	}
	if res < 2 {
		return nil, fmt.Errorf("%w: res %d", ErrInvalidArgument, res)
	}

	g := &SliceGrid{
		xs: floats.Span(make([]float64, res), min, max),
		ys: floats.Span(make([]float64, res), min, max),
		v:  make([]float64, res*res),
	}
	for iy, y := range g.ys {
		for ix, x := range g.xs {
			g.v[iy*res+ix] = Eval(k, x, y, z)
		}
	}
	return g, nil
}

func (g *SliceGrid) Dims() (c, r int) { return len(g.xs), len(g.ys) }
func (g *SliceGrid) X(c int) float64  { return g.xs[c] }
func (g *SliceGrid) Y(r int) float64  { return g.ys[r] }
func (g *SliceGrid) Z(c, r int) float64 {
	return g.v[r*len(g.xs)+c]
}
