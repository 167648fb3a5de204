// Package quasicrystal builds aperiodic patterns: Penrose tilings by
// triangle subdivision, cut-and-project point sets, and plane-wave
// interference fields with forbidden rotational symmetry.
package quasicrystal

import (
	"errors"
	"fmt"
	"math"

	"github.com/jbeda/geom"
)

// ErrInvalidArgument reports a caller error in generation parameters.
var ErrInvalidArgument = errors.New("quasicrystal: invalid argument")

// TileKind distinguishes the two Robinson half-triangles.
type TileKind int

const (
	Red  TileKind = iota // half-kite, subdivides into two
	Blue                 // half-dart, subdivides into three
)

func (k TileKind) String() string {
	if k == Red {
		return "red"
	}
	return "blue"
}

// Tile is one Robinson triangle of a Penrose P2 decomposition. A is
// the apex vertex of the triangle's defining isoceles pair.
type Tile struct {
	Kind    TileKind
	A, B, C geom.Coord
}

// Bounds returns the tile's bounding rectangle.
func (t Tile) Bounds() geom.Rect {
	r := geom.Rect{Min: t.A, Max: t.A}
	r.ExpandToContainCoord(t.B)
	r.ExpandToContainCoord(t.C)
	return r
}

// Wheel returns the seed configuration: n triangles of alternating
// kind fanned around the origin at the given scale. n should be a
// multiple of 5 for pentagonal symmetry.
func Wheel(n int, scale float64) ([]Tile, error) {
	if n < 1 || !(scale > 0) {
		return nil, fmt.Errorf("%w: n %d scale %v", ErrInvalidArgument, n, scale)
	}
	ts := make([]Tile, 0, n)
	for i := 0; i < n; i++ {
		a0 := 2 * math.Pi * float64(i) / float64(n)
		a1 := 2 * math.Pi * float64(i+1) / float64(n)
		b := geom.Coord{X: scale * math.Cos(a0), Y: scale * math.Sin(a0)}
		c := geom.Coord{X: scale * math.Cos(a1), Y: scale * math.Sin(a1)}
		if i%2 == 0 {
			ts = append(ts, Tile{Kind: Red, A: geom.Coord{}, B: b, C: c})
		} else {
			ts = append(ts, Tile{Kind: Blue, A: geom.Coord{}, B: c, C: b})
		}
	}
	return ts, nil
}

// Subdivide applies the golden-ratio subdivision rules for the given
// number of iterations: each red triangle splits into a red and a blue,
// each blue into two blues and a red.
func Subdivide(tiles []Tile, iterations int) ([]Tile, error) {
	if iterations < 0 {
		return nil, fmt.Errorf("%w: iterations %d", ErrInvalidArgument, iterations)
	}
	cur := tiles
	for it := 0; it < iterations; it++ {
		next := make([]Tile, 0, 3*len(cur))
		for _, t := range cur {
			switch t.Kind {
			case Red:
				p := t.A.Plus(t.B.Minus(t.A).Times(1 / math.Phi))
				next = append(next,
					Tile{Kind: Red, A: t.C, B: p, C: t.B},
					Tile{Kind: Blue, A: p, B: t.C, C: t.A},
				)
			case Blue:
				q := t.B.Plus(t.A.Minus(t.B).Times(1 / math.Phi))
				r := t.B.Plus(t.C.Minus(t.B).Times(1 / math.Phi))
				next = append(next,
					Tile{Kind: Blue, A: r, B: t.C, C: t.A},
					Tile{Kind: Blue, A: q, B: r, C: t.B},
					Tile{Kind: Red, A: r, B: q, C: t.A},
				)
			}
		}
		cur = next
	}
	return cur, nil
}

// Penrose is Wheel followed by Subdivide with the pentagonal seed.
func Penrose(iterations int, scale float64) ([]Tile, error) {
	ts, err := Wheel(10, scale)
	if err != nil {
		return nil, err
	}
	return Subdivide(ts, iterations)
}

// Cull drops tiles not fully contained in bounds.
func Cull(tiles []Tile, bounds geom.Rect) []Tile {
	kept := make([]Tile, 0, len(tiles))
	for _, t := range tiles {
		if bounds.ContainsRect(t.Bounds()) {
			kept = append(kept, t)
		}
	}
	return kept
}
